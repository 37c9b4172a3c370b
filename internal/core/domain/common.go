package domain

import "time"

// AuditFields records who created and last changed an entity. Times are UTC.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// NewAuditFields stamps a freshly created entity.
func NewAuditFields(userID string, now time.Time) AuditFields {
	now = now.UTC()
	return AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID}
}

// Touch records a change by userID. Creation fields are never modified.
func (a *AuditFields) Touch(userID string, now time.Time) {
	a.LastUpdatedAt = now.UTC()
	a.LastUpdatedBy = userID
}
