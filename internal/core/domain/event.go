package domain

import "time"

// JournalEventType names a journal lifecycle change announced after commit.
type JournalEventType string

const (
	JournalCreatedEvent JournalEventType = "journal.created"
	JournalPostedEvent  JournalEventType = "journal.posted"
	JournalVoidedEvent  JournalEventType = "journal.voided"
)

// JournalEvent is the payload published for downstream subledgers and reporting.
type JournalEvent struct {
	EventID       string           `json:"eventID"`
	Type          JournalEventType `json:"type"`
	OrgID         string           `json:"orgID"`
	JournalID     string           `json:"journalID"`
	JournalNumber string           `json:"journalNumber"`
	Status        JournalStatus    `json:"status"`
	UserID        string           `json:"userID"`
	OccurredAt    time.Time        `json:"occurredAt"`
}
