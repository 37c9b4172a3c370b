package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
	Void   JournalStatus = "VOID"
)

// CanTransitionTo encodes DRAFT -> POSTED -> VOID. Nothing else is allowed.
func (s JournalStatus) CanTransitionTo(next JournalStatus) bool {
	switch s {
	case Draft:
		return next == Posted
	case Posted:
		return next == Void
	}
	return false
}

// SourceType records where a journal originated.
type SourceType string

const (
	SourceManual SourceType = "MANUAL"
	SourceSystem SourceType = "SYSTEM"
)

// IsValid reports whether s is a known source type.
func (s SourceType) IsValid() bool {
	return s == SourceManual || s == SourceSystem
}

// JournalLine is one debit or credit against a single account. AccountCode and
// AccountName are snapshots taken when the journal was created.
type JournalLine struct {
	LineNo      int             `json:"lineNo"`
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// Journal represents a single, balanced financial event composed of multiple lines.
type Journal struct {
	JournalID     string        `json:"journalID"`
	OrgID         string        `json:"orgID"`
	JournalNumber string        `json:"journalNumber"`
	JournalDate   time.Time     `json:"journalDate"`
	FiscalYear    int           `json:"fiscalYear"`
	FiscalPeriod  int           `json:"fiscalPeriod"`
	Description   string        `json:"description"`
	SourceType    SourceType    `json:"sourceType"`
	Lines         []JournalLine `json:"lines"`
	Status        JournalStatus `json:"status"`
	IsBalanced    bool          `json:"isBalanced"`

	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`

	PostedAt   *time.Time `json:"postedAt,omitempty"`
	PostedBy   string     `json:"postedBy,omitempty"`
	VoidedAt   *time.Time `json:"voidedAt,omitempty"`
	VoidedBy   string     `json:"voidedBy,omitempty"`
	VoidReason string     `json:"voidReason,omitempty"`
	AuditFields
}

// AccountIDs returns the distinct account ids referenced by the journal lines, in line order.
func (j *Journal) AccountIDs() []string {
	seen := make(map[string]struct{}, len(j.Lines))
	ids := make([]string, 0, len(j.Lines))
	for _, line := range j.Lines {
		if _, ok := seen[line.AccountID]; ok {
			continue
		}
		seen[line.AccountID] = struct{}{}
		ids = append(ids, line.AccountID)
	}
	return ids
}

// Clone returns a deep copy so stored journals never share line slices with callers.
func (j Journal) Clone() Journal {
	c := j
	c.Lines = append([]JournalLine(nil), j.Lines...)
	if j.PostedAt != nil {
		t := *j.PostedAt
		c.PostedAt = &t
	}
	if j.VoidedAt != nil {
		t := *j.VoidedAt
		c.VoidedAt = &t
	}
	return c
}

// PostingResult is what a successful post returns.
type PostingResult struct {
	Journal       Journal       `json:"journal"`
	LedgerEntries []LedgerEntry `json:"ledgerEntries"`
}
