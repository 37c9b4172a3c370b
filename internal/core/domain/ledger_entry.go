package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is an immutable posted record of one journal line. Reversal
// entries written when a journal is voided point back at the entry they undo.
type LedgerEntry struct {
	EntryID         string          `json:"entryID"`
	OrgID           string          `json:"orgID"`
	JournalID       string          `json:"journalID"`
	LineNo          int             `json:"lineNo"`
	AccountID       string          `json:"accountID"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	PostedAt        time.Time       `json:"postedAt"`
	ReversesEntryID *string         `json:"reversesEntryID,omitempty"`
	CreatedBy       string          `json:"createdBy"`
}

// IsReversal reports whether the entry undoes another entry.
func (e LedgerEntry) IsReversal() bool {
	return e.ReversesEntryID != nil
}
