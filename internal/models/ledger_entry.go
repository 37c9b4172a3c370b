package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the ledger_entries row. Rows are insert-only.
type LedgerEntry struct {
	EntryID         string          `db:"entry_id"`
	OrgID           string          `db:"org_id"`
	JournalID       string          `db:"journal_id"`
	LineNo          int             `db:"line_no"`
	AccountID       string          `db:"account_id"`
	Debit           decimal.Decimal `db:"debit"`
	Credit          decimal.Decimal `db:"credit"`
	PostedAt        time.Time       `db:"posted_at"`
	ReversesEntryID *string         `db:"reverses_entry_id"`
	CreatedBy       string          `db:"created_by"`
}
