package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

// Journal is the journals header row.
type Journal struct {
	JournalID     string          `db:"journal_id"`
	OrgID         string          `db:"org_id"`
	JournalNumber string          `db:"journal_number"`
	JournalDate   time.Time       `db:"journal_date"`
	FiscalYear    int             `db:"fiscal_year"`
	FiscalPeriod  int             `db:"fiscal_period"`
	Description   string          `db:"description"`
	SourceType    string          `db:"source_type"`
	Status        JournalStatus   `db:"status"`
	IsBalanced    bool            `db:"is_balanced"`
	TotalDebit    decimal.Decimal `db:"total_debit"`
	TotalCredit   decimal.Decimal `db:"total_credit"`
	PostedAt      *time.Time      `db:"posted_at"`
	PostedBy      *string         `db:"posted_by"`
	VoidedAt      *time.Time      `db:"voided_at"`
	VoidedBy      *string         `db:"voided_by"`
	VoidReason    *string         `db:"void_reason"`
	AuditFields
}

// JournalLine is the journal_lines row.
type JournalLine struct {
	JournalID   string          `db:"journal_id"`
	LineNo      int             `db:"line_no"`
	AccountID   string          `db:"account_id"`
	AccountCode string          `db:"account_code"`
	AccountName string          `db:"account_name"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
}
