package models

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

// ChartAccount is the chart_accounts row.
type ChartAccount struct {
	AccountID   string          `db:"account_id"`
	OrgID       string          `db:"org_id"`
	AccountCode string          `db:"account_code"`
	AccountName string          `db:"account_name"`
	AccountType AccountType     `db:"account_type"`
	Balance     decimal.Decimal `db:"balance"`
	IsActive    bool            `db:"is_active"`
	AuditFields
}
