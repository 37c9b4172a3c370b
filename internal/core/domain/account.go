package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five chart-of-accounts types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// IsDebitNormal reports whether a debit increases the balance of this account type.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// ChartAccount is an account in an organization's chart of accounts.
// Balance is the running signed total of every ledger entry posted to it and
// is only ever changed by the posting service.
type ChartAccount struct {
	AccountID   string          `json:"accountID"`
	OrgID       string          `json:"orgID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// AccountReconciliation compares a stored balance with the sum of its ledger entries.
type AccountReconciliation struct {
	AccountID     string          `json:"accountID"`
	StoredBalance decimal.Decimal `json:"storedBalance"`
	LedgerBalance decimal.Decimal `json:"ledgerBalance"`
	TotalDebit    decimal.Decimal `json:"totalDebit"`
	TotalCredit   decimal.Decimal `json:"totalCredit"`
	InBalance     bool            `json:"inBalance"`
}
