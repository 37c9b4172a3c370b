package dto

import (
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new chart account.
type CreateAccountRequest struct {
	AccountCode string             `json:"accountCode" binding:"required,max=32"`
	AccountName string             `json:"accountName" binding:"required,max=255"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	OrgID         string             `json:"orgID"`
	AccountCode   string             `json:"accountCode"`
	AccountName   string             `json:"accountName"`
	AccountType   domain.AccountType `json:"accountType"`
	Balance       decimal.Decimal    `json:"balance"`
	IsActive      bool               `json:"isActive"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.ChartAccount to AccountResponse DTO
func ToAccountResponse(acc *domain.ChartAccount) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		OrgID:         acc.OrgID,
		AccountCode:   acc.AccountCode,
		AccountName:   acc.AccountName,
		AccountType:   acc.AccountType,
		Balance:       acc.Balance,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.ChartAccount to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.ChartAccount) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20" binding:"min=0,max=200"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ReconciliationResponse reports whether an account balance matches its ledger.
type ReconciliationResponse struct {
	AccountID     string          `json:"accountID"`
	StoredBalance decimal.Decimal `json:"storedBalance"`
	LedgerBalance decimal.Decimal `json:"ledgerBalance"`
	TotalDebit    decimal.Decimal `json:"totalDebit"`
	TotalCredit   decimal.Decimal `json:"totalCredit"`
	InBalance     bool            `json:"inBalance"`
}

// ToReconciliationResponse converts a domain.AccountReconciliation.
func ToReconciliationResponse(r *domain.AccountReconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		AccountID:     r.AccountID,
		StoredBalance: r.StoredBalance,
		LedgerBalance: r.LedgerBalance,
		TotalDebit:    r.TotalDebit,
		TotalCredit:   r.TotalCredit,
		InBalance:     r.InBalance,
	}
}
