package services

import (
	"context"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
)

// AccountResolverSvc is the read path the posting service uses to verify lines.
type AccountResolverSvc interface {
	// ResolveActiveAccounts returns the active accounts of orgID for every id in
	// accountIDs, or an INVALID_ACCOUNT validation error naming the first bad id.
	ResolveActiveAccounts(ctx context.Context, orgID string, accountIDs []string) (map[string]domain.ChartAccount, error)
}

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	GetAccount(ctx context.Context, orgID string, accountID string) (*domain.ChartAccount, error)
	ListAccounts(ctx context.Context, orgID string, limit int, offset int) ([]domain.ChartAccount, error)
}

// AccountWriterSvc defines chart-of-accounts maintenance
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, orgID string, req dto.CreateAccountRequest, userID string) (*domain.ChartAccount, error)
	DeactivateAccount(ctx context.Context, orgID string, accountID string, userID string) error
}

// AccountReconcilerSvc checks the balance invariant of an account against its ledger.
type AccountReconcilerSvc interface {
	ReconcileAccount(ctx context.Context, orgID string, accountID string) (*domain.AccountReconciliation, error)
}

// AccountRegistrySvcFacade combines all account-related service interfaces
type AccountRegistrySvcFacade interface {
	AccountResolverSvc
	AccountReaderSvc
	AccountWriterSvc
	AccountReconcilerSvc
}
