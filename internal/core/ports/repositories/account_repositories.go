package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for chart account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.ChartAccount, error)

	// FindAccountsByIDs retrieves the accounts of orgID among accountIDs.
	// Ids that do not exist or belong to another org are absent from the result.
	FindAccountsByIDs(ctx context.Context, orgID string, accountIDs []string) (map[string]domain.ChartAccount, error)

	// ListAccounts retrieves a page of accounts for an org ordered by account code.
	ListAccounts(ctx context.Context, orgID string, limit int, offset int) ([]domain.ChartAccount, error)
}

// AccountWriter defines chart-of-accounts maintenance writes
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.ChartAccount) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}

// AccountBalanceWriter applies balance deltas as single atomic increments.
type AccountBalanceWriter interface {
	IncrementBalance(ctx context.Context, accountID string, delta decimal.Decimal, userID string, now time.Time) error
}

// AccountTxStore is the account view available inside a unit of work.
type AccountTxStore interface {
	AccountReader
	AccountBalanceWriter

	// LockAccountsByIDs behaves like FindAccountsByIDs and also holds the
	// returned rows until the unit of work ends, so a concurrent deactivation
	// cannot commit between the active check and the balance increment.
	// Rows are locked in account-id order.
	LockAccountsByIDs(ctx context.Context, orgID string, accountIDs []string) (map[string]domain.ChartAccount, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
