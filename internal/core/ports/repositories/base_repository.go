package repositories

import (
	"context"
)

// UnitOfWork exposes the stores bound to one open transaction. Everything
// written through it commits or rolls back together.
type UnitOfWork interface {
	Accounts() AccountTxStore
	Journals() JournalStore
	Ledger() LedgerStore
}

// TransactionManager runs fn inside a single atomic transaction. The
// transaction commits when fn returns nil and rolls back otherwise, including
// when ctx is cancelled before commit.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
}
