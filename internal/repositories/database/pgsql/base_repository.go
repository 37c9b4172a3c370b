package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so every repository
// runs unchanged inside or outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewTransactionError("failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewTransactionError("failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewTransactionError("failed to rollback transaction", err)
	}
	return nil
}

// PgxTransactionManager implements portsrepo.TransactionManager with one
// database transaction per call.
type PgxTransactionManager struct {
	BaseRepository
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

func (m *PgxTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, uow portsrepo.UnitOfWork) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	// Rollback after a successful commit is a no-op. It uses a fresh context
	// so a cancelled request still releases the connection.
	defer func() { _ = m.Rollback(context.WithoutCancel(ctx), tx) }()

	if err := fn(ctx, &pgxUnitOfWork{tx: tx}); err != nil {
		return err
	}
	return m.Commit(ctx, tx)
}

type pgxUnitOfWork struct {
	tx pgx.Tx
}

func (u *pgxUnitOfWork) Accounts() portsrepo.AccountTxStore {
	return &PgxAccountRepository{db: u.tx}
}

func (u *pgxUnitOfWork) Journals() portsrepo.JournalStore {
	return &PgxJournalRepository{db: u.tx, lockRows: true}
}

func (u *pgxUnitOfWork) Ledger() portsrepo.LedgerStore {
	return &PgxLedgerRepository{db: u.tx}
}

// mapPgError turns driver errors into the apperrors sentinels services branch on.
func mapPgError(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, apperrors.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
