package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_posting_engine/internal/models"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const accountColumns = `account_id, org_id, account_code, account_name, account_type, balance, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	db querier
}

func newPgxAccountRepository(db querier) *PgxAccountRepository {
	return &PgxAccountRepository{db: db}
}

var (
	_ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)
	_ portsrepo.AccountTxStore          = (*PgxAccountRepository)(nil)
)

// SaveAccount inserts a new account. A second account with the same code in
// the same org violates chart_accounts_org_code_key.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.ChartAccount) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO chart_accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db.Exec(ctx, query,
		m.AccountID,
		m.OrgID,
		m.AccountCode,
		m.AccountName,
		m.AccountType,
		m.Balance,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to save account %s", m.AccountID))
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.ChartAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM chart_accounts WHERE account_id = $1;`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, mapPgError(err, "failed to query account")
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.ChartAccount])
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("account %s", accountID))
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, orgID string, accountIDs []string) (map[string]domain.ChartAccount, error) {
	found := make(map[string]domain.ChartAccount, len(accountIDs))
	if len(accountIDs) == 0 {
		return found, nil
	}
	query := `SELECT ` + accountColumns + ` FROM chart_accounts WHERE org_id = $1 AND account_id = ANY($2);`
	rows, err := r.db.Query(ctx, query, orgID, accountIDs)
	if err != nil {
		return nil, mapPgError(err, "failed to query accounts")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ChartAccount])
	if err != nil {
		return nil, mapPgError(err, "failed to scan accounts")
	}
	for _, m := range ms {
		found[m.AccountID] = mapping.ToDomainAccount(m)
	}
	return found, nil
}

// LockAccountsByIDs takes FOR NO KEY UPDATE rather than FOR SHARE: the balance
// UPDATE that follows would otherwise have to upgrade a share lock that another
// posting transaction also holds, and the two would deadlock.
func (r *PgxAccountRepository) LockAccountsByIDs(ctx context.Context, orgID string, accountIDs []string) (map[string]domain.ChartAccount, error) {
	found := make(map[string]domain.ChartAccount, len(accountIDs))
	if len(accountIDs) == 0 {
		return found, nil
	}
	query := `
		SELECT ` + accountColumns + `
		FROM chart_accounts
		WHERE org_id = $1 AND account_id = ANY($2)
		ORDER BY account_id
		FOR NO KEY UPDATE;
	`
	rows, err := r.db.Query(ctx, query, orgID, accountIDs)
	if err != nil {
		return nil, mapPgError(err, "failed to lock accounts")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ChartAccount])
	if err != nil {
		return nil, mapPgError(err, "failed to scan locked accounts")
	}
	for _, m := range ms {
		found[m.AccountID] = mapping.ToDomainAccount(m)
	}
	return found, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, orgID string, limit int, offset int) ([]domain.ChartAccount, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM chart_accounts
		WHERE org_id = $1
		ORDER BY account_code
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, mapPgError(err, "failed to list accounts")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ChartAccount])
	if err != nil {
		return nil, mapPgError(err, "failed to scan accounts")
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	query := `
		UPDATE chart_accounts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, accountID, now, userID)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to deactivate account %s", accountID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return nil
}

// IncrementBalance adds delta in a single statement. The row lock taken by the
// UPDATE is held until the surrounding transaction ends.
func (r *PgxAccountRepository) IncrementBalance(ctx context.Context, accountID string, delta decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE chart_accounts
		SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, accountID, delta, now, userID)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to increment balance of account %s", accountID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return nil
}
