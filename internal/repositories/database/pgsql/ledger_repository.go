package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_posting_engine/internal/models"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/mapping"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const ledgerColumns = `entry_id, org_id, journal_id, line_no, account_id, debit, credit,
	posted_at, reverses_entry_id, created_by`

type PgxLedgerRepository struct {
	db querier
}

func newPgxLedgerRepository(db querier) *PgxLedgerRepository {
	return &PgxLedgerRepository{db: db}
}

var _ portsrepo.LedgerStore = (*PgxLedgerRepository)(nil)

func (r *PgxLedgerRepository) InsertEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	query := `INSERT INTO ledger_entries (` + ledgerColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	batch := &pgx.Batch{}
	for _, e := range entries {
		m := mapping.ToModelLedgerEntry(e)
		batch.Queue(query,
			m.EntryID,
			m.OrgID,
			m.JournalID,
			m.LineNo,
			m.AccountID,
			m.Debit,
			m.Credit,
			m.PostedAt,
			m.ReversesEntryID,
			m.CreatedBy,
		)
	}
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return mapPgError(err, fmt.Sprintf("failed to insert ledger entries for journal %s", entries[0].JournalID))
	}
	return nil
}

func (r *PgxLedgerRepository) FindEntriesByJournalID(ctx context.Context, journalID string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE journal_id = $1
		ORDER BY posted_at, reverses_entry_id NULLS FIRST, line_no;
	`
	rows, err := r.db.Query(ctx, query, journalID)
	if err != nil {
		return nil, mapPgError(err, "failed to query ledger entries")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		return nil, mapPgError(err, "failed to scan ledger entries")
	}
	return mapping.ToDomainLedgerEntrySlice(ms), nil
}

// ListEntriesByAccount pages by (posted_at, entry_id) descending.
func (r *PgxLedgerRepository) ListEntriesByAccount(ctx context.Context, orgID string, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE org_id = $1 AND account_id = $2
	`
	args := []any{orgID, accountID}
	if nextToken != nil && *nextToken != "" {
		at, id, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` AND (posted_at, entry_id) < ($3, $4)`
		args = append(args, at, id)
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY posted_at DESC, entry_id DESC LIMIT $%d;`, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, mapPgError(err, "failed to list ledger entries")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		return nil, nil, mapPgError(err, "failed to scan ledger entries")
	}

	var next *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[limit-1]
		token := pagination.EncodeCursor(last.PostedAt, last.EntryID)
		next = &token
	}
	return mapping.ToDomainLedgerEntrySlice(ms), next, nil
}

func (r *PgxLedgerRepository) SumEntriesByAccount(ctx context.Context, orgID string, accountID string) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
		FROM ledger_entries
		WHERE org_id = $1 AND account_id = $2;
	`
	var debit, credit decimal.Decimal
	if err := r.db.QueryRow(ctx, query, orgID, accountID).Scan(&debit, &credit); err != nil {
		return decimal.Zero, decimal.Zero, mapPgError(err, fmt.Sprintf("failed to sum ledger of account %s", accountID))
	}
	return debit, credit, nil
}
