package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_posting_engine/internal/models"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/mapping"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const journalColumns = `journal_id, org_id, journal_number, journal_date, fiscal_year, fiscal_period,
	description, source_type, status, is_balanced, total_debit, total_credit,
	posted_at, posted_by, voided_at, voided_by, void_reason,
	created_at, created_by, last_updated_at, last_updated_by`

const journalLineColumns = `journal_id, line_no, account_id, account_code, account_name, debit, credit`

type PgxJournalRepository struct {
	db querier
	// lockRows makes FindJournalByID take a row lock. Only set inside a transaction.
	lockRows bool
}

func newPgxJournalRepository(db querier) *PgxJournalRepository {
	return &PgxJournalRepository{db: db}
}

var _ portsrepo.JournalStore = (*PgxJournalRepository)(nil)

// SaveJournal inserts the header and all lines in one batch.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	m := mapping.ToModelJournal(journal)

	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO journals (`+journalColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);`,
		m.JournalID,
		m.OrgID,
		m.JournalNumber,
		m.JournalDate,
		m.FiscalYear,
		m.FiscalPeriod,
		m.Description,
		m.SourceType,
		m.Status,
		m.IsBalanced,
		m.TotalDebit,
		m.TotalCredit,
		m.PostedAt,
		m.PostedBy,
		m.VoidedAt,
		m.VoidedBy,
		m.VoidReason,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)

	lineQuery := `INSERT INTO journal_lines (` + journalLineColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	for _, line := range mapping.ToModelJournalLines(journal.JournalID, journal.Lines) {
		batch.Queue(lineQuery,
			line.JournalID,
			line.LineNo,
			line.AccountID,
			line.AccountCode,
			line.AccountName,
			line.Debit,
			line.Credit,
		)
	}

	// Close reports the first failed statement of the batch.
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return mapPgError(err, fmt.Sprintf("failed to save journal %s", journal.JournalID))
	}
	return nil
}

// FindJournalByID retrieves a journal by its ID.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1`
	if r.lockRows {
		query += ` FOR UPDATE`
	}
	rows, err := r.db.Query(ctx, query, journalID)
	if err != nil {
		return nil, mapPgError(err, "failed to query journal")
	}
	header, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Journal])
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("journal %s", journalID))
	}

	lines, err := r.findLines(ctx, journalID)
	if err != nil {
		return nil, err
	}
	journal := mapping.ToDomainJournal(header, lines)
	return &journal, nil
}

func (r *PgxJournalRepository) findLines(ctx context.Context, journalID string) ([]models.JournalLine, error) {
	query := `SELECT ` + journalLineColumns + ` FROM journal_lines WHERE journal_id = $1 ORDER BY line_no;`
	rows, err := r.db.Query(ctx, query, journalID)
	if err != nil {
		return nil, mapPgError(err, "failed to query journal lines")
	}
	lines, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalLine])
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to scan lines of journal %s", journalID))
	}
	return lines, nil
}

// ListJournals pages by (created_at, journal_id) descending. One extra row is
// fetched to know whether another page exists.
func (r *PgxJournalRepository) ListJournals(ctx context.Context, orgID string, status *domain.JournalStatus, limit int, nextToken *string) ([]domain.Journal, *string, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + journalColumns + ` FROM journals WHERE org_id = $1`)
	args := []any{orgID}

	if status != nil {
		args = append(args, string(*status))
		fmt.Fprintf(&sb, ` AND status = $%d`, len(args))
	}
	if nextToken != nil && *nextToken != "" {
		at, id, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, at, id)
		fmt.Fprintf(&sb, ` AND (created_at, journal_id) < ($%d, $%d)`, len(args)-1, len(args))
	}
	args = append(args, limit+1)
	fmt.Fprintf(&sb, ` ORDER BY created_at DESC, journal_id DESC LIMIT $%d;`, len(args))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, nil, mapPgError(err, "failed to list journals")
	}
	headers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Journal])
	if err != nil {
		return nil, nil, mapPgError(err, "failed to scan journals")
	}

	var next *string
	if len(headers) > limit {
		headers = headers[:limit]
		last := headers[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.JournalID)
		next = &token
	}

	journals := make([]domain.Journal, 0, len(headers))
	for _, h := range headers {
		lines, err := r.findLines(ctx, h.JournalID)
		if err != nil {
			return nil, nil, err
		}
		journals = append(journals, mapping.ToDomainJournal(h, lines))
	}
	return journals, next, nil
}

// UpdateJournalStatus writes the lifecycle fields only while the row still has
// the expected status.
func (r *PgxJournalRepository) UpdateJournalStatus(ctx context.Context, journal domain.Journal, expected domain.JournalStatus) error {
	m := mapping.ToModelJournal(journal)
	query := `
		UPDATE journals
		SET status = $3, journal_number = $4,
		    posted_at = $5, posted_by = $6,
		    voided_at = $7, voided_by = $8, void_reason = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE journal_id = $1 AND status = $2;
	`
	tag, err := r.db.Exec(ctx, query,
		m.JournalID,
		string(expected),
		m.Status,
		m.JournalNumber,
		m.PostedAt,
		m.PostedBy,
		m.VoidedAt,
		m.VoidedBy,
		m.VoidReason,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to update journal %s", journal.JournalID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal %s is no longer %s: %w", journal.JournalID, expected, apperrors.ErrInvalidState)
	}
	return nil
}
