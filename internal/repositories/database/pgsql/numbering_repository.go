package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxNumberSequenceRepository hands out journal number sequence values from
// the journal_number_sequences table. Each call commits on its own, outside
// any journal transaction, so a rolled back journal leaves a gap instead of
// reusing its number.
type PgxNumberSequenceRepository struct {
	pool *pgxpool.Pool
}

func NewPgxNumberSequenceRepository(pool *pgxpool.Pool) *PgxNumberSequenceRepository {
	return &PgxNumberSequenceRepository{pool: pool}
}

func (r *PgxNumberSequenceRepository) Next(ctx context.Context, scope string) (int64, error) {
	query := `
		INSERT INTO journal_number_sequences (scope, last_value)
		VALUES ($1, 1)
		ON CONFLICT (scope) DO UPDATE SET last_value = journal_number_sequences.last_value + 1
		RETURNING last_value;
	`
	var n int64
	if err := r.pool.QueryRow(ctx, query, scope).Scan(&n); err != nil {
		return 0, mapPgError(err, fmt.Sprintf("failed to advance journal sequence for %s", scope))
	}
	return n, nil
}
