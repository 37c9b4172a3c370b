package pgsql

import (
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pool-backed readers and the transaction manager.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		JournalRepo: newPgxJournalRepository(dbPool),
		LedgerRepo:  newPgxLedgerRepository(dbPool),
		TxManager:   &PgxTransactionManager{BaseRepository{Pool: dbPool}},
	}
}
