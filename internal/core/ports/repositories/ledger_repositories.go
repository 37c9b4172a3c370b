package repositories

import (
	"context"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations over posted ledger entries
type LedgerReader interface {
	// FindEntriesByJournalID returns every entry of a journal, originals and reversals.
	FindEntriesByJournalID(ctx context.Context, journalID string) ([]domain.LedgerEntry, error)

	// ListEntriesByAccount pages through an account's entries, newest first.
	ListEntriesByAccount(ctx context.Context, orgID string, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)

	// SumEntriesByAccount totals debits and credits ever posted to an account.
	SumEntriesByAccount(ctx context.Context, orgID string, accountID string) (totalDebit decimal.Decimal, totalCredit decimal.Decimal, err error)
}

// LedgerWriter only inserts. Entries are never updated or deleted.
type LedgerWriter interface {
	InsertEntries(ctx context.Context, entries []domain.LedgerEntry) error
}

// LedgerStore is the ledger view available inside a unit of work.
type LedgerStore interface {
	LedgerReader
	LedgerWriter
}
