package repositories

import (
	"context"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalByID retrieves a journal and its lines. Inside a unit of work
	// the journal row is locked until the transaction ends.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournals retrieves journals of an org newest first, optionally by status.
	ListJournals(ctx context.Context, orgID string, status *domain.JournalStatus, limit int, nextToken *string) ([]domain.Journal, *string, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournal persists a new journal header and its lines.
	SaveJournal(ctx context.Context, journal domain.Journal) error

	// UpdateJournalStatus stores the status, number and posting/voiding fields of
	// journal, but only if the stored status still equals expected. It returns
	// apperrors.ErrInvalidState when the stored status has moved on.
	UpdateJournalStatus(ctx context.Context, journal domain.Journal, expected domain.JournalStatus) error
}

// JournalStore is the journal view available inside a unit of work.
type JournalStore interface {
	JournalReader
	JournalWriter
}
