package services

import (
	"context"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
)

// PostingSvc holds the three state-changing journal operations.
type PostingSvc interface {
	// CreateJournal validates lines and persists a DRAFT journal. No ledger
	// entries or balances change.
	CreateJournal(ctx context.Context, orgID string, req dto.CreateJournalRequest, userID string) (*domain.Journal, error)

	// PostJournal moves a DRAFT journal to POSTED, writing one ledger entry per
	// line and updating account balances in one transaction.
	PostJournal(ctx context.Context, orgID string, journalID string, userID string) (*domain.PostingResult, error)

	// VoidJournal moves a POSTED journal to VOID, writing reversal entries that
	// restore the prior balances.
	VoidJournal(ctx context.Context, orgID string, journalID string, userID string, reason string) (*domain.Journal, error)
}

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	GetJournal(ctx context.Context, orgID string, journalID string) (*domain.Journal, error)
	ListJournals(ctx context.Context, orgID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)
	GetLedgerEntriesByJournal(ctx context.Context, orgID string, journalID string) ([]domain.LedgerEntry, error)
}

// LedgerReaderSvc defines read operations over the ledger
type LedgerReaderSvc interface {
	ListLedgerEntriesByAccount(ctx context.Context, orgID string, accountID string, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error)
}

// PostingSvcFacade combines all journal-related service interfaces
type PostingSvcFacade interface {
	PostingSvc
	JournalReaderSvc
	LedgerReaderSvc
}
