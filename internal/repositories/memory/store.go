// Package memory holds an in-process implementation of the ledger stores,
// used for tests and for running the service without a database.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
)

type state struct {
	accounts map[string]domain.ChartAccount
	journals map[string]domain.Journal
	entries  []domain.LedgerEntry
}

func newState() *state {
	return &state{
		accounts: make(map[string]domain.ChartAccount),
		journals: make(map[string]domain.Journal),
	}
}

func (s *state) clone() *state {
	c := &state{
		accounts: make(map[string]domain.ChartAccount, len(s.accounts)),
		journals: make(map[string]domain.Journal, len(s.journals)),
		entries:  make([]domain.LedgerEntry, len(s.entries)),
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.journals {
		c.journals[k] = v.Clone()
	}
	copy(c.entries, s.entries)
	return c
}

// Store keeps all ledger state in memory behind one lock. Transactions work
// on a private copy of the state which replaces the shared one on commit.
//
// Code running inside WithinTransaction must only use the UnitOfWork it is
// given; calling back into the Store from there would deadlock.
type Store struct {
	mu sync.RWMutex
	st *state
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{st: newState()}
}

// WithinTransaction implements portsrepo.TransactionManager. Transactions are
// serialized.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context, uow portsrepo.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewTransactionError("transaction not started", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.st.clone()
	if err := fn(ctx, &unitOfWork{st: working}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return apperrors.NewTransactionError("transaction aborted before commit", err)
	}
	s.st = working
	return nil
}

type unitOfWork struct {
	st *state
}

func (u *unitOfWork) Accounts() portsrepo.AccountTxStore { return accountView{u.st} }
func (u *unitOfWork) Journals() portsrepo.JournalStore   { return journalView{u.st} }
func (u *unitOfWork) Ledger() portsrepo.LedgerStore      { return ledgerView{u.st} }

// read runs fn against the committed state under the read lock.
func (s *Store) read(fn func(st *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.st)
}

// write runs fn against the committed state under the write lock.
func (s *Store) write(fn func(st *state)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.st)
}

var (
	_ portsrepo.TransactionManager      = (*Store)(nil)
	_ portsrepo.AccountRepositoryFacade = (*Store)(nil)
	_ portsrepo.JournalReader           = (*Store)(nil)
	_ portsrepo.LedgerReader            = (*Store)(nil)
)

// Provider exposes the store through the repository provider used by services.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: s,
		JournalRepo: s,
		LedgerRepo:  s,
		TxManager:   s,
	}
}
