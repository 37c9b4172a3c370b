package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
	now   time.Time
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.store = NewStore()
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(s.T(), s.store.SaveAccount(s.ctx, domain.ChartAccount{
		AccountID: "cash", OrgID: "org-1", AccountCode: "1000", AccountName: "Cash",
		AccountType: domain.Asset, Balance: decimal.Zero, IsActive: true,
	}))
}

func (s *StoreTestSuite) TestSaveAccountRejectsDuplicateCode() {
	err := s.store.SaveAccount(s.ctx, domain.ChartAccount{
		AccountID: "cash-2", OrgID: "org-1", AccountCode: "1000", AccountType: domain.Asset, IsActive: true,
	})
	assert.ErrorIs(s.T(), err, apperrors.ErrDuplicate)

	// Same code in another org is fine
	err = s.store.SaveAccount(s.ctx, domain.ChartAccount{
		AccountID: "cash-3", OrgID: "org-2", AccountCode: "1000", AccountType: domain.Asset, IsActive: true,
	})
	assert.NoError(s.T(), err)
}

func (s *StoreTestSuite) TestFindAccountsByIDsScopesToOrg() {
	found, err := s.store.FindAccountsByIDs(s.ctx, "org-2", []string{"cash"})
	require.NoError(s.T(), err)
	assert.Empty(s.T(), found)

	found, err = s.store.FindAccountsByIDs(s.ctx, "org-1", []string{"cash", "missing"})
	require.NoError(s.T(), err)
	assert.Len(s.T(), found, 1)
}

func (s *StoreTestSuite) TestTransactionCommits() {
	err := s.store.WithinTransaction(s.ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		return uow.Accounts().IncrementBalance(ctx, "cash", decimal.NewFromInt(25), "user-1", s.now)
	})
	require.NoError(s.T(), err)

	acc, err := s.store.FindAccountByID(s.ctx, "cash")
	require.NoError(s.T(), err)
	assert.True(s.T(), acc.Balance.Equal(decimal.NewFromInt(25)))
	assert.Equal(s.T(), "user-1", acc.LastUpdatedBy)
}

func (s *StoreTestSuite) TestTransactionRollsBackOnError() {
	boom := errors.New("boom")
	err := s.store.WithinTransaction(s.ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		require.NoError(s.T(), uow.Accounts().IncrementBalance(ctx, "cash", decimal.NewFromInt(25), "user-1", s.now))
		require.NoError(s.T(), uow.Ledger().InsertEntries(ctx, []domain.LedgerEntry{{EntryID: "e1", OrgID: "org-1", AccountID: "cash"}}))
		return boom
	})
	assert.ErrorIs(s.T(), err, boom)

	acc, err := s.store.FindAccountByID(s.ctx, "cash")
	require.NoError(s.T(), err)
	assert.True(s.T(), acc.Balance.IsZero())

	entries, err := s.store.FindEntriesByJournalID(s.ctx, "")
	require.NoError(s.T(), err)
	assert.Empty(s.T(), entries)
}

func (s *StoreTestSuite) TestTransactionRollsBackWhenContextCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	err := s.store.WithinTransaction(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		require.NoError(s.T(), uow.Accounts().IncrementBalance(ctx, "cash", decimal.NewFromInt(25), "user-1", s.now))
		cancel()
		return nil
	})
	assert.ErrorIs(s.T(), err, apperrors.ErrTransaction)

	acc, err := s.store.FindAccountByID(s.ctx, "cash")
	require.NoError(s.T(), err)
	assert.True(s.T(), acc.Balance.IsZero())
}

func (s *StoreTestSuite) TestUpdateJournalStatusIsConditional() {
	journal := domain.Journal{JournalID: "j1", OrgID: "org-1", JournalNumber: "JV-000001", Status: domain.Draft}
	err := s.store.WithinTransaction(s.ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		return uow.Journals().SaveJournal(ctx, journal)
	})
	require.NoError(s.T(), err)

	posted := journal
	posted.Status = domain.Posted
	posted.PostedBy = "user-1"
	err = s.store.WithinTransaction(s.ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		return uow.Journals().UpdateJournalStatus(ctx, posted, domain.Draft)
	})
	require.NoError(s.T(), err)

	err = s.store.WithinTransaction(s.ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		return uow.Journals().UpdateJournalStatus(ctx, posted, domain.Draft)
	})
	assert.ErrorIs(s.T(), err, apperrors.ErrInvalidState)

	stored, err := s.store.FindJournalByID(s.ctx, "j1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.Posted, stored.Status)
	assert.Equal(s.T(), "user-1", stored.PostedBy)
}

func (s *StoreTestSuite) TestSaveJournalRejectsDuplicateNumber() {
	err := s.store.WithinTransaction(s.ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		if err := uow.Journals().SaveJournal(ctx, domain.Journal{JournalID: "j1", OrgID: "org-1", JournalNumber: "JV-000001"}); err != nil {
			return err
		}
		return uow.Journals().SaveJournal(ctx, domain.Journal{JournalID: "j2", OrgID: "org-1", JournalNumber: "JV-000001"})
	})
	assert.ErrorIs(s.T(), err, apperrors.ErrDuplicate)

	_, err = s.store.FindJournalByID(s.ctx, "j1")
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound, "first insert must roll back with the second")
}

func (s *StoreTestSuite) TestListEntriesByAccountPaginates() {
	entries := make([]domain.LedgerEntry, 0, 5)
	for i := 0; i < 5; i++ {
		entries = append(entries, domain.LedgerEntry{
			EntryID:   fmt.Sprintf("e%d", i),
			OrgID:     "org-1",
			JournalID: "j1",
			AccountID: "cash",
			Debit:     decimal.NewFromInt(int64(i + 1)),
			Credit:    decimal.Zero,
			PostedAt:  s.now.Add(time.Duration(i) * time.Minute),
		})
	}
	require.NoError(s.T(), s.store.WithinTransaction(s.ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		return uow.Ledger().InsertEntries(ctx, entries)
	}))

	page1, next, err := s.store.ListEntriesByAccount(s.ctx, "org-1", "cash", 2, nil)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), next)
	assert.Equal(s.T(), []string{"e4", "e3"}, entryIDs(page1))

	page2, next, err := s.store.ListEntriesByAccount(s.ctx, "org-1", "cash", 2, next)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), next)
	assert.Equal(s.T(), []string{"e2", "e1"}, entryIDs(page2))

	page3, next, err := s.store.ListEntriesByAccount(s.ctx, "org-1", "cash", 2, next)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), next)
	assert.Equal(s.T(), []string{"e0"}, entryIDs(page3))

	debit, credit, err := s.store.SumEntriesByAccount(s.ctx, "org-1", "cash")
	require.NoError(s.T(), err)
	assert.True(s.T(), debit.Equal(decimal.NewFromInt(15)))
	assert.True(s.T(), credit.IsZero())
}

func (s *StoreTestSuite) TestInsertEntriesRejectsDuplicateID() {
	err := s.store.WithinTransaction(s.ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		return uow.Ledger().InsertEntries(ctx, []domain.LedgerEntry{{EntryID: "e1"}, {EntryID: "e1"}})
	})
	assert.ErrorIs(s.T(), err, apperrors.ErrDuplicate)
}

func entryIDs(entries []domain.LedgerEntry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.EntryID
	}
	return ids
}
