package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type ledgerView struct{ st *state }

func (v ledgerView) FindEntriesByJournalID(_ context.Context, journalID string) ([]domain.LedgerEntry, error) {
	entries := make([]domain.LedgerEntry, 0)
	for _, e := range v.st.entries {
		if e.JournalID == journalID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (v ledgerView) ListEntriesByAccount(_ context.Context, orgID string, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	entries := make([]domain.LedgerEntry, 0)
	for _, e := range v.st.entries {
		if e.OrgID == orgID && e.AccountID == accountID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(a, b int) bool {
		if !entries[a].PostedAt.Equal(entries[b].PostedAt) {
			return entries[a].PostedAt.After(entries[b].PostedAt)
		}
		return entries[a].EntryID > entries[b].EntryID
	})

	if nextToken != nil && *nextToken != "" {
		at, id, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		start := len(entries)
		for i, e := range entries {
			if e.PostedAt.Before(at) || (e.PostedAt.Equal(at) && e.EntryID < id) {
				start = i
				break
			}
		}
		entries = entries[start:]
	}

	var next *string
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
		last := entries[limit-1]
		token := pagination.EncodeCursor(last.PostedAt, last.EntryID)
		next = &token
	}
	return entries, next, nil
}

func (v ledgerView) SumEntriesByAccount(_ context.Context, orgID string, accountID string) (decimal.Decimal, decimal.Decimal, error) {
	debit, credit := decimal.Zero, decimal.Zero
	for _, e := range v.st.entries {
		if e.OrgID == orgID && e.AccountID == accountID {
			debit = debit.Add(e.Debit)
			credit = credit.Add(e.Credit)
		}
	}
	return debit, credit, nil
}

func (v ledgerView) InsertEntries(_ context.Context, entries []domain.LedgerEntry) error {
	seen := make(map[string]struct{}, len(v.st.entries))
	for _, e := range v.st.entries {
		seen[e.EntryID] = struct{}{}
	}
	for _, e := range entries {
		if _, ok := seen[e.EntryID]; ok {
			return fmt.Errorf("ledger entry %s: %w", e.EntryID, apperrors.ErrDuplicate)
		}
		seen[e.EntryID] = struct{}{}
	}
	v.st.entries = append(v.st.entries, entries...)
	return nil
}

// FindEntriesByJournalID returns committed entries of a journal.
func (s *Store) FindEntriesByJournalID(ctx context.Context, journalID string) (entries []domain.LedgerEntry, err error) {
	s.read(func(st *state) { entries, err = ledgerView{st}.FindEntriesByJournalID(ctx, journalID) })
	return entries, err
}

// ListEntriesByAccount pages through committed entries of an account.
func (s *Store) ListEntriesByAccount(ctx context.Context, orgID string, accountID string, limit int, nextToken *string) (entries []domain.LedgerEntry, next *string, err error) {
	s.read(func(st *state) {
		entries, next, err = ledgerView{st}.ListEntriesByAccount(ctx, orgID, accountID, limit, nextToken)
	})
	return entries, next, err
}

// SumEntriesByAccount totals committed entries of an account.
func (s *Store) SumEntriesByAccount(ctx context.Context, orgID string, accountID string) (debit decimal.Decimal, credit decimal.Decimal, err error) {
	s.read(func(st *state) { debit, credit, err = ledgerView{st}.SumEntriesByAccount(ctx, orgID, accountID) })
	return debit, credit, err
}
