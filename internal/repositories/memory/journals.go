package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/pagination"
)

type journalView struct{ st *state }

func (v journalView) FindJournalByID(_ context.Context, journalID string) (*domain.Journal, error) {
	j, ok := v.st.journals[journalID]
	if !ok {
		return nil, fmt.Errorf("journal %s: %w", journalID, apperrors.ErrNotFound)
	}
	c := j.Clone()
	return &c, nil
}

func (v journalView) ListJournals(_ context.Context, orgID string, status *domain.JournalStatus, limit int, nextToken *string) ([]domain.Journal, *string, error) {
	journals := make([]domain.Journal, 0)
	for _, j := range v.st.journals {
		if j.OrgID != orgID {
			continue
		}
		if status != nil && j.Status != *status {
			continue
		}
		journals = append(journals, j)
	}
	sort.Slice(journals, func(a, b int) bool {
		if !journals[a].CreatedAt.Equal(journals[b].CreatedAt) {
			return journals[a].CreatedAt.After(journals[b].CreatedAt)
		}
		return journals[a].JournalID > journals[b].JournalID
	})

	if nextToken != nil && *nextToken != "" {
		at, id, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		start := len(journals)
		for i, j := range journals {
			if j.CreatedAt.Before(at) || (j.CreatedAt.Equal(at) && j.JournalID < id) {
				start = i
				break
			}
		}
		journals = journals[start:]
	}

	var next *string
	if limit > 0 && len(journals) > limit {
		journals = journals[:limit]
		last := journals[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.JournalID)
		next = &token
	}

	out := make([]domain.Journal, len(journals))
	for i, j := range journals {
		out[i] = j.Clone()
	}
	return out, next, nil
}

func (v journalView) SaveJournal(_ context.Context, journal domain.Journal) error {
	if _, ok := v.st.journals[journal.JournalID]; ok {
		return fmt.Errorf("journal %s: %w", journal.JournalID, apperrors.ErrDuplicate)
	}
	if journal.JournalNumber != "" {
		for _, existing := range v.st.journals {
			if existing.OrgID == journal.OrgID && existing.JournalNumber == journal.JournalNumber {
				return fmt.Errorf("journal number %s: %w", journal.JournalNumber, apperrors.ErrDuplicate)
			}
		}
	}
	v.st.journals[journal.JournalID] = journal.Clone()
	return nil
}

func (v journalView) UpdateJournalStatus(_ context.Context, journal domain.Journal, expected domain.JournalStatus) error {
	stored, ok := v.st.journals[journal.JournalID]
	if !ok {
		return fmt.Errorf("journal %s: %w", journal.JournalID, apperrors.ErrNotFound)
	}
	if stored.Status != expected {
		return fmt.Errorf("journal %s is %s: %w", journal.JournalID, stored.Status, apperrors.ErrInvalidState)
	}
	stored.Status = journal.Status
	stored.JournalNumber = journal.JournalNumber
	stored.PostedAt = journal.PostedAt
	stored.PostedBy = journal.PostedBy
	stored.VoidedAt = journal.VoidedAt
	stored.VoidedBy = journal.VoidedBy
	stored.VoidReason = journal.VoidReason
	stored.LastUpdatedAt = journal.LastUpdatedAt
	stored.LastUpdatedBy = journal.LastUpdatedBy
	v.st.journals[journal.JournalID] = stored.Clone()
	return nil
}

// FindJournalByID retrieves a committed journal.
func (s *Store) FindJournalByID(ctx context.Context, journalID string) (j *domain.Journal, err error) {
	s.read(func(st *state) { j, err = journalView{st}.FindJournalByID(ctx, journalID) })
	return j, err
}

// ListJournals pages through committed journals of an org.
func (s *Store) ListJournals(ctx context.Context, orgID string, status *domain.JournalStatus, limit int, nextToken *string) (journals []domain.Journal, next *string, err error) {
	s.read(func(st *state) {
		journals, next, err = journalView{st}.ListJournals(ctx, orgID, status, limit, nextToken)
	})
	return journals, next, err
}
