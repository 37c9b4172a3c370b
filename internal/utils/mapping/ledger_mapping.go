package mapping

import (
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:         d.EntryID,
		OrgID:           d.OrgID,
		JournalID:       d.JournalID,
		LineNo:          d.LineNo,
		AccountID:       d.AccountID,
		Debit:           d.Debit,
		Credit:          d.Credit,
		PostedAt:        d.PostedAt,
		ReversesEntryID: d.ReversesEntryID,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:         m.EntryID,
		OrgID:           m.OrgID,
		JournalID:       m.JournalID,
		LineNo:          m.LineNo,
		AccountID:       m.AccountID,
		Debit:           m.Debit,
		Credit:          m.Credit,
		PostedAt:        m.PostedAt,
		ReversesEntryID: m.ReversesEntryID,
		CreatedBy:       m.CreatedBy,
	}
}

// ToDomainLedgerEntrySlice converts a slice of model entries to domain entries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
