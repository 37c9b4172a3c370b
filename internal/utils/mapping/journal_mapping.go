package mapping

import (
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/models"
)

// ToModelJournal converts a domain Journal to a model Journal header. Lines are mapped separately.
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:     d.JournalID,
		OrgID:         d.OrgID,
		JournalNumber: d.JournalNumber,
		JournalDate:   d.JournalDate,
		FiscalYear:    d.FiscalYear,
		FiscalPeriod:  d.FiscalPeriod,
		Description:   d.Description,
		SourceType:    string(d.SourceType),
		Status:        models.JournalStatus(d.Status),
		IsBalanced:    d.IsBalanced,
		TotalDebit:    d.TotalDebit,
		TotalCredit:   d.TotalCredit,
		PostedAt:      d.PostedAt,
		PostedBy:      nullableString(d.PostedBy),
		VoidedAt:      d.VoidedAt,
		VoidedBy:      nullableString(d.VoidedBy),
		VoidReason:    nullableString(d.VoidReason),
		AuditFields:   models.AuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a model Journal header and its lines to a domain Journal
func ToDomainJournal(m models.Journal, lines []models.JournalLine) domain.Journal {
	return domain.Journal{
		JournalID:     m.JournalID,
		OrgID:         m.OrgID,
		JournalNumber: m.JournalNumber,
		JournalDate:   m.JournalDate,
		FiscalYear:    m.FiscalYear,
		FiscalPeriod:  m.FiscalPeriod,
		Description:   m.Description,
		SourceType:    domain.SourceType(m.SourceType),
		Lines:         ToDomainJournalLines(lines),
		Status:        domain.JournalStatus(m.Status),
		IsBalanced:    m.IsBalanced,
		TotalDebit:    m.TotalDebit,
		TotalCredit:   m.TotalCredit,
		PostedAt:      m.PostedAt,
		PostedBy:      derefString(m.PostedBy),
		VoidedAt:      m.VoidedAt,
		VoidedBy:      derefString(m.VoidedBy),
		VoidReason:    derefString(m.VoidReason),
		AuditFields:   domain.AuditFields(m.AuditFields),
	}
}

// ToModelJournalLines converts domain lines into rows keyed by journal id
func ToModelJournalLines(journalID string, ds []domain.JournalLine) []models.JournalLine {
	ms := make([]models.JournalLine, len(ds))
	for i, d := range ds {
		ms[i] = models.JournalLine{
			JournalID:   journalID,
			LineNo:      d.LineNo,
			AccountID:   d.AccountID,
			AccountCode: d.AccountCode,
			AccountName: d.AccountName,
			Debit:       d.Debit,
			Credit:      d.Credit,
		}
	}
	return ms
}

// ToDomainJournalLines converts line rows to domain lines
func ToDomainJournalLines(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = domain.JournalLine{
			LineNo:      m.LineNo,
			AccountID:   m.AccountID,
			AccountCode: m.AccountCode,
			AccountName: m.AccountName,
			Debit:       m.Debit,
			Credit:      m.Credit,
		}
	}
	return ds
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
