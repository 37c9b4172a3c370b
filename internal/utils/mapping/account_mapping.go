package mapping

import (
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/SscSPs/ledger_posting_engine/internal/models"
)

// ToModelAccount converts a domain ChartAccount to a model ChartAccount
func ToModelAccount(d domain.ChartAccount) models.ChartAccount {
	return models.ChartAccount{
		AccountID:   d.AccountID,
		OrgID:       d.OrgID,
		AccountCode: d.AccountCode,
		AccountName: d.AccountName,
		AccountType: models.AccountType(d.AccountType),
		Balance:     d.Balance,
		IsActive:    d.IsActive,
		AuditFields: models.AuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model ChartAccount to a domain ChartAccount
func ToDomainAccount(m models.ChartAccount) domain.ChartAccount {
	return domain.ChartAccount{
		AccountID:   m.AccountID,
		OrgID:       m.OrgID,
		AccountCode: m.AccountCode,
		AccountName: m.AccountName,
		AccountType: domain.AccountType(m.AccountType),
		Balance:     m.Balance,
		IsActive:    m.IsActive,
		AuditFields: domain.AuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model accounts to a slice of domain accounts
func ToDomainAccountSlice(ms []models.ChartAccount) []domain.ChartAccount {
	ds := make([]domain.ChartAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
