package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJournalStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.JournalStatus
		to   domain.JournalStatus
		want bool
	}{
		{name: "draft to posted", from: domain.Draft, to: domain.Posted, want: true},
		{name: "posted to void", from: domain.Posted, to: domain.Void, want: true},
		{name: "draft to void", from: domain.Draft, to: domain.Void, want: false},
		{name: "posted to posted", from: domain.Posted, to: domain.Posted, want: false},
		{name: "posted back to draft", from: domain.Posted, to: domain.Draft, want: false},
		{name: "void to posted", from: domain.Void, to: domain.Posted, want: false},
		{name: "void to void", from: domain.Void, to: domain.Void, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestFiscalPeriodFor(t *testing.T) {
	tests := []struct {
		name       string
		date       time.Time
		startMonth time.Month
		wantYear   int
		wantPeriod int
	}{
		{
			name:       "calendar fiscal year",
			date:       time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			startMonth: time.January,
			wantYear:   2024,
			wantPeriod: 3,
		},
		{
			name:       "april start, date after start",
			date:       time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
			startMonth: time.April,
			wantYear:   2024,
			wantPeriod: 2,
		},
		{
			name:       "april start, date before start belongs to previous year",
			date:       time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC),
			startMonth: time.April,
			wantYear:   2023,
			wantPeriod: 11,
		},
		{
			name:       "invalid start month falls back to january",
			date:       time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
			startMonth: 0,
			wantYear:   2024,
			wantPeriod: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, period := domain.FiscalPeriodFor(tt.date, tt.startMonth)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantPeriod, period)
		})
	}
}

func TestJournal_AccountIDsAndClone(t *testing.T) {
	posted := time.Now()
	j := domain.Journal{
		Lines: []domain.JournalLine{
			{LineNo: 1, AccountID: "cash", Debit: decimal.NewFromInt(10)},
			{LineNo: 2, AccountID: "payable", Credit: decimal.NewFromInt(5)},
			{LineNo: 3, AccountID: "cash", Credit: decimal.NewFromInt(5)},
		},
		PostedAt: &posted,
	}

	assert.Equal(t, []string{"cash", "payable"}, j.AccountIDs())

	c := j.Clone()
	c.Lines[0].AccountID = "changed"
	*c.PostedAt = posted.Add(time.Hour)
	assert.Equal(t, "cash", j.Lines[0].AccountID)
	assert.True(t, j.PostedAt.Equal(posted))
}

func TestAccountType(t *testing.T) {
	assert.True(t, domain.Asset.IsDebitNormal())
	assert.True(t, domain.Expense.IsDebitNormal())
	assert.False(t, domain.Revenue.IsDebitNormal())
	assert.True(t, domain.Equity.IsValid())
	assert.False(t, domain.AccountType("INCOME").IsValid())
}

func TestAuditFields(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	a := domain.NewAuditFields("user-1", created)

	assert.Equal(t, time.UTC, a.CreatedAt.Location())
	assert.True(t, a.CreatedAt.Equal(created))
	assert.Equal(t, a.CreatedAt, a.LastUpdatedAt)

	later := created.Add(time.Hour)
	a.Touch("user-2", later)
	assert.Equal(t, "user-1", a.CreatedBy)
	assert.True(t, a.CreatedAt.Equal(created))
	assert.Equal(t, "user-2", a.LastUpdatedBy)
	assert.True(t, a.LastUpdatedAt.Equal(later))
}
