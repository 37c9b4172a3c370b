package dto

import (
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest is one proposed debit or credit line.
type CreateJournalLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// CreateJournalRequest defines the data needed to create a DRAFT journal.
// Line count and balance are checked by the posting service so callers get
// the ledger's own error codes.
type CreateJournalRequest struct {
	JournalDate *time.Time                 `json:"journalDate"`
	Description string                     `json:"description" binding:"max=1000"`
	SourceType  domain.SourceType          `json:"sourceType" binding:"omitempty,oneof=MANUAL SYSTEM"`
	Lines       []CreateJournalLineRequest `json:"lines" binding:"dive"`
}

// VoidJournalRequest carries the mandatory audit reason for a void.
type VoidJournalRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

// ListJournalsParams defines query parameters for listing journals.
type ListJournalsParams struct {
	Status    string  `form:"status" binding:"omitempty,oneof=DRAFT POSTED VOID"`
	Limit     int     `form:"limit,default=20" binding:"min=0,max=200"`
	NextToken *string `form:"nextToken"`
}

// ListLedgerEntriesParams defines query parameters for listing an account's ledger entries.
type ListLedgerEntriesParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=0,max=200"`
	NextToken *string `form:"nextToken"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineNo      int             `json:"lineNo"`
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalResponse defines the data returned for a journal.
type JournalResponse struct {
	JournalID     string                `json:"journalID"`
	OrgID         string                `json:"orgID"`
	JournalNumber string                `json:"journalNumber"`
	JournalDate   time.Time             `json:"journalDate"`
	FiscalYear    int                   `json:"fiscalYear"`
	FiscalPeriod  int                   `json:"fiscalPeriod"`
	Description   string                `json:"description"`
	SourceType    domain.SourceType     `json:"sourceType"`
	Status        domain.JournalStatus  `json:"status"`
	IsBalanced    bool                  `json:"isBalanced"`
	TotalDebit    decimal.Decimal       `json:"totalDebit"`
	TotalCredit   decimal.Decimal       `json:"totalCredit"`
	Lines         []JournalLineResponse `json:"lines"`
	PostedAt      *time.Time            `json:"postedAt,omitempty"`
	PostedBy      string                `json:"postedBy,omitempty"`
	VoidedAt      *time.Time            `json:"voidedAt,omitempty"`
	VoidedBy      string                `json:"voidedBy,omitempty"`
	VoidReason    string                `json:"voidReason,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	CreatedBy     string                `json:"createdBy"`
	LastUpdatedAt time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy string                `json:"lastUpdatedBy"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID         string          `json:"entryID"`
	JournalID       string          `json:"journalID"`
	LineNo          int             `json:"lineNo"`
	AccountID       string          `json:"accountID"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	PostedAt        time.Time       `json:"postedAt"`
	ReversesEntryID *string         `json:"reversesEntryID,omitempty"`
}

// PostJournalResponse is returned by a successful post.
type PostJournalResponse struct {
	Journal       JournalResponse       `json:"journal"`
	LedgerEntries []LedgerEntryResponse `json:"ledgerEntries"`
}

// ListJournalsResponse wraps a page of journals.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ListLedgerEntriesResponse wraps a page of ledger entries.
type ListLedgerEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToDomainLines converts request lines into numbered domain lines.
func (r CreateJournalRequest) ToDomainLines() []domain.JournalLine {
	lines := make([]domain.JournalLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.JournalLine{
			LineNo:    i + 1,
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
		}
	}
	return lines
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	lines := make([]JournalLineResponse, len(j.Lines))
	for i, l := range j.Lines {
		lines[i] = JournalLineResponse{
			LineNo:      l.LineNo,
			AccountID:   l.AccountID,
			AccountCode: l.AccountCode,
			AccountName: l.AccountName,
			Debit:       l.Debit,
			Credit:      l.Credit,
		}
	}
	return JournalResponse{
		JournalID:     j.JournalID,
		OrgID:         j.OrgID,
		JournalNumber: j.JournalNumber,
		JournalDate:   j.JournalDate,
		FiscalYear:    j.FiscalYear,
		FiscalPeriod:  j.FiscalPeriod,
		Description:   j.Description,
		SourceType:    j.SourceType,
		Status:        j.Status,
		IsBalanced:    j.IsBalanced,
		TotalDebit:    j.TotalDebit,
		TotalCredit:   j.TotalCredit,
		Lines:         lines,
		PostedAt:      j.PostedAt,
		PostedBy:      j.PostedBy,
		VoidedAt:      j.VoidedAt,
		VoidedBy:      j.VoidedBy,
		VoidReason:    j.VoidReason,
		CreatedAt:     j.CreatedAt,
		CreatedBy:     j.CreatedBy,
		LastUpdatedAt: j.LastUpdatedAt,
		LastUpdatedBy: j.LastUpdatedBy,
	}
}

// ToJournalResponses converts a slice of domain.Journal.
func ToJournalResponses(journals []domain.Journal) []JournalResponse {
	res := make([]JournalResponse, len(journals))
	for i := range journals {
		res[i] = ToJournalResponse(&journals[i])
	}
	return res
}

// ToLedgerEntryResponses converts a slice of domain.LedgerEntry.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = LedgerEntryResponse{
			EntryID:         e.EntryID,
			JournalID:       e.JournalID,
			LineNo:          e.LineNo,
			AccountID:       e.AccountID,
			Debit:           e.Debit,
			Credit:          e.Credit,
			PostedAt:        e.PostedAt,
			ReversesEntryID: e.ReversesEntryID,
		}
	}
	return res
}

// ToPostJournalResponse converts a domain.PostingResult.
func ToPostJournalResponse(r *domain.PostingResult) PostJournalResponse {
	return PostJournalResponse{
		Journal:       ToJournalResponse(&r.Journal),
		LedgerEntries: ToLedgerEntryResponses(r.LedgerEntries),
	}
}
