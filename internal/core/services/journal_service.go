package services

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/accounting"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/pagination"
)

// postingService creates, posts and voids journals.
type postingService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	journalRepo portsrepo.JournalReader
	ledgerRepo  portsrepo.LedgerReader
	accountRepo portsrepo.AccountReader
	accounts    portssvc.AccountResolverSvc
	numbering   portssvc.NumberingSvc
	publisher   portssvc.EventPublisher

	fiscalStartMonth time.Month
	timeout          time.Duration
	now              func() time.Time
}

// PostingOption configures optional collaborators of the posting service.
type PostingOption func(*postingService)

// WithEventPublisher announces committed journal changes through p.
func WithEventPublisher(p portssvc.EventPublisher) PostingOption {
	return func(s *postingService) {
		s.publisher = p
	}
}

// WithFiscalYearStartMonth sets the first month of the fiscal year.
func WithFiscalYearStartMonth(m time.Month) PostingOption {
	return func(s *postingService) {
		s.fiscalStartMonth = m
	}
}

// WithPostingTimeout bounds every write operation. Zero disables the bound.
func WithPostingTimeout(d time.Duration) PostingOption {
	return func(s *postingService) {
		s.timeout = d
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) PostingOption {
	return func(s *postingService) {
		s.now = now
	}
}

// NewPostingService creates a new posting service.
func NewPostingService(repos portsrepo.RepositoryProvider, accounts portssvc.AccountResolverSvc, numbering portssvc.NumberingSvc, opts ...PostingOption) portssvc.PostingSvcFacade {
	s := &postingService{
		txManager:        repos.TxManager,
		journalRepo:      repos.JournalRepo,
		ledgerRepo:       repos.LedgerRepo,
		accountRepo:      repos.AccountRepo,
		accounts:         accounts,
		numbering:        numbering,
		fiscalStartMonth: time.January,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// CreateJournal validates the lines, resolves every account and stores a
// DRAFT journal with its number. Nothing touches the ledger or balances.
func (s *postingService) CreateJournal(ctx context.Context, orgID string, req dto.CreateJournalRequest, userID string) (journal *domain.Journal, err error) {
	ctx, span := startSpan(ctx, "PostingService.CreateJournal", attribute.String("org_id", orgID))
	defer func() { endSpan(span, err) }()

	if err := requireScope(orgID, userID); err != nil {
		return nil, err
	}

	validated, err := accounting.ValidateLines(req.ToDomainLines())
	if err != nil {
		s.LogFailure(ctx, err, "Journal lines rejected", zap.String("org_id", orgID))
		return nil, err
	}

	sourceType := req.SourceType
	if sourceType == "" {
		sourceType = domain.SourceManual
	}
	if !sourceType.IsValid() {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidInput,
			fmt.Sprintf("Unknown source type %q", sourceType))
	}

	now := s.now().UTC()
	journalDate := calendarDate(now)
	if req.JournalDate != nil {
		journalDate = calendarDate(*req.JournalDate)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ids := make([]string, len(validated.Lines))
	for i, line := range validated.Lines {
		ids[i] = line.AccountID
	}
	resolved, err := s.accounts.ResolveActiveAccounts(ctx, orgID, ids)
	if err != nil {
		s.LogFailure(ctx, err, "Journal accounts rejected", zap.String("org_id", orgID))
		return nil, err
	}

	lines := make([]domain.JournalLine, len(validated.Lines))
	for i, line := range validated.Lines {
		acc := resolved[line.AccountID]
		line.AccountCode = acc.AccountCode
		line.AccountName = acc.AccountName
		lines[i] = line
	}

	number, err := s.numbering.NextNumber(ctx, orgID)
	if err != nil {
		err = apperrors.NewTransactionError("Failed to assign journal number", err)
		s.LogFailure(ctx, err, "Numbering service failed", zap.String("org_id", orgID))
		return nil, err
	}

	fiscalYear, fiscalPeriod := domain.FiscalPeriodFor(journalDate, s.fiscalStartMonth)
	draft := domain.Journal{
		JournalID:     uuid.NewString(),
		OrgID:         orgID,
		JournalNumber: number,
		JournalDate:   journalDate,
		FiscalYear:    fiscalYear,
		FiscalPeriod:  fiscalPeriod,
		Description:   strings.TrimSpace(req.Description),
		SourceType:    sourceType,
		Lines:         lines,
		Status:        domain.Draft,
		IsBalanced:    true,
		TotalDebit:    validated.TotalDebit,
		TotalCredit:   validated.TotalCredit,
		AuditFields:   domain.NewAuditFields(userID, now),
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		return uow.Journals().SaveJournal(ctx, draft)
	})
	if err != nil {
		err = classify("Failed to save journal", err)
		s.LogFailure(ctx, err, "Failed to save journal", zap.String("org_id", orgID), zap.String("journal_number", number))
		return nil, err
	}

	s.GetLogger(ctx).Info("Journal created",
		zap.String("org_id", orgID),
		zap.String("journal_id", draft.JournalID),
		zap.String("journal_number", number),
		zap.Int("line_count", len(lines)))
	s.publish(ctx, domain.JournalCreatedEvent, &draft, userID)
	return &draft, nil
}

// PostJournal moves a DRAFT journal to POSTED. Ledger entries, balance
// increments and the status change commit together or not at all.
func (s *postingService) PostJournal(ctx context.Context, orgID string, journalID string, userID string) (result *domain.PostingResult, err error) {
	ctx, span := startSpan(ctx, "PostingService.PostJournal",
		attribute.String("org_id", orgID), attribute.String("journal_id", journalID))
	defer func() { endSpan(span, err) }()

	if err := requireScope(orgID, userID); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.now().UTC()
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		var txErr error
		result, txErr = s.postInTx(ctx, uow, orgID, journalID, userID, now)
		return txErr
	})
	if err != nil {
		err = classify("Failed to post journal", err)
		s.LogFailure(ctx, err, "Failed to post journal", zap.String("org_id", orgID), zap.String("journal_id", journalID))
		return nil, err
	}

	s.GetLogger(ctx).Info("Journal posted",
		zap.String("org_id", orgID),
		zap.String("journal_id", journalID),
		zap.String("journal_number", result.Journal.JournalNumber),
		zap.Int("entry_count", len(result.LedgerEntries)))
	s.publish(ctx, domain.JournalPostedEvent, &result.Journal, userID)
	return result, nil
}

func (s *postingService) postInTx(ctx context.Context, uow portsrepo.UnitOfWork, orgID, journalID, userID string, now time.Time) (*domain.PostingResult, error) {
	journal, err := loadJournal(ctx, uow.Journals(), orgID, journalID)
	if err != nil {
		return nil, err
	}
	if !journal.Status.CanTransitionTo(domain.Posted) {
		return nil, apperrors.NewInvalidStateError(apperrors.MsgOnlyDraftPostable)
	}
	if !journal.IsBalanced {
		return nil, apperrors.NewValidationError(apperrors.CodeUnbalanced, apperrors.MsgUnbalanced)
	}
	if _, err := accounting.ValidateLines(journal.Lines); err != nil {
		return nil, err
	}

	// Accounts may have been deactivated since the draft was created. The lock
	// keeps them active until the balances are written.
	ids := journal.AccountIDs()
	accounts, err := uow.Accounts().LockAccountsByIDs(ctx, orgID, ids)
	if err != nil {
		return nil, err
	}
	if err := requireActiveAccounts(accounts, orgID, ids); err != nil {
		return nil, err
	}

	if journal.JournalNumber == "" {
		number, err := s.numbering.NextNumber(ctx, orgID)
		if err != nil {
			return nil, apperrors.NewTransactionError("Failed to assign journal number", err)
		}
		journal.JournalNumber = number
	}

	entries := make([]domain.LedgerEntry, 0, len(journal.Lines))
	for _, line := range journal.Lines {
		entries = append(entries, domain.LedgerEntry{
			EntryID:   uuid.NewString(),
			OrgID:     orgID,
			JournalID: journal.JournalID,
			LineNo:    line.LineNo,
			AccountID: line.AccountID,
			Debit:     line.Debit,
			Credit:    line.Credit,
			PostedAt:  now,
			CreatedBy: userID,
		})
	}
	if err := uow.Ledger().InsertEntries(ctx, entries); err != nil {
		return nil, err
	}
	if err := applyBalanceChanges(ctx, uow.Accounts(), entries, accounts, userID, now); err != nil {
		return nil, err
	}

	journal.Status = domain.Posted
	journal.PostedAt = &now
	journal.PostedBy = userID
	journal.Touch(userID, now)
	if err := uow.Journals().UpdateJournalStatus(ctx, *journal, domain.Draft); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			return nil, apperrors.NewInvalidStateError(apperrors.MsgOnlyDraftPostable)
		}
		return nil, err
	}

	return &domain.PostingResult{Journal: *journal, LedgerEntries: entries}, nil
}

// VoidJournal reverses every ledger entry of a POSTED journal and marks it VOID.
func (s *postingService) VoidJournal(ctx context.Context, orgID string, journalID string, userID string, reason string) (journal *domain.Journal, err error) {
	ctx, span := startSpan(ctx, "PostingService.VoidJournal",
		attribute.String("org_id", orgID), attribute.String("journal_id", journalID))
	defer func() { endSpan(span, err) }()

	if err := requireScope(orgID, userID); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeMissingReason, apperrors.MsgMissingReason)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.now().UTC()
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		var txErr error
		journal, txErr = s.voidInTx(ctx, uow, orgID, journalID, userID, reason, now)
		return txErr
	})
	if err != nil {
		err = classify("Failed to void journal", err)
		s.LogFailure(ctx, err, "Failed to void journal", zap.String("org_id", orgID), zap.String("journal_id", journalID))
		return nil, err
	}

	s.GetLogger(ctx).Info("Journal voided",
		zap.String("org_id", orgID),
		zap.String("journal_id", journalID),
		zap.String("journal_number", journal.JournalNumber),
		zap.String("reason", reason))
	s.publish(ctx, domain.JournalVoidedEvent, journal, userID)
	return journal, nil
}

func (s *postingService) voidInTx(ctx context.Context, uow portsrepo.UnitOfWork, orgID, journalID, userID, reason string, now time.Time) (*domain.Journal, error) {
	journal, err := loadJournal(ctx, uow.Journals(), orgID, journalID)
	if err != nil {
		return nil, err
	}
	if !journal.Status.CanTransitionTo(domain.Void) {
		return nil, apperrors.NewInvalidStateError(apperrors.MsgOnlyPostedVoid)
	}

	posted, err := uow.Ledger().FindEntriesByJournalID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	reversals := make([]domain.LedgerEntry, 0, len(posted))
	for _, original := range posted {
		if original.IsReversal() {
			continue
		}
		reversesID := original.EntryID
		reversals = append(reversals, domain.LedgerEntry{
			EntryID:         uuid.NewString(),
			OrgID:           orgID,
			JournalID:       journalID,
			LineNo:          original.LineNo,
			AccountID:       original.AccountID,
			Debit:           original.Credit,
			Credit:          original.Debit,
			PostedAt:        now,
			ReversesEntryID: &reversesID,
			CreatedBy:       userID,
		})
	}
	if len(reversals) == 0 {
		return nil, fmt.Errorf("posted journal %s has no ledger entries to reverse", journalID)
	}

	// Inactive accounts still take the reversal; only the balance history matters here.
	accounts, err := uow.Accounts().LockAccountsByIDs(ctx, orgID, journal.AccountIDs())
	if err != nil {
		return nil, err
	}
	if err := uow.Ledger().InsertEntries(ctx, reversals); err != nil {
		return nil, err
	}
	if err := applyBalanceChanges(ctx, uow.Accounts(), reversals, accounts, userID, now); err != nil {
		return nil, err
	}

	journal.Status = domain.Void
	journal.VoidedAt = &now
	journal.VoidedBy = userID
	journal.VoidReason = reason
	journal.Touch(userID, now)
	if err := uow.Journals().UpdateJournalStatus(ctx, *journal, domain.Posted); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			return nil, apperrors.NewInvalidStateError(apperrors.MsgOnlyPostedVoid)
		}
		return nil, err
	}
	return journal, nil
}

// GetJournal retrieves a journal with its lines.
func (s *postingService) GetJournal(ctx context.Context, orgID string, journalID string) (*domain.Journal, error) {
	journal, err := loadJournal(ctx, s.journalRepo, orgID, journalID)
	if err != nil {
		return nil, classify("Failed to load journal", err)
	}
	return journal, nil
}

// ListJournals retrieves a page of an org's journals, newest first.
func (s *postingService) ListJournals(ctx context.Context, orgID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	var status *domain.JournalStatus
	if params.Status != "" {
		st := domain.JournalStatus(params.Status)
		switch st {
		case domain.Draft, domain.Posted, domain.Void:
			status = &st
		default:
			return nil, apperrors.NewValidationError(apperrors.CodeInvalidInput,
				fmt.Sprintf("Unknown journal status %q", params.Status))
		}
	}
	if err := checkCursor(params.NextToken); err != nil {
		return nil, err
	}

	journals, next, err := s.journalRepo.ListJournals(ctx, orgID, status, pagination.NormalizeLimit(params.Limit), params.NextToken)
	if err != nil {
		err = classify("Failed to list journals", err)
		s.LogFailure(ctx, err, "Failed to list journals", zap.String("org_id", orgID))
		return nil, err
	}

	s.GetLogger(ctx).Debug("Journals listed", zap.String("org_id", orgID), zap.Int("count", len(journals)))
	return &dto.ListJournalsResponse{
		Journals:  dto.ToJournalResponses(journals),
		NextToken: next,
	}, nil
}

// GetLedgerEntriesByJournal returns the original and reversal entries of a journal.
func (s *postingService) GetLedgerEntriesByJournal(ctx context.Context, orgID string, journalID string) ([]domain.LedgerEntry, error) {
	if _, err := s.GetJournal(ctx, orgID, journalID); err != nil {
		return nil, err
	}
	entries, err := s.ledgerRepo.FindEntriesByJournalID(ctx, journalID)
	if err != nil {
		return nil, classify("Failed to load ledger entries", err)
	}
	return entries, nil
}

// ListLedgerEntriesByAccount pages through an account's ledger, newest first.
func (s *postingService) ListLedgerEntriesByAccount(ctx context.Context, orgID string, accountID string, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error) {
	acc, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Account not found")
		}
		return nil, classify("Failed to load account", err)
	}
	if acc.OrgID != orgID {
		return nil, apperrors.NewNotFoundError("Account not found")
	}
	if err := checkCursor(params.NextToken); err != nil {
		return nil, err
	}

	entries, next, err := s.ledgerRepo.ListEntriesByAccount(ctx, orgID, accountID, pagination.NormalizeLimit(params.Limit), params.NextToken)
	if err != nil {
		err = classify("Failed to list ledger entries", err)
		s.LogFailure(ctx, err, "Failed to list ledger entries", zap.String("org_id", orgID), zap.String("account_id", accountID))
		return nil, err
	}
	return &dto.ListLedgerEntriesResponse{
		Entries:   dto.ToLedgerEntryResponses(entries),
		NextToken: next,
	}, nil
}

func (s *postingService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// publish runs after commit. A failed publish is logged and otherwise ignored.
func (s *postingService) publish(ctx context.Context, eventType domain.JournalEventType, journal *domain.Journal, userID string) {
	if s.publisher == nil {
		return
	}
	event := domain.JournalEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		OrgID:         journal.OrgID,
		JournalID:     journal.JournalID,
		JournalNumber: journal.JournalNumber,
		Status:        journal.Status,
		UserID:        userID,
		OccurredAt:    s.now().UTC(),
	}
	if err := s.publisher.PublishJournalEvent(context.WithoutCancel(ctx), event); err != nil {
		s.GetLogger(ctx).Warn("Failed to publish journal event",
			zap.String("event_type", string(eventType)),
			zap.String("journal_id", journal.JournalID),
			zap.Error(err))
	}
}

func loadJournal(ctx context.Context, reader portsrepo.JournalReader, orgID, journalID string) (*domain.Journal, error) {
	journal, err := reader.FindJournalByID(ctx, journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Journal not found")
		}
		return nil, err
	}
	if journal.OrgID != orgID {
		return nil, apperrors.NewNotFoundError("Journal not found")
	}
	return journal, nil
}

// applyBalanceChanges issues one increment per affected account in account-id
// order, so concurrent posts lock rows in the same sequence.
func applyBalanceChanges(ctx context.Context, store portsrepo.AccountBalanceWriter, entries []domain.LedgerEntry, accounts map[string]domain.ChartAccount, userID string, now time.Time) error {
	changes, err := accounting.BalanceChanges(entries, accounts)
	if err != nil {
		return err
	}
	for _, accountID := range slices.Sorted(maps.Keys(changes)) {
		delta := changes[accountID]
		if delta.IsZero() {
			continue
		}
		if err := store.IncrementBalance(ctx, accountID, delta, userID, now); err != nil {
			return fmt.Errorf("failed to update balance of account %s: %w", accountID, err)
		}
	}
	return nil
}

func checkCursor(token *string) error {
	if token == nil || *token == "" {
		return nil
	}
	if _, _, err := pagination.DecodeCursor(*token); err != nil {
		return apperrors.NewValidationError(apperrors.CodeInvalidInput, "Invalid nextToken")
	}
	return nil
}

// calendarDate keeps the date as written by the caller, at midnight UTC.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
