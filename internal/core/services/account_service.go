package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/accounting"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// accountRegistry implements the AccountRegistrySvcFacade interface
type accountRegistry struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerRepo  portsrepo.LedgerReader
	now         func() time.Time
}

// NewAccountRegistry creates the chart-of-accounts service.
func NewAccountRegistry(accountRepo portsrepo.AccountRepositoryFacade, ledgerRepo portsrepo.LedgerReader) portssvc.AccountRegistrySvcFacade {
	return &accountRegistry{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		now:         time.Now,
	}
}

var _ portssvc.AccountRegistrySvcFacade = (*accountRegistry)(nil)

func (s *accountRegistry) ResolveActiveAccounts(ctx context.Context, orgID string, accountIDs []string) (map[string]domain.ChartAccount, error) {
	ids := uniqueStrings(accountIDs)
	found, err := s.accountRepo.FindAccountsByIDs(ctx, orgID, ids)
	if err != nil {
		return nil, classify("Failed to load accounts", err)
	}
	if err := requireActiveAccounts(found, orgID, ids); err != nil {
		return nil, err
	}
	return found, nil
}

// requireActiveAccounts checks every id before anything is written, so a bad
// reference anywhere rejects the whole journal.
func requireActiveAccounts(found map[string]domain.ChartAccount, orgID string, accountIDs []string) error {
	for _, id := range accountIDs {
		acc, ok := found[id]
		if !ok || acc.OrgID != orgID {
			return apperrors.NewValidationError(apperrors.CodeInvalidAccount,
				fmt.Sprintf("Account %s does not exist in this organization", id))
		}
		if !acc.IsActive {
			return apperrors.NewValidationError(apperrors.CodeInvalidAccount,
				fmt.Sprintf("Account %s (%s) is inactive", acc.AccountCode, id))
		}
	}
	return nil
}

func (s *accountRegistry) CreateAccount(ctx context.Context, orgID string, req dto.CreateAccountRequest, userID string) (*domain.ChartAccount, error) {
	if err := requireScope(orgID, userID); err != nil {
		return nil, err
	}
	code := strings.TrimSpace(req.AccountCode)
	name := strings.TrimSpace(req.AccountName)
	if code == "" || name == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidInput, "Account code and name are required")
	}
	if !req.AccountType.IsValid() {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidInput,
			fmt.Sprintf("Unknown account type %q", req.AccountType))
	}

	now := s.now().UTC()
	account := domain.ChartAccount{
		AccountID:   uuid.NewString(),
		OrgID:       orgID,
		AccountCode: code,
		AccountName: name,
		AccountType: req.AccountType,
		Balance:     decimal.Zero,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(userID, now),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewDuplicateError(fmt.Sprintf("Account code %s already exists", code))
		}
		s.LogFailure(ctx, err, "Failed to save account", zap.String("org_id", orgID))
		return nil, classify("Failed to save account", err)
	}

	s.GetLogger(ctx).Info("Account created",
		zap.String("org_id", orgID),
		zap.String("account_id", account.AccountID),
		zap.String("account_code", code))
	return &account, nil
}

func (s *accountRegistry) GetAccount(ctx context.Context, orgID string, accountID string) (*domain.ChartAccount, error) {
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
	return acc, nil
}

func (s *accountRegistry) ListAccounts(ctx context.Context, orgID string, limit int, offset int) ([]domain.ChartAccount, error) {
	if offset < 0 {
		offset = 0
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, orgID, pagination.NormalizeLimit(limit), offset)
	if err != nil {
		return nil, classify("Failed to list accounts", err)
	}
	return accounts, nil
}

func (s *accountRegistry) DeactivateAccount(ctx context.Context, orgID string, accountID string, userID string) error {
	if err := requireScope(orgID, userID); err != nil {
		return err
	}
	acc, err := s.GetAccount(ctx, orgID, accountID)
	if err != nil {
		return err
	}
	if !acc.IsActive {
		return nil
	}
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, s.now().UTC()); err != nil {
		return classify("Failed to deactivate account", err)
	}
	s.GetLogger(ctx).Info("Account deactivated", zap.String("org_id", orgID), zap.String("account_id", accountID))
	return nil
}

// ReconcileAccount recomputes the balance from the ledger. The balance and the
// ledger totals are read separately, so a post landing in between can show a
// transient mismatch.
func (s *accountRegistry) ReconcileAccount(ctx context.Context, orgID string, accountID string) (*domain.AccountReconciliation, error) {
	acc, err := s.GetAccount(ctx, orgID, accountID)
	if err != nil {
		return nil, err
	}
	totalDebit, totalCredit, err := s.ledgerRepo.SumEntriesByAccount(ctx, orgID, accountID)
	if err != nil {
		return nil, classify("Failed to sum ledger entries", err)
	}
	ledgerBalance, err := accounting.SignedAmount(acc.AccountType, totalDebit, totalCredit)
	if err != nil {
		return nil, classify("Failed to compute ledger balance", err)
	}

	result := &domain.AccountReconciliation{
		AccountID:     accountID,
		StoredBalance: acc.Balance,
		LedgerBalance: ledgerBalance,
		TotalDebit:    totalDebit,
		TotalCredit:   totalCredit,
		InBalance:     acc.Balance.Equal(ledgerBalance),
	}
	if !result.InBalance {
		s.GetLogger(ctx).Error("Account balance does not match ledger",
			zap.String("org_id", orgID),
			zap.String("account_id", accountID),
			zap.String("stored_balance", acc.Balance.String()),
			zap.String("ledger_balance", ledgerBalance.String()))
	}
	return result, nil
}

func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	out := make([]string, 0, len(input))
	for _, s := range input {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
