package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/core/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.ChartAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartAccount), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, orgID string, accountIDs []string) (map[string]domain.ChartAccount, error) {
	args := m.Called(ctx, orgID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ChartAccount), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, orgID string, limit int, offset int) ([]domain.ChartAccount, error) {
	args := m.Called(ctx, orgID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartAccount), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.ChartAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

// --- Mock LedgerReader ---
type MockLedgerReader struct {
	mock.Mock
}

var _ portsrepo.LedgerReader = (*MockLedgerReader)(nil)

func (m *MockLedgerReader) FindEntriesByJournalID(ctx context.Context, journalID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerReader) ListEntriesByAccount(ctx context.Context, orgID string, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, orgID, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		token := args.Get(1).(string)
		next = &token
	}
	return args.Get(0).([]domain.LedgerEntry), next, args.Error(2)
}

func (m *MockLedgerReader) SumEntriesByAccount(ctx context.Context, orgID string, accountID string) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, orgID, accountID)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

// --- Test Suite Setup ---
type AccountRegistryTestSuite struct {
	suite.Suite
	mockRepo   *MockAccountRepository
	mockLedger *MockLedgerReader
	registry   portssvc.AccountRegistrySvcFacade
	ctx        context.Context
}

func (s *AccountRegistryTestSuite) SetupTest() {
	s.mockRepo = new(MockAccountRepository)
	s.mockLedger = new(MockLedgerReader)
	s.registry = services.NewAccountRegistry(s.mockRepo, s.mockLedger)
	s.ctx = context.Background()
}

func TestAccountRegistry(t *testing.T) {
	suite.Run(t, new(AccountRegistryTestSuite))
}

func (s *AccountRegistryTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{AccountCode: " 1000 ", AccountName: "Cash", AccountType: domain.Asset}
	s.mockRepo.On("SaveAccount", s.ctx, mock.MatchedBy(func(acc domain.ChartAccount) bool {
		return acc.AccountCode == "1000" && acc.OrgID == orgID && acc.IsActive && acc.Balance.IsZero() && acc.AccountID != ""
	})).Return(nil).Once()

	acc, err := s.registry.CreateAccount(s.ctx, orgID, req, userID)

	s.Require().NoError(err)
	s.Equal("1000", acc.AccountCode)
	s.Equal(userID, acc.CreatedBy)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *AccountRegistryTestSuite) TestCreateAccount_Validation() {
	tests := []struct {
		name string
		req  dto.CreateAccountRequest
	}{
		{name: "missing code", req: dto.CreateAccountRequest{AccountName: "Cash", AccountType: domain.Asset}},
		{name: "missing name", req: dto.CreateAccountRequest{AccountCode: "1000", AccountType: domain.Asset}},
		{name: "unknown type", req: dto.CreateAccountRequest{AccountCode: "1000", AccountName: "Cash", AccountType: "INCOME"}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.registry.CreateAccount(s.ctx, orgID, tt.req, userID)
			s.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	s.mockRepo.AssertNotCalled(s.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (s *AccountRegistryTestSuite) TestCreateAccount_DuplicateCode() {
	s.mockRepo.On("SaveAccount", s.ctx, mock.Anything).
		Return(fmt.Errorf("account code 1000: %w", apperrors.ErrDuplicate)).Once()

	_, err := s.registry.CreateAccount(s.ctx, orgID, dto.CreateAccountRequest{
		AccountCode: "1000", AccountName: "Cash", AccountType: domain.Asset,
	}, userID)

	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.Equal(apperrors.CodeDuplicate, apperrors.CodeOf(err))
}

func (s *AccountRegistryTestSuite) TestCreateAccount_StorageFailure() {
	s.mockRepo.On("SaveAccount", s.ctx, mock.Anything).Return(errors.New("connection reset")).Once()

	_, err := s.registry.CreateAccount(s.ctx, orgID, dto.CreateAccountRequest{
		AccountCode: "1000", AccountName: "Cash", AccountType: domain.Asset,
	}, userID)

	s.ErrorIs(err, apperrors.ErrTransaction)
}

func (s *AccountRegistryTestSuite) TestResolveActiveAccounts() {
	ids := []string{"cash", "payable", "cash"}
	s.mockRepo.On("FindAccountsByIDs", s.ctx, orgID, []string{"cash", "payable"}).Return(map[string]domain.ChartAccount{
		"cash":    {AccountID: "cash", OrgID: orgID, AccountCode: "1000", IsActive: true},
		"payable": {AccountID: "payable", OrgID: orgID, AccountCode: "2000", IsActive: true},
	}, nil).Once()

	found, err := s.registry.ResolveActiveAccounts(s.ctx, orgID, ids)

	s.Require().NoError(err)
	s.Len(found, 2)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *AccountRegistryTestSuite) TestResolveActiveAccounts_Rejects() {
	tests := []struct {
		name  string
		found map[string]domain.ChartAccount
	}{
		{name: "missing", found: map[string]domain.ChartAccount{
			"cash": {AccountID: "cash", OrgID: orgID, IsActive: true},
		}},
		{name: "inactive", found: map[string]domain.ChartAccount{
			"cash":    {AccountID: "cash", OrgID: orgID, IsActive: true},
			"payable": {AccountID: "payable", OrgID: orgID, IsActive: false},
		}},
		{name: "other org", found: map[string]domain.ChartAccount{
			"cash":    {AccountID: "cash", OrgID: orgID, IsActive: true},
			"payable": {AccountID: "payable", OrgID: "org-2", IsActive: true},
		}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			repo := new(MockAccountRepository)
			repo.On("FindAccountsByIDs", mock.Anything, orgID, []string{"cash", "payable"}).Return(tt.found, nil)
			registry := services.NewAccountRegistry(repo, s.mockLedger)

			_, err := registry.ResolveActiveAccounts(s.ctx, orgID, []string{"cash", "payable"})

			s.ErrorIs(err, apperrors.ErrValidation)
			s.Equal(apperrors.CodeInvalidAccount, apperrors.CodeOf(err))
		})
	}
}

func (s *AccountRegistryTestSuite) TestGetAccount_ScopedToOrg() {
	s.mockRepo.On("FindAccountByID", s.ctx, "cash").
		Return(&domain.ChartAccount{AccountID: "cash", OrgID: "org-2"}, nil).Once()

	_, err := s.registry.GetAccount(s.ctx, orgID, "cash")
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.mockRepo.On("FindAccountByID", s.ctx, "missing").
		Return(nil, fmt.Errorf("account missing: %w", apperrors.ErrNotFound)).Once()
	_, err = s.registry.GetAccount(s.ctx, orgID, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Equal("Account not found", err.Error())
}

func (s *AccountRegistryTestSuite) TestListAccounts_NormalizesPaging() {
	s.mockRepo.On("ListAccounts", s.ctx, orgID, 20, 0).Return([]domain.ChartAccount{{AccountID: "cash"}}, nil).Once()

	accounts, err := s.registry.ListAccounts(s.ctx, orgID, 0, -5)

	s.Require().NoError(err)
	s.Len(accounts, 1)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *AccountRegistryTestSuite) TestDeactivateAccount() {
	s.mockRepo.On("FindAccountByID", s.ctx, "cash").
		Return(&domain.ChartAccount{AccountID: "cash", OrgID: orgID, IsActive: true}, nil).Once()
	s.mockRepo.On("DeactivateAccount", s.ctx, "cash", userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	s.Require().NoError(s.registry.DeactivateAccount(s.ctx, orgID, "cash", userID))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *AccountRegistryTestSuite) TestDeactivateAccount_AlreadyInactive() {
	s.mockRepo.On("FindAccountByID", s.ctx, "cash").
		Return(&domain.ChartAccount{AccountID: "cash", OrgID: orgID, IsActive: false}, nil).Once()

	s.Require().NoError(s.registry.DeactivateAccount(s.ctx, orgID, "cash", userID))
	s.mockRepo.AssertNotCalled(s.T(), "DeactivateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountRegistryTestSuite) TestReconcileAccount() {
	tests := []struct {
		name        string
		accountType domain.AccountType
		balance     string
		debit       string
		credit      string
		inBalance   bool
	}{
		{name: "asset in balance", accountType: domain.Asset, balance: "300", debit: "500", credit: "200", inBalance: true},
		{name: "liability in balance", accountType: domain.Liability, balance: "500", debit: "0", credit: "500", inBalance: true},
		{name: "drifted balance", accountType: domain.Asset, balance: "301", debit: "500", credit: "200", inBalance: false},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			repo := new(MockAccountRepository)
			ledger := new(MockLedgerReader)
			repo.On("FindAccountByID", mock.Anything, "acc").Return(&domain.ChartAccount{
				AccountID: "acc", OrgID: orgID, AccountType: tt.accountType, Balance: decimal.RequireFromString(tt.balance),
			}, nil)
			ledger.On("SumEntriesByAccount", mock.Anything, orgID, "acc").
				Return(decimal.RequireFromString(tt.debit), decimal.RequireFromString(tt.credit), nil)

			rec, err := services.NewAccountRegistry(repo, ledger).ReconcileAccount(s.ctx, orgID, "acc")

			s.Require().NoError(err)
			s.Equal(tt.inBalance, rec.InBalance)
			s.True(rec.StoredBalance.Equal(decimal.RequireFromString(tt.balance)))
		})
	}
}
