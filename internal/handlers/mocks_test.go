package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/SscSPs/ledger_posting_engine/internal/handlers"
	"github.com/SscSPs/ledger_posting_engine/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRegistry ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ResolveActiveAccounts(ctx context.Context, orgID string, accountIDs []string) (map[string]domain.ChartAccount, error) {
	args := m.Called(ctx, orgID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ChartAccount), args.Error(1)
}
func (m *MockAccountService) GetAccount(ctx context.Context, orgID string, accountID string) (*domain.ChartAccount, error) {
	args := m.Called(ctx, orgID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartAccount), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, orgID string, limit int, offset int) ([]domain.ChartAccount, error) {
	args := m.Called(ctx, orgID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartAccount), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, orgID string, req dto.CreateAccountRequest, userID string) (*domain.ChartAccount, error) {
	args := m.Called(ctx, orgID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartAccount), args.Error(1)
}
func (m *MockAccountService) DeactivateAccount(ctx context.Context, orgID string, accountID string, userID string) error {
	return m.Called(ctx, orgID, accountID, userID).Error(0)
}
func (m *MockAccountService) ReconcileAccount(ctx context.Context, orgID string, accountID string) (*domain.AccountReconciliation, error) {
	args := m.Called(ctx, orgID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountReconciliation), args.Error(1)
}

var _ portssvc.AccountRegistrySvcFacade = (*MockAccountService)(nil)

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) CreateJournal(ctx context.Context, orgID string, req dto.CreateJournalRequest, userID string) (*domain.Journal, error) {
	args := m.Called(ctx, orgID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockPostingService) PostJournal(ctx context.Context, orgID string, journalID string, userID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, orgID, journalID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}
func (m *MockPostingService) VoidJournal(ctx context.Context, orgID string, journalID string, userID string, reason string) (*domain.Journal, error) {
	args := m.Called(ctx, orgID, journalID, userID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockPostingService) GetJournal(ctx context.Context, orgID string, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, orgID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}
func (m *MockPostingService) ListJournals(ctx context.Context, orgID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	args := m.Called(ctx, orgID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalsResponse), args.Error(1)
}
func (m *MockPostingService) GetLedgerEntriesByJournal(ctx context.Context, orgID string, journalID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, orgID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}
func (m *MockPostingService) ListLedgerEntriesByAccount(ctx context.Context, orgID string, accountID string, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error) {
	args := m.Called(ctx, orgID, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLedgerEntriesResponse), args.Error(1)
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

const (
	testOrgID  = "org-1"
	testUserID = "user-1"
	testSecret = "test-secret-key-that-is-long-enough"
)

// handlerSuite wires the real router, auth included, over mocked services.
type handlerSuite struct {
	suite.Suite
	router      *gin.Engine
	accountSvc  *MockAccountService
	postingSvc  *MockPostingService
	healthState bool
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.accountSvc = new(MockAccountService)
	s.postingSvc = new(MockPostingService)
	s.healthState = true

	cfg := &config.Config{JWTSecret: testSecret, CORSAllowedOrigins: []string{"*"}}
	s.router = gin.New()
	handlers.RegisterRoutes(s.router, cfg,
		&portssvc.ServiceContainer{Account: s.accountSvc, Posting: s.postingSvc},
		nil,
		func() (string, bool) { return "store", s.healthState },
	)
}

func (s *handlerSuite) TearDownTest() {
	s.accountSvc.AssertExpectations(s.T())
	s.postingSvc.AssertExpectations(s.T())
}

// token creates a signed JWT for subject.
func (s *handlerSuite) token(subject string) string {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	s.Require().NoError(err)
	return signed
}

// do sends an authenticated request and returns the recorder.
func (s *handlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+s.token(testUserID))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}
