package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

type accountView struct{ st *state }

func (v accountView) FindAccountByID(_ context.Context, accountID string) (*domain.ChartAccount, error) {
	acc, ok := v.st.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return &acc, nil
}

func (v accountView) FindAccountsByIDs(_ context.Context, orgID string, accountIDs []string) (map[string]domain.ChartAccount, error) {
	found := make(map[string]domain.ChartAccount, len(accountIDs))
	for _, id := range accountIDs {
		if acc, ok := v.st.accounts[id]; ok && acc.OrgID == orgID {
			found[id] = acc
		}
	}
	return found, nil
}

// LockAccountsByIDs needs no row locks: a transaction already holds the
// store's write lock until it ends.
func (v accountView) LockAccountsByIDs(ctx context.Context, orgID string, accountIDs []string) (map[string]domain.ChartAccount, error) {
	return v.FindAccountsByIDs(ctx, orgID, accountIDs)
}

func (v accountView) ListAccounts(_ context.Context, orgID string, limit int, offset int) ([]domain.ChartAccount, error) {
	accounts := make([]domain.ChartAccount, 0)
	for _, acc := range v.st.accounts {
		if acc.OrgID == orgID {
			accounts = append(accounts, acc)
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].AccountCode < accounts[j].AccountCode
	})
	if offset >= len(accounts) {
		return []domain.ChartAccount{}, nil
	}
	accounts = accounts[offset:]
	if limit > 0 && limit < len(accounts) {
		accounts = accounts[:limit]
	}
	return accounts, nil
}

func (v accountView) SaveAccount(_ context.Context, account domain.ChartAccount) error {
	if _, ok := v.st.accounts[account.AccountID]; ok {
		return fmt.Errorf("account %s: %w", account.AccountID, apperrors.ErrDuplicate)
	}
	for _, existing := range v.st.accounts {
		if existing.OrgID == account.OrgID && existing.AccountCode == account.AccountCode {
			return fmt.Errorf("account code %s: %w", account.AccountCode, apperrors.ErrDuplicate)
		}
	}
	v.st.accounts[account.AccountID] = account
	return nil
}

func (v accountView) DeactivateAccount(_ context.Context, accountID string, userID string, now time.Time) error {
	acc, ok := v.st.accounts[accountID]
	if !ok {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	acc.IsActive = false
	acc.Touch(userID, now)
	v.st.accounts[accountID] = acc
	return nil
}

func (v accountView) IncrementBalance(_ context.Context, accountID string, delta decimal.Decimal, userID string, now time.Time) error {
	acc, ok := v.st.accounts[accountID]
	if !ok {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	acc.Balance = acc.Balance.Add(delta)
	acc.Touch(userID, now)
	v.st.accounts[accountID] = acc
	return nil
}

// FindAccountByID retrieves a committed account.
func (s *Store) FindAccountByID(ctx context.Context, accountID string) (acc *domain.ChartAccount, err error) {
	s.read(func(st *state) { acc, err = accountView{st}.FindAccountByID(ctx, accountID) })
	return acc, err
}

// FindAccountsByIDs retrieves committed accounts of an org.
func (s *Store) FindAccountsByIDs(ctx context.Context, orgID string, accountIDs []string) (found map[string]domain.ChartAccount, err error) {
	s.read(func(st *state) { found, err = accountView{st}.FindAccountsByIDs(ctx, orgID, accountIDs) })
	return found, err
}

// ListAccounts lists committed accounts of an org by account code.
func (s *Store) ListAccounts(ctx context.Context, orgID string, limit int, offset int) (accounts []domain.ChartAccount, err error) {
	s.read(func(st *state) { accounts, err = accountView{st}.ListAccounts(ctx, orgID, limit, offset) })
	return accounts, err
}

// SaveAccount adds an account to the chart.
func (s *Store) SaveAccount(ctx context.Context, account domain.ChartAccount) (err error) {
	s.write(func(st *state) { err = accountView{st}.SaveAccount(ctx, account) })
	return err
}

// DeactivateAccount marks an account inactive.
func (s *Store) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) (err error) {
	s.write(func(st *state) { err = accountView{st}.DeactivateAccount(ctx, accountID, userID, now) })
	return err
}
