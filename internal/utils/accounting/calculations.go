package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MinJournalLines is the smallest number of lines a journal may carry.
const MinJournalLines = 2

// AmountScale is the number of decimal places stored for amounts. It must match
// the NUMERIC(20, 4) amount columns in migrations/.
const AmountScale = 4

// ValidatedLines is a line set that passed ValidateLines, with its totals.
type ValidatedLines struct {
	Lines       []domain.JournalLine
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// ValidateLines checks a candidate set of journal lines. Totals are compared
// exactly, and an unequal line set always fails with UNBALANCED before any
// per-line amount rule is applied. It has no side effects.
func ValidateLines(lines []domain.JournalLine) (ValidatedLines, error) {
	if len(lines) < MinJournalLines {
		return ValidatedLines{}, apperrors.NewValidationError(apperrors.CodeTooFewLines, apperrors.MsgTooFewLines)
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	if !totalDebit.Equal(totalCredit) {
		return ValidatedLines{}, apperrors.NewValidationError(apperrors.CodeUnbalanced, apperrors.MsgUnbalanced)
	}

	for i, line := range lines {
		if err := checkLineAmounts(i+1, line); err != nil {
			return ValidatedLines{}, err
		}
	}

	return ValidatedLines{Lines: lines, TotalDebit: totalDebit, TotalCredit: totalCredit}, nil
}

func checkLineAmounts(lineNo int, line domain.JournalLine) error {
	if line.Debit.IsNegative() || line.Credit.IsNegative() {
		return apperrors.NewValidationError(apperrors.CodeInvalidAmount,
			fmt.Sprintf("Line %d: amounts cannot be negative", lineNo))
	}
	if (!line.Debit.IsZero()) == (!line.Credit.IsZero()) {
		return apperrors.NewValidationError(apperrors.CodeInvalidAmount,
			fmt.Sprintf("Line %d: exactly one of debit or credit must be non-zero", lineNo))
	}
	if exceedsScale(line.Debit) || exceedsScale(line.Credit) {
		return apperrors.NewValidationError(apperrors.CodeInvalidAmount,
			fmt.Sprintf("Line %d: amounts allow at most %d decimal places", lineNo, AmountScale))
	}
	return nil
}

// exceedsScale reports whether d cannot be stored without rounding. Trailing
// zeros such as 1.50000 are not significant.
func exceedsScale(d decimal.Decimal) bool {
	return !d.Equal(d.Truncate(AmountScale))
}

// SignedAmount returns the effect of a debit/credit pair on the balance of an
// account of the given type.
//
//	DEBIT to ASSET/EXPENSE -> Positive (+)
//	CREDIT to ASSET/EXPENSE -> Negative (-)
//	DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
//	CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
func SignedAmount(accountType domain.AccountType, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return debit.Sub(credit), nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s'", accountType)
	}
}

// BalanceChanges aggregates the signed effect of entries per account.
// accounts must contain every account referenced by entries.
func BalanceChanges(entries []domain.LedgerEntry, accounts map[string]domain.ChartAccount) (map[string]decimal.Decimal, error) {
	changes := make(map[string]decimal.Decimal, len(accounts))
	for _, entry := range entries {
		account, ok := accounts[entry.AccountID]
		if !ok {
			return nil, fmt.Errorf("account %s not loaded for ledger entry %s", entry.AccountID, entry.EntryID)
		}
		signed, err := SignedAmount(account.AccountType, entry.Debit, entry.Credit)
		if err != nil {
			return nil, fmt.Errorf("error calculating signed amount for account %s: %w", entry.AccountID, err)
		}
		changes[entry.AccountID] = changes[entry.AccountID].Add(signed)
	}
	return changes, nil
}
