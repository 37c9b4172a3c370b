package apperrors

import (
	"errors"
)

// ErrorCode names the specific ledger rule that was violated.
type ErrorCode string

const (
	CodeUnbalanced        ErrorCode = "UNBALANCED"
	CodeTooFewLines       ErrorCode = "TOO_FEW_LINES"
	CodeInvalidAccount    ErrorCode = "INVALID_ACCOUNT"
	CodeInvalidAmount     ErrorCode = "INVALID_AMOUNT"
	CodeMissingReason     ErrorCode = "MISSING_REASON"
	CodeInvalidInput      ErrorCode = "INVALID_INPUT"
	CodeNotFound          ErrorCode = "NOT_FOUND"
	CodeInvalidState      ErrorCode = "INVALID_STATE"
	CodeDuplicate         ErrorCode = "DUPLICATE"
	CodeTransactionFailed ErrorCode = "TRANSACTION_FAILED"
)

// Messages surfaced verbatim to callers.
const (
	MsgUnbalanced        = "Journal entries must balance"
	MsgTooFewLines       = "At least 2 journal lines required"
	MsgOnlyDraftPostable = "Only DRAFT journals can be posted"
	MsgOnlyPostedVoid    = "Only posted journals can be voided"
	MsgMissingReason     = "Void reason is required"
)

// LedgerError is a classified error: Kind is one of the package sentinels so
// callers can branch with errors.Is, Code and Message describe the exact rule.
type LedgerError struct {
	Code    ErrorCode
	Message string
	Kind    error
	Err     error
}

func (e *LedgerError) Error() string {
	return e.Message
}

func (e *LedgerError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewValidationError builds a caller-correctable error.
func NewValidationError(code ErrorCode, message string) *LedgerError {
	return &LedgerError{Code: code, Message: message, Kind: ErrValidation}
}

// NewNotFoundError reports a missing or out-of-scope resource.
func NewNotFoundError(message string) *LedgerError {
	return &LedgerError{Code: CodeNotFound, Message: message, Kind: ErrNotFound}
}

// NewInvalidStateError reports a rejected state machine transition.
func NewInvalidStateError(message string) *LedgerError {
	return &LedgerError{Code: CodeInvalidState, Message: message, Kind: ErrInvalidState}
}

// NewDuplicateError reports a uniqueness violation.
func NewDuplicateError(message string) *LedgerError {
	return &LedgerError{Code: CodeDuplicate, Message: message, Kind: ErrDuplicate}
}

// NewTransactionError wraps a storage failure after rollback.
func NewTransactionError(message string, err error) *LedgerError {
	return &LedgerError{Code: CodeTransactionFailed, Message: message, Kind: ErrTransaction, Err: err}
}

// CodeOf returns the ErrorCode carried by err, or "" when err is not a LedgerError.
func CodeOf(err error) ErrorCode {
	var le *LedgerError
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}

// IsClassified reports whether err already carries one of the ledger error kinds.
func IsClassified(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrTransaction)
}
