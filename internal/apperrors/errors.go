package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates a journal state transition that is not permitted.
var ErrInvalidState = errors.New("invalid state transition")

// ErrTransaction indicates that the underlying storage transaction failed and was rolled back.
var ErrTransaction = errors.New("transaction failed")
