package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Vacation request errors
	ErrRequestNotFound     = errors.New("vacation request not found")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrInsufficientNotice  = errors.New("insufficient notice")
	ErrEmptyRange          = errors.New("no working days in range")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidState        = errors.New("invalid request state")

	// External integration errors
	ErrExternalUnavailable = errors.New("external balance system unavailable")
	ErrDeductionRejected   = errors.New("external deduction rejected")

	// Actor errors
	ErrUserNotFound       = errors.New("user not found")
	ErrActorNotFound      = errors.New("acting user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
