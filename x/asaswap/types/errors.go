package types

import (
	"cosmossdk.io/errors"
)

// Module sentinel errors. They fall into three classes: validation errors
// are recoverable by resubmitting a corrected batch, arithmetic errors
// indicate a configuration or invariant violation, and authorization errors
// mean the wrong sender attempted a privileged operation. Every error is
// raised before any state mutation; a rejected batch has no effect.
var (
	// Validation
	ErrMalformedBatch        = errors.Register(ModuleName, 1, "malformed batch")
	ErrAlreadyInitialized    = errors.Register(ModuleName, 2, "pool already initialized")
	ErrPoolNotFound          = errors.Register(ModuleName, 3, "pool not found")
	ErrAlreadyRegistered     = errors.Register(ModuleName, 4, "account already registered")
	ErrNotRegistered         = errors.Register(ModuleName, 5, "account not registered")
	ErrNonZeroBalance        = errors.Register(ModuleName, 6, "account holds shares or pending withdrawals")
	ErrSlippageExceeded      = errors.Register(ModuleName, 7, "deposit ratio deviates 1% or more from pool rate")
	ErrInsufficientShares    = errors.Register(ModuleName, 8, "insufficient liquidity shares")
	ErrZeroShares            = errors.Register(ModuleName, 9, "shares amount cannot be zero")
	ErrPendingWithdrawal     = errors.Register(ModuleName, 10, "account has a pending withdrawal")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 11, "insufficient liquidity in pool")
	ErrUnknownOperation      = errors.Register(ModuleName, 12, "unknown operation")
	ErrInvalidParams         = errors.Register(ModuleName, 13, "invalid pool parameters")

	// Arithmetic
	ErrDivisionByZero = errors.Register(ModuleName, 14, "division by zero")
	ErrOverflow       = errors.Register(ModuleName, 15, "arithmetic overflow")
	ErrUnderflow      = errors.Register(ModuleName, 16, "arithmetic underflow")

	// Authorization
	ErrUnauthorized     = errors.Register(ModuleName, 17, "unauthorized")
	ErrEscrowAlreadySet = errors.Register(ModuleName, 18, "escrow address already set")
	ErrEscrowNotSet     = errors.Register(ModuleName, 19, "escrow address not set")
)

var (
	validationErrors = []*errors.Error{
		ErrMalformedBatch, ErrAlreadyInitialized, ErrPoolNotFound,
		ErrAlreadyRegistered, ErrNotRegistered, ErrNonZeroBalance,
		ErrSlippageExceeded, ErrInsufficientShares, ErrZeroShares,
		ErrPendingWithdrawal, ErrInsufficientLiquidity, ErrUnknownOperation,
		ErrInvalidParams,
	}
	arithmeticErrors    = []*errors.Error{ErrDivisionByZero, ErrOverflow, ErrUnderflow}
	authorizationErrors = []*errors.Error{ErrUnauthorized, ErrEscrowAlreadySet, ErrEscrowNotSet}
)

func isAny(err error, group []*errors.Error) bool {
	for _, e := range group {
		if errors.IsOf(err, e) {
			return true
		}
	}
	return false
}

// IsValidationError reports whether err is a batch validation failure,
// recoverable by the caller resubmitting a corrected batch.
func IsValidationError(err error) bool { return isAny(err, validationErrors) }

// IsArithmeticError reports whether err is a fixed-point arithmetic failure.
func IsArithmeticError(err error) bool { return isAny(err, arithmeticErrors) }

// IsAuthorizationError reports whether err is an authorization failure.
func IsAuthorizationError(err error) bool { return isAny(err, authorizationErrors) }
