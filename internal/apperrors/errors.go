package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller lacks the role required for the operation.
var ErrUnauthorized = errors.New("caller is not authorized")

// Input validation failures.
var (
	ErrEmptyBatch        = errors.New("tokenIds[] cannot be empty")
	ErrLengthMismatch    = errors.New("currency and amounts must be the same size")
	ErrZeroAmount        = errors.New("amount cannot be 0")
	ErrInvalidCurrency   = errors.New("invalid currency address")
	ErrInvalidCollection = errors.New("invalid nft address")
	ErrInvalidAsset      = errors.New("invalid purchase key asset address")
)

// Business rule failures.
var (
	ErrNoDefaultPrice      = errors.New("nft must have at least one default price")
	ErrTokenNotListed      = errors.New("token is not listed")
	ErrNoPriceForCurrency  = errors.New("no price found for currency")
	ErrPurchaseKeyRequired = errors.New("need purchaseKey to buy this tokenId")
	ErrNoOverride          = errors.New("token has no overridden price")
	ErrNoPurchaseKey       = errors.New("purchase key not found for the tokenId")
	ErrBalanceOutstanding  = errors.New("need to withdraw balance")
	ErrNoBalanceAvailable  = errors.New("no balance available")
	ErrCollectionInUse     = errors.New("collection still has listed tokens")
	ErrReentrantCall       = errors.New("reentrant call rejected")
)

// ErrExternalLedger marks a failure reported by one of the asset ledgers.
var ErrExternalLedger = errors.New("asset ledger rejected the transfer")

// AppError carries an HTTP-ish status code together with the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// TokenError names the token a batch operation failed on.
type TokenError struct {
	Err     error
	TokenID uint64
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s (tokenId %d)", e.Err.Error(), e.TokenID)
}

func (e *TokenError) Unwrap() error { return e.Err }

// NewTokenError wraps a sentinel with the offending token id.
func NewTokenError(err error, tokenID uint64) error {
	return &TokenError{Err: err, TokenID: tokenID}
}

// TokenOf extracts the token id from err, if one was attached.
func TokenOf(err error) (uint64, bool) {
	var te *TokenError
	if errors.As(err, &te) {
		return te.TokenID, true
	}
	return 0, false
}

// ExternalError wraps a collaborator failure so it stays distinguishable
// while keeping the collaborator's own message.
func ExternalError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrExternalLedger, err)
}
