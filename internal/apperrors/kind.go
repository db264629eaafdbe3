package apperrors

import "errors"

// Kind groups errors by how they were detected.
type Kind string

const (
	KindValidation Kind = "validation"
	KindBusiness   Kind = "business"
	KindExternal   Kind = "external"
	KindInternal   Kind = "internal"
)

var validationErrors = []error{
	ErrEmptyBatch, ErrLengthMismatch, ErrZeroAmount, ErrInvalidCurrency,
	ErrInvalidCollection, ErrInvalidAsset, ErrNotFound, ErrDuplicate,
	ErrUnauthorized, ErrValidation,
}

var businessErrors = []error{
	ErrNoDefaultPrice, ErrTokenNotListed, ErrNoPriceForCurrency,
	ErrPurchaseKeyRequired, ErrNoOverride, ErrNoPurchaseKey,
	ErrBalanceOutstanding, ErrNoBalanceAvailable, ErrCollectionInUse,
	ErrReentrantCall,
}

// Classify reports the Kind of err. Unknown errors are internal.
func Classify(err error) Kind {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrExternalLedger) {
		return KindExternal
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return KindValidation
		}
	}
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return KindBusiness
		}
	}
	return KindInternal
}
