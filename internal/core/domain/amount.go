package domain

import (
	"fmt"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ValidateAmount checks that d is a positive whole number of base units.
func ValidateAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("%w: amount %s is negative", apperrors.ErrValidation, d.String())
	}
	if d.IsZero() {
		return apperrors.ErrZeroAmount
	}
	if !d.IsInteger() {
		return fmt.Errorf("%w: amount %s is not a whole number of base units", apperrors.ErrValidation, d.String())
	}
	return nil
}

// Price is an optional amount. An unset price is distinct from any amount;
// zero is never a valid set price.
type Price struct {
	amount decimal.Decimal
	set    bool
}

// PriceOf returns a set price.
func PriceOf(amount decimal.Decimal) Price { return Price{amount: amount, set: true} }

// NoPrice returns the unset price.
func NoPrice() Price { return Price{} }

// Get returns the amount and whether the price is set.
func (p Price) Get() (decimal.Decimal, bool) { return p.amount, p.set }

// IsSet reports whether p holds an amount.
func (p Price) IsSet() bool { return p.set }

// AmountOrZero renders p for wire formats that use 0 for "unset".
func (p Price) AmountOrZero() decimal.Decimal {
	if !p.set {
		return decimal.Zero
	}
	return p.amount
}

func (p Price) String() string {
	if !p.set {
		return "unset"
	}
	return p.amount.String()
}

// CurrencyPrice pairs a currency with the price resolved in it.
type CurrencyPrice struct {
	Currency Address
	Price    Price
}
