package domain

import "github.com/shopspring/decimal"

// PurchaseKey is a secondary payment, in a semi-fungible asset, required to
// buy a specific token.
type PurchaseKey struct {
	Asset  Address         `json:"asset"`
	SubID  TokenID         `json:"subId"`
	Amount decimal.Decimal `json:"amount"`
}

// NoPurchaseKey is returned for tokens without a key.
func NoPurchaseKey() PurchaseKey {
	return PurchaseKey{Amount: decimal.Zero}
}

// IsSet reports whether k gates a purchase.
func (k PurchaseKey) IsSet() bool { return !k.Asset.IsZero() }

// Key returns the balance bucket k pays into.
func (k PurchaseKey) Key() SemiFungibleKey {
	return SemiFungibleKey{Asset: k.Asset, SubID: k.SubID}
}
