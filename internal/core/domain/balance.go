package domain

import "github.com/shopspring/decimal"

// SemiFungibleKey identifies one semi-fungible balance bucket.
type SemiFungibleKey struct {
	Asset Address `json:"asset"`
	SubID TokenID `json:"subId"`
}

// CurrencyBalance is the market's holding of one currency.
type CurrencyBalance struct {
	Currency Address         `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// SemiFungibleBalance is the market's holding of one (asset, subId) pair.
type SemiFungibleBalance struct {
	SemiFungibleKey
	Amount decimal.Decimal `json:"amount"`
}

// Balances is a snapshot of everything the market holds.
type Balances struct {
	Currencies   []CurrencyBalance     `json:"currencies"`
	SemiFungible []SemiFungibleBalance `json:"semiFungible"`
}
