package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is the receipt of a settled BuyToken call.
type Purchase struct {
	Buyer       Address               `json:"buyer"`
	Collection  Address               `json:"collection"`
	Tokens      []TokenID             `json:"tokenIds"`
	Currency    Address               `json:"currency"`
	Total       decimal.Decimal       `json:"total"`
	KeysPaid    []SemiFungibleBalance `json:"keysPaid"`
	PurchasedAt time.Time             `json:"purchasedAt"`
}

// Withdrawal is the receipt of a Withdraw call.
type Withdrawal struct {
	Recipient    Address               `json:"recipient"`
	Currencies   []CurrencyBalance     `json:"currencies"`
	SemiFungible []SemiFungibleBalance `json:"semiFungible"`
	WithdrawnAt  time.Time             `json:"withdrawnAt"`
}
