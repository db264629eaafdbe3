package domain

import "github.com/shopspring/decimal"

// ListingChanged is emitted when tokens enter or leave the market.
type ListingChanged struct {
	Added      bool      `json:"added"`
	Collection Address   `json:"collection"`
	Tokens     []TokenID `json:"tokenIds"`
}

// Purchased is emitted once per settled batch. Total is the aggregate over
// the batch.
type Purchased struct {
	Buyer      Address         `json:"buyer"`
	Collection Address         `json:"collection"`
	Tokens     []TokenID       `json:"tokenIds"`
	Currency   Address         `json:"currency"`
	Total      decimal.Decimal `json:"total"`
}
