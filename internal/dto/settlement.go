package dto

import (
	"time"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuyTokenRequest buys a batch of tokens of one collection in one currency.
type BuyTokenRequest struct {
	Collection domain.Address   `json:"collection" swaggertype:"string"`
	TokenIDs   []domain.TokenID `json:"tokenIds"`
	Currency   domain.Address   `json:"currency" swaggertype:"string"`
}

// AmountEntry is one (asset, subId, amount) line of a receipt.
type AmountEntry struct {
	Asset  string          `json:"asset"`
	SubID  *domain.TokenID `json:"subId,omitempty"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`
}

// PurchaseResponse is the receipt of a purchase.
type PurchaseResponse struct {
	Buyer       string           `json:"buyer"`
	Collection  string           `json:"collection"`
	TokenIDs    []domain.TokenID `json:"tokenIds"`
	Currency    string           `json:"currency"`
	Total       decimal.Decimal  `json:"total" swaggertype:"string"`
	KeysPaid    []AmountEntry    `json:"keysPaid"`
	PurchasedAt time.Time        `json:"purchasedAt"`
}

// WithdrawalResponse is the receipt of a withdrawal.
type WithdrawalResponse struct {
	Recipient    string        `json:"recipient"`
	Currencies   []AmountEntry `json:"currencies"`
	SemiFungible []AmountEntry `json:"semiFungible"`
	WithdrawnAt  time.Time     `json:"withdrawnAt"`
}

// BalancesResponse lists the market's holdings.
type BalancesResponse struct {
	Currencies   []AmountEntry `json:"currencies"`
	SemiFungible []AmountEntry `json:"semiFungible"`
}

func currencyEntries(in []domain.CurrencyBalance) []AmountEntry {
	out := make([]AmountEntry, len(in))
	for i, b := range in {
		out[i] = AmountEntry{Asset: b.Currency.String(), Amount: b.Amount}
	}
	return out
}

func semiFungibleEntries(in []domain.SemiFungibleBalance) []AmountEntry {
	out := make([]AmountEntry, len(in))
	for i, b := range in {
		subID := b.SubID
		out[i] = AmountEntry{Asset: b.Asset.String(), SubID: &subID, Amount: b.Amount}
	}
	return out
}

// ToPurchaseResponse converts a domain.Purchase.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		Buyer:       p.Buyer.String(),
		Collection:  p.Collection.String(),
		TokenIDs:    p.Tokens,
		Currency:    p.Currency.String(),
		Total:       p.Total,
		KeysPaid:    semiFungibleEntries(p.KeysPaid),
		PurchasedAt: p.PurchasedAt,
	}
}

// ToWithdrawalResponse converts a domain.Withdrawal.
func ToWithdrawalResponse(w *domain.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		Recipient:    w.Recipient.String(),
		Currencies:   currencyEntries(w.Currencies),
		SemiFungible: semiFungibleEntries(w.SemiFungible),
		WithdrawnAt:  w.WithdrawnAt,
	}
}

// ToBalancesResponse converts a domain.Balances snapshot.
func ToBalancesResponse(b *domain.Balances) BalancesResponse {
	return BalancesResponse{
		Currencies:   currencyEntries(b.Currencies),
		SemiFungible: semiFungibleEntries(b.SemiFungible),
	}
}
