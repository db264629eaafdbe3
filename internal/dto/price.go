package dto

import (
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetDefaultPricesRequest overwrites a collection's default prices.
type SetDefaultPricesRequest struct {
	Currencies []domain.Address  `json:"currencies" swaggertype:"array,string"`
	Amounts    []decimal.Decimal `json:"amounts" swaggertype:"array,string"`
}

// SetOverridePricesRequest sets per-token prices in one currency.
type SetOverridePricesRequest struct {
	Currency domain.Address    `json:"currency" swaggertype:"string"`
	TokenIDs []domain.TokenID  `json:"tokenIds"`
	Amounts  []decimal.Decimal `json:"amounts" swaggertype:"array,string"`
}

// ClearOverridePricesRequest removes per-token prices in one currency.
type ClearOverridePricesRequest struct {
	Currency domain.Address   `json:"currency" swaggertype:"string"`
	TokenIDs []domain.TokenID `json:"tokenIds"`
}

// PriceResponse is one resolved price. Amount is "0" when no price is set.
type PriceResponse struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"string"`
	Set      bool            `json:"set"`
}

// GetAllPricesResponse mirrors the (currencies[], amounts[]) pair.
type GetAllPricesResponse struct {
	Currencies []string          `json:"currencies"`
	Amounts    []decimal.Decimal `json:"amounts" swaggertype:"array,string"`
}

// ToPriceResponse converts a resolved price.
func ToPriceResponse(p domain.CurrencyPrice) PriceResponse {
	return PriceResponse{
		Currency: p.Currency.String(),
		Amount:   p.Price.AmountOrZero(),
		Set:      p.Price.IsSet(),
	}
}

// ToGetAllPricesResponse converts resolved prices to parallel arrays.
func ToGetAllPricesResponse(prices []domain.CurrencyPrice) GetAllPricesResponse {
	resp := GetAllPricesResponse{
		Currencies: make([]string, len(prices)),
		Amounts:    make([]decimal.Decimal, len(prices)),
	}
	for i, p := range prices {
		resp.Currencies[i] = p.Currency.String()
		resp.Amounts[i] = p.Price.AmountOrZero()
	}
	return resp
}
