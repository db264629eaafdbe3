package dto

import (
	"time"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
)

// AddCurrencyRequest registers a fungible asset as an accepted currency.
type AddCurrencyRequest struct {
	Address domain.Address `json:"address" swaggertype:"string" example:"0x9a1f5cbd4e0b3e1e1c2b6a37d0b1f7e6a9c4d211"`
	Symbol  string         `json:"symbol" binding:"omitempty,max=16"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Address       string    `json:"address"`
	Symbol        string    `json:"symbol"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Address:       curr.Address.String(),
		Symbol:        curr.Symbol,
		CreatedAt:     curr.CreatedAt,
		CreatedBy:     curr.CreatedBy,
		LastUpdatedAt: curr.LastUpdatedAt,
		LastUpdatedBy: curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
