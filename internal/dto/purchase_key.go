package dto

import (
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetPurchaseKeyRequest gates tokens behind a semi-fungible payment.
type SetPurchaseKeyRequest struct {
	TokenIDs []domain.TokenID `json:"tokenIds"`
	Asset    domain.Address   `json:"asset" swaggertype:"string"`
	SubID    domain.TokenID   `json:"subId"`
	Amount   decimal.Decimal  `json:"amount" swaggertype:"string"`
}

// ClearPurchaseKeyRequest removes purchase keys from tokens.
type ClearPurchaseKeyRequest struct {
	TokenIDs []domain.TokenID `json:"tokenIds"`
}

// PurchaseKeyResponse renders a purchase key. An absent key has the zero
// asset and amount 0.
type PurchaseKeyResponse struct {
	Asset  string          `json:"asset"`
	SubID  domain.TokenID  `json:"subId"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`
}

// ToPurchaseKeyResponse converts a domain.PurchaseKey.
func ToPurchaseKeyResponse(k domain.PurchaseKey) PurchaseKeyResponse {
	return PurchaseKeyResponse{Asset: k.Asset.String(), SubID: k.SubID, Amount: k.Amount}
}
