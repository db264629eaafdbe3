package dto

import (
	"time"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddCollectionRequest registers an item contract. When Currencies is
// non-empty the default prices are set in the same transaction.
type AddCollectionRequest struct {
	Address    domain.Address    `json:"address" swaggertype:"string"`
	Standard   string            `json:"standard" binding:"required,oneof=erc721 erc1155"`
	Holder     domain.Address    `json:"holder" swaggertype:"string"`
	Currencies []domain.Address  `json:"currencies,omitempty" swaggertype:"array,string"`
	Amounts    []decimal.Decimal `json:"amounts,omitempty" swaggertype:"array,string"`
}

// WithPrices reports whether the request carries default prices.
func (r AddCollectionRequest) WithPrices() bool {
	return len(r.Currencies) > 0 || len(r.Amounts) > 0
}

// CollectionResponse defines the data returned for a collection.
type CollectionResponse struct {
	Address       string    `json:"address"`
	Standard      string    `json:"standard"`
	Holder        string    `json:"holder,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCollectionResponse converts a domain.Collection to CollectionResponse DTO
func ToCollectionResponse(c *domain.Collection) CollectionResponse {
	resp := CollectionResponse{
		Address:       c.Address.String(),
		Standard:      string(c.Standard),
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
	if !c.Holder.IsZero() {
		resp.Holder = c.Holder.String()
	}
	return resp
}

// ToListCollectionResponse converts a slice of domain.Collection to response DTOs
func ToListCollectionResponse(collections []domain.Collection) []CollectionResponse {
	res := make([]CollectionResponse, len(collections))
	for i := range collections {
		res[i] = ToCollectionResponse(&collections[i])
	}
	return res
}
