package dto

import "github.com/agarrido2001/XaveMarket/internal/core/domain"

// ListingBatchRequest adds or removes tokens from the market.
type ListingBatchRequest struct {
	TokenIDs []domain.TokenID `json:"tokenIds"`
}

// ListListingsParams defines query parameters for listing enumeration.
type ListListingsParams struct {
	Limit     int     `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// ListListingsResponse is one page of listed tokens.
type ListListingsResponse struct {
	Collection string           `json:"collection"`
	TokenIDs   []domain.TokenID `json:"tokenIds"`
	NextToken  *string          `json:"nextToken,omitempty"`
}

// IsListedResponse reports listing membership of one token.
type IsListedResponse struct {
	Collection string         `json:"collection"`
	TokenID    domain.TokenID `json:"tokenId"`
	Listed     bool           `json:"listed"`
}
