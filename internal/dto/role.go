package dto

import (
	"time"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
)

// RoleChangeRequest grants or revokes a role.
type RoleChangeRequest struct {
	Role    string         `json:"role" binding:"required,oneof=DEFAULT_ADMIN NFT_ADMIN WITHDRAW"`
	Account domain.Address `json:"account" swaggertype:"string"`
}

// RoleGrantResponse renders one role grant.
type RoleGrantResponse struct {
	Role      string    `json:"role"`
	Account   string    `json:"account"`
	GrantedBy string    `json:"grantedBy"`
	GrantedAt time.Time `json:"grantedAt"`
}

// ToRoleGrantResponses converts role grants.
func ToRoleGrantResponses(grants []domain.RoleGrant) []RoleGrantResponse {
	out := make([]RoleGrantResponse, len(grants))
	for i, g := range grants {
		out[i] = RoleGrantResponse{
			Role:      string(g.Role),
			Account:   g.Account.String(),
			GrantedBy: g.GrantedBy.String(),
			GrantedAt: g.GrantedAt,
		}
	}
	return out
}
