package mapping

import (
	"fmt"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/models"
)

// ToModelRoleGrant converts a domain RoleGrant to a model RoleGrant
func ToModelRoleGrant(d domain.RoleGrant) models.RoleGrant {
	return models.RoleGrant{
		Role:      string(d.Role),
		Account:   d.Account.String(),
		GrantedBy: d.GrantedBy.String(),
		GrantedAt: d.GrantedAt,
	}
}

// ToDomainRoleGrant converts a model RoleGrant to a domain RoleGrant
func ToDomainRoleGrant(m models.RoleGrant) (domain.RoleGrant, error) {
	account, err := domain.ParseAddress(m.Account)
	if err != nil {
		return domain.RoleGrant{}, fmt.Errorf("stored grant account: %w", err)
	}
	grantedBy, err := domain.ParseAddress(m.GrantedBy)
	if err != nil {
		return domain.RoleGrant{}, fmt.Errorf("stored grant issuer: %w", err)
	}
	return domain.RoleGrant{
		Role:      domain.Role(m.Role),
		Account:   account,
		GrantedBy: grantedBy,
		GrantedAt: m.GrantedAt,
	}, nil
}
