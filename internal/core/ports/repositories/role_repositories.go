package repositories

import (
	"context"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
)

// RoleReader defines read operations for role grants
type RoleReader interface {
	HasRole(ctx context.Context, role domain.Role, account domain.Address) (bool, error)

	// ListRoleMembers returns grants of role ordered by grant time.
	ListRoleMembers(ctx context.Context, role domain.Role) ([]domain.RoleGrant, error)
}

// RoleWriter defines write operations for role grants
type RoleWriter interface {
	// GrantRole is idempotent; an existing grant is left untouched.
	GrantRole(ctx context.Context, grant domain.RoleGrant) error

	// RevokeRole is idempotent.
	RevokeRole(ctx context.Context, role domain.Role, account domain.Address) error
}

// RoleRepositoryFacade combines all role-related repository interfaces
type RoleRepositoryFacade interface {
	RoleReader
	RoleWriter
}
