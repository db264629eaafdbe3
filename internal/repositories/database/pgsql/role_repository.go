package pgsql

import (
	"context"
	"fmt"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	"github.com/agarrido2001/XaveMarket/internal/models"
	"github.com/agarrido2001/XaveMarket/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRoleRepository struct {
	BaseRepository
}

// newPgxRoleRepository creates a new repository for role grants.
func newPgxRoleRepository(pool *pgxpool.Pool) portsrepo.RoleRepositoryFacade {
	return &PgxRoleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RoleRepositoryFacade = (*PgxRoleRepository)(nil)

// HasRole reports whether account holds role.
func (r *PgxRoleRepository) HasRole(ctx context.Context, role domain.Role, account domain.Address) (bool, error) {
	var held bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM role_grants WHERE role = $1 AND account = $2)`,
		string(role), account.String()).Scan(&held)
	if err != nil {
		return false, fmt.Errorf("failed to check role %s: %w", role, err)
	}
	return held, nil
}

// ListRoleMembers retrieves the grants of role ordered by grant time.
func (r *PgxRoleRepository) ListRoleMembers(ctx context.Context, role domain.Role) ([]domain.RoleGrant, error) {
	query := `
		SELECT role, account, granted_by, granted_at
		FROM role_grants WHERE role = $1
		ORDER BY granted_at, account`

	rows, err := r.Pool.Query(ctx, query, string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to query members of %s: %w", role, err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RoleGrant, error) {
		var m models.RoleGrant
		err := row.Scan(&m.Role, &m.Account, &m.GrantedBy, &m.GrantedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan members of %s: %w", role, err)
	}

	grants := make([]domain.RoleGrant, 0, len(ms))
	for _, m := range ms {
		g, err := mapping.ToDomainRoleGrant(m)
		if err != nil {
			return nil, err
		}
		grants = append(grants, g)
	}
	return grants, nil
}

// GrantRole records a grant; an existing grant keeps its original issuer and time.
func (r *PgxRoleRepository) GrantRole(ctx context.Context, grant domain.RoleGrant) error {
	m := mapping.ToModelRoleGrant(grant)
	query := `
		INSERT INTO role_grants (role, account, granted_by, granted_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (role, account) DO NOTHING`
	if _, err := r.Pool.Exec(ctx, query, m.Role, m.Account, m.GrantedBy, m.GrantedAt); err != nil {
		return fmt.Errorf("failed to grant %s: %w", m.Role, err)
	}
	return nil
}

// RevokeRole removes a grant if present.
func (r *PgxRoleRepository) RevokeRole(ctx context.Context, role domain.Role, account domain.Address) error {
	query := `DELETE FROM role_grants WHERE role = $1 AND account = $2`
	if _, err := r.Pool.Exec(ctx, query, string(role), account.String()); err != nil {
		return fmt.Errorf("failed to revoke %s: %w", role, err)
	}
	return nil
}
