package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
)

type roleKey struct {
	role    domain.Role
	account domain.Address
}

// RoleRepository keeps role grants in memory.
type RoleRepository struct {
	mu     sync.RWMutex
	grants map[roleKey]domain.RoleGrant
}

var _ portsrepo.RoleRepositoryFacade = (*RoleRepository)(nil)

func NewRoleRepository() *RoleRepository {
	return &RoleRepository{grants: make(map[roleKey]domain.RoleGrant)}
}

func (r *RoleRepository) HasRole(_ context.Context, role domain.Role, account domain.Address) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.grants[roleKey{role, account}]
	return ok, nil
}

func (r *RoleRepository) ListRoleMembers(_ context.Context, role domain.Role) ([]domain.RoleGrant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.RoleGrant, 0)
	for k, g := range r.grants {
		if k.role == role {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].GrantedAt.Equal(out[j].GrantedAt) {
			return out[i].Account.String() < out[j].Account.String()
		}
		return out[i].GrantedAt.Before(out[j].GrantedAt)
	})
	return out, nil
}

func (r *RoleRepository) GrantRole(_ context.Context, grant domain.RoleGrant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := roleKey{grant.Role, grant.Account}
	if _, ok := r.grants[key]; !ok {
		r.grants[key] = grant
	}
	return nil
}

func (r *RoleRepository) RevokeRole(_ context.Context, role domain.Role, account domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.grants, roleKey{role, account})
	return nil
}
