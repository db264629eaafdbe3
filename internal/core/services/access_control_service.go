package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
)

// accessControlService stores role grants and answers authorization checks.
type accessControlService struct {
	BaseService
	roleRepo   portsrepo.RoleRepositoryFacade
	serializer *Serializer
}

// NewAccessControlService creates the role service.
func NewAccessControlService(roleRepo portsrepo.RoleRepositoryFacade, serializer *Serializer) portssvc.AccessControlSvcFacade {
	svc := &accessControlService{roleRepo: roleRepo, serializer: serializer}
	svc.Authorizer = svc
	return svc
}

var _ portssvc.AccessControlSvcFacade = (*accessControlService)(nil)

// AuthorizeCaller implements portssvc.RoleAuthorizerSvc.
func (s *accessControlService) AuthorizeCaller(ctx context.Context, account domain.Address, role domain.Role) error {
	ok, err := s.roleRepo.HasRole(ctx, role, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to check role membership",
			slog.String("account", account.String()),
			slog.String("role", string(role)))
		return fmt.Errorf("failed to check role %s: %w", role, err)
	}
	if !ok {
		s.LogDebug(ctx, "Caller lacks required role",
			slog.String("account", account.String()),
			slog.String("role", string(role)))
		return fmt.Errorf("%w: %s does not hold %s", apperrors.ErrUnauthorized, account, role)
	}
	return nil
}

func (s *accessControlService) GrantRole(ctx context.Context, caller domain.Address, role domain.Role, account domain.Address) error {
	if err := s.AuthorizeCaller(ctx, caller, domain.RoleDefaultAdmin); err != nil {
		return err
	}
	if err := validateRoleChange(role, account); err != nil {
		return err
	}
	err := s.serializer.Do(ctx, func(ctx context.Context) error {
		return s.roleRepo.GrantRole(ctx, domain.RoleGrant{
			Role:      role,
			Account:   account,
			GrantedBy: caller,
			GrantedAt: time.Now().UTC(),
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to grant role", slog.String("role", string(role)), slog.String("account", account.String()))
		return err
	}
	s.LogInfo(ctx, "Role granted",
		slog.String("role", string(role)),
		slog.String("account", account.String()),
		slog.String("granted_by", caller.String()))
	return nil
}

func (s *accessControlService) RevokeRole(ctx context.Context, caller domain.Address, role domain.Role, account domain.Address) error {
	if err := s.AuthorizeCaller(ctx, caller, domain.RoleDefaultAdmin); err != nil {
		return err
	}
	if err := validateRoleChange(role, account); err != nil {
		return err
	}
	err := s.serializer.Do(ctx, func(ctx context.Context) error {
		return s.roleRepo.RevokeRole(ctx, role, account)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to revoke role", slog.String("role", string(role)), slog.String("account", account.String()))
		return err
	}
	s.LogInfo(ctx, "Role revoked",
		slog.String("role", string(role)),
		slog.String("account", account.String()),
		slog.String("revoked_by", caller.String()))
	return nil
}

func (s *accessControlService) HasRole(ctx context.Context, role domain.Role, account domain.Address) (bool, error) {
	if !role.Valid() {
		return false, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}
	return s.roleRepo.HasRole(ctx, role, account)
}

func (s *accessControlService) ListRoleMembers(ctx context.Context, role domain.Role) ([]domain.RoleGrant, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}
	grants, err := s.roleRepo.ListRoleMembers(ctx, role)
	if err != nil {
		s.LogError(ctx, err, "Failed to list role members", slog.String("role", string(role)))
		return nil, fmt.Errorf("failed to list members of %s: %w", role, err)
	}
	if grants == nil {
		return []domain.RoleGrant{}, nil
	}
	return grants, nil
}

func (s *accessControlService) Bootstrap(ctx context.Context, admin domain.Address) error {
	if admin.IsZero() {
		return fmt.Errorf("%w: bootstrap admin address is empty", apperrors.ErrValidation)
	}
	return s.serializer.Do(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()
		for _, role := range domain.AllRoles {
			grant := domain.RoleGrant{Role: role, Account: admin, GrantedBy: admin, GrantedAt: now}
			if err := s.roleRepo.GrantRole(ctx, grant); err != nil {
				return fmt.Errorf("failed to grant %s to %s: %w", role, admin, err)
			}
		}
		s.LogInfo(ctx, "Bootstrap admin granted all roles", slog.String("admin", admin.String()))
		return nil
	})
}

func validateRoleChange(role domain.Role, account domain.Address) error {
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}
	if account.IsZero() {
		return fmt.Errorf("%w: account address is empty", apperrors.ErrValidation)
	}
	return nil
}
