package services_test

import (
	"testing"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/dto"
	"github.com/stretchr/testify/suite"
)

type AccessControlServiceTestSuite struct {
	marketSuite
}

func TestAccessControlServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccessControlServiceTestSuite))
}

func (s *AccessControlServiceTestSuite) TestBootstrapGrantsAllRoles() {
	for _, role := range domain.AllRoles {
		ok, err := s.svc.AccessControl.HasRole(s.ctx, role, admin)
		s.Require().NoError(err)
		s.True(ok, "admin should hold %s", role)
	}
	s.ErrorIs(s.svc.AccessControl.Bootstrap(s.ctx, domain.ZeroAddress), apperrors.ErrValidation)
}

func (s *AccessControlServiceTestSuite) TestGrantAndRevoke() {
	s.Require().NoError(s.svc.AccessControl.GrantRole(s.ctx, admin, domain.RoleNFTAdmin, seller))
	s.Require().NoError(s.svc.AccessControl.GrantRole(s.ctx, admin, domain.RoleNFTAdmin, seller))

	members, err := s.svc.AccessControl.ListRoleMembers(s.ctx, domain.RoleNFTAdmin)
	s.Require().NoError(err)
	s.Require().Len(members, 2)
	s.Equal(admin, members[0].Account)
	s.Equal(seller, members[1].Account)
	s.Equal(admin, members[1].GrantedBy)

	// The new admin can manage the registries now.
	_, err = s.svc.Currency.AddCurrency(s.ctx, seller, dto.AddCurrencyRequest{Address: currencyA})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.AccessControl.RevokeRole(s.ctx, admin, domain.RoleNFTAdmin, seller))
	ok, err := s.svc.AccessControl.HasRole(s.ctx, domain.RoleNFTAdmin, seller)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *AccessControlServiceTestSuite) TestRoleChangesNeedDefaultAdmin() {
	s.Require().NoError(s.svc.AccessControl.GrantRole(s.ctx, admin, domain.RoleNFTAdmin, seller))

	err := s.svc.AccessControl.GrantRole(s.ctx, seller, domain.RoleWithdraw, seller)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	err = s.svc.AccessControl.RevokeRole(s.ctx, seller, domain.RoleDefaultAdmin, admin)
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	ok, err := s.svc.AccessControl.HasRole(s.ctx, domain.RoleWithdraw, seller)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *AccessControlServiceTestSuite) TestUnknownRole() {
	s.ErrorIs(s.svc.AccessControl.GrantRole(s.ctx, admin, domain.Role("MINTER"), seller), apperrors.ErrValidation)
	s.ErrorIs(s.svc.AccessControl.GrantRole(s.ctx, admin, domain.RoleWithdraw, domain.ZeroAddress), apperrors.ErrValidation)
	_, err := s.svc.AccessControl.ListRoleMembers(s.ctx, domain.Role("MINTER"))
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.svc.AccessControl.HasRole(s.ctx, domain.Role(""), seller)
	s.ErrorIs(err, apperrors.ErrValidation)
}
