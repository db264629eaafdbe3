package services_test

import (
	"testing"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/stretchr/testify/suite"
)

type PurchaseKeyServiceTestSuite struct {
	marketSuite
}

func TestPurchaseKeyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseKeyServiceTestSuite))
}

func (s *PurchaseKeyServiceTestSuite) SetupTest() {
	s.marketSuite.SetupTest()
	s.addCollection(collectionX)
}

func (s *PurchaseKeyServiceTestSuite) TestGetPurchaseKey_Unset() {
	key, err := s.svc.PurchaseKey.GetPurchaseKey(s.ctx, collectionX, 1)
	s.Require().NoError(err)
	s.False(key.IsSet())
	s.True(key.Asset.IsZero())
	s.Equal(domain.TokenID(0), key.SubID)
	s.True(key.Amount.IsZero())
}

func (s *PurchaseKeyServiceTestSuite) TestSetPurchaseKey_Overwrites() {
	first := domain.PurchaseKey{Asset: keyAssetY, SubID: 5, Amount: amount(2)}
	second := domain.PurchaseKey{Asset: keyAssetY, SubID: 6, Amount: amount(1)}
	s.Require().NoError(s.svc.PurchaseKey.SetPurchaseKey(s.ctx, admin, collectionX, tokens(1, 2), first))
	s.Require().NoError(s.svc.PurchaseKey.SetPurchaseKey(s.ctx, admin, collectionX, tokens(2), second))

	key, err := s.svc.PurchaseKey.GetPurchaseKey(s.ctx, collectionX, 1)
	s.Require().NoError(err)
	s.Equal(domain.TokenID(5), key.SubID)
	key, err = s.svc.PurchaseKey.GetPurchaseKey(s.ctx, collectionX, 2)
	s.Require().NoError(err)
	s.Equal(domain.TokenID(6), key.SubID)
	s.requireAmount(1, key.Amount)
}

func (s *PurchaseKeyServiceTestSuite) TestSetPurchaseKey_Validation() {
	tests := []struct {
		name       string
		caller     domain.Address
		collection domain.Address
		tokens     []domain.TokenID
		key        domain.PurchaseKey
		wantErr    error
	}{
		{"unregistered collection", admin, collectionSemi, tokens(1), domain.PurchaseKey{Asset: keyAssetY, SubID: 5, Amount: amount(1)}, apperrors.ErrNotFound},
		{"empty batch", admin, collectionX, nil, domain.PurchaseKey{Asset: keyAssetY, SubID: 5, Amount: amount(1)}, apperrors.ErrEmptyBatch},
		{"zero amount", admin, collectionX, tokens(1), domain.PurchaseKey{Asset: keyAssetY, SubID: 5, Amount: amount(0)}, apperrors.ErrZeroAmount},
		{"zero asset", admin, collectionX, tokens(1), domain.PurchaseKey{SubID: 5, Amount: amount(1)}, apperrors.ErrInvalidAsset},
		{"asset not a contract", admin, collectionX, tokens(1), domain.PurchaseKey{Asset: notContract, SubID: 5, Amount: amount(1)}, apperrors.ErrInvalidAsset},
		{"caller without role", stranger, collectionX, tokens(1), domain.PurchaseKey{Asset: keyAssetY, SubID: 5, Amount: amount(1)}, apperrors.ErrUnauthorized},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.svc.PurchaseKey.SetPurchaseKey(s.ctx, tt.caller, tt.collection, tt.tokens, tt.key)
			s.ErrorIs(err, tt.wantErr)
		})
	}

	key, err := s.svc.PurchaseKey.GetPurchaseKey(s.ctx, collectionX, 1)
	s.Require().NoError(err)
	s.False(key.IsSet())
}

func (s *PurchaseKeyServiceTestSuite) TestClearPurchaseKey_AllOrNothing() {
	key := domain.PurchaseKey{Asset: keyAssetY, SubID: 5, Amount: amount(2)}
	s.Require().NoError(s.svc.PurchaseKey.SetPurchaseKey(s.ctx, admin, collectionX, tokens(1, 2), key))

	err := s.svc.PurchaseKey.ClearPurchaseKey(s.ctx, admin, collectionX, tokens(1, 9, 2))
	s.Require().ErrorIs(err, apperrors.ErrNoPurchaseKey)
	token, ok := apperrors.TokenOf(err)
	s.Require().True(ok)
	s.Equal(uint64(9), token)

	for _, id := range tokens(1, 2) {
		stored, err := s.svc.PurchaseKey.GetPurchaseKey(s.ctx, collectionX, id)
		s.Require().NoError(err)
		s.True(stored.IsSet())
	}

	s.Require().NoError(s.svc.PurchaseKey.ClearPurchaseKey(s.ctx, admin, collectionX, tokens(1, 2)))
	stored, err := s.svc.PurchaseKey.GetPurchaseKey(s.ctx, collectionX, 2)
	s.Require().NoError(err)
	s.False(stored.IsSet())
}
