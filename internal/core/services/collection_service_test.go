package services_test

import (
	"testing"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/dto"
	"github.com/stretchr/testify/suite"
)

type CollectionServiceTestSuite struct {
	marketSuite
}

func TestCollectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionServiceTestSuite))
}

func (s *CollectionServiceTestSuite) TestAddCollection_DefaultsToERC721() {
	c, err := s.svc.Collection.AddCollection(s.ctx, admin, dto.AddCollectionRequest{Address: collectionX, Holder: seller})
	s.Require().NoError(err)
	s.Equal(domain.StandardERC721, c.Standard)
	s.True(c.Holder.IsZero())

	got, err := s.svc.Collection.GetCollection(s.ctx, collectionX)
	s.Require().NoError(err)
	s.Equal(collectionX, got.Address)
}

func (s *CollectionServiceTestSuite) TestAddCollection_SemiFungibleNeedsHolder() {
	_, err := s.svc.Collection.AddCollection(s.ctx, admin, dto.AddCollectionRequest{Address: collectionSemi, Standard: "erc1155"})
	s.ErrorIs(err, apperrors.ErrInvalidCollection)

	c, err := s.svc.Collection.AddCollection(s.ctx, admin, dto.AddCollectionRequest{Address: collectionSemi, Standard: "erc1155", Holder: seller})
	s.Require().NoError(err)
	s.Equal(seller, c.Holder)
}

func (s *CollectionServiceTestSuite) TestAddCollection_Rejected() {
	tests := []struct {
		name    string
		caller  domain.Address
		req     dto.AddCollectionRequest
		wantErr error
	}{
		{"zero address", admin, dto.AddCollectionRequest{Address: domain.ZeroAddress}, apperrors.ErrInvalidCollection},
		{"not a contract", admin, dto.AddCollectionRequest{Address: notContract}, apperrors.ErrInvalidCollection},
		{"unknown standard", admin, dto.AddCollectionRequest{Address: collectionX, Standard: "erc20"}, apperrors.ErrInvalidCollection},
		{"caller without role", stranger, dto.AddCollectionRequest{Address: collectionX}, apperrors.ErrUnauthorized},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.Collection.AddCollection(s.ctx, tt.caller, tt.req)
			s.ErrorIs(err, tt.wantErr)
		})
	}

	list, err := s.svc.Collection.ListCollections(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *CollectionServiceTestSuite) TestAddCollection_Duplicate() {
	s.addCollection(collectionX)

	_, err := s.svc.Collection.AddCollection(s.ctx, admin, dto.AddCollectionRequest{Address: collectionX})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *CollectionServiceTestSuite) TestAddCollectionWithPrices_Atomic() {
	s.addCurrency(currencyA, "AAA")
	req := dto.AddCollectionRequest{Address: collectionX}

	// currencyB is not registered, so nothing may be stored.
	_, err := s.svc.Collection.AddCollectionWithPrices(s.ctx, admin, req, []domain.Address{currencyA, currencyB}, amounts(100, 200))
	s.ErrorIs(err, apperrors.ErrInvalidCurrency)
	_, err = s.svc.Collection.GetCollection(s.ctx, collectionX)
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.svc.Collection.AddCollectionWithPrices(s.ctx, admin, req, []domain.Address{currencyA}, amounts(100))
	s.Require().NoError(err)
	price, err := s.svc.Price.ResolvePrice(s.ctx, collectionX, 9, currencyA)
	s.Require().NoError(err)
	got, ok := price.Get()
	s.Require().True(ok)
	s.requireAmount(100, got)
}

func (s *CollectionServiceTestSuite) TestRemoveCollection() {
	s.setupMarket()
	s.listItems(1)

	err := s.svc.Collection.RemoveCollection(s.ctx, admin, collectionX)
	s.ErrorIs(err, apperrors.ErrCollectionInUse)

	s.Require().NoError(s.svc.Listing.RemoveFromMarket(s.ctx, admin, collectionX, tokens(1)))
	s.Require().NoError(s.svc.Collection.RemoveCollection(s.ctx, admin, collectionX))

	_, err = s.svc.Collection.GetCollection(s.ctx, collectionX)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.svc.Collection.RemoveCollection(s.ctx, admin, collectionX), apperrors.ErrNotFound)

	// Prices survive and apply again once the collection is re-registered.
	s.addCollection(collectionX)
	price, err := s.svc.Price.ResolvePrice(s.ctx, collectionX, 1, currencyA)
	s.Require().NoError(err)
	s.True(price.IsSet())
}
