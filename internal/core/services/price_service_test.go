package services_test

import (
	"testing"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PriceServiceTestSuite struct {
	marketSuite
}

func TestPriceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PriceServiceTestSuite))
}

func (s *PriceServiceTestSuite) SetupTest() {
	s.marketSuite.SetupTest()
	s.addCurrency(currencyA, "AAA")
	s.addCurrency(currencyB, "BBB")
	s.addCollection(collectionX)
}

func (s *PriceServiceTestSuite) resolved(token domain.TokenID, currency domain.Address) domain.Price {
	s.T().Helper()
	price, err := s.svc.Price.ResolvePrice(s.ctx, collectionX, token, currency)
	s.Require().NoError(err)
	return price
}

func (s *PriceServiceTestSuite) requirePrice(want int64, price domain.Price) {
	s.T().Helper()
	got, ok := price.Get()
	s.Require().True(ok, "price is unset")
	s.requireAmount(want, got)
}

func (s *PriceServiceTestSuite) TestResolvePrice_OverrideThenDefault() {
	s.False(s.resolved(1, currencyA).IsSet())

	s.Require().NoError(s.svc.Price.SetDefaultPrices(s.ctx, admin, collectionX, []domain.Address{currencyA}, amounts(100)))
	s.requirePrice(100, s.resolved(1, currencyA))
	s.False(s.resolved(1, currencyB).IsSet())

	s.Require().NoError(s.svc.Price.SetOverridePrices(s.ctx, admin, collectionX, currencyA, tokens(1), amounts(40)))
	s.Require().NoError(s.svc.Price.SetOverridePrices(s.ctx, admin, collectionX, currencyA, tokens(1), amounts(45)))
	s.requirePrice(45, s.resolved(1, currencyA))
	s.requirePrice(100, s.resolved(2, currencyA))

	// Overrides are per currency.
	s.False(s.resolved(1, currencyB).IsSet())

	s.Require().NoError(s.svc.Price.SetDefaultPrices(s.ctx, admin, collectionX, []domain.Address{currencyA}, amounts(120)))
	s.requirePrice(45, s.resolved(1, currencyA))
	s.requirePrice(120, s.resolved(2, currencyA))

	s.Require().NoError(s.svc.Price.ClearOverridePrices(s.ctx, admin, collectionX, currencyA, tokens(1)))
	s.requirePrice(120, s.resolved(1, currencyA))
}

func (s *PriceServiceTestSuite) TestSetDefaultPrices_Validation() {
	tests := []struct {
		name       string
		caller     domain.Address
		collection domain.Address
		currencies []domain.Address
		amounts    []decimal.Decimal
		wantErr    error
	}{
		{"unregistered collection", admin, collectionSemi, []domain.Address{currencyA}, amounts(1), apperrors.ErrNotFound},
		{"empty batch", admin, collectionX, nil, nil, apperrors.ErrEmptyBatch},
		{"length mismatch", admin, collectionX, []domain.Address{currencyA, currencyB}, amounts(1), apperrors.ErrLengthMismatch},
		{"zero amount", admin, collectionX, []domain.Address{currencyA, currencyB}, amounts(5, 0), apperrors.ErrZeroAmount},
		{"unregistered currency", admin, collectionX, []domain.Address{currencyA, notContract}, amounts(5, 6), apperrors.ErrInvalidCurrency},
		{"caller without role", stranger, collectionX, []domain.Address{currencyA}, amounts(5), apperrors.ErrUnauthorized},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.svc.Price.SetDefaultPrices(s.ctx, tt.caller, tt.collection, tt.currencies, tt.amounts)
			s.ErrorIs(err, tt.wantErr)
		})
	}

	// The valid first entries of rejected batches were not written.
	s.False(s.resolved(1, currencyA).IsSet())
}

func (s *PriceServiceTestSuite) TestSetOverridePrices_Validation() {
	tests := []struct {
		name     string
		currency domain.Address
		tokens   []domain.TokenID
		amounts  []decimal.Decimal
		wantErr  error
	}{
		{"empty batch", currencyA, nil, nil, apperrors.ErrEmptyBatch},
		{"length mismatch", currencyA, tokens(1, 2), amounts(3), apperrors.ErrLengthMismatch},
		{"zero amount", currencyA, tokens(1, 2), amounts(3, 0), apperrors.ErrZeroAmount},
		{"unregistered currency", notContract, tokens(1), amounts(3), apperrors.ErrInvalidCurrency},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.svc.Price.SetOverridePrices(s.ctx, admin, collectionX, tt.currency, tt.tokens, tt.amounts)
			s.ErrorIs(err, tt.wantErr)
		})
	}
	s.False(s.resolved(1, currencyA).IsSet())
}

func (s *PriceServiceTestSuite) TestClearOverridePrices_AllOrNothing() {
	s.Require().NoError(s.svc.Price.SetOverridePrices(s.ctx, admin, collectionX, currencyA, tokens(1, 2), amounts(10, 20)))

	err := s.svc.Price.ClearOverridePrices(s.ctx, admin, collectionX, currencyA, tokens(1, 3, 2))
	s.Require().ErrorIs(err, apperrors.ErrNoOverride)
	token, ok := apperrors.TokenOf(err)
	s.Require().True(ok)
	s.Equal(uint64(3), token)

	s.requirePrice(10, s.resolved(1, currencyA))
	s.requirePrice(20, s.resolved(2, currencyA))

	s.Require().NoError(s.svc.Price.ClearOverridePrices(s.ctx, admin, collectionX, currencyA, tokens(1, 2)))
	s.False(s.resolved(1, currencyA).IsSet())
	s.False(s.resolved(2, currencyA).IsSet())
}

func (s *PriceServiceTestSuite) TestGetAllPrices() {
	s.Require().NoError(s.svc.Price.SetDefaultPrices(s.ctx, admin, collectionX, []domain.Address{currencyB}, amounts(7)))
	s.Require().NoError(s.svc.Price.SetOverridePrices(s.ctx, admin, collectionX, currencyA, tokens(4), amounts(3)))

	prices, err := s.svc.Price.GetAllPrices(s.ctx, collectionX, 4)
	s.Require().NoError(err)
	s.Require().Len(prices, 2)
	s.Equal(currencyA, prices[0].Currency)
	s.requirePrice(3, prices[0].Price)
	s.Equal(currencyB, prices[1].Currency)
	s.requirePrice(7, prices[1].Price)

	prices, err = s.svc.Price.GetAllPrices(s.ctx, collectionX, 5)
	s.Require().NoError(err)
	s.False(prices[0].Price.IsSet())
	s.True(prices[0].Price.AmountOrZero().IsZero())

	_, err = s.svc.Price.GetAllPrices(s.ctx, collectionSemi, 4)
	s.ErrorIs(err, apperrors.ErrNotFound)
}
