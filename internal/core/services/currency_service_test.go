package services_test

import (
	"testing"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/dto"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	marketSuite
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}

func (s *CurrencyServiceTestSuite) TestAddCurrency_Success() {
	c, err := s.svc.Currency.AddCurrency(s.ctx, admin, dto.AddCurrencyRequest{Address: currencyB, Symbol: "BBB"})
	s.Require().NoError(err)
	s.Equal(currencyB, c.Address)
	s.Equal(admin.String(), c.CreatedBy)

	s.addCurrency(currencyA, "AAA")

	list, err := s.svc.Currency.ListCurrencies(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(currencyB, list[0].Address)
	s.Equal(currencyA, list[1].Address)
}

func (s *CurrencyServiceTestSuite) TestAddCurrency_Rejected() {
	tests := []struct {
		name    string
		caller  domain.Address
		address domain.Address
		wantErr error
	}{
		{"zero address", admin, domain.ZeroAddress, apperrors.ErrInvalidCurrency},
		{"not a contract", admin, notContract, apperrors.ErrInvalidCurrency},
		{"caller without role", stranger, currencyA, apperrors.ErrUnauthorized},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.Currency.AddCurrency(s.ctx, tt.caller, dto.AddCurrencyRequest{Address: tt.address})
			s.ErrorIs(err, tt.wantErr)
		})
	}

	list, err := s.svc.Currency.ListCurrencies(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *CurrencyServiceTestSuite) TestAddCurrency_Duplicate() {
	s.addCurrency(currencyA, "AAA")

	_, err := s.svc.Currency.AddCurrency(s.ctx, admin, dto.AddCurrencyRequest{Address: currencyA})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *CurrencyServiceTestSuite) TestRemoveCurrency_NotFound() {
	err := s.svc.Currency.RemoveCurrency(s.ctx, admin, currencyA)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *CurrencyServiceTestSuite) TestRemoveCurrency_BalanceOutstanding() {
	s.setupMarket()
	s.listItems(1)
	s.fundBuyer(currencyA, 100)
	_, err := s.svc.Settlement.BuyToken(s.ctx, buyer, collectionX, tokens(1), currencyA)
	s.Require().NoError(err)

	err = s.svc.Currency.RemoveCurrency(s.ctx, admin, currencyA)
	s.ErrorIs(err, apperrors.ErrBalanceOutstanding)

	_, err = s.svc.Settlement.Withdraw(s.ctx, admin)
	s.Require().NoError(err)
	s.NoError(s.svc.Currency.RemoveCurrency(s.ctx, admin, currencyA))
}

func (s *CurrencyServiceTestSuite) TestRemoveCurrency_PricesBecomeUnresolvable() {
	s.setupMarket()

	s.Require().NoError(s.svc.Currency.RemoveCurrency(s.ctx, admin, currencyA))

	price, err := s.svc.Price.ResolvePrice(s.ctx, collectionX, 1, currencyA)
	s.Require().NoError(err)
	s.False(price.IsSet())

	// Re-registering restores the stored default.
	s.addCurrency(currencyA, "AAA")
	price, err = s.svc.Price.ResolvePrice(s.ctx, collectionX, 1, currencyA)
	s.Require().NoError(err)
	got, ok := price.Get()
	s.Require().True(ok)
	s.requireAmount(100, got)
}
