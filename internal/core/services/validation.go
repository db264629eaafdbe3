package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	"github.com/agarrido2001/XaveMarket/internal/core/ports/ledgers"
	"github.com/shopspring/decimal"
)

func requireTokens(tokens []domain.TokenID) error {
	if len(tokens) == 0 {
		return apperrors.ErrEmptyBatch
	}
	return nil
}

// requireAmounts checks lengths and every amount, naming the position of the
// first bad amount.
func requireAmounts(n int, amounts []decimal.Decimal) error {
	if n != len(amounts) {
		return fmt.Errorf("%w: %d entries but %d amounts", apperrors.ErrLengthMismatch, n, len(amounts))
	}
	for i, amount := range amounts {
		if err := domain.ValidateAmount(amount); err != nil {
			return fmt.Errorf("amounts[%d]: %w", i, err)
		}
	}
	return nil
}

// requireCollection loads a registered collection or fails with apperrors.ErrNotFound.
func requireCollection(ctx context.Context, reader portsrepo.CollectionReader, collection domain.Address) (*domain.Collection, error) {
	c, err := reader.FindCollection(ctx, collection)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("nft contract %s: %w", collection, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load collection %s: %w", collection, err)
	}
	return c, nil
}

// requireRegisteredCurrency fails with apperrors.ErrInvalidCurrency for
// currencies missing from the registry.
func requireRegisteredCurrency(ctx context.Context, reader portsrepo.CurrencyReader, currency domain.Address) error {
	if _, err := reader.FindCurrency(ctx, currency); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %s is not registered", apperrors.ErrInvalidCurrency, currency)
		}
		return fmt.Errorf("failed to load currency %s: %w", currency, err)
	}
	return nil
}

// requireContract fails with invalid when addr is zero or hosts no contract.
func requireContract(ctx context.Context, gateway ledgers.Gateway, addr domain.Address, invalid error) error {
	if addr.IsZero() {
		return fmt.Errorf("%w: zero address", invalid)
	}
	if gateway == nil {
		return nil
	}
	ok, err := gateway.IsContract(ctx, addr)
	if err != nil {
		return apperrors.ExternalError("contract lookup", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s is not a contract", invalid, addr)
	}
	return nil
}
