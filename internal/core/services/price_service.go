package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// priceService stores default and per-token prices and resolves them.
type priceService struct {
	BaseService
	store      portsrepo.MarketStore
	serializer *Serializer
}

// NewPriceService creates the price service.
func NewPriceService(store portsrepo.MarketStore, serializer *Serializer, authorizer portssvc.RoleAuthorizerSvc) portssvc.PriceSvcFacade {
	return &priceService{
		BaseService: BaseService{Authorizer: authorizer},
		store:       inFlightView(store),
		serializer:  serializer,
	}
}

var _ portssvc.PriceSvcFacade = (*priceService)(nil)

func (s *priceService) SetDefaultPrices(ctx context.Context, caller, collection domain.Address, currencies []domain.Address, amounts []decimal.Decimal) error {
	if err := s.AuthorizeCaller(ctx, caller, domain.RoleNFTAdmin); err != nil {
		return err
	}

	err := s.serializer.Do(ctx, func(ctx context.Context) error {
		return s.store.RunInTx(ctx, func(ctx context.Context, tx portsrepo.MarketTx) error {
			if _, err := requireCollection(ctx, tx, collection); err != nil {
				return err
			}
			return applyDefaultPrices(ctx, tx, collection, currencies, amounts)
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to set default prices", slog.String("collection", collection.String()))
		return err
	}

	s.LogInfo(ctx, "Default prices set", slog.String("collection", collection.String()), slog.Int("count", len(currencies)))
	return nil
}

// applyDefaultPrices validates the whole batch before writing any entry.
func applyDefaultPrices(ctx context.Context, tx portsrepo.MarketTx, collection domain.Address, currencies []domain.Address, amounts []decimal.Decimal) error {
	if len(currencies) == 0 && len(amounts) == 0 {
		return fmt.Errorf("%w: no currencies given", apperrors.ErrEmptyBatch)
	}
	if err := requireAmounts(len(currencies), amounts); err != nil {
		return err
	}
	for _, currency := range currencies {
		if err := requireRegisteredCurrency(ctx, tx, currency); err != nil {
			return err
		}
	}
	for i, currency := range currencies {
		if err := tx.SetDefaultPrice(ctx, collection, currency, amounts[i]); err != nil {
			return fmt.Errorf("failed to set default price in %s: %w", currency, err)
		}
	}
	return nil
}

func (s *priceService) SetOverridePrices(ctx context.Context, caller, collection, currency domain.Address, tokens []domain.TokenID, amounts []decimal.Decimal) error {
	if err := s.AuthorizeCaller(ctx, caller, domain.RoleNFTAdmin); err != nil {
		return err
	}

	err := s.serializer.Do(ctx, func(ctx context.Context) error {
		return s.store.RunInTx(ctx, func(ctx context.Context, tx portsrepo.MarketTx) error {
			if _, err := requireCollection(ctx, tx, collection); err != nil {
				return err
			}
			if err := requireTokens(tokens); err != nil {
				return err
			}
			if err := requireAmounts(len(tokens), amounts); err != nil {
				return err
			}
			if err := requireRegisteredCurrency(ctx, tx, currency); err != nil {
				return err
			}
			for i, token := range tokens {
				if err := tx.SetOverridePrice(ctx, collection, token, currency, amounts[i]); err != nil {
					return fmt.Errorf("failed to set override price: %w", err)
				}
			}
			return nil
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to set override prices",
			slog.String("collection", collection.String()),
			slog.String("currency", currency.String()))
		return err
	}

	s.LogInfo(ctx, "Override prices set",
		slog.String("collection", collection.String()),
		slog.String("currency", currency.String()),
		slog.Int("count", len(tokens)))
	return nil
}

func (s *priceService) ClearOverridePrices(ctx context.Context, caller, collection, currency domain.Address, tokens []domain.TokenID) error {
	if err := s.AuthorizeCaller(ctx, caller, domain.RoleNFTAdmin); err != nil {
		return err
	}

	err := s.serializer.Do(ctx, func(ctx context.Context) error {
		return s.store.RunInTx(ctx, func(ctx context.Context, tx portsrepo.MarketTx) error {
			if _, err := requireCollection(ctx, tx, collection); err != nil {
				return err
			}
			if err := requireTokens(tokens); err != nil {
				return err
			}
			for _, token := range tokens {
				price, err := tx.FindOverridePrice(ctx, collection, token, currency)
				if err != nil {
					return err
				}
				if !price.IsSet() {
					return apperrors.NewTokenError(apperrors.ErrNoOverride, uint64(token))
				}
			}
			for _, token := range tokens {
				if err := tx.DeleteOverridePrice(ctx, collection, token, currency); err != nil {
					return fmt.Errorf("failed to clear override price: %w", err)
				}
			}
			return nil
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to clear override prices",
			slog.String("collection", collection.String()),
			slog.String("currency", currency.String()))
		return err
	}

	s.LogInfo(ctx, "Override prices cleared",
		slog.String("collection", collection.String()),
		slog.String("currency", currency.String()),
		slog.Int("count", len(tokens)))
	return nil
}

func (s *priceService) ResolvePrice(ctx context.Context, collection domain.Address, token domain.TokenID, currency domain.Address) (domain.Price, error) {
	price, err := resolvePrice(ctx, s.store, collection, token, currency)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve price",
			slog.String("collection", collection.String()),
			slog.Uint64("token_id", uint64(token)))
		return domain.NoPrice(), err
	}
	return price, nil
}

func (s *priceService) GetAllPrices(ctx context.Context, collection domain.Address, token domain.TokenID) ([]domain.CurrencyPrice, error) {
	if _, err := requireCollection(ctx, s.store, collection); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load collection for prices", slog.String("collection", collection.String()))
		}
		return nil, err
	}
	currencies, err := s.store.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies for prices")
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	prices := make([]domain.CurrencyPrice, 0, len(currencies))
	for _, c := range currencies {
		price, err := lookupPrice(ctx, s.store, collection, token, c.Address)
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve price", slog.String("currency", c.Address.String()))
			return nil, err
		}
		prices = append(prices, domain.CurrencyPrice{Currency: c.Address, Price: price})
	}
	return prices, nil
}

// resolvePrice resolves a price, returning NoPrice for currencies missing
// from the registry.
func resolvePrice(ctx context.Context, reader portsrepo.MarketReader, collection domain.Address, token domain.TokenID, currency domain.Address) (domain.Price, error) {
	if _, err := reader.FindCurrency(ctx, currency); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.NoPrice(), nil
		}
		return domain.NoPrice(), fmt.Errorf("failed to load currency %s: %w", currency, err)
	}
	return lookupPrice(ctx, reader, collection, token, currency)
}

// lookupPrice returns the override price, else the default price.
func lookupPrice(ctx context.Context, reader portsrepo.PriceReader, collection domain.Address, token domain.TokenID, currency domain.Address) (domain.Price, error) {
	override, err := reader.FindOverridePrice(ctx, collection, token, currency)
	if err != nil {
		return domain.NoPrice(), fmt.Errorf("failed to read override price: %w", err)
	}
	if override.IsSet() {
		return override, nil
	}
	def, err := reader.FindDefaultPrice(ctx, collection, currency)
	if err != nil {
		return domain.NoPrice(), fmt.Errorf("failed to read default price: %w", err)
	}
	return def, nil
}
