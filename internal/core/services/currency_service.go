package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/core/ports/ledgers"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
	"github.com/agarrido2001/XaveMarket/internal/dto"
)

// currencyService manages the registry of accepted currencies.
type currencyService struct {
	BaseService
	store      portsrepo.MarketStore
	gateway    ledgers.Gateway
	serializer *Serializer
}

// NewCurrencyService creates the currency registry service.
func NewCurrencyService(store portsrepo.MarketStore, gateway ledgers.Gateway, serializer *Serializer, authorizer portssvc.RoleAuthorizerSvc) portssvc.CurrencySvcFacade {
	return &currencyService{
		BaseService: BaseService{Authorizer: authorizer},
		store:       inFlightView(store),
		gateway:     gateway,
		serializer:  serializer,
	}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) AddCurrency(ctx context.Context, caller domain.Address, req dto.AddCurrencyRequest) (*domain.Currency, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.RoleNFTAdmin); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	currency := domain.Currency{
		Address: req.Address,
		Symbol:  req.Symbol,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.String(),
			LastUpdatedAt: now,
			LastUpdatedBy: caller.String(),
		},
	}

	err := s.serializer.Do(ctx, func(ctx context.Context) error {
		if err := requireContract(ctx, s.gateway, req.Address, apperrors.ErrInvalidCurrency); err != nil {
			return err
		}
		return s.store.RunInTx(ctx, func(ctx context.Context, tx portsrepo.MarketTx) error {
			return tx.SaveCurrency(ctx, currency)
		})
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			err = fmt.Errorf("currency already exists: %w", err)
		}
		s.logFailure(ctx, err, "Failed to add currency", slog.String("currency", req.Address.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Currency added", slog.String("currency", currency.Address.String()), slog.String("symbol", currency.Symbol))
	return &currency, nil
}

func (s *currencyService) RemoveCurrency(ctx context.Context, caller, currency domain.Address) error {
	if err := s.AuthorizeCaller(ctx, caller, domain.RoleNFTAdmin); err != nil {
		return err
	}

	err := s.serializer.Do(ctx, func(ctx context.Context) error {
		return s.store.RunInTx(ctx, func(ctx context.Context, tx portsrepo.MarketTx) error {
			if _, err := tx.FindCurrency(ctx, currency); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return fmt.Errorf("currency %s: %w", currency, apperrors.ErrNotFound)
				}
				return err
			}
			balance, err := tx.GetBalance(ctx, currency)
			if err != nil {
				return err
			}
			if !balance.IsZero() {
				return fmt.Errorf("%w: %s of %s held", apperrors.ErrBalanceOutstanding, balance.String(), currency)
			}
			return tx.DeleteCurrency(ctx, currency)
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to remove currency", slog.String("currency", currency.String()))
		return err
	}

	s.LogInfo(ctx, "Currency removed", slog.String("currency", currency.String()))
	return nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.store.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
