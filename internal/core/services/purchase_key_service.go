package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/core/ports/ledgers"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
)

// purchaseKeyService manages semi-fungible payments that gate purchases.
type purchaseKeyService struct {
	BaseService
	store      portsrepo.MarketStore
	gateway    ledgers.Gateway
	serializer *Serializer
}

// NewPurchaseKeyService creates the purchase-key service.
func NewPurchaseKeyService(store portsrepo.MarketStore, gateway ledgers.Gateway, serializer *Serializer, authorizer portssvc.RoleAuthorizerSvc) portssvc.PurchaseKeySvcFacade {
	return &purchaseKeyService{
		BaseService: BaseService{Authorizer: authorizer},
		store:       inFlightView(store),
		gateway:     gateway,
		serializer:  serializer,
	}
}

var _ portssvc.PurchaseKeySvcFacade = (*purchaseKeyService)(nil)

func (s *purchaseKeyService) SetPurchaseKey(ctx context.Context, caller, collection domain.Address, tokens []domain.TokenID, key domain.PurchaseKey) error {
	if err := s.AuthorizeCaller(ctx, caller, domain.RoleNFTAdmin); err != nil {
		return err
	}

	err := s.serializer.Do(ctx, func(ctx context.Context) error {
		if _, err := requireCollection(ctx, s.store, collection); err != nil {
			return err
		}
		if err := requireTokens(tokens); err != nil {
			return err
		}
		if err := domain.ValidateAmount(key.Amount); err != nil {
			return err
		}
		if err := requireContract(ctx, s.gateway, key.Asset, apperrors.ErrInvalidAsset); err != nil {
			return err
		}
		return s.store.RunInTx(ctx, func(ctx context.Context, tx portsrepo.MarketTx) error {
			if _, err := requireCollection(ctx, tx, collection); err != nil {
				return err
			}
			for _, token := range tokens {
				if err := tx.SavePurchaseKey(ctx, collection, token, key); err != nil {
					return fmt.Errorf("failed to set purchase key for token %d: %w", token, err)
				}
			}
			return nil
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to set purchase key", slog.String("collection", collection.String()))
		return err
	}

	s.LogInfo(ctx, "Purchase key set",
		slog.String("collection", collection.String()),
		slog.String("asset", key.Asset.String()),
		slog.Uint64("sub_id", uint64(key.SubID)),
		slog.String("amount", key.Amount.String()),
		slog.Int("count", len(tokens)))
	return nil
}

func (s *purchaseKeyService) ClearPurchaseKey(ctx context.Context, caller, collection domain.Address, tokens []domain.TokenID) error {
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
				key, err := tx.FindPurchaseKey(ctx, collection, token)
				if err != nil {
					return err
				}
				if !key.IsSet() {
					return apperrors.NewTokenError(apperrors.ErrNoPurchaseKey, uint64(token))
				}
			}
			for _, token := range tokens {
				if err := tx.DeletePurchaseKey(ctx, collection, token); err != nil {
					return fmt.Errorf("failed to clear purchase key for token %d: %w", token, err)
				}
			}
			return nil
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to clear purchase key", slog.String("collection", collection.String()))
		return err
	}

	s.LogInfo(ctx, "Purchase key cleared", slog.String("collection", collection.String()), slog.Int("count", len(tokens)))
	return nil
}

func (s *purchaseKeyService) GetPurchaseKey(ctx context.Context, collection domain.Address, token domain.TokenID) (domain.PurchaseKey, error) {
	key, err := s.store.FindPurchaseKey(ctx, collection, token)
	if err != nil {
		s.LogError(ctx, err, "Failed to get purchase key",
			slog.String("collection", collection.String()),
			slog.Uint64("token_id", uint64(token)))
		return domain.NoPurchaseKey(), fmt.Errorf("failed to get purchase key: %w", err)
	}
	return key, nil
}
