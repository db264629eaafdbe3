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
	"github.com/shopspring/decimal"
)

// collectionService manages the registry of tradable item contracts.
type collectionService struct {
	BaseService
	store      portsrepo.MarketStore
	gateway    ledgers.Gateway
	serializer *Serializer
}

// NewCollectionService creates the item registry service.
func NewCollectionService(store portsrepo.MarketStore, gateway ledgers.Gateway, serializer *Serializer, authorizer portssvc.RoleAuthorizerSvc) portssvc.CollectionSvcFacade {
	return &collectionService{
		BaseService: BaseService{Authorizer: authorizer},
		store:       inFlightView(store),
		gateway:     gateway,
		serializer:  serializer,
	}
}

var _ portssvc.CollectionSvcFacade = (*collectionService)(nil)

func (s *collectionService) AddCollection(ctx context.Context, caller domain.Address, req dto.AddCollectionRequest) (*domain.Collection, error) {
	return s.addCollection(ctx, caller, req, nil, nil, false)
}

func (s *collectionService) AddCollectionWithPrices(ctx context.Context, caller domain.Address, req dto.AddCollectionRequest, currencies []domain.Address, amounts []decimal.Decimal) (*domain.Collection, error) {
	return s.addCollection(ctx, caller, req, currencies, amounts, true)
}

func (s *collectionService) addCollection(ctx context.Context, caller domain.Address, req dto.AddCollectionRequest, currencies []domain.Address, amounts []decimal.Decimal, withPrices bool) (*domain.Collection, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.RoleNFTAdmin); err != nil {
		return nil, err
	}

	collection, err := s.newCollection(caller, req)
	if err != nil {
		s.logFailure(ctx, err, "Rejected collection", slog.String("collection", req.Address.String()))
		return nil, err
	}

	err = s.serializer.Do(ctx, func(ctx context.Context) error {
		if err := requireContract(ctx, s.gateway, collection.Address, apperrors.ErrInvalidCollection); err != nil {
			return err
		}
		return s.store.RunInTx(ctx, func(ctx context.Context, tx portsrepo.MarketTx) error {
			if err := tx.SaveCollection(ctx, *collection); err != nil {
				if errors.Is(err, apperrors.ErrDuplicate) {
					return fmt.Errorf("nft already exists: %w", err)
				}
				return err
			}
			if !withPrices {
				return nil
			}
			return applyDefaultPrices(ctx, tx, collection.Address, currencies, amounts)
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to add collection", slog.String("collection", collection.Address.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Collection added",
		slog.String("collection", collection.Address.String()),
		slog.String("standard", string(collection.Standard)),
		slog.Int("default_prices", len(currencies)))
	return collection, nil
}

func (s *collectionService) newCollection(caller domain.Address, req dto.AddCollectionRequest) (*domain.Collection, error) {
	standard := domain.TokenStandard(req.Standard)
	if standard == "" {
		standard = domain.StandardERC721
	}
	if !standard.Valid() {
		return nil, fmt.Errorf("%w: unknown standard %q", apperrors.ErrInvalidCollection, req.Standard)
	}
	holder := req.Holder
	switch standard {
	case domain.StandardERC1155:
		if holder.IsZero() {
			return nil, fmt.Errorf("%w: erc1155 collection needs a holder", apperrors.ErrInvalidCollection)
		}
	default:
		holder = domain.ZeroAddress
	}

	now := time.Now().UTC()
	return &domain.Collection{
		Address:  req.Address,
		Standard: standard,
		Holder:   holder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.String(),
			LastUpdatedAt: now,
			LastUpdatedBy: caller.String(),
		},
	}, nil
}

func (s *collectionService) RemoveCollection(ctx context.Context, caller, collection domain.Address) error {
	if err := s.AuthorizeCaller(ctx, caller, domain.RoleNFTAdmin); err != nil {
		return err
	}

	err := s.serializer.Do(ctx, func(ctx context.Context) error {
		return s.store.RunInTx(ctx, func(ctx context.Context, tx portsrepo.MarketTx) error {
			if _, err := requireCollection(ctx, tx, collection); err != nil {
				return err
			}
			listed, err := tx.CountListings(ctx, collection)
			if err != nil {
				return err
			}
			if listed > 0 {
				return fmt.Errorf("%w: %d tokens of %s listed", apperrors.ErrCollectionInUse, listed, collection)
			}
			return tx.DeleteCollection(ctx, collection)
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to remove collection", slog.String("collection", collection.String()))
		return err
	}

	s.LogInfo(ctx, "Collection removed", slog.String("collection", collection.String()))
	return nil
}

func (s *collectionService) GetCollection(ctx context.Context, collection domain.Address) (*domain.Collection, error) {
	c, err := requireCollection(ctx, s.store, collection)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get collection", slog.String("collection", collection.String()))
		}
		return nil, err
	}
	return c, nil
}

func (s *collectionService) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	collections, err := s.store.ListCollections(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list collections")
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	if collections == nil {
		return []domain.Collection{}, nil
	}
	return collections, nil
}
