package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/core/ports/events"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
	"github.com/agarrido2001/XaveMarket/internal/utils/pagination"
)

const (
	defaultListingPageSize = 50
	maxListingPageSize     = 500
)

// listingService manages which tokens are offered for sale.
type listingService struct {
	BaseService
	notifier
	store      portsrepo.MarketStore
	serializer *Serializer
}

// NewListingService creates the listing service.
func NewListingService(store portsrepo.MarketStore, sink events.Sink, serializer *Serializer, authorizer portssvc.RoleAuthorizerSvc) portssvc.ListingSvcFacade {
	return &listingService{
		BaseService: BaseService{Authorizer: authorizer},
		notifier:    notifier{sink: sink},
		store:       inFlightView(store),
		serializer:  serializer,
	}
}

var _ portssvc.ListingSvcFacade = (*listingService)(nil)

func (s *listingService) AddToMarket(ctx context.Context, caller, collection domain.Address, tokens []domain.TokenID) error {
	if err := s.AuthorizeCaller(ctx, caller, domain.RoleNFTAdmin); err != nil {
		return err
	}

	err := s.serializer.Do(ctx, func(ctx context.Context) error {
		return s.store.RunInTx(ctx, func(ctx context.Context, tx portsrepo.MarketTx) error {
			if err := requireTokens(tokens); err != nil {
				return err
			}
			if _, err := requireCollection(ctx, tx, collection); err != nil {
				return err
			}
			n, err := tx.CountDefaultPrices(ctx, collection)
			if err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("%w: %s", apperrors.ErrNoDefaultPrice, collection)
			}
			for _, token := range tokens {
				if err := tx.AddListing(ctx, collection, token); err != nil {
					return fmt.Errorf("failed to list token %d: %w", token, err)
				}
			}
			return nil
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to add tokens to market", slog.String("collection", collection.String()))
		return err
	}

	s.LogInfo(ctx, "Tokens added to market", slog.String("collection", collection.String()), slog.Int("count", len(tokens)))
	s.listingChanged(ctx, domain.ListingChanged{Added: true, Collection: collection, Tokens: append([]domain.TokenID(nil), tokens...)})
	return nil
}

func (s *listingService) RemoveFromMarket(ctx context.Context, caller, collection domain.Address, tokens []domain.TokenID) error {
	if err := s.AuthorizeCaller(ctx, caller, domain.RoleNFTAdmin); err != nil {
		return err
	}

	err := s.serializer.Do(ctx, func(ctx context.Context) error {
		return s.store.RunInTx(ctx, func(ctx context.Context, tx portsrepo.MarketTx) error {
			if err := requireTokens(tokens); err != nil {
				return err
			}
			if _, err := requireCollection(ctx, tx, collection); err != nil {
				return err
			}
			for _, token := range tokens {
				if err := tx.RemoveListing(ctx, collection, token); err != nil {
					return fmt.Errorf("failed to delist token %d: %w", token, err)
				}
			}
			return nil
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to remove tokens from market", slog.String("collection", collection.String()))
		return err
	}

	s.LogInfo(ctx, "Tokens removed from market", slog.String("collection", collection.String()), slog.Int("count", len(tokens)))
	s.listingChanged(ctx, domain.ListingChanged{Added: false, Collection: collection, Tokens: append([]domain.TokenID(nil), tokens...)})
	return nil
}

func (s *listingService) IsListed(ctx context.Context, collection domain.Address, token domain.TokenID) (bool, error) {
	listed, err := s.store.IsListed(ctx, collection, token)
	if err != nil {
		s.LogError(ctx, err, "Failed to check listing",
			slog.String("collection", collection.String()),
			slog.Uint64("token_id", uint64(token)))
		return false, fmt.Errorf("failed to check listing: %w", err)
	}
	return listed, nil
}

func (s *listingService) ListListings(ctx context.Context, collection domain.Address, limit int, nextToken *string) ([]domain.TokenID, *string, error) {
	if _, err := requireCollection(ctx, s.store, collection); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load collection for listings", slog.String("collection", collection.String()))
		}
		return nil, nil, err
	}
	if limit <= 0 {
		limit = defaultListingPageSize
	}
	if limit > maxListingPageSize {
		limit = maxListingPageSize
	}

	var after *domain.TokenID
	if nextToken != nil && *nextToken != "" {
		cursorCollection, token, err := pagination.DecodeListingToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		if cursorCollection != collection {
			return nil, nil, fmt.Errorf("%w: pagination token belongs to another collection", apperrors.ErrValidation)
		}
		after = &token
	}

	// One extra row tells whether another page exists.
	tokens, err := s.store.ListListings(ctx, collection, after, limit+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to list listings", slog.String("collection", collection.String()))
		return nil, nil, fmt.Errorf("failed to list listings: %w", err)
	}

	var next *string
	if len(tokens) > limit {
		tokens = tokens[:limit]
		token := pagination.EncodeListingToken(collection, tokens[limit-1])
		next = &token
	}
	if tokens == nil {
		tokens = []domain.TokenID{}
	}
	return tokens, next, nil
}
