// Package memory holds in-process implementations of the repository ports.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// ErrConcurrentCommit is returned when another transaction committed after
// the failing one took its snapshot.
var ErrConcurrentCommit = errors.New("memory store: concurrent commit")

// Store is an in-memory MarketStore. Transactions work on a snapshot copy
// and publish it on commit if no other commit happened in between.
type Store struct {
	mu      sync.RWMutex
	current *state
}

var _ portsrepo.MarketStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{current: newState()}
}

// RunInTx implements portsrepo.MarketStore.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.MarketTx) error) error {
	s.mu.RLock()
	base := s.current
	snapshot := base.clone()
	s.mu.RUnlock()

	if err := fn(ctx, snapshot); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current.version != base.version {
		return ErrConcurrentCommit
	}
	snapshot.version = base.version + 1
	s.current = snapshot
	return nil
}

// Version returns the number of committed transactions.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.version
}

func (s *Store) read() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Published states are never mutated, so reads need the lock only to load
// the pointer.

func (s *Store) FindCurrency(ctx context.Context, currency domain.Address) (*domain.Currency, error) {
	return s.read().FindCurrency(ctx, currency)
}

func (s *Store) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.read().ListCurrencies(ctx)
}

func (s *Store) FindCollection(ctx context.Context, collection domain.Address) (*domain.Collection, error) {
	return s.read().FindCollection(ctx, collection)
}

func (s *Store) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	return s.read().ListCollections(ctx)
}

func (s *Store) FindDefaultPrice(ctx context.Context, collection, currency domain.Address) (domain.Price, error) {
	return s.read().FindDefaultPrice(ctx, collection, currency)
}

func (s *Store) FindOverridePrice(ctx context.Context, collection domain.Address, token domain.TokenID, currency domain.Address) (domain.Price, error) {
	return s.read().FindOverridePrice(ctx, collection, token, currency)
}

func (s *Store) CountDefaultPrices(ctx context.Context, collection domain.Address) (int, error) {
	return s.read().CountDefaultPrices(ctx, collection)
}

func (s *Store) IsListed(ctx context.Context, collection domain.Address, token domain.TokenID) (bool, error) {
	return s.read().IsListed(ctx, collection, token)
}

func (s *Store) ListListings(ctx context.Context, collection domain.Address, after *domain.TokenID, limit int) ([]domain.TokenID, error) {
	return s.read().ListListings(ctx, collection, after, limit)
}

func (s *Store) CountListings(ctx context.Context, collection domain.Address) (int, error) {
	return s.read().CountListings(ctx, collection)
}

func (s *Store) FindPurchaseKey(ctx context.Context, collection domain.Address, token domain.TokenID) (domain.PurchaseKey, error) {
	return s.read().FindPurchaseKey(ctx, collection, token)
}

func (s *Store) GetBalance(ctx context.Context, currency domain.Address) (decimal.Decimal, error) {
	return s.read().GetBalance(ctx, currency)
}

func (s *Store) GetSemiFungibleBalance(ctx context.Context, key domain.SemiFungibleKey) (decimal.Decimal, error) {
	return s.read().GetSemiFungibleBalance(ctx, key)
}

func (s *Store) ListSemiFungibleBalances(ctx context.Context) ([]domain.SemiFungibleBalance, error) {
	return s.read().ListSemiFungibleBalances(ctx)
}
