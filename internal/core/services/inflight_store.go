package services

import (
	"context"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type inFlightTxKey struct{}

// inFlightStore is the store as seen by the services. RunInTx places its
// transaction on the context handed to fn, and every read made with that
// context, or one derived from it, goes through the transaction. A ledger
// callback made during a settlement therefore observes the staged effects
// (token delisted, balance credited) rather than the last committed state.
type inFlightStore struct {
	store portsrepo.MarketStore
}

var _ portsrepo.MarketStore = inFlightStore{}

// inFlightView wraps store. Wrapping twice returns the same view.
func inFlightView(store portsrepo.MarketStore) portsrepo.MarketStore {
	if v, ok := store.(inFlightStore); ok {
		return v
	}
	return inFlightStore{store: store}
}

func txFromContext(ctx context.Context) (portsrepo.MarketTx, bool) {
	tx, ok := ctx.Value(inFlightTxKey{}).(portsrepo.MarketTx)
	return tx, ok && tx != nil
}

func (s inFlightStore) reader(ctx context.Context) portsrepo.MarketReader {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return s.store
}

func (s inFlightStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.MarketTx) error) error {
	return s.store.RunInTx(ctx, func(ctx context.Context, tx portsrepo.MarketTx) error {
		return fn(context.WithValue(ctx, inFlightTxKey{}, tx), tx)
	})
}

func (s inFlightStore) FindCurrency(ctx context.Context, currency domain.Address) (*domain.Currency, error) {
	return s.reader(ctx).FindCurrency(ctx, currency)
}

func (s inFlightStore) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.reader(ctx).ListCurrencies(ctx)
}

func (s inFlightStore) FindCollection(ctx context.Context, collection domain.Address) (*domain.Collection, error) {
	return s.reader(ctx).FindCollection(ctx, collection)
}

func (s inFlightStore) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	return s.reader(ctx).ListCollections(ctx)
}

func (s inFlightStore) FindDefaultPrice(ctx context.Context, collection, currency domain.Address) (domain.Price, error) {
	return s.reader(ctx).FindDefaultPrice(ctx, collection, currency)
}

func (s inFlightStore) FindOverridePrice(ctx context.Context, collection domain.Address, token domain.TokenID, currency domain.Address) (domain.Price, error) {
	return s.reader(ctx).FindOverridePrice(ctx, collection, token, currency)
}

func (s inFlightStore) CountDefaultPrices(ctx context.Context, collection domain.Address) (int, error) {
	return s.reader(ctx).CountDefaultPrices(ctx, collection)
}

func (s inFlightStore) IsListed(ctx context.Context, collection domain.Address, token domain.TokenID) (bool, error) {
	return s.reader(ctx).IsListed(ctx, collection, token)
}

func (s inFlightStore) ListListings(ctx context.Context, collection domain.Address, after *domain.TokenID, limit int) ([]domain.TokenID, error) {
	return s.reader(ctx).ListListings(ctx, collection, after, limit)
}

func (s inFlightStore) CountListings(ctx context.Context, collection domain.Address) (int, error) {
	return s.reader(ctx).CountListings(ctx, collection)
}

func (s inFlightStore) FindPurchaseKey(ctx context.Context, collection domain.Address, token domain.TokenID) (domain.PurchaseKey, error) {
	return s.reader(ctx).FindPurchaseKey(ctx, collection, token)
}

func (s inFlightStore) GetBalance(ctx context.Context, currency domain.Address) (decimal.Decimal, error) {
	return s.reader(ctx).GetBalance(ctx, currency)
}

func (s inFlightStore) GetSemiFungibleBalance(ctx context.Context, key domain.SemiFungibleKey) (decimal.Decimal, error) {
	return s.reader(ctx).GetSemiFungibleBalance(ctx, key)
}

func (s inFlightStore) ListSemiFungibleBalances(ctx context.Context) ([]domain.SemiFungibleBalance, error) {
	return s.reader(ctx).ListSemiFungibleBalances(ctx)
}
