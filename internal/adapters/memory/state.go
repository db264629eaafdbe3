package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type defaultPriceKey struct {
	collection domain.Address
	currency   domain.Address
}

type tokenKey struct {
	collection domain.Address
	token      domain.TokenID
}

type overridePriceKey struct {
	tokenKey
	currency domain.Address
}

// state is one immutable-once-published version of the market. A
// transaction works on a private clone.
type state struct {
	version uint64

	currencies     []domain.Currency
	collections    []domain.Collection
	defaultPrices  map[defaultPriceKey]decimal.Decimal
	overridePrices map[overridePriceKey]decimal.Decimal
	listings       map[domain.Address]map[domain.TokenID]struct{}
	purchaseKeys   map[tokenKey]domain.PurchaseKey
	balances       map[domain.Address]decimal.Decimal
	semiFungible   map[domain.SemiFungibleKey]decimal.Decimal
	semiOrder      []domain.SemiFungibleKey
}

var _ portsrepo.MarketTx = (*state)(nil)

func newState() *state {
	return &state{
		defaultPrices:  make(map[defaultPriceKey]decimal.Decimal),
		overridePrices: make(map[overridePriceKey]decimal.Decimal),
		listings:       make(map[domain.Address]map[domain.TokenID]struct{}),
		purchaseKeys:   make(map[tokenKey]domain.PurchaseKey),
		balances:       make(map[domain.Address]decimal.Decimal),
		semiFungible:   make(map[domain.SemiFungibleKey]decimal.Decimal),
	}
}

func (s *state) clone() *state {
	c := &state{
		version:        s.version,
		currencies:     append([]domain.Currency(nil), s.currencies...),
		collections:    append([]domain.Collection(nil), s.collections...),
		defaultPrices:  make(map[defaultPriceKey]decimal.Decimal, len(s.defaultPrices)),
		overridePrices: make(map[overridePriceKey]decimal.Decimal, len(s.overridePrices)),
		listings:       make(map[domain.Address]map[domain.TokenID]struct{}, len(s.listings)),
		purchaseKeys:   make(map[tokenKey]domain.PurchaseKey, len(s.purchaseKeys)),
		balances:       make(map[domain.Address]decimal.Decimal, len(s.balances)),
		semiFungible:   make(map[domain.SemiFungibleKey]decimal.Decimal, len(s.semiFungible)),
		semiOrder:      append([]domain.SemiFungibleKey(nil), s.semiOrder...),
	}
	for k, v := range s.defaultPrices {
		c.defaultPrices[k] = v
	}
	for k, v := range s.overridePrices {
		c.overridePrices[k] = v
	}
	for collection, tokens := range s.listings {
		set := make(map[domain.TokenID]struct{}, len(tokens))
		for t := range tokens {
			set[t] = struct{}{}
		}
		c.listings[collection] = set
	}
	for k, v := range s.purchaseKeys {
		c.purchaseKeys[k] = v
	}
	for k, v := range s.balances {
		c.balances[k] = v
	}
	for k, v := range s.semiFungible {
		c.semiFungible[k] = v
	}
	return c
}

// --- currencies ---

func (s *state) FindCurrency(_ context.Context, currency domain.Address) (*domain.Currency, error) {
	for i := range s.currencies {
		if s.currencies[i].Address == currency {
			c := s.currencies[i]
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *state) ListCurrencies(_ context.Context) ([]domain.Currency, error) {
	return append([]domain.Currency{}, s.currencies...), nil
}

func (s *state) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	if _, err := s.FindCurrency(ctx, currency.Address); err == nil {
		return apperrors.ErrDuplicate
	}
	s.currencies = append(s.currencies, currency)
	return nil
}

func (s *state) DeleteCurrency(_ context.Context, currency domain.Address) error {
	for i := range s.currencies {
		if s.currencies[i].Address == currency {
			s.currencies = append(s.currencies[:i:i], s.currencies[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// --- collections ---

func (s *state) FindCollection(_ context.Context, collection domain.Address) (*domain.Collection, error) {
	for i := range s.collections {
		if s.collections[i].Address == collection {
			c := s.collections[i]
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *state) ListCollections(_ context.Context) ([]domain.Collection, error) {
	return append([]domain.Collection{}, s.collections...), nil
}

func (s *state) SaveCollection(ctx context.Context, collection domain.Collection) error {
	if _, err := s.FindCollection(ctx, collection.Address); err == nil {
		return apperrors.ErrDuplicate
	}
	s.collections = append(s.collections, collection)
	return nil
}

func (s *state) DeleteCollection(_ context.Context, collection domain.Address) error {
	for i := range s.collections {
		if s.collections[i].Address == collection {
			s.collections = append(s.collections[:i:i], s.collections[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// --- prices ---

func (s *state) FindDefaultPrice(_ context.Context, collection, currency domain.Address) (domain.Price, error) {
	if amount, ok := s.defaultPrices[defaultPriceKey{collection, currency}]; ok {
		return domain.PriceOf(amount), nil
	}
	return domain.NoPrice(), nil
}

func (s *state) FindOverridePrice(_ context.Context, collection domain.Address, token domain.TokenID, currency domain.Address) (domain.Price, error) {
	if amount, ok := s.overridePrices[overridePriceKey{tokenKey{collection, token}, currency}]; ok {
		return domain.PriceOf(amount), nil
	}
	return domain.NoPrice(), nil
}

func (s *state) CountDefaultPrices(_ context.Context, collection domain.Address) (int, error) {
	n := 0
	for k := range s.defaultPrices {
		if k.collection == collection {
			n++
		}
	}
	return n, nil
}

func (s *state) SetDefaultPrice(_ context.Context, collection, currency domain.Address, amount decimal.Decimal) error {
	s.defaultPrices[defaultPriceKey{collection, currency}] = amount
	return nil
}

func (s *state) SetOverridePrice(_ context.Context, collection domain.Address, token domain.TokenID, currency domain.Address, amount decimal.Decimal) error {
	s.overridePrices[overridePriceKey{tokenKey{collection, token}, currency}] = amount
	return nil
}

func (s *state) DeleteOverridePrice(_ context.Context, collection domain.Address, token domain.TokenID, currency domain.Address) error {
	delete(s.overridePrices, overridePriceKey{tokenKey{collection, token}, currency})
	return nil
}

// --- listings ---

func (s *state) IsListed(_ context.Context, collection domain.Address, token domain.TokenID) (bool, error) {
	_, ok := s.listings[collection][token]
	return ok, nil
}

func (s *state) ListListings(_ context.Context, collection domain.Address, after *domain.TokenID, limit int) ([]domain.TokenID, error) {
	tokens := make([]domain.TokenID, 0, len(s.listings[collection]))
	for t := range s.listings[collection] {
		if after != nil && t <= *after {
			continue
		}
		tokens = append(tokens, t)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })
	if limit > 0 && len(tokens) > limit {
		tokens = tokens[:limit]
	}
	return tokens, nil
}

func (s *state) CountListings(_ context.Context, collection domain.Address) (int, error) {
	return len(s.listings[collection]), nil
}

func (s *state) AddListing(_ context.Context, collection domain.Address, token domain.TokenID) error {
	set, ok := s.listings[collection]
	if !ok {
		set = make(map[domain.TokenID]struct{})
		s.listings[collection] = set
	}
	set[token] = struct{}{}
	return nil
}

func (s *state) RemoveListing(_ context.Context, collection domain.Address, token domain.TokenID) error {
	delete(s.listings[collection], token)
	return nil
}

// --- purchase keys ---

func (s *state) FindPurchaseKey(_ context.Context, collection domain.Address, token domain.TokenID) (domain.PurchaseKey, error) {
	if key, ok := s.purchaseKeys[tokenKey{collection, token}]; ok {
		return key, nil
	}
	return domain.NoPurchaseKey(), nil
}

func (s *state) SavePurchaseKey(_ context.Context, collection domain.Address, token domain.TokenID, key domain.PurchaseKey) error {
	s.purchaseKeys[tokenKey{collection, token}] = key
	return nil
}

func (s *state) DeletePurchaseKey(_ context.Context, collection domain.Address, token domain.TokenID) error {
	delete(s.purchaseKeys, tokenKey{collection, token})
	return nil
}

// --- balances ---

func (s *state) GetBalance(_ context.Context, currency domain.Address) (decimal.Decimal, error) {
	if amount, ok := s.balances[currency]; ok {
		return amount, nil
	}
	return decimal.Zero, nil
}

func (s *state) GetSemiFungibleBalance(_ context.Context, key domain.SemiFungibleKey) (decimal.Decimal, error) {
	if amount, ok := s.semiFungible[key]; ok {
		return amount, nil
	}
	return decimal.Zero, nil
}

func (s *state) ListSemiFungibleBalances(_ context.Context) ([]domain.SemiFungibleBalance, error) {
	out := make([]domain.SemiFungibleBalance, 0, len(s.semiOrder))
	for _, key := range s.semiOrder {
		out = append(out, domain.SemiFungibleBalance{SemiFungibleKey: key, Amount: s.semiFungible[key]})
	}
	return out, nil
}

func (s *state) CreditBalance(_ context.Context, currency domain.Address, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: negative credit", apperrors.ErrValidation)
	}
	current, ok := s.balances[currency]
	if !ok {
		current = decimal.Zero
	}
	s.balances[currency] = current.Add(amount)
	return nil
}

func (s *state) ZeroBalance(_ context.Context, currency domain.Address) error {
	if _, ok := s.balances[currency]; ok {
		s.balances[currency] = decimal.Zero
	}
	return nil
}

func (s *state) CreditSemiFungible(_ context.Context, key domain.SemiFungibleKey, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: negative credit", apperrors.ErrValidation)
	}
	current, ok := s.semiFungible[key]
	if !ok {
		current = decimal.Zero
		s.semiOrder = append(s.semiOrder, key)
	}
	s.semiFungible[key] = current.Add(amount)
	return nil
}

func (s *state) ZeroSemiFungible(_ context.Context, key domain.SemiFungibleKey) error {
	if _, ok := s.semiFungible[key]; ok {
		s.semiFungible[key] = decimal.Zero
	}
	return nil
}
