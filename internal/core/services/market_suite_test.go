package services_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/agarrido2001/XaveMarket/internal/adapters/memory"
	memledger "github.com/agarrido2001/XaveMarket/internal/adapters/ledger/memory"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
	"github.com/agarrido2001/XaveMarket/internal/core/services"
	"github.com/agarrido2001/XaveMarket/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func testAddress(n int) domain.Address {
	return domain.MustParseAddress(fmt.Sprintf("0x%040x", n))
}

var (
	admin    = testAddress(0x01)
	market   = testAddress(0x02)
	buyer    = testAddress(0x03)
	seller   = testAddress(0x04)
	stranger = testAddress(0x05)

	currencyA      = testAddress(0xa1)
	currencyB      = testAddress(0xa2)
	collectionX    = testAddress(0xc1)
	collectionSemi = testAddress(0xc2)
	keyAssetY      = testAddress(0xd1)
	notContract    = testAddress(0xee)
)

func amount(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func amounts(ns ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(ns))
	for i, n := range ns {
		out[i] = decimal.NewFromInt(n)
	}
	return out
}

func tokens(ids ...uint64) []domain.TokenID {
	out := make([]domain.TokenID, len(ids))
	for i, id := range ids {
		out[i] = domain.TokenID(id)
	}
	return out
}

// recordingSink collects published events.
type recordingSink struct {
	mu        sync.Mutex
	listings  []domain.ListingChanged
	purchases []domain.Purchased
	err       error
}

func (r *recordingSink) ListingChanged(_ context.Context, ev domain.ListingChanged) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings = append(r.listings, ev)
	return r.err
}

func (r *recordingSink) Purchased(_ context.Context, ev domain.Purchased) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purchases = append(r.purchases, ev)
	return r.err
}

// marketSuite wires every service over the in-memory store and ledger.
type marketSuite struct {
	suite.Suite
	ctx    context.Context
	store  *memory.Store
	roles  *memory.RoleRepository
	ledger *memledger.Ledger
	sink   *recordingSink
	svc    *portssvc.ServiceContainer
}

func (s *marketSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.roles = memory.NewRoleRepository()
	s.ledger = memledger.NewLedger()
	s.sink = &recordingSink{}
	s.svc = services.NewServiceContainer(services.Dependencies{
		Repos:   portsrepo.RepositoryProvider{MarketStore: s.store, RoleRepo: s.roles},
		Gateway: s.ledger,
		Sink:    s.sink,
		Market:  market,
	})
	s.Require().NoError(s.svc.AccessControl.Bootstrap(s.ctx, admin))

	s.ledger.Deploy(currencyA, memledger.KindFungible)
	s.ledger.Deploy(currencyB, memledger.KindFungible)
	s.ledger.Deploy(collectionX, memledger.KindItems)
	s.ledger.Deploy(collectionSemi, memledger.KindSemiFungible)
	s.ledger.Deploy(keyAssetY, memledger.KindSemiFungible)
}

func (s *marketSuite) requireAmount(want int64, got decimal.Decimal) {
	s.T().Helper()
	s.Require().Truef(got.Equal(decimal.NewFromInt(want)), "want %d, got %s", want, got.String())
}

func (s *marketSuite) addCurrency(addr domain.Address, symbol string) {
	s.T().Helper()
	_, err := s.svc.Currency.AddCurrency(s.ctx, admin, dto.AddCurrencyRequest{Address: addr, Symbol: symbol})
	s.Require().NoError(err)
}

func (s *marketSuite) addCollection(addr domain.Address) {
	s.T().Helper()
	_, err := s.svc.Collection.AddCollection(s.ctx, admin, dto.AddCollectionRequest{Address: addr, Standard: string(domain.StandardERC721)})
	s.Require().NoError(err)
}

// setupMarket registers currency A and collection X with DefaultPrice(X, A) = 100.
func (s *marketSuite) setupMarket() {
	s.T().Helper()
	s.addCurrency(currencyA, "AAA")
	s.addCollection(collectionX)
	s.Require().NoError(s.svc.Price.SetDefaultPrices(s.ctx, admin, collectionX, []domain.Address{currencyA}, amounts(100)))
}

// listItems mints ids to seller, approves the market and lists them in X.
func (s *marketSuite) listItems(ids ...uint64) {
	s.T().Helper()
	for _, id := range ids {
		s.Require().NoError(s.ledger.MintItem(collectionX, seller, domain.TokenID(id)))
	}
	s.Require().NoError(s.ledger.SetApprovalForAll(collectionX, seller, market, true))
	s.Require().NoError(s.svc.Listing.AddToMarket(s.ctx, admin, collectionX, tokens(ids...)))
}

// fundBuyer gives buyer n of currency and an equal allowance for the market.
func (s *marketSuite) fundBuyer(currency domain.Address, n int64) {
	s.T().Helper()
	s.Require().NoError(s.ledger.Mint(currency, buyer, amount(n)))
	s.Require().NoError(s.ledger.Approve(currency, buyer, market, amount(n)))
}

func dtoSemi() dto.AddCollectionRequest {
	return dto.AddCollectionRequest{Address: collectionSemi, Standard: string(domain.StandardERC1155), Holder: seller}
}
