package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	memledger "github.com/agarrido2001/XaveMarket/internal/adapters/ledger/memory"
	"github.com/agarrido2001/XaveMarket/internal/adapters/memory"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
	"github.com/agarrido2001/XaveMarket/internal/core/services"
	"github.com/agarrido2001/XaveMarket/internal/dto"
	"github.com/agarrido2001/XaveMarket/internal/handlers"
	"github.com/agarrido2001/XaveMarket/internal/middleware"
	"github.com/agarrido2001/XaveMarket/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/swaggo/swag"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testIssuer = "xave-market-test"
)

func testAddress(n int) domain.Address {
	return domain.MustParseAddress(fmt.Sprintf("0x%040x", n))
}

var (
	admin      = testAddress(0x01)
	market     = testAddress(0x02)
	buyer      = testAddress(0x03)
	seller     = testAddress(0x04)
	currencyA  = testAddress(0xa1)
	collection = testAddress(0xc1)
)

// HandlerTestSuite drives the HTTP API over the in-memory store and ledger.
type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	ledger *memledger.Ledger
	svc    *portssvc.ServiceContainer
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ledger = memledger.NewLedger()
	s.ledger.Deploy(currencyA, memledger.KindFungible)
	s.ledger.Deploy(collection, memledger.KindItems)

	s.svc = services.NewServiceContainer(services.Dependencies{
		Repos:   portsrepo.RepositoryProvider{MarketStore: memory.NewStore(), RoleRepo: memory.NewRoleRepository()},
		Gateway: s.ledger,
		Market:  market,
	})
	s.Require().NoError(s.svc.AccessControl.Bootstrap(context.Background(), admin))

	cfg := &config.Config{JWTSecret: testSecret, JWTIssuer: testIssuer, IsProduction: true}
	s.router = gin.New()
	s.router.Use(middleware.StructuredLoggingMiddleware(nil))
	handlers.RegisterRoutes(s.router, cfg, s.svc, handlers.Extras{
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("xave_market_up 1\n"))
		}),
	})
}

func (s *HandlerTestSuite) token(caller domain.Address) string {
	tok, err := middleware.IssueToken(caller, testSecret, testIssuer, time.Hour)
	s.Require().NoError(err)
	return tok
}

func (s *HandlerTestSuite) do(method, path string, caller *domain.Address, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if caller != nil {
		req.Header.Set("Authorization", "Bearer "+s.token(*caller))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

// setupMarket registers currency A and the collection priced at 100 A,
// lists tokens 1..3 owned by seller and funds buyer with 1000 A.
func (s *HandlerTestSuite) setupMarket() {
	w := s.do(http.MethodPost, "/api/v1/currencies", &admin, dto.AddCurrencyRequest{Address: currencyA, Symbol: "AAA"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/collections", &admin, dto.AddCollectionRequest{
		Address:    collection,
		Standard:   string(domain.StandardERC721),
		Currencies: []domain.Address{currencyA},
		Amounts:    []decimal.Decimal{decimal.NewFromInt(100)},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	for _, id := range []domain.TokenID{1, 2, 3} {
		s.Require().NoError(s.ledger.MintItem(collection, seller, id))
	}
	s.Require().NoError(s.ledger.SetApprovalForAll(collection, seller, market, true))
	w = s.do(http.MethodPost, "/api/v1/collections/"+collection.String()+"/listings", &admin, dto.ListingBatchRequest{TokenIDs: []domain.TokenID{1, 2, 3}})
	s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

	s.Require().NoError(s.ledger.Mint(currencyA, buyer, decimal.NewFromInt(1000)))
	s.Require().NoError(s.ledger.Approve(currencyA, buyer, market, decimal.NewFromInt(1000)))
}

func (s *HandlerTestSuite) TestHealthAndMetrics() {
	w := s.do(http.MethodGet, "/health", nil, nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/metrics", nil, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "xave_market_up")
}

func (s *HandlerTestSuite) TestRequiresAuthentication() {
	w := s.do(http.MethodGet, "/api/v1/currencies", nil, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlerTestSuite) TestAddCurrency_ErrorMapping() {
	stranger := testAddress(0x05)

	w := s.do(http.MethodPost, "/api/v1/currencies", &stranger, dto.AddCurrencyRequest{Address: currencyA})
	s.Equal(http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/api/v1/currencies", &admin, dto.AddCurrencyRequest{Address: testAddress(0xee)})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/v1/currencies", &admin, dto.AddCurrencyRequest{Address: currencyA})
	s.Equal(http.StatusCreated, w.Code)
	w = s.do(http.MethodPost, "/api/v1/currencies", &admin, dto.AddCurrencyRequest{Address: currencyA})
	s.Equal(http.StatusConflict, w.Code)

	var list []dto.CurrencyResponse
	w = s.do(http.MethodGet, "/api/v1/currencies", &buyer, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &list)
	s.Require().Len(list, 1)
	s.Equal(currencyA.String(), list[0].Address)
	s.Equal(admin.String(), list[0].CreatedBy)
}

func (s *HandlerTestSuite) TestMalformedPathAndBody() {
	w := s.do(http.MethodGet, "/api/v1/collections/not-an-address", &admin, nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/collections/"+collection.String()+"/tokens/abc/prices", &admin, nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/v1/collections", &admin, map[string]string{"address": collection.String(), "standard": "erc20"})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/collections/"+collection.String(), &admin, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestPurchaseFlow() {
	s.setupMarket()
	base := "/api/v1/collections/" + collection.String()

	w := s.do(http.MethodPut, base+"/prices/override", &admin, dto.SetOverridePricesRequest{
		Currency: currencyA, TokenIDs: []domain.TokenID{2}, Amounts: []decimal.Decimal{decimal.NewFromInt(40)},
	})
	s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

	var price dto.PriceResponse
	w = s.do(http.MethodGet, base+"/tokens/2/prices/"+currencyA.String(), &buyer, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &price)
	s.True(price.Set)
	s.True(price.Amount.Equal(decimal.NewFromInt(40)))

	var receipt dto.PurchaseResponse
	w = s.do(http.MethodPost, "/api/v1/purchases", &buyer, dto.BuyTokenRequest{Collection: collection, TokenIDs: []domain.TokenID{1, 2}, Currency: currencyA})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.decode(w, &receipt)
	s.True(receipt.Total.Equal(decimal.NewFromInt(140)))
	s.Equal(buyer, s.ledger.OwnerOf(collection, 1))

	var failure handlers.ErrorResponse
	w = s.do(http.MethodPost, "/api/v1/purchases", &buyer, dto.BuyTokenRequest{Collection: collection, TokenIDs: []domain.TokenID{3, 1}, Currency: currencyA})
	s.Require().Equal(http.StatusUnprocessableEntity, w.Code)
	s.decode(w, &failure)
	s.Require().NotNil(failure.TokenID)
	s.Equal(domain.TokenID(1), *failure.TokenID)
	s.Equal("business", failure.Kind)

	var page dto.ListListingsResponse
	w = s.do(http.MethodGet, base+"/listings?limit=5", &buyer, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &page)
	s.Equal([]domain.TokenID{3}, page.TokenIDs)
	s.Nil(page.NextToken)

	var balances dto.BalancesResponse
	w = s.do(http.MethodGet, "/api/v1/balances", &buyer, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &balances)
	s.Require().Len(balances.Currencies, 1)
	s.True(balances.Currencies[0].Amount.Equal(decimal.NewFromInt(140)))

	w = s.do(http.MethodPost, "/api/v1/withdrawals", &buyer, nil)
	s.Equal(http.StatusForbidden, w.Code)

	var withdrawal dto.WithdrawalResponse
	w = s.do(http.MethodPost, "/api/v1/withdrawals", &admin, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.decode(w, &withdrawal)
	s.Equal(admin.String(), withdrawal.Recipient)
	s.True(s.ledger.BalanceOf(currencyA, admin).Equal(decimal.NewFromInt(140)))

	w = s.do(http.MethodPost, "/api/v1/withdrawals", &admin, nil)
	s.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (s *HandlerTestSuite) TestPurchaseKeysAndListingRemoval() {
	s.setupMarket()
	keyAsset := testAddress(0xd1)
	s.ledger.Deploy(keyAsset, memledger.KindSemiFungible)
	base := "/api/v1/collections/" + collection.String()

	w := s.do(http.MethodPut, base+"/purchase-keys", &admin, dto.SetPurchaseKeyRequest{
		TokenIDs: []domain.TokenID{3}, Asset: keyAsset, SubID: 9, Amount: decimal.NewFromInt(2),
	})
	s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

	var key dto.PurchaseKeyResponse
	w = s.do(http.MethodGet, base+"/tokens/3/purchase-key", &buyer, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &key)
	s.Equal(keyAsset.String(), key.Asset)
	s.Equal(domain.TokenID(9), key.SubID)

	w = s.do(http.MethodPost, "/api/v1/purchases", &buyer, dto.BuyTokenRequest{Collection: collection, TokenIDs: []domain.TokenID{3}, Currency: currencyA})
	s.Equal(http.StatusUnprocessableEntity, w.Code)

	w = s.do(http.MethodPost, base+"/purchase-keys/clear", &admin, dto.ClearPurchaseKeyRequest{TokenIDs: []domain.TokenID{3}})
	s.Equal(http.StatusNoContent, w.Code)
	w = s.do(http.MethodPost, base+"/purchase-keys/clear", &admin, dto.ClearPurchaseKeyRequest{TokenIDs: []domain.TokenID{3}})
	s.Equal(http.StatusUnprocessableEntity, w.Code)

	w = s.do(http.MethodDelete, base, &admin, nil)
	s.Equal(http.StatusUnprocessableEntity, w.Code)

	w = s.do(http.MethodPost, base+"/listings/remove", &admin, dto.ListingBatchRequest{TokenIDs: []domain.TokenID{1, 2, 3}})
	s.Require().Equal(http.StatusNoContent, w.Code)
	w = s.do(http.MethodDelete, base, &admin, nil)
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *HandlerTestSuite) TestRoles() {
	w := s.do(http.MethodPost, "/api/v1/roles/grant", &admin, dto.RoleChangeRequest{Role: string(domain.RoleWithdraw), Account: buyer})
	s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

	var members []dto.RoleGrantResponse
	w = s.do(http.MethodGet, "/api/v1/roles/WITHDRAW/members", &buyer, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &members)
	s.Len(members, 2)

	w = s.do(http.MethodPost, "/api/v1/roles/revoke", &buyer, dto.RoleChangeRequest{Role: string(domain.RoleWithdraw), Account: admin})
	s.Equal(http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/api/v1/roles/grant", &admin, map[string]string{"role": "SUPERUSER", "account": buyer.String()})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/roles/SUPERUSER/members", &admin, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestSwaggerDocumentsEveryRoute() {
	raw, err := swag.ReadDoc()
	s.Require().NoError(err)
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	s.Require().NoError(json.Unmarshal([]byte(raw), &doc))

	pathParam := regexp.MustCompile(`:(\w+)`)
	for _, route := range s.router.Routes() {
		if route.Path == "/metrics" {
			continue
		}
		documented := pathParam.ReplaceAllString(strings.TrimPrefix(route.Path, "/api/v1"), "{$1}")
		ops, ok := doc.Paths[documented]
		if s.Truef(ok, "route %s %s is not documented", route.Method, route.Path) {
			s.Containsf(ops, strings.ToLower(route.Method), "route %s %s is not documented", route.Method, route.Path)
		}
	}
	s.Contains(doc.Paths, "/events/stream")
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
