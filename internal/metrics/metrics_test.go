package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
)

func TestSettlementCounters(t *testing.T) {
	m := New()
	currency := domain.MustParseAddress("0x00000000000000000000000000000000000000a1")

	m.PurchaseSettled(currency, 3, decimal.NewFromInt(250))
	m.PurchaseSettled(currency, 1, decimal.NewFromInt(50))
	m.WithdrawalSettled(2)
	m.SettlementFailed("buy", apperrors.KindBusiness)
	m.SweepFinished("empty")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.purchases.WithLabelValues(currency.String())))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.tokensSold.WithLabelValues(currency.String())))
	assert.Equal(t, 300.0, testutil.ToFloat64(m.volume.WithLabelValues(currency.String())))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.withdrawals))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("buy", "business")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sweepRuns.WithLabelValues("empty")))
}

func TestGinMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	router := gin.New()
	router.Use(m.GinMiddleware())
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/health", "200")))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "xave_market_http_requests_total")
}
