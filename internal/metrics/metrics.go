// Package metrics exposes Prometheus collectors for the market.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
)

const namespace = "xave_market"

// Metrics owns a registry and every market collector.
type Metrics struct {
	Registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	purchases    *prometheus.CounterVec
	tokensSold   *prometheus.CounterVec
	volume       *prometheus.CounterVec
	withdrawals  prometheus.Counter
	failures     *prometheus.CounterVec
	sweepRuns    *prometheus.CounterVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
		purchases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settlement",
			Name:      "purchases_total",
			Help:      "Settled purchase batches.",
		}, []string{"currency"}),
		tokensSold: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settlement",
			Name:      "tokens_sold_total",
			Help:      "Tokens delivered to buyers.",
		}, []string{"currency"}),
		volume: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settlement",
			Name:      "volume_base_units_total",
			Help:      "Sum of purchase totals in currency base units.",
		}, []string{"currency"}),
		withdrawals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settlement",
			Name:      "withdrawals_total",
			Help:      "Successful withdrawals.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settlement",
			Name:      "failures_total",
			Help:      "Rejected settlement calls by operation and error kind.",
		}, []string{"op", "kind"}),
		sweepRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "withdraw_sweeps_total",
			Help:      "Scheduled withdraw sweeps by outcome.",
		}, []string{"outcome"}),
	}
	m.Registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.purchases,
		m.tokensSold,
		m.volume,
		m.withdrawals,
		m.failures,
		m.sweepRuns,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Handler exposes the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request counts and latency by route template.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		m.httpInFlight.Inc()
		defer m.httpInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// PurchaseSettled implements services.SettlementObserver.
func (m *Metrics) PurchaseSettled(currency domain.Address, tokens int, total decimal.Decimal) {
	label := currency.String()
	m.purchases.WithLabelValues(label).Inc()
	m.tokensSold.WithLabelValues(label).Add(float64(tokens))
	m.volume.WithLabelValues(label).Add(total.InexactFloat64())
}

// WithdrawalSettled implements services.SettlementObserver.
func (m *Metrics) WithdrawalSettled(int) {
	m.withdrawals.Inc()
}

// SettlementFailed implements services.SettlementObserver.
func (m *Metrics) SettlementFailed(op string, kind apperrors.Kind) {
	m.failures.WithLabelValues(op, string(kind)).Inc()
}

// SweepFinished records a scheduled withdraw sweep.
func (m *Metrics) SweepFinished(outcome string) {
	m.sweepRuns.WithLabelValues(outcome).Inc()
}
