package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	AccountsCreated  prometheus.Counter
	PromptsSaved     prometheus.Counter
	PromptTests      *prometheus.CounterVec
	QuotaRejections  prometheus.Counter
	CheckoutSessions prometheus.Counter
	WebhookEvents    *prometheus.CounterVec

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		// Business metrics
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "accounts_created_total",
			Help: "Total number of accounts created",
		}),
		PromptsSaved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "prompts_saved_total",
			Help: "Total number of prompts saved",
		}),
		PromptTests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prompt_tests_total",
				Help: "Total number of prompt test runs",
			},
			[]string{"provider", "status"}, // success, failed
		),
		QuotaRejections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quota_rejections_total",
			Help: "Total number of saves rejected by the free-tier quota",
		}),
		CheckoutSessions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "checkout_sessions_created_total",
			Help: "Total number of Stripe checkout sessions created",
		}),
		WebhookEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_webhook_events_total",
				Help: "Total number of Stripe webhook events received",
			},
			[]string{"type", "outcome"}, // applied, dropped, ignored, error
		),

		// Cache metrics
		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/prompts/:id)

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}
