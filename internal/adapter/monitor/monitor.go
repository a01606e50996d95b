package monitor

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors of one process.
type Metrics struct {
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	chainQueries  *prometheus.CounterVec
	chainDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg. openSessions, when
// not nil, is sampled on every scrape.
func New(reg prometheus.Registerer, openSessions func() float64) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency distributions.",
				Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1.0, 2.0, 5.0},
			},
			[]string{"method", "path"},
		),
		chainQueries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txc_chain_queries_total",
				Help: "Chain queries by operation and result.",
			},
			[]string{"operation", "result"},
		),
		chainDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "txc_chain_query_duration_seconds",
				Help:    "Chain query latency distributions.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
	reg.MustRegister(m.httpRequests, m.httpDuration, m.chainQueries, m.chainDuration)

	if openSessions != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "txc_open_sessions",
			Help: "Signing sessions currently held in memory.",
		}, openSessions))
	}
	return m
}

// HTTPMiddleware records every request matched by a route.
func (m *Metrics) HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		if path == "" {
			return
		}
		status := strconv.Itoa(c.Writer.Status())
		m.httpRequests.WithLabelValues(c.Request.Method, path, status).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// ObserveChainQuery records one chain query.
func (m *Metrics) ObserveChainQuery(operation string, took time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.chainQueries.WithLabelValues(operation, result).Inc()
	m.chainDuration.WithLabelValues(operation).Observe(took.Seconds())
}
