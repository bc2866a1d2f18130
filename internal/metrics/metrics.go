package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "swarmworks"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	backendCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_calls_total",
			Help:      "Total number of inference backend calls",
		},
		[]string{"operation", "model", "status"},
	)

	backendCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_call_duration_seconds",
			Help:      "Duration of inference backend calls",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
		[]string{"operation", "model"},
	)

	backendTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_tokens_total",
			Help:      "Total number of tokens generated by the inference backend",
		},
		[]string{"model"},
	)

	agentRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "agent_runs_total",
			Help:      "Total number of agent runs by outcome",
		},
		[]string{"agent", "status"},
	)

	orchestrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orchestrations_total",
			Help:      "Total number of orchestrated analyses by outcome",
		},
		[]string{"status"},
	)
)

// outcome label values
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusPartial = "partial"
)

// records one call to the inference backend
func ObserveBackendCall(operation, model string, took time.Duration, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}

	backendCallsTotal.WithLabelValues(operation, model, status).Inc()
	backendCallDuration.WithLabelValues(operation, model).Observe(took.Seconds())
}

// adds generated tokens for a model
func AddTokens(model string, n int) {
	if n <= 0 {
		return
	}

	backendTokensTotal.WithLabelValues(model).Add(float64(n))
}

// records one agent run
func ObserveAgentRun(agent string, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}

	agentRunsTotal.WithLabelValues(agent, status).Inc()
}

// records an orchestration given how many agents ran and how many failed
func ObserveOrchestration(total, failed int) {
	status := StatusSuccess

	switch {
	case total > 0 && failed == total:
		status = StatusError
	case failed > 0:
		status = StatusPartial
	}

	orchestrationsTotal.WithLabelValues(status).Inc()
}

// gin middleware counting requests per matched route
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// exposes the default registry for GET /metrics
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
