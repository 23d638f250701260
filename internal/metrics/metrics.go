package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Provider collects request and tool-call metrics on a private registry.
// A nil Provider is valid and records nothing.
type Provider struct {
	registry    *prometheus.Registry
	promHandler http.Handler

	httpRequestCounter *prometheus.CounterVec
	httpRequestLatency *prometheus.HistogramVec
	toolCallCounter    *prometheus.CounterVec
}

func Setup() (*Provider, error) {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "timeleft",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests processed.",
		},
		[]string{"method", "route", "status"},
	)
	httpLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "timeleft",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "route", "status"},
	)
	toolCalls := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "timeleft",
			Name:      "tool_calls_total",
			Help:      "Total number of MCP tool invocations.",
		},
		[]string{"tool"},
	)

	if err := registry.Register(httpRequests); err != nil {
		return nil, err
	}
	if err := registry.Register(httpLatency); err != nil {
		return nil, err
	}
	if err := registry.Register(toolCalls); err != nil {
		return nil, err
	}

	return &Provider{
		registry:           registry,
		promHandler:        promhttp.HandlerFor(registry, promhttp.HandlerOpts{EnableOpenMetrics: true}),
		httpRequestCounter: httpRequests,
		httpRequestLatency: httpLatency,
		toolCallCounter:    toolCalls,
	}, nil
}

func (p *Provider) Handler() http.Handler {
	if p == nil || p.promHandler == nil {
		return nil
	}
	return p.promHandler
}

func (p *Provider) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if p == nil {
		return
	}

	statusLabel := strconv.Itoa(status)
	p.httpRequestCounter.WithLabelValues(method, route, statusLabel).Inc()
	p.httpRequestLatency.WithLabelValues(method, route, statusLabel).Observe(duration.Seconds())
}

func (p *Provider) RecordToolCall(tool string) {
	if p == nil {
		return
	}
	p.toolCallCounter.WithLabelValues(tool).Inc()
}
