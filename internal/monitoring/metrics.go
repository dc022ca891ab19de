package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textproxy_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_class"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "textproxy_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "path", "status_class"},
	)

	// HTTP 并发请求数
	HTTPInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "textproxy_http_inflight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// 上游API调用指标
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textproxy_upstream_requests_total",
			Help: "Total number of upstream API requests",
		},
		[]string{"provider", "model", "status_class"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "textproxy_upstream_request_duration_seconds",
			Help:    "Upstream API request latency in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"provider"},
	)

	// TransformsTotal counts proxy outcomes by mode and error kind ("ok" on success).
	TransformsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textproxy_transforms_total",
			Help: "Total number of transform requests by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	// SentinelResponsesTotal counts successful upstream responses missing the content field.
	SentinelResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textproxy_sentinel_responses_total",
			Help: "Successful upstream responses without choices[0].message.content",
		},
		[]string{"mode"},
	)
)
