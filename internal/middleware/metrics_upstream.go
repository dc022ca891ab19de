package middleware

import (
	"math"
	"time"

	"textproxy/internal/monitoring"
)

// RecordUpstream records upstream request duration and status classification.
func RecordUpstream(provider, model string, dur time.Duration, status int, networkErr bool) {
	cls := statusClass(status)
	if networkErr {
		cls = "network_error"
	}
	if model == "" {
		model = "unknown"
	}
	durSec := dur.Seconds()
	if math.IsNaN(durSec) || math.IsInf(durSec, 0) {
		durSec = 0
	}
	monitoring.UpstreamRequestsTotal.WithLabelValues(provider, model, cls).Inc()
	monitoring.UpstreamRequestDuration.WithLabelValues(provider).Observe(durSec)
}

// RecordTransform counts a finished transform by mode and outcome.
func RecordTransform(mode, outcome string) {
	if outcome == "" {
		outcome = "ok"
	}
	monitoring.TransformsTotal.WithLabelValues(mode, outcome).Inc()
}

// RecordSentinel counts successful responses that lacked the content field.
func RecordSentinel(mode string) {
	monitoring.SentinelResponsesTotal.WithLabelValues(mode).Inc()
}
