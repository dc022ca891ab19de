package groq

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"textproxy/internal/config"
	"textproxy/internal/constants"
	"textproxy/internal/logging"
	mw "textproxy/internal/middleware"
	"textproxy/internal/monitoring/tracing"
	"textproxy/internal/upstream"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const providerName = "groq"

// Client posts chat completion requests to an OpenAI-compatible endpoint.
// It is safe for concurrent use.
type Client struct {
	cli       *http.Client
	userAgent string
}

func durationOrDefault(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}

// New builds a client whose transport honours the configured timeouts and proxy.
// RequestTimeout bounds the whole exchange; zero means no overall limit.
func New(tc config.TransportConfig) *Client {
	tr := &http.Transport{
		Proxy: getProxyFunc(tc.ProxyURL),
		DialContext: (&net.Dialer{
			Timeout:   durationOrDefault(tc.DialTimeout, constants.DefaultDialTimeout),
			KeepAlive: constants.DefaultKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   durationOrDefault(tc.TLSHandshakeTimeout, constants.DefaultTLSHandshakeTimeout),
		ResponseHeaderTimeout: durationOrDefault(tc.ResponseHeaderTimeout, constants.DefaultResponseHeaderTimeout),
		ExpectContinueTimeout: constants.DefaultExpectContinueTimeout,
		MaxIdleConns:          constants.BaseMaxIdleConns,
		MaxIdleConnsPerHost:   constants.BaseMaxIdleConnsPerHost,
		IdleConnTimeout:       constants.BaseIdleConnTimeout,
	}
	return &Client{
		cli:       &http.Client{Transport: tr, Timeout: tc.RequestTimeout},
		userAgent: "textproxy/" + constants.Version,
	}
}

// getProxyFunc returns appropriate proxy function based on configuration
func getProxyFunc(proxyURL string) func(*http.Request) (*url.URL, error) {
	if proxyURL != "" {
		if parsedURL, err := url.Parse(proxyURL); err == nil {
			return http.ProxyURL(parsedURL)
		}
	}
	return http.ProxyFromEnvironment
}

// ChatCompletion sends one POST with the given JSON payload to p.Endpoint.
// It never retries. A non-nil error means the transport failed; any HTTP
// status, including non-2xx, is returned as a response.
//
// IMPORTANT: Caller is responsible for closing resp.Body if err is nil.
func (c *Client) ChatCompletion(ctx context.Context, p config.ProviderConfig, payload []byte) (*http.Response, error) {
	ctx, span := tracing.StartSpan(ctx, "upstream/groq", "Groq.ChatCompletion",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", http.MethodPost),
			attribute.String("http.url", p.Endpoint),
			attribute.String("upstream.model", p.Model),
		))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint, bytes.NewReader(payload))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if rid := upstream.RequestID(ctx); rid != "" {
		req.Header.Set(mw.RequestIDHeader, rid)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.cli.Do(req)
	status := getStatus(resp)
	elapsed := time.Since(start)
	mw.RecordUpstream(providerName, p.Model, elapsed, status, err != nil)
	log.WithFields(log.Fields{
		"provider":   providerName,
		"model":      p.Model,
		"status":     status,
		"latency_ms": logging.DurationMS(elapsed),
		"error_kind": logging.ErrorKind(status, err != nil),
		"request_id": upstream.RequestID(ctx),
	}).Debug("upstream call")

	span.SetAttributes(attribute.Int("http.status_code", status))
	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	case status >= 400:
		span.SetStatus(codes.Error, fmt.Sprintf("http_status=%d", status))
	default:
		span.SetStatus(codes.Ok, "")
	}
	return resp, nil
}

func getStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
