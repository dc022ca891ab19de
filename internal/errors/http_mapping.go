package errors

import (
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// MapHTTPError maps a non-2xx provider response to a KindUpstream error.
// The upstream status is always propagated.
func MapHTTPError(statusCode int, upstreamBody []byte) *APIError {
	upstreamMsg := extractUpstreamMessage(upstreamBody)

	var e *APIError
	switch statusCode {
	case http.StatusBadRequest:
		e = New(KindUpstream, statusCode, "invalid_request_error", firstNonEmpty(upstreamMsg, "Invalid request"))
	case http.StatusUnauthorized:
		e = New(KindUpstream, statusCode, "invalid_api_key", firstNonEmpty(upstreamMsg, "Invalid authentication"))
	case http.StatusForbidden:
		e = New(KindUpstream, statusCode, "permission_denied", firstNonEmpty(upstreamMsg, "Permission denied"))
	case http.StatusNotFound:
		e = New(KindUpstream, statusCode, "not_found", firstNonEmpty(upstreamMsg, "Resource not found"))
	case http.StatusTooManyRequests:
		e = New(KindUpstream, statusCode, "rate_limit_exceeded", firstNonEmpty(upstreamMsg, "Rate limit exceeded"))
	case http.StatusInternalServerError:
		e = New(KindUpstream, statusCode, "server_error", firstNonEmpty(upstreamMsg, "Internal server error"))
	case http.StatusBadGateway:
		e = New(KindUpstream, statusCode, "bad_gateway", firstNonEmpty(upstreamMsg, "Bad gateway"))
	case http.StatusServiceUnavailable:
		e = New(KindUpstream, statusCode, "service_unavailable", firstNonEmpty(upstreamMsg, "Service temporarily unavailable"))
	case http.StatusGatewayTimeout:
		e = New(KindUpstream, statusCode, "timeout", firstNonEmpty(upstreamMsg, "Request timeout"))
	default:
		e = New(KindUpstream, statusCode, "unknown_error", firstNonEmpty(upstreamMsg, fmt.Sprintf("HTTP %d error", statusCode)))
	}
	e.UpstreamStatus = statusCode
	if len(upstreamBody) > 0 {
		e.UpstreamBody = append([]byte(nil), upstreamBody...)
	}
	return e
}

func extractUpstreamMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if gjson.ValidBytes(body) {
		if msg := gjson.GetBytes(body, "error.message").String(); msg != "" {
			return msg
		}
	}
	msg := string(body)
	if len(msg) > 200 {
		return msg[:200] + "..."
	}
	return msg
}

func firstNonEmpty(strs ...string) string {
	for _, s := range strs {
		if s != "" {
			return s
		}
	}
	return ""
}
