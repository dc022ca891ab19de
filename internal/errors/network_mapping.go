package errors

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"strings"
)

// MapNetworkError maps a transport failure to a KindNetwork error.
func MapNetworkError(err error) *APIError {
	errMsg := err.Error()

	var e *APIError
	var netErr net.Error
	switch {
	case stderrors.Is(err, context.DeadlineExceeded),
		stderrors.As(err, &netErr) && netErr.Timeout(),
		strings.Contains(errMsg, "timeout"):
		e = New(KindNetwork, http.StatusGatewayTimeout, "timeout", "Request timeout: "+errMsg)
	case strings.Contains(errMsg, "connection refused"):
		e = New(KindNetwork, http.StatusBadGateway, "connection_error", "Connection refused: "+errMsg)
	case strings.Contains(errMsg, "EOF") || strings.Contains(errMsg, "connection reset"):
		e = New(KindNetwork, http.StatusBadGateway, "connection_error", "Connection error: "+errMsg)
	case strings.Contains(errMsg, "no such host") || strings.Contains(errMsg, "name resolution"):
		e = New(KindNetwork, http.StatusBadGateway, "dns_error", "DNS resolution error: "+errMsg)
	case strings.Contains(errMsg, "certificate") || strings.Contains(errMsg, "tls"):
		e = New(KindNetwork, http.StatusBadGateway, "tls_error", "TLS/Certificate error: "+errMsg)
	case stderrors.Is(err, context.Canceled):
		e = New(KindNetwork, http.StatusRequestTimeout, "request_canceled", "Request was canceled: "+errMsg)
	default:
		e = New(KindNetwork, http.StatusBadGateway, "network_error", "Network error: "+errMsg)
	}
	return e.WithCause(err)
}
