package constants

import "time"

const (
	// UpstreamRequestTimeout bounds a single outbound completion call end to end.
	UpstreamRequestTimeout = 60 * time.Second
	// ServerShutdownTimeout bounds graceful HTTP server shutdown.
	ServerShutdownTimeout = 30 * time.Second
	// ServerReadHeaderTimeout guards against slow-header clients.
	ServerReadHeaderTimeout = 10 * time.Second
)
