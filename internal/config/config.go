package config

import "time"

// Config is the process-wide configuration, assembled once by Load and
// treated as read-only afterwards.
type Config struct {
	Server    ServerConfig
	Provider  ProviderConfig
	Transport TransportConfig
	Security  SecurityConfig
}

// ServerConfig controls the inbound HTTP listener.
type ServerConfig struct {
	Port     string
	BasePath string
}

// ProviderConfig describes the completion endpoint. APIKey is a secret and
// must never be logged.
type ProviderConfig struct {
	APIKey      string
	Endpoint    string
	Model       string
	Temperature float64
}

// HasAPIKey reports whether a bearer token is configured.
func (p ProviderConfig) HasAPIKey() bool { return p.APIKey != "" }

// TransportConfig tunes the outbound HTTP client.
type TransportConfig struct {
	ProxyURL              string
	DialTimeout           time.Duration
	TLSHandshakeTimeout   time.Duration
	ResponseHeaderTimeout time.Duration
	RequestTimeout        time.Duration
}

// SecurityConfig groups logging and diagnostics switches.
type SecurityConfig struct {
	Debug   bool
	LogFile string
}
