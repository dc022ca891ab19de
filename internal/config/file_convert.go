package config

import (
	"strconv"
	"strings"
	"time"

	"textproxy/internal/constants"
)

// fileConfigToConfig converts FileConfig to Config.
func fileConfigToConfig(fc *FileConfig) *Config {
	temp := constants.DefaultChatTemperature
	if fc.GroqTemperature != nil {
		temp = *fc.GroqTemperature
	}
	return &Config{
		Server: ServerConfig{
			Port:     strconv.Itoa(fc.Port),
			BasePath: normalizeBasePath(fc.BasePath),
		},
		Provider: ProviderConfig{
			APIKey:      strings.TrimSpace(fc.GroqAPIKey),
			Endpoint:    strings.TrimSpace(fc.GroqAPIURL),
			Model:       strings.TrimSpace(fc.GroqModel),
			Temperature: temp,
		},
		Transport: TransportConfig{
			ProxyURL:              strings.TrimSpace(fc.ProxyURL),
			DialTimeout:           seconds(fc.DialTimeoutSec),
			TLSHandshakeTimeout:   seconds(fc.TLSHandshakeTimeoutSec),
			ResponseHeaderTimeout: seconds(fc.ResponseHeaderTimeoutSec),
			RequestTimeout:        seconds(fc.RequestTimeoutSec),
		},
		Security: SecurityConfig{
			Debug:   fc.Debug,
			LogFile: strings.TrimSpace(fc.LogFile),
		},
	}
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
