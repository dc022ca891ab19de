package config

import "os"

// mergeEnvVars overlays process environment variables onto fc.
func mergeEnvVars(fc *FileConfig) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := parsePort(v); err == nil {
			fc.Port = port
		}
	}
	if v := os.Getenv("BASE_PATH"); v != "" {
		fc.BasePath = v
	}
	setToggleFromEnv("DEBUG", func(b bool) { fc.Debug = b })
	if v := os.Getenv("LOG_FILE"); v != "" {
		fc.LogFile = v
	}

	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		fc.GroqAPIKey = v
	}
	if v := os.Getenv("GROQ_API_URL"); v != "" {
		fc.GroqAPIURL = v
	}
	if v := os.Getenv("GROQ_MODEL"); v != "" {
		fc.GroqModel = v
	}
	setFloatFromEnv("GROQ_TEMPERATURE", func(f float64) { fc.GroqTemperature = &f })

	if v := os.Getenv("PROXY_URL"); v != "" {
		fc.ProxyURL = v
	}
	setIntFromEnv("DIAL_TIMEOUT_SEC", func(n int) { fc.DialTimeoutSec = n })
	setIntFromEnv("TLS_HANDSHAKE_TIMEOUT_SEC", func(n int) { fc.TLSHandshakeTimeoutSec = n })
	setIntFromEnv("RESPONSE_HEADER_TIMEOUT_SEC", func(n int) { fc.ResponseHeaderTimeoutSec = n })
	setIntFromEnv("REQUEST_TIMEOUT_SEC", func(n int) { fc.RequestTimeoutSec = n })
}
