package config

// FileConfig represents the configuration loaded from file
type FileConfig struct {
	// Server settings
	Port     int    `yaml:"port" json:"port"`
	BasePath string `yaml:"base_path" json:"base_path"`
	Debug    bool   `yaml:"debug" json:"debug"`
	LogFile  string `yaml:"log_file" json:"log_file"`

	// Provider settings
	GroqAPIKey      string   `yaml:"groq_api_key" json:"groq_api_key"`
	GroqAPIURL      string   `yaml:"groq_api_url" json:"groq_api_url"`
	GroqModel       string   `yaml:"groq_model" json:"groq_model"`
	GroqTemperature *float64 `yaml:"groq_temperature" json:"groq_temperature"`

	// Transport settings
	ProxyURL                 string `yaml:"proxy_url" json:"proxy_url"`
	DialTimeoutSec           int    `yaml:"dial_timeout_sec" json:"dial_timeout_sec"`
	TLSHandshakeTimeoutSec   int    `yaml:"tls_handshake_timeout_sec" json:"tls_handshake_timeout_sec"`
	ResponseHeaderTimeoutSec int    `yaml:"response_header_timeout_sec" json:"response_header_timeout_sec"`
	RequestTimeoutSec        int    `yaml:"request_timeout_sec" json:"request_timeout_sec"`
}
