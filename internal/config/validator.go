package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation error [%s=%s]: %s", e.Field, e.Value, e.Message)
}

// ValidationResult holds the results of configuration validation
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
	Valid    bool
}

// AddError adds a validation error
func (r *ValidationResult) AddError(field, value, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: message})
	r.Valid = false
}

// AddWarning adds a validation warning
func (r *ValidationResult) AddWarning(field, value, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: message})
}

// Err joins all errors, or returns nil when the result is valid.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// Validate validates the configuration and returns validation results
func (c *Config) Validate() ValidationResult {
	result := ValidationResult{Valid: true}

	if _, err := parsePort(c.Server.Port); err != nil {
		result.AddError("port", c.Server.Port, err.Error())
	}

	// The key is only checked per request so a missing key surfaces as a
	// configuration error instead of preventing startup.
	if !c.Provider.HasAPIKey() {
		result.AddWarning("groq_api_key", "", "GROQ_API_KEY is not set; transform requests will fail")
	}

	if u, err := url.Parse(c.Provider.Endpoint); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		result.AddError("groq_api_url", c.Provider.Endpoint, "must be an absolute http(s) URL")
	}
	if c.Provider.Model == "" {
		result.AddError("groq_model", c.Provider.Model, "model name is required")
	}
	if c.Provider.Temperature < 0 || c.Provider.Temperature > 2 {
		result.AddError("groq_temperature", strconv.FormatFloat(c.Provider.Temperature, 'f', -1, 64),
			"temperature must be between 0 and 2")
	}

	if c.Transport.ProxyURL != "" {
		if _, err := url.Parse(c.Transport.ProxyURL); err != nil {
			result.AddError("proxy_url", c.Transport.ProxyURL, "invalid proxy URL format")
		}
	}
	if c.Transport.RequestTimeout == 0 {
		result.AddWarning("request_timeout_sec", "0", "no overall upstream timeout; requests may block indefinitely")
	}

	return result
}
