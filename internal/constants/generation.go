package constants

const (
	// DefaultEndpoint is the Groq OpenAI-compatible chat completions URL.
	DefaultEndpoint = "https://api.groq.com/openai/v1/chat/completions"
	// DefaultModel is the completion model used when none is configured.
	DefaultModel = "mixtral-8x7b-32768"

	// SummarizeTemperature and RewriteTemperature are fixed per mode.
	SummarizeTemperature = 0.5
	RewriteTemperature   = 0.7
	// DefaultChatTemperature applies to raw chat requests unless configured.
	DefaultChatTemperature = 0.7

	// NoResponseSentinel replaces content missing from a successful provider response.
	NoResponseSentinel = "No response generated."
)
