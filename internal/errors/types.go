package errors

// Kind classifies where a request failed.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindConfiguration Kind = "configuration"
	KindUpstream      Kind = "upstream"
	KindNetwork       Kind = "network"
	KindInternal      Kind = "internal"
)

// APIError represents a standardized failure of a transform request.
type APIError struct {
	Kind       Kind
	HTTPStatus int
	Code       string
	Message    string

	// Fields holds per-field validation messages keyed by JSON field name.
	Fields map[string][]string
	// UpstreamStatus and UpstreamBody are set for KindUpstream.
	UpstreamStatus int
	UpstreamBody   []byte

	Cause error
}

// FlatError is the payload written for every non-validation failure.
type FlatError struct {
	Error string `json:"error"`
}
