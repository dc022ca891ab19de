package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case KindValidation:
		return "validation failed: " + e.fieldSummary()
	case KindUpstream:
		return fmt.Sprintf("upstream returned HTTP %d: %s", e.UpstreamStatus, e.Message)
	}
	if e.Cause != nil && e.Kind != KindNetwork {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Cause }

func (e *APIError) fieldSummary() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+strings.Join(e.Fields[name], " "))
	}
	return strings.Join(parts, "; ")
}

// FieldNames returns the offending field names in stable order.
func (e *APIError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func New(kind Kind, httpStatus int, code, message string) *APIError {
	return &APIError{Kind: kind, HTTPStatus: httpStatus, Code: code, Message: message}
}

// Validation builds a KindValidation error from a field -> messages map.
func Validation(fields map[string][]string) *APIError {
	e := New(KindValidation, http.StatusBadRequest, "invalid_request_error", "invalid request")
	e.Fields = fields
	return e
}

// Configuration builds a KindConfiguration error; no upstream call has been made.
func Configuration(message string) *APIError {
	return New(KindConfiguration, http.StatusInternalServerError, "configuration_error", message)
}

// WithCause attaches the underlying error.
func (e *APIError) WithCause(err error) *APIError {
	e.Cause = err
	return e
}

// Is matches on Kind so callers can write errors.Is(err, &APIError{Kind: KindNetwork}).
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok || t == nil {
		return false
	}
	return t.Kind != "" && t.Kind == e.Kind
}

// KindOf reports the Kind of err, or KindInternal when err is not an APIError.
func KindOf(err error) Kind {
	var apiErr *APIError
	if As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindInternal
}
