package common

import (
	"net/http"

	apperrors "textproxy/internal/errors"
	"github.com/gin-gonic/gin"
)

// ContextKeyErrorKind is the gin context key under which the error kind of a
// failed request is stored for the request logger.
const ContextKeyErrorKind = "error_kind"

// AbortWithAPIError renders err and aborts the request. failure is the
// endpoint-specific message shown for upstream errors.
//
// Validation errors are written as a field -> messages map; every other kind
// is written as {"error": "..."}.
func AbortWithAPIError(c *gin.Context, err *apperrors.APIError, failure string) {
	if err == nil {
		err = apperrors.New(apperrors.KindInternal, http.StatusInternalServerError, "server_error", "unknown error")
	}
	c.Set(ContextKeyErrorKind, string(err.Kind))

	switch err.Kind {
	case apperrors.KindValidation:
		c.AbortWithStatusJSON(http.StatusBadRequest, err.Fields)
	case apperrors.KindUpstream:
		c.AbortWithStatusJSON(safeStatus(err.UpstreamStatus), apperrors.FlatError{Error: firstNonEmpty(failure, err.Message)})
	case apperrors.KindNetwork:
		c.AbortWithStatusJSON(safeStatus(err.HTTPStatus), apperrors.FlatError{Error: "API request failed: " + causeText(err)})
	case apperrors.KindConfiguration:
		c.AbortWithStatusJSON(http.StatusInternalServerError, apperrors.FlatError{Error: err.Message})
	default:
		c.AbortWithStatusJSON(safeStatus(err.HTTPStatus), apperrors.FlatError{Error: "Internal server error"})
	}
}

// AbortWithError is AbortWithAPIError for arbitrary errors. Errors that are
// not *APIError are reported as internal failures.
func AbortWithError(c *gin.Context, err error, failure string) {
	var apiErr *apperrors.APIError
	if !apperrors.As(err, &apiErr) {
		apiErr = apperrors.New(apperrors.KindInternal, http.StatusInternalServerError, "server_error", "internal error").WithCause(err)
	}
	AbortWithAPIError(c, apiErr, failure)
}

// AbortWithParseError reports a request body that could not be decoded.
func AbortWithParseError(c *gin.Context, err error) {
	c.Set(ContextKeyErrorKind, string(apperrors.KindValidation))
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "JSON parse error - " + err.Error()})
}

func causeText(err *apperrors.APIError) string {
	if err.Cause != nil {
		return err.Cause.Error()
	}
	return err.Message
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func safeStatus(status int) int {
	if status >= 400 && status <= 599 {
		return status
	}
	return http.StatusInternalServerError
}
