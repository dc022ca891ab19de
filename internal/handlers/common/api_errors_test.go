package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "textproxy/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func render(t *testing.T, fn func(c *gin.Context)) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/summarize/", nil)
	fn(c)
	return rec, c
}

func TestAbortWithAPIError(t *testing.T) {
	tests := []struct {
		name           string
		err            *apperrors.APIError
		failure        string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "validation_field_map",
			err:            apperrors.Validation(map[string][]string{"text": {"This field is required."}}),
			failure:        "Failed to get summary",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"text":["This field is required."]}`,
		},
		{
			name:           "upstream_status_propagated",
			err:            apperrors.MapHTTPError(http.StatusServiceUnavailable, []byte(`{"error":{"message":"busy"}}`)),
			failure:        "Failed to rewrite text",
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"error":"Failed to rewrite text"}`,
		},
		{
			name:           "upstream_without_failure_message",
			err:            apperrors.MapHTTPError(http.StatusTooManyRequests, []byte(`{"error":{"message":"slow down"}}`)),
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `{"error":"slow down"}`,
		},
		{
			name:           "network_reports_cause",
			err:            apperrors.MapNetworkError(errors.New("dial tcp 127.0.0.1:1: connect: connection refused")),
			failure:        "Failed to get summary",
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"API request failed: dial tcp 127.0.0.1:1: connect: connection refused"}`,
		},
		{
			name:           "configuration",
			err:            apperrors.Configuration("Missing API Key. Please check your .env file."),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Missing API Key. Please check your .env file."}`,
		},
		{
			name:           "nil_is_internal",
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, c := render(t, func(c *gin.Context) { AbortWithAPIError(c, tt.err, tt.failure) })
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			assert.True(t, c.IsAborted())
		})
	}
}

func TestAbortWithAPIErrorSetsErrorKind(t *testing.T) {
	_, c := render(t, func(c *gin.Context) {
		AbortWithAPIError(c, apperrors.Configuration("x"), "")
	})
	assert.Equal(t, "configuration", c.GetString(ContextKeyErrorKind))
}

func TestAbortWithErrorWrapsPlainErrors(t *testing.T) {
	rec, c := render(t, func(c *gin.Context) { AbortWithError(c, errors.New("boom"), "") })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal", c.GetString(ContextKeyErrorKind))

	wrapped := errorsJoin(apperrors.Validation(map[string][]string{"style": {"bad"}}))
	rec, _ = render(t, func(c *gin.Context) { AbortWithError(c, wrapped, "") })
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAbortWithParseError(t *testing.T) {
	rec, _ := render(t, func(c *gin.Context) {
		AbortWithParseError(c, errors.New("unexpected EOF"))
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "JSON parse error - unexpected EOF", body["detail"])
}

func errorsJoin(err error) error {
	return errors.Join(errors.New("context"), err)
}
