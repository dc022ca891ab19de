package transform

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"textproxy/internal/config"
	"textproxy/internal/constants"
	apperrors "textproxy/internal/errors"
	"textproxy/internal/upstream/groq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// fakeProvider is an httptest-backed completion endpoint that counts calls
// and remembers the last request body.
type fakeProvider struct {
	srv      *httptest.Server
	calls    atomic.Int32
	lastBody atomic.Value
}

func newFakeProvider(t *testing.T, status int, body string) *fakeProvider {
	t.Helper()
	fp := &fakeProvider{}
	fp.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fp.calls.Add(1)
		b, _ := io.ReadAll(r.Body)
		fp.lastBody.Store(b)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(fp.srv.Close)
	return fp
}

func (fp *fakeProvider) body() []byte {
	b, _ := fp.lastBody.Load().([]byte)
	return b
}

func newProxy(endpoint, key string, tc config.TransportConfig) *Proxy {
	return New(config.ProviderConfig{
		APIKey:      key,
		Endpoint:    endpoint,
		Model:       constants.DefaultModel,
		Temperature: 0.9,
	}, groq.New(tc))
}

func requireKind(t *testing.T, err error, kind apperrors.Kind) *apperrors.APIError {
	t.Helper()
	require.Error(t, err)
	var apiErr *apperrors.APIError
	require.True(t, apperrors.As(err, &apiErr), "expected *APIError, got %T", err)
	require.Equal(t, kind, apiErr.Kind)
	return apiErr
}

func TestTransformSummarizeSuccess(t *testing.T) {
	fp := newFakeProvider(t, http.StatusOK, `{"choices":[{"message":{"content":"X"}}]}`)
	p := newProxy(fp.srv.URL, "gsk_test", config.TransportConfig{})

	out, err := p.Transform(context.Background(), Request{Mode: ModeSummarize, Text: "long article"})
	require.NoError(t, err)
	assert.Equal(t, "X", out)
	assert.EqualValues(t, 1, fp.calls.Load())

	body := fp.body()
	assert.Equal(t, constants.DefaultModel, gjson.GetBytes(body, "model").String())
	assert.Equal(t, "user", gjson.GetBytes(body, "messages.0.role").String())
	assert.Equal(t, "Summarize this: long article", gjson.GetBytes(body, "messages.0.content").String())
	assert.Equal(t, 0.5, gjson.GetBytes(body, "temperature").Float())
	assert.EqualValues(t, 1, gjson.GetBytes(body, "messages.#").Int())
}

func TestTransformRewriteUsesStyleAndTemperature(t *testing.T) {
	fp := newFakeProvider(t, http.StatusOK, `{"choices":[{"message":{"content":"Dear Sir"}}]}`)
	p := newProxy(fp.srv.URL, "gsk_test", config.TransportConfig{})

	out, err := p.Transform(context.Background(), Request{Mode: ModeRewrite, Text: "hey", Style: StyleFormal})
	require.NoError(t, err)
	assert.Equal(t, "Dear Sir", out)

	body := fp.body()
	assert.Equal(t, "Rewrite this in formal style: hey", gjson.GetBytes(body, "messages.0.content").String())
	assert.Equal(t, 0.7, gjson.GetBytes(body, "temperature").Float())
}

func TestTransformChatUsesConfiguredTemperature(t *testing.T) {
	fp := newFakeProvider(t, http.StatusOK, `{"choices":[{"message":{"content":"pong"}}]}`)
	p := newProxy(fp.srv.URL, "gsk_test", config.TransportConfig{})

	out, err := p.Transform(context.Background(), Request{Mode: ModeChat, Text: "ping"})
	require.NoError(t, err)
	assert.Equal(t, "pong", out)
	assert.Equal(t, "ping", gjson.GetBytes(fp.body(), "messages.0.content").String())
	assert.Equal(t, 0.9, gjson.GetBytes(fp.body(), "temperature").Float())
}

func TestTransformValidationNeverCallsProvider(t *testing.T) {
	fp := newFakeProvider(t, http.StatusOK, `{"choices":[{"message":{"content":"X"}}]}`)
	p := newProxy(fp.srv.URL, "gsk_test", config.TransportConfig{})

	tests := []struct {
		name   string
		req    Request
		fields map[string][]string
	}{
		{
			name:   "summarize_missing_text",
			req:    Request{Mode: ModeSummarize},
			fields: map[string][]string{"text": {msgRequired}},
		},
		{
			name:   "summarize_blank_text",
			req:    Request{Mode: ModeSummarize, Text: "   "},
			fields: map[string][]string{"text": {msgBlank}},
		},
		{
			name:   "rewrite_missing_text_and_style",
			req:    Request{Mode: ModeRewrite},
			fields: map[string][]string{"text": {msgRequired}, "style": {msgRequired}},
		},
		{
			name:   "rewrite_invalid_style",
			req:    Request{Mode: ModeRewrite, Text: "hello", Style: "pirate"},
			fields: map[string][]string{"style": {`"pirate" is not a valid choice.`}},
		},
		{
			name:   "rewrite_style_case_sensitive",
			req:    Request{Mode: ModeRewrite, Text: "hello", Style: "Formal"},
			fields: map[string][]string{"style": {`"Formal" is not a valid choice.`}},
		},
		{
			name:   "unknown_mode",
			req:    Request{Mode: "translate", Text: "hello"},
			fields: map[string][]string{"mode": {`"translate" is not a valid choice.`}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Transform(context.Background(), tt.req)
			apiErr := requireKind(t, err, apperrors.KindValidation)
			assert.Equal(t, tt.fields, apiErr.Fields)
			assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
		})
	}
	assert.EqualValues(t, 0, fp.calls.Load())
}

func TestTransformSummarizeIgnoresStyle(t *testing.T) {
	fp := newFakeProvider(t, http.StatusOK, `{"choices":[{"message":{"content":"X"}}]}`)
	p := newProxy(fp.srv.URL, "gsk_test", config.TransportConfig{})

	_, err := p.Transform(context.Background(), Request{Mode: ModeSummarize, Text: "t", Style: "anything"})
	assert.NoError(t, err)
}

func TestTransformMissingKeyIsConfigurationError(t *testing.T) {
	fp := newFakeProvider(t, http.StatusOK, `{"choices":[{"message":{"content":"X"}}]}`)
	p := newProxy(fp.srv.URL, "", config.TransportConfig{})

	for _, req := range []Request{
		{Mode: ModeSummarize, Text: "a"},
		{Mode: ModeRewrite, Text: "a", Style: StyleCasual},
		{Mode: ModeChat, Text: "a"},
	} {
		_, err := p.Transform(context.Background(), req)
		apiErr := requireKind(t, err, apperrors.KindConfiguration)
		assert.Equal(t, MissingKeyMessage, apiErr.Message)
	}
	assert.EqualValues(t, 0, fp.calls.Load())
}

func TestTransformValidationPrecedesConfiguration(t *testing.T) {
	p := newProxy("http://127.0.0.1:1", "", config.TransportConfig{})

	_, err := p.Transform(context.Background(), Request{Mode: ModeSummarize})
	requireKind(t, err, apperrors.KindValidation)
}

func TestTransformMissingChoicesReturnsSentinel(t *testing.T) {
	for _, body := range []string{`{"id":"x"}`, `{"choices":[]}`, `not json`} {
		fp := newFakeProvider(t, http.StatusOK, body)
		p := newProxy(fp.srv.URL, "gsk_test", config.TransportConfig{})

		out, err := p.Transform(context.Background(), Request{Mode: ModeSummarize, Text: "a"})
		require.NoError(t, err, "body %s", body)
		assert.Equal(t, "No response generated.", out)
	}
}

func TestTransformUpstreamErrorCarriesStatusAndBody(t *testing.T) {
	fp := newFakeProvider(t, http.StatusServiceUnavailable, `{"error":{"message":"over capacity"}}`)
	p := newProxy(fp.srv.URL, "gsk_test", config.TransportConfig{})

	_, err := p.Transform(context.Background(), Request{Mode: ModeSummarize, Text: "a"})
	apiErr := requireKind(t, err, apperrors.KindUpstream)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.UpstreamStatus)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.HTTPStatus)
	assert.Equal(t, "over capacity", apiErr.Message)
	assert.JSONEq(t, `{"error":{"message":"over capacity"}}`, string(apiErr.UpstreamBody))
	assert.EqualValues(t, 1, fp.calls.Load())
}

func TestTransformConnectionRefusedIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	p := newProxy(endpoint, "gsk_test", config.TransportConfig{})
	_, err := p.Transform(context.Background(), Request{Mode: ModeRewrite, Text: "a", Style: StyleCreative})
	apiErr := requireKind(t, err, apperrors.KindNetwork)
	assert.Equal(t, http.StatusBadGateway, apiErr.HTTPStatus)
	assert.NotNil(t, apiErr.Cause)
}

func TestTransformTimeoutIsNetworkError(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	p := newProxy(srv.URL, "gsk_test", config.TransportConfig{RequestTimeout: 50 * time.Millisecond})
	_, err := p.Transform(context.Background(), Request{Mode: ModeSummarize, Text: "a"})
	apiErr := requireKind(t, err, apperrors.KindNetwork)
	assert.Equal(t, http.StatusGatewayTimeout, apiErr.HTTPStatus)
}

func TestTransformContextCancelIsNetworkError(t *testing.T) {
	fp := newFakeProvider(t, http.StatusOK, `{}`)
	p := newProxy(fp.srv.URL, "gsk_test", config.TransportConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Transform(ctx, Request{Mode: ModeSummarize, Text: "a"})
	requireKind(t, err, apperrors.KindNetwork)
}

func TestPrompt(t *testing.T) {
	assert.Equal(t, "Summarize this: abc", Prompt(Request{Mode: ModeSummarize, Text: "abc"}))
	assert.Equal(t, "Rewrite this in casual style: abc", Prompt(Request{Mode: ModeRewrite, Text: "abc", Style: StyleCasual}))
	assert.Equal(t, "abc", Prompt(Request{Mode: ModeChat, Text: "abc"}))
}

func TestTemperature(t *testing.T) {
	assert.Equal(t, 0.5, Temperature(ModeSummarize, 1.3))
	assert.Equal(t, 0.7, Temperature(ModeRewrite, 1.3))
	assert.Equal(t, 1.3, Temperature(ModeChat, 1.3))
}
