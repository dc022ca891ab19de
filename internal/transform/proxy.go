package transform

import (
	"context"
	"net/http"

	"textproxy/internal/config"
	apperrors "textproxy/internal/errors"
	mw "textproxy/internal/middleware"
	"textproxy/internal/upstream/groq"
	log "github.com/sirupsen/logrus"
)

// MissingKeyMessage is reported when no provider API key is configured.
const MissingKeyMessage = "Missing API Key. Please check your .env file."

// completionClient is the subset of the provider client used by Proxy.
type completionClient interface {
	ChatCompletion(ctx context.Context, p config.ProviderConfig, payload []byte) (*http.Response, error)
}

var _ completionClient = (*groq.Client)(nil)

// Proxy is the text transformation proxy. The provider configuration is
// copied at construction and never modified, so a Proxy may be shared
// across goroutines.
type Proxy struct {
	provider config.ProviderConfig
	client   completionClient
}

// New returns a Proxy that sends requests through client using provider.
func New(provider config.ProviderConfig, client completionClient) *Proxy {
	return &Proxy{provider: provider, client: client}
}

// Transform runs one request to completion. On failure the returned error is
// an *errors.APIError whose Kind is validation, configuration, upstream or
// network. A successful response without content yields the sentinel text.
func (p *Proxy) Transform(ctx context.Context, req Request) (string, error) {
	if err := Validate(req); err != nil {
		p.record(req.Mode, err)
		return "", err
	}
	text, err := p.forward(ctx, req)
	p.record(req.Mode, err)
	return text, err
}

func (p *Proxy) forward(ctx context.Context, req Request) (string, error) {
	if !p.provider.HasAPIKey() {
		return "", apperrors.Configuration(MissingKeyMessage)
	}

	payload, err := groq.BuildPayload(p.provider.Model, Prompt(req), Temperature(req.Mode, p.provider.Temperature))
	if err != nil {
		return "", apperrors.New(apperrors.KindInternal, http.StatusInternalServerError, "payload_error", "failed to encode request").WithCause(err)
	}

	resp, err := p.client.ChatCompletion(ctx, p.provider, payload)
	if err != nil {
		return "", apperrors.MapNetworkError(err)
	}
	body, readErr := groq.ReadBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apperrors.MapHTTPError(resp.StatusCode, body)
	}
	if readErr != nil {
		return "", apperrors.MapNetworkError(readErr)
	}

	content, ok := groq.ExtractContent(body)
	if !ok {
		mw.RecordSentinel(string(req.Mode))
		log.WithFields(log.Fields{
			"mode":   req.Mode,
			"model":  p.provider.Model,
			"status": resp.StatusCode,
		}).Warn("upstream response missing choices[0].message.content; returning sentinel")
	}
	return content, nil
}

func (p *Proxy) record(mode Mode, err error) {
	outcome := "ok"
	if err != nil {
		outcome = string(apperrors.KindOf(err))
	}
	mw.RecordTransform(string(mode), outcome)
}
