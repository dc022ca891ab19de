package groq

import (
	"fmt"
	"io"
	"net/http"

	"textproxy/internal/constants"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const contentPath = "choices.0.message.content"

// BuildPayload encodes {model, messages:[{role:"user", content}], temperature}.
func BuildPayload(model, content string, temperature float64) ([]byte, error) {
	body := []byte(`{}`)
	var err error
	if body, err = sjson.SetBytes(body, "model", model); err != nil {
		return nil, fmt.Errorf("set model: %w", err)
	}
	if body, err = sjson.SetBytes(body, "messages.0.role", "user"); err != nil {
		return nil, fmt.Errorf("set role: %w", err)
	}
	if body, err = sjson.SetBytes(body, "messages.0.content", content); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}
	if body, err = sjson.SetBytes(body, "temperature", temperature); err != nil {
		return nil, fmt.Errorf("set temperature: %w", err)
	}
	return body, nil
}

// ExtractContent returns choices[0].message.content. When the body is not
// JSON or the field is absent or not a string, it returns the sentinel and false.
func ExtractContent(body []byte) (string, bool) {
	if !gjson.ValidBytes(body) {
		return constants.NoResponseSentinel, false
	}
	res := gjson.GetBytes(body, contentPath)
	if res.Type != gjson.String {
		return constants.NoResponseSentinel, false
	}
	return res.String(), true
}

// ReadBody reads and closes resp.Body, capped at MaxUpstreamBodyBytes.
func ReadBody(resp *http.Response) ([]byte, error) {
	if resp == nil || resp.Body == nil {
		return nil, nil
	}
	defer resp.Body.Close()
	return io.ReadAll(io.LimitReader(resp.Body, constants.MaxUpstreamBodyBytes))
}
