package transform

import (
	"errors"
	"fmt"
	"strings"

	apperrors "textproxy/internal/errors"
	tx "textproxy/internal/transform"
	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("invalid JSON document")

// decodeRequest turns a request body into a transform request. An empty body
// is treated as an empty object. A body that is not JSON returns err; a body
// that is JSON but has the wrong shape returns a validation error.
func decodeRequest(raw []byte, mode tx.Mode) (tx.Request, *apperrors.APIError, error) {
	req := tx.Request{Mode: mode}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return req, nil, nil
	}
	if !gjson.ValidBytes(raw) {
		return req, nil, errInvalidJSON
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return req, apperrors.Validation(map[string][]string{
			"non_field_errors": {fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", typeName(doc))},
		}), nil
	}

	fields := map[string][]string{}
	if v, msg := stringField(doc, "text"); msg != "" {
		fields["text"] = []string{msg}
	} else {
		req.Text = v
	}
	if mode == tx.ModeRewrite {
		if v, msg := stringField(doc, "style"); msg != "" {
			fields["style"] = []string{msg}
		} else {
			req.Style = tx.Style(v)
		}
	}
	if len(fields) > 0 {
		return req, apperrors.Validation(fields), nil
	}
	return req, nil, nil
}

// stringField reads name from doc. Numbers are accepted in their literal form;
// null, booleans, arrays and objects yield a field message.
func stringField(doc gjson.Result, name string) (string, string) {
	v := doc.Get(name)
	if !v.Exists() {
		return "", ""
	}
	switch v.Type {
	case gjson.String:
		return v.Str, ""
	case gjson.Number:
		return v.Raw, ""
	case gjson.Null:
		return "", "This field may not be null."
	default:
		return "", "Not a valid string."
	}
}

func typeName(v gjson.Result) string {
	switch {
	case v.IsArray():
		return "list"
	case v.Type == gjson.String:
		return "str"
	case v.Type == gjson.Number:
		return "int"
	case v.Type == gjson.True, v.Type == gjson.False:
		return "bool"
	default:
		return "NoneType"
	}
}
