// Package upstream holds helpers shared by provider clients.
package upstream

import (
	"context"
	"strings"
)

type ctxKey int

const (
	ctxRequestID ctxKey = iota
)

// WithRequestID 将入站请求 ID 附着到 context 中，供上游请求透传。
func WithRequestID(ctx context.Context, id string) context.Context {
	id = strings.TrimSpace(id)
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxRequestID, id)
}

// RequestID 从 context 中读取请求 ID。
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxRequestID).(string); ok {
		return v
	}
	return ""
}
