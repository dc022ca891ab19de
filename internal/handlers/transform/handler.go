// Package transform serves the text transformation endpoints.
package transform

import (
	"context"
	"net/http"

	hcommon "textproxy/internal/handlers/common"
	"textproxy/internal/logging"
	tx "textproxy/internal/transform"
	"textproxy/internal/upstream"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ContextKeyMode is the gin context key holding the transformation mode.
const ContextKeyMode = "mode"

const (
	summaryFailure = "Failed to get summary"
	rewriteFailure = "Failed to rewrite text"
	chatFailure    = "Failed to get response"
)

// Transformer is implemented by *transform.Proxy.
type Transformer interface {
	Transform(ctx context.Context, req tx.Request) (string, error)
}

var _ Transformer = (*tx.Proxy)(nil)

// Handler exposes one endpoint per transformation mode.
type Handler struct {
	proxy Transformer
}

// New constructs a Handler backed by proxy.
func New(proxy Transformer) *Handler {
	return &Handler{proxy: proxy}
}

// Summarize handles POST /summarize/.
func (h *Handler) Summarize(c *gin.Context) {
	h.serve(c, tx.ModeSummarize, "summary", summaryFailure)
}

// Rewrite handles POST /rewrite/.
func (h *Handler) Rewrite(c *gin.Context) {
	h.serve(c, tx.ModeRewrite, "rewritten_text", rewriteFailure)
}

// Chat handles POST /chat/.
func (h *Handler) Chat(c *gin.Context) {
	h.serve(c, tx.ModeChat, "response", chatFailure)
}

func (h *Handler) serve(c *gin.Context, mode tx.Mode, resultKey, failure string) {
	c.Set(ContextKeyMode, string(mode))

	raw, err := c.GetRawData()
	if err != nil {
		hcommon.AbortWithParseError(c, err)
		return
	}
	req, fieldErrs, err := decodeRequest(raw, mode)
	if err != nil {
		hcommon.AbortWithParseError(c, err)
		return
	}
	if fieldErrs != nil {
		hcommon.AbortWithAPIError(c, fieldErrs, failure)
		return
	}

	ctx := upstream.WithRequestID(c.Request.Context(), c.GetString("request_id"))
	text, err := h.proxy.Transform(ctx, req)
	if err != nil {
		logging.WithReq(c, log.Fields{"mode": mode}).WithError(err).Warn("transform failed")
		hcommon.AbortWithError(c, err, failure)
		return
	}
	c.JSON(http.StatusOK, gin.H{resultKey: text})
}
