package server

import (
	th "textproxy/internal/handlers/transform"
	"github.com/gin-gonic/gin"
)

// RegisterTransformRoutes mounts the transformation endpoints on r.
func RegisterTransformRoutes(r gin.IRoutes, h *th.Handler) {
	r.POST("/summarize/", h.Summarize)
	r.POST("/rewrite/", h.Rewrite)
	r.POST("/chat/", h.Chat)
}
