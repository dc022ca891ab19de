package server

import (
	"net/http"

	"textproxy/internal/config"
	th "textproxy/internal/handlers/transform"
	mw "textproxy/internal/middleware"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Dependencies encapsulates runtime services required to build the HTTP engine.
type Dependencies struct {
	Transformer th.Transformer
}

// BuildEngine constructs the gin engine serving the transform API under the
// configured base path, plus /healthz and /metrics at the root.
func BuildEngine(cfg *config.Config, deps Dependencies) *gin.Engine {
	engine := gin.New()
	applyStandardEngineSettings(engine, cfg)

	if cfg.Security.Debug {
		registerPprof(engine)
	}

	engine.GET("/healthz", func(c *gin.Context) {
		setNoCacheHeaders(c)
		c.String(http.StatusOK, "ok")
	})
	engine.GET("/metrics", mw.MetricsHandler)

	root := engine.Group(cfg.Server.BasePath)
	RegisterTransformRoutes(root, th.New(deps.Transformer))

	log.WithFields(log.Fields{
		"summarize": joinBasePath(cfg.Server.BasePath, "/summarize/"),
		"rewrite":   joinBasePath(cfg.Server.BasePath, "/rewrite/"),
		"chat":      joinBasePath(cfg.Server.BasePath, "/chat/"),
	}).Info("transform routes registered")
	return engine
}
