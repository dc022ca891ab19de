package server

import (
	"textproxy/internal/config"
	mw "textproxy/internal/middleware"
	"github.com/gin-gonic/gin"
)

// applyStandardEngineSettings applies common Gin settings and middlewares.
func applyStandardEngineSettings(engine *gin.Engine, cfg *config.Config) {
	if !cfg.Security.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	_ = engine.SetTrustedProxies([]string{})

	engine.Use(mw.RequestID(), mw.Recovery(), mw.Metrics(), mw.CORS(), mw.RequestLogger())
}
