package main

import (
	"net"
	"net/http"

	"textproxy/internal/config"
	"textproxy/internal/constants"
	srv "textproxy/internal/server"
	tx "textproxy/internal/transform"
	"textproxy/internal/upstream/groq"
	log "github.com/sirupsen/logrus"
)

// newHTTPServer wires the provider client, proxy and gin engine for cfg.
func newHTTPServer(cfg *config.Config) *http.Server {
	if !cfg.Provider.HasAPIKey() {
		log.Warn("GROQ_API_KEY is not set; transform requests will fail with a configuration error")
	}
	proxy := tx.New(cfg.Provider, groq.New(cfg.Transport))
	engine := srv.BuildEngine(cfg, srv.Dependencies{Transformer: proxy})
	return &http.Server{
		Addr:              net.JoinHostPort("", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: constants.ServerReadHeaderTimeout,
	}
}
