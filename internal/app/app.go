package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/timeleft/timeleft/internal/config"
)

// Application wires configuration, dependencies, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	deps   *Dependencies
	router *mux.Router
	srv    *http.Server
}

// NewApplication constructs the full application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	// Build dependencies (services, handlers...)
	deps, err := BuildDependencies(cfg)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Middleware chain
	SetupMiddleware(r, deps, cfg)

	// Routes
	RegisterRoutes(r, deps, cfg)

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Server.Addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, deps: deps, router: r, srv: srv}, nil
}

// Run starts the configured transport and blocks.
func (a *Application) Run() error {
	if a.cfg.Server.Transport == "stdio" {
		log.Info("Serving MCP over stdio")
		return a.deps.MCPServer.RunStdio(context.Background())
	}

	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}
