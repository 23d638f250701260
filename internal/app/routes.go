package app

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/timeleft/timeleft/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// MCP protocol endpoint (streamable HTTP)
	r.PathPrefix("/mcp").Handler(deps.MCPServer.HTTPHandler())

	// Widget preview for local development; hosts read it as an MCP resource
	r.HandleFunc("/widget", deps.WidgetHandler.ServeWidget).Methods("GET")

	// Operational endpoints
	r.HandleFunc("/healthz", healthHandler).Methods("GET")
	if handler := deps.Metrics.Handler(); handler != nil {
		r.Handle("/metrics", handler).Methods("GET")
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
