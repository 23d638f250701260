package app

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/timeleft/timeleft/internal/config"
)

// statusRecorder captures the status code written by downstream handlers.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Flush keeps streaming responses working through the wrapper.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// CORS for the widget host. MCP session headers must be allowed and
	// exposed so stateful clients can negotiate sessions through browsers.
	// The header takes a single origin or "*", so a multi-origin allow-list
	// echoes the matching request origin.
	wildcard := len(cfg.Server.AllowedOrigins) == 0
	allowedOrigins := make(map[string]bool, len(cfg.Server.AllowedOrigins))
	for _, origin := range cfg.Server.AllowedOrigins {
		if origin == "*" {
			wildcard = true
		}
		allowedOrigins[origin] = true
	}
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if wildcard {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else if origin := req.Header.Get("Origin"); allowedOrigins[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Mcp-Session-Id, Mcp-Protocol-Version")
			w.Header().Set("Access-Control-Expose-Headers", "Mcp-Session-Id")
			if req.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, req)
		})
	})

	// Request logging and metrics
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			requestId := uuid.NewString()
			start := time.Now()
			log.Debugf("[%s] %s %s", requestId, req.Method, req.URL.Path)

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, req)

			duration := time.Since(start)
			log.Debugf("[%s] %s %s -> %d (%s)", requestId, req.Method, req.URL.Path, recorder.status, duration)
			deps.Metrics.RecordHTTPRequest(req.Method, routeTemplate(req), recorder.status, duration)
		})
	})
}

// routeTemplate returns the mux route pattern to keep metric cardinality low,
// falling back to the raw path for unmatched requests.
func routeTemplate(req *http.Request) string {
	if route := mux.CurrentRoute(req); route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			return template
		}
	}
	return req.URL.Path
}
