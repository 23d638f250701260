package widget

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/timeleft/timeleft/internal/rest"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// ServeWidget serves the widget document directly over HTTP for local
// development. Hosts normally fetch it through the MCP resource instead.
func (h *Handler) ServeWidget(w http.ResponseWriter, r *http.Request) {
	html, err := h.store.HTML()
	if err != nil {
		log.Errorf("failed to load widget HTML: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Widget unavailable",
			Details: err.Error(),
		}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Errorf("failed to write widget HTML: %v", err)
	}
}
