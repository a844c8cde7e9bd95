package health

import (
	"net/http"
	"sync/atomic"

	"github.com/julienschmidt/httprouter"

	httputil "handyhub/pkg/http"
	"handyhub/pkg/logger"
)

type Response struct {
	Status string `json:"status"`
	Events string `json:"events,omitempty"`
}

// Handler serves liveness and readiness. Readiness drops once Drain is
// called so load balancers stop routing before the server shuts down.
type Handler struct {
	eventsMode string
	draining   atomic.Bool
	log        *logger.Logger
}

// NewHandler reports eventsMode ("kafka" or "disabled") on /ready.
func NewHandler(eventsMode string, log *logger.Logger) *Handler {
	return &Handler{
		eventsMode: eventsMode,
		log:        log,
	}
}

func (h *Handler) Drain() {
	h.draining.Store(true)
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, Response{Status: "ok"}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

func (h *Handler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if h.draining.Load() {
		h.log.Warn("Readiness check failed: draining", "path", r.URL.Path)
		if err := httputil.WriteJSON(w, http.StatusServiceUnavailable, Response{Status: "draining"}); err != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, Response{Status: "ready", Events: h.eventsMode}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
