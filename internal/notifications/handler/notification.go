package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"handyhub/internal/notifications/service"
	httputil "handyhub/pkg/http"
	"handyhub/pkg/logger"
)

type NotificationHandler struct {
	service service.NotificationService
	log     *logger.Logger
}

func NewNotificationHandler(service service.NotificationService, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log,
	}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	feed, err := h.service.List(r.Context())
	h.write(w, "List", feed, err)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	feed, err := h.service.MarkRead(r.Context(), ps.ByName("id"))
	h.write(w, "MarkRead", feed, err)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	feed, err := h.service.MarkAllRead(r.Context())
	h.write(w, "MarkAllRead", feed, err)
}

func (h *NotificationHandler) write(w http.ResponseWriter, handler string, data any, err error) {
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
		}
		return
	}
	if err := httputil.WriteSuccess(w, data); err != nil {
		h.log.Error("failed to write success response", "handler", handler, "operation", "WriteSuccess", "error", err)
	}
}

func (h *NotificationHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/notifications", h.List)
	router.POST("/api/v1/notifications/id/:id/read", h.MarkRead)
	router.POST("/api/v1/notifications/read-all", h.MarkAllRead)
}
