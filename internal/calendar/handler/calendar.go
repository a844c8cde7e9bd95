package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"handyhub/internal/calendar/service"
	httputil "handyhub/pkg/http"
	"handyhub/pkg/logger"
)

type CalendarHandler struct {
	service service.CalendarService
	log     *logger.Logger
}

func NewCalendarHandler(service service.CalendarService, log *logger.Logger) *CalendarHandler {
	return &CalendarHandler{
		service: service,
		log:     log,
	}
}

func (h *CalendarHandler) GetScreen(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	screen, err := h.service.GetScreen(r.Context(), service.ScreenQuery{
		Date:     httputil.QueryParam(r, "date"),
		Mode:     httputil.QueryParam(r, "mode"),
		Selected: httputil.QueryParam(r, "selected"),
	})
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetScreen", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, screen); err != nil {
		h.log.Error("failed to write success response", "handler", "GetScreen", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CalendarHandler) GetDay(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	detail, err := h.service.GetDay(r.Context(), ps.ByName("date"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetDay", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, detail); err != nil {
		h.log.Error("failed to write success response", "handler", "GetDay", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CalendarHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/calendar", h.GetScreen)
	router.GET("/api/v1/calendar/days/:date", h.GetDay)
}
