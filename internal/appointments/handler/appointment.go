package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"handyhub/internal/appointments/service"
	httputil "handyhub/pkg/http"
	"handyhub/pkg/logger"
	"handyhub/pkg/model"
)

type AppointmentHandler struct {
	service service.AppointmentService
	log     *logger.Logger
}

func NewAppointmentHandler(service service.AppointmentService, log *logger.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		service: service,
		log:     log,
	}
}

func (h *AppointmentHandler) Request(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input model.AppointmentInput
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Request", err)
		return
	}

	appt, err := h.service.Request(r.Context(), ps.ByName("id"), input)
	if err != nil {
		h.writeError(w, "Request", err)
		return
	}

	if err := httputil.WriteCreated(w, appt); err != nil {
		h.log.Error("failed to write created response", "handler", "Request", "operation", "WriteCreated", "error", err)
	}
}

func (h *AppointmentHandler) ListForConsumer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	board, err := h.service.ListForConsumer(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "ListForConsumer", err)
		return
	}

	if err := httputil.WriteSuccess(w, board); err != nil {
		h.log.Error("failed to write success response", "handler", "ListForConsumer", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AppointmentHandler) ListForProvider(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	appts, err := h.service.ListForProvider(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "ListForProvider", err)
		return
	}

	if err := httputil.WriteList(w, appts, len(appts)); err != nil {
		h.log.Error("failed to write list response", "handler", "ListForProvider", "operation", "WriteList", "error", err)
	}
}

func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	appt, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, appt); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var change model.StatusChange
	if err := httputil.DecodeJSON(r, &change); err != nil {
		h.writeError(w, "UpdateStatus", err)
		return
	}

	appt, err := h.service.UpdateStatus(r.Context(), ps.ByName("id"), change)
	if err != nil {
		h.writeError(w, "UpdateStatus", err)
		return
	}

	if err := httputil.WriteSuccess(w, appt); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateStatus", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AppointmentHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *AppointmentHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/consumers/:id/appointments", h.ListForConsumer)
	router.POST("/api/v1/consumers/:id/appointments", h.Request)
	router.GET("/api/v1/providers/:id/appointments", h.ListForProvider)
	router.GET("/api/v1/appointments/:id", h.GetByID)
	router.PATCH("/api/v1/appointments/:id/status", h.UpdateStatus)
}
