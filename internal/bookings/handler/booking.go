package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"handyhub/internal/bookings/service"
	httputil "handyhub/pkg/http"
	"handyhub/pkg/logger"
	"handyhub/pkg/model"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.BookingInput
	if err := httputil.DecodeJSON(r, &input); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	booking, err := h.service.Create(r.Context(), input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteList(w, bookings, len(bookings)); err != nil {
		h.log.Error("failed to write list response", "handler", "GetAll", "operation", "WriteList", "error", err)
	}
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var change model.StatusChange
	if err := httputil.DecodeJSON(r, &change); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdateStatus", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), ps.ByName("id"), change)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdateStatus", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateStatus", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/bookings", h.GetAll)
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings/:id", h.GetByID)
	router.PATCH("/api/v1/bookings/:id/status", h.UpdateStatus)
}
