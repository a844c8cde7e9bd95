package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"handyhub/internal/messaging/service"
	httputil "handyhub/pkg/http"
	"handyhub/pkg/logger"
	"handyhub/pkg/model"
)

type MessagingHandler struct {
	service service.MessagingService
	log     *logger.Logger
}

func NewMessagingHandler(service service.MessagingService, log *logger.Logger) *MessagingHandler {
	return &MessagingHandler{
		service: service,
		log:     log,
	}
}

func (h *MessagingHandler) SearchThreads(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	threads, err := h.service.SearchThreads(r.Context(), httputil.QueryParam(r, "q"))
	if err != nil {
		h.writeError(w, "SearchThreads", err)
		return
	}

	if err := httputil.WriteList(w, threads, len(threads)); err != nil {
		h.log.Error("failed to write list response", "handler", "SearchThreads", "operation", "WriteList", "error", err)
	}
}

func (h *MessagingHandler) StartThread(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.StartThreadInput
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "StartThread", err)
		return
	}

	thread, created, err := h.service.StartThread(r.Context(), input)
	if err != nil {
		h.writeError(w, "StartThread", err)
		return
	}

	if !created {
		if err := httputil.WriteSuccess(w, thread); err != nil {
			h.log.Error("failed to write success response", "handler", "StartThread", "operation", "WriteSuccess", "error", err)
		}
		return
	}
	if err := httputil.WriteCreated(w, thread); err != nil {
		h.log.Error("failed to write created response", "handler", "StartThread", "operation", "WriteCreated", "error", err)
	}
}

func (h *MessagingHandler) GetMessages(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	messages, err := h.service.GetMessages(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetMessages", err)
		return
	}

	if err := httputil.WriteList(w, messages, len(messages)); err != nil {
		h.log.Error("failed to write list response", "handler", "GetMessages", "operation", "WriteList", "error", err)
	}
}

func (h *MessagingHandler) SendMessage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input model.MessageInput
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "SendMessage", err)
		return
	}

	msg, err := h.service.SendMessage(r.Context(), ps.ByName("id"), input)
	if err != nil {
		h.writeError(w, "SendMessage", err)
		return
	}

	if err := httputil.WriteCreated(w, msg); err != nil {
		h.log.Error("failed to write created response", "handler", "SendMessage", "operation", "WriteCreated", "error", err)
	}
}

func (h *MessagingHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *MessagingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/threads", h.SearchThreads)
	router.POST("/api/v1/threads", h.StartThread)
	router.GET("/api/v1/threads/:id/messages", h.GetMessages)
	router.POST("/api/v1/threads/:id/messages", h.SendMessage)
}
