package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"handyhub/internal/jobposts/service"
	httputil "handyhub/pkg/http"
	"handyhub/pkg/logger"
	"handyhub/pkg/model"
)

type JobPostHandler struct {
	service service.JobPostService
	log     *logger.Logger
}

func NewJobPostHandler(service service.JobPostService, log *logger.Logger) *JobPostHandler {
	return &JobPostHandler{
		service: service,
		log:     log,
	}
}

func (h *JobPostHandler) Create(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input model.JobPostInput
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	post, err := h.service.Create(r.Context(), ps.ByName("id"), input)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, post); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *JobPostHandler) ListByConsumer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	posts, err := h.service.ListByConsumer(r.Context(), ps.ByName("id"), httputil.QueryParam(r, "status"))
	if err != nil {
		h.writeError(w, "ListByConsumer", err)
		return
	}

	if err := httputil.WriteList(w, posts, len(posts)); err != nil {
		h.log.Error("failed to write list response", "handler", "ListByConsumer", "operation", "WriteList", "error", err)
	}
}

func (h *JobPostHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	post, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, post); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *JobPostHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var change model.StatusChange
	if err := httputil.DecodeJSON(r, &change); err != nil {
		h.writeError(w, "UpdateStatus", err)
		return
	}

	post, err := h.service.UpdateStatus(r.Context(), ps.ByName("id"), change)
	if err != nil {
		h.writeError(w, "UpdateStatus", err)
		return
	}

	if err := httputil.WriteSuccess(w, post); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateStatus", "operation", "WriteSuccess", "error", err)
	}
}

func (h *JobPostHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *JobPostHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/consumers/:id/job-posts", h.ListByConsumer)
	router.POST("/api/v1/consumers/:id/job-posts", h.Create)
	router.GET("/api/v1/job-posts/:id", h.GetByID)
	router.PATCH("/api/v1/job-posts/:id/status", h.UpdateStatus)
}
