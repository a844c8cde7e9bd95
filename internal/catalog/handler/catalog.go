package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"handyhub/internal/catalog/service"
	httputil "handyhub/pkg/http"
	"handyhub/pkg/logger"
)

type CatalogHandler struct {
	service service.CatalogService
	log     *logger.Logger
}

func NewCatalogHandler(service service.CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

func (h *CatalogHandler) SearchProviders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	providers, err := h.service.SearchProviders(r.Context(), httputil.QueryParam(r, "q"), httputil.QueryParam(r, "location"))
	if err != nil {
		h.writeError(w, "SearchProviders", err)
		return
	}

	if err := httputil.WriteList(w, providers, len(providers)); err != nil {
		h.log.Error("failed to write list response", "handler", "SearchProviders", "operation", "WriteList", "error", err)
	}
}

func (h *CatalogHandler) GetProvider(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	provider, err := h.service.GetProvider(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetProvider", err)
		return
	}

	if err := httputil.WriteSuccess(w, provider); err != nil {
		h.log.Error("failed to write success response", "handler", "GetProvider", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CatalogHandler) GetBusiness(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	business, err := h.service.GetBusiness(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetBusiness", err)
		return
	}

	if err := httputil.WriteSuccess(w, business); err != nil {
		h.log.Error("failed to write success response", "handler", "GetBusiness", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CatalogHandler) SearchJobListings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	listings, err := h.service.SearchJobListings(r.Context(), httputil.QueryParam(r, "q"))
	if err != nil {
		h.writeError(w, "SearchJobListings", err)
		return
	}

	if err := httputil.WriteList(w, listings, len(listings)); err != nil {
		h.log.Error("failed to write list response", "handler", "SearchJobListings", "operation", "WriteList", "error", err)
	}
}

func (h *CatalogHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/providers", h.SearchProviders)
	router.GET("/api/v1/providers/:id", h.GetProvider)
	router.GET("/api/v1/businesses/:id", h.GetBusiness)
	router.GET("/api/v1/job-listings", h.SearchJobListings)
}
