package middleware

import (
	"net/http"
	"strings"

	apperrors "handyhub/pkg/errors"
	httputil "handyhub/pkg/http"
	"handyhub/pkg/logger"
)

// ContentTypeValidation rejects bodies on write methods that are not JSON.
func ContentTypeValidation(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if requiresContentType(r) {
				contentType := extractContentType(r.Header.Get("Content-Type"))

				if contentType != "application/json" {
					log.Warn("Invalid Content-Type header",
						"request_id", RequestIDFromContext(r.Context()),
						"content_type", contentType,
						"path", r.URL.Path,
						"method", r.Method,
					)
					reject(w, log, apperrors.UnsupportedMediaType("Content-Type must be application/json"))
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Bodyless writes such as POST /notifications/read-all are allowed through.
func requiresContentType(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return r.ContentLength != 0
	default:
		return false
	}
}

func extractContentType(header string) string {
	if header == "" {
		return ""
	}

	mediaType, _, _ := strings.Cut(header, ";")
	return strings.ToLower(strings.TrimSpace(mediaType))
}

func reject(w http.ResponseWriter, log *logger.Logger, err *apperrors.AppError) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		log.Error("failed to write error response", "operation", "WriteError", "code", err.Code, "error", writeErr)
	}
}
