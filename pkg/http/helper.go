package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	apperrors "handyhub/pkg/errors"
)

// DecodeJSON reads a single JSON object from the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperrors.TooLarge("Request body too large")
		}
		return apperrors.InvalidInput("Invalid request body")
	}
	return nil
}

// QueryParam returns the trimmed value of a query parameter.
func QueryParam(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}
