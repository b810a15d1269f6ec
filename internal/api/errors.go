package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nerrad567/estate-core/internal/openapi"
	"github.com/nerrad567/estate-core/internal/property"
)

// Error represents a structured error response.
type Error struct {
	Status  int               `json:"status"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Common error codes.
const (
	ErrCodeBadRequest  = "bad_request"
	ErrCodeNotFound    = "not_found"
	ErrCodeInternal    = "internal_error"
	ErrCodeValidation  = "validation_error"
	ErrCodeTooLarge    = "payload_too_large"
	ErrCodeUnavailable = "unavailable"

	ErrCodeMethodNotAllowed = "method_not_allowed"
)

// writeJSON writes a JSON response with the given status code and payload.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // Best-effort write to response; connection may be closed
		json.NewEncoder(w).Encode(v)
	}
}

// writeError writes a structured error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, Error{
		Status:  status,
		Code:    code,
		Message: message,
	})
}

// writeBadRequest writes a 400 error response.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, ErrCodeBadRequest, message)
}

// writeNotFound writes a 404 error response.
func writeNotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, ErrCodeNotFound, message)
}

// writeInternalError writes a 500 error response.
func writeInternalError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, ErrCodeInternal, message)
}

// writeValidationError writes a 400 response listing the offending fields.
func writeValidationError(w http.ResponseWriter, message string, details map[string]string) {
	writeJSON(w, http.StatusBadRequest, Error{
		Status:  http.StatusBadRequest,
		Code:    ErrCodeValidation,
		Message: message,
		Details: details,
	})
}

// writeInputError maps request body and validation failures to a response.
// It reports false when err is not an input error.
func writeInputError(w http.ResponseWriter, err error) bool {
	var bodyErr *openapi.BodyError
	var fieldErr *property.ValidationError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, ErrCodeTooLarge, "request body too large")
	case errors.As(err, &bodyErr):
		writeValidationError(w, "request body does not match schema", bodyErr.Problems)
	case errors.As(err, &fieldErr):
		writeValidationError(w, "invalid property", fieldErr.Fields)
	case errors.Is(err, errBadJSON):
		writeBadRequest(w, err.Error())
	default:
		return false
	}
	return true
}
