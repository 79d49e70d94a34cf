package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/resume-api/internal/domain"
)

// apiError is an error that carries its own HTTP status and client message.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return e.Message
}

func newAPIError(status int, message string) *apiError {
	return &apiError{Status: status, Message: message}
}

// writeErrorResponse translates err into an enveloped error response.
// Anything that is not a known client error is logged and reported as 500.
func writeErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *apiError
	switch {
	case errors.As(err, &apiErr):
		respond(w, apiErr.Status, apiErr.Message, nil)
	case errors.Is(err, domain.ErrInvalidInput):
		respond(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, domain.ErrDuplicateEmail):
		respond(w, http.StatusConflict, msgEmailTaken, nil)
	case errors.Is(err, domain.ErrUnauthorized):
		respond(w, http.StatusUnauthorized, msgInvalidAuth, nil)
	case errors.Is(err, domain.ErrNotFound):
		respond(w, http.StatusNotFound, msgNotFound, nil)
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		respond(w, http.StatusInternalServerError, msgInternal, nil)
	}
}
