package handler

import (
	"net/http"

	"github.com/msomdec/resume-api/internal/domain"
)

// RequestContext carries per-request state from interceptors to the handler.
type RequestContext struct {
	// User is set by the Authenticate interceptor.
	User *domain.User
	// Body holds the decoded and validated request body, if any.
	Body any
}

// Interceptor runs before a handler. A nil return continues the pipeline;
// an error ends it and is written as the response.
type Interceptor func(r *http.Request, rc *RequestContext) error

// HandlerFunc handles a request after all interceptors have passed.
// A returned error is translated into the response by writeErrorResponse.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, rc *RequestContext) error

// Pipeline composes interceptors in order in front of h.
func Pipeline(h HandlerFunc, interceptors ...Interceptor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc := &RequestContext{}
		for _, intercept := range interceptors {
			if err := intercept(r, rc); err != nil {
				writeErrorResponse(w, r, err)
				return
			}
		}

		if err := h(w, r, rc); err != nil {
			writeErrorResponse(w, r, err)
		}
	})
}
