package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/resume-api/internal/domain"
	"github.com/msomdec/resume-api/internal/service"
)

// Authenticate is an interceptor that protects routes requiring a signed-in user.
// It reads the bearer token from the Authorization header, validates it,
// loads the user from the DB and stores it on the RequestContext.
// Expired, forged and orphaned tokens all produce the same 401 message.
func Authenticate(auth *service.AuthService) Interceptor {
	return func(r *http.Request, rc *RequestContext) error {
		header := r.Header.Get("Authorization")
		if header == "" {
			return newAPIError(http.StatusUnauthorized, msgAuthRequired)
		}

		scheme, token, _ := strings.Cut(header, " ")
		if !strings.EqualFold(scheme, "Bearer") {
			return newAPIError(http.StatusUnauthorized, msgUnsupportedAuth)
		}

		user, err := auth.Authenticate(r.Context(), strings.TrimSpace(token))
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return newAPIError(http.StatusUnauthorized, msgInvalidAuth)
			}
			return err
		}

		rc.User = user
		return nil
	}
}

// SecurityHeaders sets conservative response headers for a JSON API.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		h.Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

// RequestLogger tags each request with an ID, echoes it in X-Request-ID,
// and logs the outcome once the handler returns.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		slog.Info("request complete",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"bytes", rec.bytes,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
