package handler

import (
	"net/http"

	"github.com/msomdec/resume-api/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
// Protected routes authenticate before validating the request body.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, resumes *service.ResumeService) {
	v := newValidator()
	requireAuth := Authenticate(auth)

	authHandler := NewAuthHandler(auth)
	resumeHandler := NewResumeHandler(resumes)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	// Anything unmatched, including a known path with the wrong method.
	mux.Handle("/", Pipeline(handleNotFound))

	mux.Handle("POST /sign-up", Pipeline(authHandler.HandleSignUp, validateBody[signUpRequest](v)))
	mux.Handle("POST /sign-in", Pipeline(authHandler.HandleSignIn, validateBody[signInRequest](v)))

	mux.Handle("GET /me", Pipeline(HandleMe, requireAuth))

	mux.Handle("POST /resumes", Pipeline(resumeHandler.HandleCreate, requireAuth, validateBody[createResumeRequest](v)))
	mux.Handle("GET /resumes", Pipeline(resumeHandler.HandleList, requireAuth))
	mux.Handle("GET /resumes/{id}", Pipeline(resumeHandler.HandleGet, requireAuth))
	mux.Handle("PUT /resumes/{id}", Pipeline(resumeHandler.HandleUpdate, requireAuth, validateBody[updateResumeRequest](v)))
	mux.Handle("DELETE /resumes/{id}", Pipeline(resumeHandler.HandleDelete, requireAuth))
}
