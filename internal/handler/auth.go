package handler

import (
	"errors"
	"net/http"

	"github.com/msomdec/resume-api/internal/domain"
	"github.com/msomdec/resume-api/internal/service"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleSignUp registers a new user.
// POST /sign-up
// Request:  {"email":"...","password":"...","passwordConfirm":"...","name":"..."}
// Response: 201 {"status":201,"message":"...","data":{user}}
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request, rc *RequestContext) error {
	req, err := bodyFrom[signUpRequest](rc)
	if err != nil {
		return err
	}

	user, err := h.auth.SignUp(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		return err
	}

	respond(w, http.StatusCreated, msgSignUpSucceeded, toUserDTO(user))
	return nil
}

// HandleSignIn verifies credentials and issues an access token.
// POST /sign-in
// Request:  {"email":"...","password":"..."}
// Response: 200 {"status":200,"message":"...","data":{"accessToken":"..."}}
func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request, rc *RequestContext) error {
	req, err := bodyFrom[signInRequest](rc)
	if err != nil {
		return err
	}

	token, err := h.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return newAPIError(http.StatusUnauthorized, msgInvalidCredential)
		}
		return err
	}

	respond(w, http.StatusOK, msgSignInSucceeded, TokenDTO{AccessToken: token})
	return nil
}
