package handler

import "net/http"

// HandleMe returns the authenticated user.
// GET /me
func HandleMe(w http.ResponseWriter, r *http.Request, rc *RequestContext) error {
	if rc.User == nil {
		return newAPIError(http.StatusUnauthorized, msgAuthRequired)
	}

	respond(w, http.StatusOK, msgReadMeSucceeded, toUserDTO(rc.User))
	return nil
}
