package handler

import "net/http"

// HandleHealthz reports that the process is up. It does not touch the database.
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, msgHealthy, map[string]string{"status": "ok"})
}

func handleNotFound(w http.ResponseWriter, r *http.Request, rc *RequestContext) error {
	return newAPIError(http.StatusNotFound, msgNotFound)
}
