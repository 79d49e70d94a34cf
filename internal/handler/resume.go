package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/msomdec/resume-api/internal/domain"
	"github.com/msomdec/resume-api/internal/service"
)

// ResumeHandler handles résumé CRUD requests. All routes run behind Authenticate.
type ResumeHandler struct {
	resumes *service.ResumeService
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(resumes *service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumes: resumes}
}

// HandleCreate stores a new résumé for the caller.
// POST /resumes
// Request: {"title":"...","content":"..."}
func (h *ResumeHandler) HandleCreate(w http.ResponseWriter, r *http.Request, rc *RequestContext) error {
	req, err := bodyFrom[createResumeRequest](rc)
	if err != nil {
		return err
	}

	resume, err := h.resumes.Create(r.Context(), rc.User.ID, req.Title, req.Content)
	if err != nil {
		return err
	}

	respond(w, http.StatusCreated, msgResumeCreated, toResumeDTO(resume))
	return nil
}

// HandleList returns the caller's résumés ordered by creation time.
// GET /resumes?sort=asc|desc
func (h *ResumeHandler) HandleList(w http.ResponseWriter, r *http.Request, rc *RequestContext) error {
	order := service.ParseSortOrder(r.URL.Query().Get("sort"))

	resumes, err := h.resumes.List(r.Context(), rc.User.ID, order)
	if err != nil {
		return err
	}

	respond(w, http.StatusOK, msgResumeListed, toResumeDetailDTOs(resumes))
	return nil
}

// HandleGet returns one of the caller's résumés.
// GET /resumes/{id}
func (h *ResumeHandler) HandleGet(w http.ResponseWriter, r *http.Request, rc *RequestContext) error {
	id, err := resumeID(r)
	if err != nil {
		return err
	}

	resume, err := h.resumes.Get(r.Context(), rc.User.ID, id)
	if err != nil {
		return notFoundAsResume(err)
	}

	respond(w, http.StatusOK, msgResumeRetrieved, toResumeDetailDTO(*resume))
	return nil
}

// HandleUpdate applies a partial update to one of the caller's résumés.
// PUT /resumes/{id}
// Request: {"title":"..."} and/or {"content":"..."}
func (h *ResumeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request, rc *RequestContext) error {
	id, err := resumeID(r)
	if err != nil {
		return err
	}

	req, err := bodyFrom[updateResumeRequest](rc)
	if err != nil {
		return err
	}

	resume, err := h.resumes.Update(r.Context(), rc.User.ID, id, domain.ResumePatch{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return notFoundAsResume(err)
	}

	respond(w, http.StatusOK, msgResumeUpdated, toResumeDTO(resume))
	return nil
}

// HandleDelete removes one of the caller's résumés.
// DELETE /resumes/{id}
// Response data: {"id": <deleted id>}
func (h *ResumeHandler) HandleDelete(w http.ResponseWriter, r *http.Request, rc *RequestContext) error {
	id, err := resumeID(r)
	if err != nil {
		return err
	}

	if err := h.resumes.Delete(r.Context(), rc.User.ID, id); err != nil {
		return notFoundAsResume(err)
	}

	respond(w, http.StatusOK, msgResumeDeleted, DeletedDTO{ID: id})
	return nil
}

// resumeID parses the {id} path value. Ids that cannot exist are reported
// the same way as résumés that do not exist.
func resumeID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, newAPIError(http.StatusNotFound, msgResumeNotFound)
	}
	return id, nil
}

func notFoundAsResume(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return newAPIError(http.StatusNotFound, msgResumeNotFound)
	}
	return err
}
