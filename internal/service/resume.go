package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/msomdec/resume-api/internal/domain"
)

// ResumeService handles résumé CRUD. Every operation is scoped to the
// calling author; résumés owned by someone else are reported as not found.
type ResumeService struct {
	resumes domain.ResumeRepository
}

// NewResumeService creates a new ResumeService.
func NewResumeService(resumes domain.ResumeRepository) *ResumeService {
	return &ResumeService{resumes: resumes}
}

// ParseSortOrder maps a case-insensitive "asc"/"desc" to a SortOrder,
// falling back to descending for anything else.
func ParseSortOrder(s string) domain.SortOrder {
	if strings.EqualFold(s, string(domain.SortAsc)) {
		return domain.SortAsc
	}
	return domain.SortDesc
}

// Create stores a new résumé owned by authorID.
func (s *ResumeService) Create(ctx context.Context, authorID int64, title, content string) (*domain.Resume, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	resume := &domain.Resume{
		AuthorID: authorID,
		Title:    title,
		Content:  content,
		Status:   domain.ResumeStatusApply,
	}
	if err := s.resumes.Create(ctx, resume); err != nil {
		return nil, fmt.Errorf("create resume: %w", err)
	}
	return resume, nil
}

// List returns all of the author's résumés ordered by creation time.
func (s *ResumeService) List(ctx context.Context, authorID int64, order domain.SortOrder) ([]domain.ResumeWithAuthor, error) {
	return s.resumes.ListByAuthor(ctx, authorID, order)
}

// Get returns one of the author's résumés.
func (s *ResumeService) Get(ctx context.Context, authorID, id int64) (*domain.ResumeWithAuthor, error) {
	return s.resumes.GetByIDForAuthor(ctx, id, authorID)
}

// Update applies a partial update to one of the author's résumés.
func (s *ResumeService) Update(ctx context.Context, authorID, id int64, patch domain.ResumePatch) (*domain.Resume, error) {
	if patch.Title == nil && patch.Content == nil {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrInvalidInput)
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", domain.ErrInvalidInput)
	}
	if patch.Content != nil {
		if err := validateContent(*patch.Content); err != nil {
			return nil, err
		}
	}

	return s.resumes.UpdateForAuthor(ctx, id, authorID, patch)
}

// Delete removes one of the author's résumés.
func (s *ResumeService) Delete(ctx context.Context, authorID, id int64) error {
	return s.resumes.DeleteForAuthor(ctx, id, authorID)
}

func validateContent(content string) error {
	if utf8.RuneCountInString(content) < domain.MinResumeContentLength {
		return fmt.Errorf("%w: content must be at least %d characters", domain.ErrInvalidInput, domain.MinResumeContentLength)
	}
	return nil
}
