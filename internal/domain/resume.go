package domain

import (
	"context"
	"time"
)

// MinResumeContentLength is the minimum number of characters in a résumé body.
const MinResumeContentLength = 150

// ResumeStatus is the hiring-pipeline state of a résumé.
type ResumeStatus string

const (
	ResumeStatusApply      ResumeStatus = "APPLY"
	ResumeStatusDrop       ResumeStatus = "DROP"
	ResumeStatusPass       ResumeStatus = "PASS"
	ResumeStatusInterview1 ResumeStatus = "INTERVIEW1"
	ResumeStatusInterview2 ResumeStatus = "INTERVIEW2"
	ResumeStatusFinalPass  ResumeStatus = "FINAL_PASS"
)

// SortOrder controls the creation-time ordering of résumé lists.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type Resume struct {
	ID        int64
	AuthorID  int64
	Title     string
	Content   string
	Status    ResumeStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ResumeWithAuthor is a résumé joined with its author's display name.
type ResumeWithAuthor struct {
	Resume
	AuthorName string
}

// ResumePatch holds the fields of a partial update. Nil fields are left unchanged.
type ResumePatch struct {
	Title   *string
	Content *string
}

// ResumeRepository defines persistence operations for résumés.
// Every lookup and mutation is scoped by author ID.
type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByIDForAuthor(ctx context.Context, id, authorID int64) (*ResumeWithAuthor, error)
	ListByAuthor(ctx context.Context, authorID int64, order SortOrder) ([]ResumeWithAuthor, error)
	UpdateForAuthor(ctx context.Context, id, authorID int64, patch ResumePatch) (*Resume, error)
	DeleteForAuthor(ctx context.Context, id, authorID int64) error
}
