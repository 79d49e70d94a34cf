package handler

import (
	"time"

	"github.com/msomdec/resume-api/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash is never included.
type UserDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ResumeDTO is the stored form of a résumé, returned by create and update.
type ResumeDTO struct {
	ID        int64  `json:"id"`
	AuthorID  int64  `json:"authorId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toResumeDTO(r *domain.Resume) ResumeDTO {
	return ResumeDTO{
		ID:        r.ID,
		AuthorID:  r.AuthorID,
		Title:     r.Title,
		Content:   r.Content,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ResumeDetailDTO flattens the author to their display name.
type ResumeDetailDTO struct {
	ID         int64  `json:"id"`
	AuthorName string `json:"authorName"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

func toResumeDetailDTO(r domain.ResumeWithAuthor) ResumeDetailDTO {
	return ResumeDetailDTO{
		ID:         r.ID,
		AuthorName: r.AuthorName,
		Title:      r.Title,
		Content:    r.Content,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toResumeDetailDTOs(resumes []domain.ResumeWithAuthor) []ResumeDetailDTO {
	dtos := make([]ResumeDetailDTO, len(resumes))
	for i, r := range resumes {
		dtos[i] = toResumeDetailDTO(r)
	}
	return dtos
}

// DeletedDTO identifies a deleted record.
type DeletedDTO struct {
	ID int64 `json:"id"`
}

// TokenDTO carries a freshly issued access token.
type TokenDTO struct {
	AccessToken string `json:"accessToken"`
}
