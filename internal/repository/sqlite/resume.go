package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/resume-api/internal/domain"
)

// ResumeRepository implements domain.ResumeRepository using SQLite.
type ResumeRepository struct {
	db *sql.DB
}

// NewResumeRepository creates a new SQLite-backed ResumeRepository.
func NewResumeRepository(db *DB) *ResumeRepository {
	return &ResumeRepository{db: db.SqlDB}
}

const resumeWithAuthorColumns = `r.id, r.author_id, r.title, r.content, r.status, r.created_at, r.updated_at, u.name`

func (r *ResumeRepository) Create(ctx context.Context, resume *domain.Resume) error {
	if resume.Status == "" {
		resume.Status = domain.ResumeStatusApply
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO resumes (author_id, title, content, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		resume.AuthorID, resume.Title, resume.Content, resume.Status, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get resume id: %w", err)
	}

	resume.ID = id
	resume.CreatedAt = now
	resume.UpdatedAt = now
	return nil
}

func (r *ResumeRepository) GetByIDForAuthor(ctx context.Context, id, authorID int64) (*domain.ResumeWithAuthor, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+resumeWithAuthorColumns+`
		 FROM resumes r JOIN users u ON u.id = r.author_id
		 WHERE r.id = ? AND r.author_id = ?`, id, authorID,
	)

	res, err := scanResumeWithAuthor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get resume: %w", err)
	}
	return res, nil
}

func (r *ResumeRepository) ListByAuthor(ctx context.Context, authorID int64, order domain.SortOrder) ([]domain.ResumeWithAuthor, error) {
	orderBy := "r.created_at DESC, r.id DESC"
	if order == domain.SortAsc {
		orderBy = "r.created_at ASC, r.id ASC"
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+resumeWithAuthorColumns+`
		 FROM resumes r JOIN users u ON u.id = r.author_id
		 WHERE r.author_id = ?
		 ORDER BY `+orderBy, authorID)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	resumes := []domain.ResumeWithAuthor{}
	for rows.Next() {
		res, err := scanResumeWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resume: %w", err)
		}
		resumes = append(resumes, *res)
	}
	return resumes, rows.Err()
}

// UpdateForAuthor applies patch with a single owner-scoped UPDATE and reads
// the row back in the same transaction.
func (r *ResumeRepository) UpdateForAuthor(ctx context.Context, id, authorID int64, patch domain.ResumePatch) (*domain.Resume, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE resumes
		 SET title = COALESCE(?, title), content = COALESCE(?, content), updated_at = ?
		 WHERE id = ? AND author_id = ?`,
		patch.Title, patch.Content, time.Now().UTC(), id, authorID,
	)
	if err != nil {
		return nil, fmt.Errorf("update resume: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrNotFound
	}

	res := &domain.Resume{}
	err = tx.QueryRowContext(ctx,
		`SELECT id, author_id, title, content, status, created_at, updated_at
		 FROM resumes WHERE id = ?`, id,
	).Scan(&res.ID, &res.AuthorID, &res.Title, &res.Content, &res.Status, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("reload resume: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return res, nil
}

func (r *ResumeRepository) DeleteForAuthor(ctx context.Context, id, authorID int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM resumes WHERE id = ? AND author_id = ?", id, authorID)
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResumeWithAuthor(s rowScanner) (*domain.ResumeWithAuthor, error) {
	var res domain.ResumeWithAuthor
	err := s.Scan(&res.ID, &res.AuthorID, &res.Title, &res.Content, &res.Status,
		&res.CreatedAt, &res.UpdatedAt, &res.AuthorName)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
