package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/msomdec/resume-api/internal/domain"
	"github.com/msomdec/resume-api/internal/repository/sqlite"
)

func TestNew(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}

	var fkEnabled int
	if err := db.SqlDB.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled); err != nil {
		t.Fatalf("check foreign_keys: %v", err)
	}
	if fkEnabled != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fkEnabled)
	}
}

func TestMigrate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	res, err := db.SqlDB.ExecContext(ctx,
		"INSERT INTO users (email, name, password_hash) VALUES (?, ?, ?)",
		"test@example.com", "Test User", "hash123",
	)
	if err != nil {
		t.Fatalf("insert into users: %v", err)
	}
	userID, _ := res.LastInsertId()

	var status string
	err = db.SqlDB.QueryRowContext(ctx,
		"INSERT INTO resumes (author_id, title, content) VALUES (?, ?, ?) RETURNING status",
		userID, "Title", "Content",
	).Scan(&status)
	if err != nil {
		t.Fatalf("insert into resumes: %v", err)
	}
	if status != "APPLY" {
		t.Fatalf("expected default status APPLY, got %q", status)
	}
}

func TestMigrate_ResumeRequiresExistingAuthor(t *testing.T) {
	db := newTestDB(t)

	_, err := db.SqlDB.ExecContext(context.Background(),
		"INSERT INTO resumes (author_id, title, content) VALUES (?, ?, ?)",
		424242, "Orphan", "Content",
	)
	if err == nil {
		t.Fatal("expected foreign key violation for unknown author")
	}
}

func TestMigrateIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// newTestDB already migrated once; a second run must be a no-op.
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate (idempotent): %v", err)
	}

	var count int
	err := db.SqlDB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM goose_db_version WHERE version_id > 0").Scan(&count)
	if err != nil {
		t.Fatalf("count goose_db_version: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 migration records, got %d", count)
	}
}

func TestRepositoriesShareConnection(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	users := sqlite.NewUserRepository(db)
	resumes := sqlite.NewResumeRepository(db)

	user := &domain.User{Email: "shared@example.com", Name: "Shared", PasswordHash: "hash"}
	if err := users.Create(ctx, user); err != nil {
		t.Fatalf("Create user: %v", err)
	}

	res := &domain.Resume{AuthorID: user.ID, Title: "Shared", Content: "content"}
	if err := resumes.Create(ctx, res); err != nil {
		t.Fatalf("Create resume: %v", err)
	}

	found, err := resumes.GetByIDForAuthor(ctx, res.ID, user.ID)
	if err != nil {
		t.Fatalf("GetByIDForAuthor: %v", err)
	}
	if found.AuthorName != "Shared" {
		t.Fatalf("expected author name Shared, got %q", found.AuthorName)
	}
}
