package documents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateStoresExtractedText(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := Document{
		ID:            "doc-1",
		UserID:        "user-1",
		Kind:          KindResume,
		FileName:      "resume.pdf",
		MimeType:      "application/pdf",
		SizeBytes:     2048,
		StorageKey:    "user-1/resume.pdf",
		ExtractedText: "Senior engineer with Go experience.",
		CreatedAt:     time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(
			doc.ID,
			doc.UserID,
			string(doc.Kind),
			doc.FileName,
			doc.MimeType,
			doc.SizeBytes,
			doc.StorageKey,
			doc.ExtractedText,
			doc.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetCurrentByKind(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	createdAt := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "kind", "file_name", "mime_type", "size_bytes", "storage_key", "extracted_text", "created_at",
	}).AddRow("doc-1", "user-1", "job_description", "role.txt", "text/plain", int64(128), "user-1/role.txt", "Backend role", createdAt)

	mock.ExpectQuery("SELECT id, user_id, kind").
		WithArgs("user-1", "job_description").
		WillReturnRows(rows)

	doc, err := repo.GetCurrentByKind(context.Background(), "user-1", KindJobDescription)
	if err != nil {
		t.Fatalf("GetCurrentByKind: %v", err)
	}
	if doc.Kind != KindJobDescription {
		t.Fatalf("expected job_description kind, got %s", doc.Kind)
	}
	if doc.ExtractedText != "Backend role" {
		t.Fatalf("expected extracted text, got %q", doc.ExtractedText)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetCurrentByKindNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT id, user_id, kind").
		WithArgs("user-1", "resume").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "kind", "file_name", "mime_type", "size_bytes", "storage_key", "extracted_text", "created_at",
		}))

	_, err = repo.GetCurrentByKind(context.Background(), "user-1", KindResume)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
