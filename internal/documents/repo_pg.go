package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements DocumentsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    user_id,
    kind,
    file_name,
    mime_type,
    size_bytes,
    storage_key,
    extracted_text,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var storageKey sql.NullString
	if doc.StorageKey != "" {
		storageKey = sql.NullString{String: doc.StorageKey, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.UserID,
		string(doc.Kind),
		doc.FileName,
		doc.MimeType,
		doc.SizeBytes,
		storageKey,
		doc.ExtractedText,
		doc.CreatedAt,
	)
	return err
}

// GetCurrentByKind returns the latest document of the given kind for a user.
func (r *PGRepo) GetCurrentByKind(ctx context.Context, userId string, kind Kind) (Document, error) {
	const query = `
SELECT id, user_id, kind, file_name, mime_type, size_bytes, storage_key, extracted_text, created_at
FROM documents
WHERE user_id = $1 AND kind = $2 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT 1`
	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, userId, string(kind)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// ListByUser lists documents ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]Document, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, kind, file_name, mime_type, size_bytes, storage_key, extracted_text, created_at
FROM documents
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userId, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	var kind string
	var storageKey sql.NullString
	var extracted sql.NullString
	if err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&kind,
		&doc.FileName,
		&doc.MimeType,
		&doc.SizeBytes,
		&storageKey,
		&extracted,
		&doc.CreatedAt,
	); err != nil {
		return Document{}, err
	}
	doc.Kind = Kind(kind)
	if storageKey.Valid {
		doc.StorageKey = storageKey.String
	}
	if extracted.Valid {
		doc.ExtractedText = extracted.String
	}
	return doc, nil
}

var _ DocumentsRepo = (*PGRepo)(nil)
