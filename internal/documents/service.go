package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"interview-backend/internal/extract"
	"interview-backend/internal/shared/storage/object"
)

// Service contains business logic for documents.
type Service struct {
	Store object.ObjectStore
	Repo  DocumentsRepo
}

// Upload saves the original file to object storage, extracts its plain text
// and records the document. Files we cannot extract text from are rejected.
func (s *Service) Upload(ctx context.Context, userId string, kind Kind, fileName string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, fmt.Errorf("%w: file name required", ErrInvalidInput)
	}
	if kind != KindResume && kind != KindJobDescription {
		return Document{}, fmt.Errorf("%w: unknown document kind", ErrInvalidInput)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return Document{}, err
	}
	if len(raw) == 0 {
		return Document{}, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userId, fileName, bytes.NewReader(raw))
	if err != nil {
		return Document{}, err
	}

	text, err := extract.Text(ctx, raw, mimeType, fileName)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupported) {
			return Document{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return Document{}, err
	}

	doc := Document{
		ID:            uuid.NewString(),
		UserID:        userId,
		Kind:          kind,
		FileName:      fileName,
		MimeType:      mimeType,
		SizeBytes:     size,
		StorageKey:    storageKey,
		ExtractedText: text,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// Current returns the latest document of the given kind for a user.
func (s *Service) Current(ctx context.Context, userId string, kind Kind) (Document, error) {
	if userId == "" {
		return Document{}, errors.New("user id required")
	}
	return s.Repo.GetCurrentByKind(ctx, userId, kind)
}

// CurrentText returns the extracted text of the latest document of the
// given kind, or ErrNotFound when none exists.
func (s *Service) CurrentText(ctx context.Context, userId string, kind Kind) (string, error) {
	doc, err := s.Current(ctx, userId, kind)
	if err != nil {
		return "", err
	}
	return doc.ExtractedText, nil
}

// List returns documents for a user, newest first.
func (s *Service) List(ctx context.Context, userId string, limit, offset int) ([]Document, error) {
	if userId == "" {
		return nil, errors.New("user id required")
	}
	return s.Repo.ListByUser(ctx, userId, limit, offset)
}
