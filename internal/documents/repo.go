package documents

import "context"

// DocumentsRepo defines persistence operations for documents.
type DocumentsRepo interface {
	Create(ctx context.Context, doc Document) error
	GetCurrentByKind(ctx context.Context, userId string, kind Kind) (Document, error)
	ListByUser(ctx context.Context, userId string, limit, offset int) ([]Document, error)
}
