package history

import "context"

// HistoryRepo defines persistence operations for interview history.
type HistoryRepo interface {
	// Append stores an entry and prunes the oldest entries beyond limit.
	Append(ctx context.Context, entry Entry, limit int) error
	// ListByUser returns entries newest-first, at most limit.
	ListByUser(ctx context.Context, userId string, limit int) ([]Entry, error)
}
