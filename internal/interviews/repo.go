package interviews

import "context"

// InterviewsRepo defines persistence operations for interview sessions.
type InterviewsRepo interface {
	Create(ctx context.Context, session Session) error
	Get(ctx context.Context, userId, sessionID string) (Session, error)
	Update(ctx context.Context, session Session) error
}
