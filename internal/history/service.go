package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for the practice trail.
type Service struct {
	Repo HistoryRepo
}

// Record appends a completed interview to the user's trail, honoring the
// retention cap for their identity type.
func (s *Service) Record(ctx context.Context, userId string, isGuest bool, overallScore, questionCount int) (Entry, error) {
	if userId == "" {
		return Entry{}, errors.New("user id required")
	}
	entry := Entry{
		ID:            uuid.NewString(),
		UserID:        userId,
		OverallScore:  overallScore,
		QuestionCount: questionCount,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.Repo.Append(ctx, entry, LimitFor(isGuest)); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// List returns the user's trail, newest first.
func (s *Service) List(ctx context.Context, userId string, isGuest bool) ([]Entry, error) {
	if userId == "" {
		return nil, errors.New("user id required")
	}
	return s.Repo.ListByUser(ctx, userId, LimitFor(isGuest))
}
