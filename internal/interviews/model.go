package interviews

import (
	"sort"
	"time"

	"interview-backend/internal/questions"
	"interview-backend/internal/reports"
)

// Status tracks a session's lifecycle.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// AnswerRecord is one answered question, keyed by queue position.
type AnswerRecord struct {
	Position   int       `json:"position"`
	Transcript string    `json:"transcript"`
	AnsweredAt time.Time `json:"answeredAt"`
}

// Session is one mock interview in progress. The question queue can grow
// mid-session when the follow-up policy inserts a probe after an answer.
type Session struct {
	ID                 string               `json:"id"`
	UserID             string               `json:"userId"`
	Language           questions.Language   `json:"language"`
	Status             Status               `json:"status"`
	Queue              []questions.Question `json:"queue"`
	Answers            map[int]AnswerRecord `json:"answers"`
	FollowUpsGenerated int                  `json:"followUpsGenerated"`
	Report             *reports.Report      `json:"report,omitempty"`
	CreatedAt          time.Time            `json:"createdAt"`
	CompletedAt        *time.Time           `json:"completedAt,omitempty"`
}

// AnsweredPositions returns the answered queue positions in ascending order.
func (s *Session) AnsweredPositions() []int {
	out := make([]int, 0, len(s.Answers))
	for pos := range s.Answers {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}
