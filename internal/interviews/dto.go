package interviews

import (
	"time"

	"interview-backend/internal/questions"
)

type questionResponse struct {
	Position   int    `json:"position"`
	Category   string `json:"category"`
	Text       string `json:"text"`
	IsFollowUp bool   `json:"isFollowUp"`
	Answered   bool   `json:"answered"`
}

// SessionResponse is the outward-facing representation of a session.
type SessionResponse struct {
	ID                 string             `json:"id"`
	Status             string             `json:"status"`
	Language           string             `json:"language"`
	Questions          []questionResponse `json:"questions"`
	FollowUpsGenerated int                `json:"followUpsGenerated"`
	CreatedAt          time.Time          `json:"createdAt"`
	CompletedAt        *time.Time         `json:"completedAt,omitempty"`
}

func toSessionResponse(session Session) SessionResponse {
	qs := make([]questionResponse, 0, len(session.Queue))
	for i, q := range session.Queue {
		_, answered := session.Answers[i]
		qs = append(qs, questionResponse{
			Position:   i,
			Category:   string(q.Category),
			Text:       q.Text,
			IsFollowUp: q.IsFollowUp,
			Answered:   answered,
		})
	}
	return SessionResponse{
		ID:                 session.ID,
		Status:             string(session.Status),
		Language:           string(session.Language),
		Questions:          qs,
		FollowUpsGenerated: session.FollowUpsGenerated,
		CreatedAt:          session.CreatedAt,
		CompletedAt:        session.CompletedAt,
	}
}

type followUpResponse struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// AnswerResponse is returned after recording an answer.
type AnswerResponse struct {
	Hints    []string          `json:"hints"`
	FollowUp *followUpResponse `json:"followUp,omitempty"`
	Session  SessionResponse   `json:"session"`
}

func toAnswerResponse(result AnswerResult) AnswerResponse {
	resp := AnswerResponse{
		Hints:   result.Hints,
		Session: toSessionResponse(result.Session),
	}
	if result.FollowUp != nil {
		resp.FollowUp = &followUpResponse{
			Category: string(result.FollowUp.Category),
			Text:     result.FollowUp.Text,
		}
	}
	return resp
}

type startRequest struct {
	Language string         `json:"language"`
	Counts   map[string]int `json:"counts"`
}

func (r startRequest) categoryCounts() map[questions.Category]int {
	if len(r.Counts) == 0 {
		return nil
	}
	out := make(map[questions.Category]int, len(r.Counts))
	for raw, n := range r.Counts {
		out[questions.NormalizeCategory(raw)] += n
	}
	return out
}

type answerRequest struct {
	Position   *int   `json:"position"`
	Transcript string `json:"transcript"`
}

type hintsRequest struct {
	Transcript string `json:"transcript"`
}
