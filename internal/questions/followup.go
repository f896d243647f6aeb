package questions

import (
	"context"
	"strings"

	"interview-backend/internal/shared/telemetry"
)

// FollowUpLimit caps adaptive follow-up questions per interview session.
const FollowUpLimit = 4

// FallbackFollowUpPrompt is the generic deepening follow-up used when no
// generation service is configured.
const FallbackFollowUpPrompt = "Can you go one level deeper on that? What was the hardest part, and how did you handle it?"

// FollowUpFunc asks an external generator for one follow-up question, seeded
// with the original question and the candidate's answer. An empty string
// means no follow-up.
type FollowUpFunc func(ctx context.Context, answer Answer, lang Language) (string, error)

// FollowUpPolicy owns the per-session follow-up counter. It is not safe for
// concurrent use; a session is driven by one caller at a time.
type FollowUpPolicy struct {
	Enabled   bool
	Generated int
}

// Eligible reports whether this answer may spawn a follow-up at all.
// Answers to follow-ups never chain further.
func (p *FollowUpPolicy) Eligible(answer Answer) bool {
	return p.Enabled && !answer.IsFollowUp && p.Generated < FollowUpLimit
}

// Maybe requests one follow-up for an answered question. It is best-effort
// enrichment: every failure is logged and swallowed, and the question queue
// is only touched on success.
func (p *FollowUpPolicy) Maybe(ctx context.Context, answer Answer, lang Language, generate FollowUpFunc) (Question, Outcome) {
	if !p.Eligible(answer) || generate == nil {
		return Question{}, OutcomeSkipped
	}

	text, err := generate(ctx, answer, lang)
	if err != nil {
		telemetry.Error("questions.followup", map[string]any{
			"category": string(answer.Category),
			"error":    err.Error(),
		})
		return Question{}, OutcomeFailed
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Question{}, OutcomeSkipped
	}

	p.Generated++
	return Question{
		Category:   answer.Category,
		Text:       text,
		IsFollowUp: true,
	}, OutcomeApplied
}

// InsertAfter returns the queue with q spliced in directly after position.
func InsertAfter(queue []Question, position int, q Question) []Question {
	if position < 0 || position >= len(queue) {
		return append(queue, q)
	}
	out := make([]Question, 0, len(queue)+1)
	out = append(out, queue[:position+1]...)
	out = append(out, q)
	out = append(out, queue[position+1:]...)
	return out
}
