package llm

import (
	"context"
	"errors"

	"interview-backend/internal/evaluation"
	"interview-backend/internal/questions"
)

// Client abstracts LLM providers for interview question generation,
// localization, follow-ups and answer scoring.
type Client interface {
	GenerateQuestions(ctx context.Context, input GenerateInput) ([]questions.Question, error)
	RewriteQuestions(ctx context.Context, lang questions.Language, batch []questions.Question) ([]questions.Question, error)
	GenerateFollowUp(ctx context.Context, answer questions.Answer, lang questions.Language) (string, error)
	ScoreAnswer(ctx context.Context, input ScoreInput) (evaluation.ExternalAssessment, error)
}

// GenerateInput captures the inputs needed to generate an interview.
type GenerateInput struct {
	ResumeText     string
	JobDescription string
	Language       questions.Language
	Counts         map[questions.Category]int
}

// ScoreInput captures the inputs for scoring a single answer. ResumeText and
// JobDescription give the scorer the same context the questions were
// generated against.
type ScoreInput struct {
	Question       questions.Question
	Transcript     string
	ResumeText     string
	JobDescription string
}

// ErrNotConfigured is returned by the placeholder client when no provider
// has been wired. Callers treat it as a signal to use local fallbacks.
var ErrNotConfigured = errors.New("LLM not configured")

// PlaceholderClient is a stub implementation used when no provider is set.
type PlaceholderClient struct{}

func (PlaceholderClient) GenerateQuestions(ctx context.Context, input GenerateInput) ([]questions.Question, error) {
	_ = ctx
	_ = input
	return nil, ErrNotConfigured
}

func (PlaceholderClient) RewriteQuestions(ctx context.Context, lang questions.Language, batch []questions.Question) ([]questions.Question, error) {
	_ = ctx
	_ = lang
	_ = batch
	return nil, ErrNotConfigured
}

func (PlaceholderClient) GenerateFollowUp(ctx context.Context, answer questions.Answer, lang questions.Language) (string, error) {
	_ = ctx
	_ = answer
	_ = lang
	return "", ErrNotConfigured
}

func (PlaceholderClient) ScoreAnswer(ctx context.Context, input ScoreInput) (evaluation.ExternalAssessment, error) {
	_ = ctx
	_ = input
	return evaluation.ExternalAssessment{}, ErrNotConfigured
}

var _ Client = PlaceholderClient{}
