package interviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"interview-backend/internal/documents"
	"interview-backend/internal/evaluation"
	"interview-backend/internal/history"
	"interview-backend/internal/llm"
	"interview-backend/internal/questions"
	"interview-backend/internal/reports"
	"interview-backend/internal/shared/metrics"
	"interview-backend/internal/shared/telemetry"
	"interview-backend/internal/usage"
)

// defaultCounts is the question mix used when the client does not ask for a
// specific one.
var defaultCounts = map[questions.Category]int{
	questions.CategoryBehavioral:   2,
	questions.CategoryTechnical:    2,
	questions.CategorySituational:  1,
	questions.CategoryMotivational: 1,
}

// Service orchestrates interview sessions end to end.
type Service struct {
	Repo             InterviewsRepo
	LLM              llm.Client
	Evaluator        *evaluation.Evaluator
	Docs             *documents.Service
	Usage            *usage.Service
	History          *history.Service
	FollowUpsEnabled bool
}

// StartInput carries the optional knobs for a new session.
type StartInput struct {
	Language string
	Counts   map[questions.Category]int
}

// Start creates a new session: checks quota, pulls the user's resume and job
// description text, generates the question queue (LLM first, deterministic
// templates on failure) and localizes it.
func (s *Service) Start(ctx context.Context, userId string, isGuest bool, in StartInput) (Session, error) {
	if userId == "" {
		return Session{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}

	ok, _, err := s.Usage.CanConsume(ctx, userId, 1)
	if err != nil {
		return Session{}, err
	}
	if !ok {
		return Session{}, ErrQuotaExceeded
	}

	resumeText, err := s.Docs.CurrentText(ctx, userId, documents.KindResume)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return Session{}, ErrMissingResume
		}
		return Session{}, err
	}
	jdText, err := s.Docs.CurrentText(ctx, userId, documents.KindJobDescription)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return Session{}, ErrMissingJobDescription
		}
		return Session{}, err
	}

	lang := questions.NormalizeLanguage(in.Language)
	counts := in.Counts
	if len(counts) == 0 {
		counts = defaultCounts
	}
	for _, n := range counts {
		if n < 0 {
			return Session{}, fmt.Errorf("%w: question counts must be non-negative", ErrInvalidInput)
		}
	}

	queue := s.buildQueue(ctx, resumeText, jdText, lang, counts)
	if len(queue) == 0 {
		return Session{}, fmt.Errorf("%w: question counts produced an empty interview", ErrInvalidInput)
	}

	if _, err := s.Usage.Consume(ctx, userId, 1); err != nil {
		if errors.Is(err, usage.ErrLimitReached) {
			return Session{}, ErrQuotaExceeded
		}
		return Session{}, err
	}

	session := Session{
		ID:        uuid.NewString(),
		UserID:    userId,
		Language:  lang,
		Status:    StatusActive,
		Queue:     queue,
		Answers:   make(map[int]AnswerRecord),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, session); err != nil {
		return Session{}, err
	}

	metrics.IncInterviewStarted()
	telemetry.Info("interviews.started", map[string]any{
		"interview_id": session.ID,
		"language":     string(lang),
		"questions":    len(queue),
		"guest":        isGuest,
	})
	return session, nil
}

func (s *Service) buildQueue(ctx context.Context, resumeText, jdText string, lang questions.Language, counts map[questions.Category]int) []questions.Question {
	generated, err := s.LLM.GenerateQuestions(ctx, llm.GenerateInput{
		ResumeText:     resumeText,
		JobDescription: jdText,
		Language:       lang,
		Counts:         counts,
	})
	if err != nil {
		if !errors.Is(err, llm.ErrNotConfigured) {
			telemetry.Error("interviews.generate_fallback", map[string]any{
				"error": err.Error(),
			})
		}
		return questions.FallbackQuestions(counts, lang)
	}

	// The fallback bank is already localized; only LLM output goes through
	// the language check.
	localized, _ := questions.EnsureLanguage(ctx, lang, generated, s.LLM.RewriteQuestions)
	return localized
}

// AnswerResult is what one recorded answer produces for the caller.
type AnswerResult struct {
	Hints    []string
	FollowUp *questions.Question
	Session  Session
}

// Answer records a transcript for a queue position, produces coaching hints
// and may insert one follow-up question right after the answered position.
func (s *Service) Answer(ctx context.Context, userId, sessionID string, position int, transcript string) (AnswerResult, error) {
	session, err := s.Repo.Get(ctx, userId, sessionID)
	if err != nil {
		return AnswerResult{}, err
	}
	if session.Status == StatusCompleted {
		return AnswerResult{}, ErrSessionCompleted
	}
	if position < 0 || position >= len(session.Queue) {
		return AnswerResult{}, fmt.Errorf("%w: position out of range", ErrInvalidInput)
	}
	if strings.TrimSpace(transcript) == "" {
		return AnswerResult{}, fmt.Errorf("%w: transcript is required", ErrInvalidInput)
	}

	session.Answers[position] = AnswerRecord{
		Position:   position,
		Transcript: transcript,
		AnsweredAt: time.Now().UTC(),
	}

	hints := evaluation.CoachingHints(transcript)

	answered := session.Queue[position]
	policy := questions.FollowUpPolicy{
		Enabled:   s.FollowUpsEnabled,
		Generated: session.FollowUpsGenerated,
	}
	followUp, outcome := policy.Maybe(ctx, questions.Answer{
		Category:   answered.Category,
		Question:   answered.Text,
		Transcript: transcript,
		IsFollowUp: answered.IsFollowUp,
	}, session.Language, s.generateFollowUp)

	var inserted *questions.Question
	if outcome == questions.OutcomeApplied {
		shifted := shiftAnswers(session.Answers, position)
		session.Answers = shifted
		session.Queue = questions.InsertAfter(session.Queue, position, followUp)
		session.FollowUpsGenerated = policy.Generated
		inserted = &followUp
		metrics.IncFollowUpGenerated()
	}

	if err := s.Repo.Update(ctx, session); err != nil {
		return AnswerResult{}, err
	}

	return AnswerResult{
		Hints:    hints,
		FollowUp: inserted,
		Session:  session,
	}, nil
}

// generateFollowUp delegates to the LLM; without one configured it falls back
// to the generic deepening prompt so follow-ups still happen.
func (s *Service) generateFollowUp(ctx context.Context, answer questions.Answer, lang questions.Language) (string, error) {
	text, err := s.LLM.GenerateFollowUp(ctx, answer, lang)
	if errors.Is(err, llm.ErrNotConfigured) {
		return questions.FallbackFollowUpPrompt, nil
	}
	return text, err
}

// shiftAnswers moves answer records above position one slot up to track a
// follow-up insertion into the queue.
func shiftAnswers(answers map[int]AnswerRecord, position int) map[int]AnswerRecord {
	out := make(map[int]AnswerRecord, len(answers))
	for pos, rec := range answers {
		if pos > position {
			rec.Position = pos + 1
			out[pos+1] = rec
		} else {
			out[pos] = rec
		}
	}
	return out
}

// Complete scores every answered question, builds the report, stores it on
// the session and appends the interview to the user's history. Completing an
// already completed session returns the stored report.
func (s *Service) Complete(ctx context.Context, userId, sessionID string, isGuest bool) (reports.Report, error) {
	session, err := s.Repo.Get(ctx, userId, sessionID)
	if err != nil {
		return reports.Report{}, err
	}
	if session.Status == StatusCompleted {
		if session.Report != nil {
			return *session.Report, nil
		}
		return reports.Report{}, ErrSessionCompleted
	}
	if len(session.Answers) == 0 {
		return reports.Report{}, ErrNoAnswers
	}

	// Scoring context is best-effort: the documents were required at Start,
	// but a missing one now only weakens the external scorer's prompt.
	resumeText, _ := s.Docs.CurrentText(ctx, userId, documents.KindResume)
	jdText, _ := s.Docs.CurrentText(ctx, userId, documents.KindJobDescription)

	results := make([]evaluation.CalibratedResult, 0, len(session.Answers))
	for _, pos := range session.AnsweredPositions() {
		record := session.Answers[pos]
		question := session.Queue[pos]
		results = append(results, s.scoreAnswer(ctx, question, record.Transcript, resumeText, jdText))
	}

	report := reports.Build(reports.OverallFeedback(reports.OverallScore(results)), results)

	now := time.Now().UTC()
	session.Status = StatusCompleted
	session.Report = &report
	session.CompletedAt = &now
	if err := s.Repo.Update(ctx, session); err != nil {
		metrics.IncInterviewFailed()
		return reports.Report{}, err
	}

	if _, err := s.History.Record(ctx, userId, isGuest, report.OverallScore, len(results)); err != nil {
		telemetry.Error("interviews.history_append", map[string]any{
			"interview_id": session.ID,
			"error":        err.Error(),
		})
	}

	metrics.IncInterviewCompleted()
	telemetry.Info("interviews.completed", map[string]any{
		"interview_id":  session.ID,
		"overall_score": report.OverallScore,
		"answers":       len(results),
	})
	return report, nil
}

// scoreAnswer runs the local rubric, asks the external scorer and blends the
// two. Any scorer failure downgrades to the local result alone.
func (s *Service) scoreAnswer(ctx context.Context, question questions.Question, transcript, resumeText, jdText string) evaluation.CalibratedResult {
	local := s.Evaluator.Evaluate(transcript)

	start := metrics.NowMillis()
	external, err := s.LLM.ScoreAnswer(ctx, llm.ScoreInput{
		Question:       question,
		Transcript:     transcript,
		ResumeText:     resumeText,
		JobDescription: jdText,
	})
	metrics.ObserveScoringDurationMs(metrics.NowMillis() - start)

	var out evaluation.CalibratedResult
	if err != nil {
		if !errors.Is(err, llm.ErrNotConfigured) {
			telemetry.Error("interviews.scoring_fallback", map[string]any{
				"category": string(question.Category),
				"error":    err.Error(),
			})
		}
		metrics.IncScoringFallback()
		out = evaluation.LocalOnly(local)
	} else {
		out = evaluation.Calibrate(external, local)
	}

	out.Category = string(question.Category)
	out.Question = question.Text
	out.Transcript = transcript
	return out
}

// Get returns a session scoped to its owner.
func (s *Service) Get(ctx context.Context, userId, sessionID string) (Session, error) {
	return s.Repo.Get(ctx, userId, sessionID)
}
