package questions

import "strings"

// Category classifies an interview question.
type Category string

const (
	CategoryBehavioral   Category = "Behavioral"
	CategoryTechnical    Category = "Technical"
	CategorySituational  Category = "Situational"
	CategoryMotivational Category = "Motivational"
)

// Categories lists every category in presentation order.
func Categories() []Category {
	return []Category{CategoryBehavioral, CategoryTechnical, CategorySituational, CategoryMotivational}
}

// NormalizeCategory maps free-form category text onto the known set.
// Unknown values default to Behavioral.
func NormalizeCategory(raw string) Category {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "technical":
		return CategoryTechnical
	case "situational":
		return CategorySituational
	case "motivational":
		return CategoryMotivational
	default:
		return CategoryBehavioral
	}
}

// Question is one interview question. Immutable once created; follow-ups are
// inserted immediately after the question that spawned them.
type Question struct {
	Category   Category `json:"category"`
	Text       string   `json:"text"`
	IsFollowUp bool     `json:"isFollowUp"`
}

// Answer pairs a question with the candidate's finalized transcript.
type Answer struct {
	Category   Category `json:"category"`
	Question   string   `json:"question"`
	Transcript string   `json:"transcript"`
	IsFollowUp bool     `json:"isFollowUp"`
}

// Outcome reports how a best-effort enrichment step (language rewrite,
// follow-up generation) concluded. These paths must never fail the request,
// so callers branch on the outcome instead of an error.
type Outcome string

const (
	OutcomeApplied Outcome = "applied"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)
