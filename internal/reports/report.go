package reports

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"interview-backend/internal/evaluation"
)

const keepPracticingPlan = "Keep practicing. Run another mock interview to build a per-category picture of your strengths."

const (
	overallStrong   = "Strong interview. Your answers carry ownership and concrete results; keep that bar across every category."
	overallBaseline = "Solid interview with room to grow. Tighten your story structure and lead with outcomes."
	overallWeak     = "This interview needs work. Focus on the STAR structure: situation, task, action, result."
)

// Scores at or above this tier count as strong and are left out of the
// practice plan.
const strongScoreThreshold = 75

// Report is the final verdict for one completed interview. It is created
// once and never mutated afterwards.
type Report struct {
	OverallScore    int                           `json:"overallScore"`
	OverallFeedback string                        `json:"overallFeedback"`
	NextStepPlan    string                        `json:"nextStepPlan"`
	Results         []evaluation.CalibratedResult `json:"results"`
}

// Build assembles a report from per-answer calibrated results.
func Build(overallFeedback string, results []evaluation.CalibratedResult) Report {
	return Report{
		OverallScore:    OverallScore(results),
		OverallFeedback: overallFeedback,
		NextStepPlan:    NextStepPlan(results),
		Results:         results,
	}
}

// OverallScore is the rounded mean of all calibrated scores. An empty result
// set scores zero; callers reject interviews with no answers before this.
func OverallScore(results []evaluation.CalibratedResult) int {
	if len(results) == 0 {
		return 0
	}
	sum := 0
	for _, r := range results {
		sum += r.Score
	}
	return int(math.Round(float64(sum) / float64(len(results))))
}

// OverallFeedback maps an overall score onto one of three verdict tiers.
func OverallFeedback(score int) string {
	switch {
	case score >= strongScoreThreshold:
		return overallStrong
	case score < 50:
		return overallWeak
	default:
		return overallBaseline
	}
}

// NextStepPlan names the categories behind the three lowest-scoring answers,
// weakest first, as a practice recommendation. Strong answers never make the
// plan, so a small interview does not recommend its best category.
func NextStepPlan(results []evaluation.CalibratedResult) string {
	weak := make([]evaluation.CalibratedResult, 0, len(results))
	for _, r := range results {
		if r.Score < strongScoreThreshold {
			weak = append(weak, r)
		}
	}
	if len(weak) == 0 {
		return keepPracticingPlan
	}

	sorted := append([]evaluation.CalibratedResult(nil), weak...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score < sorted[j].Score
	})
	if len(sorted) > 3 {
		sorted = sorted[:3]
	}

	seen := make(map[string]bool, len(sorted))
	categories := make([]string, 0, len(sorted))
	for _, r := range sorted {
		category := strings.TrimSpace(r.Category)
		if category == "" || seen[category] {
			continue
		}
		seen[category] = true
		categories = append(categories, category)
	}
	if len(categories) == 0 {
		return keepPracticingPlan
	}

	return fmt.Sprintf(
		"Focus your next practice sessions on %s questions. Rehearse one STAR story per category and record yourself answering it.",
		joinCategories(categories),
	)
}

func joinCategories(categories []string) string {
	switch len(categories) {
	case 1:
		return categories[0]
	case 2:
		return categories[0] + " and " + categories[1]
	default:
		return strings.Join(categories[:len(categories)-1], ", ") + ", and " + categories[len(categories)-1]
	}
}
