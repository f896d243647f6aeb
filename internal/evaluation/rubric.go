package evaluation

import (
	"fmt"
	"strings"
)

const (
	feedbackStrong   = "Strong answer. You communicate ownership and impact clearly; keep anchoring every story in concrete results."
	feedbackBaseline = "Solid foundation. Tighten the structure and back your claims with specifics to push this answer further."
	feedbackWeak     = "This answer needs more structure. Walk through the situation, your task, the actions you took, and the result."
)

const (
	tipSituationTask = "Open with the situation and your specific task so the interviewer has context before you describe what you did."
	tipAction        = "Describe the actions you personally took, using first-person verbs like \"I built\" or \"I led\"."
	tipResult        = "Close with the result: what changed because of your work, and how you know."
	tipMetric        = "Quantify your impact with at least one number, such as a percentage, a duration, or a user count."
	tipLength        = "Expand your answer. Aim for at least a minute of speaking time with enough detail to stand on its own."
	tipFiller        = "Cut filler words like \"um\", \"like\", and \"basically\"; pause silently instead."
	tipNoneNeeded    = "Well structured answer. Keep practicing this level of specificity across different question types."
)

// Evaluator scores transcripts against the rubric. It is stateless apart from
// its detector and safe for concurrent use.
type Evaluator struct {
	Detector Detector
}

// NewEvaluator returns an evaluator backed by the keyword detector.
func NewEvaluator() *Evaluator {
	return &Evaluator{Detector: KeywordDetector{}}
}

// Evaluate scores a single transcript. It never fails: an empty transcript
// yields the minimum score with every improvement tip attached.
func (e *Evaluator) Evaluate(transcript string) Result {
	sig := e.detector().Detect(transcript)
	breakdown := scoreBreakdown(sig)

	raw := breakdown.RawTotal()
	score := clampScore(raw)
	if strings.TrimSpace(transcript) == "" {
		score = MinScore
	}

	return Result{
		Score:            score,
		Feedback:         feedbackFor(score),
		ImprovementTips:  improvementTips(sig),
		RubricBreakdown:  breakdown,
		ScoreExplanation: explainBreakdown(breakdown),
		Highlights:       sig.Highlights,
	}
}

func (e *Evaluator) detector() Detector {
	if e.Detector != nil {
		return e.Detector
	}
	return KeywordDetector{}
}

func scoreBreakdown(sig Signals) RubricBreakdown {
	structure := 4
	if sig.HasSituation {
		structure = 12
	}
	if sig.HasTask {
		structure += 8
	} else {
		structure += 2
	}

	ownership := 8
	if sig.HasAction {
		ownership = CapOwnershipAndAction
	}

	results := 8
	if sig.HasResult {
		results = CapResultsAndImpact
	}

	metrics := 4
	if sig.HasMetric {
		metrics = CapMetricsSpecificity
	}

	penalty := sig.FillerCount * 2
	if penalty > 10 {
		penalty = 10
	}
	clarity := CapClarityAndConciseness - penalty
	if clarity < 6 {
		clarity = 6
	}
	// Length penalties apply after the filler floor and may push below it.
	if sig.WordCount < 35 {
		clarity -= 6
	}
	if sig.WordCount > 260 {
		clarity -= 4
	}

	return RubricBreakdown{
		StructureSTAR:         structure,
		OwnershipAndAction:    ownership,
		ResultsAndImpact:      results,
		MetricsSpecificity:    metrics,
		ClarityAndConciseness: clarity,
	}
}

func improvementTips(sig Signals) []string {
	tips := make([]string, 0, 6)
	if !sig.HasSituation || !sig.HasTask {
		tips = append(tips, tipSituationTask)
	}
	if !sig.HasAction {
		tips = append(tips, tipAction)
	}
	if !sig.HasResult {
		tips = append(tips, tipResult)
	}
	if !sig.HasMetric {
		tips = append(tips, tipMetric)
	}
	if sig.WordCount < 50 {
		tips = append(tips, tipLength)
	}
	if sig.FillerCount > 3 {
		tips = append(tips, tipFiller)
	}
	if len(tips) == 0 {
		tips = append(tips, tipNoneNeeded)
	}
	return tips
}

func feedbackFor(score int) string {
	switch {
	case score >= 75:
		return feedbackStrong
	case score < 50:
		return feedbackWeak
	default:
		return feedbackBaseline
	}
}

func explainBreakdown(b RubricBreakdown) string {
	return fmt.Sprintf(
		"STAR structure %d/%d, ownership and action %d/%d, results and impact %d/%d, metrics specificity %d/%d, clarity and conciseness %d/%d.",
		b.StructureSTAR, CapStructureSTAR,
		b.OwnershipAndAction, CapOwnershipAndAction,
		b.ResultsAndImpact, CapResultsAndImpact,
		b.MetricsSpecificity, CapMetricsSpecificity,
		b.ClarityAndConciseness, CapClarityAndConciseness,
	)
}
