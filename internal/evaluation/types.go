package evaluation

// Dimension caps for the rubric. Their sum is 102, which leaves the raw score
// some headroom before it is clamped into [MinScore, MaxScore].
const (
	CapStructureSTAR         = 20
	CapOwnershipAndAction    = 22
	CapResultsAndImpact      = 22
	CapMetricsSpecificity    = 18
	CapClarityAndConciseness = 20
)

// Score bounds applied to every evaluated and calibrated score.
const (
	MinScore = 18
	MaxScore = 94
)

// RubricBreakdown holds the per-dimension sub-scores for one transcript.
type RubricBreakdown struct {
	StructureSTAR         int `json:"structureStar"`
	OwnershipAndAction    int `json:"ownershipAndAction"`
	ResultsAndImpact      int `json:"resultsAndImpact"`
	MetricsSpecificity    int `json:"metricsSpecificity"`
	ClarityAndConciseness int `json:"clarityAndConciseness"`
}

// RawTotal returns the unclamped sum of all dimension values.
func (b RubricBreakdown) RawTotal() int {
	return b.StructureSTAR + b.OwnershipAndAction + b.ResultsAndImpact + b.MetricsSpecificity + b.ClarityAndConciseness
}

// Highlights captures the literal substrings that drove the evaluation,
// recomputed per transcript.
type Highlights struct {
	StrongPatterns []string `json:"strongPatterns"`
	WeakPatterns   []string `json:"weakPatterns"`
	MetricsCount   int      `json:"metricsCount"`
	OwnershipCount int      `json:"ownershipCount"`
	FillerCount    int      `json:"fillerCount"`
}

// Result is the local evaluator's verdict for one transcript. It is a plain
// value and is never mutated after Evaluate returns it.
type Result struct {
	Score            int             `json:"score"`
	Feedback         string          `json:"feedback"`
	ImprovementTips  []string        `json:"improvementTips"`
	RubricBreakdown  RubricBreakdown `json:"rubricBreakdown"`
	ScoreExplanation string          `json:"scoreExplanation"`
	Highlights       Highlights      `json:"highlights"`
}

// ExternalAssessment is the untrusted, model-provided judgment for one answer.
// A missing or non-numeric score arrives here as zero.
type ExternalAssessment struct {
	Score           float64  `json:"score"`
	Feedback        string   `json:"feedback"`
	ImprovementTips []string `json:"improvementTips"`
}

// CalibratedResult is the final per-answer verdict after the external score
// has been blended with (or replaced by) the local evaluation.
type CalibratedResult struct {
	Category         string          `json:"category"`
	Question         string          `json:"question"`
	Transcript       string          `json:"transcript"`
	Score            int             `json:"score"`
	Feedback         string          `json:"feedback"`
	ImprovementTips  []string        `json:"improvementTips"`
	RubricBreakdown  RubricBreakdown `json:"rubricBreakdown"`
	ScoreExplanation string          `json:"scoreExplanation"`
	Highlights       Highlights      `json:"highlights"`
}

func clampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
