package evaluation

import (
	"math"
	"strings"
)

// Blend weights for reconciling the external model score with the local
// evaluation. The external judgment is presumed richer and weighs more, while
// the local score acts as a deterministic guard against a miscalibrated
// scorer. The weights sum to 1.
const (
	ExternalScoreWeight = 0.55
	LocalScoreWeight    = 0.45
)

// Calibrate blends an untrusted external assessment with the local result.
// External feedback and tips win when present; the breakdown, explanation,
// and highlights always come from the local evaluator.
func Calibrate(external ExternalAssessment, local Result) CalibratedResult {
	blended := math.Round(external.Score*ExternalScoreWeight + float64(local.Score)*LocalScoreWeight)

	out := fromLocal(local)
	out.Score = clampScore(int(blended))
	if strings.TrimSpace(external.Feedback) != "" {
		out.Feedback = external.Feedback
	}
	if len(nonEmptyTips(external.ImprovementTips)) > 0 {
		out.ImprovementTips = nonEmptyTips(external.ImprovementTips)
	}
	return out
}

// LocalOnly promotes a local result to a calibrated one without blending.
// This is the fallback mode used when no external scorer is available.
func LocalOnly(local Result) CalibratedResult {
	return fromLocal(local)
}

func fromLocal(local Result) CalibratedResult {
	return CalibratedResult{
		Score:            local.Score,
		Feedback:         local.Feedback,
		ImprovementTips:  local.ImprovementTips,
		RubricBreakdown:  local.RubricBreakdown,
		ScoreExplanation: local.ScoreExplanation,
		Highlights:       local.Highlights,
	}
}

func nonEmptyTips(tips []string) []string {
	out := make([]string, 0, len(tips))
	for _, tip := range tips {
		if strings.TrimSpace(tip) != "" {
			out = append(out, tip)
		}
	}
	return out
}
