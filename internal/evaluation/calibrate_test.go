package evaluation

import (
	"math"
	"reflect"
	"testing"
)

func TestCalibrateBlendedScore(t *testing.T) {
	cases := []struct {
		name     string
		external float64
		local    int
		want     int
	}{
		{name: "mid_range", external: 80, local: 60, want: 71},
		{name: "external_absent_defaults_zero", external: 0, local: 60, want: 27},
		{name: "clamped_low", external: 0, local: 18, want: MinScore},
		{name: "clamped_high", external: 100, local: 94, want: MaxScore},
		{name: "rounding", external: 61, local: 58, want: 60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Calibrate(ExternalAssessment{Score: tc.external}, Result{Score: tc.local})
			want := int(math.Round(tc.external*ExternalScoreWeight + float64(tc.local)*LocalScoreWeight))
			if want < MinScore {
				want = MinScore
			}
			if want > MaxScore {
				want = MaxScore
			}
			if got.Score != tc.want || got.Score != want {
				t.Fatalf("score = %d, want %d", got.Score, tc.want)
			}
		})
	}
}

func TestCalibrateFeedbackFallback(t *testing.T) {
	local := Result{
		Score:           60,
		Feedback:        "local feedback",
		ImprovementTips: []string{"local tip"},
	}

	blended := Calibrate(ExternalAssessment{Score: 70, Feedback: "external feedback", ImprovementTips: []string{"external tip"}}, local)
	if blended.Feedback != "external feedback" {
		t.Fatalf("feedback = %q, want external", blended.Feedback)
	}
	if !reflect.DeepEqual(blended.ImprovementTips, []string{"external tip"}) {
		t.Fatalf("tips = %v, want external", blended.ImprovementTips)
	}

	fallback := Calibrate(ExternalAssessment{Score: 70, Feedback: "  ", ImprovementTips: []string{" ", ""}}, local)
	if fallback.Feedback != "local feedback" {
		t.Fatalf("feedback = %q, want local fallback", fallback.Feedback)
	}
	if !reflect.DeepEqual(fallback.ImprovementTips, []string{"local tip"}) {
		t.Fatalf("tips = %v, want local fallback", fallback.ImprovementTips)
	}
}

func TestCalibrateLocalFieldsAlwaysKept(t *testing.T) {
	local := NewEvaluator().Evaluate(strongTranscript)
	blended := Calibrate(ExternalAssessment{Score: 85, Feedback: "external"}, local)

	if !reflect.DeepEqual(blended.RubricBreakdown, local.RubricBreakdown) {
		t.Fatalf("breakdown must come from the local evaluator")
	}
	if blended.ScoreExplanation != local.ScoreExplanation {
		t.Fatalf("score explanation must come from the local evaluator")
	}
	if !reflect.DeepEqual(blended.Highlights, local.Highlights) {
		t.Fatalf("highlights must come from the local evaluator")
	}
}

func TestLocalOnlyKeepsScore(t *testing.T) {
	local := NewEvaluator().Evaluate(strongTranscript)
	got := LocalOnly(local)
	if got.Score != local.Score {
		t.Fatalf("score = %d, want %d", got.Score, local.Score)
	}
	if got.Feedback != local.Feedback {
		t.Fatalf("feedback = %q, want %q", got.Feedback, local.Feedback)
	}
}
