package evaluation

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

const strongTranscript = "I led the migration project. I designed the rollback plan and reduced downtime by 40% and delivered it a week early, avoiding stuff going wrong."

func TestEvaluateEmptyTranscript(t *testing.T) {
	result := NewEvaluator().Evaluate("")

	if result.Score != MinScore {
		t.Fatalf("score = %d, want %d", result.Score, MinScore)
	}
	wantTips := []string{tipSituationTask, tipAction, tipResult, tipMetric, tipLength}
	if !reflect.DeepEqual(result.ImprovementTips, wantTips) {
		t.Fatalf("tips = %v, want %v", result.ImprovementTips, wantTips)
	}
	if result.Feedback != feedbackWeak {
		t.Fatalf("feedback = %q, want weak tier", result.Feedback)
	}
}

func TestEvaluateStrongTranscript(t *testing.T) {
	result := NewEvaluator().Evaluate(strongTranscript)

	b := result.RubricBreakdown
	if b.OwnershipAndAction != CapOwnershipAndAction {
		t.Fatalf("ownership = %d, want %d", b.OwnershipAndAction, CapOwnershipAndAction)
	}
	if b.ResultsAndImpact != CapResultsAndImpact {
		t.Fatalf("results = %d, want %d", b.ResultsAndImpact, CapResultsAndImpact)
	}
	if b.MetricsSpecificity != CapMetricsSpecificity {
		t.Fatalf("metrics = %d, want %d", b.MetricsSpecificity, CapMetricsSpecificity)
	}
	// "project" counts as situation context but there is no task keyword.
	if b.StructureSTAR >= CapStructureSTAR {
		t.Fatalf("structure = %d, want below cap %d", b.StructureSTAR, CapStructureSTAR)
	}
	if !containsString(result.Highlights.WeakPatterns, "stuff") {
		t.Fatalf("weak patterns = %v, want %q included", result.Highlights.WeakPatterns, "stuff")
	}
	if result.Feedback != feedbackStrong {
		t.Fatalf("feedback = %q, want strong tier", result.Feedback)
	}
}

func TestEvaluateScoreBounds(t *testing.T) {
	transcripts := []string{
		"",
		"no keywords here at all",
		strongTranscript,
		strings.Repeat("word ", 300),
		"At the time the project goal was clear. I built and implemented the fix. The result improved conversion by 25% for 1000 users. " + strings.Repeat("detail ", 30),
	}
	ev := NewEvaluator()
	for _, transcript := range transcripts {
		result := ev.Evaluate(transcript)
		if result.Score < MinScore || result.Score > MaxScore {
			t.Fatalf("score %d out of [%d,%d] for %q", result.Score, MinScore, MaxScore, transcript)
		}
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	ev := NewEvaluator()
	first := ev.Evaluate(strongTranscript)
	second := ev.Evaluate(strongTranscript)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("evaluation is not idempotent")
	}
}

func TestScoreBreakdownClarityPenalties(t *testing.T) {
	cases := []struct {
		name string
		sig  Signals
		want int
	}{
		{name: "clean", sig: Signals{WordCount: 100}, want: 20},
		{name: "two_fillers", sig: Signals{WordCount: 100, FillerCount: 2}, want: 16},
		{name: "filler_floor", sig: Signals{WordCount: 100, FillerCount: 9}, want: 10},
		{name: "short_answer", sig: Signals{WordCount: 20}, want: 14},
		{name: "long_answer", sig: Signals{WordCount: 300}, want: 16},
		{name: "floor_then_short_penalty_goes_below_six", sig: Signals{WordCount: 20, FillerCount: 9}, want: 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scoreBreakdown(tc.sig).ClarityAndConciseness
			if got != tc.want {
				t.Fatalf("clarity = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestScoreExplanationMatchesRawTotal(t *testing.T) {
	transcripts := []string{
		"",
		strongTranscript,
		"Um, like, basically I did some things and stuff happened, you know.",
	}
	ev := NewEvaluator()
	for _, transcript := range transcripts {
		result := ev.Evaluate(transcript)
		b := result.RubricBreakdown
		for _, fragment := range []string{
			fragment(b.StructureSTAR, CapStructureSTAR),
			fragment(b.OwnershipAndAction, CapOwnershipAndAction),
			fragment(b.ResultsAndImpact, CapResultsAndImpact),
			fragment(b.MetricsSpecificity, CapMetricsSpecificity),
			fragment(b.ClarityAndConciseness, CapClarityAndConciseness),
		} {
			if !strings.Contains(result.ScoreExplanation, fragment) {
				t.Fatalf("explanation %q missing %q", result.ScoreExplanation, fragment)
			}
		}
	}
}

func TestImprovementTipsAdditive(t *testing.T) {
	// A transcript with a situation and task but nothing else still collects
	// every remaining tip.
	sig := KeywordDetector{}.Detect("At the time my task was unclear and, um, like, you know, basically, sort of hard anyway.")
	tips := improvementTips(sig)
	want := []string{tipAction, tipResult, tipMetric, tipLength, tipFiller}
	if !reflect.DeepEqual(tips, want) {
		t.Fatalf("tips = %v, want %v", tips, want)
	}
}

func TestImprovementTipsPositive(t *testing.T) {
	sig := Signals{
		HasSituation: true,
		HasTask:      true,
		HasAction:    true,
		HasResult:    true,
		HasMetric:    true,
		WordCount:    120,
	}
	tips := improvementTips(sig)
	if len(tips) != 1 || tips[0] != tipNoneNeeded {
		t.Fatalf("tips = %v, want only the positive message", tips)
	}
}

func fragment(value, limit int) string {
	return fmt.Sprintf("%d/%d", value, limit)
}
