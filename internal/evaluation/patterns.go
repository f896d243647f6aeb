package evaluation

import (
	"regexp"
	"strings"
)

const maxHighlights = 10

// Signals are the pattern-detector outputs for one transcript. They are a
// pure function of the text; no evaluator state leaks into them.
type Signals struct {
	HasSituation bool
	HasTask      bool
	HasAction    bool
	HasResult    bool
	HasMetric    bool
	FillerCount  int
	WordCount    int
	Highlights   Highlights
}

// Detector extracts Signals from a transcript. The keyword implementation is
// deliberately simplistic pattern matching; the interface exists so a
// stronger detector can replace it without touching the scoring contract.
type Detector interface {
	Detect(transcript string) Signals
}

var (
	situationRe = regexp.MustCompile(`\b(situation|context|when|at the time|project)\b`)
	taskRe      = regexp.MustCompile(`\b(task|goal|objective|responsible)\b`)
	actionRe    = regexp.MustCompile(`\b(did|built|led|implemented|designed|debugged|created|improved|migrated|optimized)\b`)
	resultRe    = regexp.MustCompile(`\b(result|outcome|impact|improved|reduced|increased|saved|delivered|launched)\b`)
	metricRe    = regexp.MustCompile(`\b\d+(?:\.\d+)?\s*(?:%|ms\b|secs?\b|minutes?\b|hours?\b|days?\b|weeks?\b|months?\b|users\b|customers\b|tickets\b|bugs\b|k\b|m\b)`)
	ownershipRe = regexp.MustCompile(`\bi\s+(?:did|built|led|implemented|designed|debugged|created|improved|migrated|optimized)\b`)
	fillerRe    = regexp.MustCompile(`\b(um|uh|like|you know|basically|kind of|sort of)\b`)
	vagueRe     = regexp.MustCompile(`\b(stuff|things|somehow|maybe|probably|etc)\b`)
)

// KeywordDetector is the default regex/keyword detector.
type KeywordDetector struct{}

// Detect runs all detectors over the lower-cased transcript.
func (KeywordDetector) Detect(transcript string) Signals {
	lower := strings.ToLower(transcript)

	fillers := fillerRe.FindAllString(lower, -1)
	metrics := metricRe.FindAllString(lower, -1)
	ownership := ownershipRe.FindAllString(lower, -1)
	outcomes := resultRe.FindAllString(lower, -1)
	vague := vagueRe.FindAllString(lower, -1)

	strong := make([]string, 0, len(metrics)+len(ownership)+len(outcomes))
	strong = append(strong, metrics...)
	strong = append(strong, ownership...)
	strong = append(strong, outcomes...)

	weak := make([]string, 0, len(fillers)+len(vague))
	weak = append(weak, fillers...)
	weak = append(weak, vague...)

	return Signals{
		HasSituation: situationRe.MatchString(lower),
		HasTask:      taskRe.MatchString(lower),
		HasAction:    actionRe.MatchString(lower),
		HasResult:    resultRe.MatchString(lower),
		HasMetric:    metricRe.MatchString(lower),
		FillerCount:  len(fillers),
		WordCount:    len(strings.Fields(transcript)),
		Highlights: Highlights{
			StrongPatterns: dedupeCapped(strong, maxHighlights),
			WeakPatterns:   dedupeCapped(weak, maxHighlights),
			MetricsCount:   len(metrics),
			OwnershipCount: len(ownership),
			FillerCount:    len(fillers),
		},
	}
}

func dedupeCapped(items []string, limit int) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		out = append(out, trimmed)
		if len(out) == limit {
			break
		}
	}
	return out
}
