package evaluation

const (
	hintContext   = "Set the scene before diving in: one sentence of situation or project context grounds the rest of your answer."
	hintOwnership = "Make your own role explicit. Say \"I built\" or \"I led\" rather than describing what the team did."
	hintOutcome   = "Mention the outcome, ideally with a number. What improved, and by how much?"
	hintFiller    = "Watch the filler words. A short pause sounds more confident than \"um\" or \"like\"."
	hintLength    = "This draft is short. Add detail about what you did and why it mattered."
	hintPositive  = "Good draft. It has context, ownership, and an outcome. Record it when you are ready."
)

const coachFillerThreshold = 2

// CoachingHints produces advisory STAR-structure feedback for a draft
// transcript. Hints run before scoring and never influence the score.
func CoachingHints(transcript string) []string {
	return coachingHints(KeywordDetector{}, transcript)
}

func coachingHints(detector Detector, transcript string) []string {
	sig := detector.Detect(transcript)

	hints := make([]string, 0, 5)
	if !sig.HasSituation {
		hints = append(hints, hintContext)
	}
	if sig.Highlights.OwnershipCount == 0 {
		hints = append(hints, hintOwnership)
	}
	if !sig.HasResult && !sig.HasMetric {
		hints = append(hints, hintOutcome)
	}
	if sig.FillerCount > coachFillerThreshold {
		hints = append(hints, hintFiller)
	}
	if sig.WordCount < 45 {
		hints = append(hints, hintLength)
	}
	if len(hints) == 0 {
		hints = append(hints, hintPositive)
	}
	return hints
}
