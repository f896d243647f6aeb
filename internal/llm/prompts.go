package llm

import _ "embed"

var (
	//go:embed prompts/questions_v1.txt
	promptQuestionsV1 string
	//go:embed prompts/scoring_v1.txt
	promptScoringV1 string
	//go:embed prompts/rewrite_v1.txt
	promptRewriteV1 string
	//go:embed prompts/followup_v1.txt
	promptFollowUpV1 string
)

// PromptTemplate returns the template text for a named prompt and whether
// the name was recognized.
func PromptTemplate(name string) (string, bool) {
	switch name {
	case "questions_v1":
		return promptQuestionsV1, true
	case "scoring_v1":
		return promptScoringV1, true
	case "rewrite_v1":
		return promptRewriteV1, true
	case "followup_v1":
		return promptFollowUpV1, true
	default:
		return "", false
	}
}
