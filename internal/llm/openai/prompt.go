package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"interview-backend/internal/llm"
	"interview-backend/internal/questions"
)

// Message represents an OpenAI chat message.
type Message struct {
	Role    string
	Content string
}

const (
	systemPromptStrict  = "You are a mock interview engine. Respond with JSON only. Output must match the schema exactly."
	systemPromptFixJSON = "You are a JSON repair tool. Return only valid JSON that matches the schema exactly."
)

func buildQuestionsPrompt(input llm.GenerateInput) []Message {
	developer := renderTemplate("questions_v1", input.Language, input.JobDescription)

	var counts strings.Builder
	for _, cat := range questions.Categories() {
		if n := input.Counts[cat]; n > 0 {
			fmt.Fprintf(&counts, "- %s: %d\n", cat, n)
		}
	}

	jd := input.JobDescription
	if strings.TrimSpace(jd) == "" {
		jd = "N/A"
	}
	user := fmt.Sprintf("Questions per category:\n%s\nResume Text:\n%s\n\nJob Description:\n%s",
		counts.String(), input.ResumeText, jd)

	return []Message{
		{Role: "system", Content: systemPromptStrict},
		{Role: "developer", Content: developer},
		{Role: "user", Content: user},
	}
}

func buildRewritePrompt(lang questions.Language, batch []questions.Question) []Message {
	developer := renderTemplate("rewrite_v1", lang, "")

	texts := make([]string, 0, len(batch))
	for _, q := range batch {
		texts = append(texts, q.Text)
	}
	payload, _ := json.Marshal(texts)

	return []Message{
		{Role: "system", Content: systemPromptStrict},
		{Role: "developer", Content: developer},
		{Role: "user", Content: string(payload)},
	}
}

func buildFollowUpPrompt(answer questions.Answer, lang questions.Language) []Message {
	developer := renderTemplate("followup_v1", lang, "")
	user := fmt.Sprintf("Question:\n%s\n\nAnswer Transcript:\n%s", answer.Question, answer.Transcript)

	return []Message{
		{Role: "system", Content: systemPromptStrict},
		{Role: "developer", Content: developer},
		{Role: "user", Content: user},
	}
}

func buildScoringPrompt(input llm.ScoreInput) []Message {
	developer := renderTemplate("scoring_v1", questions.DefaultLanguage, input.JobDescription)

	var user strings.Builder
	fmt.Fprintf(&user, "Question (%s):\n%s\n\nAnswer Transcript:\n%s", input.Question.Category, input.Question.Text, input.Transcript)
	if strings.TrimSpace(input.ResumeText) != "" {
		fmt.Fprintf(&user, "\n\nResume Text:\n%s", input.ResumeText)
	}
	if strings.TrimSpace(input.JobDescription) != "" {
		fmt.Fprintf(&user, "\n\nJob Description:\n%s", input.JobDescription)
	}

	return []Message{
		{Role: "system", Content: systemPromptStrict},
		{Role: "developer", Content: developer},
		{Role: "user", Content: user.String()},
	}
}

func buildFixPrompt(raw []byte) []Message {
	return []Message{
		{Role: "system", Content: systemPromptFixJSON},
		{Role: "user", Content: fmt.Sprintf("Fix this JSON to match the schema exactly. Output JSON only:\n%s", string(raw))},
	}
}

func renderTemplate(name string, lang questions.Language, jobDescription string) string {
	template, _ := llm.PromptTemplate(name)

	jobDescriptionProvided := "true"
	if strings.TrimSpace(jobDescription) == "" {
		jobDescriptionProvided = "false"
	}

	replacer := strings.NewReplacer(
		"{{LANGUAGE}}", string(lang),
		"{{JOB_DESCRIPTION_PROVIDED}}", jobDescriptionProvided,
	)
	return replacer.Replace(template)
}
