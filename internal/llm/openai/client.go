package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"interview-backend/internal/evaluation"
	"interview-backend/internal/llm"
	"interview-backend/internal/questions"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// Client implements llm.Client using OpenAI Chat Completions.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new OpenAI client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for OpenAI")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("OPENAI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    *float32       `json:"temperature,omitempty"`
	ResponseFormat responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// GenerateQuestions asks the model for a tailored question set.
func (c *Client) GenerateQuestions(ctx context.Context, input llm.GenerateInput) ([]questions.Question, error) {
	raw, err := c.completeJSON(ctx, "questions", buildQuestionsPrompt(input))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Questions []struct {
			Category string `json:"category"`
			Text     string `json:"text"`
		} `json:"questions"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("openai questions parse: %w", err)
	}
	if len(parsed.Questions) == 0 {
		return nil, fmt.Errorf("openai returned no questions")
	}

	out := make([]questions.Question, 0, len(parsed.Questions))
	for _, q := range parsed.Questions {
		text := strings.TrimSpace(q.Text)
		if text == "" {
			continue
		}
		out = append(out, questions.Question{
			Category: questions.NormalizeCategory(q.Category),
			Text:     text,
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("openai returned no usable questions")
	}
	return out, nil
}

// RewriteQuestions rewrites a batch of questions into the target language.
// The result preserves order, categories and batch length.
func (c *Client) RewriteQuestions(ctx context.Context, lang questions.Language, batch []questions.Question) ([]questions.Question, error) {
	if len(batch) == 0 {
		return nil, nil
	}
	raw, err := c.completeJSON(ctx, "rewrite", buildRewritePrompt(lang, batch))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("openai rewrite parse: %w", err)
	}
	if len(parsed.Questions) != len(batch) {
		return nil, fmt.Errorf("openai rewrite returned %d questions, want %d", len(parsed.Questions), len(batch))
	}

	out := make([]questions.Question, len(batch))
	for i, q := range batch {
		out[i] = q
		if text := strings.TrimSpace(parsed.Questions[i]); text != "" {
			out[i].Text = text
		}
	}
	return out, nil
}

// GenerateFollowUp asks the model for a single probing follow-up question.
func (c *Client) GenerateFollowUp(ctx context.Context, answer questions.Answer, lang questions.Language) (string, error) {
	raw, err := c.completeJSON(ctx, "followup", buildFollowUpPrompt(answer, lang))
	if err != nil {
		return "", err
	}

	var parsed struct {
		FollowUp string `json:"followUp"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("openai followup parse: %w", err)
	}
	text := strings.TrimSpace(parsed.FollowUp)
	if text == "" {
		return "", fmt.Errorf("openai returned empty follow-up")
	}
	return text, nil
}

// ScoreAnswer asks the model to assess a single transcript.
func (c *Client) ScoreAnswer(ctx context.Context, input llm.ScoreInput) (evaluation.ExternalAssessment, error) {
	raw, err := c.completeJSON(ctx, "scoring", buildScoringPrompt(input))
	if err != nil {
		return evaluation.ExternalAssessment{}, err
	}

	var parsed evaluation.ExternalAssessment
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return evaluation.ExternalAssessment{}, fmt.Errorf("openai scoring parse: %w", err)
	}
	if parsed.Score < 0 || parsed.Score > 100 {
		return evaluation.ExternalAssessment{}, fmt.Errorf("openai score %.1f out of range", parsed.Score)
	}
	return parsed, nil
}

// completeJSON runs one chat completion and retries once through the
// fix-JSON prompt when the model returns malformed output.
func (c *Client) completeJSON(ctx context.Context, kind string, messages []Message) (json.RawMessage, error) {
	raw, usage, err := c.completeOnce(ctx, messages)
	if err != nil {
		return nil, err
	}
	logUsage(c.model, kind, usage)

	if json.Valid(raw) {
		return raw, nil
	}

	raw, usage, err = c.completeOnce(ctx, buildFixPrompt(raw))
	if err != nil {
		return nil, err
	}
	logUsage(c.model, kind+"_fix", usage)
	if !json.Valid(raw) {
		return nil, fmt.Errorf("invalid JSON from OpenAI")
	}
	return raw, nil
}

func (c *Client) completeOnce(ctx context.Context, messages []Message) (json.RawMessage, *chatResponseUsage, error) {
	temp := float32(0)
	reqMessages := make([]chatMessage, 0, len(messages))
	for _, m := range messages {
		reqMessages = append(reqMessages, chatMessage{Role: m.Role, Content: m.Content})
	}
	reqBody := chatRequest{
		Model:    c.model,
		Messages: reqMessages,
		ResponseFormat: responseFormat{
			Type: "json_object",
		},
	}
	reqBody.Temperature = &temp
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return nil, nil, fmt.Errorf("openai request timeout: %w", err)
		}
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, nil, fmt.Errorf("openai response parse: %w", err)
	}
	if parsed.Error != nil {
		return nil, nil, fmt.Errorf("openai error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if len(parsed.Choices) == 0 {
		return nil, nil, fmt.Errorf("openai response missing choices")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return nil, nil, fmt.Errorf("openai response empty content")
	}
	return json.RawMessage(content), toUsage(parsed.Usage), nil
}

type chatResponseUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

func toUsage(raw *struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}) *chatResponseUsage {
	if raw == nil {
		return nil
	}
	return &chatResponseUsage{
		PromptTokens:     raw.PromptTokens,
		CompletionTokens: raw.CompletionTokens,
		TotalTokens:      raw.TotalTokens,
	}
}

func logUsage(model, kind string, usage *chatResponseUsage) {
	if usage == nil {
		log.Printf("llm response model=%s kind=%s", model, kind)
		return
	}
	log.Printf("llm response model=%s kind=%s prompt_tokens=%d completion_tokens=%d total_tokens=%d",
		model, kind, usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens)
}

var _ llm.Client = (*Client)(nil)
