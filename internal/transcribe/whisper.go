package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

const whisperURL = "https://api.openai.com/v1/audio/transcriptions"

// WhisperClient implements Transcriber using the OpenAI audio API.
type WhisperClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewWhisperClient constructs a WhisperClient.
func NewWhisperClient(apiKey, model string) (*WhisperClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required for transcription")
	}
	if strings.TrimSpace(model) == "" {
		model = "whisper-1"
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("OPENAI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &WhisperClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: whisperURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Transcribe uploads the audio payload and returns the transcript text.
func (c *WhisperClient) Transcribe(ctx context.Context, fileName string, audio io.Reader) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fileWriter, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fileWriter, audio); err != nil {
		return "", err
	}
	if err := writer.WriteField("model", c.model); err != nil {
		return "", err
	}
	if err := writer.WriteField("response_format", "json"); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("whisper request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("whisper status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var parsed struct {
		Text  string `json:"text"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error,omitempty"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("whisper response parse: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("whisper error: %s", parsed.Error.Message)
	}
	return strings.TrimSpace(parsed.Text), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

var _ Transcriber = (*WhisperClient)(nil)
