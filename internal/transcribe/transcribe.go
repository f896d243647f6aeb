package transcribe

import (
	"context"
	"errors"
	"io"
)

// Transcriber converts recorded speech into a transcript. Unlike question
// generation and scoring there is no local fallback here: an interview
// cannot proceed without the candidate's words.
type Transcriber interface {
	Transcribe(ctx context.Context, fileName string, audio io.Reader) (string, error)
}

// ErrNotConfigured is returned when no transcription provider is wired.
var ErrNotConfigured = errors.New("transcription not configured")

// Disabled is the Transcriber used when no provider is configured.
type Disabled struct{}

func (Disabled) Transcribe(ctx context.Context, fileName string, audio io.Reader) (string, error) {
	_ = ctx
	_ = fileName
	_ = audio
	return "", ErrNotConfigured
}

var _ Transcriber = Disabled{}
