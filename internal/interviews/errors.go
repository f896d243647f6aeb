package interviews

import "errors"

var (
	// ErrNotFound indicates no session matched the lookup.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the request payload failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingResume indicates the user has not uploaded a resume yet.
	ErrMissingResume = errors.New("resume required")

	// ErrMissingJobDescription indicates no job description was uploaded.
	ErrMissingJobDescription = errors.New("job description required")

	// ErrSessionCompleted indicates a write against a finished session.
	ErrSessionCompleted = errors.New("session already completed")

	// ErrNoAnswers indicates completion was requested with nothing answered.
	ErrNoAnswers = errors.New("no answers recorded")

	// ErrQuotaExceeded indicates the weekly interview quota is spent.
	ErrQuotaExceeded = errors.New("interview quota exceeded")
)
