package documents

import "errors"

var (
	// ErrNotFound indicates no document matched the lookup.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the request payload failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
