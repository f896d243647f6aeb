package documents

import "time"

// Kind distinguishes the two document roles an interview session needs.
type Kind string

const (
	KindResume         Kind = "resume"
	KindJobDescription Kind = "job_description"
)

// NormalizeKind maps loose client input onto a known Kind.
func NormalizeKind(raw string) (Kind, bool) {
	switch Kind(raw) {
	case KindResume:
		return KindResume, true
	case KindJobDescription:
		return KindJobDescription, true
	case "jd", "job-description", "jobDescription":
		return KindJobDescription, true
	default:
		return "", false
	}
}

// Document represents an uploaded document owned by a user. The extracted
// plain text is stored alongside the metadata so interview setup never has
// to re-parse the original file.
type Document struct {
	ID            string
	UserID        string
	Kind          Kind
	FileName      string
	MimeType      string
	SizeBytes     int64
	StorageKey    string
	ExtractedText string
	CreatedAt     time.Time
}
