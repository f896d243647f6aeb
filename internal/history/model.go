package history

import "time"

// Retention caps. Guests keep a shorter trail than signed-in accounts.
const (
	AccountLimit = 40
	GuestLimit   = 20
)

// Entry is one completed interview in a user's practice trail.
type Entry struct {
	ID            string
	UserID        string
	OverallScore  int
	QuestionCount int
	CreatedAt     time.Time
}

// LimitFor returns the retention cap for the identity type.
func LimitFor(isGuest bool) int {
	if isGuest {
		return GuestLimit
	}
	return AccountLimit
}
