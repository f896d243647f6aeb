package usage

import "errors"

// ErrLimitReached indicates the user exhausted their weekly interview quota.
var ErrLimitReached = errors.New("limit reached")
