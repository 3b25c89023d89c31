package service

import (
	"context"
	"errors"
)

// ErrLoginRateLimited is returned when an identifier or address has exceeded
// its sign-in attempt budget within the cooldown window.
var ErrLoginRateLimited = errors.New("login rate limited")

// LoginLimiter throttles credential-guessing against the sign-in endpoint.
// Implementations fail open when the backing store is unavailable; throttling
// is protection, not a correctness requirement.
type LoginLimiter interface {
	// Enforce counts one attempt for the email/IP pair and returns
	// ErrLoginRateLimited when either budget is exceeded.
	Enforce(ctx context.Context, email, ip string) error
}
