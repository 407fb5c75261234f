package middleware

import "errors"

// ErrRateLimited is reported by the rate-limit layer's readiness check when
// the token bucket is exhausted.
var ErrRateLimited = errors.New("rate limit exceeded")
