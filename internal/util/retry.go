// ABOUTME: Backoff helper for retried OpenAI embedding calls
// ABOUTME: Exponential delay with jitter, capped at 30 seconds
package util

import (
	"math/rand/v2"
	"time"
)

const maxBackoff = 30 * time.Second

// CalculateBackoff returns the delay before the given retry attempt.
// The base delay doubles each attempt, capped at 30 seconds, with random
// jitter of up to 25% in either direction.
func CalculateBackoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	if baseDelay <= 0 {
		baseDelay = time.Second
	}
	if attempt > 30 {
		attempt = 30
	}

	backoff := baseDelay << uint(attempt)
	if backoff > maxBackoff || backoff < 0 {
		backoff = maxBackoff
	}

	jitter := time.Duration(rand.Int64N(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}
