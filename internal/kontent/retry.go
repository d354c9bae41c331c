package kontent

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// retryAfterBackOff prefers the server's Retry-After hint over the wrapped
// policy when one was given for the last attempt. The hint is capped at max.
type retryAfterBackOff struct {
	backoff.BackOff
	wait time.Duration
	max  time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	if next == backoff.Stop {
		return next
	}
	if b.wait > 0 {
		if b.max > 0 && b.wait > b.max {
			return b.max
		}
		return b.wait
	}
	return next
}
