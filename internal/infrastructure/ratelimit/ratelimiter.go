// Package ratelimit counts requests per client key. The Redis limiter shares
// its counters across instances; the local limiter is used when Redis is
// disabled.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}
