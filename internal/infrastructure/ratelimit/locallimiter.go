package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	localSweepInterval = 5 * time.Minute
	localIdleTTL       = 10 * time.Minute
)

type keyLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalRateLimiter keeps one token bucket per key in process memory.
// Call Stop to end the idle-key sweeper.
type LocalRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*keyLimiter
	r        rate.Limit
	burst    int

	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewLocalRateLimiter(requestsPerMinute int) *LocalRateLimiter {
	l := &LocalRateLimiter{
		limiters: make(map[string]*keyLimiter),
		r:        rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:    requestsPerMinute,
		stopCh:   make(chan struct{}),
	}
	go l.sweep()
	return l
}

func (l *LocalRateLimiter) Allow(_ context.Context, key string) (Decision, error) {
	lim := l.get(key)

	reservation := lim.Reserve()
	if d := reservation.Delay(); d > 0 {
		reservation.Cancel()
		return Decision{RetryAfter: d}, nil
	}
	return Decision{Allowed: true, Remaining: int(lim.Tokens())}, nil
}

func (l *LocalRateLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

func (l *LocalRateLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl, ok := l.limiters[key]
	if !ok {
		kl = &keyLimiter{limiter: rate.NewLimiter(l.r, l.burst)}
		l.limiters[key] = kl
	}
	kl.lastSeen = time.Now()
	return kl.limiter
}

func (l *LocalRateLimiter) sweep() {
	ticker := time.NewTicker(localSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.mu.Lock()
			for key, kl := range l.limiters {
				if time.Since(kl.lastSeen) > localIdleTTL {
					delete(l.limiters, key)
				}
			}
			l.mu.Unlock()
		case <-l.stopCh:
			return
		}
	}
}
