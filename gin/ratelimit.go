package gin

import (
	"sync"

	"golang.org/x/time/rate"
)

// ClientLimiter rate limits summary requests per client using token
// buckets. Each client key gets its own limiter with a burst of 1.
type ClientLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewClientLimiter creates a ClientLimiter allowing rps requests per second
// for each client.
func NewClientLimiter(rps float64) *ClientLimiter {
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Allow reports whether client may start a request now. It never blocks.
func (l *ClientLimiter) Allow(client string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[client]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[client] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}
