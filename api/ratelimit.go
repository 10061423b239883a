package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	defaultLimiterIdle = 10 * time.Minute
	limiterSweepPeriod = time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientRateLimiter keeps a token bucket per client ip. Buckets of clients
// idle for longer than idle are dropped on the next sweep.
type clientRateLimiter struct {
	sync.Mutex
	limit     rate.Limit
	burst     int
	idle      time.Duration
	now       func() time.Time
	lastSweep time.Time
	limiters  map[string]*clientLimiter
}

// newClientRateLimiter returns nil when the limit is not positive, which
// turns rate limiting off
func newClientRateLimiter(limit rate.Limit, burst int) *clientRateLimiter {
	if limit <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}

	return &clientRateLimiter{
		limit:     limit,
		burst:     burst,
		idle:      defaultLimiterIdle,
		now:       time.Now,
		lastSweep: time.Now(),
		limiters:  make(map[string]*clientLimiter),
	}
}

func (l *clientRateLimiter) allow(client string) bool {
	l.Lock()
	now := l.now()
	if now.Sub(l.lastSweep) >= limiterSweepPeriod {
		l.sweep(now)
	}

	cl, ok := l.limiters[client]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[client] = cl
	}
	cl.lastSeen = now
	l.Unlock()

	return cl.limiter.AllowN(now, 1)
}

// sweep must be called with the lock held
func (l *clientRateLimiter) sweep(now time.Time) {
	for client, cl := range l.limiters {
		if now.Sub(cl.lastSeen) > l.idle {
			delete(l.limiters, client)
		}
	}
	l.lastSweep = now
}

func (s *Server) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limiter != nil && !s.limiter.allow(c.ClientIP()) {
			abortWithEncoding(c, http.StatusTooManyRequests, errorTooManyRequests)
			return
		}
		c.Next()
	}
}
