package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/zenora/zenora-api/internal/pkg/logger"
	"github.com/zenora/zenora-api/internal/pkg/response"
)

const (
	// idleLimiterTTL is how long an unused per-IP limiter is kept
	idleLimiterTTL = 10 * time.Minute
	// sweepInterval spaces out idle-limiter eviction passes
	sweepInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter holds one token bucket per client IP
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time

	lastSweep time.Time
}

// NewRateLimiter allows perMinute requests per client IP with the given burst
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 20
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		visitors:  make(map[string]*visitor),
		limit:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     burst,
		now:       time.Now,
		lastSweep: time.Now(),
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= sweepInterval {
		rl.sweep(now)
	}

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// sweep drops idle limiters; caller holds mu
func (rl *RateLimiter) sweep(now time.Time) {
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > idleLimiterTTL {
			delete(rl.visitors, key)
		}
	}
	rl.lastSweep = now
}

// Handler rejects requests over the per-IP budget with 429
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ClientIP(r)
		if !rl.allow(ip) {
			logger.FromContext(r.Context()).Warn().Str("ip", ip).Msg("Rate limit exceeded")
			w.Header().Set("Retry-After", "60")
			response.TooManyRequests(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
