package middlewares

import (
	"bhzdravlje-service/internal/pkg/exceptions"
	"bhzdravlje-service/internal/pkg/metrics"
	"bhzdravlje-service/internal/pkg/utils"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const limiterSweepEvery = 1024

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter allows requests token bucket style per client IP and blocks an
// IP for blockTime once its bucket runs dry.
type RateLimiter struct {
	middlewares *Middlewares
	visitors    map[string]*visitor
	blocked     map[string]time.Time
	mu          sync.Mutex
	requests    int
	per         time.Duration
	blockTime   time.Duration
	seen        int
	now         func() time.Time
}

func NewRateLimiter(m *Middlewares, requests int, per, blockTime time.Duration) *RateLimiter {
	if requests <= 0 {
		requests = 1
	}
	return &RateLimiter{
		middlewares: m,
		visitors:    make(map[string]*visitor),
		blocked:     make(map[string]time.Time),
		requests:    requests,
		per:         per,
		blockTime:   blockTime,
		now:         time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if !r.allow(ip) {
			metrics.RateLimitRejections.Inc()
			utils.BuildErrorResponse(r.middlewares.Log, w, exceptions.ErrTooManyRequests(nil))
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.seen++
	if r.seen%limiterSweepEvery == 0 {
		r.sweep(now)
	}

	if blockedUntil, found := r.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(r.blocked, ip)
		delete(r.visitors, ip)
	}

	v, exists := r.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(r.per/time.Duration(r.requests)), r.requests)}
		r.visitors[ip] = v
	}
	v.lastSeen = now

	if !v.limiter.AllowN(now, 1) {
		r.blocked[ip] = now.Add(r.blockTime)
		return false
	}
	return true
}

// sweep forgets visitors idle long enough for their bucket to be full again.
func (r *RateLimiter) sweep(now time.Time) {
	for ip, v := range r.visitors {
		if now.Sub(v.lastSeen) > r.per {
			delete(r.visitors, ip)
		}
	}
	for ip, until := range r.blocked {
		if now.After(until) {
			delete(r.blocked, ip)
		}
	}
}
