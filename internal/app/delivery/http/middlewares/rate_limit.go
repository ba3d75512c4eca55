package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiters returns the per IP limiter for every request and the
// stricter one for form submissions.
func (m *Middlewares) CreateRateLimiters() (readLimiter, writeLimiter func(next http.Handler) http.Handler) {
	app := m.InternalConfig.App

	maxRequests := app.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 20
	}
	readLimiter = httprate.LimitByIP(maxRequests, time.Second)

	writeRequests := app.WriteRequestsPerMinute
	if writeRequests <= 0 {
		writeRequests = 10
	}
	blockTime := time.Duration(app.WriteBlockTimeInMinutes) * time.Minute
	if blockTime <= 0 {
		blockTime = 5 * time.Minute
	}
	writeLimiter = NewRateLimiter(m, writeRequests, time.Minute, blockTime).Limit

	return readLimiter, writeLimiter
}
