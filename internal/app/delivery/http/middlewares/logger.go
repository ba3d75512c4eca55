package middlewares

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// RequestLogger writes one access log line per request.
func (m *Middlewares) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		m.AccessLog.WithFields(logrus.Fields{
			constvars.LoggingRequestIDKey:  utils.GetRequestID(r.Context()),
			constvars.LoggingRemoteAddrKey: r.RemoteAddr,
			constvars.LoggingMethodKey:     r.Method,
			constvars.LoggingEndpointKey:   r.RequestURI,
			constvars.LoggingStatusCodeKey: rec.statusCode,
			constvars.LoggingDurationKey:   time.Since(start).String(),
		}).Info("access")
	})
}
