package middlewares

import (
	"bhzdravlje-service/internal/app/config"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/utils"
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	accessLog := logrus.New()
	accessLog.SetOutput(io.Discard)
	return NewMiddlewares(zap.NewNop(), accessLog, &config.InternalConfig{
		App: config.App{RequestBodyLimitInMegabyte: 1},
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	t.Run("Client supplied id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/doktori", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id-1", seen)
		assert.Equal(t, "client-id-1", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Missing id is generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/doktori", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), constvars.ErrClientSomethingWrongWithApplication)
}

func TestBodyLimit(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/pitanja", strings.NewReader(`{"title":"ok"}`)))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/pitanja", bytes.NewReader(make([]byte, 2<<20))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestRateLimiter(t *testing.T) {
	m := newTestMiddlewares()
	limiter := NewRateLimiter(m, 2, time.Minute, 5*time.Minute)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	send := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/pitanja", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusCreated, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusCreated, send("10.0.0.1:1235"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1236"))
	assert.Equal(t, http.StatusCreated, send("10.0.0.2:1234"), "other clients are not affected")

	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1237"), "still blocked")

	now = now.Add(4 * time.Minute)
	assert.Equal(t, http.StatusCreated, send("10.0.0.1:1238"))
}

func TestLoggingAndAccessLog(t *testing.T) {
	m := newTestMiddlewares()
	var accessLog bytes.Buffer
	m.AccessLog.SetOutput(&accessLog)
	m.AccessLog.SetFormatter(&logrus.JSONFormatter{})

	handler := m.RequestIDMiddleware(m.Logging(m.RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))))

	req := httptest.NewRequest(http.MethodGet, "/gradovi", nil)
	req.Header.Set(constvars.HeaderXRequestID, "log-test")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Contains(t, accessLog.String(), `"request_id":"log-test"`)
	assert.Contains(t, accessLog.String(), `"status_code":418`)
}
