package apiclient

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/exceptions"
	"bhzdravlje-service/internal/pkg/retry"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type city struct {
	Slug string `json:"slug"`
	Name string `json:"naziv"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc, retryCfg retry.Config) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{
		BaseURL: server.URL + "/",
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
		Retry:   retryCfg,
	}, zap.NewNop())
}

func TestClientGet(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "BHZ_SVC_test")

	t.Run("Envelope with meta", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/gradovi", r.URL.Path)
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "Bearer test-key", r.Header.Get(constvars.HeaderAuthorization))
			assert.Equal(t, "BHZ_SVC_test", r.Header.Get(constvars.HeaderXRequestID))
			w.Write([]byte(`{"success":true,"data":[{"slug":"sarajevo","naziv":"Sarajevo"}],"meta":{"current_page":2,"last_page":3,"per_page":1,"total":3}}`))
		}, retry.DefaultConfig())

		var cities []city
		meta, err := client.Get(ctx, "/gradovi", url.Values{"page": {"2"}}, &cities)
		require.NoError(t, err)
		require.Len(t, cities, 1)
		assert.Equal(t, "Sarajevo", cities[0].Name)
		require.NotNil(t, meta)
		assert.Equal(t, 3, meta.Total)
		assert.Equal(t, 3, meta.LastPage)
	})

	t.Run("Raw array", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(` [{"slug":"mostar","naziv":"Mostar"}]`))
		}, retry.DefaultConfig())

		var cities []city
		meta, err := client.Get(ctx, "/gradovi", nil, &cities)
		require.NoError(t, err)
		assert.Nil(t, meta)
		require.Len(t, cities, 1)
		assert.Equal(t, "mostar", cities[0].Slug)
	})

	t.Run("Not found status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}, retry.DefaultConfig())

		var c city
		_, err := client.Get(ctx, "/gradovi/atlantida", nil, &c)
		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})

	t.Run("Null data is not found", func(t *testing.T) {
		for _, body := range []string{`{"success":true,"data":null}`, `null`, `{}`, ` { } `} {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}, retry.DefaultConfig())

			var c city
			_, err := client.Get(ctx, "/gradovi/x", nil, &c)
			assert.True(t, exceptions.IsNotFound(err), body)
			assert.Empty(t, c.Slug, body)
		}
	})

	t.Run("Bare object is decoded", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"slug":"tuzla","naziv":"Tuzla"}`))
		}, retry.DefaultConfig())

		var c city
		_, err := client.Get(ctx, "/gradovi/tuzla", nil, &c)
		require.NoError(t, err)
		assert.Equal(t, "Tuzla", c.Name)
	})

	t.Run("Success false", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false,"message":"db down"}`))
		}, retry.DefaultConfig())

		var cities []city
		_, err := client.Get(ctx, "/gradovi", nil, &cities)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, exceptions.StatusCodeOf(err))
		assert.Contains(t, err.Error(), "db down")
	})

	t.Run("Server error is retried", func(t *testing.T) {
		var calls int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte(`{"success":true,"data":{"slug":"tuzla","naziv":"Tuzla"}}`))
		}, retry.Config{MaxAttempts: 2, InitialDelay: time.Millisecond, BackoffFactor: 1})

		var c city
		_, err := client.Get(ctx, "/gradovi/tuzla", nil, &c)
		require.NoError(t, err)
		assert.Equal(t, "Tuzla", c.Name)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("Single attempt surfaces bad gateway", func(t *testing.T) {
		var calls int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}, retry.DefaultConfig())

		var c city
		_, err := client.Get(ctx, "/gradovi/tuzla", nil, &c)
		assert.Equal(t, http.StatusBadGateway, exceptions.StatusCodeOf(err))
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("Caller cancellation", func(t *testing.T) {
		release := make(chan struct{})
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			<-release
			w.Write([]byte(`[]`))
		}, retry.DefaultConfig())
		defer close(release)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		var cities []city
		_, err := client.Get(cancelled, "/gradovi", nil, &cities)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestClientPost(t *testing.T) {
	ctx := context.Background()

	t.Run("Created", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.MethodPost, r.Method)
			assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))

			body, _ := io.ReadAll(r.Body)
			var payload map[string]string
			assert.NoError(t, json.Unmarshal(body, &payload))
			assert.Equal(t, "Klinika Zdravlje", payload["naziv"])

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true,"data":{"slug":"klinika-zdravlje"}}`))
		}, retry.DefaultConfig())

		var out struct {
			Slug string `json:"slug"`
		}
		err := client.Post(ctx, "/registracije/klinika", map[string]string{"naziv": "Klinika Zdravlje"}, &out)
		require.NoError(t, err)
		assert.Equal(t, "klinika-zdravlje", out.Slug)
	})

	t.Run("Validation errors", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"email je zauzet","errors":{"email":["email je već registrovan"]}}`))
		}, retry.DefaultConfig())

		err := client.Post(ctx, "/registracije/klinika", map[string]string{}, nil)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Equal(t, "email je zauzet", customErr.ClientMessage)
		assert.Equal(t, []string{"email je već registrovan"}, customErr.FieldErrors["email"])
	})

	t.Run("Not retried", func(t *testing.T) {
		var calls int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadGateway)
		}, retry.Config{MaxAttempts: 3, InitialDelay: time.Millisecond, BackoffFactor: 1})

		err := client.Post(ctx, "/pitanja", map[string]string{}, nil)
		assert.Equal(t, http.StatusBadGateway, exceptions.StatusCodeOf(err))
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}

func TestClientPing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, constvars.ResourceHealth, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}, retry.DefaultConfig())

	assert.NoError(t, client.Ping(context.Background()))
}

func TestDetach(t *testing.T) {
	shared := exceptions.ErrBackendValidation("", map[string][]string{"email": {"zauzet"}}).
		WithMeta("resume_step", 1)

	first := detach(shared).(*exceptions.CustomError)
	second := detach(shared).(*exceptions.CustomError)

	first.WithMeta("resume_step", 2)
	first.FieldErrors["email"][0] = "neispravan"
	first.FieldErrors["phone"] = []string{"obavezno"}

	assert.Equal(t, 1, second.Meta["resume_step"])
	assert.Equal(t, 1, shared.Meta["resume_step"])
	assert.Equal(t, map[string][]string{"email": {"zauzet"}}, second.FieldErrors)
	assert.Equal(t, map[string][]string{"email": {"zauzet"}}, shared.FieldErrors)

	plain := errors.New("connection reset")
	assert.Same(t, plain, detach(plain))
}
