// Package apiclient talks to the directory backend. It decodes the
// {success, data, meta} envelope (or a bare array), maps 404 and 422 to
// typed errors, and shares identical in-flight GET requests.
package apiclient

import (
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/exceptions"
	"bhzdravlje-service/internal/pkg/metrics"
	"bhzdravlje-service/internal/pkg/retry"
	"bhzdravlje-service/internal/pkg/utils"
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const maxResponseBytes = 10 << 20

type Config struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	Retry             retry.Config
}

type Client struct {
	cfg        Config
	log        *zap.Logger
	httpClient *http.Client
	limiter    *rate.Limiter
	group      singleflight.Group
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	return &Client{
		cfg:        cfg,
		log:        logger,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(limit, cfg.Burst),
	}
}

type envelope struct {
	Success *bool            `json:"success"`
	Data    json.RawMessage  `json:"data"`
	Meta    *models.ListMeta `json:"meta"`
	Message string           `json:"message"`
}

type validationBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

type rawResponse struct {
	status int
	body   []byte
}

// Get fetches resource and decodes its data into out. Meta is nil unless the
// backend sent one.
func (c *Client) Get(ctx context.Context, resource string, params url.Values, out interface{}) (*models.ListMeta, error) {
	requestID := utils.GetRequestID(ctx)
	endpoint := c.cfg.BaseURL + resource
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	c.log.Info("apiClient.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBackendURLKey, endpoint),
	)

	// The shared call must outlive a caller that goes away, so it runs on a
	// detached context bounded by the client timeout.
	resultCh := c.group.DoChan(endpoint, func() (interface{}, error) {
		sharedCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.Timeout)
		defer cancel()
		return c.execute(sharedCtx, constvars.MethodGet, resource, endpoint, nil)
	})

	var result singleflight.Result
	select {
	case <-ctx.Done():
		c.log.Error("apiClient.Get context done before backend responded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(ctx.Err()),
		)
		return nil, contextError(ctx.Err())
	case result = <-resultCh:
	}

	if result.Shared {
		metrics.BackendRequestsShared.Inc()
	}
	if result.Err != nil {
		c.log.Error("apiClient.Get error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBackendURLKey, endpoint),
			zap.Error(result.Err),
		)
		return nil, detach(result.Err)
	}

	meta, err := c.decode(resource, result.Val.(*rawResponse), out)
	if err != nil {
		c.log.Error("apiClient.Get error decoding backend response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBackendURLKey, endpoint),
			zap.Error(err),
		)
		return nil, err
	}

	c.log.Info("apiClient.Get succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBackendURLKey, endpoint),
	)
	return meta, nil
}

// Post sends body as JSON. It is never retried.
func (c *Client) Post(ctx context.Context, resource string, body interface{}, out interface{}) error {
	requestID := utils.GetRequestID(ctx)
	endpoint := c.cfg.BaseURL + resource

	c.log.Info("apiClient.Post called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBackendURLKey, endpoint),
	)

	payload, err := json.Marshal(body)
	if err != nil {
		c.log.Error("apiClient.Post error marshaling body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	res, err := c.send(ctx, constvars.MethodPost, resource, endpoint, payload)
	if err != nil {
		c.log.Error("apiClient.Post error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if _, err := c.decode(resource, res, out); err != nil {
		c.log.Error("apiClient.Post backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingBackendStatusKey, res.status),
			zap.Error(err),
		)
		return err
	}

	c.log.Info("apiClient.Post succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBackendStatusKey, res.status),
	)
	return nil
}

// Ping reports whether the backend answers its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	res, err := c.send(ctx, constvars.MethodGet, constvars.ResourceHealth, c.cfg.BaseURL+constvars.ResourceHealth, nil)
	if err != nil {
		return err
	}
	if res.status >= constvars.StatusInternalServerError {
		return exceptions.ErrBackendStatus(res.status)
	}
	return nil
}

func (c *Client) execute(ctx context.Context, method, resource, endpoint string, body []byte) (*rawResponse, error) {
	var res *rawResponse
	err := retry.DoWithLog(ctx, c.cfg.Retry, func() error {
		r, err := c.send(ctx, method, resource, endpoint, body)
		if err != nil {
			return err
		}
		res = r
		if r.status >= constvars.StatusInternalServerError {
			return exceptions.ErrBackendStatus(r.status)
		}
		return nil
	}, func(attempt int, err error, nextDelay time.Duration) {
		c.log.Warn("apiClient retrying backend request",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingBackendURLKey, endpoint),
			zap.Int(constvars.LoggingAttemptKey, attempt),
			zap.Duration("next_delay", nextDelay),
			zap.Error(err),
		)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) send(ctx context.Context, method, resource, endpoint string, body []byte) (*rawResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, retry.Permanent(contextError(err))
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, retry.Permanent(exceptions.ErrBackendUnavailable(err))
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAcceptLanguage, constvars.SiteLanguage)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID := utils.GetRequestID(ctx); requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	if c.cfg.APIKey != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.cfg.APIKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.BackendRequestDuration.WithLabelValues(method, resource, "error").Observe(time.Since(start).Seconds())
		if ctx.Err() != nil {
			return nil, retry.Permanent(contextError(ctx.Err()))
		}
		return nil, exceptions.ErrBackendUnavailable(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	metrics.BackendRequestDuration.WithLabelValues(method, resource, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, exceptions.ErrBackendUnavailable(err)
	}

	return &rawResponse{status: resp.StatusCode, body: data}, nil
}

func (c *Client) decode(resource string, res *rawResponse, out interface{}) (*models.ListMeta, error) {
	switch {
	case res.status == constvars.StatusNotFound:
		return nil, exceptions.ErrNotFound(nil, constvars.ErrClientNotFound, resource)
	case res.status == constvars.StatusUnprocessableEntity:
		var body validationBody
		if err := json.Unmarshal(res.body, &body); err != nil {
			return nil, exceptions.ErrCannotDecodeBackendResponse(err, resource)
		}
		return nil, exceptions.ErrBackendValidation(body.Message, body.Errors)
	case res.status < 200 || res.status >= 300:
		return nil, exceptions.ErrBackendStatus(res.status)
	}

	trimmed := bytes.TrimSpace(res.body)
	if len(trimmed) == 0 || out == nil {
		return nil, nil
	}

	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, out); err != nil {
			return nil, exceptions.ErrCannotDecodeBackendResponse(err, resource)
		}
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, exceptions.ErrCannotDecodeBackendResponse(err, resource)
	}

	if env.Success == nil && env.Data == nil {
		if isEmptyDocument(trimmed) {
			return nil, exceptions.ErrNotFound(nil, constvars.ErrClientNotFound, resource)
		}
		if err := json.Unmarshal(trimmed, out); err != nil {
			return nil, exceptions.ErrCannotDecodeBackendResponse(err, resource)
		}
		return nil, nil
	}
	if env.Success != nil && !*env.Success {
		return nil, exceptions.ErrBackendEnvelope(env.Message)
	}

	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, exceptions.ErrNotFound(nil, constvars.ErrClientNotFound, resource)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return nil, exceptions.ErrCannotDecodeBackendResponse(err, resource)
	}
	return env.Meta, nil
}

// detach copies a CustomError handed to several singleflight callers so each
// can append its own location trail.
func detach(err error) error {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		return err
	}
	clone := *customErr
	clone.Locations = append([]exceptions.Location(nil), customErr.Locations...)
	if customErr.FieldErrors != nil {
		clone.FieldErrors = make(map[string][]string, len(customErr.FieldErrors))
		for field, messages := range customErr.FieldErrors {
			clone.FieldErrors[field] = append([]string(nil), messages...)
		}
	}
	if customErr.Meta != nil {
		clone.Meta = make(map[string]any, len(customErr.Meta))
		for key, value := range customErr.Meta {
			clone.Meta[key] = value
		}
	}
	return &clone
}

// isEmptyDocument reports a bare null or an object without members.
func isEmptyDocument(body []byte) bool {
	if bytes.Equal(body, []byte("null")) {
		return true
	}
	return len(body) >= 2 && body[0] == '{' && body[len(body)-1] == '}' &&
		len(bytes.TrimSpace(body[1:len(body)-1])) == 0
}

func contextError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return exceptions.ErrBackendUnavailable(err)
}
