package controllers

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/responses"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	healthCheckTimeout   = 3 * time.Second
	healthStatusOK       = "ok"
	healthStatusDegraded = "degraded"
)

// Pinger is anything the health endpoint can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	Log          *zap.Logger
	Version      string
	Dependencies map[string]Pinger
}

func NewHealthController(logger *zap.Logger, version string, dependencies map[string]Pinger) *HealthController {
	return &HealthController{
		Log:          logger,
		Version:      version,
		Dependencies: dependencies,
	}
}

// Health pings every dependency in parallel and answers 503 when one of them
// is down.
func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		status = responses.HealthStatus{
			Status:       healthStatusOK,
			Version:      ctrl.Version,
			Dependencies: make(map[string]string, len(ctrl.Dependencies)),
		}
	)
	for name, dependency := range ctrl.Dependencies {
		if dependency == nil {
			continue
		}
		wg.Add(1)
		go func(name string, dependency Pinger) {
			defer wg.Done()
			result := healthStatusOK
			if err := dependency.Ping(ctx); err != nil {
				result = err.Error()
				ctrl.Log.Warn("HealthController.Health dependency down",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
					zap.String("dependency", name),
					zap.Error(err),
				)
			}
			mu.Lock()
			status.Dependencies[name] = result
			if result != healthStatusOK {
				status.Status = healthStatusDegraded
			}
			mu.Unlock()
		}(name, dependency)
	}
	wg.Wait()

	code := constvars.StatusOK
	if status.Status != healthStatusOK {
		code = constvars.StatusServiceUnavailable
	}
	utils.BuildSuccessResponse(w, code, constvars.HealthySuccessMessage, status)
}
