package controllers

import (
	"bhzdravlje-service/internal/pkg/exceptions"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

// RequestTimeout turns the configured seconds into a duration, falling back
// to ten seconds.
func RequestTimeout(seconds int) time.Duration {
	if seconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(seconds) * time.Second
}

func writeError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		var customErr *exceptions.CustomError
		if !errors.As(err, &customErr) {
			err = exceptions.ErrServerDeadlineExceeded(err)
		}
	}
	utils.BuildErrorResponse(log, w, err)
}
