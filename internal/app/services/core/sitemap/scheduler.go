package sitemap

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

const (
	defaultInterval = "6h"
	jobTimeout      = 5 * time.Minute
)

// Schedule registers sitemap generation on scheduler. The job runs as soon
// as the scheduler starts and then every interval; runs never overlap.
func Schedule(scheduler *gocron.Scheduler, usecase contracts.SitemapUsecase, interval string, logger *zap.Logger) error {
	if interval == "" {
		interval = defaultInterval
	}

	_, err := scheduler.Every(interval).SingletonMode().StartImmediately().Do(func() {
		ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
		ctx, cancel := context.WithTimeout(ctx, jobTimeout)
		defer cancel()

		if err := usecase.Generate(ctx); err != nil {
			logger.Error("sitemap job failed",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.Error(err),
			)
		}
	})
	if err != nil {
		logger.Error("failed to schedule sitemap job", zap.Error(err))
		return err
	}
	return nil
}
