package redis

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/metrics"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	cacheOutcomeHit   = "hit"
	cacheOutcomeMiss  = "miss"
	cacheOutcomeError = "error"
)

// GetOrLoad returns the value cached under key, or calls load and caches its
// result for ttl. Cache failures are logged and never fail the call; a nil repo
// or a zero ttl disables caching.
func GetOrLoad[T any](ctx context.Context, repo contracts.RedisRepository, log *zap.Logger, kind, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	if repo == nil || ttl <= 0 {
		return load(ctx)
	}
	requestID := utils.GetRequestID(ctx)

	cached, err := repo.Get(ctx, key)
	switch {
	case err != nil:
		metrics.CacheLookups.WithLabelValues(kind, cacheOutcomeError).Inc()
		log.Warn("cache.GetOrLoad error reading cache, falling back to backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	case cached != "":
		var value T
		if err := json.Unmarshal([]byte(cached), &value); err == nil {
			metrics.CacheLookups.WithLabelValues(kind, cacheOutcomeHit).Inc()
			log.Debug("cache.GetOrLoad served from cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKey, key),
				zap.Bool(constvars.LoggingCacheHitKey, true),
			)
			return value, nil
		}
		metrics.CacheLookups.WithLabelValues(kind, cacheOutcomeError).Inc()
		log.Warn("cache.GetOrLoad discarding undecodable cache entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
		)
	default:
		metrics.CacheLookups.WithLabelValues(kind, cacheOutcomeMiss).Inc()
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := repo.Set(ctx, key, value, ttl); err != nil {
		log.Warn("cache.GetOrLoad error writing cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	}
	return value, nil
}
