package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingOperationKey        = "operation"
	LoggingErrorCodeKey        = "error_code"
	LoggingErrorMessageKey     = "error_message"
	LoggingBackendURLKey       = "backend_url"
	LoggingBackendStatusKey    = "backend_status"
	LoggingAttemptKey          = "attempt"
	LoggingSlugKey             = "slug"
	LoggingCacheKey            = "cache_key"
	LoggingCacheHitKey         = "cache_hit"
	LoggingResponseCountKey    = "response_count"
	LoggingRegistrationTypeKey = "registration_type"
	LoggingStepKey             = "step"
	LoggingFieldErrorsKey      = "field_errors"
	LoggingQueueKey            = "queue"
	LoggingBucketKey           = "bucket"
	LoggingObjectKey           = "object"
	LoggingSitemapURLCountKey  = "sitemap_url_count"
	LoggingListingFiltersKey   = "listing_filters"
	LoggingRedisKey            = "redis_key"
	LoggingLockValueKey        = "lock_value"
	LoggingLockExpirationKey   = "lock_expiration"
)
