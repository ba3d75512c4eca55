package config

import (
	"bhzdravlje-service/internal/pkg/utils"
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:                  utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:                  utils.GetEnvString("REDIS_PORT", "6379"),
			Password:              utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:                    utils.GetEnvInt("REDIS_DB", 0),
			PoolSize:              utils.GetEnvInt("REDIS_POOL_SIZE", 20),
			TimeoutInMilliseconds: utils.GetEnvInt("REDIS_TIMEOUT_IN_MILLISECONDS", 300),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			AccessLogFileName:   utils.GetEnvString("LOGGER_ACCESS_LOG_FILENAME", "access.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:               utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:               utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username:           utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password:           utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			VHost:              utils.GetEnvString("RABBITMQ_VHOST", "/"),
			HeartbeatInSeconds: utils.GetEnvInt("RABBITMQ_HEARTBEAT_IN_SECONDS", 10),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

// NewInternalConfig loads the application settings from an optional
// config/config.yaml, overridden by environment variables such as
// APP_PORT or BACKEND_BASE_URL.
func NewInternalConfig() (*InternalConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	setInternalDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg InternalConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.App.Env == "production" && cfg.Registration.StepTokenSecret == defaultStepTokenSecret {
		return nil, errors.New("REGISTRATION_STEP_TOKEN_SECRET must be set in production")
	}
	return &cfg, nil
}

const defaultStepTokenSecret = "change-me-registration-step-secret"

func setInternalDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.version", "v1")
	v.SetDefault("app.address", "localhost")
	v.SetDefault("app.endpoint_prefix", "api")
	v.SetDefault("app.site_base_url", "https://bhzdravlje.ba")
	v.SetDefault("app.default_og_image", "https://bhzdravlje.ba/images/og-default.png")
	v.SetDefault("app.allowed_origins", []string{"https://bhzdravlje.ba", "http://localhost:3000"})
	v.SetDefault("app.max_requests", 20)
	v.SetDefault("app.write_requests_per_minute", 10)
	v.SetDefault("app.write_block_time_in_minutes", 5)
	v.SetDefault("app.shutdown_timeout_in_seconds", 10)
	v.SetDefault("app.request_timeout_in_seconds", 15)
	v.SetDefault("app.request_body_limit_in_megabyte", 4)

	v.SetDefault("backend.base_url", "http://localhost:8000/api")
	v.SetDefault("backend.api_key", "")
	v.SetDefault("backend.timeout_in_seconds", 10)
	v.SetDefault("backend.requests_per_second", 50)
	v.SetDefault("backend.burst", 100)
	v.SetDefault("backend.retry_max_attempts", 1)
	v.SetDefault("backend.retry_initial_delay_in_milliseconds", 200)

	v.SetDefault("cache.reference_ttl_in_minutes", 60)
	v.SetDefault("cache.listing_ttl_in_seconds", 120)
	v.SetDefault("cache.profile_ttl_in_seconds", 300)

	v.SetDefault("registration.step_token_secret", defaultStepTokenSecret)
	v.SetDefault("registration.step_token_ttl_in_minutes", 120)

	v.SetDefault("minio.bucket_name", "bhzdravlje-registracije")
	v.SetDefault("minio.public_base_url", "http://localhost:9000")

	v.SetDefault("rabbitmq.notification_queue", "bhzdravlje.notifications")

	v.SetDefault("sitemap.cron_interval", "6h")
	v.SetDefault("sitemap.max_pages_per_type", 50)
}
