package config

type InternalConfig struct {
	App          App             `mapstructure:"app"`
	Backend      AppBackend      `mapstructure:"backend"`
	Cache        AppCache        `mapstructure:"cache"`
	Registration AppRegistration `mapstructure:"registration"`
	Minio        AppMinio        `mapstructure:"minio"`
	RabbitMQ     AppRabbitMQ     `mapstructure:"rabbitmq"`
	Sitemap      AppSitemap      `mapstructure:"sitemap"`
}

type App struct {
	Env                        string   `mapstructure:"env"`
	Port                       string   `mapstructure:"port"`
	Version                    string   `mapstructure:"version"`
	Address                    string   `mapstructure:"address"`
	EndpointPrefix             string   `mapstructure:"endpoint_prefix"`
	SiteBaseURL                string   `mapstructure:"site_base_url"`
	DefaultOGImage             string   `mapstructure:"default_og_image"`
	AllowedOrigins             []string `mapstructure:"allowed_origins"`
	MaxRequests                int      `mapstructure:"max_requests"`
	WriteRequestsPerMinute     int      `mapstructure:"write_requests_per_minute"`
	WriteBlockTimeInMinutes    int      `mapstructure:"write_block_time_in_minutes"`
	ShutdownTimeoutInSeconds   int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int      `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int      `mapstructure:"request_body_limit_in_megabyte"`
}

type AppBackend struct {
	BaseURL                         string  `mapstructure:"base_url"`
	APIKey                          string  `mapstructure:"api_key"`
	TimeoutInSeconds                int     `mapstructure:"timeout_in_seconds"`
	RequestsPerSecond               float64 `mapstructure:"requests_per_second"`
	Burst                           int     `mapstructure:"burst"`
	RetryMaxAttempts                int     `mapstructure:"retry_max_attempts"`
	RetryInitialDelayInMilliseconds int     `mapstructure:"retry_initial_delay_in_milliseconds"`
}

type AppCache struct {
	ReferenceTTLInMinutes int `mapstructure:"reference_ttl_in_minutes"`
	ListingTTLInSeconds   int `mapstructure:"listing_ttl_in_seconds"`
	ProfileTTLInSeconds   int `mapstructure:"profile_ttl_in_seconds"`
}

type AppRegistration struct {
	StepTokenSecret       string `mapstructure:"step_token_secret"`
	StepTokenTTLInMinutes int    `mapstructure:"step_token_ttl_in_minutes"`
}

type AppMinio struct {
	BucketName    string `mapstructure:"bucket_name"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type AppRabbitMQ struct {
	NotificationQueue string `mapstructure:"notification_queue"`
}

type AppSitemap struct {
	CronInterval    string `mapstructure:"cron_interval"`
	MaxPagesPerType int    `mapstructure:"max_pages_per_type"`
}
