package config

type (
	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	Redis struct {
		Host                  string
		Port                  string
		Password              string
		DB                    int
		PoolSize              int
		TimeoutInMilliseconds int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
		AccessLogFileName   string
	}
	RabbitMQ struct {
		Port               string
		Host               string
		Username           string
		Password           string
		VHost              string
		HeartbeatInSeconds int
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)
