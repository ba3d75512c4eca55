package database

import (
	"bhzdravlje-service/internal/app/config"
	"context"
	"log"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects the cache with short read and write timeouts.
// Callers fall back to the backend on any redis error.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	cfg := driverConfig.Redis
	timeout := time.Duration(cfg.TimeoutInMilliseconds) * time.Millisecond
	if timeout <= 0 {
		timeout = 300 * time.Millisecond
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis at %s: %v", rdb.Options().Addr, err)
	}

	log.Println("Successfully connected to redis")
	return rdb
}
