package config

import (
	"context"
	"time"

	"Santa/services/redis"

	"github.com/google/logger"
)

// Connect_redis connects to Redis. A nil client with a nil error means Redis is not configured.
func Connect_redis(cfg RedisConfig) (*redis.RedisClient, error) {
	if cfg.URL == "" {
		logger.Warning("REDIS_URL not set, draw lock disabled")
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	redisClient, err := redis.InitRedis(ctx, cfg.URL, 0)
	if err != nil {
		return nil, err
	}
	logger.Info("Redis connection established")
	return redisClient, nil
}
