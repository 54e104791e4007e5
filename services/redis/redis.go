package redis

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/logger"
	"github.com/redis/go-redis/v9"
)

// RedisClient handles Redis operations
type RedisClient struct {
	Client *redis.Client
}

// NewRedisClient accepts either a redis:// URL or a plain host:port address
func NewRedisClient(addr string, db int) (*RedisClient, error) {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		logger.Info("Connecting to remote Redis...")
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("error parsing Redis URL: %w", err)
		}
		return &RedisClient{Client: redis.NewClient(opt)}, nil
	}
	return &RedisClient{Client: redis.NewClient(&redis.Options{Addr: addr, DB: db})}, nil
}

// InitRedis connects and checks the server answers
func InitRedis(ctx context.Context, addr string, db int) (*RedisClient, error) {
	rc, err := NewRedisClient(addr, db)
	if err != nil {
		return nil, err
	}
	if err := rc.Client.Ping(ctx).Err(); err != nil {
		rc.Client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("Successfully connected to Redis")
	return rc, nil
}

// CloseRedis gracefully closes the Redis connection
func CloseRedis(rc *RedisClient) error {
	if rc == nil {
		return nil
	}
	if err := rc.Client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %w", err)
	}
	return nil
}
