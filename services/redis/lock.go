package redis

import (
	"context"
	"time"

	redis_utils "Santa/services/redis/utils"

	"github.com/google/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Deletes the key only if it still holds our token, so an expired lock taken over
// by someone else is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// AcquireDrawLock takes the draw lock of an event for at most ttl.
// ok is false when another request holds it.
func (rc *RedisClient) AcquireDrawLock(ctx context.Context, eventID string, ttl time.Duration) (func(), bool, error) {
	key := redis_utils.FormatDrawLockKey(eventID)
	token := uuid.NewString()

	ok, err := rc.Client.SetNX(ctx, key, token, ttl).Result()
	if err != nil || !ok {
		return nil, false, err
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, rc.Client, []string{key}, token).Err(); err != nil {
			logger.Warningf("redis: releasing %s: %v", key, err)
		}
	}
	return release, true, nil
}
