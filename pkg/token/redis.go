package tokenstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "revoked_jti:"

// RedisStore shares revocations across instances.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

func (s *RedisStore) Revoke(jti string, ttl time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.rdb.Set(ctx, redisKeyPrefix+jti, "1", ttl).Err(); err != nil {
		zap.L().Warn("failed to record revoked token", zap.Error(err))
	}
}

func (s *RedisStore) IsRevoked(jti string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	n, err := s.rdb.Exists(ctx, redisKeyPrefix+jti).Result()
	if err != nil {
		zap.L().Warn("revocation lookup failed", zap.Error(err))
		return false
	}
	return n > 0
}
