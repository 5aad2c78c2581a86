package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/stemsi/workforce-api/internal/config"
	"github.com/stemsi/workforce-api/internal/model"
)

// releaseScript deletes the lock only if it still holds our token, so a
// lock that expired and was taken by another run is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisStore implements Locker and StatusStore on Redis.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

// NewRedisStore creates a RedisStore. ttl bounds how long a crashed export
// can keep its file locked.
func NewRedisStore(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *RedisStore {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisStore{
		rdb: rdb,
		ttl: ttl,
		log: log.With().Str("component", "export_redis_store").Logger(),
	}
}

// Acquire takes the lock at key or returns ErrInProgress.
func (s *RedisStore) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	ok, err := s.rdb.SetNX(ctx, key, token, s.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire export lock: %w", err)
	}
	if !ok {
		return nil, ErrInProgress
	}

	return func() {
		// The request context may already be cancelled by the time we release.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, s.rdb, []string{key}, token).Err(); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("failed to release export lock")
		}
	}, nil
}

// SaveResult stores result as the latest run of its format.
func (s *RedisStore) SaveResult(ctx context.Context, result *model.ExportResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal export result: %w", err)
	}
	return s.rdb.Set(ctx, config.CacheKey.ExportStatusKey(string(result.Format)), payload, 0).Err()
}

// LastResult returns the latest run of format, or nil if it never ran.
func (s *RedisStore) LastResult(ctx context.Context, format model.ExportFormat) (*model.ExportResult, error) {
	payload, err := s.rdb.Get(ctx, config.CacheKey.ExportStatusKey(string(format))).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result model.ExportResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("unmarshal export result: %w", err)
	}
	return &result, nil
}
