package holiday

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSource shares the upstream list between instances. A Redis failure
// never fails the fetch; it falls through to the upstream.
type RedisSource struct {
	rdb      *redis.Client
	upstream Source
	key      string
	ttl      time.Duration
	logger   *slog.Logger
}

func NewRedisSource(rdb *redis.Client, upstream Source, key string, ttl time.Duration, logger *slog.Logger) *RedisSource {
	key = strings.TrimSpace(key)
	if key == "" {
		key = "working-date:holidays"
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisSource{rdb: rdb, upstream: upstream, key: key, ttl: ttl, logger: logger}
}

// Fetch implements Source.
func (r *RedisSource) Fetch(ctx context.Context) ([]string, error) {
	raw, err := r.rdb.Get(ctx, r.key).Bytes()
	switch {
	case err == nil:
		var dates []string
		if jsonErr := json.Unmarshal(raw, &dates); jsonErr == nil && len(dates) > 0 {
			return dates, nil
		}
		r.logger.Warn("discarding unreadable cached holiday list", "key", r.key)
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("redis holiday cache read failed", "key", r.key, "error", err)
	}

	dates, err := r.upstream.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(dates)
	if err == nil {
		err = r.rdb.Set(ctx, r.key, payload, r.ttl).Err()
	}
	if err != nil {
		r.logger.Warn("redis holiday cache write failed", "key", r.key, "error", err)
	}

	return dates, nil
}

// Invalidate drops the shared copy so the next Fetch goes upstream.
func (r *RedisSource) Invalidate(ctx context.Context) error {
	return r.rdb.Del(ctx, r.key).Err()
}
