package universe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"cosmos-server/internal/galaxy"
	"cosmos-server/internal/spatial"
)

const redisCallTimeout = 500 * time.Millisecond

// RedisStore shares generated galaxies between server replicas. Keys carry the full
// universe config, so two universes with one seed but different size ranges never collide.
type RedisStore struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisStore(client redis.Cmdable, cfg Config, ttl time.Duration, logger *slog.Logger) *RedisStore {
	cfg = cfg.resolve()
	return &RedisStore{
		client: client,
		prefix: fmt.Sprintf("cosmos:galaxy:%d:%s:%s", cfg.Seed, formatSize(cfg.SizeMin), formatSize(cfg.SizeMax)),
		ttl:    ttl,
		logger: logger.With("component", "galaxy_redis_store"),
	}
}

func formatSize(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (s *RedisStore) Key(cell spatial.Cell) string {
	return fmt.Sprintf("%s:%d:%d:%d", s.prefix, cell.X, cell.Y, cell.Z)
}

func (s *RedisStore) Load(ctx context.Context, cell spatial.Cell) (galaxy.Galaxy, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisCallTimeout)
	defer cancel()

	key := s.Key(cell)
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return galaxy.Galaxy{}, false
	}
	if err != nil {
		s.logger.Warn("Failed to read galaxy from Redis", "operation", "load", "key", key, "error", err)
		return galaxy.Galaxy{}, false
	}

	var g galaxy.Galaxy
	if err := json.Unmarshal(data, &g); err != nil {
		s.logger.Warn("Discarding undecodable cached galaxy", "operation", "load", "key", key, "error", err)
		return galaxy.Galaxy{}, false
	}
	return g, true
}

func (s *RedisStore) Save(ctx context.Context, cell spatial.Cell, g galaxy.Galaxy) {
	key := s.Key(cell)
	data, err := json.Marshal(g)
	if err != nil {
		s.logger.Error("Failed to encode galaxy", "operation", "save", "key", key, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, redisCallTimeout)
	defer cancel()

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.Warn("Failed to write galaxy to Redis", "operation", "save", "key", key, "error", err)
	}
}
