package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/pytutor/pytutor_service/internal/telemetry"
)

// Connect returns a client for addr, or nil when addr is empty or the
// server is unreachable. The quiz cache is an optimization, not a
// dependency, so a missing redis only logs a warning.
func Connect(addr string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	if err := r.Ping(context.Background()).Err(); err != nil {
		log := telemetry.L()
		log.Warn().Err(err).Str("addr", addr).Msg("redis_unreachable_cache_disabled")
		return nil
	}
	return r
}
