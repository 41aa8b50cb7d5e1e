package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/config"
)

// redisKeyChat returns the Redis key for a chat session's turn list.
func redisKeyChat(sessionID string) string { return "chat:" + sessionID }

const (
	defaultHistoryLimit = 40
	defaultSessionTTL   = 60 * time.Minute
)

// RedisHistory stores conversation turns in a Redis list, newest at the
// tail, trimmed to a bounded length and expired after a session TTL.
type RedisHistory struct {
	rdb   *goredis.Client
	limit int
	ttl   time.Duration
}

func NewRedisHistory(rdb *goredis.Client, cfg *config.Config) *RedisHistory {
	limit := cfg.Chat.HistoryLimit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	ttl := time.Duration(cfg.Chat.SessionTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &RedisHistory{rdb: rdb, limit: limit, ttl: ttl}
}

func (h *RedisHistory) Append(ctx context.Context, sessionID string, t Turn) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode turn: %w", err)
	}

	key := redisKeyChat(sessionID)
	pipe := h.rdb.TxPipeline()
	pipe.RPush(ctx, key, raw)
	pipe.LTrim(ctx, key, int64(-h.limit), -1)
	pipe.Expire(ctx, key, h.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append turn: %w", err)
	}
	return nil
}

func (h *RedisHistory) Turns(ctx context.Context, sessionID string) ([]Turn, error) {
	raws, err := h.rdb.LRange(ctx, redisKeyChat(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load turns: %w", err)
	}

	out := make([]Turn, 0, len(raws))
	for _, raw := range raws {
		var t Turn
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			// A corrupt entry shouldn't take the whole history down.
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (h *RedisHistory) PopLast(ctx context.Context, sessionID string) error {
	if err := h.rdb.RPop(ctx, redisKeyChat(sessionID)).Err(); err != nil && err != goredis.Nil {
		return fmt.Errorf("pop turn: %w", err)
	}
	return nil
}

func (h *RedisHistory) Clear(ctx context.Context, sessionID string) error {
	if err := h.rdb.Del(ctx, redisKeyChat(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
