package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"museum-chat/internal/data/entity"

	"github.com/redis/go-redis/v9"
)

const openingHoursKey = "cache:orari"

// HoursCache holds the opening hours list. A miss is reported with ok=false.
type HoursCache interface {
	Get(ctx context.Context) (hours []*entity.OpeningHour, ok bool, err error)
	Set(ctx context.Context, hours []*entity.OpeningHour) error
	Invalidate(ctx context.Context) error
}

type RedisHoursCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisHoursCache(client *redis.Client, ttl time.Duration) *RedisHoursCache {
	return &RedisHoursCache{client: client, ttl: ttl}
}

func (c *RedisHoursCache) Get(ctx context.Context) ([]*entity.OpeningHour, bool, error) {
	data, err := c.client.Get(ctx, openingHoursKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached opening hours: %w", err)
	}

	var hours []*entity.OpeningHour
	if err := json.Unmarshal(data, &hours); err != nil {
		return nil, false, fmt.Errorf("decode cached opening hours: %w", err)
	}
	return hours, true, nil
}

func (c *RedisHoursCache) Set(ctx context.Context, hours []*entity.OpeningHour) error {
	data, err := json.Marshal(hours)
	if err != nil {
		return fmt.Errorf("encode opening hours: %w", err)
	}
	return c.client.Set(ctx, openingHoursKey, data, c.ttl).Err()
}

func (c *RedisHoursCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, openingHoursKey).Err()
}

// NoopHoursCache always misses. Used when Redis is not configured.
type NoopHoursCache struct{}

func (NoopHoursCache) Get(context.Context) ([]*entity.OpeningHour, bool, error) {
	return nil, false, nil
}

func (NoopHoursCache) Set(context.Context, []*entity.OpeningHour) error { return nil }

func (NoopHoursCache) Invalidate(context.Context) error { return nil }
