//go:build !tinygo

// internal/medium/redis.go
package medium

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tamzrod/ir-learner/internal/layout"
)

// RedisConfig describes one Redis string key used as the medium.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
	Capacity int
	Timeout  time.Duration
}

// Redis keeps the code table in a single string value addressed with
// SETRANGE/GETRANGE, so the layout matches the EEPROM byte for byte.
type Redis struct {
	client   *redis.Client
	key      string
	capacity int
	timeout  time.Duration
}

// NewRedis connects, then pads the key with the erased pattern up to capacity.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis medium: addr required")
	}
	if cfg.Key == "" {
		return nil, errors.New("redis medium: key required")
	}
	if cfg.Capacity <= 0 {
		return nil, fmt.Errorf("redis medium: capacity must be > 0, got %d", cfg.Capacity)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis medium: ping %s: %w", cfg.Addr, err)
	}

	r := &Redis{
		client:   client,
		key:      cfg.Key,
		capacity: cfg.Capacity,
		timeout:  cfg.Timeout,
	}

	if err := r.pad(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return r, nil
}

func (r *Redis) pad(ctx context.Context) error {
	n, err := r.client.StrLen(ctx, r.key).Result()
	if err != nil {
		return fmt.Errorf("redis medium: strlen %s: %w", r.key, err)
	}
	if int(n) >= r.capacity {
		return nil
	}

	fill := strings.Repeat(string([]byte{layout.ErasedByte}), r.capacity-int(n))
	if err := r.client.SetRange(ctx, r.key, n, fill).Err(); err != nil {
		return fmt.Errorf("redis medium: pad %s: %w", r.key, err)
	}
	return nil
}

func (r *Redis) opContext() (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), r.timeout)
}

func (r *Redis) ReadCell(addr uint16) (byte, error) {
	ctx, cancel := r.opContext()
	defer cancel()

	s, err := r.client.GetRange(ctx, r.key, int64(addr), int64(addr)).Result()
	if err != nil {
		return 0, err
	}
	if len(s) != 1 {
		return 0, fmt.Errorf("redis medium: addr %d beyond stored value", addr)
	}
	return s[0], nil
}

func (r *Redis) WriteCell(addr uint16, v byte) error {
	ctx, cancel := r.opContext()
	defer cancel()

	return r.client.SetRange(ctx, r.key, int64(addr), string([]byte{v})).Err()
}

func (r *Redis) Capacity() int { return r.capacity }

func (r *Redis) Close() error { return r.client.Close() }
