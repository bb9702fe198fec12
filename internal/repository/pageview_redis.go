package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PageViewRedisRepo keeps per-course page view counters in Redis. The repo
// is optional: a nil receiver or client turns every method into a no-op, so
// the API runs fine without Redis, just without view counts.
type PageViewRedisRepo struct {
	client *redis.Client
}

// NewPageViewRedisRepo connects to Redis and verifies the connection.
func NewPageViewRedisRepo(redisURL, password string) (*PageViewRedisRepo, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &PageViewRedisRepo{client: rdb}, nil
}

func (r *PageViewRedisRepo) key(slug string) string {
	return fmt.Sprintf("views:course:%s", slug)
}

// IncrViews bumps the view counter of a course page and returns the new
// count.
func (r *PageViewRedisRepo) IncrViews(ctx context.Context, slug string) (int64, error) {
	if r == nil || r.client == nil {
		// Counters disabled without Redis
		return 0, nil
	}
	return r.client.Incr(ctx, r.key(slug)).Result()
}

// Views reads the current view counter of a course page.
func (r *PageViewRedisRepo) Views(ctx context.Context, slug string) (int64, error) {
	if r == nil || r.client == nil {
		// Counters disabled without Redis
		return 0, nil
	}
	count, err := r.client.Get(ctx, r.key(slug)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PageViewRedisRepo) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}
