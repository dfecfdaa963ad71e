package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/donavanyieh/Daily-Attention-UI/internal/models"
)

// ErrNoAddr is returned when the cache is built without a Redis address.
var ErrNoAddr = errors.New("redis addr is required")

// Feed is the cached copy of the seeded paper list.
type Feed struct {
	Fingerprint string         `json:"fingerprint"`
	Papers      []models.Paper `json:"papers"`
	SeededAt    time.Time      `json:"seeded_at"`
}

// PaperCache mirrors the papers table for readers that should not hit SQLite.
type PaperCache interface {
	Get(ctx context.Context) (*Feed, bool, error)
	Prime(ctx context.Context, feed Feed) error
	Invalidate(ctx context.Context) error
	Close() error
}

type redisPaperCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisPaperCache builds a cache with the given addr/password/db.
func NewRedisPaperCache(addr, password string, db int, ttl time.Duration, prefix string) (PaperCache, error) {
	if addr == "" {
		return nil, ErrNoAddr
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if prefix == "" {
		prefix = "papers"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisPaperCache{client: client, ttl: ttl, prefix: prefix}, nil
}

// FeedKey is the key holding the JSON-encoded Feed.
func FeedKey(prefix string) string {
	return fmt.Sprintf("%s:all", prefix)
}

// FingerprintKey is the key holding only the seed fingerprint.
func FingerprintKey(prefix string) string {
	return fmt.Sprintf("%s:fingerprint", prefix)
}

func (c *redisPaperCache) Get(ctx context.Context) (*Feed, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}
	data, err := c.client.Get(ctx, FeedKey(c.prefix)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var feed Feed
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, false, err
	}
	return &feed, true, nil
}

func (c *redisPaperCache) Prime(ctx context.Context, feed Feed) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(feed)
	if err != nil {
		return err
	}
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, FeedKey(c.prefix), data, c.ttl)
		pipe.Set(ctx, FingerprintKey(c.prefix), feed.Fingerprint, c.ttl)
		return nil
	})
	return err
}

func (c *redisPaperCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, FeedKey(c.prefix), FingerprintKey(c.prefix)).Err()
}

func (c *redisPaperCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
