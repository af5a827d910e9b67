package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"sort"

	"github.com/redis/go-redis/v9"

	"pagebuilder/internal/config"
	"pagebuilder/internal/repository"
)

// PageRedis stores every page as one field of a single Redis hash, so all
// pages share one namespace keyed by page id.
type PageRedis struct {
	client redis.UniversalClient
	key    string
}

// NewPageRedis connects to Redis and verifies the connection.
func NewPageRedis(ctx context.Context, cfg config.RedisConfig) (*PageRedis, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{}
	}
	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return NewPageRedisWithClient(client, cfg.Prefix), nil
}

// NewPageRedisWithClient wraps an existing client.
func NewPageRedisWithClient(client redis.UniversalClient, prefix string) *PageRedis {
	return &PageRedis{client: client, key: pagesKey(prefix)}
}

var _ repository.PageRepository = (*PageRedis)(nil)

// pagesKey builds the hash key. The hash tag keeps it on one cluster slot.
func pagesKey(prefix string) string {
	if prefix == "" {
		prefix = "pagebuilder"
	}
	return "{" + prefix + "}:pages"
}

func (r *PageRedis) Save(ctx context.Context, id string, data []byte) error {
	return r.client.HSet(ctx, r.key, id, data).Err()
}

func (r *PageRedis) Load(ctx context.Context, id string) ([]byte, error) {
	data, err := r.client.HGet(ctx, r.key, id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *PageRedis) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[string], error) {
	ids, err := r.client.HKeys(ctx, r.key).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return &repository.PageResult[string]{Items: repository.Window(ids, pq), Total: len(ids)}, nil
}

func (r *PageRedis) Delete(ctx context.Context, id string) error {
	return r.client.HDel(ctx, r.key, id).Err()
}

func (r *PageRedis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (r *PageRedis) Close() error {
	return r.client.Close()
}
