package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/KothuruDhansukh/ECO-MART/pkg/config"

	"github.com/redis/go-redis/v9"
)

const (
	pingTimeout = 5 * time.Second
	ioTimeout   = 3 * time.Second
	poolSize    = 10
	minIdle     = 2
)

// profileCacheOptions sizes the client for the profile cache: small values,
// short round trips, a handful of pooled connections.
func profileCacheOptions(cfg config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  pingTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
		PoolSize:     poolSize,
		MinIdleConns: minIdle,
	}
}

// NewRedisClient returns a client that has answered one PING.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	opts := profileCacheOptions(cfg)
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s (db %d): %w", opts.Addr, opts.DB, err)
	}
	return client, nil
}

// CloseRedisClient tolerates a nil client so callers can defer it unconditionally.
func CloseRedisClient(client *redis.Client) error {
	if client == nil {
		return nil
	}
	return client.Close()
}
