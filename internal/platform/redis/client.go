// Package redis wraps the go-redis client behind the service's config. The
// cache layer treats Redis as optional; an unconfigured URL yields no client
// and callers degrade to store reads.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"crewdock/internal/platform/config"
)

// Client is a connected go-redis client with a health probe for /healthz.
type Client struct {
	*redis.Client
}

// New connects using cfg. Returns (nil, nil) when no URL is configured, so
// callers can branch on presence without a sentinel error.
func New(cfg config.Redis) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Client{Client: client}, nil
}

// Health reports whether the connection still answers.
func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx).Err()
}
