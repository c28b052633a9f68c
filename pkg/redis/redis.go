// Package redis connects the service to its optional shared backend. An
// empty REDIS_URL means the service runs on its in-process stores instead,
// so every helper here assumes the caller already checked IsConfigured.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrEmptyConnectionURL is returned when Connect is called without a URL.
	ErrEmptyConnectionURL = errors.New("redis: connection URL is empty")
	// ErrParseConnString wraps an unparseable connection URL.
	ErrParseConnString = errors.New("redis: cannot parse connection URL")
	// ErrNotReady means the server did not answer within the configured retries.
	ErrNotReady = errors.New("redis: server not ready")
	// ErrHealthcheckFailed wraps a failed readiness ping.
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)

// Config carries the env-derived connection settings.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// IsConfigured reports whether a connection URL was supplied.
func (c Config) IsConfigured() bool { return c.ConnectionURL != "" }

// Connect dials the server, retrying RetryAttempts times with RetryInterval
// pauses, all bounded by ConnectTimeout. The returned client has answered at
// least one PING.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if !cfg.IsConfigured() {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrParseConnString, err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	for range cfg.RetryAttempts {
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}
	return nil, ErrNotReady
}

// Healthcheck adapts a PING into the readiness-check shape the HTTP health
// endpoint consumes.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
