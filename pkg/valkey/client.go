// Package valkey provides a thin, reusable wrapper around go-redis for the
// components that persist state to a Valkey/Redis instance (currently the
// handover-state store).
package valkey

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewClient creates a Valkey client and verifies connectivity with a PING.
func NewClient(opts *Options) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()
	return NewClientWithContext(ctx, opts)
}

// NewClientWithContext creates a Valkey client using the given context for
// the initial connectivity check.
func NewClientWithContext(ctx context.Context, opts *Options) (*redis.Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.ConnectTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		PoolSize:     opts.PoolSize,
		MinIdleConns: opts.MinIdleConns,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

// MustNewClient creates a Valkey client, panicking on failure. Intended for
// process start-up paths that already treat a missing store as fatal.
func MustNewClient(opts *Options) *redis.Client {
	client, err := NewClient(opts)
	if err != nil {
		panic(err)
	}
	return client
}

// IsConnectionError reports whether err reflects a transport-level failure
// (timeout, refused connection, cancelled context) rather than an
// application-level one.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	return false
}

// IsKeyNotFound reports whether err is go-redis's sentinel for a missing key.
func IsKeyNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}

// DefaultPingInterval is the default health-check cadence for long-lived
// clients.
const DefaultPingInterval = 30 * time.Second
