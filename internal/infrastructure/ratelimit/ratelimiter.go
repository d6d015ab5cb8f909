// Package ratelimit throttles the unauthenticated auth endpoints. Keys are
// caller-supplied (client IP in practice); the limiter itself is transport
// agnostic.
package ratelimit

import (
	"context"
	"time"
)

// Limiter answers whether one more request under key fits inside the window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Remaining(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}

// Options configure a limiter: at most Limit requests per Window.
type Options struct {
	Limit  int
	Window time.Duration
}
