package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc is called before each retry with the error that caused it.
type NotifyFunc func(err error, wait time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64
	// MaxRetries caps attempts after the first one. Zero means bounded by MaxElapsedTime only.
	MaxRetries uint64

	// nil retries every error
	ShouldRetry ShouldRetryFunc
	OnRetry     NotifyFunc
}
