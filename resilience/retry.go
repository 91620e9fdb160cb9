package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/vscentrum/restkit/logger"
)

// RetryConfig configures retry behavior.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including the first).
	MaxAttempts int
	// Sleep is the fixed delay between attempts. Zero disables sleeping.
	Sleep time.Duration
	// RetryIf determines whether an error should be retried.
	RetryIf func(error) bool
	// OnRetry is called after each failed attempt that will be retried.
	OnRetry func(attempt int, err error)
}

// DefaultRetryConfig returns sensible defaults: three attempts, no sleep,
// retry everything except context cancellation.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		RetryIf:     DefaultRetryIf,
	}
}

// DefaultRetryIf retries all errors except context cancellation.
func DefaultRetryIf(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Retry executes fn up to cfg.MaxAttempts times. Intermediate failures are
// logged at debug level; the error of the final attempt is returned as-is.
func Retry[T any](ctx context.Context, cfg RetryConfig, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.RetryIf == nil {
		cfg.RetryIf = DefaultRetryIf
	}

	log := logger.WithComponent("resilience")

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !cfg.RetryIf(err) || attempt == cfg.MaxAttempts {
			break
		}

		log.Debug("attempt failed, retrying", logger.Fields(
			"attempt", attempt,
			logger.FieldError, err.Error(),
		))
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err)
		}

		if cfg.Sleep > 0 {
			log.Warn("sleeping before next attempt", logger.Fields(
				"sleep", cfg.Sleep.String(),
			))
			timer := time.NewTimer(cfg.Sleep)
			select {
			case <-ctx.Done():
				timer.Stop()
				return zero, ctx.Err()
			case <-timer.C:
			}
		}
	}

	return zero, lastErr
}

// RetryFunc executes a function that returns only an error.
func RetryFunc(ctx context.Context, cfg RetryConfig, fn func() error) error {
	_, err := Retry(ctx, cfg, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
