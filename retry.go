package arabizi

import (
	"context"
	"errors"
	"time"
)

// RetryConfig holds configuration for retry behavior.
type RetryConfig struct {
	MaxRetries int           // Maximum number of retry attempts
	BaseDelay  time.Duration // Initial delay between retries
	MaxDelay   time.Duration // Maximum delay between retries
}

// DefaultRetryConfig returns sensible defaults for retry behavior.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
		MaxDelay:   30 * time.Second,
	}
}

// RetryFunc is a function that can be retried.
type RetryFunc[T any] func() (T, error)

// WithRetry executes a function with exponential backoff retry.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn RetryFunc[T]) (T, error) {
	var lastErr error
	var zero T

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
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

		if !IsRetryable(err) {
			return zero, err
		}

		// No sleep after the last attempt.
		if attempt < cfg.MaxRetries {
			delay := cfg.BaseDelay * time.Duration(1<<attempt)
			if delay > cfg.MaxDelay {
				delay = cfg.MaxDelay
			}

			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return zero, lastErr
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var trErr *TranslatorError
	if errors.As(err, &trErr) {
		return trErr.Retryable
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	return false
}

// RetryableTranslator wraps a Translator with retry logic. The pipeline never
// retries on its own (a user can simply resend); wrap the backend with this
// decorator when automatic retries are wanted.
type RetryableTranslator struct {
	translator Translator
	config     RetryConfig
}

// NewRetryableTranslator creates a new backend wrapper with retry logic.
func NewRetryableTranslator(translator Translator, cfg RetryConfig) *RetryableTranslator {
	return &RetryableTranslator{
		translator: translator,
		config:     cfg,
	}
}

// Translate implements Translator with retry logic.
func (t *RetryableTranslator) Translate(ctx context.Context, req TranslateRequest) (string, error) {
	return WithRetry(ctx, t.config, func() (string, error) {
		return t.translator.Translate(ctx, req)
	})
}
