// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package embedder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/coursecompass/internal/config"
	"github.com/tomtom215/coursecompass/internal/metrics"
)

// ErrUnavailable is returned without calling the service while the breaker
// is open or its half-open trial budget is spent.
var ErrUnavailable = errors.New("embedding service unavailable")

const breakerName = "embedding-service"

// Breaker wraps an Embedder with a circuit breaker and an optional rate
// limit. It never retries.
type Breaker struct {
	next    Embedder
	cb      *gobreaker.CircuitBreaker[[]float64]
	limiter *rate.Limiter
	name    string
	logger  zerolog.Logger
}

// NewBreaker wraps next using the breaker and rate settings in cfg.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBreaker(next Embedder, cfg *config.EmbeddingConfig, logger zerolog.Logger) *Breaker {
	b := &Breaker{
		next:   next,
		name:   breakerName,
		logger: logger.With().Str("component", "embedder").Logger(),
	}

	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		b.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	metrics.CircuitBreakerState.WithLabelValues(b.name).Set(0)

	b.cb = gobreaker.NewCircuitBreaker[[]float64](gobreaker.Settings{
		Name:        b.name,
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			trip := counts.ConsecutiveFailures >= threshold
			if trip {
				b.logger.Warn().
					Uint32("consecutive_failures", counts.ConsecutiveFailures).
					Msg("opening embedding circuit")
			}
			return trip
		},

		// A caller hanging up says nothing about the service, so the call is
		// neither a success nor a failure. Deadlines still count as failures:
		// the embed timeout is how a slow service shows up.
		IsExcluded: func(err error) bool {
			return errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			b.logger.Info().Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state transition")
			metrics.RecordBreakerTransition(name, from.String(), to.String())
		},
	})

	return b
}

// Embed rate-limits, then calls the wrapped Embedder through the breaker.
func (b *Breaker) Embed(ctx context.Context, text string) ([]float64, error) {
	start := time.Now()

	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			metrics.RecordEmbedding(time.Since(start), err, true)
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	vec, err := b.cb.Execute(func() ([]float64, error) {
		return b.next.Embed(ctx, text)
	})
	duration := time.Since(start)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordBreakerResult(b.name, "rejected")
			metrics.RecordEmbedding(duration, err, true)
			b.logger.Warn().Err(err).Msg("embedding request rejected")
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		if errors.Is(err, context.Canceled) {
			metrics.RecordBreakerResult(b.name, "excluded")
		} else {
			metrics.RecordBreakerResult(b.name, "failure")
		}
		metrics.RecordEmbedding(duration, err, false)
		return nil, err
	}

	metrics.RecordBreakerResult(b.name, "success")
	metrics.RecordEmbedding(duration, nil, false)
	return vec, nil
}

// State returns the breaker state: "closed", "half-open" or "open".
func (b *Breaker) State() string {
	return b.cb.State().String()
}
