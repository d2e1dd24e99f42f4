// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/coursecompass/internal/dataset"
)

// DefaultSnapshotAttempts bounds how often a failing write is retried.
const DefaultSnapshotAttempts = 3

// DatasetSaver persists a decoded dataset. Satisfied by *store.SnapshotStore.
type DatasetSaver interface {
	SaveDataset(ctx context.Context, raw *dataset.Raw) error
}

// SnapshotWriterService writes the dataset loaded from JSON into the
// snapshot store once, so the next start can skip JSON decoding. The server
// keeps serving from memory whether or not the write succeeds.
type SnapshotWriterService struct {
	saver       DatasetSaver
	raw         *dataset.Raw
	maxAttempts int
	attempts    int
	logger      zerolog.Logger
}

// NewSnapshotWriterService creates a one-shot writer. maxAttempts <= 0 uses
// DefaultSnapshotAttempts.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSnapshotWriterService(saver DatasetSaver, raw *dataset.Raw, maxAttempts int, logger zerolog.Logger) *SnapshotWriterService {
	if maxAttempts <= 0 {
		maxAttempts = DefaultSnapshotAttempts
	}
	return &SnapshotWriterService{
		saver:       saver,
		raw:         raw,
		maxAttempts: maxAttempts,
		logger:      logger.With().Str("component", "snapshot-writer").Logger(),
	}
}

// Serve implements suture.Service. Success, cancellation and exhausted
// retries all end the service; other failures ask for a restart.
func (s *SnapshotWriterService) Serve(ctx context.Context) error {
	s.attempts++
	start := time.Now()

	err := s.saver.SaveDataset(ctx, s.raw)
	switch {
	case err == nil:
		s.logger.Info().
			Int("courses", len(s.raw.Courses)).
			Dur("duration", time.Since(start)).
			Msg("snapshot written")
		return suture.ErrDoNotRestart

	case ctx.Err() != nil:
		return ctx.Err()

	case s.attempts >= s.maxAttempts:
		s.logger.Error().Err(err).Int("attempts", s.attempts).Msg("giving up on snapshot write")
		return suture.ErrDoNotRestart

	default:
		s.logger.Warn().Err(err).Int("attempt", s.attempts).Msg("snapshot write failed, will retry")
		return fmt.Errorf("snapshot write: %w", err)
	}
}

// String identifies the service in supervisor events.
func (s *SnapshotWriterService) String() string {
	return "snapshot-writer"
}
