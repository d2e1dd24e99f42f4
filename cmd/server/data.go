// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/coursecompass/internal/config"
	"github.com/tomtom215/coursecompass/internal/dataset"
	"github.com/tomtom215/coursecompass/internal/logging"
	"github.com/tomtom215/coursecompass/internal/metrics"
	"github.com/tomtom215/coursecompass/internal/store"
)

const (
	sourceJSON     = "json"
	sourceSnapshot = "snapshot"
)

// loadedDataset is the built dataset plus where it came from. raw is kept so
// a JSON load can be written to the snapshot store afterwards.
type loadedDataset struct {
	dataset *dataset.Dataset
	raw     *dataset.Raw
	source  string
}

// loadDataset prefers a complete snapshot and falls back to the JSON files.
// snapshots may be nil.
func loadDataset(ctx context.Context, cfg *config.Config, snapshots *store.SnapshotStore) (*loadedDataset, error) {
	start := time.Now()

	raw, source, err := readRaw(ctx, cfg, snapshots)
	if err != nil {
		return nil, err
	}

	ds, err := dataset.Build(raw, logging.WithComponent("dataset"))
	if err != nil {
		return nil, fmt.Errorf("build dataset from %s: %w", source, err)
	}

	elapsed := time.Since(start)
	metrics.RecordDatasetLoad(source, elapsed)
	logging.Info().
		Str("source", source).
		Int("courses", ds.Catalog.Len()).
		Int("embeddings", ds.Index.Len()).
		Int("dropped_embeddings", ds.DroppedEmbeddings).
		Dur("duration", elapsed).
		Msg("Dataset loaded")

	return &loadedDataset{dataset: ds, raw: raw, source: source}, nil
}

func readRaw(ctx context.Context, cfg *config.Config, snapshots *store.SnapshotStore) (*dataset.Raw, string, error) {
	paths := dataset.Paths{
		Courses:       cfg.Data.CoursesPath,
		Embeddings:    cfg.Data.EmbeddingsPath,
		Prerequisites: cfg.Data.PrerequisitesPath,
	}

	if snapshots != nil && !cfg.Data.RebuildSnapshot {
		raw, ok, err := snapshots.LoadDataset(ctx)
		switch {
		case err != nil:
			logging.Warn().Err(err).Msg("Snapshot unreadable, falling back to JSON")
		case !ok:
			logging.Info().Str("dir", cfg.Data.SnapshotDir).Msg("No complete snapshot, loading JSON")
		case snapshotStale(raw, paths):
			logging.Info().Str("dir", cfg.Data.SnapshotDir).Msg("JSON inputs changed since the snapshot, reloading")
		default:
			return raw, sourceSnapshot, nil
		}
	}

	raw, err := dataset.Load(ctx, paths)
	if err != nil {
		return nil, "", fmt.Errorf("load JSON dataset: %w", err)
	}
	return raw, sourceJSON, nil
}

// snapshotStale reports whether the JSON inputs differ from the files the
// snapshot was built from. Without readable JSON inputs the snapshot is the
// only source and is never stale.
func snapshotStale(raw *dataset.Raw, paths dataset.Paths) bool {
	if paths.Courses == "" || paths.Embeddings == "" {
		return false
	}
	current, err := dataset.Fingerprint(paths)
	if err != nil {
		logging.Debug().Err(err).Msg("JSON inputs not readable, keeping snapshot")
		return false
	}
	return current != raw.Source
}
