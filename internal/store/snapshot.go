// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

// Package store persists a decoded dataset in BadgerDB so the server can
// start from a local snapshot instead of re-reading the JSON exports.
//
// Key layout:
//
//	meta:snapshot        snapshotMeta, written last; its presence marks a complete snapshot
//	course:00000042      catalog.Course at catalog position 42
//	embedding:CSE 151A   []float64
//	prereq:CSE 151A      prereq.Requirements (only for precomputed requirements)
//	text:CSE 151A        string, the text the embedding was built from
//
// Values are JSON. A snapshot is replaced as a whole by SaveDataset and is
// read-only afterwards.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/coursecompass/internal/catalog"
	"github.com/tomtom215/coursecompass/internal/dataset"
	"github.com/tomtom215/coursecompass/internal/prereq"
)

// Key prefixes for BadgerDB storage
const (
	metaKey         = "meta:snapshot"
	coursePrefix    = "course:"
	embeddingPrefix = "embedding:"
	prereqPrefix    = "prereq:"
	textPrefix      = "text:"
)

// snapshotFormat is bumped whenever the key layout or value encoding changes.
const snapshotFormat = 2

// ErrFormatMismatch is returned when a snapshot was written by an
// incompatible version.
var ErrFormatMismatch = errors.New("snapshot format mismatch")

type snapshotMeta struct {
	Format           int       `json:"format"`
	Courses          int       `json:"courses"`
	Embeddings       int       `json:"embeddings"`
	EmbeddingDim     int       `json:"embedding_dim"`
	Model            string    `json:"model,omitempty"`
	HasPrerequisites bool      `json:"has_prerequisites"`
	Source           string    `json:"source,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// SnapshotStore reads and writes dataset snapshots.
type SnapshotStore struct {
	db     *badger.DB
	logger zerolog.Logger
}

// Open opens (or creates) a snapshot database in dir. inMemory ignores dir
// and keeps everything in RAM, which tests use.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(dir string, inMemory bool, logger zerolog.Logger) (*SnapshotStore, error) {
	logger = logger.With().Str("component", "snapshot").Logger()

	opts := badger.DefaultOptions(dir)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = badgerLogger{logger: logger}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	return &SnapshotStore{db: db, logger: logger}, nil
}

// Close closes the database.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// SaveDataset replaces the stored snapshot with raw.
func (s *SnapshotStore) SaveDataset(ctx context.Context, raw *dataset.Raw) error {
	start := time.Now()

	// Remove the completion marker first so a crash mid-write leaves no
	// snapshot rather than a partial one.
	if err := s.db.DropPrefix([]byte(metaKey), []byte(coursePrefix), []byte(embeddingPrefix), []byte(prereqPrefix), []byte(textPrefix)); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for i := range raw.Courses {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := setJSON(wb, courseKey(i), raw.Courses[i]); err != nil {
			return fmt.Errorf("write course %s: %w", raw.Courses[i].ID(), err)
		}
	}
	for id, vec := range raw.Embeddings {
		if err := setJSON(wb, embeddingPrefix+id, vec); err != nil {
			return fmt.Errorf("write embedding %s: %w", id, err)
		}
	}
	for id, reqs := range raw.Prerequisites {
		if err := setJSON(wb, prereqPrefix+id, reqs); err != nil {
			return fmt.Errorf("write requirements %s: %w", id, err)
		}
	}
	for id, text := range raw.CourseTexts {
		if err := setJSON(wb, textPrefix+id, text); err != nil {
			return fmt.Errorf("write text %s: %w", id, err)
		}
	}

	if err := wb.Flush(); err != nil {
		return fmt.Errorf("flush snapshot: %w", err)
	}

	meta := snapshotMeta{
		Format:           snapshotFormat,
		Courses:          len(raw.Courses),
		Embeddings:       len(raw.Embeddings),
		EmbeddingDim:     raw.EmbeddingDim,
		Model:            raw.Model,
		HasPrerequisites: raw.Prerequisites != nil,
		Source:           raw.Source,
		CreatedAt:        time.Now().UTC(),
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal snapshot meta: %w", err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(metaKey), data)
	}); err != nil {
		return fmt.Errorf("write snapshot meta: %w", err)
	}

	s.logger.Info().
		Int("courses", meta.Courses).
		Int("embeddings", meta.Embeddings).
		Dur("duration", time.Since(start)).
		Msg("snapshot saved")
	return nil
}

// LoadDataset returns the stored snapshot. The boolean is false when no
// complete snapshot exists.
func (s *SnapshotStore) LoadDataset(ctx context.Context) (*dataset.Raw, bool, error) {
	var meta snapshotMeta
	found := true

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(metaKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			found = false
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &meta)
		})
	})
	if err != nil {
		return nil, false, fmt.Errorf("read snapshot meta: %w", err)
	}
	if !found {
		return nil, false, nil
	}
	if meta.Format != snapshotFormat {
		return nil, false, fmt.Errorf("%w: stored %d, expected %d", ErrFormatMismatch, meta.Format, snapshotFormat)
	}

	raw := &dataset.Raw{
		Courses:      make([]catalog.Course, 0, meta.Courses),
		Embeddings:   make(map[string][]float64, meta.Embeddings),
		EmbeddingDim: meta.EmbeddingDim,
		Model:        meta.Model,
		CourseTexts:  make(map[string]string),
		Source:       meta.Source,
	}
	if meta.HasPrerequisites {
		raw.Prerequisites = make(map[string]prereq.Requirements)
	}

	err = s.db.View(func(txn *badger.Txn) error {
		// Course keys are zero padded, so iteration order is catalog order.
		if err := scanPrefix(ctx, txn, coursePrefix, func(_ string, val []byte) error {
			var c catalog.Course
			if err := json.Unmarshal(val, &c); err != nil {
				return err
			}
			raw.Courses = append(raw.Courses, c)
			return nil
		}); err != nil {
			return fmt.Errorf("read courses: %w", err)
		}

		if err := scanPrefix(ctx, txn, embeddingPrefix, func(id string, val []byte) error {
			var vec []float64
			if err := json.Unmarshal(val, &vec); err != nil {
				return err
			}
			raw.Embeddings[id] = vec
			return nil
		}); err != nil {
			return fmt.Errorf("read embeddings: %w", err)
		}

		if err := scanPrefix(ctx, txn, textPrefix, func(id string, val []byte) error {
			var text string
			if err := json.Unmarshal(val, &text); err != nil {
				return err
			}
			raw.CourseTexts[id] = text
			return nil
		}); err != nil {
			return fmt.Errorf("read texts: %w", err)
		}

		if !meta.HasPrerequisites {
			return nil
		}
		if err := scanPrefix(ctx, txn, prereqPrefix, func(id string, val []byte) error {
			var reqs prereq.Requirements
			if err := json.Unmarshal(val, &reqs); err != nil {
				return err
			}
			raw.Prerequisites[id] = reqs
			return nil
		}); err != nil {
			return fmt.Errorf("read requirements: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if len(raw.Courses) != meta.Courses {
		return nil, false, fmt.Errorf("snapshot incomplete: %d courses stored, meta says %d", len(raw.Courses), meta.Courses)
	}

	s.logger.Info().
		Int("courses", len(raw.Courses)).
		Int("embeddings", len(raw.Embeddings)).
		Time("created_at", meta.CreatedAt).
		Msg("snapshot loaded")
	return raw, true, nil
}

func scanPrefix(ctx context.Context, txn *badger.Txn, prefix string, fn func(key string, val []byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		item := it.Item()
		key := strings.TrimPrefix(string(item.Key()), prefix)
		if err := item.Value(func(val []byte) error {
			return fn(key, val)
		}); err != nil {
			return fmt.Errorf("%s%s: %w", prefix, key, err)
		}
	}
	return nil
}

func setJSON(wb *badger.WriteBatch, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return wb.Set([]byte(key), data)
}

func courseKey(pos int) string {
	return fmt.Sprintf("%s%08d", coursePrefix, pos)
}

// badgerLogger routes badger's internal logging to zerolog. Badger's info
// output is chatty, so it is logged at debug.
type badgerLogger struct {
	logger zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Trace().Msgf(strings.TrimSpace(format), args...)
}
