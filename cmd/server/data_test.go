// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/coursecompass/internal/config"
	"github.com/tomtom215/coursecompass/internal/dataset"
	"github.com/tomtom215/coursecompass/internal/store"
)

const testCoursesJSON = `[
  {"subject": "CSE", "number": "11", "title": "Intro Programming", "units": 4},
  {"subject": "CSE", "number": "12", "title": "Data Structures", "description": "Prerequisites: CSE 11.", "units": 4}
]`

const testEmbeddingsJSON = `{"CSE 11": [0, 1], "CSE 12": [1, 0]}`

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDataset_SnapshotFollowsJSONEdits(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	cfg := &config.Config{Data: config.DataConfig{
		CoursesPath:    filepath.Join(dir, "courses.json"),
		EmbeddingsPath: filepath.Join(dir, "embeddings.json"),
		SnapshotDir:    filepath.Join(dir, "snapshot"),
	}}
	writeTestFile(t, cfg.Data.CoursesPath, testCoursesJSON)
	writeTestFile(t, cfg.Data.EmbeddingsPath, testEmbeddingsJSON)

	snapshots, err := store.Open("", true, zerolog.Nop())
	if err != nil {
		t.Fatalf("store.Open() error: %v", err)
	}
	t.Cleanup(func() { _ = snapshots.Close() })

	first, err := loadDataset(ctx, cfg, snapshots)
	if err != nil {
		t.Fatalf("loadDataset() error: %v", err)
	}
	if first.source != sourceJSON {
		t.Fatalf("first load source = %q, want %q", first.source, sourceJSON)
	}
	if err := snapshots.SaveDataset(ctx, first.raw); err != nil {
		t.Fatalf("SaveDataset() error: %v", err)
	}

	second, err := loadDataset(ctx, cfg, snapshots)
	if err != nil {
		t.Fatalf("loadDataset() error: %v", err)
	}
	if second.source != sourceSnapshot {
		t.Errorf("unchanged inputs source = %q, want %q", second.source, sourceSnapshot)
	}

	edited := `[
  {"subject": "CSE", "number": "11", "title": "Intro Programming", "units": 4},
  {"subject": "CSE", "number": "12", "title": "Data Structures", "description": "Prerequisites: CSE 11.", "units": 4},
  {"subject": "CSE", "number": "100", "title": "Advanced Data Structures", "description": "Prerequisites: CSE 12.", "units": 4}
]`
	writeTestFile(t, cfg.Data.CoursesPath, edited)

	third, err := loadDataset(ctx, cfg, snapshots)
	if err != nil {
		t.Fatalf("loadDataset() error: %v", err)
	}
	if third.source != sourceJSON {
		t.Errorf("edited inputs source = %q, want %q", third.source, sourceJSON)
	}
	if got := third.dataset.Catalog.Len(); got != 3 {
		t.Errorf("edited catalog has %d courses, want 3", got)
	}
}

func TestSnapshotStale(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	courses := filepath.Join(dir, "courses.json")
	embeddings := filepath.Join(dir, "embeddings.json")
	writeTestFile(t, courses, testCoursesJSON)
	writeTestFile(t, embeddings, testEmbeddingsJSON)

	paths := dataset.Paths{Courses: courses, Embeddings: embeddings}
	current, err := dataset.Fingerprint(paths)
	if err != nil {
		t.Fatalf("Fingerprint() error: %v", err)
	}

	tests := []struct {
		name   string
		source string
		paths  dataset.Paths
		want   bool
	}{
		{"matching inputs", current, paths, false},
		{"older snapshot", "courses.json:1:1|embeddings.json:1:1|-", paths, true},
		{"snapshot without fingerprint", "", paths, true},
		{"no json configured", "", dataset.Paths{}, false},
		{
			name:   "json inputs missing",
			source: current,
			paths:  dataset.Paths{Courses: filepath.Join(dir, "gone.json"), Embeddings: embeddings},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := snapshotStale(&dataset.Raw{Source: tt.source}, tt.paths); got != tt.want {
				t.Errorf("snapshotStale() = %v, want %v", got, tt.want)
			}
		})
	}
}
