// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

// Package dataset reads the course data files produced by the offline
// scraping and embedding pipeline and assembles them into the catalog,
// embedding index and prerequisite graph used by the engine.
//
// Three files are understood:
//
//	courses.json        [{"subject": "CSE", "number": "151A", "title": ..., "description": ..., "units": 4}]
//	embeddings.json     {"embeddings": {"CSE 151A": [...]}, "course_texts": {...}, "embedding_dim": 384}
//	prerequisites.json  {"CSE 151A": {"prerequisites": [...], "corequisites": [...], "recommended": [...]}}
//
// The embeddings file may also be a bare {"CSE 151A": [...]} object. The
// prerequisites file is optional; without it requirements are parsed from
// course descriptions.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/coursecompass/internal/catalog"
	"github.com/tomtom215/coursecompass/internal/index"
	"github.com/tomtom215/coursecompass/internal/prereq"
)

// ErrEmbeddingDim is returned when a vector length disagrees with the
// declared embedding_dim.
var ErrEmbeddingDim = errors.New("embedding dimension mismatch")

// Paths locates the input files. Prerequisites may be empty.
type Paths struct {
	Courses       string
	Embeddings    string
	Prerequisites string
}

// Raw is the decoded file content before any structure is built. It is also
// the unit persisted by the snapshot store.
type Raw struct {
	Courses    []catalog.Course
	Embeddings map[string][]float64

	// EmbeddingDim is the declared dimension, or 0 when the file omitted it.
	EmbeddingDim int

	// Model names the embedding model when the file recorded it.
	Model string

	// Prerequisites is nil when no precomputed file was given.
	Prerequisites map[string]prereq.Requirements

	// CourseTexts holds the text each vector was embedded from, when the
	// embeddings file recorded it.
	CourseTexts map[string]string

	// Source fingerprints the files Raw was read from. See Fingerprint.
	Source string
}

// Dataset is the built, immutable data the engine serves from.
type Dataset struct {
	Catalog *catalog.Catalog
	Index   *index.Index
	Graph   *prereq.Graph

	// Texts maps catalog courses to their embedded text. Courses missing
	// here fall back to Course.Text.
	Texts map[string]string

	// DroppedEmbeddings counts vectors whose course is not in the catalog.
	DroppedEmbeddings int
}

// Load reads every configured file.
func Load(ctx context.Context, paths Paths) (*Raw, error) {
	source, err := Fingerprint(paths)
	if err != nil {
		return nil, err
	}
	raw := &Raw{Source: source}

	if err := decodeFile(ctx, paths.Courses, func(r io.Reader) error {
		courses, err := DecodeCourses(r)
		raw.Courses = courses
		return err
	}); err != nil {
		return nil, err
	}

	if err := decodeFile(ctx, paths.Embeddings, func(r io.Reader) error {
		emb, err := DecodeEmbeddings(r)
		if err != nil {
			return err
		}
		raw.Embeddings, raw.EmbeddingDim, raw.Model = emb.Vectors, emb.Dim, emb.Model
		raw.CourseTexts = emb.Texts
		return nil
	}); err != nil {
		return nil, err
	}

	if paths.Prerequisites != "" {
		if err := decodeFile(ctx, paths.Prerequisites, func(r io.Reader) error {
			reqs, err := DecodePrerequisites(r)
			raw.Prerequisites = reqs
			return err
		}); err != nil {
			return nil, err
		}
	}

	return raw, nil
}

// Fingerprint identifies the current state of the input files by path, size
// and modification time. Two loads of unchanged files give the same value.
func Fingerprint(paths Paths) (string, error) {
	parts := make([]string, 0, 3)
	for _, path := range []string{paths.Courses, paths.Embeddings, paths.Prerequisites} {
		if path == "" {
			parts = append(parts, "-")
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
		parts = append(parts, fmt.Sprintf("%s:%d:%d", path, info.Size(), info.ModTime().UnixNano()))
	}
	return strings.Join(parts, "|"), nil
}

func decodeFile(ctx context.Context, path string, decode func(io.Reader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := decode(f); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// DecodeCourses decodes a JSON array of course records.
func DecodeCourses(r io.Reader) ([]catalog.Course, error) {
	var courses []catalog.Course
	if err := json.NewDecoder(r).Decode(&courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Embeddings is a decoded embeddings file.
type Embeddings struct {
	Vectors map[string][]float64
	Dim     int
	Model   string

	// Texts is nil for the bare format.
	Texts map[string]string
}

type embeddingsFile struct {
	Embeddings   map[string][]float64 `json:"embeddings"`
	CourseTexts  map[string]string    `json:"course_texts"`
	EmbeddingDim int                  `json:"embedding_dim"`
	ModelName    json.RawMessage      `json:"model_name"`
}

// DecodeEmbeddings decodes either the wrapped or the bare embeddings format
// and checks every vector against the declared dimension.
func DecodeEmbeddings(r io.Reader) (*Embeddings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var shape map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, err
	}

	out := &Embeddings{}
	if _, wrapped := shape["embeddings"]; wrapped {
		var f embeddingsFile
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		out.Vectors, out.Dim, out.Texts = f.Embeddings, f.EmbeddingDim, f.CourseTexts
		// Older files stored the dimension under model_name; only a string is a name.
		var name string
		if json.Unmarshal(f.ModelName, &name) == nil {
			out.Model = name
		}
	} else if err := json.Unmarshal(data, &out.Vectors); err != nil {
		return nil, err
	}

	if out.Vectors == nil {
		out.Vectors = map[string][]float64{}
	}
	if out.Dim > 0 {
		for id, vec := range out.Vectors {
			if len(vec) != out.Dim {
				return nil, fmt.Errorf("%w: %s has %d, declared %d", ErrEmbeddingDim, id, len(vec), out.Dim)
			}
		}
	}
	return out, nil
}

// DecodePrerequisites decodes a precomputed requirements file.
func DecodePrerequisites(r io.Reader) (map[string]prereq.Requirements, error) {
	reqs := map[string]prereq.Requirements{}
	if err := json.NewDecoder(r).Decode(&reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// Build assembles the catalog, index and graph. Vectors for identifiers not
// in the catalog are dropped and counted rather than failing the load, since
// embedding files are often generated from a wider scrape.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Build(raw *Raw, logger zerolog.Logger) (*Dataset, error) {
	start := time.Now()

	cat, err := catalog.New(raw.Courses)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	vectors := make(map[string][]float64, len(raw.Embeddings))
	dropped := 0
	for id, vec := range raw.Embeddings {
		if !cat.Has(id) {
			dropped++
			continue
		}
		vectors[id] = vec
	}

	idx, err := index.New(cat, vectors)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	var graph *prereq.Graph
	if raw.Prerequisites != nil {
		graph = prereq.NewGraph(cat.IDs(), raw.Prerequisites)
	} else {
		graph = prereq.BuildGraph(cat.Courses())
	}

	texts := make(map[string]string, len(raw.CourseTexts))
	for id, text := range raw.CourseTexts {
		if cat.Has(id) {
			texts[id] = text
		}
	}

	ds := &Dataset{Catalog: cat, Index: idx, Graph: graph, Texts: texts, DroppedEmbeddings: dropped}

	event := logger.Info()
	if dropped > 0 {
		event = logger.Warn()
	}
	event.
		Int("courses", cat.Len()).
		Int("embeddings", idx.Len()).
		Int("dropped_embeddings", dropped).
		Int("courses_with_prereqs", graph.Len()).
		Bool("precomputed_prereqs", raw.Prerequisites != nil).
		Dur("duration", time.Since(start)).
		Msg("dataset built")

	return ds, nil
}
