// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

// Package index implements exact nearest-neighbour ranking over course
// embedding vectors using cosine similarity.
//
// The index is a linear scan over every stored vector. Catalog-sized inputs
// (thousands of courses) make this cheap enough that an approximate structure
// is not worth its loss of exactness; any replacement must reproduce the same
// ordering, including the tie-break on catalog insertion order.
package index

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomtom215/coursecompass/internal/catalog"
)

var (
	// ErrUnknownCourse is returned when an embedding references a course that
	// the catalog does not contain.
	ErrUnknownCourse = errors.New("embedding references unknown course")

	// ErrDimensionMismatch is returned when stored vectors differ in length.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)

// Match is a single ranked result.
type Match struct {
	CourseID string  `json:"course_id"`
	Score    float64 `json:"score"`
}

// SubjectFilter restricts ranking to a set of subjects. A nil filter admits
// every subject.
type SubjectFilter map[string]struct{}

// Subjects builds a filter from subject codes. No arguments yields nil.
func Subjects(subjects ...string) SubjectFilter {
	if len(subjects) == 0 {
		return nil
	}
	f := make(SubjectFilter, len(subjects))
	for _, s := range subjects {
		f[s] = struct{}{}
	}
	return f
}

// Allows reports whether the subject passes the filter.
func (f SubjectFilter) Allows(subject string) bool {
	if f == nil {
		return true
	}
	_, ok := f[subject]
	return ok
}

type entry struct {
	id      string
	subject string
	vector  []float64
	norm    float64
}

// Index holds one embedding vector per course. It is immutable after New and
// safe for concurrent readers.
type Index struct {
	entries []entry
	byID    map[string]int
	dim     int
}

// New builds an index from a vector table. Every identifier must resolve in
// the catalog and every vector must have the same length. Catalog courses
// without a vector are allowed; they simply never appear in results.
func New(cat *catalog.Catalog, vectors map[string][]float64) (*Index, error) {
	idx := &Index{
		entries: make([]entry, 0, len(vectors)),
		byID:    make(map[string]int, len(vectors)),
	}

	for id, vec := range vectors {
		if !cat.Has(id) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCourse, id)
		}
		if idx.dim == 0 {
			idx.dim = len(vec)
		} else if len(vec) != idx.dim {
			return nil, fmt.Errorf("%w: %s has %d, expected %d", ErrDimensionMismatch, id, len(vec), idx.dim)
		}
	}

	// Iterate in catalog order so entries, and therefore scan order, are deterministic.
	for _, id := range cat.IDs() {
		vec, ok := vectors[id]
		if !ok {
			continue
		}
		course, _ := cat.Get(id)

		stored := make([]float64, len(vec))
		copy(stored, vec)

		idx.byID[id] = len(idx.entries)
		idx.entries = append(idx.entries, entry{
			id:      id,
			subject: course.Subject,
			vector:  stored,
			norm:    norm(stored),
		})
	}

	return idx, nil
}

// Len returns the number of indexed vectors.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Dim returns the vector dimension, or 0 for an empty index.
func (idx *Index) Dim() int {
	return idx.dim
}

// Has reports whether the course has an embedding.
func (idx *Index) Has(id string) bool {
	_, ok := idx.byID[id]
	return ok
}

// RankByVector returns the k courses most similar to query, best first.
// Equal scores are ordered by catalog insertion order.
func (idx *Index) RankByVector(query []float64, k int, subjects SubjectFilter) []Match {
	return idx.rank(query, k, subjects, "")
}

// RankByCourse ranks courses by similarity to the stored vector of id and
// never includes id itself. A course without an embedding yields an empty list.
func (idx *Index) RankByCourse(id string, k int, subjects SubjectFilter) []Match {
	i, ok := idx.byID[id]
	if !ok {
		return []Match{}
	}
	return idx.rank(idx.entries[i].vector, k, subjects, id)
}

func (idx *Index) rank(query []float64, k int, subjects SubjectFilter, exclude string) []Match {
	if k <= 0 || len(idx.entries) == 0 {
		return []Match{}
	}

	qNorm := norm(query)
	best := newTopK(k)

	for i := range idx.entries {
		e := &idx.entries[i]
		if e.id == exclude || !subjects.Allows(e.subject) {
			continue
		}
		best.offer(candidate{pos: i, score: cosineWithNorms(query, e.vector, qNorm, e.norm)})
	}

	ranked := best.sorted()
	matches := make([]Match, len(ranked))
	for i, c := range ranked {
		matches[i] = Match{CourseID: idx.entries[c.pos].id, Score: c.score}
	}
	return matches
}

// Cosine returns dot(a,b) / (|a| * |b|). It is 0 when either vector has zero
// norm or the lengths differ.
func Cosine(a, b []float64) float64 {
	return cosineWithNorms(a, b, norm(a), norm(b))
}

func cosineWithNorms(a, b []float64, normA, normB float64) float64 {
	if len(a) != len(b) || len(a) == 0 || normA == 0 || normB == 0 {
		return 0
	}

	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot / (normA * normB)
}

func norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
