// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package embedder

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownText is returned by Static for text it has no vector for.
var ErrUnknownText = errors.New("no vector for text")

// Static serves vectors from a fixed table keyed by normalized text
// (trimmed, lower-cased). It is safe for concurrent use.
type Static struct {
	vectors map[string][]float64
}

// NewStatic copies table into a new Static.
func NewStatic(table map[string][]float64) *Static {
	vectors := make(map[string][]float64, len(table))
	for text, vec := range table {
		vectors[normalize(text)] = append([]float64(nil), vec...)
	}
	return &Static{vectors: vectors}
}

// Embed returns a copy of the vector stored for text.
func (s *Static) Embed(ctx context.Context, text string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vec, ok := s.vectors[normalize(text)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownText, text)
	}
	return append([]float64(nil), vec...), nil
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
