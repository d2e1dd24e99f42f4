// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrEmbedding marks a failed query embedding call.
	ErrEmbedding = errors.New("query embedding failed")

	// ErrEmptyQuery is returned when neither query text nor vector is given.
	ErrEmptyQuery = errors.New("query text or vector required")

	// ErrQueryDimension is returned when a query vector does not match the
	// dimension of the stored embeddings.
	ErrQueryDimension = errors.New("query vector dimension mismatch")
)

// EmbeddingError reports a failed embedding call together with the text
// that could not be embedded, so callers can retry or report it.
type EmbeddingError struct {
	Query string
	Err   error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("%s for query %q: %v", ErrEmbedding, e.Query, e.Err)
}

// Unwrap returns both the sentinel and the cause, so errors.Is matches
// ErrEmbedding as well as errors from the embedding client.
func (e *EmbeddingError) Unwrap() []error {
	return []error{ErrEmbedding, e.Err}
}
