// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/coursecompass/internal/embedder"
	"github.com/tomtom215/coursecompass/internal/prereq"
	"github.com/tomtom215/coursecompass/internal/recommend"
)

// Error codes
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeRequestTooLarge    = "REQUEST_TOO_LARGE"
	ErrCodeEmbeddingFailed    = "EMBEDDING_FAILED"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeDimensionMismatch  = "DIMENSION_MISMATCH"
	ErrCodeCycle              = "PREREQUISITE_CYCLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// engineError maps an engine error to an HTTP status and payload.
func engineError(err error) (int, *APIError) {
	var embedErr *recommend.EmbeddingError
	var cycleErr *prereq.CycleError

	switch {
	case errors.Is(err, recommend.ErrEmptyQuery):
		return http.StatusBadRequest, &APIError{Code: ErrCodeValidation, Message: err.Error()}

	case errors.Is(err, embedder.ErrUnavailable):
		details := map[string]interface{}{}
		if errors.As(err, &embedErr) {
			details["query"] = embedErr.Query
		}
		return http.StatusServiceUnavailable, &APIError{
			Code:    ErrCodeServiceUnavailable,
			Message: "embedding service temporarily unavailable",
			Details: details,
		}

	case errors.As(err, &embedErr):
		return http.StatusBadGateway, &APIError{
			Code:    ErrCodeEmbeddingFailed,
			Message: "could not embed query",
			Details: map[string]interface{}{"query": embedErr.Query},
		}

	case errors.Is(err, recommend.ErrQueryDimension):
		return http.StatusBadRequest, &APIError{Code: ErrCodeDimensionMismatch, Message: err.Error()}

	case errors.As(err, &cycleErr):
		return http.StatusUnprocessableEntity, &APIError{
			Code:    ErrCodeCycle,
			Message: "prerequisite cycle reachable from target",
			Details: map[string]interface{}{"cycle": cycleErr.Path},
		}

	default:
		return http.StatusInternalServerError, &APIError{Code: ErrCodeInternal, Message: "internal error"}
	}
}
