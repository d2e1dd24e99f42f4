// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/coursecompass/internal/catalog"
	"github.com/tomtom215/coursecompass/internal/recommend"
	"github.com/tomtom215/coursecompass/internal/validation"
)

// Request bodies. Course identifiers in bodies must be canonical
// ("CSE 151A"); completed lists are only checked for non-empty entries since
// unknown completed courses are harmless.

// SearchRequest is the body of POST /api/v1/search.
type SearchRequest struct {
	Query    string   `json:"query" validate:"required,max=1000"`
	Limit    int      `json:"limit" validate:"gte=0"`
	Subjects []string `json:"subjects" validate:"max=50,dive,required"`
}

// FiltersRequest narrows recommendation candidates.
type FiltersRequest struct {
	Subjects []string `json:"subjects" validate:"max=50,dive,required"`
	MinUnits *float64 `json:"min_units" validate:"omitempty,gte=0"`
	MaxUnits *float64 `json:"max_units" validate:"omitempty,gte=0"`
	Level    string   `json:"level" validate:"course_level"`
}

// RecommendRequest is the body of POST /api/v1/recommend.
type RecommendRequest struct {
	Query     string          `json:"query" validate:"required_without=Vector,max=1000"`
	Vector    []float64       `json:"vector"`
	Completed []string        `json:"completed_courses" validate:"max=500,dive,required"`
	Filters   *FiltersRequest `json:"filters"`
	Limit     int             `json:"limit" validate:"gte=0"`
}

// LearningPathRequest is the body of POST /api/v1/learning-path.
type LearningPathRequest struct {
	TargetCourse string   `json:"target_course" validate:"required,course_id"`
	Completed    []string `json:"completed_courses" validate:"max=500,dive,required"`
	Transitive   bool     `json:"transitive"`
}

// EligibilityRequest is the body of POST /api/v1/eligibility.
type EligibilityRequest struct {
	CourseID  string   `json:"course_id" validate:"required,course_id"`
	Completed []string `json:"completed_courses" validate:"max=500,dive,required"`
}

// SimilarRequest is the body of POST /api/v1/similar.
type SimilarRequest struct {
	CourseID string `json:"course_id" validate:"required,course_id"`
	Limit    int    `json:"limit" validate:"gte=0"`
}

// toEngine converts the wire form to an engine request.
func (req *RecommendRequest) toEngine(requestID string) recommend.Request {
	out := recommend.Request{
		Query:     req.Query,
		Vector:    req.Vector,
		Completed: req.Completed,
		Limit:     req.Limit,
		RequestID: requestID,
	}
	if f := req.Filters; f != nil {
		out.Filter = &recommend.Filter{
			Subjects: f.Subjects,
			MinUnits: f.MinUnits,
			MaxUnits: f.MaxUnits,
			Level:    catalog.Level(f.Level),
		}
	}
	return out
}

// errBodyTooLarge is returned by decodeRequest when MaxBytesReader trips.
var errBodyTooLarge = errors.New("request body too large")

// decodeRequest reads a JSON body of at most maxBytes into v and validates
// it. On failure it writes the error response and returns false.
func decodeRequest(w http.ResponseWriter, r *http.Request, maxBytes int64, v interface{}) bool {
	if err := decodeBody(w, r, maxBytes, v); err != nil {
		if errors.Is(err, errBodyTooLarge) {
			respondError(w, r, http.StatusRequestEntityTooLarge,
				&APIError{Code: ErrCodeRequestTooLarge, Message: err.Error()}, nil)
			return false
		}
		respondError(w, r, http.StatusBadRequest,
			&APIError{Code: ErrCodeBadRequest, Message: "invalid JSON body: " + err.Error()}, nil)
		return false
	}

	if verr := validation.ValidateStruct(v); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest,
			&APIError{Code: apiErr.Code, Message: apiErr.Message, Details: apiErr.Details}, nil)
		return false
	}
	return true
}

func decodeBody(w http.ResponseWriter, r *http.Request, maxBytes int64, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	body := r.Body
	if maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("%w: limit %d bytes", errBodyTooLarge, maxErr.Limit)
		}
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("empty body")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
