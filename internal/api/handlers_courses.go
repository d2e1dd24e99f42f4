// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/coursecompass/internal/logging"
	"github.com/tomtom215/coursecompass/internal/recommend"
	"github.com/tomtom215/coursecompass/internal/validation"
)

// SearchResponse is the data of POST /api/v1/search.
type SearchResponse struct {
	Query   string             `json:"query"`
	Results []recommend.Result `json:"results"`
	Count   int                `json:"count"`
}

// RecommendResponse is the data of POST /api/v1/recommend.
type RecommendResponse struct {
	Query      string             `json:"query,omitempty"`
	Completed  []string           `json:"completed_courses"`
	Filters    *FiltersRequest    `json:"filters,omitempty"`
	Results    []recommend.Result `json:"recommendations"`
	Count      int                `json:"count"`
	Limit      int                `json:"limit"`
	Candidates int                `json:"candidates"`
}

// SimilarCoursesResponse is the data of the similarity endpoints.
type SimilarCoursesResponse struct {
	CourseID string             `json:"course_id"`
	Found    bool               `json:"found"`
	Results  []recommend.Result `json:"similar_courses"`
	Count    int                `json:"count"`
}

// CourseInfoResponse is the data of GET /api/v1/courses/{id}.
type CourseInfoResponse struct {
	CourseID string                `json:"course_id"`
	Info     *recommend.CourseInfo `json:"course_info"`
}

// Search handles POST /api/v1/search.
//
// @Summary Semantic course search
// @Description Ranks courses by cosine similarity to the embedded query text, without prerequisite filtering.
// @Description Each result carries a description_snippet of the course text.
// @Tags Courses
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search query"
// @Success 200 {object} APIResponse{data=SearchResponse} "Ranked courses"
// @Failure 400 {object} APIResponse "Invalid request"
// @Failure 502 {object} APIResponse "Embedding service failed"
// @Failure 503 {object} APIResponse "Embedding circuit open"
// @Router /api/v1/search [post]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SearchRequest
	if !decodeRequest(w, r, h.maxRequestBytes(), &req) {
		return
	}

	resp, err := h.engine.Search(r.Context(), req.Query, req.Limit, req.Subjects...)
	if err != nil {
		status, apiErr := engineError(err)
		respondError(w, r, status, apiErr, err)
		return
	}

	results := roundResults(resp.Results)
	respondSuccess(w, r, SearchResponse{
		Query:   req.Query,
		Results: results,
		Count:   len(results),
	}, start)
}

// Recommend handles POST /api/v1/recommend.
//
// @Summary Prerequisite-aware recommendations
// @Description Ranks courses by similarity to the query text or vector and keeps only those the student is eligible for.
// @Description Completed courses are never recommended. The list is not backfilled when filtering leaves fewer than limit results.
// @Tags Courses
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Query, completed courses and filters"
// @Success 200 {object} APIResponse{data=RecommendResponse} "Eligible courses"
// @Failure 400 {object} APIResponse "Invalid request or vector dimension mismatch"
// @Failure 413 {object} APIResponse "Request body too large"
// @Failure 502 {object} APIResponse "Embedding service failed"
// @Failure 503 {object} APIResponse "Embedding circuit open"
// @Router /api/v1/recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if !decodeRequest(w, r, h.maxRequestBytes(), &req) {
		return
	}

	resp, err := h.engine.Recommend(r.Context(), req.toEngine(logging.RequestIDFromContext(r.Context())))
	if err != nil {
		status, apiErr := engineError(err)
		respondError(w, r, status, apiErr, err)
		return
	}

	results := roundResults(resp.Results)
	respondSuccess(w, r, RecommendResponse{
		Query:      req.Query,
		Completed:  nonNil(req.Completed),
		Filters:    req.Filters,
		Results:    results,
		Count:      len(results),
		Limit:      resp.Metadata.Limit,
		Candidates: resp.Metadata.Candidates,
	}, start)
}

// Similar handles POST /api/v1/similar. A course without an embedding is not
// an error: it reports found=false with an empty list.
//
// @Summary Similar courses
// @Description Ranks courses by similarity to the stored embedding of another course.
// @Tags Courses
// @Accept json
// @Produce json
// @Param request body SimilarRequest true "Course identifier and limit"
// @Success 200 {object} APIResponse{data=SimilarCoursesResponse} "Similar courses"
// @Failure 400 {object} APIResponse "Invalid request"
// @Router /api/v1/similar [post]
func (h *Handler) Similar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SimilarRequest
	if !decodeRequest(w, r, h.maxRequestBytes(), &req) {
		return
	}

	respondSuccess(w, r, similarResponse(h.engine.Similar(req.CourseID, req.Limit)), start)
}

// CrossDepartment handles GET /api/v1/courses/{id}/cross-department.
//
// @Summary Similar courses in other departments
// @Description Like similar courses, restricted to subjects other than the course's own.
// @Tags Courses
// @Produce json
// @Param id path string true "Course identifier, e.g. CSE 151A"
// @Param limit query int false "Maximum results; 0 uses the default"
// @Success 200 {object} APIResponse{data=SimilarCoursesResponse} "Cross-department courses"
// @Failure 400 {object} APIResponse "Invalid course id or limit"
// @Router /api/v1/courses/{id}/cross-department [get]
func (h *Handler) CrossDepartment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := courseIDParam(w, r)
	if !ok {
		return
	}
	limit, ok := limitParam(w, r)
	if !ok {
		return
	}

	respondSuccess(w, r, similarResponse(h.engine.CrossDepartment(id, limit)), start)
}

// CourseInfo handles GET /api/v1/courses/{id}.
//
// @Summary Course detail
// @Description Returns the course, its parsed requirements and its most similar courses.
// @Tags Courses
// @Produce json
// @Param id path string true "Course identifier, e.g. CSE 151A"
// @Success 200 {object} APIResponse{data=CourseInfoResponse} "Course detail"
// @Failure 400 {object} APIResponse "Invalid course id"
// @Failure 404 {object} APIResponse "Course not found"
// @Router /api/v1/courses/{id} [get]
func (h *Handler) CourseInfo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := courseIDParam(w, r)
	if !ok {
		return
	}

	info, found := h.engine.CourseInfo(id)
	if !found {
		respondError(w, r, http.StatusNotFound, &APIError{
			Code:    ErrCodeNotFound,
			Message: "course " + id + " not found",
		}, nil)
		return
	}

	info.Similar = roundResults(info.Similar)
	respondSuccess(w, r, CourseInfoResponse{CourseID: id, Info: info}, start)
}

func similarResponse(resp *recommend.SimilarResponse) SimilarCoursesResponse {
	results := roundResults(resp.Results)
	return SimilarCoursesResponse{
		CourseID: resp.CourseID,
		Found:    resp.Found,
		Results:  results,
		Count:    len(results),
	}
}

// courseIDParam reads and validates the {id} path segment. Both encoded
// ("CSE%20151A") and decoded forms are accepted.
func courseIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "id")
	id, err := url.PathUnescape(raw)
	if err != nil {
		id = raw
	}
	id = strings.TrimSpace(id)

	if !validation.IsCourseID(id) {
		respondError(w, r, http.StatusBadRequest, &APIError{
			Code:    ErrCodeValidation,
			Message: "invalid course id",
			Details: map[string]interface{}{"course_id": sanitizeLogValue(raw)},
		}, nil)
		return "", false
	}
	return id, true
}

// limitParam reads an optional non-negative ?limit= value. Zero means the
// configured default.
func limitParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	s := r.URL.Query().Get("limit")
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		respondError(w, r, http.StatusBadRequest, &APIError{
			Code:    ErrCodeValidation,
			Message: "limit must be a non-negative integer",
		}, nil)
		return 0, false
	}
	return n, true
}
