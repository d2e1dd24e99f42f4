// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/coursecompass/internal/catalog"
	"github.com/tomtom215/coursecompass/internal/index"
	"github.com/tomtom215/coursecompass/internal/metrics"
	"github.com/tomtom215/coursecompass/internal/prereq"
)

// Dependencies are the loaded, immutable data structures the engine reads.
type Dependencies struct {
	Catalog  *catalog.Catalog
	Index    *index.Index
	Graph    *prereq.Graph
	Embedder Embedder

	// Texts optionally maps course IDs to the text their vector was built
	// from. Search snippets fall back to Course.Text for missing entries.
	Texts map[string]string
}

// Engine combines semantic ranking with prerequisite eligibility and
// attribute filters. It holds no mutable shared state apart from request
// counters and is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	catalog   *catalog.Catalog
	index     *index.Index
	graph     *prereq.Graph
	evaluator *prereq.Evaluator
	embedder  Embedder
	texts     map[string]string

	// validation is computed once at construction; the graph never changes.
	validation prereq.Report

	requestCount atomic.Int64
	errorCount   atomic.Int64
	embedCount   atomic.Int64
}

// NewEngine creates a recommendation engine over loaded data. Embedder may be
// nil, in which case only vector queries and course-to-course operations work.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, deps Dependencies, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if deps.Catalog == nil || deps.Index == nil || deps.Graph == nil {
		return nil, errors.New("catalog, index and graph are required")
	}

	e := &Engine{
		config:     cfg.Clone(),
		logger:     logger.With().Str("component", "recommend").Logger(),
		catalog:    deps.Catalog,
		index:      deps.Index,
		graph:      deps.Graph,
		evaluator:  prereq.NewEvaluator(deps.Graph),
		embedder:   deps.Embedder,
		texts:      deps.Texts,
		validation: prereq.Validate(deps.Graph, deps.Catalog.KnownIDs()),
	}

	e.logger.Info().
		Int("courses", deps.Catalog.Len()).
		Int("embeddings", deps.Index.Len()).
		Int("courses_with_prereqs", deps.Graph.Len()).
		Int("dangling_edges", e.validation.Stats.Dangling).
		Msg("recommendation engine ready")

	return e, nil
}

// Recommend returns up to Limit courses ranked by similarity to the query,
// skipping courses already completed, courses whose required prerequisites
// are not all completed, and courses failing the filter.
//
// Candidates are fetched once at twice the limit. When fewer than Limit
// survive filtering the shorter list is returned as is.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(req.RequestID, "recommend")

	vec, err := e.queryVector(ctx, req.Query, req.Vector)
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendation("recommend", time.Since(start), 0, err)
		logger.Warn().Err(err).Msg("recommendation failed")
		return nil, err
	}

	completed := prereq.NewSet(req.Completed...)
	candidates := e.index.RankByVector(vec, req.Limit*OverfetchFactor, nil)

	results := make([]Result, 0, req.Limit)
	for _, m := range candidates {
		if len(results) >= req.Limit {
			break
		}
		if completed.Has(m.CourseID) {
			continue
		}

		elig := e.evaluator.Check(m.CourseID, completed)
		if !elig.Eligible {
			continue
		}

		course, ok := e.catalog.Get(m.CourseID)
		if !ok || !req.Filter.Matches(course) {
			continue
		}

		r := newResult(course, m.Score)
		r.Eligibility = &elig
		results = append(results, r)
	}

	resp := &Response{
		Results:  results,
		Metadata: e.buildResponseMetadata(req.RequestID, "recommend", req.Limit, len(candidates), start),
	}

	metrics.RecordRecommendation("recommend", time.Since(start), len(results), nil)

	logger.Debug().
		Int("candidates", len(candidates)).
		Int("returned", len(results)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// Search ranks courses by similarity to free text without any completion or
// eligibility filtering. subjects optionally restricts the ranking.
func (e *Engine) Search(ctx context.Context, query string, limit int, subjects ...string) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	requestID := uuid.NewString()
	limit = e.clampLimit(limit, e.config.Limits.DefaultK)
	logger := e.createRequestLogger(requestID, "search")

	vec, err := e.queryVector(ctx, query, nil)
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendation("search", time.Since(start), 0, err)
		logger.Warn().Err(err).Msg("search failed")
		return nil, err
	}

	matches := e.index.RankByVector(vec, limit, index.Subjects(subjects...))

	results := e.resolve(matches)
	for i := range results {
		results[i].DescriptionSnippet = e.snippet(results[i].CourseID)
	}

	resp := &Response{
		Results:  results,
		Metadata: e.buildResponseMetadata(requestID, "search", limit, len(matches), start),
	}

	metrics.RecordRecommendation("search", time.Since(start), len(resp.Results), nil)

	logger.Debug().
		Int("returned", len(resp.Results)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("search complete")

	return resp, nil
}

// Similar ranks courses by similarity to a course's own embedding. A course
// without an embedding reports Found=false with an empty list.
func (e *Engine) Similar(courseID string, limit int) *SimilarResponse {
	limit = e.clampLimit(limit, e.config.Similar.DefaultK)
	return &SimilarResponse{
		CourseID: courseID,
		Found:    e.index.Has(courseID),
		Results:  e.resolve(e.index.RankByCourse(courseID, limit, nil)),
	}
}

// CrossDepartment returns the courses most similar to courseID whose subject
// differs from its own, best first.
func (e *Engine) CrossDepartment(courseID string, limit int) *SimilarResponse {
	limit = e.clampLimit(limit, e.config.Similar.CrossDepartmentK)

	resp := &SimilarResponse{CourseID: courseID, Results: []Result{}}
	course, ok := e.catalog.Get(courseID)
	if !ok || !e.index.Has(courseID) {
		return resp
	}
	resp.Found = true

	// Rank everything, then keep other departments until the limit is met.
	for _, m := range e.index.RankByCourse(courseID, e.index.Len(), nil) {
		if len(resp.Results) >= limit {
			break
		}
		other, ok := e.catalog.Get(m.CourseID)
		if !ok || other.Subject == course.Subject {
			continue
		}
		resp.Results = append(resp.Results, newResult(other, m.Score))
	}
	return resp
}

// CourseInfo returns a course with its requirements and most similar courses.
// The boolean is false when the course is unknown.
func (e *Engine) CourseInfo(courseID string) (*CourseInfo, bool) {
	course, ok := e.catalog.Get(courseID)
	if !ok {
		return nil, false
	}

	info := &CourseInfo{
		Course:           course,
		RequirementEdges: []prereq.Edge{},
		Similar:          e.resolve(e.index.RankByCourse(courseID, e.config.Similar.InfoK, nil)),
	}
	if reqs, ok := e.graph.Get(courseID); ok {
		info.Requirements = &reqs
		info.RequirementEdges = reqs.Edges()
	}
	return info, true
}

// Eligibility checks one course against a completed set.
func (e *Engine) Eligibility(courseID string, completed []string) EligibilityResult {
	return EligibilityResult{
		CourseID:    courseID,
		Known:       e.catalog.Has(courseID),
		Eligibility: e.evaluator.Check(courseID, prereq.NewSet(completed...)),
	}
}

// Stats summarizes the loaded data.
func (e *Engine) Stats() Stats {
	return Stats{
		TotalCourses:             e.catalog.Len(),
		CoursesWithEmbeddings:    e.index.Len(),
		CoursesWithPrerequisites: e.graph.Len(),
		EmbeddingDim:             e.index.Dim(),
		PrerequisiteEdges:        e.graph.EdgeCount(),
		Validation:               e.validation.Stats,
	}
}

// Validation returns the prerequisite validation report.
func (e *Engine) Validation() prereq.Report {
	return e.validation
}

// GetMetrics returns the current request counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		RequestCount: e.requestCount.Load(),
		ErrorCount:   e.errorCount.Load(),
		EmbedCount:   e.embedCount.Load(),
	}
}

// queryVector returns the vector to rank against: the caller's vector when
// given, otherwise the embedding of text. Embedding failures are not retried.
func (e *Engine) queryVector(ctx context.Context, text string, vec []float64) ([]float64, error) {
	if len(vec) == 0 {
		if text == "" {
			return nil, ErrEmptyQuery
		}
		if e.embedder == nil {
			return nil, &EmbeddingError{Query: text, Err: errors.New("no embedder configured")}
		}

		if e.config.EmbedTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, e.config.EmbedTimeout)
			defer cancel()
		}

		e.embedCount.Add(1)
		embedded, err := e.embedder.Embed(ctx, text)
		if err != nil {
			return nil, &EmbeddingError{Query: text, Err: err}
		}
		if dim := e.index.Dim(); dim > 0 && len(embedded) != dim {
			return nil, &EmbeddingError{
				Query: text,
				Err:   fmt.Errorf("%w: got %d, index has %d", ErrQueryDimension, len(embedded), dim),
			}
		}
		return embedded, nil
	}

	if dim := e.index.Dim(); dim > 0 && len(vec) != dim {
		return nil, fmt.Errorf("%w: got %d, index has %d", ErrQueryDimension, len(vec), dim)
	}
	return vec, nil
}

// prepareRequest applies defaults and generates a request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	req.Limit = e.clampLimit(req.Limit, e.config.Limits.DefaultK)
	return req
}

func (e *Engine) clampLimit(limit, def int) int {
	if limit <= 0 {
		limit = def
	}
	if limit > e.config.Limits.MaxK {
		limit = e.config.Limits.MaxK
	}
	return limit
}

func (e *Engine) createRequestLogger(requestID, operation string) zerolog.Logger {
	return e.logger.With().
		Str("request_id", requestID).
		Str("operation", operation).
		Logger()
}

func (e *Engine) buildResponseMetadata(requestID, operation string, limit, candidates int, start time.Time) ResponseMetadata {
	return ResponseMetadata{
		RequestID:  requestID,
		Operation:  operation,
		Limit:      limit,
		Candidates: candidates,
		LatencyMS:  time.Since(start).Milliseconds(),
		Timestamp:  time.Now(),
	}
}

// resolve enriches index matches with catalog data. The index only holds
// catalog identifiers, so every match resolves.
func (e *Engine) resolve(matches []index.Match) []Result {
	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		course, ok := e.catalog.Get(m.CourseID)
		if !ok {
			e.logger.Error().Str("course_id", m.CourseID).Msg("indexed course missing from catalog")
			continue
		}
		results = append(results, newResult(course, m.Score))
	}
	return results
}

// snippet returns the first SnippetLength characters of a course's text
// followed by "...", or "" when the course has no text at all.
func (e *Engine) snippet(courseID string) string {
	text, ok := e.texts[courseID]
	if !ok {
		course, found := e.catalog.Get(courseID)
		if !found {
			return ""
		}
		text = course.Text()
	}
	if text == "" {
		return ""
	}
	if runes := []rune(text); len(runes) > SnippetLength {
		text = string(runes[:SnippetLength])
	}
	return text + "..."
}

//nolint:gocritic // Course is a small value type
func newResult(c catalog.Course, score float64) Result {
	return Result{
		CourseID: c.ID(),
		Subject:  c.Subject,
		Number:   c.Number,
		Title:    c.Title,
		Units:    c.Units,
		Score:    score,
	}
}
