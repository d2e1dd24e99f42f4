// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package api

import (
	"context"
	"math"
	"time"

	"github.com/tomtom215/coursecompass/internal/config"
	"github.com/tomtom215/coursecompass/internal/middleware"
	"github.com/tomtom215/coursecompass/internal/prereq"
	"github.com/tomtom215/coursecompass/internal/recommend"
)

// Version is reported by the endpoint index and stats.
const Version = "1.0.0"

// RecommendationEngine is the subset of *recommend.Engine the handlers use.
type RecommendationEngine interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
	Search(ctx context.Context, query string, limit int, subjects ...string) (*recommend.Response, error)
	Similar(courseID string, limit int) *recommend.SimilarResponse
	CrossDepartment(courseID string, limit int) *recommend.SimilarResponse
	CourseInfo(courseID string) (*recommend.CourseInfo, bool)
	Eligibility(courseID string, completed []string) recommend.EligibilityResult
	Plan(target string, completed []string) recommend.Path
	PlanTransitive(target string, completed []string) (*recommend.TransitivePath, error)
	Stats() recommend.Stats
	Validation() prereq.Report
	GetMetrics() recommend.Metrics
}

// BreakerState reports the embedding circuit breaker state.
type BreakerState interface {
	State() string
}

// Handler serves the HTTP API.
type Handler struct {
	engine    RecommendationEngine
	config    *config.Config
	perfMon   *middleware.PerformanceMonitor
	breaker   BreakerState
	startTime time.Time
}

// NewHandler creates a Handler. perfMon may be nil, in which case the
// performance endpoint only reports engine counters.
func NewHandler(engine RecommendationEngine, cfg *config.Config, perfMon *middleware.PerformanceMonitor) *Handler {
	return &Handler{
		engine:    engine,
		config:    cfg,
		perfMon:   perfMon,
		startTime: time.Now(),
	}
}

// SetBreaker attaches the embedding breaker for health and performance
// reporting.
func (h *Handler) SetBreaker(b BreakerState) {
	h.breaker = b
}

func (h *Handler) maxRequestBytes() int64 {
	if h.config == nil {
		return 0
	}
	return h.config.Security.MaxRequestBytes
}

func (h *Handler) embeddingState() string {
	if h.breaker == nil {
		return "disabled"
	}
	return h.breaker.State()
}

// roundScore rounds a similarity score to 3 decimals for output.
func roundScore(s float64) float64 {
	return math.Round(s*1000) / 1000
}

// roundResults returns a copy of results with rounded scores. Never nil, so
// empty lists encode as [].
func roundResults(results []recommend.Result) []recommend.Result {
	out := make([]recommend.Result, len(results))
	for i, r := range results {
		r.Score = roundScore(r.Score)
		out[i] = r
	}
	return out
}

// nonNil keeps echoed string lists from encoding as null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
