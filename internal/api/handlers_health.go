// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/coursecompass/internal/middleware"
	"github.com/tomtom215/coursecompass/internal/recommend"
)

// recentRequestsShown bounds the recent list of the performance endpoint.
const recentRequestsShown = 20

// HealthStatus is the data of the health endpoints.
type HealthStatus struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Uptime    float64           `json:"uptime_seconds"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// StatsResponse is the data of GET /api/v1/stats.
type StatsResponse struct {
	recommend.Stats
	EmbeddingService string `json:"embedding_service"`
	APIVersion       string `json:"api_version"`
}

// PerformanceResponse is the data of GET /api/v1/performance.
type PerformanceResponse struct {
	Endpoints        []middleware.EndpointStats  `json:"endpoints"`
	Recent           []middleware.RequestMetrics `json:"recent_requests"`
	Engine           recommend.Metrics           `json:"engine"`
	EmbeddingService string                      `json:"embedding_service"`
}

// IndexResponse is the data of GET /.
type IndexResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Index handles GET /.
//
// @Summary Service index
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=IndexResponse} "Service and endpoint list"
// @Router / [get]
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, IndexResponse{
		Service: "CourseCompass course recommendation API",
		Version: Version,
		Endpoints: map[string]string{
			"search":           "POST /api/v1/search",
			"recommend":        "POST /api/v1/recommend",
			"learning_path":    "POST /api/v1/learning-path",
			"eligibility":      "POST /api/v1/eligibility",
			"similar":          "POST /api/v1/similar",
			"course_info":      "GET /api/v1/courses/{id}",
			"cross_department": "GET /api/v1/courses/{id}/cross-department",
			"stats":            "GET /api/v1/stats",
			"validation":       "GET /api/v1/prerequisites/validation",
			"performance":      "GET /api/v1/performance",
			"docs":             "GET /swagger/index.html",
		},
	}, time.Now())
}

// Live handles GET /health/live. It only reports that the process serves
// requests.
//
// @Summary Liveness check
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus} "Alive"
// @Router /health/live [get]
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, h.health("alive", nil), time.Now())
}

// Ready handles GET /health/ready. The service is ready once a non-empty
// catalog is loaded. An open embedding breaker degrades the service without
// making it unready, since vector and course-to-course queries still work.
//
// @Summary Readiness check
// @Description Status is "degraded" while the embedding circuit is open.
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus} "Ready or degraded"
// @Failure 503 {object} APIResponse "Catalog not loaded"
// @Router /health/ready [get]
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats := h.engine.Stats()

	checks := map[string]string{
		"catalog":   "ok",
		"embedding": h.embeddingState(),
	}

	if stats.TotalCourses == 0 {
		checks["catalog"] = "empty"
		respondError(w, r, http.StatusServiceUnavailable, &APIError{
			Code:    ErrCodeServiceUnavailable,
			Message: "catalog not loaded",
			Details: map[string]interface{}{"checks": checks},
		}, nil)
		return
	}

	status := "ready"
	if checks["embedding"] == "open" {
		status = "degraded"
	}
	respondSuccess(w, r, h.health(status, checks), start)
}

// Stats handles GET /api/v1/stats.
//
// @Summary Dataset statistics
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=StatsResponse} "Statistics"
// @Router /api/v1/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, StatsResponse{
		Stats:            h.engine.Stats(),
		EmbeddingService: h.embeddingState(),
		APIVersion:       Version,
	}, time.Now())
}

// PrerequisiteValidation handles GET /api/v1/prerequisites/validation.
//
// @Summary Prerequisite validation report
// @Description Partitions every requirement edge into references that resolve in the catalog and dangling ones.
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=prereq.Report} "Validation report"
// @Router /api/v1/prerequisites/validation [get]
func (h *Handler) PrerequisiteValidation(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, h.engine.Validation(), time.Now())
}

// Performance handles GET /api/v1/performance.
//
// @Summary Recent request performance
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=PerformanceResponse} "Per-endpoint latency and recent requests"
// @Router /api/v1/performance [get]
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	resp := PerformanceResponse{
		Endpoints:        []middleware.EndpointStats{},
		Recent:           []middleware.RequestMetrics{},
		Engine:           h.engine.GetMetrics(),
		EmbeddingService: h.embeddingState(),
	}
	if h.perfMon != nil {
		resp.Endpoints = h.perfMon.GetStats()
		resp.Recent = h.perfMon.GetRecentMetrics(recentRequestsShown)
	}
	respondSuccess(w, r, resp, time.Now())
}

func (h *Handler) health(status string, checks map[string]string) HealthStatus {
	return HealthStatus{
		Status:    status,
		Version:   Version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Checks:    checks,
		Timestamp: time.Now().UTC(),
	}
}
