// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/coursecompass/internal/recommend"
)

// LearningPathResponse is the data of POST /api/v1/learning-path. Exactly
// one of Path and Transitive is set, depending on the request mode.
type LearningPathResponse struct {
	TargetCourse string                    `json:"target_course"`
	Completed    []string                  `json:"completed_courses"`
	Path         *recommend.Path           `json:"learning_path,omitempty"`
	Transitive   *recommend.TransitivePath `json:"transitive_path,omitempty"`
}

// EligibilityResponse is the data of POST /api/v1/eligibility.
type EligibilityResponse struct {
	CourseID    string                      `json:"course_id"`
	Completed   []string                    `json:"completed_courses"`
	Eligibility recommend.EligibilityResult `json:"eligibility"`
}

// LearningPath handles POST /api/v1/learning-path. An unknown target still
// answers 200 with a null target_course in the plan; a prerequisite cycle
// under the target is a 422 in transitive mode.
//
// @Summary Learning path toward a course
// @Description One-level mode lists the missing direct prerequisites. Transitive mode expands the full closure into planning blocks.
// @Tags Planning
// @Accept json
// @Produce json
// @Param request body LearningPathRequest true "Target course and completed courses"
// @Success 200 {object} APIResponse{data=LearningPathResponse} "Learning path"
// @Failure 400 {object} APIResponse "Invalid request"
// @Failure 422 {object} APIResponse "Prerequisite cycle"
// @Router /api/v1/learning-path [post]
func (h *Handler) LearningPath(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req LearningPathRequest
	if !decodeRequest(w, r, h.maxRequestBytes(), &req) {
		return
	}

	resp := LearningPathResponse{
		TargetCourse: req.TargetCourse,
		Completed:    nonNil(req.Completed),
	}

	if req.Transitive {
		path, err := h.engine.PlanTransitive(req.TargetCourse, req.Completed)
		if err != nil {
			status, apiErr := engineError(err)
			respondError(w, r, status, apiErr, err)
			return
		}
		resp.Transitive = path
	} else {
		path := h.engine.Plan(req.TargetCourse, req.Completed)
		resp.Path = &path
	}

	respondSuccess(w, r, resp, start)
}

// Eligibility handles POST /api/v1/eligibility. Unknown courses are answered
// with known=false rather than an error.
//
// @Summary Check course eligibility
// @Tags Planning
// @Accept json
// @Produce json
// @Param request body EligibilityRequest true "Course and completed courses"
// @Success 200 {object} APIResponse{data=EligibilityResponse} "Eligibility"
// @Failure 400 {object} APIResponse "Invalid request"
// @Router /api/v1/eligibility [post]
func (h *Handler) Eligibility(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EligibilityRequest
	if !decodeRequest(w, r, h.maxRequestBytes(), &req) {
		return
	}

	respondSuccess(w, r, EligibilityResponse{
		CourseID:    req.CourseID,
		Completed:   nonNil(req.Completed),
		Eligibility: h.engine.Eligibility(req.CourseID, req.Completed),
	}, start)
}
