// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package recommend

import (
	"context"
	"time"

	"github.com/tomtom215/coursecompass/internal/catalog"
	"github.com/tomtom215/coursecompass/internal/prereq"
)

// Embedder turns free text into a vector with the same dimension as the
// stored course embeddings. It is the only blocking collaborator of the engine.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Result is one ranked course.
type Result struct {
	// CourseID is the course identifier, e.g. "CSE 151A".
	CourseID string `json:"course_id"`

	// Subject is the department code.
	Subject string `json:"subject"`

	// Number is the course number including suffix.
	Number string `json:"number"`

	// Title is the course title.
	Title string `json:"title"`

	// Units is the credit unit count.
	Units float64 `json:"units"`

	// Score is the cosine similarity to the query. Higher is better.
	Score float64 `json:"score"`

	// DescriptionSnippet is the start of the course text. Only Search sets it.
	DescriptionSnippet string `json:"description_snippet,omitempty"`

	// Eligibility is attached by Recommend; search results leave it nil.
	Eligibility *prereq.Eligibility `json:"eligibility,omitempty"`
}

// Request contains parameters for a recommendation.
type Request struct {
	// Query is free text to embed. Ignored when Vector is set.
	Query string `json:"query,omitempty"`

	// Vector is a precomputed query vector.
	Vector []float64 `json:"vector,omitempty"`

	// Completed lists course identifiers the student has finished.
	Completed []string `json:"completed_courses,omitempty"`

	// Filter holds optional attribute constraints.
	Filter *Filter `json:"filters,omitempty"`

	// Limit is the maximum number of results. Zero uses the configured default.
	Limit int `json:"limit"`

	// RequestID is used for logging. Generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// Response contains ranked results and request metadata.
type Response struct {
	// Results are ordered by non-increasing score.
	Results []Result `json:"results"`

	// Metadata describes how the response was produced.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains information about a ranking request.
type ResponseMetadata struct {
	// RequestID identifies the request in logs.
	RequestID string `json:"request_id"`

	// Operation is "search" or "recommend".
	Operation string `json:"operation"`

	// Limit is the effective limit after defaults and clamping.
	Limit int `json:"limit"`

	// Candidates is the number of index matches inspected.
	Candidates int `json:"candidates"`

	// LatencyMS is the processing time in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}

// SimilarResponse is returned by course-to-course ranking.
type SimilarResponse struct {
	// CourseID echoes the query course.
	CourseID string `json:"course_id"`

	// Found is false when the course has no embedding. Results is then empty.
	Found bool `json:"found"`

	// Results are the similar courses, best first.
	Results []Result `json:"results"`
}

// CourseInfo bundles everything known about one course.
type CourseInfo struct {
	Course catalog.Course `json:"course"`

	// Requirements is nil when no prerequisites were parsed for the course.
	Requirements *prereq.Requirements `json:"requirements"`

	// RequirementEdges lists the same requirements as role-tagged groups,
	// skipping empty roles. Never null.
	RequirementEdges []prereq.Edge `json:"requirement_edges"`

	// Similar holds the top similar courses.
	Similar []Result `json:"similar_courses"`
}

// EligibilityResult wraps an evaluator answer with catalog membership.
type EligibilityResult struct {
	CourseID string `json:"course_id"`

	// Known is false when the identifier is not in the catalog. Such a course
	// is still reported eligible because it has no parsed requirements.
	Known bool `json:"known"`

	prereq.Eligibility
}

// Path is a one-level learning path toward a target course.
type Path struct {
	// Target is nil when the identifier is unknown to the catalog.
	Target *catalog.Course `json:"target_course"`

	// MissingPrereqs are the uncompleted direct required courses that resolve
	// in the catalog, in requirement order.
	MissingPrereqs []catalog.Course `json:"prerequisites_needed"`

	// TotalUnits sums the units of MissingPrereqs.
	TotalUnits float64 `json:"total_units"`

	// EstimatedBlocks is ceil(len(MissingPrereqs) / CoursesPerBlock).
	EstimatedBlocks int `json:"estimated_blocks"`
}

// PathStep is one course of a transitive path with its planning block.
type PathStep struct {
	Course catalog.Course `json:"course"`

	// Block is the zero-based planning block in which the course can be taken.
	Block int `json:"block"`
}

// TransitivePath is the full backward closure toward a target course.
type TransitivePath struct {
	// Target is nil when the identifier is unknown to the catalog.
	Target *catalog.Course `json:"target_course"`

	// Steps are ordered by block; within a block, prerequisites come first.
	Steps []PathStep `json:"steps"`

	// Unresolved lists required identifiers that are not in the catalog.
	// They can never be completed, so the target stays out of reach.
	Unresolved []string `json:"unresolved"`

	// TotalUnits sums the units of all steps.
	TotalUnits float64 `json:"total_units"`

	// EstimatedBlocks is the number of planning blocks used by Steps.
	EstimatedBlocks int `json:"estimated_blocks"`
}

// Stats summarizes the loaded data.
type Stats struct {
	TotalCourses             int                    `json:"total_courses"`
	CoursesWithEmbeddings    int                    `json:"courses_with_embeddings"`
	CoursesWithPrerequisites int                    `json:"courses_with_prerequisites"`
	EmbeddingDim             int                    `json:"embedding_dim"`
	PrerequisiteEdges        int                    `json:"prerequisite_edges"`
	Validation               prereq.ValidationStats `json:"validation"`
}

// Metrics contains engine request counters.
type Metrics struct {
	// RequestCount is the number of ranking requests served.
	RequestCount int64 `json:"request_count"`

	// ErrorCount is the number of ranking requests that failed.
	ErrorCount int64 `json:"error_count"`

	// EmbedCount is the number of external embedding calls made.
	EmbedCount int64 `json:"embed_count"`
}
