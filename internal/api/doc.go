// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

/*
Package api provides the HTTP interface of the recommendation engine.

Routes are served by a chi router. Every JSON response uses the APIResponse
envelope with a status of "success" or "error".

# Endpoints

	GET  /                                   endpoint index
	POST /api/v1/search                      semantic search
	POST /api/v1/recommend                   prerequisite-aware recommendations
	POST /api/v1/similar                     similar courses
	POST /api/v1/learning-path               one-level or transitive path
	POST /api/v1/eligibility                 prerequisite check
	GET  /api/v1/courses/{id}                course detail (404 when unknown)
	GET  /api/v1/courses/{id}/cross-department
	GET  /api/v1/stats
	GET  /api/v1/prerequisites/validation
	GET  /api/v1/performance
	GET  /health/live, /health/ready
	GET  /metrics                            Prometheus exposition
	GET  /swagger/*                          OpenAPI document and UI

# Errors

Engine errors are mapped to status codes in one place (engineError):

	400 VALIDATION_ERROR, BAD_REQUEST, DIMENSION_MISMATCH
	404 NOT_FOUND (unknown route or course detail; an unknown learning-path
	    target answers 200 with a null target_course)
	413 REQUEST_TOO_LARGE
	422 PREREQUISITE_CYCLE
	429 TOO_MANY_REQUESTS
	502 EMBEDDING_FAILED (details carry the query text)
	503 SERVICE_UNAVAILABLE (embedding breaker open)

Scores are rounded to three decimals here; the engine keeps full precision.
*/
package api
