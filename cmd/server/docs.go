// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

//go:generate swag init --dir ../../ --generalInfo cmd/server/docs.go --output ../../docs --outputTypes go --parseInternal

// @title CourseCompass API
// @version 1.0
// @description Prerequisite-aware course search and recommendation.
// @description
// @description Text queries are embedded by an external service behind a circuit breaker. While the
// @description circuit is open, text queries answer 503 and vector or course-to-course queries keep working.
// @description
// @description All responses use the same envelope: status, data, metadata and, on failure, error.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/coursecompass/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Courses
// @tag.description Course search, recommendation and detail
//
// @tag.name Planning
// @tag.description Learning paths and eligibility checks
//
// @tag.name Core
// @tag.description Health, statistics and diagnostics

package main
