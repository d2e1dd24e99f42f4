// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

/*
Package middleware provides the infrastructure HTTP middleware of the API
server: request ID propagation, Prometheus instrumentation and an in-process
performance monitor.

All middleware uses the func(http.Handler) http.Handler shape so it can be
passed straight to chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(perfMon.Middleware)

Endpoint labels come from the matched chi route pattern
("/api/v1/courses/{id}") rather than the raw path, which keeps metric
cardinality bounded by the route table. Requests that match no route are
labelled "unmatched".
*/
package middleware
