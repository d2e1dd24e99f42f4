// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/coursecompass/internal/middleware"
)

// compressionLevel is the gzip level for JSON responses.
const compressionLevel = 5

// Router wires handlers and middleware into a chi tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	perfMon       *middleware.PerformanceMonitor
}

// NewRouter creates a Router. perfMon may be nil.
func NewRouter(handler *Handler, chiMw *ChiMiddleware, perfMon *middleware.PerformanceMonitor) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
		perfMon:       perfMon,
	}
}

// SetupChi configures all routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(AccessLog)
	r.Use(middleware.PrometheusMetrics)
	if router.perfMon != nil {
		r.Use(router.perfMon.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, &APIError{
			Code:    ErrCodeNotFound,
			Message: "no route for " + r.Method + " " + sanitizeLogValue(r.URL.Path),
		}, nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, &APIError{
			Code:    ErrCodeMethodNotAllowed,
			Message: "method " + r.Method + " not allowed",
		}, nil)
	})

	r.Get("/", router.handler.Index)

	// Health endpoints are not rate limited so health checks never see 429.
	r.Route("/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.Live)
		r.Get("/ready", router.handler.Ready)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chimiddleware.Compress(compressionLevel, "application/json"))

		r.Post("/search", router.handler.Search)
		r.Post("/recommend", router.handler.Recommend)
		r.Post("/similar", router.handler.Similar)
		r.Post("/learning-path", router.handler.LearningPath)
		r.Post("/eligibility", router.handler.Eligibility)

		r.Get("/courses/{id}", router.handler.CourseInfo)
		r.Get("/courses/{id}/cross-department", router.handler.CrossDepartment)

		r.Get("/stats", router.handler.Stats)
		r.Get("/prerequisites/validation", router.handler.PrerequisiteValidation)
		r.Get("/performance", router.handler.Performance)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
