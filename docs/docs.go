// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

// Package docs holds the OpenAPI document served under /swagger/. It is the
// output of swag init over the handler annotations in internal/api; rerun
// go generate ./cmd/server after changing them.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/coursecompass/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Core"
                ],
                "summary": "Service index",
                "responses": {
                    "200": {
                        "description": "Service and endpoint list",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.IndexResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/courses/{id}": {
            "get": {
                "description": "Returns the course, its parsed requirements and its most similar courses.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Courses"
                ],
                "summary": "Course detail",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Course identifier, e.g. CSE 151A",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Course detail",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.CourseInfoResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid course id",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    },
                    "404": {
                        "description": "Course not found",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/courses/{id}/cross-department": {
            "get": {
                "description": "Like similar courses, restricted to subjects other than the course's own.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Courses"
                ],
                "summary": "Similar courses in other departments",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Course identifier, e.g. CSE 151A",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Maximum results; 0 uses the default",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Cross-department courses",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.SimilarCoursesResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid course id or limit",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/eligibility": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Planning"
                ],
                "summary": "Check course eligibility",
                "parameters": [
                    {
                        "description": "Course and completed courses",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.EligibilityRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Eligibility",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.EligibilityResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/learning-path": {
            "post": {
                "description": "One-level mode lists the missing direct prerequisites. Transitive mode expands the full closure into planning blocks.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Planning"
                ],
                "summary": "Learning path toward a course",
                "parameters": [
                    {
                        "description": "Target course and completed courses",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.LearningPathRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Learning path",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.LearningPathResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    },
                    "422": {
                        "description": "Prerequisite cycle",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/performance": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Core"
                ],
                "summary": "Recent request performance",
                "responses": {
                    "200": {
                        "description": "Per-endpoint latency and recent requests",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.PerformanceResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/prerequisites/validation": {
            "get": {
                "description": "Partitions every requirement edge into references that resolve in the catalog and dangling ones.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Core"
                ],
                "summary": "Prerequisite validation report",
                "responses": {
                    "200": {
                        "description": "Validation report",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/prereq.Report"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/recommend": {
            "post": {
                "description": "Ranks courses by similarity to the query text or vector and keeps only those the student is eligible for.\nCompleted courses are never recommended. The list is not backfilled when filtering leaves fewer than limit results.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Courses"
                ],
                "summary": "Prerequisite-aware recommendations",
                "parameters": [
                    {
                        "description": "Query, completed courses and filters",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.RecommendRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Eligible courses",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.RecommendResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid request or vector dimension mismatch",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    },
                    "413": {
                        "description": "Request body too large",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    },
                    "502": {
                        "description": "Embedding service failed",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    },
                    "503": {
                        "description": "Embedding circuit open",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/search": {
            "post": {
                "description": "Ranks courses by cosine similarity to the embedded query text, without prerequisite filtering.\nEach result carries a description_snippet of the course text.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Courses"
                ],
                "summary": "Semantic course search",
                "parameters": [
                    {
                        "description": "Search query",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.SearchRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Ranked courses",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.SearchResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    },
                    "502": {
                        "description": "Embedding service failed",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    },
                    "503": {
                        "description": "Embedding circuit open",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/similar": {
            "post": {
                "description": "Ranks courses by similarity to the stored embedding of another course.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Courses"
                ],
                "summary": "Similar courses",
                "parameters": [
                    {
                        "description": "Course identifier and limit",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.SimilarRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Similar courses",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.SimilarCoursesResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Core"
                ],
                "summary": "Dataset statistics",
                "responses": {
                    "200": {
                        "description": "Statistics",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.StatsResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/health/live": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Core"
                ],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "Alive",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.HealthStatus"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/health/ready": {
            "get": {
                "description": "Status is \"degraded\" while the embedding circuit is open.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Core"
                ],
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "Ready or degraded",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.HealthStatus"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "503": {
                        "description": "Catalog not loaded",
                        "schema": {
                            "$ref": "#/definitions/api.APIResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "api.APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "details": {
                    "type": "object",
                    "additionalProperties": {}
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {
                    "$ref": "#/definitions/api.APIError"
                },
                "metadata": {
                    "$ref": "#/definitions/api.Metadata"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "api.CourseInfoResponse": {
            "type": "object",
            "properties": {
                "course_id": {
                    "type": "string"
                },
                "course_info": {
                    "$ref": "#/definitions/recommend.CourseInfo"
                }
            }
        },
        "api.EligibilityRequest": {
            "type": "object",
            "required": [
                "course_id"
            ],
            "properties": {
                "completed_courses": {
                    "type": "array",
                    "maxItems": 500,
                    "items": {
                        "type": "string"
                    }
                },
                "course_id": {
                    "type": "string"
                }
            }
        },
        "api.EligibilityResponse": {
            "type": "object",
            "properties": {
                "completed_courses": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "course_id": {
                    "type": "string"
                },
                "eligibility": {
                    "$ref": "#/definitions/recommend.EligibilityResult"
                }
            }
        },
        "api.FiltersRequest": {
            "type": "object",
            "properties": {
                "level": {
                    "type": "string",
                    "enum": [
                        "",
                        "undergraduate",
                        "graduate"
                    ]
                },
                "max_units": {
                    "type": "number",
                    "minimum": 0
                },
                "min_units": {
                    "type": "number",
                    "minimum": 0
                },
                "subjects": {
                    "type": "array",
                    "maxItems": 50,
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "api.HealthStatus": {
            "type": "object",
            "properties": {
                "checks": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "status": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "uptime_seconds": {
                    "type": "number"
                },
                "version": {
                    "type": "string"
                }
            }
        },
        "api.IndexResponse": {
            "type": "object",
            "properties": {
                "endpoints": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "service": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                }
            }
        },
        "api.LearningPathRequest": {
            "type": "object",
            "required": [
                "target_course"
            ],
            "properties": {
                "completed_courses": {
                    "type": "array",
                    "maxItems": 500,
                    "items": {
                        "type": "string"
                    }
                },
                "target_course": {
                    "type": "string"
                },
                "transitive": {
                    "type": "boolean"
                }
            }
        },
        "api.LearningPathResponse": {
            "type": "object",
            "properties": {
                "completed_courses": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "learning_path": {
                    "$ref": "#/definitions/recommend.Path"
                },
                "target_course": {
                    "type": "string"
                },
                "transitive_path": {
                    "$ref": "#/definitions/recommend.TransitivePath"
                }
            }
        },
        "api.Metadata": {
            "type": "object",
            "properties": {
                "query_time_ms": {
                    "type": "integer"
                },
                "request_id": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "api.PerformanceResponse": {
            "type": "object",
            "properties": {
                "embedding_service": {
                    "type": "string"
                },
                "endpoints": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/middleware.EndpointStats"
                    }
                },
                "engine": {
                    "$ref": "#/definitions/recommend.Metrics"
                },
                "recent_requests": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/middleware.RequestMetrics"
                    }
                }
            }
        },
        "api.RecommendRequest": {
            "type": "object",
            "properties": {
                "completed_courses": {
                    "type": "array",
                    "maxItems": 500,
                    "items": {
                        "type": "string"
                    }
                },
                "filters": {
                    "$ref": "#/definitions/api.FiltersRequest"
                },
                "limit": {
                    "type": "integer",
                    "minimum": 0
                },
                "query": {
                    "type": "string",
                    "maxLength": 1000
                },
                "vector": {
                    "type": "array",
                    "items": {
                        "type": "number"
                    }
                }
            }
        },
        "api.RecommendResponse": {
            "type": "object",
            "properties": {
                "candidates": {
                    "type": "integer"
                },
                "completed_courses": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "count": {
                    "type": "integer"
                },
                "filters": {
                    "$ref": "#/definitions/api.FiltersRequest"
                },
                "limit": {
                    "type": "integer"
                },
                "query": {
                    "type": "string"
                },
                "recommendations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/recommend.Result"
                    }
                }
            }
        },
        "api.SearchRequest": {
            "type": "object",
            "required": [
                "query"
            ],
            "properties": {
                "limit": {
                    "type": "integer",
                    "minimum": 0
                },
                "query": {
                    "type": "string",
                    "maxLength": 1000
                },
                "subjects": {
                    "type": "array",
                    "maxItems": 50,
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "api.SearchResponse": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "query": {
                    "type": "string"
                },
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/recommend.Result"
                    }
                }
            }
        },
        "api.SimilarCoursesResponse": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "course_id": {
                    "type": "string"
                },
                "found": {
                    "type": "boolean"
                },
                "similar_courses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/recommend.Result"
                    }
                }
            }
        },
        "api.SimilarRequest": {
            "type": "object",
            "required": [
                "course_id"
            ],
            "properties": {
                "course_id": {
                    "type": "string"
                },
                "limit": {
                    "type": "integer",
                    "minimum": 0
                }
            }
        },
        "api.StatsResponse": {
            "type": "object",
            "properties": {
                "api_version": {
                    "type": "string"
                },
                "courses_with_embeddings": {
                    "type": "integer"
                },
                "courses_with_prerequisites": {
                    "type": "integer"
                },
                "embedding_dim": {
                    "type": "integer"
                },
                "embedding_service": {
                    "type": "string"
                },
                "prerequisite_edges": {
                    "type": "integer"
                },
                "total_courses": {
                    "type": "integer"
                },
                "validation": {
                    "$ref": "#/definitions/prereq.ValidationStats"
                }
            }
        },
        "catalog.Course": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string",
                    "description": "Description is the catalog description. A nil pointer means the source\nrecord carried no description at all, which is distinct from an empty one."
                },
                "number": {
                    "type": "string",
                    "description": "Number is the course number including any letter suffix, e.g. \"151A\"."
                },
                "subject": {
                    "type": "string",
                    "description": "Subject is the department code, e.g. \"CSE\"."
                },
                "term": {
                    "type": "string",
                    "description": "Term is optional term metadata, e.g. \"FA25\"."
                },
                "title": {
                    "type": "string",
                    "description": "Title is the human-readable course title."
                },
                "units": {
                    "type": "number",
                    "description": "Units is the credit unit count. Never negative."
                }
            }
        },
        "middleware.EndpointStats": {
            "type": "object",
            "properties": {
                "avg_duration_ms": {
                    "type": "number"
                },
                "endpoint": {
                    "type": "string"
                },
                "error_count": {
                    "type": "integer"
                },
                "max_duration_ms": {
                    "type": "integer"
                },
                "min_duration_ms": {
                    "type": "integer"
                },
                "p50_duration_ms": {
                    "type": "integer"
                },
                "p95_duration_ms": {
                    "type": "integer"
                },
                "p99_duration_ms": {
                    "type": "integer"
                },
                "request_count": {
                    "type": "integer"
                }
            }
        },
        "middleware.RequestMetrics": {
            "type": "object",
            "properties": {
                "duration_ms": {
                    "type": "integer"
                },
                "method": {
                    "type": "string"
                },
                "route": {
                    "type": "string"
                },
                "status_code": {
                    "type": "integer"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "prereq.Edge": {
            "type": "object",
            "properties": {
                "codes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "role": {
                    "$ref": "#/definitions/prereq.Role"
                }
            }
        },
        "prereq.Eligibility": {
            "type": "object",
            "properties": {
                "eligible": {
                    "type": "boolean"
                },
                "missing_prerequisites": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "missing_recommended": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "prerequisites_met": {
                    "type": "integer"
                },
                "total_prerequisites": {
                    "type": "integer"
                }
            }
        },
        "prereq.Report": {
            "type": "object",
            "properties": {
                "invalid": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/prereq.Requirements"
                    }
                },
                "stats": {
                    "$ref": "#/definitions/prereq.ValidationStats"
                },
                "valid": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/prereq.Requirements"
                    }
                }
            }
        },
        "prereq.Requirements": {
            "type": "object",
            "properties": {
                "corequisites": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "prerequisites": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "recommended": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "prereq.Role": {
            "type": "string",
            "enum": [
                "required",
                "corequisite",
                "recommended"
            ],
            "x-enum-varnames": [
                "RoleRequired",
                "RoleCorequisite",
                "RoleRecommended"
            ]
        },
        "prereq.ValidationStats": {
            "type": "object",
            "properties": {
                "invalid_prerequisites": {
                    "type": "integer"
                },
                "total_prerequisites": {
                    "type": "integer"
                },
                "valid_prerequisites": {
                    "type": "integer"
                },
                "validation_rate": {
                    "type": "number"
                }
            }
        },
        "recommend.CourseInfo": {
            "type": "object",
            "properties": {
                "course": {
                    "$ref": "#/definitions/catalog.Course"
                },
                "requirement_edges": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/prereq.Edge"
                    }
                },
                "requirements": {
                    "$ref": "#/definitions/prereq.Requirements"
                },
                "similar_courses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/recommend.Result"
                    }
                }
            }
        },
        "recommend.EligibilityResult": {
            "type": "object",
            "properties": {
                "course_id": {
                    "type": "string"
                },
                "eligible": {
                    "type": "boolean"
                },
                "known": {
                    "type": "boolean"
                },
                "missing_prerequisites": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "missing_recommended": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "prerequisites_met": {
                    "type": "integer"
                },
                "total_prerequisites": {
                    "type": "integer"
                }
            }
        },
        "recommend.Metrics": {
            "type": "object",
            "properties": {
                "embed_count": {
                    "type": "integer"
                },
                "error_count": {
                    "type": "integer"
                },
                "request_count": {
                    "type": "integer"
                }
            }
        },
        "recommend.Path": {
            "type": "object",
            "properties": {
                "estimated_blocks": {
                    "type": "integer"
                },
                "prerequisites_needed": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/catalog.Course"
                    }
                },
                "target_course": {
                    "$ref": "#/definitions/catalog.Course"
                },
                "total_units": {
                    "type": "number"
                }
            }
        },
        "recommend.PathStep": {
            "type": "object",
            "properties": {
                "block": {
                    "type": "integer"
                },
                "course": {
                    "$ref": "#/definitions/catalog.Course"
                }
            }
        },
        "recommend.Result": {
            "type": "object",
            "properties": {
                "course_id": {
                    "type": "string"
                },
                "description_snippet": {
                    "type": "string"
                },
                "eligibility": {
                    "$ref": "#/definitions/prereq.Eligibility"
                },
                "number": {
                    "type": "string"
                },
                "score": {
                    "type": "number"
                },
                "subject": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "units": {
                    "type": "number"
                }
            }
        },
        "recommend.TransitivePath": {
            "type": "object",
            "properties": {
                "estimated_blocks": {
                    "type": "integer"
                },
                "steps": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/recommend.PathStep"
                    }
                },
                "target_course": {
                    "$ref": "#/definitions/catalog.Course"
                },
                "total_units": {
                    "type": "number"
                },
                "unresolved": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        }
    },
    "tags": [
        {
            "description": "Course search, recommendation and detail",
            "name": "Courses"
        },
        {
            "description": "Learning paths and eligibility checks",
            "name": "Planning"
        },
        {
            "description": "Health, statistics and diagnostics",
            "name": "Core"
        }
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "CourseCompass API",
	Description:      "Prerequisite-aware course search and recommendation.\n\nText queries are embedded by an external service behind a circuit breaker. While the\ncircuit is open, text queries answer 503 and vector or course-to-course queries keep working.\n\nAll responses use the same envelope: status, data, metadata and, on failure, error.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
