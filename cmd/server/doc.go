// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

/*
Package main is the entry point for the CourseCompass server.

CourseCompass ranks university courses by semantic similarity to a free-text
query and filters them by prerequisite eligibility, so students see only
courses they can actually enroll in.

# Startup

 1. Configuration: Koanf v2 (defaults, optional config.yaml, environment)
 2. Logging: zerolog, with a slog bridge for the supervisor
 3. Dataset: from the badger snapshot when one exists, else from JSON files
 4. Engine: catalog, embedding index and prerequisite graph
 5. Embedding client: HTTP client behind a circuit breaker (optional)
 6. HTTP API: chi router
 7. Supervision: suture tree until SIGINT or SIGTERM

A JSON load with SNAPSHOT_DIR set queues a one-shot snapshot write, so the
next start reads the snapshot instead. The snapshot records the size and
modification time of the JSON inputs; when those change, the JSON is loaded
again and the snapshot rewritten.

The OpenAPI document is served at /swagger/index.html.

# Configuration

Common environment variables:

	HTTP_PORT            listen port (default 8000)
	COURSES_PATH         courses JSON (default data/courses.json)
	EMBEDDINGS_PATH      embeddings JSON (default data/embeddings.json)
	PREREQUISITES_PATH   optional precomputed prerequisites JSON
	SNAPSHOT_DIR         badger directory; empty disables snapshots
	REBUILD_SNAPSHOT     ignore an existing snapshot and reload JSON
	EMBEDDING_URL        embedding service; empty allows only vector queries
	LOG_LEVEL, LOG_FORMAT

# Example

	export EMBEDDING_URL=http://localhost:9000/embed
	export SNAPSHOT_DIR=/var/lib/coursecompass
	./coursecompass

	curl -s localhost:8000/api/v1/recommend \
	  -d '{"query":"machine learning","completed_courses":["CSE 12","MATH 20A"]}'
*/
package main
