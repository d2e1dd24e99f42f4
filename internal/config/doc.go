// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

/*
Package config loads and validates CourseCompass configuration.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. Later layers win.

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default 0.0.0.0:8000)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
  - ENVIRONMENT: development, staging or production

Data:
  - COURSES_PATH, EMBEDDINGS_PATH: JSON inputs
  - PREREQUISITES_PATH: optional precomputed requirements
  - SNAPSHOT_DIR: badger snapshot directory; REBUILD_SNAPSHOT=true reloads JSON

Embedding service:
  - EMBEDDING_URL (empty disables free-text queries), EMBEDDING_MODEL, EMBEDDING_API_KEY
  - EMBEDDING_TIMEOUT, EMBEDDING_RATE_LIMIT, EMBEDDING_BURST
  - EMBEDDING_FAILURE_THRESHOLD, EMBEDDING_BREAKER_TIMEOUT, EMBEDDING_BREAKER_INTERVAL,
    EMBEDDING_BREAKER_MAX_REQUESTS
  - EMBEDDING_CACHE_SIZE (0 disables), EMBEDDING_CACHE_TTL

Limits:
  - RECOMMEND_DEFAULT_LIMIT, RECOMMEND_MAX_LIMIT, RECOMMEND_SIMILAR_LIMIT,
    RECOMMEND_INFO_SIMILAR, RECOMMEND_CROSS_DEPARTMENT_LIMIT

Security:
  - CORS_ORIGINS (comma separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW,
    DISABLE_RATE_LIMIT, MAX_REQUEST_BYTES

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example config.yaml

	server:
	  port: 8000
	data:
	  courses_path: /data/courses.json
	  embeddings_path: /data/embeddings.json
	  snapshot_dir: /data/snapshot
	embedding:
	  url: http://embedder:8080/embed
	  timeout: 5s
*/
package config
