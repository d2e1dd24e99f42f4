// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/tomtom215/coursecompass/internal/logging"
)

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateData(); err != nil {
		return err
	}
	if err := c.validateEmbedding(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT and HTTP_WRITE_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

// validateData requires JSON sources unless a snapshot can supply the data.
func (c *Config) validateData() error {
	if c.SnapshotEnabled() && !c.Data.RebuildSnapshot {
		return nil
	}
	if c.Data.CoursesPath == "" {
		return errors.New("COURSES_PATH is required")
	}
	if c.Data.EmbeddingsPath == "" {
		return errors.New("EMBEDDINGS_PATH is required")
	}
	if c.Data.RebuildSnapshot && !c.SnapshotEnabled() {
		return errors.New("REBUILD_SNAPSHOT requires SNAPSHOT_DIR")
	}
	return nil
}

func (c *Config) validateEmbedding() error {
	if !c.EmbeddingEnabled() {
		return nil
	}

	u, err := url.Parse(c.Embedding.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("EMBEDDING_URL must be an http(s) URL, got %q", c.Embedding.URL)
	}
	if c.Embedding.Timeout <= 0 {
		return errors.New("EMBEDDING_TIMEOUT must be positive")
	}
	if c.Embedding.RateLimit < 0 {
		return errors.New("EMBEDDING_RATE_LIMIT must not be negative")
	}
	if c.Embedding.RateLimit > 0 && c.Embedding.Burst < 1 {
		return errors.New("EMBEDDING_BURST must be at least 1 when rate limiting is enabled")
	}
	if c.Embedding.FailureThreshold == 0 {
		return errors.New("EMBEDDING_FAILURE_THRESHOLD must be at least 1")
	}
	if c.Embedding.BreakerTimeout <= 0 {
		return errors.New("EMBEDDING_BREAKER_TIMEOUT must be positive")
	}
	if c.Embedding.CacheSize < 0 {
		return errors.New("EMBEDDING_CACHE_SIZE must not be negative")
	}
	if c.Embedding.CacheSize > 0 && c.Embedding.CacheTTL <= 0 {
		return errors.New("EMBEDDING_CACHE_TTL must be positive when the cache is enabled")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.DefaultLimit < 1 {
		return errors.New("RECOMMEND_DEFAULT_LIMIT must be at least 1")
	}
	if r.MaxLimit < r.DefaultLimit {
		return fmt.Errorf("RECOMMEND_MAX_LIMIT (%d) must be >= RECOMMEND_DEFAULT_LIMIT (%d)", r.MaxLimit, r.DefaultLimit)
	}
	if r.SimilarLimit < 1 || r.CrossDepartmentLimit < 1 {
		return errors.New("RECOMMEND_SIMILAR_LIMIT and RECOMMEND_CROSS_DEPARTMENT_LIMIT must be at least 1")
	}
	if r.InfoSimilar < 0 {
		return errors.New("RECOMMEND_INFO_SIMILAR must not be negative")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	// Any origin may call a public read-only API in development, but a
	// production deployment must name its front-end origins.
	if c.IsProduction() && c.hasWildcardCORS() {
		return errors.New("CORS_ORIGINS=* is not allowed in production; list the allowed origins")
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return errors.New("RATE_LIMIT_REQUESTS must be at least 1")
		}
		if c.Security.RateLimitWindow <= 0 {
			return errors.New("RATE_LIMIT_WINDOW must be positive")
		}
	}
	if c.Security.MaxRequestBytes < 1 {
		return errors.New("MAX_REQUEST_BYTES must be at least 1")
	}
	return nil
}

func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
