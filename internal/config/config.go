// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
//
// Loading order (see LoadWithKoanf):
//  1. Defaults from defaultConfig
//  2. Optional YAML file (CONFIG_PATH or the first of DefaultConfigPaths)
//  3. Environment variables listed in envMappings
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Data      DataConfig      `koanf:"data"`
	Embedding EmbeddingConfig `koanf:"embedding"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging or production
}

// DataConfig locates the course data.
type DataConfig struct {
	CoursesPath    string `koanf:"courses_path"`
	EmbeddingsPath string `koanf:"embeddings_path"`

	// PrerequisitesPath is an optional precomputed requirement file. When
	// empty, requirements are parsed from course descriptions at startup.
	PrerequisitesPath string `koanf:"prerequisites_path"`

	// SnapshotDir is the badger directory. Empty disables snapshots.
	SnapshotDir string `koanf:"snapshot_dir"`

	// RebuildSnapshot forces a reload from JSON and overwrites the snapshot.
	RebuildSnapshot bool `koanf:"rebuild_snapshot"`
}

// EmbeddingConfig configures the external text embedding service.
// An empty URL disables free-text queries; vector queries keep working.
type EmbeddingConfig struct {
	URL     string        `koanf:"url"`
	Model   string        `koanf:"model"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`

	// RateLimit is calls per second. Zero disables client-side limiting.
	RateLimit float64 `koanf:"rate_limit"`
	Burst     int     `koanf:"burst"`

	// Circuit breaker: open after FailureThreshold consecutive failures,
	// stay open for BreakerTimeout, then allow BreakerMaxRequests trial calls.
	FailureThreshold   uint32        `koanf:"failure_threshold"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout"`
	BreakerInterval    time.Duration `koanf:"breaker_interval"`
	BreakerMaxRequests uint32        `koanf:"breaker_max_requests"`

	// Query embedding cache. CacheSize 0 disables it.
	CacheSize int           `koanf:"cache_size"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
}

// RecommendConfig holds result size limits.
type RecommendConfig struct {
	DefaultLimit         int `koanf:"default_limit"`
	MaxLimit             int `koanf:"max_limit"`
	SimilarLimit         int `koanf:"similar_limit"`
	InfoSimilar          int `koanf:"info_similar"`
	CrossDepartmentLimit int `koanf:"cross_department_limit"`
}

// SecurityConfig holds HTTP edge protections.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	MaxRequestBytes   int64         `koanf:"max_request_bytes"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// EmbeddingEnabled reports whether free-text queries can be embedded.
func (c *Config) EmbeddingEnabled() bool {
	return c.Embedding.URL != ""
}

// SnapshotEnabled reports whether a badger snapshot directory is configured.
func (c *Config) SnapshotEnabled() bool {
	return c.Data.SnapshotDir != ""
}

// String summarizes the config for startup logs without secrets.
func (c *Config) String() string {
	return fmt.Sprintf("server=%s env=%s courses=%s embeddings=%s snapshot=%q embedding_url=%q",
		c.Server.Addr(), c.Server.Environment, c.Data.CoursesPath, c.Data.EmbeddingsPath,
		c.Data.SnapshotDir, c.Embedding.URL)
}
