// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/coursecompass/config.yaml",
	"/etc/coursecompass/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Data: DataConfig{
			CoursesPath:    "data/courses.json",
			EmbeddingsPath: "data/embeddings.json",
		},
		Embedding: EmbeddingConfig{
			Model:              "all-MiniLM-L6-v2",
			Timeout:            10 * time.Second,
			RateLimit:          20,
			Burst:              5,
			FailureThreshold:   5,
			BreakerTimeout:     30 * time.Second,
			BreakerInterval:    time.Minute,
			BreakerMaxRequests: 1,
			CacheSize:          1024,
			CacheTTL:           time.Hour,
		},
		Recommend: RecommendConfig{
			DefaultLimit:         10,
			MaxLimit:             100,
			SimilarLimit:         5,
			InfoSimilar:          3,
			CrossDepartmentLimit: 3,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			MaxRequestBytes: 1 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf loads configuration with precedence env > file > defaults
// and validates the result.
func LoadWithKoanf() (*Config, error) {
	return load(findConfigFile())
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the config file to load, or "" when none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are split on commas when they arrive as strings from env.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	// Server
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Data
	"courses_path":       "data.courses_path",
	"embeddings_path":    "data.embeddings_path",
	"prerequisites_path": "data.prerequisites_path",
	"snapshot_dir":       "data.snapshot_dir",
	"rebuild_snapshot":   "data.rebuild_snapshot",

	// Embedding service
	"embedding_url":                  "embedding.url",
	"embedding_model":                "embedding.model",
	"embedding_api_key":              "embedding.api_key",
	"embedding_timeout":              "embedding.timeout",
	"embedding_rate_limit":           "embedding.rate_limit",
	"embedding_burst":                "embedding.burst",
	"embedding_failure_threshold":    "embedding.failure_threshold",
	"embedding_breaker_timeout":      "embedding.breaker_timeout",
	"embedding_breaker_interval":     "embedding.breaker_interval",
	"embedding_breaker_max_requests": "embedding.breaker_max_requests",
	"embedding_cache_size":           "embedding.cache_size",
	"embedding_cache_ttl":            "embedding.cache_ttl",

	// Recommendation limits
	"recommend_default_limit":          "recommend.default_limit",
	"recommend_max_limit":              "recommend.max_limit",
	"recommend_similar_limit":          "recommend.similar_limit",
	"recommend_info_similar":           "recommend.info_similar",
	"recommend_cross_department_limit": "recommend.cross_department_limit",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"max_request_bytes":   "security.max_request_bytes",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable to its koanf path. Unmapped
// variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
