// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package config

import (
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"zero read timeout", func(c *Config) { c.Server.ReadTimeout = 0 }, true},
		{"unknown environment", func(c *Config) { c.Server.Environment = "prod" }, true},
		{"missing courses path", func(c *Config) { c.Data.CoursesPath = "" }, true},
		{"missing embeddings path", func(c *Config) { c.Data.EmbeddingsPath = "" }, true},
		{
			name: "snapshot replaces json paths",
			modify: func(c *Config) {
				c.Data.CoursesPath = ""
				c.Data.EmbeddingsPath = ""
				c.Data.SnapshotDir = "/data/snapshot"
			},
		},
		{
			name: "rebuild needs json paths",
			modify: func(c *Config) {
				c.Data.CoursesPath = ""
				c.Data.SnapshotDir = "/data/snapshot"
				c.Data.RebuildSnapshot = true
			},
			wantErr: true,
		},
		{"rebuild without snapshot dir", func(c *Config) { c.Data.RebuildSnapshot = true }, true},
		{"embedding url", func(c *Config) { c.Embedding.URL = "http://localhost:8081/embed" }, false},
		{"embedding url without scheme", func(c *Config) { c.Embedding.URL = "localhost:8081" }, true},
		{
			name: "embedding zero timeout",
			modify: func(c *Config) {
				c.Embedding.URL = "http://localhost:8081"
				c.Embedding.Timeout = 0
			},
			wantErr: true,
		},
		{
			name: "embedding rate without burst",
			modify: func(c *Config) {
				c.Embedding.URL = "http://localhost:8081"
				c.Embedding.Burst = 0
			},
			wantErr: true,
		},
		{
			name: "embedding limiter disabled",
			modify: func(c *Config) {
				c.Embedding.URL = "http://localhost:8081"
				c.Embedding.RateLimit = 0
				c.Embedding.Burst = 0
			},
		},
		{
			name: "embedding zero failure threshold",
			modify: func(c *Config) {
				c.Embedding.URL = "http://localhost:8081"
				c.Embedding.FailureThreshold = 0
			},
			wantErr: true,
		},
		{
			name: "embedding cache without ttl",
			modify: func(c *Config) {
				c.Embedding.URL = "http://localhost:8081"
				c.Embedding.CacheTTL = 0
			},
			wantErr: true,
		},
		{
			name: "embedding cache disabled",
			modify: func(c *Config) {
				c.Embedding.URL = "http://localhost:8081"
				c.Embedding.CacheSize = 0
				c.Embedding.CacheTTL = 0
			},
		},
		{"default limit zero", func(c *Config) { c.Recommend.DefaultLimit = 0 }, true},
		{"max below default", func(c *Config) { c.Recommend.MaxLimit = 5 }, true},
		{"negative info similar", func(c *Config) { c.Recommend.InfoSimilar = -1 }, true},
		{"wildcard cors in production", func(c *Config) { c.Server.Environment = "production" }, true},
		{
			name: "explicit cors in production",
			modify: func(c *Config) {
				c.Server.Environment = "production"
				c.Security.CORSOrigins = []string{"https://courses.example"}
			},
		},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, true},
		{
			name: "rate limit disabled",
			modify: func(c *Config) {
				c.Security.RateLimitDisabled = true
				c.Security.RateLimitReqs = 0
				c.Security.RateLimitWindow = 0
			},
		},
		{"zero body limit", func(c *Config) { c.Security.MaxRequestBytes = 0 }, true},
		{"unknown log level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"empty log format", func(c *Config) { c.Logging.Format = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 8000, ReadTimeout: time.Second}
	if got := s.Addr(); got != "127.0.0.1:8000" {
		t.Errorf("Addr() = %q", got)
	}
}
