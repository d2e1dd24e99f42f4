// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package recommend

import (
	"fmt"
	"time"
)

// OverfetchFactor is the multiple of the requested limit fetched from the
// index before completion, eligibility and attribute filtering.
const OverfetchFactor = 2

// SnippetLength is the number of characters of course text shown with a
// search result.
const SnippetLength = 100

// CoursesPerBlock is the number of courses assumed feasible per planning
// block (one academic term).
const CoursesPerBlock = 3

// Config contains all recommendation engine configuration.
type Config struct {
	// Limits bounds result list sizes.
	Limits LimitsConfig `json:"limits"`

	// Similar controls the course-to-course endpoints.
	Similar SimilarConfig `json:"similar"`

	// EmbedTimeout bounds the external query embedding call. Zero leaves
	// the caller's context deadline in charge.
	// Default: 10s.
	EmbedTimeout time.Duration `json:"embed_timeout"`
}

// LimitsConfig contains result size limits.
type LimitsConfig struct {
	// DefaultK is used when a request does not set a limit.
	// Default: 10.
	DefaultK int `json:"default_k"`

	// MaxK caps any requested limit.
	// Default: 100.
	MaxK int `json:"max_k"`
}

// SimilarConfig contains course-to-course ranking parameters.
type SimilarConfig struct {
	// DefaultK is used by Similar when no limit is given.
	// Default: 5.
	DefaultK int `json:"default_k"`

	// InfoK is the number of similar courses attached to CourseInfo.
	// Default: 3.
	InfoK int `json:"info_k"`

	// CrossDepartmentK is the default size of cross-department lists.
	// Default: 3.
	CrossDepartmentK int `json:"cross_department_k"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultK: 10,
			MaxK:     100,
		},
		Similar: SimilarConfig{
			DefaultK:         5,
			InfoK:            3,
			CrossDepartmentK: 3,
		},
		EmbedTimeout: 10 * time.Second,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k must be >= limits.default_k, got %d < %d", c.Limits.MaxK, c.Limits.DefaultK)
	}
	if c.Similar.DefaultK < 1 {
		return fmt.Errorf("similar.default_k must be positive, got %d", c.Similar.DefaultK)
	}
	if c.Similar.InfoK < 0 {
		return fmt.Errorf("similar.info_k must be non-negative, got %d", c.Similar.InfoK)
	}
	if c.Similar.CrossDepartmentK < 1 {
		return fmt.Errorf("similar.cross_department_k must be positive, got %d", c.Similar.CrossDepartmentK)
	}
	if c.EmbedTimeout < 0 {
		return fmt.Errorf("embed_timeout must be non-negative, got %v", c.EmbedTimeout)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs contain only value types.
	clone := *c
	return &clone
}
