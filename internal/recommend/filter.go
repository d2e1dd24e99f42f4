// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package recommend

import (
	"github.com/tomtom215/coursecompass/internal/catalog"
)

// Filter is an optional predicate bundle applied to recommendation
// candidates. Zero values impose no constraint.
type Filter struct {
	// Subjects restricts results to these department codes.
	Subjects []string `json:"subjects,omitempty"`

	// MinUnits is the inclusive lower unit bound.
	MinUnits *float64 `json:"min_units,omitempty"`

	// MaxUnits is the inclusive upper unit bound.
	MaxUnits *float64 `json:"max_units,omitempty"`

	// Level restricts results to undergraduate or graduate courses.
	Level catalog.Level `json:"level,omitempty"`
}

// Matches reports whether the course satisfies every constraint. A nil
// filter matches everything.
//
//nolint:gocritic // Course is a small value type
func (f *Filter) Matches(c catalog.Course) bool {
	if f == nil {
		return true
	}

	if len(f.Subjects) > 0 && !containsString(f.Subjects, c.Subject) {
		return false
	}
	if f.MinUnits != nil && c.Units < *f.MinUnits {
		return false
	}
	if f.MaxUnits != nil && c.Units > *f.MaxUnits {
		return false
	}
	return f.Level.Matches(c.Number)
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
