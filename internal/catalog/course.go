// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

// Package catalog holds the immutable course table that every other
// component of the recommendation engine reads from.
//
// A Catalog is built once from an ordered list of course records and never
// mutated afterwards. The insertion order of the source list is preserved
// because it is the deterministic tie-break order used by similarity ranking.
package catalog

import (
	"strconv"
	"strings"
)

// Course is a single course record.
type Course struct {
	// Subject is the department code, e.g. "CSE".
	Subject string `json:"subject"`

	// Number is the course number including any letter suffix, e.g. "151A".
	Number string `json:"number"`

	// Title is the human-readable course title.
	Title string `json:"title"`

	// Description is the catalog description. A nil pointer means the source
	// record carried no description at all, which is distinct from an empty one.
	Description *string `json:"description,omitempty"`

	// Units is the credit unit count. Never negative.
	Units float64 `json:"units"`

	// Term is optional term metadata, e.g. "FA25".
	Term string `json:"term,omitempty"`
}

// ID returns the course identifier "SUBJECT NUMBER", the join key used by the
// catalog, the embedding table and the prerequisite graph.
//
//nolint:gocritic // Course is a small value type
func (c Course) ID() string {
	return c.Subject + " " + c.Number
}

// HasDescription reports whether the course carries a non-empty description.
//
//nolint:gocritic // Course is a small value type
func (c Course) HasDescription() bool {
	return c.Description != nil && strings.TrimSpace(*c.Description) != ""
}

// DescriptionText returns the description and whether one was present.
//
//nolint:gocritic // Course is a small value type
func (c Course) DescriptionText() (string, bool) {
	if c.Description == nil {
		return "", false
	}
	return *c.Description, true
}

// Text returns the text an embedding model is fed for this course:
// "Title. Description", or just the title when there is no description.
//
//nolint:gocritic // Course is a small value type
func (c Course) Text() string {
	if !c.HasDescription() {
		return c.Title
	}
	return c.Title + ". " + *c.Description
}

// NumericPrefix returns the leading digits of a course number as an integer,
// ignoring any trailing letter suffix ("151A" -> 151). The boolean is false when
// the number does not start with a digit.
func NumericPrefix(number string) (int, bool) {
	end := 0
	for end < len(number) && number[end] >= '0' && number[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(number[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// GraduateThreshold is the first course number considered graduate level.
const GraduateThreshold = 200

// Level classifies courses as undergraduate or graduate.
type Level string

const (
	// LevelAny matches every course.
	LevelAny Level = ""
	// LevelUndergraduate matches course numbers below 200.
	LevelUndergraduate Level = "undergraduate"
	// LevelGraduate matches course numbers of 200 and above.
	LevelGraduate Level = "graduate"
)

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	switch l {
	case LevelAny, LevelUndergraduate, LevelGraduate:
		return true
	default:
		return false
	}
}

// Matches reports whether the course number falls in this level. A number
// without a numeric prefix only matches LevelAny, and an unknown level
// matches nothing.
func (l Level) Matches(number string) bool {
	if l == LevelAny {
		return true
	}
	n, ok := NumericPrefix(number)
	if !ok {
		return false
	}
	switch l {
	case LevelUndergraduate:
		return n < GraduateThreshold
	case LevelGraduate:
		return n >= GraduateThreshold
	default:
		return false
	}
}
