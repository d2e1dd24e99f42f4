// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCourse is returned when a record is missing its subject or
	// number, or carries negative units.
	ErrInvalidCourse = errors.New("invalid course record")

	// ErrDuplicateCourse is returned when two records share an identifier.
	ErrDuplicateCourse = errors.New("duplicate course identifier")
)

// Catalog is an immutable, insertion-ordered table of courses. All methods are
// safe for concurrent use because nothing mutates the catalog after New.
type Catalog struct {
	courses []Course
	byID    map[string]int
}

// New builds a catalog from an ordered list of course records.
func New(courses []Course) (*Catalog, error) {
	c := &Catalog{
		courses: make([]Course, 0, len(courses)),
		byID:    make(map[string]int, len(courses)),
	}

	for i := range courses {
		course := courses[i]
		course.Subject = strings.TrimSpace(course.Subject)
		course.Number = strings.TrimSpace(course.Number)

		if course.Subject == "" || course.Number == "" {
			return nil, fmt.Errorf("%w: record %d has empty subject or number", ErrInvalidCourse, i)
		}
		if course.Units < 0 {
			return nil, fmt.Errorf("%w: %s has negative units %v", ErrInvalidCourse, course.ID(), course.Units)
		}

		id := course.ID()
		if _, exists := c.byID[id]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCourse, id)
		}

		c.byID[id] = len(c.courses)
		c.courses = append(c.courses, course)
	}

	return c, nil
}

// Get returns the course with the given identifier. The boolean reports
// whether the course exists; callers must not treat the zero Course as data.
func (c *Catalog) Get(id string) (Course, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Course{}, false
	}
	return c.courses[i], true
}

// Has reports whether the identifier is known.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// IDs returns every identifier in insertion order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.courses))
	for i := range c.courses {
		ids[i] = c.courses[i].ID()
	}
	return ids
}

// Courses returns a copy of every course in insertion order.
func (c *Catalog) Courses() []Course {
	out := make([]Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// KnownIDs returns the identifier set used for prerequisite validation.
func (c *Catalog) KnownIDs() map[string]struct{} {
	known := make(map[string]struct{}, len(c.byID))
	for id := range c.byID {
		known[id] = struct{}{}
	}
	return known
}
