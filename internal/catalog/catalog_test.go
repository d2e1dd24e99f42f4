// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package catalog

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func testCourses() []Course {
	return []Course{
		{Subject: "CSE", Number: "12", Title: "Data Structures", Units: 4, Description: strPtr("Trees and heaps.")},
		{Subject: "CSE", Number: "151A", Title: "Machine Learning", Units: 4},
		{Subject: "MATH", Number: "20A", Title: "Calculus", Units: 4, Description: strPtr("")},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		courses []Course
		wantErr error
		wantLen int
	}{
		{name: "valid catalog", courses: testCourses(), wantLen: 3},
		{name: "empty catalog", courses: nil, wantLen: 0},
		{
			name:    "duplicate identifier",
			courses: []Course{{Subject: "CSE", Number: "12"}, {Subject: "CSE", Number: "12"}},
			wantErr: ErrDuplicateCourse,
		},
		{
			name:    "missing number",
			courses: []Course{{Subject: "CSE"}},
			wantErr: ErrInvalidCourse,
		},
		{
			name:    "negative units",
			courses: []Course{{Subject: "CSE", Number: "8A", Units: -1}},
			wantErr: ErrInvalidCourse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cat, err := New(tt.courses)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if cat.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", cat.Len(), tt.wantLen)
			}
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	t.Parallel()

	cat, err := New(testCourses())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	course, ok := cat.Get("CSE 151A")
	if !ok || course.Title != "Machine Learning" {
		t.Errorf("Get(CSE 151A) = %+v, %v", course, ok)
	}

	if _, ok := cat.Get("CSE 999"); ok {
		t.Error("Get() on unknown id should report absence")
	}

	ids := cat.IDs()
	want := []string{"CSE 12", "CSE 151A", "MATH 20A"}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}

	if _, ok := cat.KnownIDs()["CSE 12"]; !ok {
		t.Error("KnownIDs() missing CSE 12")
	}
}

func TestCourse_Text(t *testing.T) {
	t.Parallel()

	courses := testCourses()
	tests := []struct {
		name   string
		course Course
		want   string
	}{
		{name: "title and description", course: courses[0], want: "Data Structures. Trees and heaps."},
		{name: "absent description", course: courses[1], want: "Machine Learning"},
		{name: "empty description", course: courses[2], want: "Calculus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.course.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, ok := courses[1].DescriptionText(); ok {
		t.Error("DescriptionText() should report absence for nil description")
	}
	if _, ok := courses[2].DescriptionText(); !ok {
		t.Error("DescriptionText() should report presence for empty description")
	}
}

func TestLevel_Matches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level  Level
		number string
		want   bool
	}{
		{LevelAny, "X1", true},
		{LevelUndergraduate, "151A", true},
		{LevelUndergraduate, "199", true},
		{LevelUndergraduate, "200", false},
		{LevelGraduate, "200", true},
		{LevelGraduate, "250B", true},
		{LevelGraduate, "20", false},
		{LevelGraduate, "ABC", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.level)+"/"+tt.number, func(t *testing.T) {
			t.Parallel()
			if got := tt.level.Matches(tt.number); got != tt.want {
				t.Errorf("%q.Matches(%q) = %v, want %v", tt.level, tt.number, got, tt.want)
			}
		})
	}
}

func TestNumericPrefix(t *testing.T) {
	t.Parallel()

	if n, ok := NumericPrefix("151A"); !ok || n != 151 {
		t.Errorf("NumericPrefix(151A) = %d, %v", n, ok)
	}
	if _, ok := NumericPrefix("A1"); ok {
		t.Error("NumericPrefix(A1) should fail")
	}
}
