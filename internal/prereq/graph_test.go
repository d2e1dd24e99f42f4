// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package prereq

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/coursecompass/internal/catalog"
)

func desc(s string) *string { return &s }

func testCourses() []catalog.Course {
	return []catalog.Course{
		{Subject: "CSE", Number: "12", Title: "Data Structures", Units: 4, Description: desc("Prerequisites: CSE 11.")},
		{Subject: "CSE", Number: "11", Title: "Intro Programming", Units: 4, Description: desc("No prior experience needed.")},
		{Subject: "CSE", Number: "15L", Title: "Software Tools", Units: 2},
		{Subject: "MATH", Number: "20A", Title: "Calculus", Units: 4, Description: desc("")},
		{
			Subject: "CSE", Number: "151A", Title: "Machine Learning", Units: 4,
			Description: desc("Prerequisites: CSE 12, CSE 15L, MATH 20A. Recommended preparation: CSE 100, MATH 18."),
		},
		{Subject: "CSE", Number: "199", Title: "Independent Study", Units: 4, Description: desc("Prerequisites: CSE 42.")},
	}
}

func TestBuildGraph(t *testing.T) {
	t.Parallel()

	g := BuildGraph(testCourses())

	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", g.Len())
	}
	if want := []string{"CSE 12", "CSE 151A", "CSE 199"}; !reflect.DeepEqual(g.IDs(), want) {
		t.Errorf("IDs() = %v, want %v", g.IDs(), want)
	}
	if _, ok := g.Get("CSE 11"); ok {
		t.Error("Get(CSE 11) should be absent: description has no requirements")
	}
	if _, ok := g.Get("CSE 15L"); ok {
		t.Error("Get(CSE 15L) should be absent: no description")
	}

	reqs, ok := g.Get("CSE 151A")
	if !ok {
		t.Fatal("Get(CSE 151A) missing")
	}
	if want := []string{"CSE 12", "CSE 15L", "MATH 20A"}; !reflect.DeepEqual(reqs.Required, want) {
		t.Errorf("Required = %v, want %v", reqs.Required, want)
	}
	if g.EdgeCount() != 1+5+1 {
		t.Errorf("EdgeCount() = %d, want 7", g.EdgeCount())
	}

	// Get returns a copy.
	reqs.Required[0] = "XXX 1"
	again, _ := g.Get("CSE 151A")
	if again.Required[0] != "CSE 12" {
		t.Error("Get() exposed internal state")
	}
}

func TestNewGraph(t *testing.T) {
	t.Parallel()

	g := NewGraph([]string{"B 1", "A 1"}, map[string]Requirements{
		"A 1": {Required: []string{"B 1"}},
		"B 1": {Required: []string{"C 1"}},
		"Z 9": {Recommended: []string{"A 1"}},
		"Y 9": {},
	})

	if want := []string{"B 1", "A 1", "Z 9"}; !reflect.DeepEqual(g.IDs(), want) {
		t.Errorf("IDs() = %v, want %v", g.IDs(), want)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	courses := testCourses()
	cat, err := catalog.New(courses)
	if err != nil {
		t.Fatalf("catalog.New() error: %v", err)
	}
	g := BuildGraph(courses)

	report := Validate(g, cat.KnownIDs())

	stats := report.Stats
	if stats.Total != g.EdgeCount() {
		t.Errorf("Total = %d, want %d", stats.Total, g.EdgeCount())
	}
	if stats.Valid+stats.Dangling != stats.Total {
		t.Errorf("Valid+Dangling = %d, want %d", stats.Valid+stats.Dangling, stats.Total)
	}
	if stats.Valid != 4 || stats.Dangling != 3 {
		t.Errorf("Valid = %d, Dangling = %d, want 4 and 3", stats.Valid, stats.Dangling)
	}
	if math.Abs(stats.Rate-4.0/7.0) > 1e-12 {
		t.Errorf("Rate = %v, want %v", stats.Rate, 4.0/7.0)
	}

	if want := []string{"CSE 100", "MATH 18"}; !reflect.DeepEqual(report.Dangling["CSE 151A"].Recommended, want) {
		t.Errorf("Dangling[CSE 151A].Recommended = %v, want %v", report.Dangling["CSE 151A"].Recommended, want)
	}
	if _, ok := report.Valid["CSE 199"]; ok {
		t.Error("CSE 199 has no valid edges and should be absent from Valid")
	}
	if _, ok := report.Dangling["CSE 12"]; ok {
		t.Error("CSE 12 has no dangling edges and should be absent from Dangling")
	}
}

func TestValidate_EmptyGraph(t *testing.T) {
	t.Parallel()

	report := Validate(BuildGraph(nil), map[string]struct{}{})
	if report.Stats.Total != 0 || report.Stats.Rate != 0 {
		t.Errorf("empty graph stats = %+v, want zero", report.Stats)
	}
}

func TestRequiredClosure(t *testing.T) {
	t.Parallel()

	g := NewGraph(nil, map[string]Requirements{
		"CSE 151A": {Required: []string{"CSE 12", "MATH 20A"}},
		"CSE 12":   {Required: []string{"CSE 11"}},
		"MATH 20A": {Required: []string{"MATH 10"}},
	})

	t.Run("dependency order and depth", func(t *testing.T) {
		t.Parallel()

		c, err := g.RequiredClosure("CSE 151A", NewSet())
		if err != nil {
			t.Fatalf("RequiredClosure() error: %v", err)
		}
		want := []string{"CSE 11", "CSE 12", "MATH 10", "MATH 20A"}
		if !reflect.DeepEqual(c.Order, want) {
			t.Errorf("Order = %v, want %v", c.Order, want)
		}
		if c.Depth["CSE 11"] != 0 || c.Depth["CSE 12"] != 1 || c.Depth["CSE 151A"] != 2 {
			t.Errorf("Depth = %v", c.Depth)
		}
	})

	t.Run("completed courses are not expanded", func(t *testing.T) {
		t.Parallel()

		c, err := g.RequiredClosure("CSE 151A", NewSet("CSE 12"))
		if err != nil {
			t.Fatalf("RequiredClosure() error: %v", err)
		}
		if want := []string{"MATH 10", "MATH 20A"}; !reflect.DeepEqual(c.Order, want) {
			t.Errorf("Order = %v, want %v", c.Order, want)
		}
	})

	t.Run("course without requirements", func(t *testing.T) {
		t.Parallel()

		c, err := g.RequiredClosure("CSE 11", nil)
		if err != nil {
			t.Fatalf("RequiredClosure() error: %v", err)
		}
		if len(c.Order) != 0 {
			t.Errorf("Order = %v, want empty", c.Order)
		}
	})
}

func TestRequiredClosure_Cycle(t *testing.T) {
	t.Parallel()

	g := NewGraph(nil, map[string]Requirements{
		"A 1": {Required: []string{"B 1"}},
		"B 1": {Required: []string{"C 1"}},
		"C 1": {Required: []string{"A 1"}},
		"S 1": {Required: []string{"S 1"}},
	})

	_, err := g.RequiredClosure("A 1", nil)
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("RequiredClosure() error = %v, want ErrCycle", err)
	}
	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("error is not a *CycleError: %T", err)
	}
	if want := []string{"A 1", "B 1", "C 1", "A 1"}; !reflect.DeepEqual(cycleErr.Path, want) {
		t.Errorf("Path = %v, want %v", cycleErr.Path, want)
	}

	if _, err := g.RequiredClosure("S 1", nil); !errors.Is(err, ErrCycle) {
		t.Errorf("self-reference error = %v, want ErrCycle", err)
	}

	// Completing a course on the loop breaks it.
	if _, err := g.RequiredClosure("A 1", NewSet("C 1")); err != nil {
		t.Errorf("RequiredClosure() with broken loop error: %v", err)
	}
}
