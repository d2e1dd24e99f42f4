// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package prereq

import (
	"reflect"
	"testing"
)

func TestEvaluator_Check(t *testing.T) {
	t.Parallel()

	g := NewGraph(nil, map[string]Requirements{
		"CSE 100":  {Required: []string{"CSE 12"}},
		"CSE 151A": {Required: []string{"CSE 12", "MATH 20A"}, Recommended: []string{"MATH 18"}},
		"CSE 199":  {Required: []string{"CSE 42"}},
		"CSE 190":  {Recommended: []string{"CSE 100"}},
	})
	eval := NewEvaluator(g)

	tests := []struct {
		name      string
		id        string
		completed Set
		verify    func(t *testing.T, got Eligibility)
	}{
		{
			name:      "missing single required",
			id:        "CSE 100",
			completed: NewSet(),
			verify: func(t *testing.T, got Eligibility) {
				if got.Eligible {
					t.Error("expected ineligible")
				}
				if !reflect.DeepEqual(got.MissingRequired, []string{"CSE 12"}) {
					t.Errorf("MissingRequired = %v", got.MissingRequired)
				}
				if got.RequiredMet != 0 || got.RequiredTotal != 1 {
					t.Errorf("met/total = %d/%d, want 0/1", got.RequiredMet, got.RequiredTotal)
				}
			},
		},
		{
			name:      "recommended never blocks",
			id:        "CSE 151A",
			completed: NewSet("CSE 12", "MATH 20A"),
			verify: func(t *testing.T, got Eligibility) {
				if !got.Eligible {
					t.Error("expected eligible")
				}
				if !reflect.DeepEqual(got.MissingRecommended, []string{"MATH 18"}) {
					t.Errorf("MissingRecommended = %v", got.MissingRecommended)
				}
				if got.RequiredMet != 2 || got.RequiredTotal != 2 {
					t.Errorf("met/total = %d/%d, want 2/2", got.RequiredMet, got.RequiredTotal)
				}
			},
		},
		{
			name:      "partial progress",
			id:        "CSE 151A",
			completed: NewSet("MATH 20A"),
			verify: func(t *testing.T, got Eligibility) {
				if got.Eligible || got.RequiredMet != 1 {
					t.Errorf("got %+v, want ineligible with 1 met", got)
				}
			},
		},
		{
			name:      "only recommended edges",
			id:        "CSE 190",
			completed: nil,
			verify: func(t *testing.T, got Eligibility) {
				if !got.Eligible || got.RequiredTotal != 0 {
					t.Errorf("got %+v, want trivially eligible", got)
				}
			},
		},
		{
			name:      "dangling required edge stays unmet",
			id:        "CSE 199",
			completed: NewSet("CSE 12", "CSE 100"),
			verify: func(t *testing.T, got Eligibility) {
				if got.Eligible {
					t.Error("expected ineligible")
				}
			},
		},
		{
			name:      "course absent from graph",
			id:        "CSE 11",
			completed: NewSet(),
			verify: func(t *testing.T, got Eligibility) {
				if !got.Eligible || len(got.MissingRequired) != 0 || got.MissingRequired == nil {
					t.Errorf("got %+v, want eligible with empty non-nil missing list", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := eval.Check(tt.id, tt.completed)
			tt.verify(t, got)
			if got.Eligible != eval.Eligible(tt.id, tt.completed) {
				t.Error("Eligible() disagrees with Check()")
			}
		})
	}
}
