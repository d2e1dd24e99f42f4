// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package recommend

import (
	"testing"

	"github.com/tomtom215/coursecompass/internal/catalog"
)

func TestFilter_Matches(t *testing.T) {
	t.Parallel()

	undergrad := catalog.Course{Subject: "CSE", Number: "151A", Units: 4}
	graduate := catalog.Course{Subject: "CSE", Number: "250A", Units: 4}
	lab := catalog.Course{Subject: "CSE", Number: "15L", Units: 2}
	math := catalog.Course{Subject: "MATH", Number: "20A", Units: 4}

	tests := []struct {
		name   string
		filter *Filter
		course catalog.Course
		want   bool
	}{
		{"nil filter", nil, undergrad, true},
		{"empty filter", &Filter{}, math, true},
		{"subject match", &Filter{Subjects: []string{"MATH", "CSE"}}, undergrad, true},
		{"subject mismatch", &Filter{Subjects: []string{"MATH"}}, undergrad, false},
		{"min units inclusive", &Filter{MinUnits: float64Ptr(4)}, undergrad, true},
		{"below min units", &Filter{MinUnits: float64Ptr(4)}, lab, false},
		{"max units inclusive", &Filter{MaxUnits: float64Ptr(2)}, lab, true},
		{"above max units", &Filter{MaxUnits: float64Ptr(2)}, undergrad, false},
		{"undergraduate level", &Filter{Level: catalog.LevelUndergraduate}, undergrad, true},
		{"undergraduate excludes graduate", &Filter{Level: catalog.LevelUndergraduate}, graduate, false},
		{"graduate level", &Filter{Level: catalog.LevelGraduate}, graduate, true},
		{"graduate excludes undergraduate", &Filter{Level: catalog.LevelGraduate}, lab, false},
		{
			name:   "all constraints combined",
			filter: &Filter{Subjects: []string{"CSE"}, MinUnits: float64Ptr(2), MaxUnits: float64Ptr(4), Level: catalog.LevelGraduate},
			course: graduate,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filter.Matches(tt.course); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}
