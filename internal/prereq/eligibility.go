// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package prereq

// Set is a completed-course set supplied per call.
type Set map[string]struct{}

// NewSet builds a set from identifiers.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership. A nil Set is empty.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Eligibility is the outcome of checking one course against a completed set.
type Eligibility struct {
	// Eligible is true when every required edge is completed.
	Eligible bool `json:"eligible"`

	// MissingRequired lists uncompleted required edges in requirement order.
	MissingRequired []string `json:"missing_prerequisites"`

	// MissingRecommended lists uncompleted recommended edges. Advisory only.
	MissingRecommended []string `json:"missing_recommended"`

	// RequiredMet counts completed required edges.
	RequiredMet int `json:"prerequisites_met"`

	// RequiredTotal counts all required edges.
	RequiredTotal int `json:"total_prerequisites"`
}

// Evaluator answers eligibility questions against a requirement graph.
type Evaluator struct {
	graph *Graph
}

// NewEvaluator returns an evaluator over g.
func NewEvaluator(g *Graph) *Evaluator {
	return &Evaluator{graph: g}
}

// Check evaluates a course. Courses absent from the graph, including unknown
// identifiers, are eligible with nothing missing. A required edge pointing at
// a course that does not exist can never be completed and stays missing.
func (e *Evaluator) Check(id string, completed Set) Eligibility {
	reqs, ok := e.graph.edges[id]
	if !ok {
		return Eligibility{
			Eligible:           true,
			MissingRequired:    []string{},
			MissingRecommended: []string{},
		}
	}

	missingRequired := missing(reqs.Required, completed)
	return Eligibility{
		Eligible:           len(missingRequired) == 0,
		MissingRequired:    missingRequired,
		MissingRecommended: missing(reqs.Recommended, completed),
		RequiredMet:        len(reqs.Required) - len(missingRequired),
		RequiredTotal:      len(reqs.Required),
	}
}

// Eligible is the boolean part of Check without allocating the missing lists.
func (e *Evaluator) Eligible(id string, completed Set) bool {
	for _, code := range e.graph.edges[id].Required {
		if !completed.Has(code) {
			return false
		}
	}
	return true
}

func missing(codes []string, completed Set) []string {
	out := []string{}
	for _, code := range codes {
		if !completed.Has(code) {
			out = append(out, code)
		}
	}
	return out
}
