// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package prereq

import (
	"sort"

	"github.com/tomtom215/coursecompass/internal/catalog"
)

// Graph maps course identifiers to their parsed requirement edges. Only
// courses with at least one edge have an entry. A Graph is read-only after
// construction and safe for concurrent readers.
type Graph struct {
	order []string
	edges map[string]Requirements
}

// BuildGraph parses the description of every course. Courses without a
// description, or whose description yields no edges, are left out.
func BuildGraph(courses []catalog.Course) *Graph {
	g := &Graph{edges: make(map[string]Requirements)}

	for i := range courses {
		text, ok := courses[i].DescriptionText()
		if !ok || text == "" {
			continue
		}
		g.add(courses[i].ID(), Parse(text))
	}

	return g
}

// NewGraph builds a graph from precomputed requirements, for example a
// prerequisites file produced by an earlier extraction run. Entries follow
// order (normally the catalog order); identifiers missing from order are
// appended sorted.
func NewGraph(order []string, reqs map[string]Requirements) *Graph {
	g := &Graph{edges: make(map[string]Requirements, len(reqs))}

	for _, id := range order {
		if r, ok := reqs[id]; ok {
			g.add(id, r)
		}
	}

	var rest []string
	for id := range reqs {
		if _, ok := g.edges[id]; !ok {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	for _, id := range rest {
		g.add(id, reqs[id])
	}

	return g
}

func (g *Graph) add(id string, r Requirements) {
	if r.Empty() {
		return
	}
	if _, exists := g.edges[id]; exists {
		return
	}
	g.order = append(g.order, id)
	g.edges[id] = r.Clone()
}

// Get returns the requirements of a course. The boolean is false when the
// course has no parsed requirements.
func (g *Graph) Get(id string) (Requirements, bool) {
	r, ok := g.edges[id]
	if !ok {
		return Requirements{}, false
	}
	return r.Clone(), true
}

// Required returns the required edges of a course without copying. Callers
// must not modify the returned slice.
func (g *Graph) Required(id string) []string {
	return g.edges[id].Required
}

// Len returns the number of courses with requirements.
func (g *Graph) Len() int {
	return len(g.order)
}

// IDs returns the identifiers with requirements in insertion order.
func (g *Graph) IDs() []string {
	return cloneStrings(g.order)
}

// EdgeCount returns the total number of edges across all courses.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, r := range g.edges {
		total += r.Total()
	}
	return total
}
