// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

// Package prereq extracts prerequisite requirements from free-text course
// descriptions, assembles them into a requirement graph, validates that graph
// against the catalog and answers eligibility questions.
//
// # Extraction
//
// Parse scans a description for requirement-introducing phrases and pulls
// course codes out of the clause that follows each one, up to the next
// sentence terminator:
//
//	Prerequisites: CSE 8B, CSE 12.        -> required    [CSE 8B, CSE 12]
//	Recommended preparation: MATH 20C.    -> recommended [MATH 20C]
//	Prerequisite: CSE 100 (corequisite).  -> corequisite [CSE 100]
//
// Connectives ("and", "or", "either", commas) are not resolved into boolean
// structure. "CSE 8A or CSE 11" and "CSE 8A and CSE 11" both produce the flat
// list [CSE 8A, CSE 11], and eligibility treats every listed code as required.
package prereq

import (
	"regexp"
	"strings"
)

// Role classifies a requirement edge.
type Role string

const (
	// RoleRequired edges must be completed before enrolling.
	RoleRequired Role = "required"
	// RoleCorequisite edges may be taken concurrently.
	RoleCorequisite Role = "corequisite"
	// RoleRecommended edges are advisory only.
	RoleRecommended Role = "recommended"
)

// Requirements is the set of requirement edges parsed for one course. The
// three lists are disjoint by role; each is free of duplicates and keeps the
// order in which codes first appeared in the text.
type Requirements struct {
	Required    []string `json:"prerequisites"`
	Corequisite []string `json:"corequisites"`
	Recommended []string `json:"recommended"`
}

// Edge is a role-tagged view over one list of Requirements.
type Edge struct {
	Role  Role     `json:"role"`
	Codes []string `json:"codes"`
}

// Empty reports whether no edges were found.
func (r Requirements) Empty() bool {
	return r.Total() == 0
}

// Total returns the edge count across all roles.
func (r Requirements) Total() int {
	return len(r.Required) + len(r.Corequisite) + len(r.Recommended)
}

// Edges returns the non-empty lists tagged with their role, in the order
// required, corequisite, recommended.
func (r Requirements) Edges() []Edge {
	edges := make([]Edge, 0, 3)
	for _, e := range []Edge{
		{Role: RoleRequired, Codes: r.Required},
		{Role: RoleCorequisite, Codes: r.Corequisite},
		{Role: RoleRecommended, Codes: r.Recommended},
	} {
		if len(e.Codes) > 0 {
			edges = append(edges, e)
		}
	}
	return edges
}

// Clone returns a deep copy.
func (r Requirements) Clone() Requirements {
	return Requirements{
		Required:    cloneStrings(r.Required),
		Corequisite: cloneStrings(r.Corequisite),
		Recommended: cloneStrings(r.Recommended),
	}
}

// introducers match a requirement-introducing phrase and capture the clause
// that follows it up to the next period or the end of the text. They are
// applied in this order and every match of each one is used.
var introducers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Prerequisites?\s*:\s*([^.]+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)Prereq\s*:\s*([^.]+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)Students must have completed\s+([^.]+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)Recommended preparation\s*:\s*([^.]+?)(?:\.|$)`),
}

// courseCode matches "CSE 12", "MATH 20A", "ECE 45AB". Case-sensitive:
// subject codes are always upper case in catalog text.
var courseCode = regexp.MustCompile(`\b([A-Z]{2,4})\s+(\d{1,3}[A-Z]*)\b`)

// Parse extracts requirement edges from a course description. Text without
// any recognizable requirement phrase yields empty Requirements, never an error.
func Parse(text string) Requirements {
	var required, coreq, recommended orderedSet

	for _, re := range introducers {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			codes := ExtractCodes(m[1])
			switch classify(m[0]) {
			case RoleRecommended:
				recommended.add(codes...)
			case RoleCorequisite:
				coreq.add(codes...)
			default:
				required.add(codes...)
			}
		}
	}

	return Requirements{
		Required:    required.list(),
		Corequisite: coreq.list(),
		Recommended: recommended.list(),
	}
}

// classify decides the role of a whole match, introducing phrase included, so
// that "Recommended preparation: MATH 20C" is advisory even though the clause
// itself never says "recommended".
func classify(match string) Role {
	lower := strings.ToLower(match)
	switch {
	case strings.Contains(lower, "recommended"):
		return RoleRecommended
	case strings.Contains(lower, "corequisite"), strings.Contains(lower, "concurrent"):
		return RoleCorequisite
	default:
		return RoleRequired
	}
}

// ExtractCodes returns every course code in text as "SUBJECT NUMBER", in
// order of appearance, duplicates included.
func ExtractCodes(text string) []string {
	matches := courseCode.FindAllStringSubmatch(text, -1)
	codes := make([]string, 0, len(matches))
	for _, m := range matches {
		codes = append(codes, m[1]+" "+m[2])
	}
	return codes
}

// orderedSet deduplicates while keeping first-seen order.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func (s *orderedSet) add(items ...string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	for _, item := range items {
		if _, ok := s.seen[item]; ok {
			continue
		}
		s.seen[item] = struct{}{}
		s.items = append(s.items, item)
	}
}

// list returns the items, or an empty non-nil slice.
func (s *orderedSet) list() []string {
	if s.items == nil {
		return []string{}
	}
	return s.items
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
