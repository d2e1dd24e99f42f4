// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package prereq

// ValidationStats aggregates edge counts across the whole graph.
type ValidationStats struct {
	// Total is the number of edges inspected.
	Total int `json:"total_prerequisites"`

	// Valid is the number of edges whose target exists in the catalog.
	Valid int `json:"valid_prerequisites"`

	// Dangling is the number of edges whose target does not exist.
	Dangling int `json:"invalid_prerequisites"`

	// Rate is Valid/Total, or 0 when Total is 0.
	Rate float64 `json:"validation_rate"`
}

// Report partitions every edge of a graph into valid and dangling references.
// A course appears in Valid or Dangling only when it has at least one edge of
// that kind.
type Report struct {
	Valid    map[string]Requirements `json:"valid"`
	Dangling map[string]Requirements `json:"invalid"`
	Stats    ValidationStats         `json:"stats"`
}

// Validate checks every edge target against the known identifier set.
// Dangling edges are reported here rather than dropped from the graph, so
// eligibility keeps treating an unresolvable required edge as unmet.
func Validate(g *Graph, known map[string]struct{}) Report {
	report := Report{
		Valid:    make(map[string]Requirements),
		Dangling: make(map[string]Requirements),
	}

	for _, id := range g.order {
		reqs := g.edges[id]

		var valid, dangling Requirements
		valid.Required, dangling.Required = partition(reqs.Required, known, &report.Stats)
		valid.Corequisite, dangling.Corequisite = partition(reqs.Corequisite, known, &report.Stats)
		valid.Recommended, dangling.Recommended = partition(reqs.Recommended, known, &report.Stats)

		if !valid.Empty() {
			report.Valid[id] = valid
		}
		if !dangling.Empty() {
			report.Dangling[id] = dangling
		}
	}

	if report.Stats.Total > 0 {
		report.Stats.Rate = float64(report.Stats.Valid) / float64(report.Stats.Total)
	}

	return report
}

func partition(codes []string, known map[string]struct{}, stats *ValidationStats) (valid, dangling []string) {
	valid = []string{}
	dangling = []string{}
	for _, code := range codes {
		stats.Total++
		if _, ok := known[code]; ok {
			valid = append(valid, code)
			stats.Valid++
		} else {
			dangling = append(dangling, code)
			stats.Dangling++
		}
	}
	return valid, dangling
}
