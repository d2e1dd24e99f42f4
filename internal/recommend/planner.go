// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package recommend

import (
	"fmt"
	"sort"

	"github.com/tomtom215/coursecompass/internal/catalog"
	"github.com/tomtom215/coursecompass/internal/prereq"
)

// Plan returns the direct required prerequisites of target that are not yet
// completed. Only one level is expanded. Required identifiers unknown to the
// catalog are dropped because they cannot be returned as course records; an
// unknown target yields a Path with a nil Target.
func (e *Engine) Plan(target string, completed []string) Path {
	done := prereq.NewSet(completed...)
	path := Path{MissingPrereqs: []catalog.Course{}}

	if course, ok := e.catalog.Get(target); ok {
		path.Target = &course
	}

	for _, id := range e.graph.Required(target) {
		if done.Has(id) {
			continue
		}
		course, ok := e.catalog.Get(id)
		if !ok {
			continue
		}
		path.MissingPrereqs = append(path.MissingPrereqs, course)
		path.TotalUnits += course.Units
	}

	path.EstimatedBlocks = estimateBlocks(len(path.MissingPrereqs))
	return path
}

// PlanTransitive expands required prerequisites recursively and schedules
// them into blocks of at most CoursesPerBlock courses, never placing a course
// before the block after its latest prerequisite. A requirement cycle reached
// from target is returned as an error wrapping prereq.ErrCycle.
func (e *Engine) PlanTransitive(target string, completed []string) (*TransitivePath, error) {
	done := prereq.NewSet(completed...)
	path := &TransitivePath{Steps: []PathStep{}, Unresolved: []string{}}

	if course, ok := e.catalog.Get(target); ok {
		path.Target = &course
	}

	closure, err := e.graph.RequiredClosure(target, done)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", target, err)
	}

	// Closure order puts every prerequisite before its dependants, so a
	// single pass can assign each course the first block with room that
	// follows all of its prerequisites.
	blockOf := make(map[string]int, len(closure.Order))
	blockSize := make(map[int]int)
	for _, id := range closure.Order {
		course, ok := e.catalog.Get(id)
		if !ok {
			path.Unresolved = append(path.Unresolved, id)
			continue
		}

		block := 0
		for _, dep := range e.graph.Required(id) {
			if b, ok := blockOf[dep]; ok && b+1 > block {
				block = b + 1
			}
		}
		for blockSize[block] >= CoursesPerBlock {
			block++
		}

		blockOf[id] = block
		blockSize[block]++
		if block+1 > path.EstimatedBlocks {
			path.EstimatedBlocks = block + 1
		}

		path.Steps = append(path.Steps, PathStep{Course: course, Block: block})
		path.TotalUnits += course.Units
	}

	sort.SliceStable(path.Steps, func(i, j int) bool {
		return path.Steps[i].Block < path.Steps[j].Block
	})

	return path, nil
}

// estimateBlocks is ceil(n / CoursesPerBlock).
func estimateBlocks(n int) int {
	return (n + CoursesPerBlock - 1) / CoursesPerBlock
}
