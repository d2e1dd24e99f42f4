// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package prereq

import (
	"errors"
	"strings"
)

// ErrCycle is returned when required edges loop back on themselves.
var ErrCycle = errors.New("prerequisite cycle detected")

// CycleError carries the loop that was found, first and last element equal.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return ErrCycle.Error() + ": " + strings.Join(e.Path, " -> ")
}

// Unwrap lets errors.Is match ErrCycle.
func (e *CycleError) Unwrap() error {
	return ErrCycle
}

// Closure is the transitive set of uncompleted required courses behind a
// target, in dependency order.
type Closure struct {
	// Order lists prerequisites before the courses that need them. Siblings
	// keep their requirement-list order. The target itself is not included.
	Order []string

	// Depth is the longest chain of uncompleted prerequisites below a course;
	// a course with nothing left to take below it has depth 0.
	Depth map[string]int
}

// RequiredClosure walks required edges backward from target. Completed
// courses are neither listed nor expanded. Any cycle met along the way is
// returned as a *CycleError instead of recursing forever.
func (g *Graph) RequiredClosure(target string, completed Set) (*Closure, error) {
	c := &Closure{Depth: make(map[string]int)}

	// permanent: fully expanded. onStack: on the current DFS path.
	permanent := make(map[string]bool)
	onStack := make(map[string]bool)
	var stack []string

	var visit func(id string) error
	visit = func(id string) error {
		if permanent[id] {
			return nil
		}
		if onStack[id] {
			return &CycleError{Path: cyclePath(stack, id)}
		}

		onStack[id] = true
		stack = append(stack, id)

		depth := 0
		for _, dep := range g.edges[id].Required {
			if completed.Has(dep) {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
			if d := c.Depth[dep] + 1; d > depth {
				depth = d
			}
		}

		stack = stack[:len(stack)-1]
		delete(onStack, id)
		permanent[id] = true
		c.Depth[id] = depth

		if id != target {
			c.Order = append(c.Order, id)
		}
		return nil
	}

	if err := visit(target); err != nil {
		return nil, err
	}
	return c, nil
}

func cyclePath(stack []string, repeat string) []string {
	for i, id := range stack {
		if id == repeat {
			path := make([]string, 0, len(stack)-i+1)
			path = append(path, stack[i:]...)
			return append(path, repeat)
		}
	}
	return []string{repeat, repeat}
}
