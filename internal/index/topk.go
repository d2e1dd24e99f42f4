// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package index

import "sort"

// candidate is a scored entry tracked during a ranking scan.
type candidate struct {
	pos   int // catalog insertion order, the tie-break key
	score float64
}

// worse reports whether a ranks below b: lower score, or equal score and
// later insertion position.
func worse(a, b candidate) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	return a.pos > b.pos
}

// topK keeps the best k candidates seen so far in a bounded min-heap whose
// root is the worst retained candidate. A scan costs O(n log k).
//
// A topK is owned by a single ranking call and is not safe for concurrent use.
type topK struct {
	heap []candidate
	k    int
}

func newTopK(k int) *topK {
	return &topK{heap: make([]candidate, 0, k), k: k}
}

// offer adds c if it beats the worst retained candidate.
func (t *topK) offer(c candidate) {
	if t.k <= 0 {
		return
	}
	if len(t.heap) < t.k {
		t.heap = append(t.heap, c)
		t.bubbleUp(len(t.heap) - 1)
		return
	}
	if !worse(t.heap[0], c) {
		return
	}
	t.heap[0] = c
	t.bubbleDown(0)
}

// sorted returns the retained candidates best first. Equal scores keep
// insertion order, which makes the result identical to a stable sort of the
// full candidate list.
func (t *topK) sorted() []candidate {
	out := make([]candidate, len(t.heap))
	copy(out, t.heap)
	sort.Slice(out, func(i, j int) bool {
		return worse(out[j], out[i])
	})
	return out
}

func (t *topK) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !worse(t.heap[i], t.heap[parent]) {
			break
		}
		t.heap[i], t.heap[parent] = t.heap[parent], t.heap[i]
		i = parent
	}
}

func (t *topK) bubbleDown(i int) {
	n := len(t.heap)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && worse(t.heap[left], t.heap[smallest]) {
			smallest = left
		}
		if right < n && worse(t.heap[right], t.heap[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}

		t.heap[i], t.heap[smallest] = t.heap[smallest], t.heap[i]
		i = smallest
	}
}
