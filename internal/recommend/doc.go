// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

// Package recommend orchestrates course recommendations and learning paths.
//
// # Architecture
//
// The engine composes three immutable structures built at load time:
//
//   - catalog.Catalog: course records in insertion order
//   - index.Index: one embedding vector per course, cosine ranking
//   - prereq.Graph: requirement edges parsed from descriptions
//
// plus one external collaborator, an Embedder that vectorizes free-text
// queries. Nothing inside the engine mutates shared state after NewEngine,
// so any number of goroutines may call it concurrently.
//
// # Recommendation
//
// Recommend fetches limit*OverfetchFactor candidates from the index and walks
// them best first, dropping courses that are completed, not yet eligible or
// rejected by the Filter, until limit results remain. There is no second
// fetch: a short list is a valid answer.
//
// Search is ranking only. It applies no completion or eligibility rules and
// is usable before a student has any history.
//
// # Learning paths
//
// Plan expands the target's direct required prerequisites only.
// PlanTransitive walks the full requirement closure and fails with
// prereq.ErrCycle when requirements loop.
//
// # Errors
//
// Unknown course identifiers are not errors: lookups report absence through
// a boolean, a nil Target or Found=false. The only failures are a missing
// query (ErrEmptyQuery), a vector of the wrong dimension (ErrQueryDimension)
// and a failed embedding call (*EmbeddingError, matching ErrEmbedding).
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), recommend.Dependencies{
//	    Catalog:  cat,
//	    Index:    idx,
//	    Graph:    graph,
//	    Embedder: client,
//	}, logger)
//
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Query:     "machine learning",
//	    Completed: []string{"CSE 12", "MATH 20A"},
//	    Limit:     10,
//	})
package recommend
