// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

/*
Package cache provides a generic, thread-safe LRU cache with TTL expiry.

The recommendation server uses it to remember query embeddings, so repeated
free-text queries skip the embedding service:

	c := cache.NewLRU[[]float64](1024, time.Hour)
	c.Add("machine learning", vec)
	if v, ok := c.Get("machine learning"); ok {
	    // use v
	}

Expiry is lazy: an expired entry is dropped when Get touches it or when
CleanupExpired runs. Values are stored as given; callers that hand out
mutable values (slices, maps) should copy them.
*/
package cache
