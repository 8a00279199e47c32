// SPDX-License-Identifier: MIT
// Package: graphgen/rng
//
// rng.go — seeded deterministic random source.
//
// Contract:
//   - New(seed) wraps math/rand with an explicit source; identical seeds give
//     identical draw sequences on every platform and Go release (math/rand
//     Go 1 compatibility guarantee).
//   - IntBetween is inclusive on both ends and clamps a reversed range by
//     swapping, never panicking on min > max.
//   - Choice on an empty slice returns the zero value; ChoiceIndex returns -1.
//
// Complexity: every method is O(1) except Shuffle, which is O(n).
package rng

import (
	"math/rand"
)

// RNG is a deterministic pseudo-random source. It is not safe for concurrent
// use; the engine dedicates one instance per generation call.
type RNG struct {
	src *rand.Rand
}

// New returns an RNG seeded with seed. Distinct seeds yield distinct
// (overwhelmingly likely) draw sequences; equal seeds yield equal sequences.
func New(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewSource(seed))}
}

// Next returns a uniform float64 in [0,1).
func (r *RNG) Next() float64 {
	return r.src.Float64()
}

// IntBetween returns a uniform integer in the inclusive range [min,max].
// A reversed range is swapped rather than rejected.
func (r *RNG) IntBetween(min, max int) int {
	if min > max {
		min, max = max, min
	}

	return min + r.src.Intn(max-min+1)
}

// ChoiceIndex returns a uniform index into a slice of length n, or -1 when
// n <= 0.
func (r *RNG) ChoiceIndex(n int) int {
	if n <= 0 {
		return -1
	}

	return r.src.Intn(n)
}

// Choice returns a uniform element of items, or the zero value of T when
// items is empty.
func Choice[T any](r *RNG, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}

	return items[r.src.Intn(len(items))]
}

// Shuffle permutes items in place using Fisher–Yates over r's stream.
func Shuffle[T any](r *RNG, items []T) {
	r.src.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
