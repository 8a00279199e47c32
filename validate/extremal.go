// SPDX-License-Identifier: MIT
// Package: graphgen/validate
//
// extremal.go — checks for the spectral, robustness, and extremal-invariant
// axes.
//
// Contract: these axes are annotations, not constructions — the generator
// records the target and lays a standard topology. Validation therefore
// verifies the recording, computes the exact invariant where the bounded
// search allows, and reports agreement or the measured value. A measured
// mismatch is advisory (StatusSkipped with the actual value), not a
// failure: the target was never structurally enforced.
package validate

import (
	"math"

	"github.com/katalvlaran/graphgen/gen"
)

// dominationSearchLimit caps the subset enumeration for domination number.
const dominationSearchLimit = 16

// powerIterations bounds the eigenvalue approximation loops.
const powerIterations = 64

// checkExtremalAxes dispatches the spectral, robustness, and invariant
// checks.
func checkExtremalAxes(r *Result, v *view) {
	s := v.g.Spec
	if s.SpectralGap != nil {
		checkSpectralGap(r, v)
	}
	if s.Expander != nil {
		checkExpander(r, v)
	}
	if s.AlgebraicConnectivity != nil {
		checkAnnotated(r, v, "algebraic_connectivity", gen.DataAlgebraicConnMin)
	}
	if s.Toughness != nil {
		checkAnnotated(r, v, "toughness", gen.DataToughnessMin)
	}
	if s.Integrity != nil {
		checkAnnotated(r, v, "integrity", gen.DataIntegrityMax)
	}
	if s.IndependenceNumber != nil {
		checkInvariant(r, v, "independence_number", gen.DataIndependenceGoal, independenceNumber)
	}
	if s.VertexCoverNumber != nil {
		checkInvariant(r, v, "vertex_cover_number", gen.DataVertexCoverGoal, vertexCoverNumber)
	}
	if s.DominationNumber != nil {
		checkDomination(r, v)
	}
	if s.CliqueNumber != nil {
		checkInvariant(r, v, "clique_number", gen.DataCliqueGoal, cliqueNumber)
	}
}

// checkSpectralGap approximates the top two adjacency eigenvalues by power
// iteration with deflation and compares their gap to the recorded minimum.
func checkSpectralGap(r *Result, v *view) {
	const prop = "spectral_gap"
	raw, ok := v.data(0, gen.DataSpectralGapMin)
	if !ok {
		r.fail(prop, "target gap not recorded")

		return
	}
	minGap, _ := raw.(float64)

	if v.n < 2 {
		r.pass(prop)

		return
	}
	l1, v1 := topEigenpair(v, nil)
	l2, _ := topEigenpair(v, v1)
	gap := l1 - l2
	if gap+1e-6 < minGap {
		r.skip(prop, "approximate gap %.3f below target %.3f (power-iteration estimate; target not structurally enforced)", gap, minGap)

		return
	}
	r.pass(prop)
}

// checkExpander uses connectivity plus the recorded flag; expansion
// constants are not computed.
func checkExpander(r *Result, v *view) {
	const prop = "expander"
	if _, ok := v.data(0, gen.DataExpander); !ok {
		r.fail(prop, "expander annotation not recorded")

		return
	}
	_, count := v.components()
	if count != 1 {
		r.fail(prop, "%d components: an expander is connected", count)

		return
	}
	r.skip(prop, "connected; expansion constant not computed")
}

// checkAnnotated verifies an advisory target was recorded; the invariant
// itself is not computed.
func checkAnnotated(r *Result, v *view, prop, key string) {
	if _, ok := v.data(0, key); !ok {
		r.fail(prop, "target not recorded")

		return
	}
	r.skip(prop, "target recorded; exact computation not implemented")
}

// checkInvariant verifies the recorded target and, within the search
// bound, computes the exact invariant. Mismatches are advisory.
func checkInvariant(r *Result, v *view, prop, key string, compute func(*view) int) {
	target, ok := v.dataInt(0, key)
	if !ok {
		r.fail(prop, "target not recorded")

		return
	}
	if v.n > exactSearchLimit {
		r.skip(prop, "exact search capped at %d nodes, graph has %d", exactSearchLimit, v.n)

		return
	}

	actual := compute(v)
	if actual != target {
		r.skip(prop, "measured %d, annotated target %d (target not structurally enforced)", actual, target)

		return
	}
	r.pass(prop)
}

func checkDomination(r *Result, v *view) {
	const prop = "domination_number"
	target, ok := v.dataInt(0, gen.DataDominationGoal)
	if !ok {
		r.fail(prop, "target not recorded")

		return
	}
	if v.n > dominationSearchLimit {
		r.skip(prop, "exact search capped at %d nodes, graph has %d", dominationSearchLimit, v.n)

		return
	}

	actual := dominationNumber(v)
	if actual != target {
		r.skip(prop, "measured %d, annotated target %d (target not structurally enforced)", actual, target)

		return
	}
	r.pass(prop)
}

// independenceNumber runs a branch-and-bound maximum independent set
// search over the simple adjacency.
func independenceNumber(v *view) int {
	best := 0
	var recurse func(candidates []int, size int)
	recurse = func(candidates []int, size int) {
		if size+len(candidates) <= best {
			return
		}
		if len(candidates) == 0 {
			if size > best {
				best = size
			}

			return
		}

		// Branch on the first candidate: taken, then excluded.
		pick := candidates[0]
		var kept []int
		for _, c := range candidates[1:] {
			if !v.hasPair(pick, c) {
				kept = append(kept, c)
			}
		}
		recurse(kept, size+1)
		recurse(candidates[1:], size)
	}

	all := make([]int, v.n)
	for i := range all {
		all[i] = i
	}
	recurse(all, 0)

	return best
}

// vertexCoverNumber uses the complement identity: cover = n - independence.
func vertexCoverNumber(v *view) int { return v.n - independenceNumber(v) }

// cliqueNumber is the independence number of the complement, computed
// directly via a dual branch-and-bound.
func cliqueNumber(v *view) int {
	best := 0
	var recurse func(candidates []int, size int)
	recurse = func(candidates []int, size int) {
		if size+len(candidates) <= best {
			return
		}
		if len(candidates) == 0 {
			if size > best {
				best = size
			}

			return
		}

		pick := candidates[0]
		var kept []int
		for _, c := range candidates[1:] {
			if v.hasPair(pick, c) {
				kept = append(kept, c)
			}
		}
		recurse(kept, size+1)
		recurse(candidates[1:], size)
	}

	all := make([]int, v.n)
	for i := range all {
		all[i] = i
	}
	recurse(all, 0)

	return best
}

// dominationNumber enumerates vertex subsets in increasing popcount order.
func dominationNumber(v *view) int {
	if v.n == 0 {
		return 0
	}

	full := (1 << v.n) - 1
	closed := make([]int, v.n)
	for i := 0; i < v.n; i++ {
		mask := 1 << i
		for _, j := range v.simpleAdj[i] {
			mask |= 1 << j
		}
		closed[i] = mask
	}

	for size := 1; size <= v.n; size++ {
		if subsetDominates(closed, full, v.n, size) {
			return size
		}
	}

	return v.n
}

// subsetDominates tries every size-k subset for total closed-neighborhood
// coverage.
func subsetDominates(closed []int, full, n, k int) bool {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		covered := 0
		for _, i := range idx {
			covered |= closed[i]
		}
		if covered == full {
			return true
		}

		// Next combination in lexicographic order.
		pos := k - 1
		for pos >= 0 && idx[pos] == n-k+pos {
			pos--
		}
		if pos < 0 {
			return false
		}
		idx[pos]++
		for j := pos + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// topEigenpair approximates the dominant adjacency eigenpair, deflating
// against an optional prior eigenvector.
func topEigenpair(v *view, deflate []float64) (float64, []float64) {
	vec := make([]float64, v.n)
	for i := range vec {
		vec[i] = 1.0 / float64(v.n)
	}
	next := make([]float64, v.n)

	lambda := 0.0
	for iter := 0; iter < powerIterations; iter++ {
		if deflate != nil {
			project(vec, deflate)
		}
		for i := range next {
			sum := 0.0
			for _, j := range v.simpleAdj[i] {
				sum += vec[j]
			}
			next[i] = sum
		}
		norm := 0.0
		for _, x := range next {
			norm += x * x
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			return 0, vec
		}
		for i := range next {
			next[i] /= norm
		}
		lambda = norm
		copy(vec, next)
	}

	return lambda, vec
}

// project removes the component of vec along unit vector dir.
func project(vec, dir []float64) {
	dot := 0.0
	for i := range vec {
		dot += vec[i] * dir[i]
	}
	for i := range vec {
		vec[i] -= dot * dir[i]
	}
}
