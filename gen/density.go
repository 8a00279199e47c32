// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// density.go — the edge top-up pass that brings a base structure to its
// density tier, plus the closing guarantees.
//
// Contract:
//   - Families marked fixed skip the top-up: their edge count is the
//     structure. Only the closing guarantees run on them.
//   - Tier targets are fractions of the admissible pair count, not of
//     n*(n-1)/2: partition constraints, component layout, and acyclic
//     orientation all shrink the denominator first.
//   - complete always means every admissible pair, realized by a
//     deterministic sweep rather than sampling.
//   - Closing guarantees never break an invariant already in place: a
//     parallel edge is injected for multigraph specs only when it cannot
//     create a forbidden cycle, a self-loop only when cycles are allowed.
//
// Determinism: all draws come from st.rng; the fallback sweep walks index
// order, so equal seeds produce identical edge lists.
package gen

import (
	"math"

	"github.com/katalvlaran/graphgen/spec"
)

// Density tier fractions of the admissible pair count.
const (
	sparseFraction   = 0.15
	moderateFraction = 0.40
	denseFraction    = 0.70
	completeFraction = 1.00

	// sampleAttemptsPerEdge bounds random top-up sampling before the
	// deterministic sweep takes over.
	sampleAttemptsPerEdge = 10
	selfLoopProbability   = 0.05
)

// addDensityEdges tops the graph up to its density tier and then applies
// the closing guarantees.
func addDensityEdges(st *state) {
	if !st.fixed {
		if frac, ok := densityFraction(st); ok {
			topUpToFraction(st, frac)
		}
	}

	ensureSelfLoop(st)
	ensureParallelEdge(st)
}

// densityFraction resolves the spec's density tier. ok is false when the
// spec places no density demand at all.
func densityFraction(st *state) (float64, bool) {
	if st.spec.IsComplete() {
		return completeFraction, true
	}
	switch st.spec.Density {
	case spec.Sparse:
		return sparseFraction, true
	case spec.Moderate:
		return moderateFraction, true
	case spec.Dense:
		return denseFraction, true
	}

	return 0, false
}

// topUpToFraction samples admissible pairs until the edge count reaches
// ceil(frac * admissible), falling back to an index-order sweep when
// sampling stalls.
func topUpToFraction(st *state, frac float64) {
	admissible := countAdmissiblePairs(st)
	target := int(math.Ceil(frac * float64(admissible)))
	need := target - len(st.edges)
	if need <= 0 {
		return
	}

	attempts := need * sampleAttemptsPerEdge
	n := st.n()
	for need > 0 && attempts > 0 {
		attempts--
		i := st.rng.ChoiceIndex(n)
		j := st.rng.ChoiceIndex(n)
		i, j = orientPair(st, i, j)
		if !admissiblePair(st, i, j) || st.hasPair(i, j) {
			continue
		}
		st.addEdge(i, j)
		need--
	}
	if need == 0 {
		return
	}

	// Sampling stalled near saturation; sweep the remaining pairs in order.
	forEachAdmissiblePair(st, func(i, j int) bool {
		if !st.hasPair(i, j) {
			st.addEdge(i, j)
			need--
		}

		return need > 0
	})
}

// countAdmissiblePairs counts the distinct endpoint pairs the spec admits.
func countAdmissiblePairs(st *state) int {
	count := 0
	forEachAdmissiblePair(st, func(int, int) bool {
		count++

		return true
	})

	return count
}

// forEachAdmissiblePair visits every admissible pair in canonical index
// order until visit returns false. Directed non-acyclic specs visit both
// orientations.
func forEachAdmissiblePair(st *state, visit func(i, j int) bool) {
	n := st.n()
	bothDirections := st.spec.IsDirected() && !st.spec.IsAcyclic()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if admissiblePair(st, i, j) && !visit(i, j) {
				return
			}
			if bothDirections && admissiblePair(st, j, i) && !visit(j, i) {
				return
			}
		}
	}
}

// admissiblePair reports whether an (i,j) edge would respect the component
// layout, partition structure, and acyclic orientation. Self-loop pairs are
// never admissible here; ensureSelfLoop owns loops.
func admissiblePair(st *state, i, j int) bool {
	if i == j {
		return false
	}
	if !st.sameComponent(i, j) {
		return false
	}
	// Directed acyclic specs only admit the forward index orientation: the
	// base tree points parent to child with parent < child, so forward
	// extras can never close a cycle.
	if st.spec.IsDirected() && st.spec.IsAcyclic() && i > j {
		return false
	}
	if st.spec.RequiresBipartition() {
		if st.nodes[i].Partition == st.nodes[j].Partition {
			return false
		}
	}
	if ci, ok := st.nodes[i].Data[DataPartiteClass]; ok {
		if cj, ok2 := st.nodes[j].Data[DataPartiteClass]; ok2 && ci == cj {
			return false
		}
	}

	return true
}

// orientPair canonicalizes a sampled pair for directed acyclic specs.
func orientPair(st *state, i, j int) (int, int) {
	if st.spec.IsDirected() && st.spec.IsAcyclic() && i > j {
		return j, i
	}

	return i, j
}

// ensureSelfLoop injects one self-loop when the spec allows loops, cycles
// are permitted, and none exists yet. Loop-allowing specs are expected to
// exhibit at least one loop.
func ensureSelfLoop(st *state) {
	if !st.spec.AllowsSelfLoops() || st.spec.IsAcyclic() {
		return
	}
	for _, e := range st.edges {
		if e.IsLoop() {
			return
		}
	}

	i := st.rng.ChoiceIndex(st.n())
	st.addEdge(i, i)
	// Sprinkle a few more so loops do not read as a single artifact.
	for k := 0; k < st.n(); k++ {
		if st.rng.Next() < selfLoopProbability {
			st.addEdge(k, k)
		}
	}
}

// ensureParallelEdge duplicates one existing edge for multigraph specs when
// no parallel pair exists yet. Undirected acyclic multigraphs are left
// alone: doubling an undirected edge closes a two-edge cycle.
func ensureParallelEdge(st *state) {
	if !st.spec.IsMultigraph() || len(st.edges) == 0 {
		return
	}
	if st.spec.IsAcyclic() && !st.spec.IsDirected() {
		return
	}
	// Duplicated loops do not count: a parallel pair needs two distinct
	// endpoints.
	for key, count := range st.seen {
		if key[0] != key[1] && count > 1 {
			return
		}
	}

	pick := st.rng.ChoiceIndex(len(st.edges))
	for off := 0; off < len(st.edges); off++ {
		e := st.edges[(pick+off)%len(st.edges)]
		if e.IsLoop() {
			continue
		}
		i, j := st.indexOf(e.Source), st.indexOf(e.Target)
		st.addEdge(i, j)

		return
	}
}
