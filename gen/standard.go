// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// standard.go — the default connectivity×cycles structures and the shared
// standardEdges helper reused by every classification family.
//
// Contract:
//   - Tree: random-attachment spanning tree, exactly n-1 edges, acyclic and
//     connected. Directed trees orient parent→child (forward in index
//     order), so they are simultaneously DAGs.
//   - Connected-with-cycles: tree backbone plus one cycle-closing edge
//     (n >= 3); the density pass is free to add more.
//   - Forest: 2..3 components (as n allows), each a random-attachment tree.
//   - Disconnected-with-cycles: >= 2 components; every component of size >= 3
//     carries a cycle backbone. Component ids are recorded on the state so
//     the density pass samples within components.
//
// Determinism: attachment targets are drawn in index order from the single
// RNG stream.
package gen

import "github.com/katalvlaran/graphgen/spec"

const (
	methodStandard = "Standard"
	// minCycleSize is the smallest vertex count that can carry a simple cycle.
	minCycleSize = 3
)

// buildStandard is the 2×2 dispatch default: tree / connected-with-cycles /
// forest / disconnected-with-cycles, decided by the cycles and connectivity
// axes. Unconstrained connectivity takes the connected branch for cyclic
// specs (the most broadly useful fixture) and the forest branch for acyclic
// ones (an unconstrained acyclic spec is a forest by definition).
func buildStandard(st *state) error {
	return standardEdges(st)
}

// standardEdges synthesizes an ordinary connectivity×cycles structure. The
// classification families (spectral, robustness, extremal, product,
// minor-free) call this first and then attach their metadata.
func standardEdges(st *state) error {
	acyclic := st.spec.IsAcyclic()

	switch {
	case acyclic && st.spec.IsConnected():
		buildTreeEdges(st, 0, st.n())
		// Undirected trees admit no extra edge; directed DAGs still take
		// forward-oriented extras in the density pass.
		if !st.spec.IsDirected() {
			st.markFixed()
		}
	case acyclic:
		buildForestEdges(st)
		if !st.spec.IsDirected() {
			st.markFixed()
		}
	case st.spec.Connectivity == spec.Disconnected:
		buildDisconnectedWithCycles(st)
	default:
		buildConnectedWithCycles(st)
	}

	return nil
}

// buildTreeEdges grows a random-attachment tree over node indices
// [start, start+size): each new node attaches to a uniformly drawn earlier
// node in the range. Directed specs orient parent→child.
func buildTreeEdges(st *state, start, size int) {
	for i := 1; i < size; i++ {
		parent := start + st.rng.IntBetween(0, i-1)
		st.addEdge(parent, start+i)
	}
}

// buildConnectedWithCycles lays a spanning tree and closes one cycle.
func buildConnectedWithCycles(st *state) {
	n := st.n()
	buildTreeEdges(st, 0, n)
	if n < minCycleSize {
		return
	}

	// Close one cycle with a non-tree edge; directed specs use a back edge
	// so the cycle is a real directed cycle.
	for attempt := 0; attempt < n; attempt++ {
		i := st.rng.IntBetween(0, n-1)
		j := st.rng.IntBetween(0, n-1)
		if i == j {
			continue
		}
		if st.spec.IsDirected() && j > i {
			i, j = j, i // back edge: higher index → lower index
		}
		if st.addEdgeOnce(i, j) {
			return
		}
	}
}

// buildForestEdges splits the nodes into 2..3 ranges and grows a tree in
// each, leaving the ranges mutually unreachable.
func buildForestEdges(st *state) {
	n := st.n()
	if n < 2 {
		return
	}

	comps := 2
	if n >= 6 {
		comps = st.rng.IntBetween(2, 3)
	}

	splitComponents(st, comps, func(start, size int) {
		buildTreeEdges(st, start, size)
	})
}

// buildDisconnectedWithCycles splits the nodes into >= 2 components and lays
// a cycle backbone in every component large enough to carry one; smaller
// components become trees or isolated nodes.
func buildDisconnectedWithCycles(st *state) {
	n := st.n()
	if n < 2 {
		// A single node cannot be disconnected; leave it isolated and let
		// validation flag the impossibility.
		return
	}

	comps := 2
	if n >= 8 {
		comps = st.rng.IntBetween(2, 3)
	}

	splitComponents(st, comps, func(start, size int) {
		if size >= minCycleSize {
			buildCycleEdges(st, start, size)
		} else {
			buildTreeEdges(st, start, size)
		}
	})
}

// splitComponents carves index ranges for comps components, records the
// component layout on the state, and invokes build per range. Every
// component receives at least one node.
func splitComponents(st *state, comps int, build func(start, size int)) {
	n := st.n()
	if comps > n {
		comps = n
	}

	base := n / comps
	extra := n % comps
	start := 0
	for c := 0; c < comps; c++ {
		size := base
		if c < extra {
			size++
		}
		for i := start; i < start+size; i++ {
			st.component[i] = c
		}
		build(start, size)
		start += size
	}
}

// buildCycleEdges lays a simple cycle over [start, start+size). Directed
// specs orient the cycle consistently forward with one closing back edge.
func buildCycleEdges(st *state, start, size int) {
	for i := 0; i < size-1; i++ {
		st.addEdge(start+i, start+i+1)
	}
	st.addEdge(start+size-1, start)
}
