// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// connectivity.go — Harary-style k-connected graphs, partial k-trees
// (treewidth), and k-colorable structures.
//
// Contract:
//   - k-vertex-connected uses the circulant Harary construction with offsets
//     1..⌈k/2⌉ (degree 2⌈k/2⌉ ≥ k); requires n ≥ k+1, validated eagerly with
//     the documented error message.
//   - k-edge-connected reuses the same construction (λ(G) ≥ κ(G) ≥ k).
//   - treewidth lays an incremental k-tree: a (width+1)-clique seed, then
//     each new node joins one uniformly drawn existing width-clique. The
//     k-tree has treewidth exactly width; its cliques are recorded per node.
//   - k-colorable assigns round-robin color classes (recorded per node) and
//     emits only cross-class edges.
package gen

import (
	"fmt"
)

const (
	methodKVertexConnected = "KVertexConnected"
	methodKEdgeConnected   = "KEdgeConnected"
	methodTreewidth        = "Treewidth"
	methodKColorable       = "KColorable"

	// colorableCrossProbability is the cross-class inclusion probability.
	colorableCrossProbability = 0.4
)

// Metadata keys written by this file.
const (
	DataColor        = "color"
	DataTreewidth    = "treewidth"
	DataBagNeighbors = "bag_neighbors"
)

// buildKVertexConnected lays the Harary circulant for κ(G) >= k.
func buildKVertexConnected(st *state) error {
	k := st.spec.VertexConnectivity.K
	n := st.n()
	if k < 1 {
		return fmt.Errorf("%s: k must be >= 1, got %d: %w", methodKVertexConnected, k, ErrInfeasible)
	}
	if n <= k {
		return fmt.Errorf("%s: k-vertex-connected graph requires at least %d nodes, got %d: %w",
			methodKVertexConnected, k+1, n, ErrInfeasible)
	}

	layHararyEdges(st, k)

	return nil
}

// buildKEdgeConnected reuses the Harary construction; λ >= κ >= k.
func buildKEdgeConnected(st *state) error {
	k := st.spec.EdgeConnectivity.K
	n := st.n()
	if k < 1 {
		return fmt.Errorf("%s: k must be >= 1, got %d: %w", methodKEdgeConnected, k, ErrInfeasible)
	}
	if n <= k {
		return fmt.Errorf("%s: k-edge-connected graph requires at least %d nodes, got %d: %w",
			methodKEdgeConnected, k+1, n, ErrInfeasible)
	}

	layHararyEdges(st, k)

	return nil
}

// layHararyEdges emits circulant offsets 1..⌈k/2⌉ over all n nodes.
func layHararyEdges(st *state, k int) {
	n := st.n()
	m := (k + 1) / 2
	for off := 1; off <= m; off++ {
		for i := 0; i < n; i++ {
			st.addEdgeOnce(i, (i+off)%n)
		}
	}
}

// buildTreewidth grows an incremental k-tree of the requested width.
func buildTreewidth(st *state) error {
	width := st.spec.Treewidth.Width
	n := st.n()
	if width < 1 {
		return fmt.Errorf("%s: treewidth must be >= 1, got %d: %w", methodTreewidth, width, ErrInfeasible)
	}
	if n < width+1 {
		return fmt.Errorf("%s: a width-%d k-tree requires at least %d nodes, got %d: %w",
			methodTreewidth, width, width+1, n, ErrInfeasible)
	}

	layKTreeEdges(st, width)
	st.setAllData(DataTreewidth, width)

	return nil
}

// layKTreeEdges is the shared k-tree builder (also the chordal family's
// construction). Seed clique on width+1 nodes; every further node joins a
// uniformly drawn width-subset of an existing clique.
func layKTreeEdges(st *state, width int) {
	n := st.n()

	// Seed clique.
	seed := make([]int, 0, width+1)
	for i := 0; i <= width && i < n; i++ {
		for _, j := range seed {
			st.addEdgeOnce(j, i)
		}
		seed = append(seed, i)
	}

	// cliques collects the width-cliques available for attachment.
	cliques := [][]int{append([]int(nil), seed[:min(width, len(seed))]...)}
	for _, sub := range widthSubsets(seed, width) {
		cliques = append(cliques, sub)
	}

	for i := width + 1; i < n; i++ {
		pick := cliques[st.rng.IntBetween(0, len(cliques)-1)]
		bag := make([]string, 0, len(pick))
		for _, j := range pick {
			st.addEdgeOnce(j, i)
			bag = append(bag, st.id(j))
		}
		st.setData(i, DataBagNeighbors, bag)

		// New cliques: i together with each (width-1)-subset of pick.
		for drop := range pick {
			next := make([]int, 0, width)
			next = append(next, i)
			for q, j := range pick {
				if q != drop {
					next = append(next, j)
				}
			}
			cliques = append(cliques, next)
		}
	}
}

// widthSubsets lists every subset of ids with exactly width elements.
// Only invoked on the seed clique (width+1 elements → width+1 subsets).
func widthSubsets(ids []int, width int) [][]int {
	if len(ids) <= width {
		return nil
	}

	var out [][]int
	for drop := range ids {
		sub := make([]int, 0, width)
		for q, j := range ids {
			if q != drop {
				sub = append(sub, j)
			}
		}
		out = append(out, sub)
	}

	return out
}

// buildKColorable assigns round-robin colors and emits only cross-class
// Bernoulli edges; a connected spec additionally gets the index chain
// (consecutive indices always differ in color for k >= 2).
func buildKColorable(st *state) error {
	k := st.spec.Colorability.K
	n := st.n()
	if k < 1 {
		return fmt.Errorf("%s: k must be >= 1, got %d: %w", methodKColorable, k, ErrInfeasible)
	}
	if k == 1 && n > 1 {
		// 1-colorable means edgeless; legal, just nothing to emit.
		st.setAllData(DataColor, 0)

		return nil
	}

	color := make([]int, n)
	for i := 0; i < n; i++ {
		color[i] = i % k
		st.setData(i, DataColor, color[i])
	}

	if st.spec.IsConnected() && k >= 2 {
		for i := 0; i < n-1; i++ {
			st.addEdge(i, i+1)
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if color[i] == color[j] || st.hasPair(i, j) {
				continue
			}
			if st.rng.Next() < colorableCrossProbability {
				st.addEdge(i, j)
			}
		}
	}

	return nil
}
