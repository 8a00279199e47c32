// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// bipartite.go — partition-constrained families: complete bipartite, random
// bipartite (cyclic and acyclic), k-partite.
//
// Contract:
//   - Partitions were assigned by node synthesis before any edge exists;
//     every edge emitted here crosses partitions (or classes), never joins
//     within one.
//   - K_{m,n} emits exactly m*n edges, left→right, in stable (i,j) order.
//   - The bipartite acyclic + connected variant is a spanning tree that
//     alternates sides, so it is simultaneously a tree and two-colorable.
//   - k-partite records each node's class id in Data so the validator can
//     verify no intra-class edge exists without recoloring.
package gen

import (
	"fmt"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	methodBipartite         = "Bipartite"
	methodKPartite          = "KPartite"

	// DataPartiteClass is the k-partite class id metadata key.
	DataPartiteClass = "partite_class"

	// bipartiteBaseProbability is the cross-pair inclusion probability for
	// the random bipartite base structure.
	bipartiteBaseProbability = 0.3
)

// buildCompleteBipartite joins every left node to every right node.
func buildCompleteBipartite(st *state) error {
	left, right := st.partitionIndices()
	if len(left) == 0 || len(right) == 0 {
		return fmt.Errorf("%s: both partitions must be non-empty (m=%d, n=%d): %w",
			methodCompleteBipartite, len(left), len(right), ErrInfeasible)
	}

	for _, i := range left {
		for _, j := range right {
			st.addEdge(i, j)
		}
	}

	return nil
}

// buildBipartite synthesizes the random bipartite base structure: a
// side-alternating spanning tree when connectivity demands it (always the
// acyclic shape), plus Bernoulli cross edges when cycles are allowed.
func buildBipartite(st *state) error {
	left, right := st.partitionIndices()
	if len(left) == 0 || len(right) == 0 {
		return fmt.Errorf("%s: both partitions must be non-empty: %w",
			methodBipartite, ErrInfeasible)
	}

	needSpanning := st.spec.IsConnected() || st.spec.IsAcyclic()
	if needSpanning {
		buildBipartiteSpanningTree(st, left, right)
	}
	if st.spec.IsAcyclic() {
		st.markFixed() // tree shape: no further edges may be added

		return nil
	}

	// Bernoulli cross edges on top of (or instead of) the spanning tree.
	for _, i := range left {
		for _, j := range right {
			if st.hasPair(i, j) {
				continue
			}
			if st.rng.Next() < bipartiteBaseProbability {
				st.addEdge(i, j)
			}
		}
	}

	return nil
}

// buildBipartiteSpanningTree attaches every node (in index order, after the
// first left node) to a uniformly drawn already-attached node of the
// opposite side. The result is a tree whose every edge crosses sides.
func buildBipartiteSpanningTree(st *state, left, right []int) {
	attachedLeft := []int{left[0]}
	var attachedRight []int

	for _, j := range right {
		anchor := attachedLeft[st.rng.IntBetween(0, len(attachedLeft)-1)]
		st.addEdge(anchor, j)
		attachedRight = append(attachedRight, j)
	}
	for _, i := range left[1:] {
		anchor := attachedRight[st.rng.IntBetween(0, len(attachedRight)-1)]
		st.addEdge(anchor, i)
		attachedLeft = append(attachedLeft, i)
	}
}

// buildKPartite assigns classes round-robin, records them, and emits
// Bernoulli cross-class edges. A connectivity-demanding spec additionally
// gets a class-alternating spanning chain.
func buildKPartite(st *state) error {
	k := st.spec.Partiteness.K
	n := st.n()
	if k < 2 {
		return fmt.Errorf("%s: k-partite requires k >= 2, got %d: %w",
			methodKPartite, k, ErrInfeasible)
	}
	if k > n {
		return fmt.Errorf("%s: k-partite requires k <= n (k=%d, n=%d): %w",
			methodKPartite, k, n, ErrInfeasible)
	}

	class := make([]int, n)
	for i := 0; i < n; i++ {
		class[i] = i % k
		st.setData(i, DataPartiteClass, class[i])
	}

	if st.spec.IsConnected() {
		// Chain in index order: consecutive indices are in distinct classes
		// (round-robin guarantees it for k >= 2).
		for i := 0; i < n-1; i++ {
			st.addEdge(i, i+1)
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if class[i] == class[j] || st.hasPair(i, j) {
				continue
			}
			if st.rng.Next() < bipartiteBaseProbability {
				st.addEdge(i, j)
			}
		}
	}

	return nil
}
