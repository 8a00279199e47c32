// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// nodes.go — vertex allocation: ids, bipartition sizing, type sampling.
//
// Contract:
//   - Ids are assigned sequentially as N0..N{n-1} before any edge exists.
//   - Bipartite partitions are sized 50/50 (left gets the ceiling); explicit
//     K_{m,n} sizes are clipped to the available node count (M first, N gets
//     the remainder).
//   - Heterogeneous type assignment draws by cumulative probability over the
//     proportion list; the last listed type is the catch-all when rounding
//     leaves the cumulative sum short of 1.
//
// Determinism: one RNG draw per node for typed schemas, in index order.
package gen

import (
	"github.com/katalvlaran/graphgen/core"
)

// generateNodes allocates the vertex set for the build state.
func generateNodes(st *state) {
	n := st.cfg.NodeCount
	st.nodes = make([]*core.Node, n)
	for i := 0; i < n; i++ {
		st.nodes[i] = &core.Node{ID: core.NodeID(i)}
	}

	if st.spec.RequiresBipartition() {
		assignPartitions(st)
	}

	if st.spec.IsHeterogeneous() && len(st.cfg.NodeTypes) > 0 {
		assignNodeTypes(st)
	}
}

// assignPartitions labels nodes left/right before edge synthesis.
func assignPartitions(st *state) {
	n := st.n()
	leftSize := (n + 1) / 2 // 50/50, left takes the odd one

	if cb := st.spec.CompleteBipartite; cb != nil && cb.M > 0 {
		leftSize = cb.M
		if leftSize > n {
			leftSize = n
		}
	}

	for i, node := range st.nodes {
		if i < leftSize {
			node.Partition = core.PartitionLeft
		} else {
			node.Partition = core.PartitionRight
		}
	}
}

// assignNodeTypes draws each node's type by cumulative-probability sampling.
func assignNodeTypes(st *state) {
	types := st.cfg.NodeTypes
	cum := cumulativeProportions(types)
	for _, node := range st.nodes {
		node.Type = pickByProportion(st, types, cum)
	}
}

// partitionIndices returns the node indices of each side of the bipartition.
func (st *state) partitionIndices() (left, right []int) {
	for i, node := range st.nodes {
		switch node.Partition {
		case core.PartitionLeft:
			left = append(left, i)
		case core.PartitionRight:
			right = append(right, i)
		}
	}

	return left, right
}
