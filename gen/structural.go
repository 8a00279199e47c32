// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// structural.go — classical structural graph classes: chordal, interval,
// permutation, comparability, perfect, split, cograph, claw-free, line
// graph, self-complementary.
//
// Contract (per class):
//   - chordal: incremental k-tree construction (width drawn from {2,3}).
//   - interval: random [start, start+length] intervals, edge iff overlap;
//     endpoints stashed per node.
//   - permutation: random permutation π, edge(i,j) iff (i-j)(π(i)-π(j)) < 0;
//     π(i) stashed per node.
//   - comparability: random topological order with forward-only Bernoulli
//     edges; the order is stashed per node (a valid transitive orientation
//     witness).
//   - perfect: delegates uniformly to one of {chordal, complete-bipartite,
//     cograph} and records which, so the validator checks the right base.
//   - split: clique on ⌈n/3⌉ nodes + independent set with 50% cross edges;
//     role stashed per node.
//   - cograph: recursive union/join construction (no induced P4 by
//     construction).
//   - claw-free: triangle blocks completed internally, joined by a sparse
//     matching giving every vertex at most one external neighbor.
//   - line graph: nodes are assigned distinct edges of a synthetic complete
//     base graph; adjacency iff the base edges share an endpoint.
//   - self-complementary: deterministic parity rule up to the exact
//     n(n-1)/4 edge target, with a corrective fill pass under the opposite
//     parity when the first rule runs short (one loop, duplicate-safe).
package gen

import (
	"fmt"
)

const (
	methodChordal           = "Chordal"
	methodInterval          = "Interval"
	methodPermutation       = "Permutation"
	methodComparability     = "Comparability"
	methodPerfect           = "Perfect"
	methodSplit             = "Split"
	methodCograph           = "Cograph"
	methodClawFree          = "ClawFree"
	methodLineGraph         = "LineGraph"
	methodSelfComplementary = "SelfComplementary"

	comparabilityForwardProbability = 0.4
	splitCrossProbability           = 0.5
)

// Metadata keys written by this file.
const (
	DataIntervalStart = "interval_start" // float64
	DataIntervalEnd   = "interval_end"   // float64
	DataPermValue     = "perm_value"
	DataTopoOrder     = "topo_order"
	DataPerfectBase   = "perfect_base"
	DataSplitRole     = "split_role" // "clique" | "independent"
	DataBaseEdge      = "base_edge"  // [2]int of the synthetic base graph
)

// buildChordal grows a k-tree, chordal by construction.
func buildChordal(st *state) error {
	n := st.n()
	if n < 1 {
		return fmt.Errorf("%s: empty node set: %w", methodChordal, ErrInfeasible)
	}

	width := 2
	if n >= 6 {
		width = st.rng.IntBetween(2, 3)
	}
	if width >= n {
		width = n - 1
	}
	if width >= 1 {
		layKTreeEdges(st, width)
	}

	return nil
}

// buildInterval draws one interval per node and joins overlapping pairs.
func buildInterval(st *state) error {
	n := st.n()
	start := make([]float64, n)
	end := make([]float64, n)
	for i := 0; i < n; i++ {
		start[i] = st.rng.Next() * float64(n)
		end[i] = start[i] + 1 + st.rng.Next()*float64(n)/4
		st.setData(i, DataIntervalStart, start[i])
		st.setData(i, DataIntervalEnd, end[i])
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if start[i] <= end[j] && start[j] <= end[i] {
				st.addEdge(i, j)
			}
		}
	}

	return nil
}

// buildPermutation draws a random permutation and joins inverted pairs.
func buildPermutation(st *state) error {
	n := st.n()
	pi := make([]int, n)
	for i := range pi {
		pi[i] = i
	}
	shuffleInts(st, pi)
	for i, v := range pi {
		st.setData(i, DataPermValue, v)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// i < j, so an inversion is π(i) > π(j).
			if pi[i] > pi[j] {
				st.addEdge(i, j)
			}
		}
	}

	return nil
}

// buildComparability draws a random topological order and emits forward-only
// Bernoulli edges.
func buildComparability(st *state) error {
	n := st.n()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	shuffleInts(st, order)

	rank := make([]int, n)
	for pos, idx := range order {
		rank[idx] = pos
		st.setData(idx, DataTopoOrder, pos)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if st.rng.Next() >= comparabilityForwardProbability {
				continue
			}
			// Orient along the drawn order for directed specs.
			if st.spec.IsDirected() && rank[j] < rank[i] {
				st.addEdge(j, i)
			} else {
				st.addEdge(i, j)
			}
		}
	}

	return nil
}

// buildPerfect delegates to one perfect subclass uniformly at random and
// records the choice for the validator.
func buildPerfect(st *state) error {
	pick := st.rng.IntBetween(0, 2)
	var (
		base string
		err  error
	)
	switch pick {
	case 0:
		base = "chordal"
		err = buildChordal(st)
	case 1:
		base = "complete_bipartite"
		layIndexBipartiteComplete(st)
	default:
		base = "cograph"
		err = buildCograph(st)
	}
	if err != nil {
		return fmt.Errorf("%s: delegate %s: %w", methodPerfect, base, err)
	}
	st.setAllData(DataPerfectBase, base)

	return nil
}

// layIndexBipartiteComplete joins the low index half to the high index half
// completely (no Partition labels: the bipartition here is a construction
// device, not a spec-requested axis).
func layIndexBipartiteComplete(st *state) {
	n := st.n()
	half := n / 2
	for i := 0; i < half; i++ {
		for j := half; j < n; j++ {
			st.addEdge(i, j)
		}
	}
}

// buildSplit partitions into a ⌈n/3⌉-clique and an independent set with 50%
// cross edges.
func buildSplit(st *state) error {
	n := st.n()
	cliqueSize := (n + 2) / 3
	if cliqueSize < 1 {
		cliqueSize = 1
	}

	for i := 0; i < cliqueSize; i++ {
		st.setData(i, DataSplitRole, "clique")
		for j := i + 1; j < cliqueSize; j++ {
			st.addEdge(i, j)
		}
	}
	for i := cliqueSize; i < n; i++ {
		st.setData(i, DataSplitRole, "independent")
		for j := 0; j < cliqueSize; j++ {
			if st.rng.Next() < splitCrossProbability {
				st.addEdge(j, i)
			}
		}
	}

	return nil
}

// buildCograph runs the recursive union/join construction over index ranges.
func buildCograph(st *state) error {
	layCographEdges(st, 0, st.n())

	return nil
}

// layCographEdges recursively splits [start,start+size), builds both halves,
// and joins them completely with probability 1/2 (union otherwise).
func layCographEdges(st *state, start, size int) {
	if size < 2 {
		return
	}

	half := size / 2
	layCographEdges(st, start, half)
	layCographEdges(st, start+half, size-half)

	if st.rng.Next() < 0.5 {
		// Join: all cross edges between the halves.
		for i := start; i < start+half; i++ {
			for j := start + half; j < start+size; j++ {
				st.addEdge(i, j)
			}
		}
	}
}

// buildClawFree completes triangle blocks and links consecutive blocks with
// one edge each, keeping every vertex's external degree at most 1 (three
// pairwise non-adjacent neighbors are then impossible).
func buildClawFree(st *state) error {
	n := st.n()
	blocks := n / 3

	for b := 0; b < blocks; b++ {
		base := 3 * b
		st.addEdge(base, base+1)
		st.addEdge(base+1, base+2)
		st.addEdge(base, base+2)
		if b > 0 {
			// Link: previous block's third vertex → this block's first.
			st.addEdge(3*(b-1)+2, base)
		}
	}

	// Leftover 1-2 nodes become a pendant chain off an externally unused
	// vertex (the middle of the last full block, or each other).
	rest := n - 3*blocks
	switch {
	case rest == 1 && blocks > 0:
		st.addEdge(3*(blocks-1)+1, n-1)
	case rest == 2 && blocks > 0:
		st.addEdge(3*(blocks-1)+1, n-2)
		st.addEdge(n-2, n-1)
	case rest == 2:
		st.addEdge(0, 1)
	}

	return nil
}

// buildLineGraph assigns each node a distinct edge of a synthetic complete
// base graph K_m and joins nodes whose base edges share an endpoint.
func buildLineGraph(st *state) error {
	n := st.n()

	// Smallest m with m(m-1)/2 >= n.
	m := 2
	for m*(m-1)/2 < n {
		m++
	}

	pairs := make([][2]int, 0, m*(m-1)/2)
	for a := 0; a < m; a++ {
		for b := a + 1; b < m; b++ {
			pairs = append(pairs, [2]int{a, b})
		}
	}

	for i := 0; i < n; i++ {
		st.setData(i, DataBaseEdge, pairs[i])
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if sharesEndpoint(pairs[i], pairs[j]) {
				st.addEdge(i, j)
			}
		}
	}

	return nil
}

// sharesEndpoint reports whether two base edges touch a common base vertex.
func sharesEndpoint(a, b [2]int) bool {
	return a[0] == b[0] || a[0] == b[1] || a[1] == b[0] || a[1] == b[1]
}

// buildSelfComplementary fills edges by the parity rule up to the exact
// n(n-1)/4 target, then keeps filling under the opposite parity until the
// target is met. One loop, duplicate-safe.
func buildSelfComplementary(st *state) error {
	n := st.n()
	if n%4 != 0 && n%4 != 1 {
		return fmt.Errorf("%s: self-complementary graph requires n ≡ 0 or 1 (mod 4), got n=%d: %w",
			methodSelfComplementary, n, ErrInfeasible)
	}

	target := n * (n - 1) / 4

	// Pass parity 0: (i+j) even; pass parity 1: the complement rule.
	for pass := 0; pass < 2 && len(st.edges) < target; pass++ {
		for i := 0; i < n && len(st.edges) < target; i++ {
			for j := i + 1; j < n && len(st.edges) < target; j++ {
				if (i+j)%2 != pass || st.hasPair(i, j) {
					continue
				}
				st.addEdge(i, j)
			}
		}
	}

	return nil
}
