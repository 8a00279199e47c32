// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// planar.go — minor-free / topological families and the symmetry + girth
// constructions.
//
// Contract:
//   - outerplanar: outer cycle plus a non-crossing fan of chords from node 0
//     (all vertices stay on the outer face; m <= 2n-3 by construction).
//   - series-parallel: parallel internally-disjoint paths between the two
//     terminals N0 and N{n-1} (series-parallel by construction; terminals
//     stashed).
//   - cactus: blocks of 3-4 nodes, each a cycle, joined by bridges — every
//     edge lies on at most one cycle.
//   - planar: the near-square grid lattice (planar embedding is immediate;
//     m <= 3n-6 holds for every grid).
//   - girth: one cycle of exactly the target length; every remaining node
//     hangs off it as tree growth, which creates no further cycles.
//   - circulant / vertex-transitive: fixed-offset ring constructions
//     (vertex-transitive by symmetry of the offsets).
//   - edge-transitive: the simple cycle C_n (its automorphisms act
//     transitively on edges).
package gen

import (
	"fmt"
)

const (
	methodOuterplanar    = "Outerplanar"
	methodSeriesParallel = "SeriesParallel"
	methodCactus         = "Cactus"
	methodPlanar         = "Planar"
	methodGirth          = "Girth"
	methodCirculant      = "Circulant"

	outerplanarChordProbability = 0.5
)

// Metadata keys written by this file.
const (
	DataTerminal    = "terminal" // "source" | "sink" of the SP construction
	DataGirthTarget = "girth_target"
	DataOffsets     = "circulant_offsets"
)

// buildOuterplanar lays the outer cycle plus Bernoulli fan chords.
func buildOuterplanar(st *state) error {
	n := st.n()
	if n < minCycleSize {
		if n == 2 {
			st.addEdge(0, 1)
		}

		return nil
	}

	buildCycleEdges(st, 0, n)
	// Fan chords from node 0 never cross each other.
	for i := 2; i < n-1; i++ {
		if st.rng.Next() < outerplanarChordProbability {
			st.addEdgeOnce(0, i)
		}
	}

	return nil
}

// buildSeriesParallel lays 2-3 internally disjoint terminal-to-terminal
// paths over the interior nodes.
func buildSeriesParallel(st *state) error {
	n := st.n()
	if n < 2 {
		return fmt.Errorf("%s: series-parallel requires at least 2 nodes (two terminals), got %d: %w",
			methodSeriesParallel, n, ErrInfeasible)
	}

	st.setData(0, DataTerminal, "source")
	st.setData(n-1, DataTerminal, "sink")

	interior := n - 2
	if interior == 0 {
		st.addEdge(0, 1)

		return nil
	}

	paths := 2
	if interior >= 4 {
		paths = st.rng.IntBetween(2, 3)
	}
	if paths > interior {
		paths = interior
	}

	// Round-robin interior nodes over the paths, chaining each path from
	// terminal 0 to terminal n-1.
	prev := make([]int, paths)
	for p := range prev {
		prev[p] = 0
	}
	for i := 1; i <= interior; i++ {
		p := (i - 1) % paths
		st.addEdge(prev[p], i)
		prev[p] = i
	}
	for p := 0; p < paths; p++ {
		st.addEdgeOnce(prev[p], n-1)
	}

	return nil
}

// buildCactus chains cycle blocks of 3-4 nodes with bridge edges.
func buildCactus(st *state) error {
	n := st.n()
	start := 0
	lastBlockEnd := -1
	for start < n {
		size := 3
		if n-start >= 7 {
			size = st.rng.IntBetween(3, 4)
		}
		if n-start < 3 {
			size = n - start // 1-2 trailing nodes become a bridge chain
		}

		if size >= minCycleSize {
			buildCycleEdges(st, start, size)
		} else if size == 2 {
			st.addEdge(start, start+1)
		}
		if lastBlockEnd >= 0 {
			st.addEdge(lastBlockEnd, start) // bridge between blocks
		}
		lastBlockEnd = start + size - 1
		start += size
	}

	return nil
}

// buildPlanar lays the near-square grid lattice.
func buildPlanar(st *state) error {
	rows, cols, err := resolveGridDims(st, 0, 0, methodPlanar)
	if err != nil {
		return err
	}
	layGridEdges(st, rows, cols, false)

	return nil
}

// buildGirth lays one cycle of exactly the target length and hangs every
// remaining node off it as a tree.
func buildGirth(st *state) error {
	g := st.spec.Girth.Target
	n := st.n()
	if g < minCycleSize {
		return fmt.Errorf("%s: girth target must be >= %d, got %d: %w",
			methodGirth, minCycleSize, g, ErrInfeasible)
	}
	if g > n {
		return fmt.Errorf("%s: girth target %d exceeds node count %d: %w",
			methodGirth, g, n, ErrInfeasible)
	}

	buildCycleEdges(st, 0, g)
	for i := g; i < n; i++ {
		anchor := st.rng.IntBetween(0, i-1)
		st.addEdge(anchor, i)
	}
	st.setAllData(DataGirthTarget, g)

	return nil
}

// buildCirculant lays the requested offsets around the ring.
func buildCirculant(st *state) error {
	n := st.n()
	offsets := st.spec.Circulant.Offsets
	if len(offsets) == 0 {
		return fmt.Errorf("%s: at least one offset required: %w", methodCirculant, ErrInfeasible)
	}
	for _, off := range offsets {
		if off < 1 || off > n/2 {
			return fmt.Errorf("%s: offset %d outside [1, n/2] for n=%d: %w",
				methodCirculant, off, n, ErrInfeasible)
		}
	}

	layOffsets(st, offsets)
	st.setAllData(DataOffsets, append([]int(nil), offsets...))

	return nil
}

// buildVertexTransitive lays the circulant with offsets {1,2} clipped to n,
// vertex-transitive by rotational symmetry.
func buildVertexTransitive(st *state) error {
	n := st.n()
	var offsets []int
	for _, off := range []int{1, 2} {
		if off <= n/2 {
			offsets = append(offsets, off)
		}
	}
	if len(offsets) == 0 {
		if n == 2 {
			st.addEdge(0, 1)
		}

		return nil
	}

	layOffsets(st, offsets)
	st.setAllData(DataOffsets, offsets)

	return nil
}

// buildEdgeTransitive lays the simple cycle C_n.
func buildEdgeTransitive(st *state) error {
	n := st.n()
	if n < minCycleSize {
		if n == 2 {
			st.addEdge(0, 1)
		}

		return nil
	}
	buildCycleEdges(st, 0, n)

	return nil
}

// layOffsets emits each ring offset once per node, skipping duplicates that
// arise when 2*off == n.
func layOffsets(st *state, offsets []int) {
	n := st.n()
	for _, off := range offsets {
		for i := 0; i < n; i++ {
			st.addEdgeOnce(i, (i+off)%n)
		}
	}
}
