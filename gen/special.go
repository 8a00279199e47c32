// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// special.go — exact-shape families: star, wheel, grid, toroidal grid,
// binary tree, tournament.
//
// Contract:
//   - Every family here has a closed-form edge count; all are marked fixed
//     in dispatchOrder, so the density pass only runs closing guarantees.
//   - Construction parameters the validator needs (hub id, grid dimensions)
//     are stashed into node Data.
//
// Determinism: no RNG draws at all in this file — shapes are functions of n.
package gen

import (
	"fmt"
	"math"
)

const (
	methodStar       = "Star"
	methodWheel      = "Wheel"
	methodGrid       = "Grid"
	methodToroidal   = "Toroidal"
	methodBinaryTree = "BinaryTree"
	methodTournament = "Tournament"
)

// Metadata keys written by this file.
const (
	DataHub      = "hub"
	DataGridRows = "grid_rows"
	DataGridCols = "grid_cols"
	DataWrap     = "grid_wrap"
)

// buildStar joins node 0 (the hub) to every other node: n-1 edges.
func buildStar(st *state) error {
	n := st.n()
	if n < 2 {
		return fmt.Errorf("%s: star graph requires at least 2 nodes, got %d: %w",
			methodStar, n, ErrInfeasible)
	}

	for i := 1; i < n; i++ {
		st.addEdge(0, i)
	}
	st.setData(0, DataHub, true)

	return nil
}

// buildWheel lays a rim cycle over nodes 1..n-1 and joins hub 0 to every rim
// node: 2(n-1)-? edges, exactly 2n-2 for n >= 4.
func buildWheel(st *state) error {
	n := st.n()
	if n < 4 {
		return fmt.Errorf("%s: wheel graph requires at least 4 nodes, got %d: %w",
			methodWheel, n, ErrInfeasible)
	}

	for i := 1; i < n-1; i++ {
		st.addEdge(i, i+1)
	}
	st.addEdge(n-1, 1) // close the rim
	for i := 1; i < n; i++ {
		st.addEdge(0, i) // spokes
	}
	st.setData(0, DataHub, true)

	return nil
}

// buildGrid lays a rows×cols 4-neighborhood lattice row-major over the first
// rows*cols nodes. Unspecified dimensions resolve to the squarest
// factorization of n; leftover nodes (n not factorable by the explicit dims)
// stay isolated and are accounted for by the validator via the stored dims.
func buildGrid(st *state) error {
	rows, cols, err := resolveGridDims(st, st.spec.Grid.Rows, st.spec.Grid.Cols, methodGrid)
	if err != nil {
		return err
	}
	layGridEdges(st, rows, cols, false)
	st.setAllData(DataGridRows, rows)
	st.setAllData(DataGridCols, cols)

	return nil
}

// buildToroidal lays a grid with wrap-around edges on both dimensions.
func buildToroidal(st *state) error {
	rows, cols, err := resolveGridDims(st, st.spec.Toroidal.Rows, st.spec.Toroidal.Cols, methodToroidal)
	if err != nil {
		return err
	}
	layGridEdges(st, rows, cols, true)
	st.setAllData(DataGridRows, rows)
	st.setAllData(DataGridCols, cols)
	st.setAllData(DataWrap, true)

	return nil
}

// resolveGridDims validates explicit dimensions or derives near-square ones.
func resolveGridDims(st *state, rows, cols int, method string) (int, int, error) {
	n := st.n()
	if rows > 0 && cols > 0 {
		if rows*cols > n {
			return 0, 0, fmt.Errorf("%s: %dx%d grid requires %d nodes, only %d available: %w",
				method, rows, cols, rows*cols, n, ErrInfeasible)
		}

		return rows, cols, nil
	}

	// Squarest factorization: largest divisor of n not above sqrt(n).
	r := int(math.Sqrt(float64(n)))
	for r > 1 && n%r != 0 {
		r--
	}
	if r < 1 {
		r = 1
	}

	return r, n / r, nil
}

// layGridEdges emits right and down neighbors row-major; wrap adds the
// closing edges per row and column (skipped for dimensions < 3, where the
// wrap edge would duplicate an existing one).
func layGridEdges(st *state, rows, cols int, wrap bool) {
	at := func(r, c int) int { return r*cols + c }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				st.addEdge(at(r, c), at(r, c+1))
			}
			if r+1 < rows {
				st.addEdge(at(r, c), at(r+1, c))
			}
		}
	}

	if !wrap {
		return
	}
	if cols >= minCycleSize {
		for r := 0; r < rows; r++ {
			st.addEdge(at(r, cols-1), at(r, 0))
		}
	}
	if rows >= minCycleSize {
		for c := 0; c < cols; c++ {
			st.addEdge(at(rows-1, c), at(0, c))
		}
	}
}

// buildBinaryTree links node i to children 2i+1 and 2i+2 where they exist:
// a complete-as-possible rooted binary tree with n-1 edges.
func buildBinaryTree(st *state) error {
	n := st.n()
	for i := 0; i < n; i++ {
		if l := 2*i + 1; l < n {
			st.addEdge(i, l)
		}
		if r := 2*i + 2; r < n {
			st.addEdge(i, r)
		}
	}

	return nil
}

// buildTournament emits exactly one arc per vertex pair, orientation drawn
// uniformly. Requires a directed spec.
func buildTournament(st *state) error {
	if !st.spec.IsDirected() {
		return fmt.Errorf("%s: tournament requires a directed spec: %w",
			methodTournament, ErrSpecMismatch)
	}

	n := st.n()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if st.rng.Next() < 0.5 {
				st.addEdge(i, j)
			} else {
				st.addEdge(j, i)
			}
		}
	}

	return nil
}
