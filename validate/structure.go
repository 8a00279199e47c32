// SPDX-License-Identifier: MIT
// Package: graphgen/validate
//
// structure.go — checks for the exact-shape and degree-constrained axes.
//
// Contract: each check runs only when its axis is present on the spec.
// Shape checks are exact (degree profiles, arc counts); the strongly
// regular adjacency-count condition is validated through the recorded
// generation parameters, with the structural search reported as skipped.
package validate

import (
	"github.com/katalvlaran/graphgen/gen"
	"github.com/katalvlaran/graphgen/spec"
)

// checkStructuralAxes dispatches the shape, degree, flow, traversability,
// connectivity, treewidth, and colorability checks.
func checkStructuralAxes(r *Result, v *view) {
	s := v.g.Spec
	if s.CompleteBipartite != nil {
		checkCompleteBipartite(r, v)
	}
	if s.Star != nil {
		checkStar(r, v)
	}
	if s.Wheel != nil {
		checkWheel(r, v)
	}
	if s.Grid != nil || s.Toroidal != nil {
		checkGrid(r, v)
	}
	if s.BinaryTree != nil {
		checkBinaryTree(r, v)
	}
	if s.Tournament != nil {
		checkTournament(r, v)
	}
	if s.Regularity != nil {
		checkRegular(r, v)
	}
	if s.StronglyRegular != nil {
		checkStronglyRegular(r, v)
	}
	if s.FlowNetwork != nil {
		checkFlowNetwork(r, v)
	}
	if s.Eulerian != nil {
		checkEulerian(r, v)
	}
	if s.Hamiltonian != nil {
		checkHamiltonian(r, v)
	}
	if s.VertexConnectivity != nil {
		checkMinDegree(r, v, "vertex_connectivity", s.VertexConnectivity.K)
	}
	if s.EdgeConnectivity != nil {
		checkMinDegree(r, v, "edge_connectivity", s.EdgeConnectivity.K)
	}
	if s.Treewidth != nil {
		checkTreewidth(r, v)
	}
	if s.Colorability != nil {
		checkColoring(r, v)
	}
}

func checkCompleteBipartite(r *Result, v *view) {
	const prop = "complete_bipartite"
	cb := v.g.Spec.CompleteBipartite
	left, right := partitionSizes(v.g)
	if left != cb.M || right != cb.N {
		r.fail(prop, "partition sizes %s, want %d+%d", describePartition(v.g), cb.M, cb.N)

		return
	}
	if got, want := v.simpleEdgeCount(), cb.M*cb.N; got != want {
		r.fail(prop, "%d cross edges, want %d", got, want)

		return
	}
	r.pass(prop)
}

func checkStar(r *Result, v *view) {
	const prop = "star"
	if v.n <= 2 {
		r.pass(prop)

		return
	}
	hubs, leaves := 0, 0
	for i := 0; i < v.n; i++ {
		switch d := v.degree(i); {
		case d == v.n-1:
			hubs++
		case d == 1:
			leaves++
		}
	}
	if hubs != 1 || leaves != v.n-1 {
		r.fail(prop, "degree profile %d hub(s), %d leaf(s) on %d nodes", hubs, leaves, v.n)

		return
	}
	r.pass(prop)
}

func checkWheel(r *Result, v *view) {
	const prop = "wheel"
	hubs, rim := 0, 0
	for i := 0; i < v.n; i++ {
		switch v.degree(i) {
		case v.n - 1:
			hubs++
		case 3:
			rim++
		}
	}
	// K_4 is the degenerate wheel: every vertex has degree 3 = n-1.
	if v.n == 4 && hubs == 4 {
		r.pass(prop)

		return
	}
	if hubs != 1 || rim != v.n-1 {
		r.fail(prop, "degree profile %d hub(s), %d rim node(s) on %d nodes", hubs, rim, v.n)

		return
	}
	r.pass(prop)
}

func checkGrid(r *Result, v *view) {
	const prop = "grid"
	rows, okR := v.dataInt(0, gen.DataGridRows)
	cols, okC := v.dataInt(0, gen.DataGridCols)
	if !okR || !okC {
		r.skip(prop, "grid dimensions not recorded")

		return
	}
	if rows*cols > v.n {
		r.fail(prop, "recorded %dx%d grid exceeds %d nodes", rows, cols, v.n)

		return
	}

	wrap := false
	if w, ok := v.data(0, gen.DataWrap); ok {
		wrap, _ = w.(bool)
	}
	want := rows*(cols-1) + (rows-1)*cols
	if wrap {
		want = 2 * rows * cols
		if rows < 3 {
			want -= cols // wrap edges collapse onto lattice edges
		}
		if cols < 3 {
			want -= rows
		}
	}
	if got := v.simpleEdgeCount(); got != want {
		r.fail(prop, "%d lattice edges, want %d for %dx%d wrap=%t", got, want, rows, cols, wrap)

		return
	}
	r.pass(prop)
}

func checkBinaryTree(r *Result, v *view) {
	const prop = "binary_tree"
	// Heap layout: node i has children 2i+1, 2i+2 when in range.
	want := v.n - 1
	if v.n == 0 {
		want = 0
	}
	if got := v.simpleEdgeCount(); got != want {
		r.fail(prop, "%d edges, want %d for a tree", got, want)

		return
	}
	for i := 0; i < v.n; i++ {
		for _, c := range []int{2*i + 1, 2*i + 2} {
			if c < v.n && !v.hasPair(i, c) {
				r.fail(prop, "missing heap edge %d-%d", i, c)

				return
			}
		}
	}
	r.pass(prop)
}

func checkTournament(r *Result, v *view) {
	const prop = "tournament"
	if !v.g.Spec.IsDirected() {
		r.fail(prop, "tournament demands a directed spec")

		return
	}
	// Exactly one arc per unordered pair.
	for i := 0; i < v.n; i++ {
		for j := i + 1; j < v.n; j++ {
			forward := contains(v.outAdj[i], j)
			backward := contains(v.outAdj[j], i)
			if forward == backward {
				r.fail(prop, "pair %d,%d has %d arc(s), want exactly 1", i, j, boolCount(forward)+boolCount(backward))

				return
			}
		}
	}
	r.pass(prop)
}

func checkRegular(r *Result, v *view) {
	const prop = "regularity"
	k, ok := v.dataInt(0, gen.DataTargetDegree)
	if !ok {
		k = regularityDegree(v.g.Spec)
	}
	for i := 0; i < v.n; i++ {
		if d := v.degree(i); d != k {
			r.fail(prop, "node %s has degree %d, want %d", v.g.Nodes[i].ID, d, k)

			return
		}
	}
	r.pass(prop)
}

func regularityDegree(s spec.GraphSpec) int {
	switch s.Regularity.Kind {
	case spec.Cubic:
		return 3
	case spec.SpecificRegular:
		return s.Regularity.K
	default:
		return 2
	}
}

// checkStronglyRegular verifies the parameter identity from the recorded
// generation parameters. The adjacency-count search itself is skipped: the
// construction realizes the parameters through a regular skeleton, not a
// verified (n,k,lambda,mu) adjacency structure.
func checkStronglyRegular(r *Result, v *view) {
	const prop = "strongly_regular"
	k, okK := v.dataInt(0, gen.DataSRGK)
	lambda, okL := v.dataInt(0, gen.DataSRGLambda)
	mu, okM := v.dataInt(0, gen.DataSRGMu)
	if !okK || !okL || !okM {
		r.fail(prop, "generation parameters not recorded")

		return
	}
	if k*(k-lambda-1) != (v.n-k-1)*mu {
		r.fail(prop, "(n=%d,k=%d,lambda=%d,mu=%d) fails k(k-lambda-1)=(n-k-1)mu", v.n, k, lambda, mu)

		return
	}
	r.skip(prop, "parameter identity holds; adjacency-count verification not implemented")
}

func checkFlowNetwork(r *Result, v *view) {
	const prop = "flow_network"
	source, sink := -1, -1
	for i := 0; i < v.n; i++ {
		role, _ := v.data(i, gen.DataFlowRole)
		switch role {
		case "source":
			source = i
		case "sink":
			sink = i
		}
	}
	if source < 0 || sink < 0 {
		r.fail(prop, "source/sink roles not recorded")

		return
	}
	if len(v.inAdj[source]) != 0 {
		r.fail(prop, "source %s has incoming arcs", v.g.Nodes[source].ID)

		return
	}
	if len(v.outAdj[sink]) != 0 {
		r.fail(prop, "sink %s has outgoing arcs", v.g.Nodes[sink].ID)

		return
	}
	r.pass(prop)
}

func checkEulerian(r *Result, v *view) {
	const prop = "eulerian"
	circuit := v.g.Spec.Eulerian.Kind == spec.EulerianCircuit

	if v.g.Spec.IsDirected() {
		for i := 0; i < v.n; i++ {
			diff := len(v.outAdj[i]) - len(v.inAdj[i])
			if circuit && diff != 0 {
				r.fail(prop, "node %s has in/out imbalance %d on a circuit spec", v.g.Nodes[i].ID, diff)

				return
			}
		}
		r.pass(prop)

		return
	}

	odd := 0
	for i := 0; i < v.n; i++ {
		if v.degree(i)%2 == 1 {
			odd++
		}
	}
	if circuit && odd != 0 {
		r.fail(prop, "%d odd-degree node(s) on a circuit spec", odd)

		return
	}
	if !circuit && odd != 0 && odd != 2 {
		r.fail(prop, "%d odd-degree node(s), want 0 or 2 for a path", odd)

		return
	}
	r.pass(prop)
}

// checkHamiltonian walks the recorded backbone permutation and verifies
// each consecutive pair is adjacent.
func checkHamiltonian(r *Result, v *view) {
	const prop = "hamiltonian"
	order := make([]int, v.n)
	for i := range order {
		order[i] = -1
	}
	for i := 0; i < v.n; i++ {
		pos, ok := v.dataInt(i, gen.DataHamiltonianPos)
		if !ok || pos < 0 || pos >= v.n || order[pos] >= 0 {
			r.fail(prop, "backbone positions do not form a permutation")

			return
		}
		order[pos] = i
	}

	for p := 0; p < v.n-1; p++ {
		if !v.hasPair(order[p], order[p+1]) {
			r.fail(prop, "backbone break between positions %d and %d", p, p+1)

			return
		}
	}
	if v.g.Spec.Hamiltonian.Kind == spec.HamiltonianCycle && v.n >= 3 {
		if !v.hasPair(order[v.n-1], order[0]) {
			r.fail(prop, "backbone cycle not closed")

			return
		}
	}
	r.pass(prop)
}

// checkMinDegree validates the degree lower bound, a necessary condition
// for k-connectivity. The exact connectivity computation is skipped.
func checkMinDegree(r *Result, v *view, prop string, k int) {
	for i := 0; i < v.n; i++ {
		if d := v.degree(i); d < k {
			r.fail(prop, "node %s has degree %d < k=%d", v.g.Nodes[i].ID, d, k)

			return
		}
	}
	_, count := v.components()
	if count > 1 {
		r.fail(prop, "%d components; a k-connected graph is connected", count)

		return
	}
	r.pass(prop)
}

func checkTreewidth(r *Result, v *view) {
	const prop = "treewidth"
	width, ok := v.dataInt(0, gen.DataTreewidth)
	if !ok {
		r.skip(prop, "construction width not recorded")

		return
	}
	if want := v.g.Spec.Treewidth.Width; width != want {
		r.fail(prop, "recorded width %d, want %d", width, want)

		return
	}
	// A width-w k-tree on n > w nodes has w*n - w(w+1)/2 edges.
	if v.n > width {
		want := width*v.n - width*(width+1)/2
		if got := v.simpleEdgeCount(); got != want {
			r.fail(prop, "%d edges, want %d for a width-%d k-tree", got, want, width)

			return
		}
	}
	r.pass(prop)
}

// checkColoring verifies the recorded coloring is proper and uses at most
// k colors.
func checkColoring(r *Result, v *view) {
	const prop = "colorability"
	k := v.g.Spec.Colorability.K
	colors := map[int]bool{}
	color := make([]int, v.n)
	for i := 0; i < v.n; i++ {
		c, ok := v.dataInt(i, gen.DataColor)
		if !ok {
			r.fail(prop, "node %s carries no color", v.g.Nodes[i].ID)

			return
		}
		color[i] = c
		colors[c] = true
	}
	if len(colors) > k {
		r.fail(prop, "%d colors used, budget %d", len(colors), k)

		return
	}
	for _, e := range v.g.Edges {
		i, j := v.idx[e.Source], v.idx[e.Target]
		if i != j && color[i] == color[j] {
			r.fail(prop, "edge %s-%s joins two color-%d nodes", e.Source, e.Target, color[i])

			return
		}
	}
	r.pass(prop)
}

func contains(list []int, x int) bool {
	for _, y := range list {
		if y == x {
			return true
		}
	}

	return false
}

func boolCount(b bool) int {
	if b {
		return 1
	}

	return 0
}
