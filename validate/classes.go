// SPDX-License-Identifier: MIT
// Package: graphgen/validate
//
// classes.go — checks for the structural graph classes.
//
// Contract: chordality and P4-freeness are decided exactly below
// exactSearchLimit nodes; above it the check degrades to the recorded
// construction metadata or an explicit skip. The split, coloring-free, and
// edge-count identities are exact at any size.
package validate

import (
	"sort"

	"github.com/katalvlaran/graphgen/gen"
)

// exactSearchLimit bounds the node count for the exponential or
// quartic-time exact class checks.
const exactSearchLimit = 24

// checkClassAxes dispatches the structural class checks.
func checkClassAxes(r *Result, v *view) {
	s := v.g.Spec
	if s.Chordal != nil {
		checkChordal(r, v)
	}
	if s.Interval != nil {
		checkInterval(r, v)
	}
	if s.Permutation != nil {
		checkPermutation(r, v)
	}
	if s.Comparability != nil {
		checkComparability(r, v)
	}
	if s.Perfect != nil {
		checkPerfect(r, v)
	}
	if s.Split != nil {
		checkSplit(r, v)
	}
	if s.Cograph != nil {
		checkCograph(r, v)
	}
	if s.ClawFree != nil {
		checkClawFree(r, v)
	}
	if s.LineGraph != nil {
		checkLineGraph(r, v)
	}
	if s.SelfComplementary != nil {
		checkSelfComplementary(r, v)
	}
}

// checkChordal searches for a perfect elimination ordering by repeatedly
// removing a simplicial vertex. Exact, O(n^3) worst case.
func checkChordal(r *Result, v *view) {
	const prop = "chordal"
	if v.n > exactSearchLimit {
		r.skip(prop, "exact chordality check capped at %d nodes, graph has %d", exactSearchLimit, v.n)

		return
	}

	alive := make([]bool, v.n)
	for i := range alive {
		alive[i] = true
	}

	for removed := 0; removed < v.n; removed++ {
		found := -1
		for i := 0; i < v.n && found < 0; i++ {
			if alive[i] && isSimplicial(v, i, alive) {
				found = i
			}
		}
		if found < 0 {
			r.fail(prop, "no simplicial vertex among the remaining %d: no perfect elimination ordering", v.n-removed)

			return
		}
		alive[found] = false
	}
	r.pass(prop)
}

// isSimplicial reports whether i's alive neighborhood is a clique.
func isSimplicial(v *view, i int, alive []bool) bool {
	var nbrs []int
	for _, j := range v.simpleAdj[i] {
		if alive[j] {
			nbrs = append(nbrs, j)
		}
	}
	for a := 0; a < len(nbrs); a++ {
		for b := a + 1; b < len(nbrs); b++ {
			if !v.hasPair(nbrs[a], nbrs[b]) {
				return false
			}
		}
	}

	return true
}

// checkInterval rebuilds the intersection graph from the recorded intervals
// and compares it edge for edge.
func checkInterval(r *Result, v *view) {
	const prop = "interval"
	starts := make([]float64, v.n)
	ends := make([]float64, v.n)
	for i := 0; i < v.n; i++ {
		s, okS := v.dataFloat(i, gen.DataIntervalStart)
		e, okE := v.dataFloat(i, gen.DataIntervalEnd)
		if !okS || !okE {
			r.fail(prop, "node %s carries no interval", v.g.Nodes[i].ID)

			return
		}
		starts[i], ends[i] = s, e
	}

	for i := 0; i < v.n; i++ {
		for j := i + 1; j < v.n; j++ {
			overlap := starts[i] <= ends[j] && starts[j] <= ends[i]
			if overlap != v.hasPair(i, j) {
				r.fail(prop, "intervals of %s and %s disagree with adjacency", v.g.Nodes[i].ID, v.g.Nodes[j].ID)

				return
			}
		}
	}
	r.pass(prop)
}

// checkPermutation verifies adjacency equals inversion in the recorded
// permutation.
func checkPermutation(r *Result, v *view) {
	const prop = "permutation"
	perm := make([]int, v.n)
	for i := 0; i < v.n; i++ {
		p, ok := v.dataInt(i, gen.DataPermValue)
		if !ok {
			r.fail(prop, "node %s carries no permutation value", v.g.Nodes[i].ID)

			return
		}
		perm[i] = p
	}

	for i := 0; i < v.n; i++ {
		for j := i + 1; j < v.n; j++ {
			inverted := perm[i] > perm[j]
			if inverted != v.hasPair(i, j) {
				r.fail(prop, "inversion of %s,%s disagrees with adjacency", v.g.Nodes[i].ID, v.g.Nodes[j].ID)

				return
			}
		}
	}
	r.pass(prop)
}

// checkComparability verifies every directed edge follows the recorded
// topological order.
func checkComparability(r *Result, v *view) {
	const prop = "comparability"
	order := make([]int, v.n)
	for i := 0; i < v.n; i++ {
		o, ok := v.dataInt(i, gen.DataTopoOrder)
		if !ok {
			r.fail(prop, "node %s carries no order position", v.g.Nodes[i].ID)

			return
		}
		order[i] = o
	}

	if v.g.Spec.IsDirected() {
		for _, e := range v.g.Edges {
			i, j := v.idx[e.Source], v.idx[e.Target]
			if order[i] >= order[j] {
				r.fail(prop, "arc %s->%s runs against the recorded order", e.Source, e.Target)

				return
			}
		}
	}
	r.pass(prop)
}

// checkPerfect trusts the recorded delegate base; the strong perfect graph
// condition (no odd hole or antihole) is only searched exactly on small
// graphs via chordality of the delegate classes.
func checkPerfect(r *Result, v *view) {
	const prop = "perfect"
	base, ok := v.data(0, gen.DataPerfectBase)
	if !ok {
		r.skip(prop, "delegate base class not recorded")

		return
	}
	r.skip(prop, "built as perfect via %v base; odd-hole search not implemented", base)
}

// checkSplit partitions by the recorded roles: the clique side must be
// pairwise adjacent, the independent side pairwise non-adjacent.
func checkSplit(r *Result, v *view) {
	const prop = "split"
	var clique, indep []int
	for i := 0; i < v.n; i++ {
		role, _ := v.data(i, gen.DataSplitRole)
		switch role {
		case "clique":
			clique = append(clique, i)
		case "independent":
			indep = append(indep, i)
		default:
			r.fail(prop, "node %s carries no split role", v.g.Nodes[i].ID)

			return
		}
	}

	for a := 0; a < len(clique); a++ {
		for b := a + 1; b < len(clique); b++ {
			if !v.hasPair(clique[a], clique[b]) {
				r.fail(prop, "clique side misses pair %s-%s",
					v.g.Nodes[clique[a]].ID, v.g.Nodes[clique[b]].ID)

				return
			}
		}
	}
	for a := 0; a < len(indep); a++ {
		for b := a + 1; b < len(indep); b++ {
			if v.hasPair(indep[a], indep[b]) {
				r.fail(prop, "independent side joins pair %s-%s",
					v.g.Nodes[indep[a]].ID, v.g.Nodes[indep[b]].ID)

				return
			}
		}
	}
	r.pass(prop)
}

// checkCograph searches for an induced P4, the forbidden subgraph of
// cographs. Exact, O(n^4).
func checkCograph(r *Result, v *view) {
	const prop = "cograph"
	if v.n > exactSearchLimit {
		r.skip(prop, "exact P4-freeness check capped at %d nodes, graph has %d", exactSearchLimit, v.n)

		return
	}
	if a, b, c, d, found := findInducedP4(v); found {
		r.fail(prop, "induced P4 %s-%s-%s-%s found",
			v.g.Nodes[a].ID, v.g.Nodes[b].ID, v.g.Nodes[c].ID, v.g.Nodes[d].ID)

		return
	}
	r.pass(prop)
}

// findInducedP4 scans ordered quadruples for a path a-b-c-d with no chords.
func findInducedP4(v *view) (a, b, c, d int, found bool) {
	for a = 0; a < v.n; a++ {
		for _, b = range v.simpleAdj[a] {
			for _, c = range v.simpleAdj[b] {
				if c == a || v.hasPair(a, c) {
					continue
				}
				for _, d = range v.simpleAdj[c] {
					if d == a || d == b {
						continue
					}
					if !v.hasPair(a, d) && !v.hasPair(b, d) {
						return a, b, c, d, true
					}
				}
			}
		}
	}

	return 0, 0, 0, 0, false
}

// checkClawFree searches for an induced K_{1,3}. Exact, O(n * d^3).
func checkClawFree(r *Result, v *view) {
	const prop = "claw_free"
	for center := 0; center < v.n; center++ {
		nbrs := v.simpleAdj[center]
		for a := 0; a < len(nbrs); a++ {
			for b := a + 1; b < len(nbrs); b++ {
				if v.hasPair(nbrs[a], nbrs[b]) {
					continue
				}
				for c := b + 1; c < len(nbrs); c++ {
					if !v.hasPair(nbrs[a], nbrs[c]) && !v.hasPair(nbrs[b], nbrs[c]) {
						r.fail(prop, "claw centered at %s over %s,%s,%s",
							v.g.Nodes[center].ID, v.g.Nodes[nbrs[a]].ID,
							v.g.Nodes[nbrs[b]].ID, v.g.Nodes[nbrs[c]].ID)

						return
					}
				}
			}
		}
	}
	r.pass(prop)
}

// checkLineGraph verifies the recorded base edges: two vertices are
// adjacent iff their base edges share an endpoint.
func checkLineGraph(r *Result, v *view) {
	const prop = "line_graph"
	base := make([][2]int, v.n)
	for i := 0; i < v.n; i++ {
		raw, ok := v.data(i, gen.DataBaseEdge)
		if !ok {
			r.fail(prop, "node %s carries no base edge", v.g.Nodes[i].ID)

			return
		}
		pair, ok := raw.([2]int)
		if !ok {
			r.fail(prop, "node %s base edge malformed", v.g.Nodes[i].ID)

			return
		}
		base[i] = pair
	}

	for i := 0; i < v.n; i++ {
		for j := i + 1; j < v.n; j++ {
			share := base[i][0] == base[j][0] || base[i][0] == base[j][1] ||
				base[i][1] == base[j][0] || base[i][1] == base[j][1]
			if share != v.hasPair(i, j) {
				r.fail(prop, "base edges of %s and %s disagree with adjacency", v.g.Nodes[i].ID, v.g.Nodes[j].ID)

				return
			}
		}
	}
	r.pass(prop)
}

// checkSelfComplementary verifies the n(n-1)/4 edge-count identity and the
// n mod 4 membership; isomorphism to the complement is not searched.
func checkSelfComplementary(r *Result, v *view) {
	const prop = "self_complementary"
	if m := v.n % 4; m != 0 && m != 1 {
		r.fail(prop, "n=%d is not 0 or 1 mod 4", v.n)

		return
	}
	if got, want := v.simpleEdgeCount(), v.n*(v.n-1)/4; got != want {
		r.fail(prop, "%d edges, want exactly %d", got, want)

		return
	}
	r.skip(prop, "edge-count identity holds; complement isomorphism not searched")
}

// degreeSequence returns the sorted simple degree sequence.
func degreeSequence(v *view) []int {
	seq := make([]int, v.n)
	for i := range seq {
		seq[i] = v.degree(i)
	}
	sort.Ints(seq)

	return seq
}
