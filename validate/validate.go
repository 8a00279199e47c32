// SPDX-License-Identifier: MIT
// Package: graphgen/validate
//
// validate.go — the orchestrator and the nine core-axis checks.
//
// Contract:
//   - Validate reads the spec embedded in the graph; it never mutates g.
//   - Check order is fixed: core axes first, then each requested advanced
//     axis in declaration order. Equal inputs yield identical reports.
//   - Tolerances from constraints.Analyze relax density, completeness, and
//     connectivity exactly as the analysis dictates, never more.
package validate

import (
	"math"

	"github.com/katalvlaran/graphgen/constraints"
	"github.com/katalvlaran/graphgen/core"
	"github.com/katalvlaran/graphgen/spec"
)

// Density tier nominal fractions of the admissible pair count.
const (
	sparseNominal   = 0.15
	moderateNominal = 0.40
	denseNominal    = 0.70
)

// Validate checks g against its embedded spec and returns the full report.
func Validate(g *core.Graph) Result {
	v := newView(g)
	analysis := constraints.Analyze(g.Spec)

	r := Result{Warnings: analysis.Issues}

	checkWeights(&r, v)
	checkCycles(&r, v)
	checkConnectivity(&r, v, analysis.Tolerances)
	checkSelfLoops(&r, v)
	checkMultiplicity(&r, v)
	checkSchema(&r, v)
	checkPartiteness(&r, v)
	checkDensity(&r, v, analysis.Tolerances)
	checkCompleteness(&r, v, analysis.Tolerances)

	checkStructuralAxes(&r, v)
	checkClassAxes(&r, v)
	checkNetworkAxes(&r, v)
	checkExtremalAxes(&r, v)

	r.Valid = len(r.Failures()) == 0

	return r
}

// checkWeights: weighted specs carry a weight on every edge, unweighted
// specs on none.
func checkWeights(r *Result, v *view) {
	const prop = "weighting"
	weighted := v.g.Spec.IsWeighted()
	for _, e := range v.g.Edges {
		if weighted && e.Weight == nil {
			r.fail(prop, "edge %s-%s missing weight on a weighted spec", e.Source, e.Target)

			return
		}
		if !weighted && e.Weight != nil {
			r.fail(prop, "edge %s-%s carries a weight on an unweighted spec", e.Source, e.Target)

			return
		}
	}
	r.pass(prop)
}

// checkCycles: acyclic specs contain no cycle. Directed graphs run a
// three-color DFS; undirected graphs a parent-skipping DFS over the simple
// adjacency, with self-loops and parallel pairs counted as cycles first.
func checkCycles(r *Result, v *view) {
	const prop = "cycles"
	if !v.g.Spec.IsAcyclic() {
		r.pass(prop)

		return
	}

	if v.selfLoops > 0 {
		r.fail(prop, "%d self-loop(s) on an acyclic spec", v.selfLoops)

		return
	}
	if !v.g.Spec.IsDirected() && v.parallelPairs() > 0 {
		r.fail(prop, "parallel undirected edges close a two-edge cycle")

		return
	}

	if v.g.Spec.IsDirected() {
		if hasDirectedCycle(v) {
			r.fail(prop, "directed cycle found")

			return
		}
	} else if hasUndirectedCycle(v) {
		r.fail(prop, "undirected cycle found")

		return
	}
	r.pass(prop)
}

// checkConnectivity: connected means one component, disconnected at least
// two. Unconstrained connectivity always passes.
func checkConnectivity(r *Result, v *view, tol constraints.Tolerances) {
	const prop = "connectivity"
	if v.n == 0 {
		r.pass(prop)

		return
	}

	_, count := v.components()
	switch v.g.Spec.Connectivity {
	case spec.Connected:
		if count != 1 {
			if tol.RelaxConnectivity {
				r.skip(prop, "%d components accepted: structural axis forces the layout", count)

				return
			}
			r.fail(prop, "expected 1 component, found %d", count)

			return
		}
	case spec.Disconnected:
		if count < 2 {
			r.fail(prop, "expected >= 2 components, found %d", count)

			return
		}
	}
	r.pass(prop)
}

// checkSelfLoops: loop-allowing specs exhibit at least one loop, loop-free
// specs none.
func checkSelfLoops(r *Result, v *view) {
	const prop = "self_loops"
	if v.g.Spec.AllowsSelfLoops() {
		if v.selfLoops == 0 {
			r.fail(prop, "spec allows self-loops but none present")

			return
		}
	} else if v.selfLoops > 0 {
		r.fail(prop, "%d self-loop(s) on a loop-free spec", v.selfLoops)

		return
	}
	r.pass(prop)
}

// checkMultiplicity: simple specs carry no parallel pair; multigraph specs
// exhibit at least one, except where parallels would close a forbidden
// cycle.
func checkMultiplicity(r *Result, v *view) {
	const prop = "edge_multiplicity"
	parallel := v.parallelPairs()
	if v.g.Spec.IsMultigraph() {
		if parallel == 0 {
			if v.g.Spec.IsAcyclic() && !v.g.Spec.IsDirected() {
				r.skip(prop, "parallel edges would close a cycle on an undirected acyclic spec")

				return
			}
			r.fail(prop, "multigraph spec but no parallel edge present")

			return
		}
	} else if parallel > 0 {
		r.fail(prop, "%d parallel pair(s) on a simple-edges spec", parallel)

		return
	}
	r.pass(prop)
}

// checkSchema: heterogeneous graphs carry node types when any were
// configured; homogeneous graphs carry none.
func checkSchema(r *Result, v *view) {
	const prop = "schema"
	typed := 0
	for _, node := range v.g.Nodes {
		if node.Type != "" {
			typed++
		}
	}

	if v.g.Spec.IsHeterogeneous() {
		if typed == 0 {
			r.skip(prop, "heterogeneous spec but no type configuration was recorded")

			return
		}
		if typed != v.n {
			r.fail(prop, "%d of %d nodes untyped on a heterogeneous spec", v.n-typed, v.n)

			return
		}
	} else if typed > 0 {
		r.fail(prop, "%d typed node(s) on a homogeneous spec", typed)

		return
	}
	r.pass(prop)
}

// checkPartiteness runs the BFS 2-coloring for bipartite demands and the
// class-label check for k-partite ones.
func checkPartiteness(r *Result, v *view) {
	const prop = "partiteness"
	s := v.g.Spec
	kPartite := s.Partiteness != nil && s.Partiteness.Kind == spec.KPartite
	if !s.RequiresBipartition() && !kPartite {
		return
	}

	if kPartite {
		checkPartiteClasses(r, v, prop)

		return
	}

	if ok, u, w := CheckBipartiteWithBFS(v.g); !ok {
		r.fail(prop, "odd cycle through %s and %s breaks bipartiteness", u, w)

		return
	}
	// Declared partitions must agree with the edges.
	for _, e := range v.g.Edges {
		i, j := v.idx[e.Source], v.idx[e.Target]
		pi, pj := v.g.Nodes[i].Partition, v.g.Nodes[j].Partition
		if pi != core.NoPartition && pi == pj {
			r.fail(prop, "edge %s-%s joins two %s-partition nodes", e.Source, e.Target, pi)

			return
		}
	}
	r.pass(prop)
}

// checkDensity compares the simple edge count against the tier's nominal
// band of the admissible pair count.
func checkDensity(r *Result, v *view, tol constraints.Tolerances) {
	const prop = "density"
	s := v.g.Spec
	if s.Density == spec.AnyDensity || s.IsComplete() {
		return
	}
	if tol.RelaxDensity {
		r.skip(prop, "density tier advisory: structure pins the edge count")

		return
	}

	admissible := admissiblePairCount(v)
	if admissible == 0 {
		r.pass(prop)

		return
	}

	nominal := map[spec.Density]float64{
		spec.Sparse:   sparseNominal,
		spec.Moderate: moderateNominal,
		spec.Dense:    denseNominal,
	}[s.Density]
	ratio := float64(directedAwareEdgeCount(v)) / float64(admissible)
	if math.Abs(ratio-nominal) > tol.DensitySlack {
		r.fail(prop, "edge ratio %.3f outside %s band %.2f±%.2f", ratio, s.Density, nominal, tol.DensitySlack)

		return
	}
	r.pass(prop)
}

// checkCompleteness: complete means every admissible pair is joined.
func checkCompleteness(r *Result, v *view, tol constraints.Tolerances) {
	const prop = "completeness"
	s := v.g.Spec
	if !s.IsComplete() {
		// Incomplete is permissive: small or pinned structures may happen
		// to saturate every pair (K_3 as a triangle, K_4 as a wheel).
		r.pass(prop)

		return
	}

	have, want := directedAwareEdgeCount(v), admissiblePairCount(v)
	if have < want {
		if tol.RelaxCompleteness && float64(have) >= float64(want)*(1-tol.DensitySlack) {
			r.skip(prop, "near-complete accepted: %d of %d pairs joined under a structural pin", have, want)

			return
		}
		r.fail(prop, "%d of %d admissible pairs joined", have, want)

		return
	}
	r.pass(prop)
}

// admissiblePairCount is the maximum simple pair count the spec admits:
// ordered pairs for directed specs, m*n across a bipartition, and only
// within-component pairs for a disconnected spec.
func admissiblePairCount(v *view) int {
	n := v.n
	ordered := v.g.Spec.IsDirected() && !v.g.Spec.IsAcyclic()

	if v.g.Spec.RequiresBipartition() {
		left := 0
		for _, node := range v.g.Nodes {
			if node.Partition == core.PartitionLeft {
				left++
			}
		}
		cross := left * (n - left)
		if ordered {
			return 2 * cross
		}

		return cross
	}

	if v.g.Spec.Connectivity == spec.Disconnected {
		labels, count := v.components()
		sizes := make([]int, count)
		for _, c := range labels {
			sizes[c]++
		}
		pairs := 0
		for _, size := range sizes {
			pairs += size * (size - 1) / 2
		}
		if ordered {
			return 2 * pairs
		}

		return pairs
	}

	if ordered {
		return n * (n - 1)
	}

	return n * (n - 1) / 2
}

// directedAwareEdgeCount counts distinct joined pairs in the same units as
// admissiblePairCount.
func directedAwareEdgeCount(v *view) int {
	if v.g.Spec.IsDirected() && !v.g.Spec.IsAcyclic() {
		total := 0
		for _, nbrs := range v.outAdj {
			total += len(nbrs)
		}

		return total
	}
	if v.g.Spec.IsDirected() {
		// DAG accounting: one orientation per pair.
		return v.simpleEdgeCount()
	}

	return v.simpleEdgeCount()
}
