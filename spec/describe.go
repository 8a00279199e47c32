// SPDX-License-Identifier: MIT
// Package: graphgen/spec
//
// describe.go — human-readable one-line axis summaries.
//
// Determinism: axis fragments are emitted in a fixed order, so equal specs
// describe identically (useful as a test-case label).
package spec

import (
	"fmt"
	"strings"
)

// Describe renders a compact, deterministic summary of every constrained
// axis, e.g. "directed, weighted, acyclic, connected, sparse, chordal".
// Core axes at their unconstrained default are elided except the structural
// four (directionality, weighting, cycles, connectivity), which always print.
// Complexity: O(number of axes).
func Describe(s GraphSpec) string {
	parts := make([]string, 0, 16)

	parts = append(parts,
		string(s.Directionality),
		string(s.Weighting),
		string(s.Cycles),
	)
	if s.Connectivity != AnyConnectivity {
		parts = append(parts, string(s.Connectivity))
	}
	if s.Schema == Heterogeneous {
		parts = append(parts, "heterogeneous")
	}
	if s.EdgeMultiplicity == Multigraph {
		parts = append(parts, "multigraph")
	}
	if s.SelfLoops == LoopsAllowed {
		parts = append(parts, "self-loops")
	}
	if s.Density != AnyDensity {
		parts = append(parts, string(s.Density))
	}
	if s.Completeness == Complete {
		parts = append(parts, "complete")
	}

	parts = append(parts, advancedFragments(s)...)

	return strings.Join(parts, ", ")
}

// advancedFragments lists constrained advanced axes in declaration order.
func advancedFragments(s GraphSpec) []string {
	var out []string
	add := func(cond bool, frag string) {
		if cond {
			out = append(out, frag)
		}
	}

	if s.Partiteness != nil {
		if s.Partiteness.Kind == KPartite {
			out = append(out, fmt.Sprintf("%d-partite", s.Partiteness.K))
		} else {
			out = append(out, "bipartite")
		}
	}
	if s.CompleteBipartite != nil {
		out = append(out, fmt.Sprintf("K_{%d,%d}", s.CompleteBipartite.M, s.CompleteBipartite.N))
	}
	add(s.Star != nil, "star")
	add(s.Wheel != nil, "wheel")
	add(s.Grid != nil, "grid")
	add(s.Toroidal != nil, "toroidal")
	add(s.BinaryTree != nil, "binary-tree")
	add(s.Tournament != nil, "tournament")
	add(s.Circulant != nil, "circulant")

	if s.Regularity != nil {
		switch s.Regularity.Kind {
		case Cubic:
			out = append(out, "cubic")
		case SpecificRegular:
			out = append(out, fmt.Sprintf("%d-regular", s.Regularity.K))
		default:
			out = append(out, "regular")
		}
	}
	if s.StronglyRegular != nil {
		out = append(out, fmt.Sprintf("srg(k=%d,λ=%d,μ=%d)",
			s.StronglyRegular.K, s.StronglyRegular.Lambda, s.StronglyRegular.Mu))
	}

	add(s.FlowNetwork != nil, "flow-network")
	if s.Eulerian != nil {
		out = append(out, "eulerian-"+string(s.Eulerian.Kind))
	}
	if s.Hamiltonian != nil {
		out = append(out, "hamiltonian-"+string(s.Hamiltonian.Kind))
	}
	if s.VertexConnectivity != nil {
		out = append(out, fmt.Sprintf("%d-vertex-connected", s.VertexConnectivity.K))
	}
	if s.EdgeConnectivity != nil {
		out = append(out, fmt.Sprintf("%d-edge-connected", s.EdgeConnectivity.K))
	}
	if s.Treewidth != nil {
		out = append(out, fmt.Sprintf("treewidth≤%d", s.Treewidth.Width))
	}
	if s.Colorability != nil {
		out = append(out, fmt.Sprintf("%d-colorable", s.Colorability.K))
	}

	add(s.Chordal != nil, "chordal")
	add(s.Interval != nil, "interval")
	add(s.Permutation != nil, "permutation")
	add(s.Comparability != nil, "comparability")
	add(s.Perfect != nil, "perfect")
	add(s.Split != nil, "split")
	add(s.Cograph != nil, "cograph")
	add(s.ClawFree != nil, "claw-free")
	add(s.LineGraph != nil, "line-graph")
	add(s.SelfComplementary != nil, "self-complementary")

	add(s.Planar != nil, "planar")
	add(s.Outerplanar != nil, "outerplanar")
	add(s.SeriesParallel != nil, "series-parallel")
	add(s.Cactus != nil, "cactus")
	if s.MinorFree != nil {
		out = append(out, s.MinorFree.Forbidden+"-minor-free")
	}

	add(s.ScaleFree != nil, "scale-free")
	add(s.SmallWorld != nil, "small-world")
	add(s.Modular != nil, "modular")
	add(s.CorePeriphery != nil, "core-periphery")

	add(s.VertexTransitive != nil, "vertex-transitive")
	add(s.EdgeTransitive != nil, "edge-transitive")

	add(s.SpectralGap != nil, "spectral-gap")
	add(s.Expander != nil, "expander")
	add(s.AlgebraicConnectivity != nil, "algebraic-connectivity")
	add(s.Toughness != nil, "tough")
	add(s.Integrity != nil, "integrity-bounded")

	if s.IndependenceNumber != nil {
		out = append(out, fmt.Sprintf("α=%d", s.IndependenceNumber.Target))
	}
	if s.VertexCoverNumber != nil {
		out = append(out, fmt.Sprintf("τ=%d", s.VertexCoverNumber.Target))
	}
	if s.DominationNumber != nil {
		out = append(out, fmt.Sprintf("γ=%d", s.DominationNumber.Target))
	}
	if s.CliqueNumber != nil {
		out = append(out, fmt.Sprintf("ω=%d", s.CliqueNumber.Target))
	}
	if s.Girth != nil {
		out = append(out, fmt.Sprintf("girth=%d", s.Girth.Target))
	}

	if s.Product != nil {
		out = append(out, string(s.Product.Kind)+"-product")
	}

	return out
}
