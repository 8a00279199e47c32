// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// dispatch.go — the ordered base-structure dispatch.
//
// Contract (load-bearing):
//   - dispatchOrder is evaluated top to bottom; the FIRST matching entry
//     builds the base structure and no other entry runs. Several axes can
//     co-occur in one spec; the earlier entry wins and later axes are either
//     realized as metadata or left to the validator.
//   - Entries marked fixed pin their own edge count: the density pass then
//     runs only its closing guarantees on them.
//   - The final entry always matches (the connectivity×cycles 2×2 default),
//     so selectFamily never fails to choose.
//
// The priority order is: complete-bipartite → bipartite variants → star →
// wheel → grid → toroidal → binary tree → tournament → regular → strongly
// regular → flow network → Eulerian → Hamiltonian → k-vertex-connected →
// k-edge-connected → treewidth → k-colorable → structural classes (chordal,
// interval, permutation, comparability, perfect, split, cograph, claw-free,
// line graph, self-complementary) → network families (scale-free,
// small-world, modular, core-periphery) → symmetry (vertex-transitive,
// edge-transitive, circulant) → girth → spectral → robustness → extremal →
// product → minor-free (planar, outerplanar, series-parallel, cactus, named
// minor) → standard connectivity×cycles default.
package gen

import "github.com/katalvlaran/graphgen/spec"

// dispatchEntry pairs a spec predicate with the generator it gates.
type dispatchEntry struct {
	// name labels the structural family for diagnostics and tests.
	name string
	// match reports whether the spec requests this family.
	match func(spec.GraphSpec) bool
	// build appends the family's base structure to the state.
	build func(*state) error
	// fixed marks families whose edge count is exact.
	fixed bool
}

// dispatchOrder is the single source of truth for family priority.
var dispatchOrder = []dispatchEntry{
	// Partition structures.
	{"complete_bipartite", func(s spec.GraphSpec) bool { return s.CompleteBipartite != nil }, buildCompleteBipartite, true},
	{"bipartite", func(s spec.GraphSpec) bool { return s.Partiteness != nil && s.Partiteness.Kind == spec.Bipartite }, buildBipartite, false},
	{"k_partite", func(s spec.GraphSpec) bool { return s.Partiteness != nil && s.Partiteness.Kind == spec.KPartite }, buildKPartite, false},

	// Special structures with exact shapes.
	{"star", func(s spec.GraphSpec) bool { return s.Star != nil }, buildStar, true},
	{"wheel", func(s spec.GraphSpec) bool { return s.Wheel != nil }, buildWheel, true},
	{"grid", func(s spec.GraphSpec) bool { return s.Grid != nil }, buildGrid, true},
	{"toroidal", func(s spec.GraphSpec) bool { return s.Toroidal != nil }, buildToroidal, true},
	{"binary_tree", func(s spec.GraphSpec) bool { return s.BinaryTree != nil }, buildBinaryTree, true},
	{"tournament", func(s spec.GraphSpec) bool { return s.Tournament != nil }, buildTournament, true},

	// Degree constraints.
	{"regular", func(s spec.GraphSpec) bool { return s.Regularity != nil }, buildRegular, true},
	{"strongly_regular", func(s spec.GraphSpec) bool { return s.StronglyRegular != nil }, buildStronglyRegular, true},

	// Flow and traversability.
	{"flow_network", func(s spec.GraphSpec) bool { return s.FlowNetwork != nil }, buildFlowNetwork, true},
	{"eulerian", func(s spec.GraphSpec) bool { return s.Eulerian != nil }, buildEulerian, true},
	{"hamiltonian", func(s spec.GraphSpec) bool { return s.Hamiltonian != nil }, buildHamiltonian, false},
	{"k_vertex_connected", func(s spec.GraphSpec) bool { return s.VertexConnectivity != nil }, buildKVertexConnected, true},
	{"k_edge_connected", func(s spec.GraphSpec) bool { return s.EdgeConnectivity != nil }, buildKEdgeConnected, true},
	{"treewidth", func(s spec.GraphSpec) bool { return s.Treewidth != nil }, buildTreewidth, true},
	{"k_colorable", func(s spec.GraphSpec) bool { return s.Colorability != nil }, buildKColorable, true},

	// Structural graph classes.
	{"chordal", func(s spec.GraphSpec) bool { return s.Chordal != nil }, buildChordal, true},
	{"interval", func(s spec.GraphSpec) bool { return s.Interval != nil }, buildInterval, true},
	{"permutation", func(s spec.GraphSpec) bool { return s.Permutation != nil }, buildPermutation, true},
	{"comparability", func(s spec.GraphSpec) bool { return s.Comparability != nil }, buildComparability, true},
	{"perfect", func(s spec.GraphSpec) bool { return s.Perfect != nil }, buildPerfect, true},
	{"split", func(s spec.GraphSpec) bool { return s.Split != nil }, buildSplit, true},
	{"cograph", func(s spec.GraphSpec) bool { return s.Cograph != nil }, buildCograph, true},
	{"claw_free", func(s spec.GraphSpec) bool { return s.ClawFree != nil }, buildClawFree, true},
	{"line_graph", func(s spec.GraphSpec) bool { return s.LineGraph != nil }, buildLineGraph, true},
	{"self_complementary", func(s spec.GraphSpec) bool { return s.SelfComplementary != nil }, buildSelfComplementary, true},

	// Network-science families.
	{"scale_free", func(s spec.GraphSpec) bool { return s.ScaleFree != nil }, buildScaleFree, true},
	{"small_world", func(s spec.GraphSpec) bool { return s.SmallWorld != nil }, buildSmallWorld, true},
	{"modular", func(s spec.GraphSpec) bool { return s.Modular != nil }, buildModular, true},
	{"core_periphery", func(s spec.GraphSpec) bool { return s.CorePeriphery != nil }, buildCorePeriphery, true},

	// Symmetry families.
	{"vertex_transitive", func(s spec.GraphSpec) bool { return s.VertexTransitive != nil }, buildVertexTransitive, true},
	{"edge_transitive", func(s spec.GraphSpec) bool { return s.EdgeTransitive != nil }, buildEdgeTransitive, true},
	{"circulant", func(s spec.GraphSpec) bool { return s.Circulant != nil }, buildCirculant, true},

	// Girth pins the shortest cycle, so its structure is exact.
	{"girth", func(s spec.GraphSpec) bool { return s.Girth != nil }, buildGirth, true},

	// Classification families: standard structure + attached metadata.
	{"spectral", func(s spec.GraphSpec) bool {
		return s.SpectralGap != nil || s.Expander != nil || s.AlgebraicConnectivity != nil
	}, buildSpectralFamily, false},
	{"robustness", func(s spec.GraphSpec) bool {
		return s.Toughness != nil || s.Integrity != nil
	}, buildRobustnessFamily, false},
	{"extremal", func(s spec.GraphSpec) bool {
		return s.IndependenceNumber != nil || s.VertexCoverNumber != nil ||
			s.DominationNumber != nil || s.CliqueNumber != nil
	}, buildExtremalFamily, false},
	{"product", func(s spec.GraphSpec) bool { return s.Product != nil }, buildProductFamily, false},

	// Minor-free and topological families.
	{"outerplanar", func(s spec.GraphSpec) bool { return s.Outerplanar != nil }, buildOuterplanar, true},
	{"series_parallel", func(s spec.GraphSpec) bool { return s.SeriesParallel != nil }, buildSeriesParallel, true},
	{"cactus", func(s spec.GraphSpec) bool { return s.Cactus != nil }, buildCactus, true},
	{"planar", func(s spec.GraphSpec) bool { return s.Planar != nil }, buildPlanar, true},
	{"minor_free", func(s spec.GraphSpec) bool { return s.MinorFree != nil }, buildMinorFreeFamily, false},

	// Default: connectivity×cycles standard dispatch. Always matches.
	{"standard", func(spec.GraphSpec) bool { return true }, buildStandard, false},
}

// selectFamily returns the first matching dispatch entry for s.
func selectFamily(s spec.GraphSpec) dispatchEntry {
	for _, entry := range dispatchOrder {
		if entry.match(s) {
			return entry
		}
	}

	// Unreachable: the final entry matches everything.
	return dispatchOrder[len(dispatchOrder)-1]
}

// generateBaseStructure runs the selected family's generator and records
// whether its edge count is fixed.
func generateBaseStructure(st *state) error {
	entry := selectFamily(st.spec)
	if entry.fixed {
		st.markFixed()
	}

	return entry.build(st)
}
