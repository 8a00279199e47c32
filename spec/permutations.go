// SPDX-License-Identifier: MIT
// Package: graphgen/spec
//
// permutations.go — exhaustive core-axis cross-product for test matrices.
//
// Contract:
//   - CorePermutations enumerates every combination of the nine core axes
//     (advanced axes stay nil) in a fixed nested order, filtered by IsValid.
//   - Deterministic output order: the enumeration nests in the declaration
//     order of the core axes, innermost last.
//
// Complexity: O(2^7 · 3 · 4) combinations generated, each O(1).
package spec

// Core-axis domains, in enumeration order. Kept as package-level slices so
// tests can assert coverage against the same source of truth.
var (
	directionalities = []Directionality{Undirected, Directed}
	weightings       = []Weighting{Unweighted, Weighted}
	cycleModes       = []Cycles{CyclesAllowed, Acyclic}
	connectivities   = []Connectivity{AnyConnectivity, Connected, Disconnected}
	schemas          = []Schema{Homogeneous, Heterogeneous}
	multiplicities   = []EdgeMultiplicity{SimpleEdges, Multigraph}
	loopModes        = []SelfLoops{LoopsDisallowed, LoopsAllowed}
	densities        = []Density{AnyDensity, Sparse, Moderate, Dense}
	completenesses   = []Completeness{Incomplete, Complete}
)

// CorePermutations returns every definitionally valid combination of the
// nine core axes. Used to drive broad generate→validate test matrices.
func CorePermutations() []GraphSpec {
	out := make([]GraphSpec, 0, 1024)

	for _, dir := range directionalities {
		for _, w := range weightings {
			for _, cyc := range cycleModes {
				for _, conn := range connectivities {
					for _, sch := range schemas {
						for _, mult := range multiplicities {
							for _, loops := range loopModes {
								for _, dens := range densities {
									for _, comp := range completenesses {
										s := GraphSpec{
											Directionality:   dir,
											Weighting:        w,
											Cycles:           cyc,
											Connectivity:     conn,
											Schema:           sch,
											EdgeMultiplicity: mult,
											SelfLoops:        loops,
											Density:          dens,
											Completeness:     comp,
										}
										if IsValid(s) {
											out = append(out, s)
										}
									}
								}
							}
						}
					}
				}
			}
		}
	}

	return out
}
