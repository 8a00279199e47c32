// Package graphgen is a graph specification, generation, and validation
// engine: describe the graph you need along structural axes, get a
// deterministic instance back, and check any instance against the spec it
// came from.
//
// 🚀 What is graphgen?
//
//	A seeded graph synthesis library that brings together:
//		• Axis specs: nine core axes (direction, weights, cycles, connectivity,
//		  schema, multiplicity, self-loops, density, completeness)
//		• Structural families: bipartite/k-partite, stars, wheels, grids,
//		  tournaments, k-regular, flow networks, Eulerian/Hamiltonian shapes
//		• Graph classes: chordal, interval, permutation, split, cograph and more
//		• Network science: scale-free, small-world, modular, core-periphery
//		• Tiered validation: metadata fast paths, exact small-n searches,
//		  honest skips where the property is NP-hard at size
//
// ✨ Why choose graphgen?
//
//   - Deterministic – equal (spec, seed) inputs replay byte-identical graphs
//   - Round-trip guaranteed – every valid core-axis combination generates
//     and validates clean against itself
//   - Honest infeasibility – contradictory axes fail fast with wrapped
//     sentinel errors (ErrInfeasible, ErrInvalidConfig, ErrSpecMismatch)
//   - Pure Go core – the engine itself has no runtime dependencies
//
// Under the hood, everything is organized under focused subpackages:
//
//	spec/        — GraphSpec axes, defaults, validity rules, permutations
//	constraints/ — feasibility diagnostics & validation tolerances
//	gen/         — the generation engine (dispatch, density, weights)
//	validate/    — tiered validation of generated graphs
//	core/        — Node, Edge, Graph values & adjacency views
//	dot/         — Graphviz DOT export
//	rng/         — the single deterministic RNG
//
// Start with gen.Generate and validate.Validate; everything else is the
// plumbing those two read.
package graphgen
