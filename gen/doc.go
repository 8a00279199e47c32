// Package gen synthesizes concrete graph instances from a declarative
// GraphSpec: node allocation (with optional bipartition and type
// proportions), base-structure edge synthesis dispatched over ~60
// property-class generators, a density-adjustment pass, and optional weight
// assignment.
//
// The single governing contract is the ordered dispatch in dispatch.go:
// given a spec, exactly ONE structural family is selected by evaluating
// (predicate, generator) pairs in a fixed priority order — the first match
// wins. Several axes can co-occur in one spec; the earlier-checked axis
// decides the base structure, later ones are realized as metadata or checked
// only by the validator. The priority order is therefore load-bearing and
// directly testable in isolation.
//
// Generator contract (every impl_* function):
//   - Given the build state (nodes, edges, spec, rng), append edges realizing
//     one named graph class.
//   - Where the class encodes a derived invariant (interval endpoints,
//     permutation value, topological order, community id, SRG parameters...),
//     stash it into each node's Data bag so the validator can check it
//     without recomputation.
//   - Validate parameter feasibility eagerly and return ErrInfeasible-wrapped
//     errors when (n, k, target) combinations cannot exist; never panic.
//   - Draw all randomness from the state's single seeded RNG in a stable
//     order, so equal (spec, config, seed) triples reproduce byte-identical
//     node and edge sequences.
//
// Families that describe classifications rather than distinct edge
// algorithms (spectral, robustness, extremal, product, minor-free) first
// synthesize an ordinary connectivity×cycles structure via standardEdges and
// then attach computed/target metadata (metadata.go).
//
// AI-Hints:
//   - Generation may only probabilistically satisfy some invariants; the
//     validator, not the generator, is the source of truth.
//   - New families slot into dispatchOrder at the documented priority point;
//     appending at the end silently changes co-occurrence semantics.
package gen
