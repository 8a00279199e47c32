// Package spec defines the declarative graph-specification model: a closed
// set of orthogonal property "axes" composed into one immutable GraphSpec
// value.
//
// A GraphSpec carries nine mandatory core axes (directionality, weighting,
// cycles, connectivity, schema, edge multiplicity, self-loops, density,
// completeness) and roughly forty-six optional advanced axes (partiteness,
// regularity, structural graph classes, network-science families, symmetry,
// spectral and robustness targets, graph products, minor-free families, ...).
// Each advanced axis is an independently discriminated value: absent means
// unconstrained, present means the generator must realize it and the
// validator must check it.
//
// Design contract (strict):
//   - A spec is a pure value. No axis is mutated after New returns.
//   - Representability and validity are separate concerns: a contradictory
//     spec (self-loops + acyclic) is representable but rejected by IsValid
//     and diagnosed by the constraints package.
//   - New(patch) merges a partial override onto documented defaults;
//     zero-valued patch fields leave the default untouched.
//   - CorePermutations enumerates the full cross-product of the core axes,
//     filtered through IsValid, for exhaustive test matrices.
//
// AI-Hints:
//   - Compose specs with Patch literals; never build GraphSpec directly, the
//     zero value is not a valid spec.
//   - Branch on advanced axes by nil-checking the pointer field, then on its
//     Kind discriminator where one exists.
package spec
