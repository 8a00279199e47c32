// SPDX-License-Identifier: MIT
// Package: graphgen/validate

// Package validate checks a generated graph against the specification it
// embeds.
//
// Validation is tiered per property:
//
//  1. Metadata fast path — generators record their construction intent on
//     node Data; when the recorded intent is itself verifiable (a proper
//     coloring, a backbone permutation, a bipartition), validation checks
//     the structure against it directly.
//  2. Exact search — NP-hard properties (independence number, chromatic
//     number, domination, chordality) are decided exactly below a small
//     node-count ceiling by bounded search.
//  3. Proxy or skip — above the ceiling, a cheap necessary condition is
//     checked when one exists, otherwise the property is reported as
//     StatusSkipped with the reason. A skip is never a failure.
//
// The spec's feasibility analysis (package constraints) feeds tolerance
// relaxations into the density, completeness, and connectivity checks, so
// a structurally pinned family is not failed for missing a density tier it
// could never hit.
//
// Validate is read-only and deterministic: property results are appended
// in a fixed order and no RNG is involved.
package validate
