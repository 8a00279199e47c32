// Package constraints inspects a GraphSpec for axis combinations that are
// mathematically impossible or merely awkward to satisfy exactly, and tells
// the validator which tolerances to relax so structurally forced outcomes are
// not reported as failures.
//
// Severity vocabulary:
//   - SeverityError   — the combination cannot be satisfied for any node
//     count (mirrors spec.IsValid rejections).
//   - SeverityWarning — satisfiable, but the generator can only approximate
//     the target (e.g. a disconnected acyclic forest's edge count is pinned
//     by component count, not freely tunable).
//
// The analysis is a pure function of the spec; the validator consumes the
// same analysis the generator saw, so both sides agree on what "close enough"
// means.
package constraints
