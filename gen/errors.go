// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// errors.go — sentinel errors for graph generation.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is, never on strings.
//   - Implementations attach context via fmt.Errorf("%s: ...: %w", tag, err)
//     where tag is the generator's method constant.
//   - Generators never panic at runtime; infeasible parameters are
//     unrecoverable for that call and surface as ErrInfeasible.
package gen

import "errors"

// ErrInfeasible indicates a generator's required invariant cannot exist for
// the given node count / parameters (k >= n for k-regular, odd n*k, SRG
// identity failure, extremal target exceeding n, ...). The caller must
// supply a different spec or config.
var ErrInfeasible = errors.New("gen: infeasible parameters")

// ErrInvalidConfig indicates a malformed GenerationConfig (non-positive node
// count, bad type proportions, inverted weight range).
var ErrInvalidConfig = errors.New("gen: invalid generation config")

// ErrSpecMismatch indicates a generator was invoked with a spec shape it
// does not serve (a "requires X spec" guard fired). Only reachable through
// programmer error since dispatch predicates gate every generator.
var ErrSpecMismatch = errors.New("gen: generator invoked with mismatched spec")
