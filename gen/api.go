// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// api.go — the public entry point of the generation engine.
//
// Contract:
//   - Generate(s, cfg) is pure with respect to its inputs: equal (spec,
//     config) pairs return structurally identical graphs, edge for edge.
//   - The pipeline is fixed: normalize spec → validate config → allocate
//     nodes → dispatch base structure → density top-up + guarantees →
//     weights → edge types.
//   - All failures wrap one of ErrInvalidConfig, ErrInfeasible, or
//     ErrSpecMismatch, so callers branch with errors.Is.
//
// AI-Hints:
//   - Contradictory axis combinations are rejected up front via
//     spec.IsValid; per-family infeasibility (k >= n, parity, n mod 4)
//     surfaces from the family generator itself.
//   - The returned Graph embeds the normalized spec, which is what the
//     validator reads back.
package gen

import (
	"fmt"

	"github.com/katalvlaran/graphgen/core"
	"github.com/katalvlaran/graphgen/spec"
)

// Generate synthesizes one graph for the given specification.
func Generate(s spec.GraphSpec, cfg Config) (*core.Graph, error) {
	s = spec.New(s)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if !spec.IsValid(s) {
		return nil, fmt.Errorf("generate: contradictory specification %q: %w",
			spec.Describe(s), ErrInfeasible)
	}

	st := newState(s, cfg)
	generateNodes(st)
	if err := generateBaseStructure(st); err != nil {
		return nil, err
	}
	addDensityEdges(st)
	assignWeights(st)
	assignEdgeTypes(st)

	return &core.Graph{Nodes: st.nodes, Edges: st.edges, Spec: s}, nil
}
