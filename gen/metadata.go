// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// metadata.go — classification families realized as annotated standard
// topologies.
//
// Contract: the spectral, robustness, extremal, product, and minor-free
// axes do not carve their own topology. Each family lays the standard
// structure for the remaining axes and stamps the requested target onto
// every node so downstream validation can read the intent back. Extremal
// targets are checked for trivial infeasibility (a target larger than the
// node count can never be met) before any edge is laid.
package gen

import (
	"fmt"

	"github.com/katalvlaran/graphgen/spec"
)

const (
	methodSpectral  = "SpectralFamily"
	methodRobust    = "RobustnessFamily"
	methodExtremal  = "ExtremalFamily"
	methodProduct   = "ProductFamily"
	methodMinorFree = "MinorFreeFamily"
)

// Metadata keys written by this file.
const (
	DataSpectralGapMin   = "spectral_gap_min"
	DataExpander         = "expander"
	DataAlgebraicConnMin = "algebraic_connectivity_min"
	DataToughnessMin     = "toughness_min"
	DataIntegrityMax     = "integrity_max"
	DataIndependenceGoal = "independence_number_target"
	DataVertexCoverGoal  = "vertex_cover_number_target"
	DataDominationGoal   = "domination_number_target"
	DataCliqueGoal       = "clique_number_target"
	DataProductKind      = "product_kind"
	DataForbiddenMinor   = "forbidden_minor"
)

// buildSpectralFamily annotates the standard topology with the requested
// spectral targets.
func buildSpectralFamily(st *state) error {
	if err := standardEdges(st); err != nil {
		return err
	}

	if st.spec.SpectralGap != nil {
		st.setAllData(DataSpectralGapMin, st.spec.SpectralGap.Min)
	}
	if st.spec.Expander != nil {
		st.setAllData(DataExpander, true)
	}
	if st.spec.AlgebraicConnectivity != nil {
		st.setAllData(DataAlgebraicConnMin, st.spec.AlgebraicConnectivity.Min)
	}

	return nil
}

// buildRobustnessFamily annotates the standard topology with toughness and
// integrity targets.
func buildRobustnessFamily(st *state) error {
	if err := standardEdges(st); err != nil {
		return err
	}

	if st.spec.Toughness != nil {
		st.setAllData(DataToughnessMin, st.spec.Toughness.Min)
	}
	if st.spec.Integrity != nil {
		st.setAllData(DataIntegrityMax, st.spec.Integrity.Max)
	}

	return nil
}

// buildExtremalFamily validates that each requested invariant target fits
// inside the node count, then annotates the standard topology.
func buildExtremalFamily(st *state) error {
	n := st.n()
	checks := []struct {
		name   string
		key    string
		target int
		set    bool
	}{
		{"independence number", DataIndependenceGoal, extremalTarget(st.spec.IndependenceNumber != nil, func() int { return st.spec.IndependenceNumber.Target }), st.spec.IndependenceNumber != nil},
		{"vertex cover number", DataVertexCoverGoal, extremalTarget(st.spec.VertexCoverNumber != nil, func() int { return st.spec.VertexCoverNumber.Target }), st.spec.VertexCoverNumber != nil},
		{"domination number", DataDominationGoal, extremalTarget(st.spec.DominationNumber != nil, func() int { return st.spec.DominationNumber.Target }), st.spec.DominationNumber != nil},
		{"clique number", DataCliqueGoal, extremalTarget(st.spec.CliqueNumber != nil, func() int { return st.spec.CliqueNumber.Target }), st.spec.CliqueNumber != nil},
	}
	for _, c := range checks {
		if !c.set {
			continue
		}
		if c.target < 1 || c.target > n {
			return fmt.Errorf("%s: %s target %d outside [1, %d]: %w",
				methodExtremal, c.name, c.target, n, ErrInfeasible)
		}
	}

	if err := standardEdges(st); err != nil {
		return err
	}
	for _, c := range checks {
		if c.set {
			st.setAllData(c.key, c.target)
		}
	}

	return nil
}

func extremalTarget(set bool, get func() int) int {
	if !set {
		return 0
	}

	return get()
}

// buildProductFamily annotates the standard topology with the product kind.
func buildProductFamily(st *state) error {
	kind := st.spec.Product.Kind
	switch kind {
	case spec.CartesianProduct, spec.TensorProduct, spec.StrongProduct, spec.LexicographicProduct:
	default:
		return fmt.Errorf("%s: unknown product kind %q: %w", methodProduct, kind, ErrInvalidConfig)
	}

	if err := standardEdges(st); err != nil {
		return err
	}
	st.setAllData(DataProductKind, string(kind))

	return nil
}

// buildMinorFreeFamily annotates the standard topology with the forbidden
// minor label.
func buildMinorFreeFamily(st *state) error {
	if st.spec.MinorFree.Forbidden == "" {
		return fmt.Errorf("%s: forbidden minor label required: %w", methodMinorFree, ErrInvalidConfig)
	}

	if err := standardEdges(st); err != nil {
		return err
	}
	st.setAllData(DataForbiddenMinor, st.spec.MinorFree.Forbidden)

	return nil
}
