// SPDX-License-Identifier: MIT
// Package: graphgen/constraints
//
// analyzer.go — spec feasibility diagnostics and validation tolerances.
//
// Contract:
//   - Analyze never rejects: it reports. Hard contradictions surface as
//     SeverityError issues and additionally fail spec.IsValid.
//   - Tolerance adjustments are monotone: analysis only ever relaxes
//     validation, never tightens it.
//   - Pure function; deterministic output order (issues are appended in a
//     fixed rule order).
//
// Complexity: O(1) — a fixed rule chain over the axes.
package constraints

import (
	"github.com/katalvlaran/graphgen/spec"
)

// Severity grades a diagnostic.
type Severity string

const (
	// SeverityError marks a definitionally unsatisfiable combination.
	SeverityError Severity = "error"
	// SeverityWarning marks a combination the generator can only approximate.
	SeverityWarning Severity = "warning"
)

// Issue is one severity-tagged diagnostic about an axis combination.
type Issue struct {
	// Property names the axis (or axis pair) the diagnostic is about.
	Property string
	// Reason is the human-readable explanation.
	Reason string
	// Severity grades the diagnostic.
	Severity Severity
}

// Tolerances are the validation relaxations the validator must honor.
type Tolerances struct {
	// RelaxDensity skips exact density-tier matching; the validator only
	// checks the edge count is structurally coherent.
	RelaxDensity bool
	// RelaxCompleteness accepts near-complete graphs where a structural axis
	// pins the edge set (e.g. complete + required self-loops).
	RelaxCompleteness bool
	// RelaxConnectivity accepts component counts forced by a structural axis.
	RelaxConnectivity bool
	// DensitySlack widens the acceptable band around the density tier's
	// nominal percentage (fraction of max possible edges, default 0.15).
	DensitySlack float64
}

// DefaultDensitySlack is the band half-width around a density tier's nominal
// percentage accepted by validation when no relaxation applies.
const DefaultDensitySlack = 0.15

// WideDensitySlack is the widened band used when a structural axis interferes
// with free density tuning.
const WideDensitySlack = 0.35

// Analysis bundles the diagnostics and tolerance adjustments for one spec.
type Analysis struct {
	Issues     []Issue
	Tolerances Tolerances
}

// HasErrors reports whether any issue is error-grade.
func (a Analysis) HasErrors() bool {
	for _, is := range a.Issues {
		if is.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Warnings returns the warning-grade issues in order.
func (a Analysis) Warnings() []Issue {
	var out []Issue
	for _, is := range a.Issues {
		if is.Severity == SeverityWarning {
			out = append(out, is)
		}
	}

	return out
}

// Analyze inspects s and returns diagnostics plus the tolerance adjustments
// validation must honor.
func Analyze(s spec.GraphSpec) Analysis {
	a := Analysis{Tolerances: Tolerances{DensitySlack: DefaultDensitySlack}}

	a.analyzeContradictions(s)
	a.analyzeDensityPressure(s)
	a.analyzeStructuralPins(s)

	return a
}

// analyzeContradictions mirrors the spec.IsValid rejections as error-grade
// issues so callers that skipped IsValid still see why generation is doomed.
func (a *Analysis) analyzeContradictions(s spec.GraphSpec) {
	if s.AllowsSelfLoops() && s.IsAcyclic() {
		a.add("self_loops/cycles", "a required self-loop is itself a cycle; acyclic cannot hold", SeverityError)
	}
	if s.Completeness == spec.Complete && s.IsAcyclic() {
		a.add("completeness/cycles", "complete graphs on n>=3 nodes always contain cycles", SeverityError)
	}
	if s.Completeness == spec.Complete && s.Density == spec.Sparse {
		a.add("completeness/density", "a complete graph is maximally dense; sparse cannot hold", SeverityError)
	}
	if s.Completeness == spec.Complete && s.IsMultigraph() {
		a.add("completeness/edge_multiplicity", "completeness is defined on simple pairs; a forced parallel edge breaks it", SeverityError)
	}
}

// analyzeDensityPressure flags density targets that structure makes hard to
// hit exactly, relaxing density validation accordingly.
func (a *Analysis) analyzeDensityPressure(s spec.GraphSpec) {
	if s.IsAcyclic() {
		switch s.Connectivity {
		case spec.Connected:
			// Tree: edge count pinned at n-1 regardless of density tier.
			if s.Density != spec.AnyDensity {
				a.add("density", "a tree's edge count is pinned at n-1; density tier is advisory", SeverityWarning)
				a.relaxDensity()
			}
		case spec.Disconnected, spec.AnyConnectivity:
			// Forest: edge count bounded by n - components.
			if s.Density != spec.AnyDensity {
				a.add("density", "a forest's edge count is bounded by component count, not freely tunable", SeverityWarning)
				a.relaxDensity()
			}
		}
	}

	if s.Connectivity == spec.Disconnected && s.Density != spec.AnyDensity {
		a.add("connectivity/density", "component backbones float the edge count above or below the tier a disconnected spec nominally targets", SeverityWarning)
		a.relaxDensity()
	}

	if s.RequiresBipartition() && s.Density == spec.Dense {
		a.add("partiteness/density", "bipartite max edge count is m*n, below the simple-graph maximum the tier assumes", SeverityWarning)
		a.relaxDensity()
	}
}

// analyzeStructuralPins flags exact-structure axes that fix the edge set,
// making the free density/completeness/connectivity axes advisory.
func (a *Analysis) analyzeStructuralPins(s spec.GraphSpec) {
	pinned := s.Star != nil || s.Wheel != nil || s.Grid != nil || s.Toroidal != nil ||
		s.BinaryTree != nil || s.Tournament != nil || s.Circulant != nil ||
		s.Regularity != nil || s.StronglyRegular != nil || s.FlowNetwork != nil ||
		s.Eulerian != nil || s.VertexConnectivity != nil || s.EdgeConnectivity != nil ||
		s.Treewidth != nil || s.Colorability != nil || s.CompleteBipartite != nil

	if pinned && s.Density != spec.AnyDensity {
		a.add("density", "the requested structural family fixes its own edge count; density tier is advisory", SeverityWarning)
		a.relaxDensity()
	}
	if pinned && s.Completeness == spec.Complete {
		a.add("completeness", "the requested structural family conflicts with exact completeness", SeverityWarning)
		a.Tolerances.RelaxCompleteness = true
	}

	if s.Regularity != nil && s.Density == spec.Dense {
		a.add("regularity/density", "a k-regular graph has exactly n*k/2 edges; a dense tier cannot be tuned independently", SeverityWarning)
		a.relaxDensity()
	}

	// A bipartition plus completeness means K_{m,n}, not K_n.
	if s.RequiresBipartition() && s.Completeness == spec.Complete {
		a.add("partiteness/completeness", "complete on a bipartition means complete-bipartite; same-side pairs stay unjoined", SeverityWarning)
		a.Tolerances.RelaxCompleteness = true
	}

	// Components forced by k-partite or modular community layouts.
	if s.Modular != nil && s.Connectivity == spec.Connected {
		a.add("modular/connectivity", "community structure with a low inter-community probability may need bridging edges to stay connected", SeverityWarning)
		a.Tolerances.RelaxConnectivity = true
	}
}

// add appends one diagnostic.
func (a *Analysis) add(property, reason string, sev Severity) {
	a.Issues = append(a.Issues, Issue{Property: property, Reason: reason, Severity: sev})
}

// relaxDensity switches density validation to the widened band.
func (a *Analysis) relaxDensity() {
	a.Tolerances.RelaxDensity = true
	if a.Tolerances.DensitySlack < WideDensitySlack {
		a.Tolerances.DensitySlack = WideDensitySlack
	}
}
