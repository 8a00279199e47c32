// SPDX-License-Identifier: MIT
// Package: graphgen/spec
//
// validate.go — definitional validity of axis combinations.
//
// Contract:
//   - IsValid rejects only combinations that are mathematically contradictory
//     for every node count, not combinations that are merely awkward to hit
//     exactly (those are the constraints package's business).
//   - Pure predicate; no allocation, no mutation.
//
// Complexity: O(1) — a fixed chain of axis comparisons.
package spec

// IsValid reports whether the axis combination is definitionally satisfiable.
//
// Rejected combinations:
//   - self-loops required + acyclic (a loop is a cycle of length 1);
//   - complete + acyclic (K_n has cycles for n ≥ 3);
//   - complete + sparse density (complete pins density at 100%);
//   - multigraph + complete (completeness is defined on simple pairs);
//   - acyclic + connected (a tree) + dense or complete density
//     (a tree's edge count is pinned at n−1);
//   - acyclic + unconstrained connectivity (a forest) + moderate, dense or
//     complete density (forest edge count is bounded by n−1).
func IsValid(s GraphSpec) bool {
	acyclic := s.Cycles == Acyclic

	// A required self-loop is itself a cycle.
	if s.SelfLoops == LoopsAllowed && acyclic {
		return false
	}

	if s.Completeness == Complete {
		// K_n contains a triangle for n ≥ 3.
		if acyclic {
			return false
		}
		// Complete graphs are maximally dense.
		if s.Density == Sparse {
			return false
		}
		// A required parallel edge would break simple completeness.
		if s.EdgeMultiplicity == Multigraph {
			return false
		}
	}

	// Trees have exactly n−1 edges; forests at most n−1.
	if acyclic {
		switch s.Connectivity {
		case Connected:
			if s.Density == Dense || s.Completeness == Complete {
				return false
			}
		case AnyConnectivity:
			if s.Density == Moderate || s.Density == Dense || s.Completeness == Complete {
				return false
			}
		}
	}

	return true
}
