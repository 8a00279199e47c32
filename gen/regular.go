// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// regular.go — degree-constrained families: k-regular, cubic, strongly
// regular.
//
// Contract:
//   - k-regular uses the circulant construction: offsets 1..⌊k/2⌋ plus the
//     antipodal offset n/2 when k is odd (feasible because n*k must be
//     even). Exactly n*k/2 edges.
//   - Feasibility is validated eagerly: k < n, and n*k even.
//   - Strongly regular validates the k(k-λ-1) = (n-k-1)μ identity, then lays
//     a 2-regular cycle skeleton regardless of the requested k. This is a
//     known correctness gap inherited from the original behavior: the
//     skeleton only satisfies the degree requirement when k = 2, and the
//     validator's regularity check legitimately reports other k as
//     not_regular. The intended SRG-family construction is deliberately not
//     guessed at here.
package gen

import (
	"fmt"

	"github.com/katalvlaran/graphgen/spec"
)

const (
	methodRegular         = "Regular"
	methodStronglyRegular = "StronglyRegular"

	// defaultRegularDegree is used for the bare "regular" kind.
	defaultRegularDegree = 2
	cubicDegree          = 3
)

// Metadata keys written by this file.
const (
	DataTargetDegree = "target_degree"
	DataSRGK         = "srg_k"
	DataSRGLambda    = "srg_lambda"
	DataSRGMu        = "srg_mu"
)

// buildRegular dispatches on the regularity kind and lays a circulant
// k-regular structure.
func buildRegular(st *state) error {
	k := defaultRegularDegree
	switch st.spec.Regularity.Kind {
	case spec.Cubic:
		k = cubicDegree
	case spec.SpecificRegular:
		k = st.spec.Regularity.K
	}

	if err := buildCirculantRegular(st, k, methodRegular); err != nil {
		return err
	}
	st.setAllData(DataTargetDegree, k)

	return nil
}

// buildCirculantRegular validates (n,k) feasibility and emits the circulant
// edges. Shared with the vertex-transitive family.
func buildCirculantRegular(st *state, k int, method string) error {
	n := st.n()
	if k < 0 {
		return fmt.Errorf("%s: degree k=%d must be non-negative: %w", method, k, ErrInfeasible)
	}
	if k >= n {
		return fmt.Errorf("%s: k-regular graph requires k < n (k=%d, n=%d): %w",
			method, k, n, ErrInfeasible)
	}
	if n*k%2 != 0 {
		return fmt.Errorf("%s: k-regular graph requires n*k to be even (n=%d, k=%d): %w",
			method, n, k, ErrInfeasible)
	}

	// Offsets 1..k/2 each contribute 2 to every degree; the antipodal
	// offset n/2 (only when k is odd, which forces n even) contributes 1.
	for off := 1; off <= k/2; off++ {
		for i := 0; i < n; i++ {
			st.addEdgeOnce(i, (i+off)%n)
		}
	}
	if k%2 == 1 {
		half := n / 2
		for i := 0; i < half; i++ {
			st.addEdgeOnce(i, i+half)
		}
	}

	return nil
}

// buildStronglyRegular validates the SRG feasibility identity and lays the
// 2-regular cycle skeleton (see file header for the documented gap).
func buildStronglyRegular(st *state) error {
	n := st.n()
	ax := st.spec.StronglyRegular
	k, lambda, mu := ax.K, ax.Lambda, ax.Mu

	if k >= n {
		return fmt.Errorf("%s: k-regular graph requires k < n (k=%d, n=%d): %w",
			methodStronglyRegular, k, n, ErrInfeasible)
	}
	if k*(k-lambda-1) != (n-k-1)*mu {
		return fmt.Errorf("%s: parameters (n=%d, k=%d, lambda=%d, mu=%d) fail k(k-lambda-1) = (n-k-1)mu: %w",
			methodStronglyRegular, n, k, lambda, mu, ErrInfeasible)
	}

	if n >= minCycleSize {
		buildCycleEdges(st, 0, n)
	}

	st.setAllData(DataSRGK, k)
	st.setAllData(DataSRGLambda, lambda)
	st.setAllData(DataSRGMu, mu)

	return nil
}
