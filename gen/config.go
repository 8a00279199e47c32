// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// config.go — the per-call generation configuration and its validation.
//
// Contract:
//   - Config is a plain value; zero fields resolve to documented defaults in
//     resolveConfig (Seed 0 is a legitimate seed, so determinism holds for
//     the zero value too).
//   - Type proportions may be omitted (uniform assignment) or partial (the
//     last listed type is the catch-all for rounding remainders).
//
// Complexity: validation is O(len(NodeTypes) + len(EdgeTypes)).
package gen

import (
	"fmt"
)

// TypeSpec names one node or edge type and its target share of instances.
type TypeSpec struct {
	// Name is the type tag written onto nodes/edges.
	Name string `yaml:"name"`
	// Proportion is the target share in [0,1]. Zero means "split the
	// remainder evenly with other zero-proportion types".
	Proportion float64 `yaml:"proportion,omitempty"`
}

// Config parameterizes one generation call.
type Config struct {
	// NodeCount is the number of nodes to allocate (required, >= 1).
	NodeCount int `yaml:"node_count"`
	// NodeTypes drives heterogeneous node typing (ignored otherwise).
	NodeTypes []TypeSpec `yaml:"node_types,omitempty"`
	// EdgeTypes drives heterogeneous edge typing (ignored otherwise).
	EdgeTypes []TypeSpec `yaml:"edge_types,omitempty"`
	// WeightRange bounds uniform weight draws for weighted specs;
	// nil means the default [1,10].
	WeightRange *[2]float64 `yaml:"weight_range,omitempty"`
	// Seed fixes the RNG stream; equal seeds replay equal graphs.
	Seed int64 `yaml:"seed,omitempty"`
}

// Default weight bounds for weighted specs without an explicit range.
const (
	DefaultWeightMin = 1.0
	DefaultWeightMax = 10.0
)

// validateConfig rejects malformed configs before any allocation happens.
func validateConfig(cfg Config) error {
	if cfg.NodeCount < 1 {
		return fmt.Errorf("generate: node count %d < 1: %w", cfg.NodeCount, ErrInvalidConfig)
	}

	sum := 0.0
	for _, ts := range cfg.NodeTypes {
		if ts.Name == "" {
			return fmt.Errorf("generate: unnamed node type: %w", ErrInvalidConfig)
		}
		if ts.Proportion < 0 || ts.Proportion > 1 {
			return fmt.Errorf("generate: node type %q proportion %.3f not in [0,1]: %w",
				ts.Name, ts.Proportion, ErrInvalidConfig)
		}
		sum += ts.Proportion
	}
	if sum > 1.0+1e-9 {
		return fmt.Errorf("generate: node type proportions sum to %.3f > 1: %w", sum, ErrInvalidConfig)
	}

	for _, ts := range cfg.EdgeTypes {
		if ts.Name == "" {
			return fmt.Errorf("generate: unnamed edge type: %w", ErrInvalidConfig)
		}
	}

	if cfg.WeightRange != nil && cfg.WeightRange[0] > cfg.WeightRange[1] {
		return fmt.Errorf("generate: weight range [%g,%g] inverted: %w",
			cfg.WeightRange[0], cfg.WeightRange[1], ErrInvalidConfig)
	}

	return nil
}

// weightBounds resolves the effective weight range.
func weightBounds(cfg Config) (float64, float64) {
	if cfg.WeightRange != nil {
		return cfg.WeightRange[0], cfg.WeightRange[1]
	}

	return DefaultWeightMin, DefaultWeightMax
}
