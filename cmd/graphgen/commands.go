// SPDX-License-Identifier: MIT
// Package: graphgen/cmd/graphgen
//
// commands.go — the generate / validate / describe / permutations
// subcommands.
//
// Contract: spec patches load from YAML files; zero-valued core axes fall
// back to the documented defaults, so a minimal patch file like
// "directionality: directed" is a complete input. Output formats: dot
// (default) and yaml.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphgen/core"
	"github.com/katalvlaran/graphgen/dot"
	"github.com/katalvlaran/graphgen/gen"
	"github.com/katalvlaran/graphgen/spec"
	"github.com/katalvlaran/graphgen/validate"
)

// specFlags is the flag set shared by the spec-consuming subcommands.
type specFlags struct {
	specPath string
	nodes    int
	seed     int64
}

func (f *specFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.specPath, "spec", "s", "", "YAML spec patch file (defaults apply when omitted)")
	cmd.Flags().IntVarP(&f.nodes, "nodes", "n", 10, "number of nodes to generate")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "RNG seed; equal seeds replay equal graphs")
}

// loadSpec reads the YAML patch and composes it over the defaults.
func loadSpec(path string) (spec.GraphSpec, error) {
	var patch spec.GraphSpec
	if path == "" {
		return spec.New(patch), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return spec.GraphSpec{}, fmt.Errorf("read spec: %w", err)
	}
	if err := yaml.Unmarshal(raw, &patch); err != nil {
		return spec.GraphSpec{}, fmt.Errorf("parse spec: %w", err)
	}

	return spec.New(patch), nil
}

func newGenerateCmd() *cobra.Command {
	var flags specFlags
	var format, outPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one graph from a spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSpec(flags.specPath)
			if err != nil {
				return err
			}

			logger.Debug("generating", "spec", spec.Describe(s), "nodes", flags.nodes, "seed", flags.seed)
			g, err := gen.Generate(s, gen.Config{NodeCount: flags.nodes, Seed: flags.seed})
			if err != nil {
				return err
			}
			logger.Info("generated", "nodes", g.NodeCount(), "edges", g.EdgeCount())

			rendered, err := render(g, format)
			if err != nil {
				return err
			}
			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), rendered)

				return nil
			}

			return os.WriteFile(outPath, []byte(rendered), 0o644)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot or yaml")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (stdout when omitted)")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var flags specFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Generate a graph and validate it against its spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSpec(flags.specPath)
			if err != nil {
				return err
			}

			g, err := gen.Generate(s, gen.Config{NodeCount: flags.nodes, Seed: flags.seed})
			if err != nil {
				return err
			}

			r := validate.Validate(g)
			for _, w := range r.Warnings {
				logger.Warn(w.Reason, "property", w.Property, "severity", w.Severity)
			}
			fmt.Fprint(cmd.OutOrStdout(), r.String())
			if !r.Valid {
				return fmt.Errorf("validation failed: %d property violation(s)", len(r.Failures()))
			}

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newDescribeCmd() *cobra.Command {
	var specPath string

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the human-readable description of a spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSpec(specPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), spec.Describe(s))

			return nil
		},
	}

	cmd.Flags().StringVarP(&specPath, "spec", "s", "", "YAML spec patch file")

	return cmd
}

func newPermutationsCmd() *cobra.Command {
	var countOnly bool

	cmd := &cobra.Command{
		Use:   "permutations",
		Short: "Enumerate every valid core-axis combination",
		RunE: func(cmd *cobra.Command, args []string) error {
			perms := spec.CorePermutations()
			if countOnly {
				fmt.Fprintln(cmd.OutOrStdout(), len(perms))

				return nil
			}
			for _, s := range perms {
				fmt.Fprintln(cmd.OutOrStdout(), spec.Describe(s))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&countOnly, "count", false, "print only the combination count")

	return cmd
}

// render serializes the graph in the requested format.
func render(g *core.Graph, format string) (string, error) {
	switch format {
	case "dot":
		return dot.Marshal(g), nil
	case "yaml":
		raw, err := yaml.Marshal(g)
		if err != nil {
			return "", fmt.Errorf("marshal graph: %w", err)
		}

		return string(raw), nil
	default:
		return "", fmt.Errorf("unknown format %q (want dot or yaml)", format)
	}
}
