// SPDX-License-Identifier: MIT
// Package: graphgen/cmd/graphgen
//
// main.go — the graphgen command line: generate, validate, describe, and
// enumerate graph specifications.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "graphgen",
})

func main() {
	root := &cobra.Command{
		Use:   "graphgen",
		Short: "Generate and validate graphs from axis specifications",
		Long: "graphgen synthesizes graphs from a specification of structural axes\n" +
			"(directionality, cycles, density, partiteness, ...) and validates\n" +
			"generated graphs against the spec they were built from.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(func() {
		if verbose, _ := root.PersistentFlags().GetBool("verbose"); verbose {
			logger.SetLevel(log.DebugLevel)
		}
	})

	root.AddCommand(
		newGenerateCmd(),
		newValidateCmd(),
		newDescribeCmd(),
		newPermutationsCmd(),
	)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}
