// SPDX-License-Identifier: MIT
// Package: graphgen/validate
//
// result.go — the validation report types.
package validate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphgen/constraints"
)

// Status is the outcome of one property check.
type Status string

const (
	// StatusPass: the property holds.
	StatusPass Status = "pass"
	// StatusFail: the property is violated.
	StatusFail Status = "fail"
	// StatusSkipped: the property was not decidable within this run's
	// bounds; Detail names the reason. A skip never fails validation.
	StatusSkipped Status = "skipped"
)

// PropertyResult is the outcome of one checked property.
type PropertyResult struct {
	// Property names the axis or structural family checked.
	Property string
	// Status is the check outcome.
	Status Status
	// Detail explains a failure or a skip; empty on a plain pass.
	Detail string
}

// Result is the full validation report for one graph.
type Result struct {
	// Valid is true when no property failed.
	Valid bool
	// Properties lists every check in execution order.
	Properties []PropertyResult
	// Warnings carries the spec feasibility diagnostics that shaped the
	// tolerances this run validated under.
	Warnings []constraints.Issue
}

// Failures returns the failed property results in order.
func (r Result) Failures() []PropertyResult {
	var out []PropertyResult
	for _, p := range r.Properties {
		if p.Status == StatusFail {
			out = append(out, p)
		}
	}

	return out
}

// String renders a one-line-per-property report.
func (r Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "valid=%t\n", r.Valid)
	for _, p := range r.Properties {
		if p.Detail == "" {
			fmt.Fprintf(&b, "  [%s] %s\n", p.Status, p.Property)

			continue
		}
		fmt.Fprintf(&b, "  [%s] %s: %s\n", p.Status, p.Property, p.Detail)
	}

	return b.String()
}

func (r *Result) pass(property string) {
	r.Properties = append(r.Properties, PropertyResult{Property: property, Status: StatusPass})
}

func (r *Result) fail(property, format string, args ...any) {
	r.Properties = append(r.Properties, PropertyResult{
		Property: property,
		Status:   StatusFail,
		Detail:   fmt.Sprintf(format, args...),
	})
}

func (r *Result) skip(property, format string, args ...any) {
	r.Properties = append(r.Properties, PropertyResult{
		Property: property,
		Status:   StatusSkipped,
		Detail:   fmt.Sprintf(format, args...),
	})
}
