// Package platform defines the shared contract between the validation
// engines: the Validator interface, the Report value they all produce, and
// the empty-input policy the engines disagree on by default.
package platform

import (
	"fmt"
	"strings"
)

// Report is the result of a single validation pass. A report is created
// fresh per call and never mutated after it is returned.
//
// Valid is true iff Errors is empty. Warnings are informational and never
// affect validity. Both slices preserve the order the checks ran in, which
// is not necessarily the order the issues appear in the input text.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// NewReport builds a Report from accumulated errors and warnings, computing
// the Valid flag from the error count.
func NewReport(errs, warns []string) *Report {
	return &Report{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
	}
}

// Format renders the report as a human-readable multi-line message. Errors
// and warnings are numbered separately under their own headings, separated
// by a blank line when both sections are present. A clean report formats as
// the empty string.
func (r *Report) Format() string {
	var b strings.Builder
	if len(r.Errors) > 0 {
		b.WriteString("Errors:\n")
		for i, msg := range r.Errors {
			fmt.Fprintf(&b, "%d. %s\n", i+1, msg)
		}
	}
	if len(r.Warnings) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Warnings:\n")
		for i, msg := range r.Warnings {
			fmt.Fprintf(&b, "%d. %s\n", i+1, msg)
		}
	}
	return b.String()
}

func (r *Report) String() string {
	return fmt.Sprintf(
		"platform.Report{Valid: %t, Errors: %d, Warnings: %d}",
		r.Valid, len(r.Errors), len(r.Warnings),
	)
}
