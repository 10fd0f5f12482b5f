package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mathblock/go-texcheck/markdown"
	"github.com/mathblock/go-texcheck/platform"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	spanStyle    = lipgloss.NewStyle().Faint(true)
)

// renderReport is Report.Format with styled section headers.
func renderReport(r *platform.Report) string {
	var b strings.Builder
	if len(r.Errors) > 0 {
		b.WriteString(errorStyle.Render("Errors:") + "\n")
		for i, msg := range r.Errors {
			fmt.Fprintf(&b, "%d. %s\n", i+1, msg)
		}
	}
	if len(r.Warnings) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(warningStyle.Render("Warnings:") + "\n")
		for i, msg := range r.Warnings {
			fmt.Fprintf(&b, "%d. %s\n", i+1, msg)
		}
	}
	if b.Len() == 0 {
		return okStyle.Render("ok") + "\n"
	}
	return b.String()
}

func renderSpanHeader(span markdown.Span) string {
	kind := "inline"
	if span.Display {
		kind = "display"
	}
	return spanStyle.Render(fmt.Sprintf("-- %s: %s", kind, span.Source))
}
