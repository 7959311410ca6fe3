// Package report formats search reports as plain text or markdown.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/statespace/pkg/registry"
)

// WritePlain prints one configuration per line, followed by a summary line.
func WritePlain(w io.Writer, rep *registry.Report) error {
	var sb strings.Builder
	for i, s := range rep.Path {
		fmt.Fprintf(&sb, "%3d  %s\n", i, s)
	}
	fmt.Fprintf(&sb, "%s: %s with %s, %d moves, %d expanded, %d generated",
		rep.Name, rep.Status, rep.Algorithm, rep.Cost(), rep.Expanded, rep.Generated)
	if rep.Restarts > 0 {
		fmt.Fprintf(&sb, ", %d restarts", rep.Restarts)
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// Markdown renders a report as a markdown document with one fenced block per step.
func Markdown(rep *registry.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", rep.Name)
	if rep.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", rep.Description)
	}

	sb.WriteString("| | |\n|---|---|\n")
	row := func(k string, v any) { fmt.Fprintf(&sb, "| %s | %v |\n", k, v) }
	row("Kind", rep.Kind)
	row("Algorithm", rep.Algorithm)
	if rep.Heuristic != "" {
		row("Heuristic", rep.Heuristic)
	}
	row("Status", fmt.Sprintf("**%s**", rep.Status))
	row("Moves", rep.Cost())
	row("Expanded", rep.Expanded)
	row("Generated", rep.Generated)
	if rep.Restarts > 0 {
		row("Restarts", rep.Restarts)
	}
	row("Duration", rep.Duration)
	row("Run", fmt.Sprintf("`%s`", rep.RunID))

	if len(rep.Grids) == 0 {
		return sb.String()
	}

	sb.WriteString("\n## Path\n")
	for i, g := range rep.Grids {
		fmt.Fprintf(&sb, "\n### Step %d\n\n```text\n%s\n```\n", i, g)
	}
	return sb.String()
}
