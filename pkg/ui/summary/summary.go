// Package summary turns a generation result into report text shared by the
// renderers.
package summary

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/commhealth/pkg/generate"
)

// Banner returns the completion banner exactly as the interactive tool
// prints it
func Banner() string {
	var b strings.Builder
	b.WriteString("\n" + StarLine + "\n")
	b.WriteString("\n\n")
	b.WriteString(MsgSuccess + "\n")
	b.WriteString("\n\n")
	b.WriteString(MsgSupport + "\n")
	b.WriteString("\n\n")
	b.WriteString(StarLine + "\n\n")
	return b.String()
}

// FileStatus describes what happened (or would happen) to a file
func FileStatus(f generate.FileResult, dryRun bool) string {
	switch {
	case dryRun && f.Overwritten:
		return "would overwrite"
	case dryRun:
		return "would create"
	case f.Overwritten:
		return "overwritten"
	default:
		return "created"
	}
}

// Lines returns the plain report, one line per directory and file
func Lines(result *generate.Result) []string {
	lines := make([]string, 0, len(result.DirsCreated)+len(result.Files)+len(result.Warnings))
	dirVerb := "created"
	if result.DryRun {
		dirVerb = "would create"
	}
	for _, dir := range result.DirsCreated {
		lines = append(lines, fmt.Sprintf("%s %s/", dirVerb, dir))
	}
	for _, f := range result.Files {
		lines = append(lines, fmt.Sprintf("%s %s (%d bytes)", FileStatus(f, result.DryRun), f.Path, f.Bytes))
	}
	for _, w := range result.Warnings {
		lines = append(lines, "warning: "+w)
	}
	return lines
}

// Markdown returns the report as a Markdown document
func Markdown(result *generate.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Community health files\n\nRoot: `%s`\n\n", result.Root)

	if len(result.DirsCreated) > 0 {
		b.WriteString("Directories created: ")
		for i, dir := range result.DirsCreated {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "`%s`", dir)
		}
		b.WriteString("\n\n")
	}

	b.WriteString("| File | Bytes | Status |\n|---|---:|---|\n")
	for _, f := range result.Files {
		fmt.Fprintf(&b, "| `%s` | %d | %s |\n", f.Path, f.Bytes, FileStatus(f, result.DryRun))
	}

	if len(result.Warnings) > 0 {
		b.WriteString("\n### Warnings\n\n")
		for _, w := range result.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return b.String()
}
