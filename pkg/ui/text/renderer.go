// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/commhealth/pkg/generate"
	"github.com/arthur-debert/commhealth/pkg/ui/summary"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult prints one line per directory and file, then the
// completion banner unless nothing was written
func (r *Renderer) RenderResult(result *generate.Result) error {
	for _, line := range summary.Lines(result) {
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}

	if result.DryRun {
		return nil
	}

	_, err := io.WriteString(r.output, summary.Banner())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
