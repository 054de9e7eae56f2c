// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/commhealth/pkg/generate"
	"github.com/arthur-debert/commhealth/pkg/logging"
	"github.com/arthur-debert/commhealth/pkg/ui/styles"
	"github.com/arthur-debert/commhealth/pkg/ui/summary"
	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output. The file table is rendered as
// Markdown through glamour; status lines use pterm prefixes and the
// lipgloss style registry.
type Renderer struct {
	output   io.Writer
	markdown markdownRenderer
}

// markdownRenderer is the part of glamour.TermRenderer the renderer uses
type markdownRenderer interface {
	Render(in string) (string, error)
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return &Renderer{output: w, markdown: md}, nil
}

// RenderResult renders the file table followed by the completion banner.
// Dry runs get the table only.
func (r *Renderer) RenderResult(result *generate.Result) error {
	doc := summary.Markdown(result)
	rendered, err := r.markdown.Render(doc)
	if err != nil {
		// Fall back to the raw Markdown; it is readable as is
		logger := logging.GetLogger("ui.terminal")
		logger.Debug().Err(err).Msg("Markdown rendering failed")
		rendered = doc
	}
	if _, err := io.WriteString(r.output, rendered); err != nil {
		return err
	}

	if result.DryRun {
		return nil
	}

	stars := styles.Render("Stars", summary.StarLine)
	lines := []string{
		"",
		stars,
		"",
		pterm.Success.Sprint(summary.MsgSuccess),
		"",
		styles.Render("Muted", summary.MsgSupportPrefix) +
			styles.Render("Link", summary.RepoLink),
		"",
		stars,
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, pterm.Error.Sprint(styles.Render("Error", err.Error())))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Render("Notice", msg))
	return err
}
