package ui

import (
	"io"
	"strings"

	"github.com/arthur-debert/commhealth/pkg/errors"
	"github.com/muesli/termenv"
)

// Format selects how the generation report is rendered
type Format int

const (
	// FormatAuto resolves to FormatTerminal or FormatText for the writer
	FormatAuto Format = iota
	// FormatTerminal uses glamour, pterm and the lipgloss styles
	FormatTerminal
	// FormatText writes unstyled lines and the plain banner
	FormatText
	// FormatJSON writes the Result as one JSON document
	FormatJSON
)

// canonical names, indexed by Format
var formatNames = [...]string{"auto", "term", "text", "json"}

// accepted spellings for --format and COMMHEALTH_FORMAT
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat maps a flag or config value to a Format. Matching ignores
// case and surrounding blanks.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
		WithDetail("allowed", formatNames[:])
}

// DetectFormat resolves FormatAuto for w. Anything termenv would render
// without color (pipes, buffers, NO_COLOR, CLICOLOR=0, TERM=dumb, CI) gets
// plain text. opts are passed to termenv.NewOutput.
func DetectFormat(w io.Writer, opts ...termenv.OutputOption) Format {
	if termenv.NewOutput(w, opts...).EnvColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
