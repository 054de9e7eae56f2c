package commhealth

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/commhealth/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// helpFuncs returns the functions msgs/usage-template.txt calls. Unstyled
// output leaves the text untouched apart from upper-casing headings.
func helpFuncs(styled bool) template.FuncMap {
	emph := func(s string) string {
		if !styled {
			return s
		}
		return pterm.Bold.Sprint(s)
	}
	return template.FuncMap{
		"emph":    emph,
		"heading": func(s string) string { return emph(strings.ToUpper(s)) },
	}
}

// help goes to stdout, so styling follows the same detection the report uses
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(helpFuncs(ui.DetectFormat(os.Stdout) == ui.FormatTerminal))
}
