// Command commhealth-completions writes a shell completion script for the
// packaging pipeline.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/commhealth/cmd/commhealth"
)

var shells = map[string]func(*cobra.Command, io.Writer) error{
	"bash":       func(c *cobra.Command, w io.Writer) error { return c.GenBashCompletionV2(w, true) },
	"zsh":        func(c *cobra.Command, w io.Writer) error { return c.GenZshCompletion(w) },
	"fish":       func(c *cobra.Command, w io.Writer) error { return c.GenFishCompletion(w, true) },
	"powershell": func(c *cobra.Command, w io.Writer) error { return c.GenPowerShellCompletionWithDesc(w) },
}

const supported = "bash|zsh|fish|powershell"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <%s>\n", os.Args[0], supported)
		os.Exit(1)
	}

	shell := strings.ToLower(os.Args[1])
	gen, ok := shells[shell]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown shell %q, expected one of %s\n", shell, supported)
		os.Exit(1)
	}

	if err := gen(commhealth.NewRootCmd(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s completion: %v\n", shell, err)
		os.Exit(1)
	}
}
