package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/commhealth/cmd/commhealth"
	"github.com/arthur-debert/commhealth/pkg/ui"
)

func main() {
	rootCmd := commhealth.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr)
		if rerr != nil || renderer.RenderError(err) != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
