// Command commhealth-manpage renders the commhealth man pages. With no
// argument the top-level page goes to stdout; with a directory argument
// one page per command is written there.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/commhealth/cmd/commhealth"
	"github.com/arthur-debert/commhealth/internal/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "commhealth-manpage: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	header := &doc.GenManHeader{
		Section: "1",
		Source:  "commhealth " + version.Version,
		Manual:  "commhealth manual",
		Date:    buildDate(),
	}
	root := commhealth.NewRootCmd()

	switch len(args) {
	case 0:
		header.Title = "COMMHEALTH"
		return doc.GenMan(root, header, stdout)
	case 1:
		if err := os.MkdirAll(args[0], 0755); err != nil {
			return err
		}
		return doc.GenManTree(root, header, args[0])
	default:
		return fmt.Errorf("usage: commhealth-manpage [output-dir]")
	}
}

// buildDate keeps pages reproducible for tagged builds; dev builds fall
// back to cobra's default (now, or SOURCE_DATE_EPOCH)
func buildDate() *time.Time {
	t, err := time.Parse(time.RFC3339, version.Date)
	if err != nil {
		return nil
	}
	return &t
}
