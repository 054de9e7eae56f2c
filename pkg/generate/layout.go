package generate

import (
	"path/filepath"

	"github.com/arthur-debert/commhealth/pkg/templates"
)

// Layout is the complete set of directories and files for one run
type Layout struct {
	Root  string
	Dirs  []string
	Files []templates.Output
}

// DefaultLayout returns the standard layout rooted at root
func DefaultLayout(root string) Layout {
	return Layout{
		Root:  root,
		Dirs:  templates.Dirs(),
		Files: templates.All(),
	}
}

// abs joins a slash-separated relative path onto the root
func (l Layout) abs(rel string) string {
	return filepath.Join(l.Root, filepath.FromSlash(rel))
}
