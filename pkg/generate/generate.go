package generate

import (
	"os"

	"github.com/arthur-debert/commhealth/pkg/config"
	"github.com/arthur-debert/commhealth/pkg/errors"
	"github.com/arthur-debert/commhealth/pkg/logging"
	"github.com/arthur-debert/commhealth/pkg/prompt"
	"github.com/arthur-debert/commhealth/pkg/templates"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options configures a Generator
type Options struct {
	Fs          afero.Fs
	Permissions config.FilePermissions
	DryRun      bool
}

// Generator renders a Layout and writes it to a filesystem
type Generator struct {
	fs     afero.Fs
	perms  config.FilePermissions
	dryRun bool
	logger zerolog.Logger
}

// FileResult describes one written (or, in dry-run, planned) file
type FileResult struct {
	Path        string `json:"path"`
	Bytes       int    `json:"bytes"`
	Overwritten bool   `json:"overwritten"`
}

// Result summarizes a run. On failure it holds what was done before the
// error.
type Result struct {
	Root         string       `json:"root"`
	DirsCreated  []string     `json:"dirs_created"`
	DirsExisting []string     `json:"dirs_existing"`
	Files        []FileResult `json:"files"`
	DryRun       bool         `json:"dry_run"`
	Warnings     []string     `json:"warnings,omitempty"`
}

// New creates a Generator. Zero permissions fall back to 0755/0644.
func New(opts Options) *Generator {
	perms := opts.Permissions
	if perms.Directory == 0 {
		perms.Directory = 0755
	}
	if perms.File == 0 {
		perms.File = 0644
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Generator{
		fs:     fs,
		perms:  perms,
		dryRun: opts.DryRun,
		logger: logging.GetLogger("generate"),
	}
}

type rendered struct {
	path    string
	content string
}

// Generate renders every file in layout from answers and writes the results
func (g *Generator) Generate(layout Layout, answers prompt.AnswerSet) (*Result, error) {
	done := logging.LogOperationStart(g.logger, "generate")
	defer done()
	g.logger.Debug().Str("root", layout.Root).Int("files", len(layout.Files)).Bool("dry_run", g.dryRun).Msg("Generating")

	result := &Result{
		Root:         layout.Root,
		DirsCreated:  []string{},
		DirsExisting: []string{},
		Files:        []FileResult{},
		DryRun:       g.dryRun,
	}

	if err := g.checkRoot(layout.Root); err != nil {
		return result, err
	}

	outputs := make([]rendered, 0, len(layout.Files))
	for _, out := range layout.Files {
		content, err := out.Render(answers)
		if err != nil {
			return result, err
		}
		outputs = append(outputs, rendered{path: out.Path, content: content})
		result.Warnings = append(result.Warnings, templates.Lint(out.Path, content)...)
	}
	for _, w := range result.Warnings {
		g.logger.Warn().Msg(w)
	}

	for _, dir := range layout.Dirs {
		created, err := g.ensureDir(layout.abs(dir))
		if err != nil {
			return result, err
		}
		if created {
			result.DirsCreated = append(result.DirsCreated, dir)
		} else {
			result.DirsExisting = append(result.DirsExisting, dir)
		}
	}

	for _, out := range outputs {
		file, err := g.writeFile(layout.abs(out.path), out.content)
		if err != nil {
			return result, err
		}
		file.Path = out.path
		result.Files = append(result.Files, file)
	}

	g.logger.Info().
		Int("dirs_created", len(result.DirsCreated)).
		Int("files", len(result.Files)).
		Bool("dry_run", g.dryRun).
		Msg("Generation complete")

	return result, nil
}

func (g *Generator) checkRoot(root string) error {
	info, err := g.fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrRootNotFound, "destination root %s does not exist", root).
				WithDetail("root", root)
		}
		return errors.Wrapf(err, errors.ErrRootNotFound, "cannot access destination root %s", root)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrPathCollision, "destination root %s is not a directory", root).
			WithDetail("root", root)
	}
	return nil
}

// ensureDir creates path unless a directory already exists there
func (g *Generator) ensureDir(path string) (bool, error) {
	info, err := g.fs.Stat(path)
	switch {
	case err == nil && info.IsDir():
		g.logger.Debug().Str("path", path).Msg("Directory exists")
		return false, nil
	case err == nil:
		return false, errors.Newf(errors.ErrPathCollision, "%s exists and is not a directory", path).
			WithDetail("path", path)
	case !os.IsNotExist(err):
		return false, errors.Wrap(err, errors.ErrDirCreate, "cannot stat directory")
	}

	if g.dryRun {
		g.logger.Debug().Str("path", path).Msg("Would create directory")
		return true, nil
	}
	if err := g.fs.Mkdir(path, g.perms.Directory); err != nil {
		return false, errors.Wrap(err, errors.ErrDirCreate, "cannot create directory")
	}
	g.logger.Debug().Str("path", path).Msg("Created directory")
	return true, nil
}

// writeFile creates or truncates path and writes content in full
func (g *Generator) writeFile(path, content string) (FileResult, error) {
	file := FileResult{Bytes: len(content)}

	info, err := g.fs.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return file, errors.Newf(errors.ErrPathCollision, "%s is a directory", path).
			WithDetail("path", path)
	case err == nil:
		file.Overwritten = true
	case !os.IsNotExist(err):
		return file, errors.Wrap(err, errors.ErrFileWrite, "cannot stat file")
	}

	if g.dryRun {
		g.logger.Debug().Str("path", path).Int("bytes", file.Bytes).Msg("Would write file")
		return file, nil
	}

	f, err := g.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, g.perms.File)
	if err != nil {
		return file, errors.Wrap(err, errors.ErrFileWrite, "cannot open file")
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return file, errors.Wrap(err, errors.ErrFileWrite, "cannot write file")
	}
	if err := f.Close(); err != nil {
		return file, errors.Wrap(err, errors.ErrFileWrite, "cannot close file")
	}

	g.logger.Debug().Str("path", path).Int("bytes", file.Bytes).Bool("overwritten", file.Overwritten).Msg("Wrote file")
	return file, nil
}
