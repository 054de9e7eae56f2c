package generate

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"testing"

	"github.com/arthur-debert/commhealth/pkg/config"
	"github.com/arthur-debert/commhealth/pkg/errors"
	"github.com/arthur-debert/commhealth/pkg/prompt"
	"github.com/arthur-debert/commhealth/pkg/templates"
	"github.com/arthur-debert/commhealth/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "/project"

func testAnswers() prompt.AnswerSet {
	return testutil.Answers(map[string]string{
		prompt.GitHubUsernames: "",
		prompt.PatreonUsername: "",
		prompt.TideliftPackage: "",
		prompt.CustomFunding:   "",
	})
}

func memFs(t *testing.T) afero.Fs {
	return testutil.NewMemRoot(t, root)
}

func allPaths() []string {
	var paths []string
	for _, out := range templates.All() {
		paths = append(paths, out.Path)
	}
	sort.Strings(paths)
	return paths
}

func TestGenerateFreshRoot(t *testing.T) {
	fs := memFs(t)

	result, err := New(Options{Fs: fs}).Generate(DefaultLayout(root), testAnswers())
	require.NoError(t, err)

	dirs, files := testutil.ListTree(t, fs, root)
	assert.Equal(t, []string{".github", ".github/DISCUSSION_TEMPLATE", ".github/ISSUE_TEMPLATE", "docs"}, dirs)
	assert.Equal(t, allPaths(), files)

	assert.Equal(t, templates.Dirs(), result.DirsCreated)
	assert.Empty(t, result.DirsExisting)
	require.Len(t, result.Files, 14)
	for _, f := range result.Files {
		assert.False(t, f.Overwritten, f.Path)
		assert.Positive(t, f.Bytes, f.Path)
	}
	assert.Empty(t, result.Warnings)

	contributing, err := afero.ReadFile(fs, filepath.Join(root, "docs", "CONTRIBUTING.md"))
	require.NoError(t, err)
	assert.Contains(t, string(contributing), "## License\n\nMIT")
	assert.Contains(t, string(contributing), "© Jane Doe")

	bug, err := afero.ReadFile(fs, filepath.Join(root, ".github", "ISSUE_TEMPLATE", "BUG_REPORT.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(bug), "assignees:\n  - \"jane\"")
}

func TestGenerateBytesMatchRender(t *testing.T) {
	fs := memFs(t)
	answers := testAnswers()

	result, err := New(Options{Fs: fs}).Generate(DefaultLayout(root), answers)
	require.NoError(t, err)

	for i, out := range templates.All() {
		want, err := out.Render(answers)
		require.NoError(t, err)

		got, err := afero.ReadFile(fs, filepath.Join(root, filepath.FromSlash(out.Path)))
		require.NoError(t, err)
		assert.Equal(t, want, string(got), out.Path)
		assert.Equal(t, out.Path, result.Files[i].Path)
		assert.Equal(t, len(want), result.Files[i].Bytes)
	}
}

func TestGenerateRerunOverwrites(t *testing.T) {
	fs := memFs(t)
	gen := New(Options{Fs: fs})

	_, err := gen.Generate(DefaultLayout(root), testAnswers())
	require.NoError(t, err)

	// A longer stale file must be truncated, not appended to
	stale := filepath.Join(root, "docs", "SUPPORT.md")
	require.NoError(t, afero.WriteFile(fs, stale, []byte(strings.Repeat("stale\n", 5000)), 0644))

	result, err := gen.Generate(DefaultLayout(root), testAnswers())
	require.NoError(t, err)

	assert.Empty(t, result.DirsCreated)
	assert.Equal(t, templates.Dirs(), result.DirsExisting)
	for _, f := range result.Files {
		assert.True(t, f.Overwritten, f.Path)
	}

	_, files := testutil.ListTree(t, fs, root)
	assert.Equal(t, allPaths(), files)

	support, err := afero.ReadFile(fs, stale)
	require.NoError(t, err)
	assert.NotContains(t, string(support), "stale")
	assert.True(t, strings.HasPrefix(string(support), "# Support"))
}

func TestGenerateKeepsUnrelatedFiles(t *testing.T) {
	fs := memFs(t)
	extra := filepath.Join(root, "docs", "NOTES.md")
	require.NoError(t, fs.MkdirAll(filepath.Dir(extra), 0755))
	require.NoError(t, afero.WriteFile(fs, extra, []byte("mine"), 0644))

	result, err := New(Options{Fs: fs}).Generate(DefaultLayout(root), testAnswers())
	require.NoError(t, err)

	assert.Contains(t, result.DirsExisting, "docs")
	content, err := afero.ReadFile(fs, extra)
	require.NoError(t, err)
	assert.Equal(t, "mine", string(content))
}

func TestGenerateDirectoryCollision(t *testing.T) {
	fs := memFs(t)
	require.NoError(t, afero.WriteFile(fs, filepath.Join(root, "docs"), []byte("not a dir"), 0644))

	result, err := New(Options{Fs: fs}).Generate(DefaultLayout(root), testAnswers())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathCollision))

	// Directories before the collision were created, no file was written
	assert.Equal(t, []string{".github", ".github/DISCUSSION_TEMPLATE", ".github/ISSUE_TEMPLATE"}, result.DirsCreated)
	assert.Empty(t, result.Files)
}

func TestGenerateStopsAtFirstFileError(t *testing.T) {
	fs := memFs(t)
	blocked := filepath.Join(root, "docs", "GOVERNANCE.md")
	require.NoError(t, fs.MkdirAll(blocked, 0755))

	result, err := New(Options{Fs: fs}).Generate(DefaultLayout(root), testAnswers())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathCollision))

	// Everything written before GOVERNANCE.md stays, nothing after it exists
	require.Len(t, result.Files, 11)
	assert.Equal(t, "docs/CONTRIBUTING.md", result.Files[10].Path)

	exists, err := afero.Exists(fs, filepath.Join(root, "docs", "CONTRIBUTING.md"))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = afero.Exists(fs, filepath.Join(root, "docs", "SUPPORT.md"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGenerateReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(memFs(t))

	result, err := New(Options{Fs: fs}).Generate(DefaultLayout(root), testAnswers())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	assert.Empty(t, result.DirsCreated)
	assert.Empty(t, result.Files)
}

func TestGenerateReadOnlyFiles(t *testing.T) {
	base := memFs(t)
	for _, dir := range templates.Dirs() {
		require.NoError(t, base.MkdirAll(filepath.Join(root, dir), 0755))
	}

	_, err := New(Options{Fs: afero.NewReadOnlyFs(base)}).Generate(DefaultLayout(root), testAnswers())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
}

func TestGenerateMissingRoot(t *testing.T) {
	_, err := New(Options{Fs: afero.NewMemMapFs()}).Generate(DefaultLayout("/nowhere"), testAnswers())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRootNotFound))
}

func TestGenerateDryRun(t *testing.T) {
	fs := memFs(t)
	require.NoError(t, fs.MkdirAll(filepath.Join(root, "docs"), 0755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(root, "docs", "SUPPORT.md"), []byte("old"), 0644))

	result, err := New(Options{Fs: fs, DryRun: true}).Generate(DefaultLayout(root), testAnswers())
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, []string{".github", ".github/DISCUSSION_TEMPLATE", ".github/ISSUE_TEMPLATE"}, result.DirsCreated)
	assert.Equal(t, []string{"docs"}, result.DirsExisting)
	require.Len(t, result.Files, 14)
	assert.True(t, result.Files[12].Overwritten)

	dirs, files := testutil.ListTree(t, fs, root)
	assert.Equal(t, []string{"docs"}, dirs)
	assert.Equal(t, []string{"docs/SUPPORT.md"}, files)

	content, err := afero.ReadFile(fs, filepath.Join(root, "docs", "SUPPORT.md"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))
}

func TestGenerateLintWarnings(t *testing.T) {
	fs := memFs(t)
	answers := prompt.NewAnswerSet(map[string]string{
		prompt.AuthorName:       "Jane",
		prompt.QuestionAssignee: "a: b",
	})

	result, err := New(Options{Fs: fs}).Generate(DefaultLayout(root), answers)
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "QUESTION.md")
	assert.Len(t, result.Files, 14)
}

func TestGenerateOnDisk(t *testing.T) {
	dir := t.TempDir()
	gen := New(Options{
		Fs:          afero.NewOsFs(),
		Permissions: config.FilePermissions{Directory: 0700, File: 0600},
	})

	result, err := gen.Generate(DefaultLayout(dir), testAnswers())
	require.NoError(t, err)
	assert.Len(t, result.Files, 14)

	info, err := os.Stat(filepath.Join(dir, ".github"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())

	info, err = os.Stat(filepath.Join(dir, ".github", "FUNDING.yml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	funding, err := os.ReadFile(filepath.Join(dir, ".github", "FUNDING.yml"))
	require.NoError(t, err)
	assert.Equal(t, "\ngithub: []\npatreon: \ntidelift: \ncustom: [\"\"]\n", string(funding))
}

func TestNewDefaults(t *testing.T) {
	gen := New(Options{})
	assert.NotNil(t, gen.fs)
	assert.Equal(t, os.FileMode(0755), gen.perms.Directory)
	assert.Equal(t, os.FileMode(0644), gen.perms.File)
}

func TestGenerateWriteFailureKeepsEarlierFiles(t *testing.T) {
	fs := testutil.NewFailingFs(memFs(t))
	fs.FailOn(filepath.Join(root, ".github", "FUNDING.yml"), syscall.ENOSPC)

	result, err := New(Options{Fs: fs}).Generate(DefaultLayout(root), testAnswers())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.ErrorIs(t, err, syscall.ENOSPC)

	require.Len(t, result.Files, 8)
	_, files := testutil.ListTree(t, fs, root)
	assert.Len(t, files, 8)
	assert.NotContains(t, files, ".github/FUNDING.yml")
}

func TestGenerateMkdirFailure(t *testing.T) {
	fs := testutil.NewFailingFs(memFs(t))
	fs.FailOn(filepath.Join(root, "docs"), syscall.EACCES)

	result, err := New(Options{Fs: fs}).Generate(DefaultLayout(root), testAnswers())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	assert.Len(t, result.DirsCreated, 3)
	assert.Empty(t, result.Files)
}
