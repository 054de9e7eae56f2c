package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewMemRoot returns an in-memory filesystem where root already exists
func NewMemRoot(t *testing.T, root string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(root, 0755))
	return fs
}

// ListTree returns the directories and files under dir, relative to it,
// slash separated and sorted
func ListTree(t *testing.T, fs afero.Fs, dir string) (dirs, files []string) {
	t.Helper()
	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || path == dir {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if info.IsDir() {
			dirs = append(dirs, rel)
		} else {
			files = append(files, rel)
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(dirs)
	sort.Strings(files)
	return dirs, files
}

// FailingFs wraps an afero.Fs and fails mutating calls on chosen paths
type FailingFs struct {
	afero.Fs

	mu         sync.Mutex
	errorPaths map[string]error
}

// NewFailingFs wraps base with no failures registered
func NewFailingFs(base afero.Fs) *FailingFs {
	return &FailingFs{Fs: base, errorPaths: make(map[string]error)}
}

// FailOn makes every later Mkdir or OpenFile on path return err
func (f *FailingFs) FailOn(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errorPaths[filepath.Clean(path)] = err
}

func (f *FailingFs) injected(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errorPaths[filepath.Clean(path)]
}

// Mkdir fails when path was registered with FailOn
func (f *FailingFs) Mkdir(name string, perm os.FileMode) error {
	if err := f.injected(name); err != nil {
		return &os.PathError{Op: "mkdir", Path: name, Err: err}
	}
	return f.Fs.Mkdir(name, perm)
}

// OpenFile fails when path was registered with FailOn
func (f *FailingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if err := f.injected(name); err != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	return f.Fs.OpenFile(name, flag, perm)
}
