// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dario.cat/mergo"
	"github.com/spf13/afero"
)

// Marks a directory in a Tree
const Dir = "<dir>"

// Describes filesystem content: path relative to the root mapped to file
// content, or Dir for an empty directory.
type Tree map[string]string

// Creates tree below root in fsys. If any operation fails, the test is
// terminated.
func MakeTree(t *testing.T, fsys afero.Fs, root string, tree Tree) {
	t.Helper()
	if err := fsys.MkdirAll(root, 0755); err != nil {
		t.Fatalf("creating %s: %v", root, err)
	}
	for rel, content := range tree {
		path := filepath.Join(root, rel)
		if content == Dir {
			if err := fsys.MkdirAll(path, 0755); err != nil {
				t.Fatalf("creating directory %s: %v", path, err)
			}
			continue
		}
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", path, err)
		}
		if err := afero.WriteFile(fsys, path, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
}

// Returns the content of path, failing the test if it cannot be read
func ReadFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// Reports whether path exists in fsys
func Exists(t *testing.T, fsys afero.Fs, path string) bool {
	t.Helper()
	ok, err := afero.Exists(fsys, path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	return ok
}

// ErrInjected is returned by FailingFs for the configured path.
var ErrInjected = errors.New("injected write failure")

// FailingFs wraps an afero.Fs and fails any attempt to open FailPath for
// writing. Reads and every other path pass through.
type FailingFs struct {
	afero.Fs
	FailPath string
}

func (f *FailingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if filepath.Clean(name) == filepath.Clean(f.FailPath) && flag&(os.O_WRONLY|os.O_RDWR) != 0 {
		return nil, &os.PathError{Op: "open", Path: name, Err: ErrInjected}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func (f *FailingFs) Create(name string) (afero.File, error) {
	return f.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
}

// MergeStructs merges b into a and returns the merged copy.
// Said in another way, a is the default and b is the override.
// Used to express succinctly the delta in the test cases.
// Since it is a test helper, it will panic in case of error.
func MergeStructs[T any](a, b T) T {
	if err := mergo.Merge(&a, b, mergo.WithOverride); err != nil {
		panic(err)
	}
	return a
}
