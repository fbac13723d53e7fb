package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteDocs creates each slash-separated path under root as a small markdown file,
// creating parent directories as needed. Paths ending in "/" become empty directories.
func WriteDocs(t testing.TB, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if p != "" && p[len(p)-1] == '/' {
			if err := os.MkdirAll(full, testDirPermissions); err != nil {
				t.Fatalf("create dir %s: %v", full, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), testDirPermissions); err != nil {
			t.Fatalf("create dir for %s: %v", full, err)
		}
		if err := os.WriteFile(full, []byte("# "+filepath.Base(p)+"\n"), testFilePermissions); err != nil {
			t.Fatalf("write %s: %v", full, err)
		}
	}
}

// Project creates a temp project whose docs directory holds paths and returns the
// project directory (the working directory a build resolves "/docs" against).
func Project(t testing.TB, paths ...string) string {
	t.Helper()
	dir := t.TempDir()
	WriteDocs(t, filepath.Join(dir, "docs"), paths...)
	return dir
}
