package watch

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// structuralOps are the operations that can change the sidebar.
const structuralOps = fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// triggerOp returns the lowercase name of the first structural operation in op, or ""
// when op only carries Write or Chmod.
func triggerOp(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Remove):
		return "remove"
	case op.Has(fsnotify.Rename):
		return "rename"
	default:
		return ""
	}
}

// shouldIgnoreEvent returns true for paths whose changes must not trigger rebuilds:
// editor swap files and the output files written by the rebuild itself.
func shouldIgnoreEvent(path string, ownFiles []string) bool {
	base := filepath.Base(path)

	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, ".#") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}

	clean := filepath.Clean(path)
	for _, own := range ownFiles {
		if own == "" {
			continue
		}
		if clean == filepath.Clean(own) {
			return true
		}
		// temp files used for atomic replacement
		if filepath.Dir(clean) == filepath.Dir(own) &&
			strings.HasPrefix(base, "."+filepath.Base(own)+".tmp-") {
			return true
		}
	}
	return false
}
