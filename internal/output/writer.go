package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/docsidebar/internal/sidebar"
)

// StdoutTarget names standard output in results and logs.
const StdoutTarget = "-"

// Writer delivers an encoded mapping to its target.
type Writer struct {
	Format Format
	// Wrap nests the mapping under themeConfig.sidebar (stdout and File only).
	Wrap bool
	// File receives the encoded mapping; empty or "-" means Stdout.
	File string
	// MergeInto names an existing site config whose themeConfig.sidebar is replaced.
	MergeInto string
	Stdout    io.Writer
}

// Result reports what a Write did.
type Result struct {
	Target  string
	Changed bool
}

// Write encodes m and delivers it. Files whose content would not change are left
// untouched; stdout is always written.
func (w *Writer) Write(m *sidebar.Mapping) (Result, error) {
	if w.MergeInto != "" {
		existing, err := os.ReadFile(w.MergeInto)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Result{Target: w.MergeInto}, err
		}
		data, err := Inject(existing, m, w.Format)
		if err != nil {
			return Result{Target: w.MergeInto}, fmt.Errorf("%s: %w", w.MergeInto, err)
		}
		changed, err := WriteFileAtomic(w.MergeInto, data)
		return Result{Target: w.MergeInto, Changed: changed}, err
	}

	data, err := Encode(m, w.Format, w.Wrap)
	if err != nil {
		return Result{}, err
	}

	if w.File == "" || w.File == StdoutTarget {
		out := w.Stdout
		if out == nil {
			out = os.Stdout
		}
		if _, err := out.Write(data); err != nil {
			return Result{Target: StdoutTarget}, err
		}
		return Result{Target: StdoutTarget, Changed: true}, nil
	}

	changed, err := WriteFileAtomic(w.File, data)
	return Result{Target: w.File, Changed: changed}, err
}

// WriteFileAtomic replaces path with data through a temp file and rename, so readers
// never observe a partial file. It returns false without writing when path already
// holds data.
func WriteFileAtomic(path string, data []byte) (bool, error) {
	if current, err := os.ReadFile(path); err == nil && bytes.Equal(current, data) {
		return false, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return false, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return false, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return false, fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return false, fmt.Errorf("rename into place: %w", err)
	}
	return true, nil
}
