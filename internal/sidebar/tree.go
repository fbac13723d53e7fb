package sidebar

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"

	"git.home.luguber.info/inful/docsidebar/internal/logfields"
	"git.home.luguber.info/inful/docsidebar/internal/util/sets"
)

// Builder turns a docs tree into sidebar nodes. It is safe for repeated and
// concurrent use: it keeps no state between calls besides its Options.
type Builder struct {
	opts    Options
	ignored sets.Set[string]
	logger  *slog.Logger
}

// NewBuilder captures a copy of opts.
func NewBuilder(opts Options) *Builder {
	opts = opts.clone()
	return &Builder{
		opts:    opts,
		ignored: opts.ignoredFolders(),
		logger:  slog.Default(),
	}
}

// WithLogger sets the logger used for debug output.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Options returns a copy of the builder's options.
func (b *Builder) Options() Options {
	return b.opts.clone()
}

// BuildNodesDir is BuildNodes over the directory tree rooted at root.
func (b *Builder) BuildNodesDir(root string, segments ...string) ([]Node, error) {
	nodes, err := b.BuildNodes(os.DirFS(root), segments...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", root, err)
	}
	return nodes, nil
}

// BuildNodes lists the directory at segments (relative to the root of fsys) and
// returns its navigation nodes in listing order, recursing into subdirectories.
// Directories without any surviving leaf are dropped. Any listing or stat failure
// aborts the whole call.
func (b *Builder) BuildNodes(fsys fs.FS, segments ...string) ([]Node, error) {
	dir := dirPath(segments)
	if b.opts.MaxDepth > 0 && len(segments) > b.opts.MaxDepth {
		return nil, fmt.Errorf("%w: %s (max %d)", ErrMaxDepth, dir, b.opts.MaxDepth)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDir, dir, err)
	}

	if b.opts.IgnoreIndexItem && len(entries) == 1 && entries[0].Name() == IndexFile {
		return []Node{}, nil
	}

	nodes := make([]Node, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		isDir, err := isDirEntry(fsys, dir, entry)
		if err != nil {
			return nil, err
		}

		if isDir {
			items, err := b.BuildNodes(fsys, slices.Concat(segments, []string{name})...)
			if err != nil {
				return nil, err
			}
			if len(items) == 0 {
				b.logger.Debug("Skipping directory without documents", logfields.Path(path.Join(dir, name)))
				continue
			}
			nodes = append(nodes, b.group(name, items))
			continue
		}

		if b.skipFile(name) {
			continue
		}
		base := docBase(name)
		nodes = append(nodes, Leaf{
			Text: RemovePrefix(base, b.opts.Prefix),
			Link: leafLink(segments, base),
		})
	}
	return nodes, nil
}

func (b *Builder) group(name string, items []Node) Group {
	g := Group{Text: RemovePrefix(name, b.opts.Prefix), Items: items}
	if b.opts.Collapsed != nil {
		g.Collapsed = Bool(*b.opts.Collapsed)
	}
	return g
}

func (b *Builder) skipFile(name string) bool {
	if b.opts.IgnoreIndexItem && name == IndexFile {
		return true
	}
	if IsHiddenDoc(name) {
		return true
	}
	return b.opts.OnlyMarkdown && !strings.HasSuffix(name, ".md")
}

// isDirEntry resolves symlinks the way stat does, so linked directories are walked.
func isDirEntry(fsys fs.FS, dir string, entry fs.DirEntry) (bool, error) {
	if entry.IsDir() {
		return true, nil
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	p := path.Join(dir, entry.Name())
	info, err := fs.Stat(fsys, p)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrStat, p, err)
	}
	return info.IsDir(), nil
}

func dirPath(segments []string) string {
	if len(segments) == 0 {
		return "."
	}
	return path.Join(segments...)
}
