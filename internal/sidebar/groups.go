package sidebar

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/docsidebar/internal/logfields"
	"git.home.luguber.info/inful/docsidebar/internal/util/sets"
)

// BuildMappingDir is BuildMapping over the docs directory at root.
func (b *Builder) BuildMappingDir(root string) (*Mapping, error) {
	m, err := b.BuildMapping(os.DirFS(root))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", root, err)
	}
	return m, nil
}

// BuildMapping builds one sidebar key per top-level folder of fsys, skipping
// DefaultIgnoreFolders and Options.IgnoreList. Each key holds a single unlabelled
// group wrapping the folder's nodes. With IgnoreIndexItem, keys whose groups all
// came out empty are removed.
func (b *Builder) BuildMapping(fsys fs.FS) (*Mapping, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: .: %w", ErrReadDir, err)
	}

	b.logger.Debug("Building sidebar mapping", slog.Any("ignored", sets.Sorted(b.ignored)))

	m := NewMapping()
	for _, entry := range entries {
		name := entry.Name()
		isDir, err := isDirEntry(fsys, ".", entry)
		if err != nil {
			return nil, err
		}
		if !isDir {
			continue
		}
		if b.ignored.Has(name) {
			b.logger.Debug("Ignoring top-level folder", logfields.Path(name))
			continue
		}

		items, err := b.BuildNodes(fsys, name)
		if err != nil {
			return nil, err
		}
		m.Set(Key(name), []Group{{Items: items}})
	}

	if b.opts.IgnoreIndexItem {
		pruneEmpty(m)
	}
	return m, nil
}

// Key returns the sidebar key for a top-level folder.
func Key(folder string) string {
	return "/" + folder + "/"
}

func pruneEmpty(m *Mapping) {
	for _, key := range m.Keys() {
		groups, _ := m.Get(key)
		kept := make([]Group, 0, len(groups))
		for _, g := range groups {
			if len(g.Items) > 0 {
				kept = append(kept, g)
			}
		}
		if len(kept) == 0 {
			m.Delete(key)
			continue
		}
		m.Set(key, kept)
	}
}
