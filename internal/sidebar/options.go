package sidebar

import (
	"slices"

	"git.home.luguber.info/inful/docsidebar/internal/util/sets"
)

// DefaultIgnoreFolders are top-level folders that never produce a sidebar key:
// site tooling and shared assets rather than documentation sections.
var DefaultIgnoreFolders = []string{"scripts", "components", "assets", ".vitepress"}

// IndexFile is the document name treated as a directory index.
const IndexFile = "index.md"

// Options controls how a docs tree is turned into sidebar data.
// The zero value reproduces the plain directory structure.
type Options struct {
	// IgnoreList names extra top-level folders to skip, on top of DefaultIgnoreFolders.
	IgnoreList []string
	// IgnoreIndexItem drops index.md leaves and prunes groups left empty by that.
	IgnoreIndexItem bool
	// Prefix is cut from labels, together with anything before its first occurrence.
	Prefix string
	// Collapsed, when non-nil, is copied onto every directory group.
	Collapsed *bool
	// OnlyMarkdown restricts leaves to .md files.
	OnlyMarkdown bool
	// MaxDepth bounds directory nesting below the docs root; 0 means unbounded.
	MaxDepth int
}

func (o Options) clone() Options {
	o.IgnoreList = slices.Clone(o.IgnoreList)
	if o.Collapsed != nil {
		c := *o.Collapsed
		o.Collapsed = &c
	}
	return o
}

func (o Options) ignoredFolders() sets.Set[string] {
	return sets.New(DefaultIgnoreFolders...).Union(sets.New(o.IgnoreList...))
}

// Bool returns a pointer to b, for Options.Collapsed literals.
func Bool(b bool) *bool { return &b }
