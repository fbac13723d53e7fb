// Package sidebar derives sidebar navigation data from a documentation directory tree.
//
// A Builder walks the tree below each top-level folder of the docs root and produces
// an ordered Mapping keyed by URL prefix ("/guide/"), ready to be attached to a site
// renderer's themeConfig.sidebar. Every call recomputes from scratch; a Builder holds
// only its immutable Options.
package sidebar
