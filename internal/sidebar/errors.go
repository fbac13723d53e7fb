package sidebar

import "errors"

var (
	// ErrReadDir indicates a directory in the docs tree could not be listed.
	ErrReadDir = errors.New("docs directory read failed")

	// ErrStat indicates an entry's type could not be resolved (e.g. a dangling symlink).
	ErrStat = errors.New("docs entry stat failed")

	// ErrMaxDepth indicates the tree is nested deeper than Options.MaxDepth allows.
	ErrMaxDepth = errors.New("docs tree exceeds maximum depth")
)
