package sidebar

import (
	"regexp"
	"strings"
)

// hiddenDoc matches documents excluded from navigation by a leading hyphen.
var hiddenDoc = regexp.MustCompile(`^-.*\.(md|MD)$`)

// IsHiddenDoc reports whether name is a hidden document such as "-draft.md".
func IsHiddenDoc(name string) bool {
	return hiddenDoc.MatchString(name)
}

// RemovePrefix cuts everything up to and including the first occurrence of prefix.
// Names without prefix, or an empty prefix, are returned unchanged.
func RemovePrefix(name, prefix string) string {
	if prefix == "" {
		return name
	}
	if _, after, ok := strings.Cut(name, prefix); ok {
		return after
	}
	return name
}

// docBase strips the lowercase .md extension only; other names are kept whole.
func docBase(name string) string {
	return strings.TrimSuffix(name, ".md")
}

func leafLink(segments []string, base string) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, segments...)
	parts = append(parts, base+".html")
	return "/" + strings.Join(parts, "/")
}
