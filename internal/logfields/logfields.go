package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field names shared by every package.
const (
	KeyBuildID    = "build_id"
	KeyPath       = "path"
	KeyDocsRoot   = "docs_root"
	KeyKey        = "key"
	KeyKeys       = "keys"
	KeyGroups     = "groups"
	KeyLeaves     = "leaves"
	KeyOutput     = "output"
	KeyFormat     = "format"
	KeyEvent      = "event"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func DocsRoot(p string) slog.Attr     { return slog.String(KeyDocsRoot, p) }
func Key(k string) slog.Attr          { return slog.String(KeyKey, k) }
func Keys(n int) slog.Attr            { return slog.Int(KeyKeys, n) }
func Groups(n int) slog.Attr          { return slog.Int(KeyGroups, n) }
func Leaves(n int) slog.Attr          { return slog.Int(KeyLeaves, n) }
func Output(target string) slog.Attr  { return slog.String(KeyOutput, target) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Event(op string) slog.Attr       { return slog.String(KeyEvent, op) }
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
