// Package build runs a complete sidebar build: resolve the docs root, derive the
// mapping from scratch, write it to its target, then record metrics and log a summary.
//
// The build and watch commands both route through Service so a one-shot build and a
// rebuild triggered by the watcher behave identically.
package build
