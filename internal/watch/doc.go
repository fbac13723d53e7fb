// Package watch keeps the sidebar current while documentation is edited.
//
// A recursive fsnotify watcher over the docs root turns structural changes (files or
// directories created, removed or renamed) into debounced rebuild requests. A single
// worker performs rebuilds, so builds never overlap and a burst of events during a build
// results in exactly one follow-up build. Content edits never change the sidebar and are
// ignored. An optional gocron job requests a rebuild on a fixed interval for filesystems
// that do not deliver events.
package watch
