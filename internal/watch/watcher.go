package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docsidebar/internal/build"
	"git.home.luguber.info/inful/docsidebar/internal/config"
	derrors "git.home.luguber.info/inful/docsidebar/internal/errors"
	"git.home.luguber.info/inful/docsidebar/internal/logfields"
	"git.home.luguber.info/inful/docsidebar/internal/metrics"
)

// Rebuilder performs one complete sidebar build.
type Rebuilder interface {
	Run(ctx context.Context) (*build.Result, error)
}

// Options configures a Watcher.
type Options struct {
	// Root is the docs directory watched recursively.
	Root string
	// OwnFiles are written by the rebuild itself; their events are ignored.
	OwnFiles []string
	// Debounce is the quiet window before a rebuild (default 300ms).
	Debounce time.Duration
	// PollInterval requests a rebuild periodically when positive.
	PollInterval time.Duration
	Recorder     metrics.Recorder
	Logger       *slog.Logger
}

// Watcher rebuilds the sidebar whenever the structure of the docs tree changes.
type Watcher struct {
	rebuilder Rebuilder
	opts      Options
	logger    *slog.Logger
	recorder  metrics.Recorder
	debouncer *debouncer
	// built receives every finished build; tests use it to synchronise.
	built chan *build.Result
}

// New creates a Watcher driving rebuilder.
func New(rebuilder Rebuilder, opts Options) *Watcher {
	if opts.Debounce <= 0 {
		opts.Debounce = config.DefaultDebounce
	}
	w := &Watcher{
		rebuilder: rebuilder,
		opts:      opts,
		logger:    opts.Logger,
		recorder:  opts.Recorder,
		debouncer: newDebouncer(opts.Debounce),
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	if w.recorder == nil {
		w.recorder = metrics.NoopRecorder{}
	}
	return w
}

// Run performs an initial build, then watches until ctx is done. A failing build is
// logged and the watcher keeps running so the next change can fix it.
func (w *Watcher) Run(ctx context.Context) error {
	if st, err := os.Stat(w.opts.Root); err != nil {
		return derrors.WatchFailed("resolve docs root", err).WithContext("docs_root", w.opts.Root)
	} else if !st.IsDir() {
		return derrors.WatchFailed("resolve docs root", fmt.Errorf("not a directory: %s", w.opts.Root)).
			WithContext("docs_root", w.opts.Root)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return derrors.WatchFailed("create watcher", err)
	}
	defer func() { _ = watcher.Close() }()
	w.addDirsRecursive(watcher, w.opts.Root)

	if w.opts.PollInterval > 0 {
		p, err := newPoller(w.opts.PollInterval, w.debouncer.request)
		if err != nil {
			return derrors.WatchFailed("schedule polling", err)
		}
		p.start()
		defer p.stop()
	}
	defer w.debouncer.stop()

	w.rebuild(ctx, "initial")

	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		w.runWorker(ctx)
	}()

	w.logger.Info("Watching docs for changes",
		logfields.DocsRoot(w.opts.Root),
		slog.Duration("debounce", w.opts.Debounce))

	err = w.loop(ctx, watcher)
	<-workerDone
	return err
}

func (w *Watcher) loop(ctx context.Context, watcher *fsnotify.Watcher) error {
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping watcher")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(watcher, ev)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", logfields.Error(err))
		}
	}
}

// runWorker performs rebuilds one at a time. Requests arriving during a build stay
// pending in the debouncer's channel and produce exactly one follow-up build.
func (w *Watcher) runWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.debouncer.requests:
			w.rebuild(ctx, "change")
		}
	}
}

func (w *Watcher) rebuild(ctx context.Context, reason string) {
	result, err := w.rebuilder.Run(ctx)
	if err != nil {
		attrs := []any{slog.String("reason", reason), logfields.Error(err)}
		if result != nil {
			attrs = append(attrs, logfields.BuildID(result.BuildID))
		}
		w.logger.Warn("Sidebar rebuild failed", attrs...)
	} else {
		w.logger.Debug("Sidebar rebuilt",
			slog.String("reason", reason),
			logfields.BuildID(result.BuildID),
			slog.String("status", string(result.Status)))
	}
	if w.built != nil {
		w.built <- result
	}
}

// handleEvent filters an event and triggers a rebuild for structural changes.
func (w *Watcher) handleEvent(watcher *fsnotify.Watcher, ev fsnotify.Event) {
	if shouldIgnoreEvent(ev.Name, w.opts.OwnFiles) {
		return
	}
	op := triggerOp(ev.Op)
	if op == "" {
		return
	}
	if ev.Op.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			w.addDirsRecursive(watcher, ev.Name)
		}
	}
	w.logger.Debug("Docs structure changed", logfields.Path(ev.Name), logfields.Event(op))
	w.recorder.IncWatchEvent(op)
	w.debouncer.trigger()
}

// addDirsRecursive watches root and every directory below it. Symlinked directories
// are not followed and unreadable entries are skipped.
func (w *Watcher) addDirsRecursive(watcher *fsnotify.Watcher, root string) {
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				w.logger.Warn("watch add failed", logfields.Path(path), logfields.Error(err))
			}
		}
		return nil
	})
}
