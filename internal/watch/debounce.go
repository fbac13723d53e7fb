package watch

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of triggers into a single request on requests. The
// channel has capacity one, so at most one request is ever pending.
type debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	delay    time.Duration
	requests chan struct{}
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay, requests: make(chan struct{}, 1)}
}

// trigger (re)starts the quiet window; the request fires once no trigger arrived for
// the whole delay.
func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.request)
}

// request enqueues a rebuild immediately unless one is already pending.
func (d *debouncer) request() {
	select {
	case d.requests <- struct{}{}:
	default:
	}
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}
