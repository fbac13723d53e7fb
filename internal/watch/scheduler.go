package watch

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/docsidebar/internal/logfields"
)

// poller wraps a gocron scheduler that requests rebuilds on a fixed interval.
type poller struct {
	scheduler gocron.Scheduler
}

func newPoller(interval time.Duration, request func()) (*poller, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %s", interval)
	}
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(request),
		gocron.WithName("sidebar-poll"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("failed to create poll job: %w", err)
	}
	return &poller{scheduler: s}, nil
}

func (p *poller) start() {
	slog.Debug("Starting poll scheduler")
	p.scheduler.Start()
}

func (p *poller) stop() {
	if err := p.scheduler.Shutdown(); err != nil {
		slog.Warn("poll scheduler shutdown failed", logfields.Error(err))
	}
}
