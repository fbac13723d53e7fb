package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promcollect "github.com/prometheus/client_golang/prometheus/collectors"

	"git.home.luguber.info/inful/docsidebar/internal/build"
	"git.home.luguber.info/inful/docsidebar/internal/config"
	derrors "git.home.luguber.info/inful/docsidebar/internal/errors"
	"git.home.luguber.info/inful/docsidebar/internal/logfields"
	"git.home.luguber.info/inful/docsidebar/internal/metrics"
	"git.home.luguber.info/inful/docsidebar/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	SidebarFlags `embed:""`

	Debounce     time.Duration `name:"debounce" help:"Quiet window before rebuilding (overrides watch.debounce)"`
	PollInterval time.Duration `name:"poll-interval" help:"Also rebuild on this interval (overrides watch.poll_interval)"`
	MetricsAddr  string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (overrides watch.metrics_addr)"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, logger, err := w.load(g, root)
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return derrors.InternalError("resolve working directory", err)
	}
	return runWatch(ctx, cfg, cwd, logger, stdout(g))
}

func (w *WatchCmd) load(g *Global, root *CLI) (*config.Config, *slog.Logger, error) {
	cfg, logger, err := loadConfig(g, root, &w.SidebarFlags)
	if err != nil {
		return nil, nil, err
	}
	if w.Debounce > 0 {
		cfg.Watch.Debounce = w.Debounce
	}
	if w.PollInterval > 0 {
		cfg.Watch.PollInterval = w.PollInterval
	}
	if w.MetricsAddr != "" {
		cfg.Watch.MetricsAddr = w.MetricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// runWatch serves metrics when configured and watches until ctx is done.
func runWatch(ctx context.Context, cfg *config.Config, cwd string, logger *slog.Logger, out io.Writer) error {
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if cfg.Watch.MetricsAddr != "" {
		reg := prom.NewRegistry()
		reg.MustRegister(promcollect.NewGoCollector(), promcollect.NewProcessCollector(promcollect.ProcessCollectorOpts{}))
		recorder = metrics.NewPrometheusRecorder(reg)

		stop, err := serveMetrics(cfg.Watch.MetricsAddr, reg, logger)
		if err != nil {
			return derrors.WatchFailed("serve metrics", err).WithContext("addr", cfg.Watch.MetricsAddr)
		}
		defer stop()
	}

	svc := build.NewService(cfg, cwd).WithLogger(logger).WithRecorder(recorder).WithStdout(out)
	w := watch.New(svc, watch.Options{
		Root:         svc.DocsRoot(),
		OwnFiles:     []string{svc.OutputTarget()},
		Debounce:     cfg.Watch.Debounce,
		PollInterval: cfg.Watch.PollInterval,
		Recorder:     recorder,
		Logger:       logger,
	})
	return w.Run(ctx)
}

// serveMetrics starts a metrics server on addr and returns a function stopping it.
func serveMetrics(addr string, reg *prom.Registry, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(reg))
	srv := &http.Server{Handler: mux, ReadTimeout: 30 * time.Second, WriteTimeout: 30 * time.Second, IdleTimeout: 120 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server error", logfields.Error(err))
		}
	}()
	logger.Info("Serving metrics", slog.String("addr", ln.Addr().String()))

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Metrics server shutdown error", logfields.Error(err))
		}
	}, nil
}
