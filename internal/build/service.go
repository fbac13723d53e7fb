package build

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docsidebar/internal/config"
	derrors "git.home.luguber.info/inful/docsidebar/internal/errors"
	"git.home.luguber.info/inful/docsidebar/internal/logfields"
	"git.home.luguber.info/inful/docsidebar/internal/metrics"
	"git.home.luguber.info/inful/docsidebar/internal/output"
	"git.home.luguber.info/inful/docsidebar/internal/sidebar"
)

// Status represents the outcome of a build execution.
type Status string

const (
	// StatusSuccess indicates the mapping was built and written.
	StatusSuccess Status = "success"

	// StatusUnchanged indicates the mapping was built but the target already held it.
	StatusUnchanged Status = "unchanged"

	// StatusFailed indicates the build encountered an error.
	StatusFailed Status = "failed"

	// StatusCancelled indicates the context was done before the build started.
	StatusCancelled Status = "cancelled"
)

// IsSuccess returns true if the build completed without error.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess || s == StatusUnchanged
}

// Result contains the outcome of a build execution.
type Result struct {
	Status   Status
	BuildID  string
	DocsRoot string
	// Target is the output file, the merged site config, or "-" for stdout.
	Target  string
	Mapping *sidebar.Mapping
	Stats   sidebar.Stats
	// Written is false when the target file already held identical content.
	Written   bool
	StartTime time.Time
	Duration  time.Duration
}

// Service executes sidebar builds for one configuration.
type Service struct {
	cfg      *config.Config
	cwd      string
	stdout   io.Writer
	recorder metrics.Recorder
	logger   *slog.Logger
	newID    func() string
}

// NewService creates a Service resolving the docs root and output paths against cwd.
func NewService(cfg *config.Config, cwd string) *Service {
	return &Service{
		cfg:      cfg,
		cwd:      cwd,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
		newID:    uuid.NewString,
	}
}

// WithRecorder injects a metrics recorder (nil restores the no-op recorder).
func (s *Service) WithRecorder(r metrics.Recorder) *Service {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	s.recorder = r
	return s
}

// WithLogger sets the logger used for build summaries.
func (s *Service) WithLogger(logger *slog.Logger) *Service {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// WithStdout redirects stdout output (tests and the build command use this).
func (s *Service) WithStdout(w io.Writer) *Service {
	s.stdout = w
	return s
}

// DocsRoot returns the absolute docs directory the service builds from.
func (s *Service) DocsRoot() string {
	return s.cfg.DocsRoot(s.cwd)
}

// OutputTarget returns the resolved output path, or "" when writing to stdout.
func (s *Service) OutputTarget() string {
	out := s.cfg.Output
	switch {
	case out.MergeInto != "":
		return s.resolve(out.MergeInto)
	case out.Stdout():
		return ""
	default:
		return s.resolve(out.File)
	}
}

// Run performs one full build. The returned Result is never nil.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{
		BuildID:   s.newID(),
		DocsRoot:  s.DocsRoot(),
		StartTime: start,
	}
	logger := s.logger.With(logfields.BuildID(result.BuildID))

	if err := ctx.Err(); err != nil {
		result.Status = StatusCancelled
		return result, err
	}

	err := s.run(result, logger)
	result.Duration = time.Since(start)
	s.recorder.ObserveBuildDuration(result.Duration)

	if err != nil {
		result.Status = StatusFailed
		s.recorder.IncBuildOutcome(metrics.OutcomeFailed)
		logger.Error("Sidebar build failed",
			logfields.DocsRoot(result.DocsRoot),
			logfields.Duration(result.Duration),
			logfields.Error(err))
		return result, err
	}

	result.Status = StatusSuccess
	outcome := metrics.OutcomeSuccess
	if !result.Written {
		result.Status = StatusUnchanged
		outcome = metrics.OutcomeUnchanged
	}
	s.recorder.IncBuildOutcome(outcome)
	s.recorder.SetMappingSize(result.Stats.Keys, result.Stats.Groups, result.Stats.Leaves)

	logger.Info("Injected sidebar data",
		logfields.DocsRoot(result.DocsRoot),
		logfields.Output(result.Target),
		logfields.Keys(result.Stats.Keys),
		logfields.Groups(result.Stats.Groups),
		logfields.Leaves(result.Stats.Leaves),
		slog.Bool("written", result.Written),
		logfields.Duration(result.Duration))
	return result, nil
}

func (s *Service) run(result *Result, logger *slog.Logger) error {
	builder := sidebar.NewBuilder(s.cfg.SidebarOptions()).WithLogger(logger)
	mapping, err := builder.BuildMappingDir(result.DocsRoot)
	if err != nil {
		return derrors.DocsRootUnreadable(result.DocsRoot, err)
	}
	result.Mapping = mapping
	result.Stats = mapping.Stats()

	writer := s.writer()
	written, err := writer.Write(mapping)
	result.Target = written.Target
	result.Written = written.Changed
	if err != nil {
		return derrors.OutputFailed(written.Target, err)
	}
	return nil
}

func (s *Service) writer() *output.Writer {
	out := s.cfg.Output
	w := &output.Writer{
		Format: output.Format(out.ResolvedFormat()),
		Wrap:   out.Wrap,
		Stdout: s.stdout,
	}
	if out.MergeInto != "" {
		w.MergeInto = s.resolve(out.MergeInto)
	} else if !out.Stdout() {
		w.File = s.resolve(out.File)
	}
	return w
}

func (s *Service) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.cwd, p)
}
