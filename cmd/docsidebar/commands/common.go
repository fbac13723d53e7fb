package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsidebar/internal/config"
	"git.home.luguber.info/inful/docsidebar/internal/sidebar"
)

// Global carries state shared by every subcommand.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (defaults apply when it does not exist)" default:"docsidebar.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Generate the sidebar once"`
	Watch WatchCmd `cmd:"" help:"Regenerate the sidebar whenever the docs tree changes"`
	Init  InitCmd  `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once. Commands that load a
// config replace the logger with the configured one.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// SidebarFlags override sidebar and output settings from the config file.
type SidebarFlags struct {
	Path            string   `name:"path" short:"p" help:"Docs directory, joined onto the working directory"`
	Ignore          []string `name:"ignore" help:"Top-level folders to skip (repeatable)"`
	IgnoreIndexItem bool     `name:"ignore-index-item" help:"Drop index.md entries and sections left empty"`
	Prefix          string   `name:"prefix" help:"Strip labels up to and including the first occurrence of this string"`
	Collapsed       bool     `name:"collapsed" xor:"collapsed" help:"Emit collapsed: true on every group"`
	Expanded        bool     `name:"expanded" xor:"collapsed" help:"Emit collapsed: false on every group"`
	OnlyMarkdown    bool     `name:"only-markdown" help:"Only .md files become sidebar links"`
	MaxDepth        int      `name:"max-depth" help:"Fail when directories nest deeper than this (0 = unbounded)"`

	Output    string `name:"output" short:"o" help:"Output file; - writes to stdout"`
	Format    string `name:"format" short:"f" help:"Output format (yaml or json)"`
	Wrap      bool   `name:"wrap" help:"Nest the mapping under themeConfig.sidebar"`
	MergeInto string `name:"merge-into" help:"Replace themeConfig.sidebar inside an existing site config"`
}

// apply copies every flag that was set onto cfg.
func (f *SidebarFlags) apply(cfg *config.Config) {
	if f.Path != "" {
		cfg.Path = f.Path
	}
	cfg.IgnoreList = append(cfg.IgnoreList, f.Ignore...)
	if f.IgnoreIndexItem {
		cfg.IgnoreIndexItem = true
	}
	if f.Prefix != "" {
		cfg.Prefix = f.Prefix
	}
	switch {
	case f.Collapsed:
		cfg.Collapsed = sidebar.Bool(true)
	case f.Expanded:
		cfg.Collapsed = sidebar.Bool(false)
	}
	if f.OnlyMarkdown {
		cfg.OnlyMarkdown = true
	}
	if f.MaxDepth != 0 {
		cfg.MaxDepth = f.MaxDepth
	}
	if f.Output != "" {
		cfg.Output.File = f.Output
	}
	if f.Format != "" {
		cfg.Output.Format = config.OutputFormat(f.Format)
	}
	if f.Wrap {
		cfg.Output.Wrap = true
	}
	if f.MergeInto != "" {
		cfg.Output.MergeInto = f.MergeInto
	}
}

// loadConfig loads the root config (defaults when absent), applies flag overrides,
// revalidates and installs the configured logger.
func loadConfig(g *Global, root *CLI, flags *SidebarFlags) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return nil, nil, err
	}
	if flags != nil {
		flags.apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := cfg.Logging.NewLogger(os.Stderr, root.Verbose)
	slog.SetDefault(logger)
	if g != nil {
		g.Logger = logger
	}
	return cfg, logger, nil
}

func stdout(g *Global) io.Writer {
	if g != nil && g.Stdout != nil {
		return g.Stdout
	}
	return os.Stdout
}
