// Package config loads the YAML configuration that drives sidebar generation.
package config

import (
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/docsidebar/internal/sidebar"
)

// Config is the root configuration document.
type Config struct {
	// Path is the docs directory, always joined onto the working directory
	// ("/docs" resolves to "<cwd>/docs").
	Path            string   `yaml:"path"`
	IgnoreList      []string `yaml:"ignore_list,omitempty"`
	IgnoreIndexItem bool     `yaml:"ignore_index_item,omitempty"`
	Prefix          string   `yaml:"prefix,omitempty"`
	Collapsed       *bool    `yaml:"collapsed,omitempty"`
	OnlyMarkdown    bool     `yaml:"only_markdown,omitempty"`
	MaxDepth        int      `yaml:"max_depth,omitempty"`

	Output  OutputConfig  `yaml:"output"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls where and how the sidebar mapping is written.
type OutputConfig struct {
	File      string       `yaml:"file,omitempty"` // empty or "-" writes to stdout
	Format    OutputFormat `yaml:"format,omitempty"`
	Wrap      bool         `yaml:"wrap,omitempty"`       // emit {themeConfig: {sidebar: ...}}
	MergeInto string       `yaml:"merge_into,omitempty"` // site config to update at themeConfig.sidebar
}

// WatchConfig tunes the rebuild loop of the watch command.
type WatchConfig struct {
	Debounce     time.Duration `yaml:"debounce,omitempty"`
	PollInterval time.Duration `yaml:"poll_interval,omitempty"`
	MetricsAddr  string        `yaml:"metrics_addr,omitempty"`
}

// OutputFormat names an encoding for the sidebar mapping.
type OutputFormat string

const (
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// SidebarOptions returns the builder options carried by the config.
func (c *Config) SidebarOptions() sidebar.Options {
	return sidebar.Options{
		IgnoreList:      c.IgnoreList,
		IgnoreIndexItem: c.IgnoreIndexItem,
		Prefix:          c.Prefix,
		Collapsed:       c.Collapsed,
		OnlyMarkdown:    c.OnlyMarkdown,
		MaxDepth:        c.MaxDepth,
	}
}

// DocsRoot resolves the docs directory against cwd.
func (c *Config) DocsRoot(cwd string) string {
	return filepath.Join(cwd, c.Path)
}

// ResolvedFormat returns the configured format, falling back to the extension of the
// target file (".json" selects JSON) and then to YAML.
func (o OutputConfig) ResolvedFormat() OutputFormat {
	if o.Format != "" {
		return o.Format
	}
	target := o.MergeInto
	if target == "" {
		target = o.File
	}
	if filepath.Ext(target) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// Stdout reports whether output goes to standard output.
func (o OutputConfig) Stdout() bool {
	return o.MergeInto == "" && (o.File == "" || o.File == "-")
}
