package config

import (
	"fmt"

	derrors "git.home.luguber.info/inful/docsidebar/internal/errors"
)

// Validate checks the fields the sidebar core does not check itself. Docs path
// problems are left to surface as filesystem errors at build time.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return derrors.ValidationFailed("max_depth", "must not be negative")
	}
	switch c.Output.Format {
	case "", FormatYAML, FormatJSON:
	default:
		return derrors.ValidationFailed("output.format", fmt.Sprintf("unsupported format %q (yaml or json)", c.Output.Format))
	}
	if c.Output.Wrap && c.Output.MergeInto != "" {
		return derrors.ValidationFailed("output.wrap", "cannot be combined with output.merge_into")
	}
	if c.Output.MergeInto != "" && c.Output.File != "" {
		return derrors.ValidationFailed("output.file", "cannot be combined with output.merge_into")
	}
	if c.Watch.Debounce < 0 {
		return derrors.ValidationFailed("watch.debounce", "must not be negative")
	}
	if c.Watch.PollInterval != 0 && c.Watch.PollInterval < MinimumPollInterval {
		return derrors.ValidationFailed("watch.poll_interval", fmt.Sprintf("must be at least %s", MinimumPollInterval))
	}
	if !c.Logging.Level.valid() {
		return derrors.ValidationFailed("logging.level", fmt.Sprintf("unknown level %q", c.Logging.Level))
	}
	if !c.Logging.Format.valid() {
		return derrors.ValidationFailed("logging.format", fmt.Sprintf("unknown format %q (text or json)", c.Logging.Format))
	}
	return nil
}
