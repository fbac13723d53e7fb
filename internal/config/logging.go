package config

import (
	"io"
	"log/slog"
	"strings"
)

// LoggingConfig selects log verbosity and encoding.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// SlogLevel maps the level onto slog; unknown values fall back to info.
func (l LogLevel) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(string(l)))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (l LogLevel) valid() bool {
	var lvl slog.Level
	return lvl.UnmarshalText([]byte(strings.TrimSpace(string(l)))) == nil
}

func (f LogFormat) normalized() LogFormat {
	return LogFormat(strings.ToLower(strings.TrimSpace(string(f))))
}

func (f LogFormat) valid() bool {
	switch f.normalized() {
	case LogFormatJSON, LogFormatText:
		return true
	}
	return false
}

// NewLogger builds a logger writing to w. verbose forces debug level.
func (l LoggingConfig) NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := l.Level.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format.normalized() == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
