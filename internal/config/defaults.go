package config

import "time"

const (
	DefaultPath         = "/docs"
	DefaultDebounce     = 300 * time.Millisecond
	DefaultLogLevel     = LogLevelInfo
	DefaultLogFormat    = LogFormatText
	MinimumPollInterval = time.Second
)

// Default returns a config populated with defaults only.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Path == "" {
		cfg.Path = DefaultPath
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultDebounce
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
}
