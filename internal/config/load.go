package config

import (
	"bytes"
	stdErrors "errors"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docsidebar/internal/errors"
)

// Load reads configPath, expands ${VAR} references (after loading .env files),
// applies defaults and validates the result. Unknown keys are rejected.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if stdErrors.Is(err, fs.ErrNotExist) {
			return nil, derrors.ConfigNotFound(configPath)
		}
		return nil, derrors.ConfigInvalid(configPath, err)
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		if se, ok := derrors.As(err); ok {
			return nil, se.WithContext("path", configPath)
		}
		return nil, derrors.ConfigInvalid(configPath, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns Default() when configPath does not exist.
func LoadOrDefault(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); stdErrors.Is(err, fs.ErrNotExist) {
		loadEnvFiles()
		return Default(), nil
	}
	return Load(configPath)
}

// Parse decodes a YAML document into a validated Config. An empty document yields
// the defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stdErrors.Is(err, io.EOF) {
		return nil, err
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
