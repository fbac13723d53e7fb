// Package output encodes sidebar mappings and writes them to stdout, a file, or into
// an existing site configuration at themeConfig.sidebar.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsidebar/internal/sidebar"
)

// Format names an encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for formats other than YAML and JSON.
var ErrUnsupportedFormat = errors.New("unsupported output format")

const (
	themeConfigKey = "themeConfig"
	sidebarKey     = "sidebar"
)

type themeConfig struct {
	Sidebar *sidebar.Mapping `json:"sidebar" yaml:"sidebar"`
}

type wrapped struct {
	ThemeConfig themeConfig `json:"themeConfig" yaml:"themeConfig"`
}

// Encode renders m in format. With wrap the mapping is nested under
// themeConfig.sidebar, matching the renderer's site config shape.
func Encode(m *sidebar.Mapping, format Format, wrap bool) ([]byte, error) {
	var value any = m
	if wrap {
		value = wrapped{ThemeConfig: themeConfig{Sidebar: m}}
	}
	return marshal(value, format)
}

func marshal(value any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML, "":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
