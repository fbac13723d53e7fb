package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsidebar/internal/sidebar"
)

// ErrNotObject is returned when the site config, or its themeConfig entry, is not
// an object.
var ErrNotObject = errors.New("site config entry is not an object")

// Inject returns existing with themeConfig.sidebar replaced by m. Everything else in
// the document is kept; YAML documents keep their key order and comments, JSON
// documents are re-encoded with sorted keys. An empty document starts from scratch.
func Inject(existing []byte, m *sidebar.Mapping, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return injectJSON(existing, m)
	case FormatYAML, "":
		return injectYAML(existing, m)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func injectJSON(existing []byte, m *sidebar.Mapping) ([]byte, error) {
	doc := map[string]any{}
	if len(bytes.TrimSpace(existing)) > 0 {
		var raw any
		if err := json.Unmarshal(existing, &raw); err != nil {
			return nil, err
		}
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: document root", ErrNotObject)
		}
		doc = obj
	}

	theme := map[string]any{}
	if raw, ok := doc[themeConfigKey]; ok && raw != nil {
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotObject, themeConfigKey)
		}
		theme = obj
	}
	theme[sidebarKey] = m
	doc[themeConfigKey] = theme

	return marshal(doc, FormatJSON)
}

func injectYAML(existing []byte, m *sidebar.Mapping) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(existing, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{newMap()}}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: document root", ErrNotObject)
	}

	theme := lookup(root, themeConfigKey)
	if theme == nil {
		theme = newMap()
		setKey(root, themeConfigKey, theme)
	} else if theme.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s", ErrNotObject, themeConfigKey)
	}

	value := &yaml.Node{}
	if err := value.Encode(m); err != nil {
		return nil, err
	}
	setKey(theme, sidebarKey, value)

	return marshal(&doc, FormatYAML)
}

func newMap() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func setKey(mapping *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content[i+1] = value
			return
		}
	}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value)
}
