package sidebar

import (
	"bytes"
	"encoding/json"
	"slices"

	"gopkg.in/yaml.v3"
)

// Mapping associates a URL prefix ("/<folder>/") with its sidebar groups.
// Keys keep insertion order so the encoded output follows directory listing order.
type Mapping struct {
	keys   []string
	groups map[string][]Group
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{groups: make(map[string][]Group)}
}

// Set stores groups under key, appending the key when it is new.
func (m *Mapping) Set(key string, groups []Group) {
	if m.groups == nil {
		m.groups = make(map[string][]Group)
	}
	if _, ok := m.groups[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.groups[key] = groups
}

// Get returns the groups stored under key.
func (m *Mapping) Get(key string) ([]Group, bool) {
	g, ok := m.groups[key]
	return g, ok
}

// Delete removes key; missing keys are ignored.
func (m *Mapping) Delete(key string) {
	if _, ok := m.groups[key]; !ok {
		return
	}
	delete(m.groups, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	return slices.Clone(m.keys)
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Stats counts keys, groups (wrappers excluded) and leaves.
func (m *Mapping) Stats() Stats {
	s := Stats{Keys: len(m.keys)}
	for _, k := range m.keys {
		for _, g := range m.groups[k] {
			countNodes(g.Items, &s)
		}
	}
	return s
}

// MarshalJSON encodes the mapping as an object with keys in insertion order.
func (m Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.groups[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the mapping as a YAML mapping node with keys in insertion order.
func (m Mapping) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		val := &yaml.Node{}
		if err := val.Encode(m.groups[k]); err != nil {
			return nil, err
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			val)
	}
	return root, nil
}
