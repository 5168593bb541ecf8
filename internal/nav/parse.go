package nav

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ReadConfig extracts the "nav" list from an mkdocs configuration document
func ReadConfig(data []byte) (*Map, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse site configuration: %w", err)
	}
	if len(doc.Content) == 0 {
		return New(), nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("site configuration is not a mapping")
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "nav" {
			return fromSequence(root.Content[i+1])
		}
	}
	return New(), nil
}

// Parse reads a serialized nav list (as produced by Write) back into a Map
func Parse(data []byte) (*Map, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse navigation: %w", err)
	}
	if len(doc.Content) == 0 {
		return New(), nil
	}
	return fromSequence(doc.Content[0])
}

func fromSequence(n *yaml.Node) (*Map, error) {
	m := New()
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return m, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: navigation must be a list", n.Line)
	}
	for _, entry := range n.Content {
		if entry.Kind != yaml.MappingNode || len(entry.Content) != 2 {
			return nil, fmt.Errorf("line %d: navigation entries must be single-key mappings", entry.Line)
		}
		key, value := entry.Content[0].Value, entry.Content[1]
		switch {
		case value.Kind == yaml.SequenceNode || value.Tag == "!!null":
			children, err := fromSequence(value)
			if err != nil {
				return nil, err
			}
			section := m.Ensure([]string{key})
			for _, c := range children.Entries() {
				section.set(c)
			}
		case value.Kind == yaml.ScalarNode:
			m.SetLeaf(key, value.Value)
		default:
			return nil, fmt.Errorf("line %d: unsupported navigation value for %q", value.Line, key)
		}
	}
	return m, nil
}

func (m *Map) set(e Entry) {
	if e.IsSection() {
		m.Ensure([]string{e.Key})
		m.items[e.Key].children = e.Children
		return
	}
	m.SetLeaf(e.Key, e.Leaf)
}
