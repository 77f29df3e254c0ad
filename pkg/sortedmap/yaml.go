package sortedmap

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the map as a YAML mapping node with the members
// in insertion order. Mapping nodes keep their member order, so the
// document round-trips through UnmarshalYAML.
func (m *Map[K, V]) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range m.All() {
		var kn, vn yaml.Node
		if err := kn.Encode(k); err != nil {
			return nil, errors.Wrapf(err, "sortedmap: encode key %v", k)
		}
		if err := vn.Encode(v); err != nil {
			return nil, errors.Wrapf(err, "sortedmap: encode value for key %v", k)
		}
		node.Content = append(node.Content, &kn, &vn)
	}
	return node, nil
}

// UnmarshalYAML replaces the map contents with the members of a YAML
// mapping node, preserving document order.
func (m *Map[K, V]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return errors.Errorf("sortedmap: expected mapping node, got kind %d", value.Kind)
	}
	if m.items == nil {
		m.init()
	} else {
		m.Clear()
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		var k K
		if err := value.Content[i].Decode(&k); err != nil {
			return errors.Wrap(err, "sortedmap: decode key")
		}
		var v V
		if err := value.Content[i+1].Decode(&v); err != nil {
			return errors.Wrapf(err, "sortedmap: decode value for key %v", k)
		}
		m.Put(k, v)
	}
	return nil
}
