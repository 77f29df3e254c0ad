package sortedmap

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// MarshalJSON renders the map as an ordered pair array,
// [{"key":…,"value":…},…], a form that works for any key type and
// round-trips through UnmarshalJSON and FromPairs.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	pairs := m.Pairs()
	if pairs == nil {
		pairs = []Pair[K, V]{}
	}
	b, err := json.Marshal(pairs)
	if err != nil {
		return nil, errors.Wrap(err, "sortedmap: encode pairs")
	}
	return b, nil
}

// UnmarshalJSON replaces the map contents with the pair array in data,
// preserving the array's order.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var pairs []Pair[K, V]
	if err := json.Unmarshal(data, &pairs); err != nil {
		return errors.Wrap(err, "sortedmap: decode pairs")
	}
	if m.items == nil {
		m.init()
	} else {
		m.Clear()
	}
	for _, p := range pairs {
		m.Put(p.Key, p.Value)
	}
	return nil
}

// MarshalJSONObject renders a string-keyed map as a plain JSON object
// with the members in insertion order. Standard decoders accept it;
// only UnmarshalJSONObject preserves the member order on the way back.
func MarshalJSONObject[V any](m *Map[string, V]) ([]byte, error) {
	buf := []byte{'{'}
	first := true
	for k, v := range m.All() {
		if !first {
			buf = append(buf, ',')
		}
		first = false
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, errors.Wrapf(err, "sortedmap: encode key %q", k)
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Wrapf(err, "sortedmap: encode value for key %q", k)
		}
		buf = append(buf, kb...)
		buf = append(buf, ':')
		buf = append(buf, vb...)
	}
	return append(buf, '}'), nil
}

// UnmarshalJSONObject decodes a JSON object into a string-keyed map,
// preserving the member order of the document. Duplicate members
// collapse to their first position with the last value, like any other
// pair source.
func UnmarshalJSONObject[V any](data []byte) (*Map[string, V], error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, "sortedmap: decode object")
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.Errorf("sortedmap: expected object, got %v", tok)
	}
	m := New[string, V]()
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "sortedmap: decode member key")
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.Errorf("sortedmap: expected string key, got %v", tok)
		}
		var v V
		if err = dec.Decode(&v); err != nil {
			return nil, errors.Wrapf(err, "sortedmap: decode value for key %q", key)
		}
		m.Put(key, v)
	}
	if _, err = dec.Token(); err != nil {
		return nil, errors.Wrap(err, "sortedmap: decode object end")
	}
	return m, nil
}
