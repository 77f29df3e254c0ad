package sortedmap

// Merge folds every pair of other into m, in other's order. Keys new
// to m are appended at the tail in the order encountered; keys already
// in m keep their position and take other's value.
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	m.MergeFunc(other, func(_ K, _, incoming V) V { return incoming })
}

// MergeFunc is Merge with explicit conflict resolution: a key present
// in both maps keeps its position in m and its value becomes
// resolve(key, existing, incoming). resolve is called for every
// conflicting key before any write, so a panicking resolve leaves m
// unchanged.
func (m *Map[K, V]) MergeFunc(other *Map[K, V], resolve func(key K, existing, incoming V) V) {
	if other == nil || other.Len() == 0 {
		return
	}
	if m.items == nil {
		m.init()
	}
	type change struct {
		at    *entry[K, V] // nil means append
		key   K
		value V
	}
	changes := make([]change, 0, other.Len())
	for e := other.head.next; e != other.tail; e = e.next {
		if cur, ok := m.items[e.key]; ok {
			changes = append(changes, change{at: cur, key: e.key, value: resolve(e.key, cur.value, e.value)})
		} else {
			changes = append(changes, change{key: e.key, value: e.value})
		}
	}
	for _, c := range changes {
		if c.at != nil {
			c.at.value = c.value
			continue
		}
		m.Put(c.key, c.value)
	}
}
