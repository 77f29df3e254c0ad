package sortedmap

import "iter"

// Collect builds a map from a sequence of key value pairs, in the
// sequence's order. A key appearing more than once is positioned at
// its first appearance and holds its last-seen value.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	m := New[K, V]()
	m.Extend(seq)
	return m
}

// CollectFunc builds a map from an arbitrary sequence, deriving each
// key value pair with fn.
func CollectFunc[T any, K comparable, V any](seq iter.Seq[T], fn func(T) (K, V)) *Map[K, V] {
	m := New[K, V]()
	for t := range seq {
		m.Put(fn(t))
	}
	return m
}

// FromPairs builds a map from a pair slice, in slice order, with the
// same duplicate handling as Collect. It is the inverse of Pairs.
func FromPairs[K comparable, V any](pairs []Pair[K, V]) *Map[K, V] {
	m := New[K, V]()
	for _, p := range pairs {
		m.Put(p.Key, p.Value)
	}
	return m
}

// FromMap builds a map from a native Go map. Go maps have no iteration
// order, so the resulting insertion order is unspecified; callers must
// not rely on it.
func FromMap[K comparable, V any](src map[K]V) *Map[K, V] {
	m := New[K, V]()
	for k, v := range src {
		m.Put(k, v)
	}
	return m
}

// Extend folds a sequence of pairs into the map, in sequence order.
// Keys already present keep their position and take the incoming
// value; new keys are appended in first-seen order, with duplicates
// within the sequence collapsed to their first occurrence.
func (m *Map[K, V]) Extend(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Put(k, v)
	}
}
