package sortedmap

import "iter"

// All returns an iterator over the key value pairs in insertion order.
// The iterator is lazy and restartable; breaking out of the range loop
// stops the traversal without visiting the rest.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.head == nil {
			return
		}
		for e := m.head.next; e != m.tail; e = e.next {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Pairs returns all key value pairs in insertion order.
func (m *Map[K, V]) Pairs() []Pair[K, V] {
	if m.Len() == 0 {
		return nil
	}
	pairs := make([]Pair[K, V], 0, m.Len())
	for e := m.head.next; e != m.tail; e = e.next {
		pairs = append(pairs, Pair[K, V]{Key: e.key, Value: e.value})
	}
	return pairs
}

// Cursor is a resumable handle over the insertion order: a consumer can
// pull some pairs, hand the cursor off, and the next holder continues
// from the first unvisited position. A cursor that has reached the end
// sees entries appended afterwards.
type Cursor[K comparable, V any] struct {
	m  *Map[K, V]
	at *entry[K, V]
}

// Cursor returns a cursor positioned before the first entry.
func (m *Map[K, V]) Cursor() *Cursor[K, V] {
	return &Cursor[K, V]{m: m, at: m.head}
}

// Next advances the cursor and returns the next pair. It returns
// ok=false when the traversal is exhausted.
func (c *Cursor[K, V]) Next() (K, V, bool) {
	if c.at == nil || c.at.next == c.m.tail {
		var k K
		var v V
		return k, v, false
	}
	c.at = c.at.next
	return c.at.key, c.at.value, true
}

// Find returns the first pair in insertion order satisfying pred,
// stopping the traversal as soon as it is found.
func (m *Map[K, V]) Find(pred func(K, V) bool) (Pair[K, V], bool) {
	for k, v := range m.All() {
		if pred(k, v) {
			return Pair[K, V]{Key: k, Value: v}, true
		}
	}
	return Pair[K, V]{}, false
}

// Any reports whether any pair satisfies pred, short-circuiting on the
// first hit.
func (m *Map[K, V]) Any(pred func(K, V) bool) bool {
	_, ok := m.Find(pred)
	return ok
}

// Slice returns length pairs starting at position start, taking every
// step-th entry. A slice reaching past the end stops early; a start
// past the end, a non-positive length or a step below 1 yield an empty
// result, never an error.
func (m *Map[K, V]) Slice(start, length, step int) []Pair[K, V] {
	if start < 0 || length <= 0 || step < 1 || m.Len() == 0 {
		return nil
	}
	var out []Pair[K, V]
	pos, next := 0, start
	for e := m.head.next; e != m.tail && len(out) < length; e = e.next {
		if pos == next {
			out = append(out, Pair[K, V]{Key: e.key, Value: e.value})
			next += step
		}
		pos++
	}
	return out
}
