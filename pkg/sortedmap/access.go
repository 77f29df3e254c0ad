package sortedmap

// Access is the uniform indexed access protocol: read, read-modify-write
// and removal through three primitives. *Map implements it; the rest of
// the API is surface over these plus Put.
type Access[K comparable, V any] interface {
	// Fetch returns the value for the key and whether it was found.
	// A missing key is "not found", never a zero value masquerading
	// as present.
	Fetch(key K) (V, bool)

	// GetAndUpdate calls fn with the current value (zero value and
	// ok=false when absent). If fn returns store=true the returned
	// value is written back: an existing key keeps its position, a
	// missing key is appended at the tail exactly like Put. The
	// resulting value and presence are returned.
	GetAndUpdate(key K, fn func(value V, ok bool) (V, bool)) (V, bool)

	// Pop removes the key and returns its value (if it existed).
	Pop(key K) (V, bool)
}

var _ Access[string, int] = (*Map[string, int])(nil)

// Fetch implements Access; it is Get under the protocol name.
func (m *Map[K, V]) Fetch(key K) (V, bool) {
	return m.Get(key)
}

// GetAndUpdate implements Access.
func (m *Map[K, V]) GetAndUpdate(key K, fn func(value V, ok bool) (V, bool)) (V, bool) {
	cur, ok := m.Get(key)
	v, store := fn(cur, ok)
	if !store {
		return cur, ok
	}
	m.Put(key, v)
	return v, true
}
