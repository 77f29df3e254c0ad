// Package sortedmap implements a generic associative container whose
// iteration order is the order in which keys were first inserted.
// Overwriting a value never moves its key; deleting and re-inserting a
// key appends it at the current tail.
package sortedmap

import (
	"fmt"
	"reflect"
	"strings"
)

// entry is a key value pair in the insertion list (doubly linked)
type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// Pair is a single key value pair, used by the slicing, bulk ingestion
// and rendering surfaces.
type Pair[K comparable, V any] struct {
	Key   K `json:"key" yaml:"key"`
	Value V `json:"value" yaml:"value"`
}

// Map is an insertion-ordered map. The reverse index makes lookup,
// insert and delete O(1); the linked list carries the insertion order.
// The zero value is usable for writes; reads on it behave like an
// empty map. Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	items      map[K]*entry[K, V] // reverse index, key to list node
	head, tail *entry[K, V]       // sentinels of the insertion list
}

// New returns an empty map.
func New[K comparable, V any]() *Map[K, V] {
	m := new(Map[K, V])
	m.init()
	return m
}

func (m *Map[K, V]) init() {
	m.items = make(map[K]*entry[K, V])
	m.head = new(entry[K, V])
	m.tail = new(entry[K, V])
	m.head.next = m.tail
	m.tail.prev = m.head
}

// pop, list operation
func (m *Map[K, V]) pop(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

// push appends at the tail, keeping insertion order
func (m *Map[K, V]) push(e *entry[K, V]) {
	e.prev = m.tail.prev
	e.next = m.tail
	m.tail.prev.next = e
	m.tail.prev = e
}

// Put inserts or replaces the value for the given key. A new key is
// appended at the tail; an existing key keeps its position.
func (m *Map[K, V]) Put(key K, value V) {
	if m.items == nil {
		m.init()
	}
	if e, ok := m.items[key]; ok {
		e.value = value
		return
	}
	e := &entry[K, V]{key: key, value: value}
	m.push(e)
	m.items[key] = e
}

// PutNew inserts the value only if the key is absent and reports
// whether it inserted. An existing key is left untouched.
func (m *Map[K, V]) PutNew(key K, value V) bool {
	if m.items == nil {
		m.init()
	}
	if _, ok := m.items[key]; ok {
		return false
	}
	m.Put(key, value)
	return true
}

// PutNewFunc is PutNew with a deferred value: fn runs only when the
// key is absent, so a side-effecting or expensive fn is never invoked
// on a hit.
func (m *Map[K, V]) PutNewFunc(key K, fn func() V) bool {
	if m.items == nil {
		m.init()
	}
	if _, ok := m.items[key]; ok {
		return false
	}
	m.Put(key, fn())
	return true
}

// Update replaces the value for key with fn(current), keeping its
// position. An absent key is inserted at the tail with def and fn is
// not called.
func (m *Map[K, V]) Update(key K, def V, fn func(V) V) {
	if m.items == nil {
		m.init()
	}
	e, ok := m.items[key]
	if !ok {
		m.Put(key, def)
		return
	}
	v := fn(e.value)
	e.value = v
}

// UpdateExisting replaces the value for key with fn(current), keeping
// its position. An absent key is an error: the map is left unmodified
// and a *KeyNotFoundError carrying the key and a snapshot of the map
// is returned.
func (m *Map[K, V]) UpdateExisting(key K, fn func(V) V) error {
	e, ok := m.items[key]
	if !ok {
		return &KeyNotFoundError[K]{Key: key, Map: m.String()}
	}
	v := fn(e.value)
	e.value = v
	return nil
}

// Has reports whether the key is in the map. O(1).
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.items[key]
	return ok
}

// Get returns the value for the given key (if it exists). O(1).
func (m *Map[K, V]) Get(key K) (V, bool) {
	e, ok := m.items[key]
	if !ok {
		return *new(V), false
	}
	return e.value, true
}

// GetOr returns the value for the key, or def if the key is absent.
func (m *Map[K, V]) GetOr(key K, def V) V {
	if e, ok := m.items[key]; ok {
		return e.value
	}
	return def
}

// Delete removes the key and reports whether it was present. Deleting
// an absent key is a no-op. O(1).
func (m *Map[K, V]) Delete(key K) bool {
	e, ok := m.items[key]
	if !ok {
		return false
	}
	delete(m.items, key)
	m.pop(e)
	return true
}

// Pop removes the key and returns its value (if it existed). O(1).
func (m *Map[K, V]) Pop(key K) (V, bool) {
	e, ok := m.items[key]
	if !ok {
		return *new(V), false
	}
	delete(m.items, key)
	m.pop(e)
	return e.value, true
}

// PopOr removes the key and returns its value, or def if the key was
// absent.
func (m *Map[K, V]) PopOr(key K, def V) V {
	if v, ok := m.Pop(key); ok {
		return v
	}
	return def
}

// Len returns the number of entries. O(1).
func (m *Map[K, V]) Len() int {
	return len(m.items)
}

// Keys returns the keys in insertion order. The slice is a fresh
// snapshot; mutating it does not affect the map.
func (m *Map[K, V]) Keys() []K {
	if m.Len() == 0 {
		return nil
	}
	keys := make([]K, 0, len(m.items))
	for e := m.head.next; e != m.tail; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// Values returns the values in insertion order of their keys.
func (m *Map[K, V]) Values() []V {
	if m.Len() == 0 {
		return nil
	}
	values := make([]V, 0, len(m.items))
	for e := m.head.next; e != m.tail; e = e.next {
		values = append(values, e.value)
	}
	return values
}

// Clear removes all entries, keeping allocated capacity in the index.
func (m *Map[K, V]) Clear() {
	if m.items == nil {
		return
	}
	clear(m.items)
	m.head.next = m.tail
	m.tail.prev = m.head
}

// Copy returns an independent map with the same entries in the same
// order. Values are copied shallowly.
func (m *Map[K, V]) Copy() *Map[K, V] {
	c := New[K, V]()
	if m.Len() == 0 {
		return c
	}
	for e := m.head.next; e != m.tail; e = e.next {
		c.Put(e.key, e.value)
	}
	return c
}

// Equal reports whether both maps hold the same keys with equal values
// at the same positions. Two maps with equal entries in a different
// order are not equal. Values are compared with reflect.DeepEqual.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if other == nil || m.Len() != other.Len() {
		return false
	}
	if m.Len() == 0 {
		return true
	}
	oe := other.head.next
	for e := m.head.next; e != m.tail; e = e.next {
		if e.key != oe.key || !reflect.DeepEqual(e.value, oe.value) {
			return false
		}
		oe = oe.next
	}
	return true
}

func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("sortedmap.Map[")
	if m.Len() > 0 {
		for e := m.head.next; e != m.tail; e = e.next {
			if e.prev != m.head {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%v:%v", e.key, e.value)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
