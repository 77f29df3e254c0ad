package sortedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllMatchesKeyOrder(t *testing.T) {
	m := mkmap(p("a", 1), p("b", 2), p("c", 3))
	m.Put("b", 20)
	m.Delete("a")
	m.Put("a", 10)

	var want []Pair[string, int]
	for _, k := range m.Keys() {
		want = append(want, p(k, m.GetOr(k, -1)))
	}
	var got []Pair[string, int]
	for k, v := range m.All() {
		got = append(got, p(k, v))
	}
	assert.Equal(t, want, got)
	assert.Equal(t, want, m.Pairs())
}

func TestAllEarlyBreak(t *testing.T) {
	m := mkmap(p("a", 1), p("b", 2), p("c", 3))
	visited := 0
	for range m.All() {
		visited++
		if visited == 2 {
			break
		}
	}
	assert.Equal(t, 2, visited)
}

func TestAllIsRestartable(t *testing.T) {
	m := mkmap(p("a", 1), p("b", 2))
	seq := m.All()
	for i := 0; i < 2; i++ {
		var keys []string
		for k := range seq {
			keys = append(keys, k)
		}
		assert.Equal(t, []string{"a", "b"}, keys)
	}
}

func TestCursorSuspendAndResume(t *testing.T) {
	m := mkmap(p("a", 1), p("b", 2), p("c", 3))
	cur := m.Cursor()

	k, v, ok := cur.Next()
	require.True(t, ok)
	assert.Equal(t, "a", k)
	assert.Equal(t, 1, v)

	// hand the suspended cursor to another consumer
	resume := cur
	k, _, ok = resume.Next()
	require.True(t, ok)
	assert.Equal(t, "b", k)

	k, _, ok = resume.Next()
	require.True(t, ok)
	assert.Equal(t, "c", k)

	_, _, ok = resume.Next()
	assert.False(t, ok)

	// an exhausted cursor picks up entries appended afterwards
	m.Put("d", 4)
	k, _, ok = resume.Next()
	require.True(t, ok)
	assert.Equal(t, "d", k)
}

func TestFindShortCircuits(t *testing.T) {
	m := mkmap(p("a", 1), p("b", 2), p("c", 3))
	visited := 0
	got, ok := m.Find(func(k string, v int) bool {
		visited++
		return v == 2
	})
	require.True(t, ok)
	assert.Equal(t, p("b", 2), got)
	assert.Equal(t, 2, visited)

	_, ok = m.Find(func(string, int) bool { return false })
	assert.False(t, ok)

	assert.True(t, m.Any(func(k string, _ int) bool { return k == "c" }))
	assert.False(t, m.Any(func(k string, _ int) bool { return k == "z" }))
}

func TestSlice(t *testing.T) {
	m := mkmap(p("a", 1), p("b", 2), p("c", 3), p("d", 4), p("e", 5))
	tests := []struct {
		name                string
		start, length, step int
		want                []Pair[string, int]
	}{
		{"prefix", 0, 2, 1, []Pair[string, int]{p("a", 1), p("b", 2)}},
		{"middle", 1, 3, 1, []Pair[string, int]{p("b", 2), p("c", 3), p("d", 4)}},
		{"step two", 0, 3, 2, []Pair[string, int]{p("a", 1), p("c", 3), p("e", 5)}},
		{"past the end", 3, 10, 1, []Pair[string, int]{p("d", 4), p("e", 5)}},
		{"out of range", 9, 3, 1, nil},
		{"zero length", 0, 0, 1, nil},
		{"negative start", -1, 3, 1, nil},
		{"bad step", 0, 3, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Slice(tt.start, tt.length, tt.step))
		})
	}
}

func TestCountAndMembershipAreConstantTime(t *testing.T) {
	// Len and Has go through the reverse index, not the sequence;
	// both stay correct mid-traversal.
	m := mkmap(p("a", 1), p("b", 2), p("c", 3))
	cur := m.Cursor()
	_, _, _ = cur.Next()
	assert.Equal(t, 3, m.Len())
	assert.True(t, m.Has("c"))
}
