package main

import (
	"encoding/json"
	"fmt"

	"github.com/kim-company/sorted-map/pkg/sortedmap"
)

func main() {

	// build a map, insertion order is what you get back out
	m := sortedmap.New[string, int]()
	m.Put("charlie", 3)
	m.Put("alpha", 1)
	m.Put("bravo", 2)
	fmt.Printf("keys: %v\n", m.Keys())

	// overwriting does not reorder
	m.Put("alpha", 100)
	fmt.Printf("after overwrite: %s\n", m)

	// merge another map, new keys append, conflicts keep position
	other := sortedmap.FromPairs([]sortedmap.Pair[string, int]{
		{Key: "delta", Value: 4},
		{Key: "charlie", Value: 30},
	})
	m.Merge(other)
	fmt.Printf("after merge: %s\n", m)

	// partial update on a missing key is the one failing operation
	err := m.UpdateExisting("missing", func(v int) int { return v + 1 })
	fmt.Printf("update missing key: %v (IsKeyNotFound=%t)\n", err, sortedmap.IsKeyNotFound(err))

	// walk the first two entries, then hand the cursor off
	cur := m.Cursor()
	for i := 0; i < 2; i++ {
		k, v, ok := cur.Next()
		if !ok {
			break
		}
		fmt.Printf("visited %s=%d\n", k, v)
	}
	k, v, ok := cur.Next()
	fmt.Printf("resumed at %s=%d (ok=%t)\n", k, v, ok)

	// order survives a JSON round trip
	data, err := json.Marshal(m)
	if err != nil {
		panic(err)
	}
	fmt.Printf("rendered: %s\n", data)

	var back sortedmap.Map[string, int]
	if err := json.Unmarshal(data, &back); err != nil {
		panic(err)
	}
	fmt.Printf("round trip equal: %t\n", m.Equal(&back))
}
