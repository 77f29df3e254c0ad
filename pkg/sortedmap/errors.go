package sortedmap

import (
	"errors"
	"fmt"
)

// KeyNotFoundError reports an UpdateExisting on a key that is not in
// the map. Map holds a rendered snapshot of the container at the time
// of the failure, for diagnostics.
type KeyNotFoundError[K comparable] struct {
	Key K
	Map string
}

func (e *KeyNotFoundError[K]) Error() string {
	return fmt.Sprintf("sortedmap: key %v not found in %s", e.Key, e.Map)
}

func (e *KeyNotFoundError[K]) keyNotFound() {}

type keyNotFounder interface{ keyNotFound() }

// IsKeyNotFound reports whether err is a *KeyNotFoundError of any key
// type.
func IsKeyNotFound(err error) bool {
	var target keyNotFounder
	return errors.As(err, &target)
}
