package trip

import (
	"errors"
	"strings"
)

// Every budget, itinerary, and packing list is keyed by a trip name. The
// name is the whole identity: records in different domains that share a name
// describe the same journey without referencing each other.

var ErrEmptyName = errors.New("trip name must not be empty")

// Normalize trims surrounding whitespace and rejects empty names.
func Normalize(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}
