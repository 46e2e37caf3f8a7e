// Package liner computes the intermediate nodes of a connection path.
//
// A Liner reads the bounds and anchor points of the two connected figures and
// rewrites the connection's path in place. Liners hold no state besides their
// size parameter and may be called on every figure move.
package liner

import (
	"errors"
	"fmt"
	"sort"

	"liner/connections"
)

// DefaultSize is the shoulder and slant distance used when none is given.
const DefaultSize = 20

// ErrUnknownLiner is returned by New for an unregistered name.
var ErrUnknownLiner = errors.New("unknown liner")

// Liner lays out the path of a connection.
type Liner interface {
	// Name returns the registry name of the liner.
	Name() string
	// Lineout rewrites c.Path. It does nothing when c is not routable.
	Lineout(c *connections.Connection)
}

// Factory creates a liner with the given size parameter.
type Factory func(size float64) Liner

var registry = map[string]Factory{
	"elbow":    func(size float64) Liner { return NewElbow(size) },
	"slanted":  func(size float64) Liner { return NewSlanted(size) },
	"straight": func(float64) Liner { return NewStraight() },
}

// New creates the liner registered under name. A size of zero or less
// selects DefaultSize.
func New(name string, size float64) (Liner, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLiner, name)
	}
	return f(size), nil
}

// Names returns the registered liner names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sizeOrDefault(size float64) float64 {
	if size <= 0 {
		return DefaultSize
	}
	return size
}
