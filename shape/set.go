package shape

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownShape = errors.New("shape not present in set")

// Set is a registry of shapes by name, for callers that resolve shapes from
// manifests or loaded packages.
type Set struct {
	shapes map[string]*Shape
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{shapes: make(map[string]*Shape)}
}

// Add registers a shape under its name. Duplicate names are a construction
// error.
func (set *Set) Add(s *Shape) error {
	if _, ok := set.shapes[s.Name()]; ok {
		return fmt.Errorf("%w: %s already registered", ErrDuplicateKey, s.Name())
	}

	set.shapes[s.Name()] = s
	return nil
}

// Get returns the shape registered under name.
func (set *Set) Get(name string) (*Shape, error) {
	s, ok := set.shapes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShape, name)
	}

	return s, nil
}

// Names returns the registered shape names in lexicographic order.
func (set *Set) Names() []string {
	names := make([]string, 0, len(set.shapes))
	for n := range set.shapes {
		names = append(names, n)
	}

	sort.Strings(names)
	return names
}

// Len returns the number of registered shapes.
func (set *Set) Len() int {
	return len(set.shapes)
}
