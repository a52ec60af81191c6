package shape

import (
	"errors"
	"fmt"
	"go/types"
	"sort"
)

var (
	ErrUnknownKey   = errors.New("key not present in shape")
	ErrDuplicateKey = errors.New("duplicate key in shape")
)

// Member describes one named member of a shape: its declared value type plus
// the two declaration flags every classifier inspects.
type Member struct {
	// Type is the declared value type of the member.
	Type types.Type
	// Readonly marks the member as not reassignable once declared.
	Readonly bool
	// Optional marks the member as legitimately absent from a value of the shape.
	Optional bool
}

// Shape is a description of a record type: a mapping from member key to
// Member. Keys are unique within one shape; no predicate depends on insertion
// order.
type Shape struct {
	name    string
	members map[string]Member
}

// New creates an empty shape with the given name. The name is used only for
// diagnostics.
func New(name string) *Shape {
	return &Shape{
		name:    name,
		members: make(map[string]Member),
	}
}

// Name returns the shape's diagnostic name.
func (s *Shape) Name() string {
	return s.name
}

// Add inserts a member under the given key. Re-adding an existing key is a
// construction error, not an overwrite.
func (s *Shape) Add(key string, m Member) error {
	if _, ok := s.members[key]; ok {
		return fmt.Errorf("shape %s: %w: %s", s.name, ErrDuplicateKey, key)
	}

	s.members[key] = m
	return nil
}

// Member returns the member stored under key, and whether it exists.
func (s *Shape) Member(key string) (Member, bool) {
	m, ok := s.members[key]
	return m, ok
}

// Len returns the number of members.
func (s *Shape) Len() int {
	return len(s.members)
}

// Keys returns all member keys in lexicographic order. The order is a
// rendering concern only; shapes themselves are unordered.
func (s *Shape) Keys() []string {
	keys := make([]string, 0, len(s.members))
	for k := range s.members {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}

// Pick returns the sub-shape restricted to the given keys, members unchanged.
// A key absent from the shape is rejected with ErrUnknownKey and no partial
// result.
func (s *Shape) Pick(keys ...string) (*Shape, error) {
	sub := New(s.name)
	for _, k := range keys {
		m, ok := s.members[k]
		if !ok {
			return nil, fmt.Errorf("shape %s: %w: %s", s.name, ErrUnknownKey, k)
		}

		if err := sub.Add(k, m); err != nil {
			return nil, err
		}
	}

	return sub, nil
}

// WritableProjection returns a derived shape identical to s except that every
// member's Readonly flag is cleared. Value types and optionality are
// unchanged. The projection is rebuilt on every call; it exists only as an
// operand for Equal.
func (s *Shape) WritableProjection() *Shape {
	proj := New(s.name)
	for k, m := range s.members {
		m.Readonly = false
		proj.members[k] = m
	}

	return proj
}

// PickRequired returns the sub-shape restricted to the required members of s,
// member types and flags unchanged.
func (s *Shape) PickRequired() *Shape {
	// Keys come from the shape itself, so Pick cannot fail.
	sub, _ := s.Pick(RequiredKeys(s)...)
	return sub
}
