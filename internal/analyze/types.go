package analyze

import (
	"fmt"

	"shapecheck/literal"
	"shapecheck/shape"
)

// ShapeID uniquely identifies an extracted shape by its package path and type
// name.
type ShapeID struct {
	PkgPath string // e.g., "shapecheck/catalog"
	Name    string // e.g., "Account"
}

// String returns a human-readable representation of the ShapeID.
func (id ShapeID) String() string {
	if id.PkgPath == "" {
		return id.Name
	}

	return id.PkgPath + "." + id.Name
}

// ConstInfo describes one exported numeric constant found in a loaded
// package, keyed by its literal spelling in the source.
type ConstInfo struct {
	ID     ShapeID        // package path + constant name
	Number literal.Number // validated canonical spelling
}

// ShapeSet holds all shapes and constants extracted from loaded packages.
type ShapeSet struct {
	// Shapes maps ShapeID to the extracted shape for all exported structs.
	Shapes map[ShapeID]*shape.Shape
	// Consts lists exported numeric constants in extraction order.
	Consts []ConstInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewShapeSet creates a new empty ShapeSet.
func NewShapeSet() *ShapeSet {
	return &ShapeSet{
		Shapes:   make(map[ShapeID]*shape.Shape),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetShape returns the shape extracted for a named struct type.
func (set *ShapeSet) GetShape(pkgPath, name string) (*shape.Shape, error) {
	id := ShapeID{PkgPath: pkgPath, Name: name}

	s, ok := set.Shapes[id]
	if !ok {
		return nil, fmt.Errorf("no shape extracted for %s", id)
	}

	return s, nil
}

// FindShape returns the single shape with the given type name across all
// loaded packages. Zero or several matches are errors.
func (set *ShapeSet) FindShape(name string) (*shape.Shape, error) {
	var matches []*shape.Shape
	for id, s := range set.Shapes {
		if id.Name == name {
			matches = append(matches, s)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no shape extracted for type %s", name)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("type name %s is ambiguous across loaded packages", name)
	}
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path   string    // Import path
	Name   string    // Package name
	Shapes []ShapeID // Shapes extracted from this package
}
