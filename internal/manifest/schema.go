package manifest

// File represents the root of a YAML shape manifest.
type File struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Shapes is the list of declared shapes.
	Shapes []ShapeDef `yaml:"shapes"`
}

// ShapeDef declares one shape.
type ShapeDef struct {
	// Name of the shape, unique within the manifest.
	Name string `yaml:"name"`

	// Members lists the shape's members in declaration order. Order carries
	// no meaning for classification.
	Members []MemberDef `yaml:"members"`
}

// MemberDef declares one member of a shape.
type MemberDef struct {
	// Key is the member name, unique within the shape.
	Key string `yaml:"key"`

	// Type is the member's value type spelling (e.g. "string", "float64",
	// "*int", "func()").
	Type string `yaml:"type"`

	// Readonly marks the member as not reassignable.
	Readonly bool `yaml:"readonly,omitempty"`

	// Optional marks the member as legitimately absent.
	Optional bool `yaml:"optional,omitempty"`
}
