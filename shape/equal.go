package shape

import "go/types"

// Equal reports whether two shapes denote exactly the same record type:
// identical key sets, and per member identical mutability, identical
// optionality, and value types assignable in both directions.
//
// Bidirectional assignability is the point: one-directional assignability
// would equate a read-only member with a writable one whose value types
// coincide. Equal({a: readonly int}, {a: int}) is false.
func Equal(a, b *Shape) bool {
	if a == nil || b == nil {
		return a == b
	}

	if len(a.members) != len(b.members) {
		return false
	}

	for k, ma := range a.members {
		mb, ok := b.members[k]
		if !ok {
			return false
		}

		if ma.Readonly != mb.Readonly || ma.Optional != mb.Optional {
			return false
		}

		if !typesEqual(ma.Type, mb.Type) {
			return false
		}
	}

	return true
}

// typesEqual reports whether two value types are mutually assignable. Nominal
// identity is not imposed beyond what the two-sided test already provides:
// differently named types are equal exactly when the type system accepts each
// where the other is expected.
func typesEqual(a, b types.Type) bool {
	if a == nil || b == nil {
		return a == b
	}

	return types.AssignableTo(a, b) && types.AssignableTo(b, a)
}
