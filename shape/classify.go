package shape

import "go/types"

// IsWritable reports whether the member under key carries no read-only
// constraint. The flag is derived indirectly: the single-member slice of s is
// compared, under Equal, against the same slice taken from the all-writable
// projection of s. If the two slices are exactly equal, the original
// declaration added nothing beyond a writable member.
func IsWritable(s *Shape, key string) (bool, error) {
	slice, err := s.Pick(key)
	if err != nil {
		return false, err
	}

	// The projection has the same key set, so this Pick cannot fail.
	writable, _ := s.WritableProjection().Pick(key)

	return Equal(slice, writable), nil
}

// IsReadonly reports whether the member under key is declared read-only. For
// every key present in s exactly one of IsReadonly and IsWritable holds.
func IsReadonly(s *Shape, key string) (bool, error) {
	w, err := IsWritable(s, key)
	if err != nil {
		return false, err
	}

	return !w, nil
}

// IsOptional reports whether the member under key may be absent. The test is
// whether the empty record can stand in for the single-member slice: a value
// with no members satisfies the slice exactly when the member is optional.
func IsOptional(s *Shape, key string) (bool, error) {
	slice, err := s.Pick(key)
	if err != nil {
		return false, err
	}

	return satisfiedByEmpty(slice), nil
}

// IsRequired reports whether the member under key must be present.
func IsRequired(s *Shape, key string) (bool, error) {
	opt, err := IsOptional(s, key)
	if err != nil {
		return false, err
	}

	return !opt, nil
}

// satisfiedByEmpty reports whether a record with no members at all is an
// acceptable value for the given shape.
func satisfiedByEmpty(s *Shape) bool {
	for _, m := range s.members {
		if !m.Optional {
			return false
		}
	}

	return true
}

// IsFunc reports whether the member's declared value type is callable. The
// absence qualifier is stripped before the test: the Optional flag is ignored
// and one level of pointer indirection is removed, since that is how an
// optional member is spelled in loaded struct declarations. Without the strip
// an optional function member would misclassify, because "absent" is not
// itself callable.
func IsFunc(s *Shape, key string) (bool, error) {
	m, ok := s.Member(key)
	if !ok {
		return false, unknownKey(s, key)
	}

	t := m.Type
	if t == nil {
		return false, nil
	}

	if ptr, isPtr := t.Underlying().(*types.Pointer); isPtr && m.Optional {
		t = ptr.Elem()
	}

	_, isSig := t.Underlying().(*types.Signature)
	return isSig, nil
}

// Matches reports whether the member's declared value type is assignable to
// the caller-supplied target category type.
func Matches(s *Shape, key string, target types.Type) (bool, error) {
	m, ok := s.Member(key)
	if !ok {
		return false, unknownKey(s, key)
	}

	if m.Type == nil || target == nil {
		return false, nil
	}

	return types.AssignableTo(m.Type, target), nil
}

func unknownKey(s *Shape, key string) error {
	// Route through Pick so the error text is uniform.
	_, err := s.Pick(key)
	return err
}
