package shape

import "go/types"

// KeysWhere returns, in lexicographic order, the keys of s whose member
// satisfies pred.
func KeysWhere(s *Shape, pred func(s *Shape, key string) (bool, error)) []string {
	var keys []string
	for _, k := range s.Keys() {
		// Keys come from the shape itself, so the unknown-key path cannot
		// trigger here.
		ok, _ := pred(s, k)
		if ok {
			keys = append(keys, k)
		}
	}

	return keys
}

// ReadonlyKeys returns the keys of s declared read-only.
func ReadonlyKeys(s *Shape) []string {
	return KeysWhere(s, IsReadonly)
}

// WritableKeys returns the keys of s that carry no read-only constraint.
// Together with ReadonlyKeys it partitions the key set of s exactly.
func WritableKeys(s *Shape) []string {
	return KeysWhere(s, IsWritable)
}

// OptionalKeys returns the keys of s whose member may be absent.
func OptionalKeys(s *Shape) []string {
	return KeysWhere(s, IsOptional)
}

// RequiredKeys returns the keys of s whose member must be present. Together
// with OptionalKeys it partitions the key set of s exactly.
func RequiredKeys(s *Shape) []string {
	return KeysWhere(s, IsRequired)
}

// FuncKeys returns the keys of s whose member value type is callable.
func FuncKeys(s *Shape) []string {
	return KeysWhere(s, IsFunc)
}

// NonFuncKeys returns the keys of s whose member value type is not callable.
// Together with FuncKeys it partitions the key set of s exactly.
func NonFuncKeys(s *Shape) []string {
	return KeysWhere(s, func(s *Shape, key string) (bool, error) {
		fn, err := IsFunc(s, key)
		return !fn, err
	})
}

// MatchingKeys returns the keys of s whose member value type is assignable to
// the target category type.
func MatchingKeys(s *Shape, target types.Type) []string {
	return KeysWhere(s, func(s *Shape, key string) (bool, error) {
		return Matches(s, key, target)
	})
}
