package common

import "path"

// UnknownStr is the fallback rendering for enum values outside their defined
// range.
const UnknownStr = "unknown"

// PkgAlias returns the last element of a package import path, or the empty
// string for an empty path.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}
