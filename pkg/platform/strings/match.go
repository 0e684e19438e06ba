// Package strings provides the name-matching rules used when resolving
// human-readable names against upstream reference data.
package strings

import (
	"strings"
)

// Normalize trims surrounding whitespace and lowercases s.
//
// Example:
//
//	Normalize("  MAHARASHTRA ")
//	// Returns: "maharashtra"
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// EqualNormalized reports whether a and b are the same name once both are
// normalized. The comparison is exact: "Maha" does not equal "Maharashtra".
func EqualNormalized(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// ContainsFold reports whether needle occurs anywhere in haystack, ignoring
// case. Surrounding whitespace on needle is ignored; an empty needle never
// matches.
//
// Example:
//
//	ContainsFold("R. Sharma", "sharma")
//	// Returns: true
func ContainsFold(haystack, needle string) bool {
	n := Normalize(needle)
	if n == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), n)
}
