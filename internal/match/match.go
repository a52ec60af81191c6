package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes an identifier for fuzzy comparison: case-folded
// with separator characters (_, -, spaces) stripped.
func NormalizeIdent(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-character insertions, deletions, or substitutions needed
// to transform one into the other. Two rows of the matrix are kept, so space
// is O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 || len(b) == 0 {
		return len(a) + len(b)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity scores two identifiers between 0 and 1 after normalization:
// 1 means identical, 0 means entirely different.
func Similarity(a, b string) float64 {
	na, nb := NormalizeIdent(a), NormalizeIdent(b)
	if len(na) == 0 && len(nb) == 0 {
		return 1.0
	}

	maxLen := max(len(na), len(nb))

	return 1.0 - float64(Levenshtein(na, nb))/float64(maxLen)
}

// closeEnough is the minimum similarity for a candidate to be suggested.
const closeEnough = 0.5

// Closest returns the candidate most similar to name, if any candidate is
// close enough to be a plausible intention.
func Closest(name string, candidates []string) (string, bool) {
	best, bestScore := "", 0.0
	for _, c := range candidates {
		if score := Similarity(name, c); score > bestScore {
			best, bestScore = c, score
		}
	}

	return best, bestScore >= closeEnough
}
