package normalize

import (
	"math"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Distance returns the Levenshtein edit distance between two strings.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Similarity scores how alike two strings are on a 0-100 scale:
// round((1 - distance/maxLen) * 100). Two empty strings score 100.
func Similarity(a, b string) int {
	maxLen := utf8.RuneCountInString(a)
	if l := utf8.RuneCountInString(b); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 100
	}
	d := levenshtein.ComputeDistance(a, b)
	return int(math.Round((1 - float64(d)/float64(maxLen)) * 100))
}
