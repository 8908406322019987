// Package normalize provides the string normalization and similarity
// primitives shared by field extraction and employee matching.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// legalSuffixes are entity-form tokens stripped from the end of a name.
// Token-based so "Jacob" is never mangled by a substring hit on "co".
var legalSuffixes = map[string]bool{
	"llc": true, "inc": true, "incorporated": true,
	"corp": true, "corporation": true,
	"co": true, "company": true,
	"ltd": true, "limited": true,
	"llp": true, "lp": true, "pllc": true, "pc": true,
	"dba": true,
}

var multiSpace = regexp.MustCompile(`\s{2,}`)

// foldDiacritics maps accented characters to their ASCII base forms.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name normalizes a person or business name for comparison: lowercase,
// diacritics folded, punctuation removed, trailing legal suffixes stripped,
// whitespace collapsed. Idempotent.
func Name(s string) string {
	n := strings.ToLower(strings.TrimSpace(s))
	if folded, _, err := transform.String(foldDiacritics, n); err == nil {
		n = folded
	}

	var b strings.Builder
	b.Grow(len(n))
	for _, r := range n {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ':
			b.WriteRune(r)
		case r == '.' || r == '\'':
			// Joiners: "L.L.C." -> "llc", "O'Brien" -> "obrien".
		default:
			b.WriteRune(' ')
		}
	}
	n = strings.TrimSpace(multiSpace.ReplaceAllString(b.String(), " "))

	words := strings.Fields(n)
	for len(words) > 1 && legalSuffixes[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

// Email normalizes an email address for case-insensitive comparison.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
