package normalize

import (
	"strings"
	"unicode"
)

// businessWords are short indicator tokens matched by whole-word equality.
var businessWords = map[string]bool{
	"llc": true, "inc": true, "corp": true, "ltd": true, "co": true,
	"fund": true, "group": true,
}

// businessSubstrings are longer indicators matched as substrings of a word,
// so "Contractors," and "Roofing's" still register.
var businessSubstrings = []string{
	"company", "enterprises", "services", "roofing", "construction",
	"contracting", "contractors", "agency", "insurance", "employers",
	"associates", "partners",
}

// IsPersonName reports whether s looks like a plain person name:
// two to four words, no digits, no business indicators, first and last
// words at least two characters, none of & @ # %.
func IsPersonName(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "&@#%") {
		return false
	}
	words := strings.Fields(s)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	if wordLen(words[0]) < 2 || wordLen(words[len(words)-1]) < 2 {
		return false
	}
	for _, w := range words {
		if strings.ContainsFunc(w, unicode.IsDigit) {
			return false
		}
		if isBusinessWord(w) {
			return false
		}
	}
	return true
}

// PersonPrefix extracts a leading person-name candidate from business-styled
// input: "John Smith Roofing LLC" -> "John Smith". Returns "" when the input
// has no business indicator or the prefix is not a plausible person name.
func PersonPrefix(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	cut := -1
	for i, w := range words {
		if isBusinessWord(w) {
			cut = i
			break
		}
	}
	if cut < 2 {
		return ""
	}
	prefix := strings.Join(words[:cut], " ")
	if !IsPersonName(prefix) {
		return ""
	}
	return prefix
}

func isBusinessWord(w string) bool {
	lw := strings.ToLower(strings.Trim(w, ".,;:"))
	if businessWords[lw] {
		return true
	}
	for _, sub := range businessSubstrings {
		if strings.Contains(lw, sub) {
			return true
		}
	}
	return false
}

func wordLen(w string) int {
	return len(strings.Trim(w, ".,;:"))
}
