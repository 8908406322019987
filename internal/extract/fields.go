package extract

import (
	"regexp"
	"strings"
)

// Policy-number cascade: labeled forms first, then a bare alphanumeric code
// shaped like the common carrier formats (2-4 letter prefix, 6+ digits).
var policyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bpolicy\s*(?:number|no\.?|num\.?|#)\s*:?\s*([A-Za-z0-9][A-Za-z0-9-]{4,})`),
	regexp.MustCompile(`(?i)\bpolicy\s*:\s*([A-Za-z0-9][A-Za-z0-9-]{4,})`),
	regexp.MustCompile(`(?i)\bcertificate\s*(?:number|no\.?|#)\s*:?\s*([A-Za-z0-9][A-Za-z0-9-]{4,})`),
	regexp.MustCompile(`\b([A-Za-z]{2,4}\d{6,})\b`),
}

func extractPolicyNumber(text string) string {
	for _, p := range policyPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimRight(m[1], "-")
		}
	}
	return ""
}

const insurerMaxLen = 100

// Insurer-name cascade. "INSURER A:" style labels on ACORD forms carry a
// letter between label and value.
var insurerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\binsurer\s*(?:[a-f]\b)?\s*:?\s+([^\r\n]+)`),
	regexp.MustCompile(`(?i)\binsurance\s+company\s*:?\s+([^\r\n]+)`),
	regexp.MustCompile(`(?i)\bcarrier\s*:?\s+([^\r\n]+)`),
	regexp.MustCompile(`(?i)\bunderwritten\s+by\s*:?\s+([^\r\n]+)`),
}

func extractInsurer(text string) string {
	for _, p := range insurerPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := columnBreak.Split(strings.TrimSpace(m[1]), 2)[0]
		name = strings.Join(strings.Fields(name), " ")
		if name == "" {
			continue
		}
		if runes := []rune(name); len(runes) > insurerMaxLen {
			name = string(runes[:insurerMaxLen])
		}
		return name
	}
	return ""
}
