package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Roof-ER21/roof-hr-sub004/internal/normalize"
)

// scanWindow bounds the last-resort capitalized-sequence scan to the top of
// the document, where the insured block sits on standard forms.
const scanWindow = 1000

// nameStrategy is one tier of the insured-name cascade. Tiers run top to
// bottom; the first candidate within a tier that passes the person-name
// predicate ends the cascade.
type nameStrategy struct {
	name string
	// screen applies the exclusion list before a candidate counts at all.
	screen  bool
	extract func(text string) []string
}

var nameStrategies = []nameStrategy{
	{name: "insured-layout", extract: layoutCandidates},
	{name: "labeled-field", extract: labeledCandidates},
	{name: "capitalized-scan", screen: true, extract: scanCandidates},
}

// extractName runs the cascade. raw is the first candidate any tier
// produced, kept even when it fails the predicate; clean is set only for a
// candidate that passed.
func (e *Extractor) extractName(text string) (raw, clean, strategy string) {
	for _, s := range nameStrategies {
		for _, cand := range s.extract(text) {
			cand = strings.TrimSpace(cand)
			if cand == "" {
				continue
			}
			if s.screen && e.exclusions.Excluded(cand) {
				continue
			}
			if raw == "" {
				raw = cand
			}
			if normalize.IsPersonName(cand) {
				return raw, cand, s.name
			}
			if !s.screen {
				// Structural tiers commit to their first match.
				break
			}
		}
	}
	return raw, "", ""
}

// Tier 1: standard certificate layouts. The name sits under the INSURED box
// label, immediately before an address line (street number, or state + zip).
var layoutPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:INSURED|Insured)\s*:?\s*\r?\n?[ \t]*([A-Z][A-Za-z.'-]*(?:[ \t]+[A-Z][A-Za-z.'-]*){1,3})[ \t]*\r?\n?[ \t]*\d{1,5}[ \t]`),
	regexp.MustCompile(`(?:INSURED|Insured)\s*:?\s*\r?\n?[ \t]*([A-Z][A-Za-z.'-]*(?:[ \t]+[A-Z][A-Za-z.'-]*){1,3})[ \t]*\r?\n?[ \t]*[A-Z]{2}[ \t]+\d{5}`),
}

func layoutCandidates(text string) []string {
	for _, p := range layoutPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return []string{cleanCandidate(m[1])}
		}
	}
	return nil
}

// Tier 2: generic labeled fields.
var labelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\binsured\s*:\s*([^\r\n]+)`),
	regexp.MustCompile(`(?i)\bcontractor\s*:\s*([^\r\n]+)`),
	regexp.MustCompile(`(?i)\bpolicy\s*holder\s*:\s*([^\r\n]+)`),
	regexp.MustCompile(`(?i)\bpolicyholder\s*:\s*([^\r\n]+)`),
}

func labeledCandidates(text string) []string {
	for _, p := range labelPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return []string{cleanCandidate(m[1])}
		}
	}
	return nil
}

// Tier 3: scan the top of the document for any capitalized two-to-four-word
// sequence. Title-case sequences are tried before all-caps ones, which are
// noisier on form boilerplate.
var (
	titleCaseSeq = regexp.MustCompile(`\b[A-Z][a-z]+(?:[ \t]+[A-Z][A-Za-z'.-]+){1,3}\b`)
	allCapsSeq   = regexp.MustCompile(`\b[A-Z]{2,}(?:[ \t]+[A-Z]{2,}){1,3}\b`)
)

func scanCandidates(text string) []string {
	window := text
	if len(window) > scanWindow {
		cut := scanWindow
		for cut > 0 && !utf8.RuneStart(window[cut]) {
			cut--
		}
		window = window[:cut]
	}
	var out []string
	out = append(out, titleCaseSeq.FindAllString(window, -1)...)
	out = append(out, allCapsSeq.FindAllString(window, -1)...)
	return out
}

// columnBreak splits label captures that run into the next form column.
var columnBreak = regexp.MustCompile(`\t|\s{3,}`)

func cleanCandidate(s string) string {
	s = columnBreak.Split(s, 2)[0]
	s = strings.Trim(strings.TrimSpace(s), ".,;:")
	return strings.Join(strings.Fields(s), " ")
}
