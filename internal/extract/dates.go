package extract

import (
	"regexp"
	"strings"
	"time"
)

const datePat = `\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`

var dateToken = regexp.MustCompile(`\b` + datePat + `\b`)

// adjacentGap is the maximum number of characters between two date tokens
// for them to count as a single effective/expiration pair. Certificate
// tables put the two dates in adjacent columns; 40 covers the gutter in
// pdftotext output.
const adjacentGap = 40

// policyTermMin/Max bound a plausible annual policy term in days.
const (
	policyTermMin = 350
	policyTermMax = 380
)

var (
	effectiveLabeled  = regexp.MustCompile(`(?i)\b(?:effective(?:\s+date)?|policy\s+period|from)\s*:?\s*(` + datePat + `)`)
	expirationLabeled = regexp.MustCompile(`(?i)\b(?:expir[a-z]*(?:\s+date)?|to|ends?)\s*:?\s*(` + datePat + `)`)
	dateRange         = regexp.MustCompile(`(` + datePat + `)\s*(?:to|through|thru|-)\s*(` + datePat + `)`)
)

// extractDates resolves (effective, expiration) through a priority cascade:
// adjacent date pair, then any pair roughly a policy year apart, then
// labeled keywords and explicit ranges, then synthesis of expiration from
// effective. Returned dates keep their source formatting.
func (e *Extractor) extractDates(text string) (effective, expiration string) {
	locs := dateToken.FindAllStringIndex(text, -1)

	// 1. Two dates in immediate textual proximity: the standard table
	// layout. Taken verbatim, first pair wins.
	for i := 0; i+1 < len(locs); i++ {
		if locs[i+1][0]-locs[i][1] <= adjacentGap {
			return text[locs[i][0]:locs[i][1]], text[locs[i+1][0]:locs[i+1][1]]
		}
	}

	// 2. Any two distinct dates an annual policy term apart.
	type dated struct {
		raw string
		t   time.Time
	}
	var dates []dated
	seen := map[time.Time]bool{}
	for _, loc := range locs {
		raw := text[loc[0]:loc[1]]
		t, ok := parseDate(raw)
		if !ok || seen[t] {
			continue
		}
		seen[t] = true
		dates = append(dates, dated{raw: raw, t: t})
	}
	for i := 0; i < len(dates); i++ {
		for j := i + 1; j < len(dates); j++ {
			days := int(dates[j].t.Sub(dates[i].t).Hours() / 24)
			if days < 0 {
				days = -days
			}
			if days >= policyTermMin && days <= policyTermMax {
				if dates[i].t.Before(dates[j].t) {
					return dates[i].raw, dates[j].raw
				}
				return dates[j].raw, dates[i].raw
			}
		}
	}

	// 3. Labeled keywords and explicit "X to Y" ranges.
	if m := effectiveLabeled.FindStringSubmatch(text); m != nil {
		effective = m[1]
	}
	if m := expirationLabeled.FindStringSubmatch(text); m != nil {
		expiration = m[1]
	}
	if effective == "" || expiration == "" {
		if m := dateRange.FindStringSubmatch(text); m != nil {
			effective, expiration = m[1], m[2]
		}
	}

	// 4. Annual term assumed when only the effective date is known.
	if effective != "" && expiration == "" {
		if t, ok := parseDate(effective); ok {
			expiration = t.AddDate(0, 0, 365).Format("1/2/2006")
		}
	}

	return effective, expiration
}

// parseDate handles the slash and dash month/day/year formats seen on
// certificates, with two or four digit years.
func parseDate(s string) (time.Time, bool) {
	s = strings.ReplaceAll(s, "-", "/")
	for _, layout := range []string{"1/2/2006", "1/2/06"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
