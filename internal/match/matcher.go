// Package match resolves an extracted insured-party name (or email) to an
// employee record in a roster snapshot. Matching is pure over its inputs:
// the roster is supplied fresh by the caller on every call and never cached.
package match

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Roof-ER21/roof-hr-sub004/internal/model"
	"github.com/Roof-ER21/roof-hr-sub004/internal/nickname"
	"github.com/Roof-ER21/roof-hr-sub004/internal/normalize"
)

// Thresholds tune candidate retention and result gating. The suggestion
// and auto-match cutoffs are deliberately independent: suggestions feed a
// human reviewer, auto-match silently assigns, so the latter is stricter.
type Thresholds struct {
	// AutoMatch is the minimum top score for populating MatchedEmployee.
	AutoMatch int
	// Suggestion is the default minimum score for SuggestedEmployees.
	Suggestion int
	// MinCandidate is the retention floor for scored candidates.
	MinCandidate int
	// MaxSuggestions caps the suggestion list.
	MaxSuggestions int
}

// DefaultThresholds returns the production tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		AutoMatch:      80,
		Suggestion:     75,
		MinCandidate:   40,
		MaxSuggestions: 5,
	}
}

// Per-strategy score constants.
const (
	scoreExact    = 100
	scoreNickname = 95
	scoreEmail    = 100
	// fuzzyType is the score at which a non-exact match is classified
	// FUZZY rather than PARTIAL.
	fuzzyType = 80
	// Partial substring floors. A contained last name is a stronger
	// signal than a contained first name and must always outrank it.
	lastNameFloor  = 70
	firstNameFloor = 50
)

// minNameLen is the shortest trimmed input worth scoring.
const minNameLen = 3

// Options adjusts a single match call.
type Options struct {
	// MinConfidence overrides the suggestion threshold. Zero means default.
	MinConfidence int
	// RequireExact accepts only an EXACT-type top result regardless of score.
	RequireExact bool
}

// Matcher scores roster candidates against extracted names.
// Safe for concurrent use.
type Matcher struct {
	nicknames  *nickname.Table
	thresholds Thresholds
	log        *zap.Logger
}

// New creates a Matcher. A nil table uses the embedded nickname data;
// a nil logger disables diagnostics.
func New(table *nickname.Table, thresholds Thresholds, log *zap.Logger) *Matcher {
	if table == nil {
		table = nickname.Default()
	}
	if thresholds == (Thresholds{}) {
		thresholds = DefaultThresholds()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Matcher{nicknames: table, thresholds: thresholds, log: log}
}

type candidate struct {
	emp       model.EmployeeRecord
	score     int
	matchType model.MatchType
}

// MatchByName scores every roster entry against the name and assembles a
// MatchResult. Never errors: an empty or too-short name yields a NONE
// result immediately.
func (m *Matcher) MatchByName(name string, roster []model.EmployeeRecord, opts Options) model.MatchResult {
	none := model.MatchResult{MatchType: model.MatchNone}

	norm := normalize.Name(name)
	if len(norm) < minNameLen {
		return none
	}

	suggestionMin := opts.MinConfidence
	if suggestionMin <= 0 {
		suggestionMin = m.thresholds.Suggestion
	}

	// Person-name prefix of business-styled input, scored alongside the
	// full input ("John Smith Roofing LLC" also tries "John Smith").
	personNorm := ""
	if prefix := normalize.PersonPrefix(name); prefix != "" {
		personNorm = normalize.Name(prefix)
	}

	var candidates []candidate
	for _, emp := range roster {
		c := m.scoreEmployee(norm, personNorm, emp)
		if c.score >= m.thresholds.MinCandidate {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return none
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	top := candidates[0]
	result := model.MatchResult{
		Confidence: top.score,
		MatchType:  top.matchType,
	}
	for _, c := range candidates {
		if c.score < suggestionMin || len(result.SuggestedEmployees) >= m.thresholds.MaxSuggestions {
			break
		}
		result.SuggestedEmployees = append(result.SuggestedEmployees, model.SuggestedEmployee{
			ID:        c.emp.ID,
			FirstName: c.emp.FirstName,
			LastName:  c.emp.LastName,
			Email:     c.emp.Email,
			Score:     c.score,
		})
	}

	accepted := top.score >= m.thresholds.AutoMatch
	if opts.RequireExact && top.matchType != model.MatchExact {
		accepted = false
	}
	if accepted {
		result.EmployeeID = top.emp.ID
		result.MatchedEmployee = &model.MatchedEmployee{
			ID:        top.emp.ID,
			FirstName: top.emp.FirstName,
			LastName:  top.emp.LastName,
			Email:     top.emp.Email,
		}
		// The auto-matched employee always heads the suggestion list, even
		// when a caller raises MinConfidence above the auto-match gate.
		if len(result.SuggestedEmployees) == 0 || result.SuggestedEmployees[0].ID != top.emp.ID {
			result.SuggestedEmployees = append([]model.SuggestedEmployee{{
				ID:        top.emp.ID,
				FirstName: top.emp.FirstName,
				LastName:  top.emp.LastName,
				Email:     top.emp.Email,
				Score:     top.score,
			}}, result.SuggestedEmployees...)
		}
	}

	m.log.Debug("match: by name",
		zap.String("input", name),
		zap.Int("candidates", len(candidates)),
		zap.Int("top_score", top.score),
		zap.String("match_type", string(result.MatchType)),
		zap.Bool("auto_matched", accepted),
	)

	return result
}

// scoreEmployee computes the best score across all strategies for one
// candidate. Unlike the extraction cascade, strategies here blend: weak
// signals are combined by taking the maximum rather than trusting the
// first that fires.
func (m *Matcher) scoreEmployee(norm, personNorm string, emp model.EmployeeRecord) candidate {
	first := normalize.Name(emp.FirstName)
	last := normalize.Name(emp.LastName)
	firstLast := strings.TrimSpace(first + " " + last)
	lastFirst := strings.TrimSpace(last + " " + first)

	c := candidate{emp: emp, matchType: model.MatchPartial}

	// Exact: full normalized equality in either order.
	if norm == firstLast || norm == lastFirst {
		c.score = scoreExact
		c.matchType = model.MatchExact
		return c
	}

	// Nickname-aware: same last name, equivalent first names.
	if last != "" && first != "" {
		words := strings.Fields(norm)
		if len(words) >= 2 {
			inFirst, inLast := words[0], words[len(words)-1]
			if (inLast == last && m.nicknames.Equivalent(inFirst, first)) ||
				(words[0] == last && m.nicknames.Equivalent(inLast, first)) {
				c.score = scoreNickname
				c.matchType = model.MatchFuzzy
				return c
			}
		}
	}

	// Levenshtein similarity against both orders, and against the person
	// prefix of business-styled input when present.
	best := normalize.Similarity(norm, firstLast)
	if s := normalize.Similarity(norm, lastFirst); s > best {
		best = s
	}
	if personNorm != "" {
		if s := normalize.Similarity(personNorm, firstLast); s > best {
			best = s
		}
		if s := normalize.Similarity(personNorm, lastFirst); s > best {
			best = s
		}
	}

	// Partial substring floors.
	if last != "" && strings.Contains(norm, last) {
		if best < lastNameFloor {
			best = lastNameFloor
		}
	} else if first != "" && strings.Contains(norm, first) && best < firstNameFloor {
		best = firstNameFloor
	}

	c.score = best
	if best >= fuzzyType {
		c.matchType = model.MatchFuzzy
	}
	return c
}

// MatchByEmail does a case-insensitive exact lookup.
func (m *Matcher) MatchByEmail(email string, roster []model.EmployeeRecord) model.MatchResult {
	norm := normalize.Email(email)
	if norm == "" {
		return model.MatchResult{MatchType: model.MatchNone}
	}
	for _, emp := range roster {
		if normalize.Email(emp.Email) != norm {
			continue
		}
		return model.MatchResult{
			EmployeeID: emp.ID,
			Confidence: scoreEmail,
			MatchType:  model.MatchEmail,
			MatchedEmployee: &model.MatchedEmployee{
				ID:        emp.ID,
				FirstName: emp.FirstName,
				LastName:  emp.LastName,
				Email:     emp.Email,
			},
			SuggestedEmployees: []model.SuggestedEmployee{{
				ID:        emp.ID,
				FirstName: emp.FirstName,
				LastName:  emp.LastName,
				Email:     emp.Email,
				Score:     scoreEmail,
			}},
		}
	}
	return model.MatchResult{MatchType: model.MatchNone}
}

// MatchEmployee tries the email first (it is authoritative when present)
// and falls back to name matching.
func (m *Matcher) MatchEmployee(name, email string, roster []model.EmployeeRecord, opts Options) model.MatchResult {
	if email != "" {
		if r := m.MatchByEmail(email, roster); r.MatchType == model.MatchEmail {
			return r
		}
	}
	return m.MatchByName(name, roster, opts)
}
