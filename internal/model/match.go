package model

// MatchType classifies how an employee match was established.
type MatchType string

const (
	MatchExact   MatchType = "EXACT"
	MatchFuzzy   MatchType = "FUZZY"
	MatchEmail   MatchType = "EMAIL"
	MatchPartial MatchType = "PARTIAL"
	MatchNone    MatchType = "NONE"
)

// MatchedEmployee is the roster entry selected by a high-confidence match.
type MatchedEmployee struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// SuggestedEmployee is a scored candidate offered for human review.
type SuggestedEmployee struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Score     int    `json:"score"`
}

// MatchResult is the outcome of resolving an extracted name (or email)
// against a roster snapshot. MatchedEmployee is populated only when the
// top score clears the auto-match threshold; lower-scoring candidates
// surface through SuggestedEmployees for operator confirmation.
type MatchResult struct {
	EmployeeID         string              `json:"employee_id,omitempty"`
	Confidence         int                 `json:"confidence"`
	MatchType          MatchType           `json:"match_type"`
	MatchedEmployee    *MatchedEmployee    `json:"matched_employee,omitempty"`
	SuggestedEmployees []SuggestedEmployee `json:"suggested_employees,omitempty"`
}
