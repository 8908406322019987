package model

// DocumentType categorizes a certificate of insurance by the coverage it attests.
type DocumentType string

const (
	DocTypeWorkersComp      DocumentType = "WORKERS_COMP"
	DocTypeGeneralLiability DocumentType = "GENERAL_LIABILITY"
	DocTypeAuto             DocumentType = "AUTO"
	DocTypeUmbrella         DocumentType = "UMBRELLA"
	DocTypeUnknown          DocumentType = "UNKNOWN"
)

// CoverageKind identifies a coverage-amount slot on a certificate.
type CoverageKind string

const (
	CoverageGeneralLiability CoverageKind = "general_liability"
	CoverageWorkersComp      CoverageKind = "workers_comp"
	CoverageAutoLiability    CoverageKind = "auto_liability"
	CoverageUmbrella         CoverageKind = "umbrella"
)

// ParsedCertificate holds the structured fields extracted from certificate text.
// Absent string fields are empty; dates keep their original textual format.
type ParsedCertificate struct {
	// InsuredName is the cleaned person-name candidate. Set only when the
	// extracted text passes the person-name predicate.
	InsuredName string `json:"insured_name,omitempty"`
	// RawInsuredName is the best-effort raw extraction, kept even when it
	// fails the predicate (e.g. carries a business suffix).
	RawInsuredName  string                   `json:"raw_insured_name,omitempty"`
	PolicyNumber    string                   `json:"policy_number,omitempty"`
	EffectiveDate   string                   `json:"effective_date,omitempty"`
	ExpirationDate  string                   `json:"expiration_date,omitempty"`
	InsurerName     string                   `json:"insurer_name,omitempty"`
	CoverageAmounts map[CoverageKind]float64 `json:"coverage_amounts,omitempty"`
	DocumentType    DocumentType             `json:"document_type"`
	// Confidence is a 0-100 heuristic derived from which fields were found.
	Confidence int `json:"confidence"`
	// RawTextExcerpt is a bounded slice of the source text, for audit only.
	RawTextExcerpt string `json:"raw_text_excerpt,omitempty"`
	// TextUnavailable marks the "document had no extractable text" case,
	// as opposed to "text was present but nothing was found".
	TextUnavailable bool `json:"text_unavailable,omitempty"`
}
