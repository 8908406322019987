package extract

import "github.com/Roof-ER21/roof-hr-sub004/internal/model"

// Field weights for the extraction confidence score. The insured name
// drives the downstream match, so it carries the most.
const (
	weightInsuredName    = 25
	weightPolicyNumber   = 20
	weightExpirationDate = 20
	weightEffectiveDate  = 15
	weightInsurerName    = 10
	weightDocumentType   = 10
)

// Confidence computes the 0-100 extraction score from which fields were
// found. Monotonic: filling in a previously-absent field never lowers it.
func Confidence(cert *model.ParsedCertificate) int {
	score := 0
	if cert.InsuredName != "" {
		score += weightInsuredName
	}
	if cert.PolicyNumber != "" {
		score += weightPolicyNumber
	}
	if cert.ExpirationDate != "" {
		score += weightExpirationDate
	}
	if cert.EffectiveDate != "" {
		score += weightEffectiveDate
	}
	if cert.InsurerName != "" {
		score += weightInsurerName
	}
	if cert.DocumentType != model.DocTypeUnknown {
		score += weightDocumentType
	}
	if score > 100 {
		score = 100
	}
	return score
}
