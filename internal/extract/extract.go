// Package extract turns plain text recovered from a certificate of
// insurance into a structured ParsedCertificate. Extraction is heuristic:
// ordered strategy cascades per field, where "nothing found" is an ordinary
// empty result, never an error.
package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/Roof-ER21/roof-hr-sub004/internal/model"
	"github.com/Roof-ER21/roof-hr-sub004/internal/nickname"
)

// NoTextMarker is the sentinel upstream converters pass when a document
// carried no text layer (e.g. a pure image scan).
const NoTextMarker = "[[NO_EXTRACTABLE_TEXT]]"

// ErrNoInput signals that upstream byte-to-text conversion produced nothing
// at all, which indicates the conversion itself failed. Callers distinguish
// this from NoTextMarker before invoking Parse.
var ErrNoInput = eris.New("extract: empty input text")

const excerptMaxLen = 500

// Extractor runs the field extraction cascades. Pure over its input:
// safe for concurrent use across documents.
type Extractor struct {
	exclusions *nickname.Table
	log        *zap.Logger
}

// New creates an Extractor. A nil logger disables diagnostics.
func New(log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{
		exclusions: nickname.Default(),
		log:        log,
	}
}

// Parse extracts structured fields from certificate text.
//
// Returns ErrNoInput for empty/whitespace input. The NoTextMarker sentinel
// yields a zero-confidence result flagged TextUnavailable. Everything else
// returns a well-formed certificate whose absent fields are simply empty.
func (e *Extractor) Parse(text string) (*model.ParsedCertificate, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrNoInput
	}

	cert := &model.ParsedCertificate{
		CoverageAmounts: map[model.CoverageKind]float64{},
		DocumentType:    model.DocTypeUnknown,
	}

	if trimmed == NoTextMarker {
		cert.TextUnavailable = true
		return cert, nil
	}

	raw, clean, strategy := e.extractName(text)
	cert.RawInsuredName = raw
	cert.InsuredName = clean

	cert.EffectiveDate, cert.ExpirationDate = e.extractDates(text)
	cert.PolicyNumber = extractPolicyNumber(text)
	cert.InsurerName = extractInsurer(text)
	cert.DocumentType = classifyDocument(text)
	cert.CoverageAmounts = extractCoverage(text, cert.DocumentType)
	cert.Confidence = Confidence(cert)
	cert.RawTextExcerpt = excerpt(trimmed)

	e.log.Debug("extract: parse complete",
		zap.String("strategy", strategy),
		zap.String("insured_name", cert.InsuredName),
		zap.String("document_type", string(cert.DocumentType)),
		zap.Int("confidence", cert.Confidence),
	)

	return cert, nil
}

func excerpt(text string) string {
	if len(text) <= excerptMaxLen {
		return text
	}
	cut := excerptMaxLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
