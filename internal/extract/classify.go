package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Roof-ER21/roof-hr-sub004/internal/model"
)

// docTypeKeywords maps case-insensitive keyword sets to document types.
// Categories are checked in order; the first with any hit wins.
var docTypeKeywords = []struct {
	docType  model.DocumentType
	keywords []string
}{
	{model.DocTypeWorkersComp, []string{
		"workers comp", "workers' comp", "worker's comp",
		"workmen", "workman", "employers liability", "employers' liability",
	}},
	{model.DocTypeGeneralLiability, []string{
		"commercial general liability", "general liability", "cgl",
		"premises liability", "products-comp",
	}},
	{model.DocTypeAuto, []string{
		"automobile liability", "auto liability", "commercial auto",
		"business auto", "hired auto", "non-owned auto",
	}},
	{model.DocTypeUmbrella, []string{
		"umbrella", "excess liability",
	}},
}

func classifyDocument(text string) model.DocumentType {
	lower := strings.ToLower(text)
	for _, set := range docTypeKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				return set.docType
			}
		}
	}
	return model.DocTypeUnknown
}

var dollarToken = regexp.MustCompile(`\$\s*([0-9][0-9,]*(?:\.[0-9]+)?)`)

// extractCoverage collects all dollar amounts and assigns the largest to
// the coverage slot for the detected document type. General liability is
// the default slot when the type is unknown.
func extractCoverage(text string, docType model.DocumentType) map[model.CoverageKind]float64 {
	amounts := map[model.CoverageKind]float64{}

	var values []float64
	for _, m := range dollarToken.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return amounts
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))

	amounts[coverageSlot(docType)] = values[0]
	return amounts
}

func coverageSlot(docType model.DocumentType) model.CoverageKind {
	switch docType {
	case model.DocTypeWorkersComp:
		return model.CoverageWorkersComp
	case model.DocTypeAuto:
		return model.CoverageAutoLiability
	case model.DocTypeUmbrella:
		return model.CoverageUmbrella
	default:
		return model.CoverageGeneralLiability
	}
}
