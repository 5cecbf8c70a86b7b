// Package evidence implements the regex-based structured-token scanner
// that turns raw OCR/text-layer output into a models.TextEvidence: the
// ambient boundary between "a blob of recognized text" and the
// candidate tax-ID/amount/date/document-number lists the classifier and
// extractors consume. Scanners validate candidates (NIP checksum,
// plausible amount/date shape); the normalizers downstream never do.
package evidence

import (
	"regexp"

	"github.com/facturaIA/docid-service/internal/models"
	"github.com/facturaIA/docid-service/internal/normalize"
)

var (
	nipPattern = regexp.MustCompile(`\b(?:[A-Z]{2}\s?)?\d{3}[-\s]?\d{2}[-\s]?\d{2}[-\s]?\d{3}\b|\b(?:[A-Z]{2}\s?)?\d{3}[-\s]?\d{3}[-\s]?\d{2}[-\s]?\d{2}\b|\b(?:[A-Z]{2}\s?)?\d{10}\b`)

	amountPattern = regexp.MustCompile(`\d{1,3}(?:[ \x{00A0}.]\d{3})*[.,]\d{2}(?:\s*(?:zł|PLN|ZŁ))?`)

	datePattern = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b|\b\d{2}[./-]\d{2}[./-]\d{4}\b|\b\d{8}\b`)

	docNumberPattern = regexp.MustCompile(`\b[A-Za-z]{0,4}[\-/]?\d+[A-Za-z0-9\-/]*\d[A-Za-z0-9\-/]*\b`)
)

// Scan runs every structured-token scanner over raw text and assembles a
// models.TextEvidence. fullText is stored verbatim; averageConfidence is
// carried through from the OCR collaborator (or 1.0 for a native text
// layer read directly).
func Scan(fullText string, averageConfidence float64) *models.TextEvidence {
	return &models.TextEvidence{
		FullText:           fullText,
		AverageConfidence:  averageConfidence,
		DetectedTaxIDs:     scanTaxIDs(fullText),
		DetectedAmounts:    dedupPreserveOrder(amountPattern.FindAllString(fullText, -1)),
		DetectedDates:      dedupPreserveOrder(datePattern.FindAllString(fullText, -1)),
		DetectedDocNumbers: dedupPreserveOrder(docNumberPattern.FindAllString(fullText, -1)),
	}
}

// scanTaxIDs finds NIP-shaped tokens and keeps only those whose
// normalized form passes the modulo-11 checksum. The scanner validates;
// the normalizer never does.
func scanTaxIDs(text string) []string {
	candidates := nipPattern.FindAllString(text, -1)
	var out []string
	seen := make(map[string]bool)
	for _, c := range candidates {
		normalized := normalize.NIP(c)
		if !normalize.ValidateNIP(normalized) {
			continue
		}
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, c)
	}
	return out
}

// dedupPreserveOrder removes duplicates while preserving first-occurrence
// order, needed for multi-page token-list unions and applied here
// uniformly for single-page scans too.
func dedupPreserveOrder(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
