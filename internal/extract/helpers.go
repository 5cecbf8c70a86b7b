// Package extract implements the per-kind document extractors: each one
// scores its fit against a TextEvidence ("can this evidence plausibly be
// an invoice/receipt/contract/...?") and, if selected, pulls the kind's
// raw identifying fields out by regex. Confidence formulas and keyword
// sets follow the shapes worked out in the per-kind extractor spec.
package extract

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/facturaIA/docid-service/internal/models"
	"github.com/facturaIA/docid-service/internal/normalize"
)

// Threshold is the minimum can_extract confidence for an extractor to be
// eligible; the classifier then picks the highest, and on a tie the
// earliest registered extractor.
const Threshold = 0.4

func lower(s string) string { return strings.ToLower(s) }

// keywordScore counts how many of the given keywords occur at least
// once in text, case-insensitively.
func keywordScore(text string, keywords []string) int {
	t := lower(text)
	count := 0
	for _, kw := range keywords {
		if strings.Contains(t, kw) {
			count++
		}
	}
	return count
}

func containsAny(text string, keywords []string) bool {
	t := lower(text)
	for _, kw := range keywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// firstMatchGroup returns the first captured group of re's first match in
// text, or "" if there is no match.
func firstMatchGroup(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func first(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[0]
}

func second(items []string) string {
	if len(items) < 2 {
		return ""
	}
	return items[1]
}

// maxAmount returns the largest of a list of raw (un-normalized) amount
// strings, comparing by normalized decimal value. Used as the invoice
// extractor's gross-amount fallback when no explicit "brutto" marker is
// present: the largest candidate on the page is more often the document
// total than a line item or partial sum.
func maxAmount(amounts []string) string {
	best := ""
	bestNorm := ""
	for _, a := range amounts {
		n := normalize.Amount(a)
		if bestNorm == "" || amountGreater(n, bestNorm) {
			best = a
			bestNorm = n
		}
	}
	return best
}

// amountGreater compares two "D...D.DD" normalized amount strings
// numerically without reparsing through decimal, by comparing integer
// and fractional parts after equalizing width.
func amountGreater(a, b string) bool {
	ai := strings.SplitN(a, ".", 2)
	bi := strings.SplitN(b, ".", 2)
	if len(ai[0]) != len(bi[0]) {
		return len(ai[0]) > len(bi[0])
	}
	if ai[0] != bi[0] {
		return ai[0] > bi[0]
	}
	return a > b
}

// md5Hash8 reduces a personal name to the first 8 hex digits of the MD5
// of its uppercase, trimmed form, so PII never surfaces verbatim in a
// canonical string.
func md5Hash8(name string) string {
	clean := strings.ToUpper(strings.TrimSpace(name))
	sum := md5.Sum([]byte(clean))
	return hex.EncodeToString(sum[:])[:8]
}

// baseResult builds an ExtractionResult shell for a given kind/evidence
// pairing, ready to have extractor-specific fields merged in.
func baseResult(kind models.DocumentKind, confidence float64) *models.ExtractionResult {
	return &models.ExtractionResult{
		Kind:       kind,
		Confidence: confidence,
		Fields:     models.Fields{},
	}
}
