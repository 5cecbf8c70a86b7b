package extract

import (
	"regexp"

	"github.com/facturaIA/docid-service/internal/models"
)

var (
	cashInKeywords  = []string{"kp", "kasa przyjmie"}
	cashOutKeywords = []string{"kw", "kasa wyda"}

	partyNamePattern = regexp.MustCompile(`(?i)(?:wpłacił|odebrał|wystawił)\D{0,5}([\p{L} ]{3,40})`)
)

// cashVoucherExtractor covers both CASH_IN (KP) and CASH_OUT (KW)
// vouchers; they share a field shape and differ only in keyword set and
// document kind.
type cashVoucherExtractor struct {
	kind     models.DocumentKind
	keywords []string
}

// NewCashVoucherExtractor builds a cash-in or cash-out voucher extractor.
func NewCashVoucherExtractor(kind models.DocumentKind) Extractor {
	keywords := cashInKeywords
	if kind == models.KindCashOut {
		keywords = cashOutKeywords
	}
	return &cashVoucherExtractor{kind: kind, keywords: keywords}
}

func (e *cashVoucherExtractor) Kind() models.DocumentKind { return e.kind }

func (e *cashVoucherExtractor) CanExtract(ev *models.TextEvidence) (bool, float64) {
	confidence := 0.0
	if containsAny(ev.FullText, e.keywords) {
		confidence += 0.5
	}
	if len(ev.DetectedAmounts) > 0 {
		confidence += 0.3
	}
	if len(ev.DetectedDocNumbers) > 0 {
		confidence += 0.1
	}
	confidence = clamp01(confidence)
	return confidence > Threshold, confidence
}

func (e *cashVoucherExtractor) Extract(ev *models.TextEvidence) *models.ExtractionResult {
	_, confidence := e.CanExtract(ev)
	result := baseResult(e.kind, confidence)

	result.Fields[models.FieldDocumentNumber] = first(ev.DetectedDocNumbers)
	result.Fields[models.FieldDocumentDate] = first(ev.DetectedDates)
	result.Fields[models.FieldAmount] = maxAmount(ev.DetectedAmounts)
	result.Fields[models.FieldPartyNIP] = first(ev.DetectedTaxIDs)

	if name := firstMatchGroup(partyNamePattern, ev.FullText); name != "" {
		result.Fields[models.FieldPartyName] = md5Hash8(name)
	}

	return result
}
