package extract

import (
	"regexp"

	"github.com/facturaIA/docid-service/internal/models"
)

var receiptKeywords = []string{
	"paragon", "fiskalny", "kasa", "sprzedaż", "gotówka", "karta", "reszta", "ptu", "suma",
}

var (
	receiptTotalPattern    = regexp.MustCompile(`(?i)(?:suma|razem|do zapłaty)\D{0,5}([0-9][0-9 \x{00A0}.,]*[0-9])`)
	receiptNumberPattern   = regexp.MustCompile(`(?i)(?:nr|numer)\s*paragonu\D{0,5}([A-Za-z0-9][A-Za-z0-9/\-]*)`)
	cashRegisterPattern    = regexp.MustCompile(`(?i)(?:kasa|stanowisko)\D{0,5}(\d+)`)
	percentOrPTUIndicators = regexp.MustCompile(`(?i)ptu|%`)
)

type receiptExtractor struct{}

// NewReceiptExtractor builds the fiscal-receipt extractor.
func NewReceiptExtractor() Extractor { return &receiptExtractor{} }

func (e *receiptExtractor) Kind() models.DocumentKind { return models.KindReceipt }

func (e *receiptExtractor) CanExtract(ev *models.TextEvidence) (bool, float64) {
	kwCount := keywordScore(ev.FullText, receiptKeywords)
	confidence := 0.15 * float64(kwCount)
	if containsAny(ev.FullText, []string{"fiskaln", "paragon"}) {
		confidence += 0.3
	}
	if percentOrPTUIndicators.MatchString(ev.FullText) {
		confidence += 0.2
	}
	confidence = clamp01(confidence)
	return confidence > Threshold, confidence
}

func (e *receiptExtractor) Extract(ev *models.TextEvidence) *models.ExtractionResult {
	_, confidence := e.CanExtract(ev)
	result := baseResult(models.KindReceipt, confidence)

	result.Fields[models.FieldIssuerNIP] = first(ev.DetectedTaxIDs)
	result.Fields[models.FieldDocumentDate] = first(ev.DetectedDates)

	gross := firstMatchGroup(receiptTotalPattern, ev.FullText)
	if gross == "" {
		gross = maxAmount(ev.DetectedAmounts)
	}
	result.Fields[models.FieldGrossAmount] = gross
	result.Fields[models.FieldReceiptNumber] = firstMatchGroup(receiptNumberPattern, ev.FullText)
	result.Fields[models.FieldCashRegisterNumber] = firstMatchGroup(cashRegisterPattern, ev.FullText)

	return result
}
