package extract

import (
	"regexp"

	"github.com/facturaIA/docid-service/internal/models"
)

var billKeywords = []string{"rachunek", "nota"}

var billNumberPattern = regexp.MustCompile(`(?i)(?:rachunek nr|nr rachunku)\D{0,5}([A-Za-z0-9][A-Za-z0-9/\-]*)`)

type billExtractor struct{}

// NewBillExtractor builds the simple-bill extractor.
func NewBillExtractor() Extractor { return &billExtractor{} }

func (e *billExtractor) Kind() models.DocumentKind { return models.KindBill }

func (e *billExtractor) CanExtract(ev *models.TextEvidence) (bool, float64) {
	kwCount := keywordScore(ev.FullText, billKeywords)
	confidence := 0.2 * float64(kwCount)
	if len(ev.DetectedTaxIDs) > 0 {
		confidence += 0.2
	}
	if len(ev.DetectedAmounts) > 0 {
		confidence += 0.2
	}
	confidence = clamp01(confidence)
	return confidence > Threshold, confidence
}

func (e *billExtractor) Extract(ev *models.TextEvidence) *models.ExtractionResult {
	_, confidence := e.CanExtract(ev)
	result := baseResult(models.KindBill, confidence)

	result.Fields[models.FieldIssuerNIP] = first(ev.DetectedTaxIDs)
	result.Fields[models.FieldBillNumber] = firstMatchGroup(billNumberPattern, ev.FullText)
	result.Fields[models.FieldDocumentDate] = first(ev.DetectedDates)

	gross := maxAmount(ev.DetectedAmounts)
	result.Fields[models.FieldGrossAmount] = gross

	return result
}
