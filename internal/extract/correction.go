package extract

import (
	"regexp"

	"github.com/facturaIA/docid-service/internal/models"
)

var correctionKeywords = []string{"korekta", "faktura korygująca", "korygowana", "zwrot"}

var (
	correctionNumberPattern       = regexp.MustCompile(`(?i)(?:korekta nr|nr korekty)\D{0,5}([A-Za-z0-9][A-Za-z0-9/\-]*)`)
	originalInvoiceNumberPattern  = regexp.MustCompile(`(?i)(?:do faktury|faktury nr)\D{0,5}([A-Za-z0-9][A-Za-z0-9/\-]*\d[A-Za-z0-9/\-]*)`)
	correctionGrossAmountPattern = grossAmountPattern
)

type correctionExtractor struct{}

// NewCorrectionExtractor builds the correcting-invoice extractor.
func NewCorrectionExtractor() Extractor { return &correctionExtractor{} }

func (e *correctionExtractor) Kind() models.DocumentKind { return models.KindCorrection }

func (e *correctionExtractor) CanExtract(ev *models.TextEvidence) (bool, float64) {
	kwCount := keywordScore(ev.FullText, correctionKeywords)
	confidence := 0.2 * float64(kwCount)
	if containsAny(ev.FullText, []string{"korekta", "korygująca"}) {
		confidence += 0.3
	}
	confidence = clamp01(confidence)
	return confidence > Threshold, confidence
}

func (e *correctionExtractor) Extract(ev *models.TextEvidence) *models.ExtractionResult {
	_, confidence := e.CanExtract(ev)
	result := baseResult(models.KindCorrection, confidence)

	result.Fields[models.FieldSellerNIP] = first(ev.DetectedTaxIDs)
	result.Fields[models.FieldCorrectionNumber] = firstMatchGroup(correctionNumberPattern, ev.FullText)

	date := first(ev.DetectedDates)
	result.Fields[models.FieldDocumentDate] = date

	result.Fields[models.FieldOriginalInvoiceNumber] = firstMatchGroup(originalInvoiceNumberPattern, ev.FullText)

	gross := firstMatchGroup(correctionGrossAmountPattern, ev.FullText)
	if gross == "" {
		gross = maxAmount(ev.DetectedAmounts)
	}
	result.Fields[models.FieldGrossAmount] = gross

	return result
}
