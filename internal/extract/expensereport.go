package extract

import (
	"regexp"

	"github.com/facturaIA/docid-service/internal/models"
)

var expenseReportKeywords = []string{"delegacja", "rozliczenie kosztów", "diety"}

var reportNumberPattern = regexp.MustCompile(`(?i)(?:delegacja nr|nr delegacji)\D{0,5}([A-Za-z0-9][A-Za-z0-9/\-]*)`)

type expenseReportExtractor struct{}

// NewExpenseReportExtractor builds the travel-expense-report extractor.
func NewExpenseReportExtractor() Extractor { return &expenseReportExtractor{} }

func (e *expenseReportExtractor) Kind() models.DocumentKind { return models.KindExpenseReport }

func (e *expenseReportExtractor) CanExtract(ev *models.TextEvidence) (bool, float64) {
	confidence := 0.0
	if containsAny(ev.FullText, expenseReportKeywords) {
		confidence += 0.5
	}
	if len(ev.DetectedAmounts) > 0 {
		confidence += 0.3
	}
	confidence = clamp01(confidence)
	return confidence > Threshold, confidence
}

func (e *expenseReportExtractor) Extract(ev *models.TextEvidence) *models.ExtractionResult {
	_, confidence := e.CanExtract(ev)
	result := baseResult(models.KindExpenseReport, confidence)

	result.Fields[models.FieldEmployeeID] = first(ev.DetectedTaxIDs)
	result.Fields[models.FieldReportDate] = first(ev.DetectedDates)
	result.Fields[models.FieldTotalAmount] = maxAmount(ev.DetectedAmounts)
	result.Fields[models.FieldReportNumber] = firstMatchGroup(reportNumberPattern, ev.FullText)
	result.Fields[models.FieldCompanyNIP] = second(ev.DetectedTaxIDs)

	return result
}
