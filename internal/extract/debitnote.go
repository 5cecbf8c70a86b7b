package extract

import (
	"regexp"

	"github.com/facturaIA/docid-service/internal/models"
)

var debitNoteKeywords = []string{"nota", "obciążeniowa", "nota debetowa"}

var noteNumberPattern = regexp.MustCompile(`(?i)(?:nota nr|nr noty)\D{0,5}([A-Za-z0-9][A-Za-z0-9/\-]*)`)

type debitNoteExtractor struct{}

// NewDebitNoteExtractor builds the debit-note extractor.
func NewDebitNoteExtractor() Extractor { return &debitNoteExtractor{} }

func (e *debitNoteExtractor) Kind() models.DocumentKind { return models.KindDebitNote }

func (e *debitNoteExtractor) CanExtract(ev *models.TextEvidence) (bool, float64) {
	confidence := 0.0
	if containsAny(ev.FullText, debitNoteKeywords) {
		confidence += 0.4
	}
	if containsAny(ev.FullText, []string{"obciążeniowa", "debetowa"}) {
		confidence += 0.2
	}
	if len(ev.DetectedAmounts) > 0 {
		confidence += 0.2
	}
	confidence = clamp01(confidence)
	return confidence > Threshold, confidence
}

func (e *debitNoteExtractor) Extract(ev *models.TextEvidence) *models.ExtractionResult {
	_, confidence := e.CanExtract(ev)
	result := baseResult(models.KindDebitNote, confidence)

	result.Fields[models.FieldIssuerNIP] = first(ev.DetectedTaxIDs)
	result.Fields[models.FieldNoteNumber] = firstMatchGroup(noteNumberPattern, ev.FullText)
	result.Fields[models.FieldDocumentDate] = first(ev.DetectedDates)
	result.Fields[models.FieldAmount] = maxAmount(ev.DetectedAmounts)
	result.Fields[models.FieldRecipientNIP] = second(ev.DetectedTaxIDs)

	return result
}
