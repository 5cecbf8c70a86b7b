package extract

import "github.com/facturaIA/docid-service/internal/models"

var (
	deliveryNoteKeywords = []string{"wz", "wydanie zewnętrzne", "dokument wz"}
	receiptNoteKeywords  = []string{"pz", "przyjęcie zewnętrzne"}
)

// deliveryNoteExtractor covers both DELIVERY_NOTE (WZ) and its symmetric
// counterpart RECEIPT_NOTE (PZ); both share a field shape and differ
// only in keyword set and document kind.
type deliveryNoteExtractor struct {
	kind     models.DocumentKind
	keywords []string
}

// NewDeliveryNoteExtractor builds a delivery-note or receipt-note
// extractor depending on kind.
func NewDeliveryNoteExtractor(kind models.DocumentKind) Extractor {
	keywords := deliveryNoteKeywords
	if kind == models.KindReceiptNote {
		keywords = receiptNoteKeywords
	}
	return &deliveryNoteExtractor{kind: kind, keywords: keywords}
}

func (e *deliveryNoteExtractor) Kind() models.DocumentKind { return e.kind }

func (e *deliveryNoteExtractor) CanExtract(ev *models.TextEvidence) (bool, float64) {
	confidence := 0.0
	if containsAny(ev.FullText, e.keywords) {
		confidence += 0.5
	}
	if len(ev.DetectedTaxIDs) > 0 {
		confidence += 0.2
	}
	if len(ev.DetectedDocNumbers) > 0 {
		confidence += 0.1
	}
	confidence = clamp01(confidence)
	return confidence > Threshold, confidence
}

func (e *deliveryNoteExtractor) Extract(ev *models.TextEvidence) *models.ExtractionResult {
	_, confidence := e.CanExtract(ev)
	result := baseResult(e.kind, confidence)

	result.Fields[models.FieldIssuerNIP] = first(ev.DetectedTaxIDs)
	result.Fields[models.FieldDocumentNumber] = first(ev.DetectedDocNumbers)
	result.Fields[models.FieldDocumentDate] = first(ev.DetectedDates)
	result.Fields[models.FieldRecipientNIP] = second(ev.DetectedTaxIDs)

	return result
}
