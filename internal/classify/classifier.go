// Package classify selects the best-fit extractor for a piece of text
// evidence, falling back to a generic OTHER classification when nothing
// clears the acceptance threshold.
package classify

import (
	"github.com/facturaIA/docid-service/internal/extract"
	"github.com/facturaIA/docid-service/internal/models"
)

// Classifier runs every registered extractor's CanExtract and picks the
// highest-confidence match above threshold, with a fixed tie-break
// ordering (extractor registration order, per models.KindOrder).
type Classifier struct {
	extractors []extract.Extractor
}

// New builds a Classifier over the given extractors. Use NewDefault for
// the standard fourteen-kind set.
func New(extractors []extract.Extractor) *Classifier {
	return &Classifier{extractors: extractors}
}

// NewDefault builds a Classifier over extract.Default().
func NewDefault() *Classifier {
	return New(extract.Default())
}

// Classify scores ev against every extractor and returns the extraction
// result of the best match, or an OTHER fallback carrying only the raw
// evidence and whatever shared fields (first NIP, first date) can be
// lifted, if no extractor clears the acceptance threshold.
func (c *Classifier) Classify(ev *models.TextEvidence) *models.ExtractionResult {
	var best extract.Extractor
	bestConfidence := -1.0

	for _, e := range c.extractors {
		ok, confidence := e.CanExtract(ev)
		if !ok {
			continue
		}
		if confidence > bestConfidence {
			best = e
			bestConfidence = confidence
		}
	}

	if best == nil {
		return otherFallback(ev)
	}
	return best.Extract(ev)
}

func otherFallback(ev *models.TextEvidence) *models.ExtractionResult {
	result := &models.ExtractionResult{
		Kind:       models.KindOther,
		Confidence: 0,
		Fields:     models.Fields{},
	}
	if len(ev.DetectedTaxIDs) > 0 {
		result.Fields[models.FieldIssuerNIP] = ev.DetectedTaxIDs[0]
	}
	if len(ev.DetectedDates) > 0 {
		result.Fields[models.FieldDocumentDate] = ev.DetectedDates[0]
	}
	return result
}
