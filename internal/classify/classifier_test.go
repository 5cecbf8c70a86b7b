package classify

import (
	"testing"

	"github.com/facturaIA/docid-service/internal/models"
)

func TestClassifyPicksInvoice(t *testing.T) {
	ev := &models.TextEvidence{
		FullText:           "Faktura VAT FV/2025/00142\nSprzedawca NIP: 5213017228\nData wystawienia: 2025-01-15\nBrutto: 1230.50",
		DetectedTaxIDs:     []string{"5213017228"},
		DetectedAmounts:    []string{"1230.50"},
		DetectedDates:      []string{"2025-01-15"},
		DetectedDocNumbers: []string{"FV/2025/00142"},
	}

	c := NewDefault()
	result := c.Classify(ev)
	if result.Kind != models.KindInvoice {
		t.Fatalf("expected INVOICE, got %v", result.Kind)
	}
}

func TestClassifyFallsBackToOther(t *testing.T) {
	ev := &models.TextEvidence{FullText: "illegible smudge of text with no keywords"}
	c := NewDefault()
	result := c.Classify(ev)
	if result.Kind != models.KindOther {
		t.Fatalf("expected OTHER, got %v", result.Kind)
	}
}
