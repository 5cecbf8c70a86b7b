package extract

import (
	"testing"

	"github.com/facturaIA/docid-service/internal/models"
)

func TestInvoiceExtractor(t *testing.T) {
	ev := &models.TextEvidence{
		FullText:           "Faktura VAT FV/2025/00142\nSprzedawca NIP: 5213017228\nNabywca NIP: 9876543210\nData wystawienia: 2025-01-15\nNetto: 1000.00\nVAT: 230.50\nBrutto: 1230.50",
		DetectedTaxIDs:     []string{"5213017228", "9876543210"},
		DetectedAmounts:    []string{"1000.00", "230.50", "1230.50"},
		DetectedDates:      []string{"2025-01-15"},
		DetectedDocNumbers: []string{"FV/2025/00142"},
	}

	ext := NewInvoiceExtractor()
	ok, confidence := ext.CanExtract(ev)
	if !ok {
		t.Fatalf("expected invoice extractor to accept, confidence=%v", confidence)
	}

	result := ext.Extract(ev)
	if result.Fields[models.FieldIssuerNIP] != "5213017228" {
		t.Errorf("unexpected issuer nip: %v", result.Fields[models.FieldIssuerNIP])
	}
	if result.Fields[models.FieldGrossAmount] != "1230.50" {
		t.Errorf("unexpected gross amount: %v", result.Fields[models.FieldGrossAmount])
	}
}

func TestReceiptExtractorFallsBackToMaxAmount(t *testing.T) {
	ev := &models.TextEvidence{
		FullText:           "PARAGON FISKALNY\nSuma PTU A 23%\nNIP: 5213017228",
		DetectedTaxIDs:     []string{"5213017228"},
		DetectedAmounts:    []string{"10.00", "45.99"},
		DetectedDates:      []string{"2025-01-15"},
		DetectedDocNumbers: nil,
	}

	ext := NewReceiptExtractor()
	ok, _ := ext.CanExtract(ev)
	if !ok {
		t.Fatal("expected receipt extractor to accept")
	}

	result := ext.Extract(ev)
	if result.Fields[models.FieldGrossAmount] != "45.99" {
		t.Errorf("expected max amount fallback, got %v", result.Fields[models.FieldGrossAmount])
	}
}

func TestContractExtractionKeepsPartyDetectionOrder(t *testing.T) {
	evA := &models.TextEvidence{
		FullText:       "UMOWA ZLECENIE\nWykonawca, Zamawiający\nDnia 2025-01-15",
		DetectedTaxIDs: []string{"5213017228", "9876543210"},
		DetectedDates:  []string{"2025-01-15"},
	}
	evB := &models.TextEvidence{
		FullText:       "UMOWA ZLECENIE\nWykonawca, Zamawiający\nDnia 2025-01-15",
		DetectedTaxIDs: []string{"9876543210", "5213017228"},
		DetectedDates:  []string{"2025-01-15"},
	}

	ext := NewContractExtractor()
	rA := ext.Extract(evA)
	rB := ext.Extract(evB)

	if rA.Fields[models.FieldContractType] != "ZLECENIE" {
		t.Errorf("unexpected contract type: %v", rA.Fields[models.FieldContractType])
	}
	// raw extraction keeps detection order; sorting for party-order
	// invariance happens in the identifier builder.
	if rA.Fields[models.FieldNIP1] != "5213017228" || rB.Fields[models.FieldNIP1] != "9876543210" {
		t.Errorf("expected nip1 to follow detection order, got %v and %v", rA.Fields[models.FieldNIP1], rB.Fields[models.FieldNIP1])
	}
}
