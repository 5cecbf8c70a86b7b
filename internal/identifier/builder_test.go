package identifier

import (
	"testing"

	"github.com/facturaIA/docid-service/internal/models"
)

func TestInvoiceCanonicalString(t *testing.T) {
	result := &models.ExtractionResult{
		Kind: models.KindInvoice,
		Fields: models.Fields{
			models.FieldIssuerNIP:     "5213017228",
			models.FieldInvoiceNumber: "FV/2025/00142",
			models.FieldDocumentDate:  "2025-01-15",
			models.FieldGrossAmount:   "1230.50",
		},
	}
	b := NewBuilder()
	canonical, err := b.CanonicalString(result, "")
	if err != nil {
		t.Fatal(err)
	}
	want := "5213017228|FV/2025/00142|2025-01-15|1230.50"
	if canonical != want {
		t.Fatalf("canonical = %q, want %q", canonical, want)
	}
}

func TestCrossFormatDeterminism(t *testing.T) {
	variant1 := &models.ExtractionResult{
		Kind: models.KindInvoice,
		Fields: models.Fields{
			models.FieldIssuerNIP:     "5213017228",
			models.FieldInvoiceNumber: "FV/2025/00142",
			models.FieldDocumentDate:  "2025-01-15",
			models.FieldGrossAmount:   "1230.50",
		},
	}
	variant2 := &models.ExtractionResult{
		Kind: models.KindInvoice,
		Fields: models.Fields{
			models.FieldIssuerNIP:     "521-301-72-28",
			models.FieldInvoiceNumber: "fv/2025/00142",
			models.FieldDocumentDate:  "15.01.2025",
			models.FieldGrossAmount:   "1 230,50 zł",
		},
	}

	b := NewBuilder()
	c1, _ := b.CanonicalString(variant1, "")
	c2, _ := b.CanonicalString(variant2, "")
	if c1 != c2 {
		t.Fatalf("canonical strings differ: %q vs %q", c1, c2)
	}
	if b.Build(models.KindInvoice, c1) != b.Build(models.KindInvoice, c2) {
		t.Fatal("identifiers differ despite identical canonical strings")
	}
}

func TestReceiptCanonicalStringOmitsTrailingEmpty(t *testing.T) {
	result := &models.ExtractionResult{
		Kind: models.KindReceipt,
		Fields: models.Fields{
			models.FieldIssuerNIP:    "5213017228",
			models.FieldDocumentDate: "2025-01-15",
			models.FieldGrossAmount:  "45.99",
		},
	}
	b := NewBuilder()
	canonical, err := b.CanonicalString(result, "")
	if err != nil {
		t.Fatal(err)
	}
	want := "5213017228|2025-01-15|45.99"
	if canonical != want {
		t.Fatalf("canonical = %q, want %q", canonical, want)
	}
}

func TestContractPartyOrderInvariance(t *testing.T) {
	a := &models.ExtractionResult{
		Kind: models.KindContract,
		Fields: models.Fields{
			models.FieldNIP1:         "5213017228",
			models.FieldNIP2:         "9876543210",
			models.FieldDocumentDate: "2025-01-15",
		},
	}
	bRes := &models.ExtractionResult{
		Kind: models.KindContract,
		Fields: models.Fields{
			models.FieldNIP1:         "9876543210",
			models.FieldNIP2:         "5213017228",
			models.FieldDocumentDate: "2025-01-15",
		},
	}

	builder := NewBuilder()
	ca, _ := builder.CanonicalString(a, "")
	cb, _ := builder.CanonicalString(bRes, "")
	if ca != cb {
		t.Fatalf("expected party-order invariance, got %q vs %q", ca, cb)
	}
}

func TestBuildAndVerify(t *testing.T) {
	b := NewBuilder()
	id := b.Build(models.KindInvoice, "5213017228|FV/2025/00142|2025-01-15|1230.50")

	if !Verify(id, "5213017228|FV/2025/00142|2025-01-15|1230.50") {
		t.Fatal("expected verification to succeed for matching canonical string")
	}
	if Verify(id, "tampered") {
		t.Fatal("expected verification to fail for mismatched canonical string")
	}
}

func TestParseRejectsMalformedID(t *testing.T) {
	if _, _, _, err := Parse("not-a-valid-id-with-too-many-dashes-here"); err == nil {
		t.Fatal("expected error for malformed id")
	}
}

func TestOtherCanonicalStringDependsOnFullText(t *testing.T) {
	result := &models.ExtractionResult{Kind: models.KindOther, Fields: models.Fields{}}
	b := NewBuilder()
	c1, _ := b.CanonicalString(result, "some ocr text")
	c2, _ := b.CanonicalString(result, "some ocr text with different whitespace")
	if c1 == c2 {
		t.Fatal("expected OTHER canonical string to be format-sensitive, per spec")
	}
}
