package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

const sampleInvoiceText = `FAKTURA VAT
Sprzedawca NIP: 526-000-02-78
Numer faktury: FV/2024/001
Data wystawienia: 2024-01-15
Kwota brutto: 1230,00 PLN
Netto: 1000,00 zł
VAT: 230,00 zł
`

func TestProcessTextInvoice(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "invoice.txt", sampleInvoiceText)

	p := New("DOC", nil)
	doc, err := p.Process(context.Background(), path)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if doc.Kind != "INVOICE" {
		t.Fatalf("expected INVOICE kind, got %q", doc.Kind)
	}
	if doc.DocumentID == "" {
		t.Fatalf("expected a non-empty document id")
	}
	if doc.Duplicate {
		t.Fatalf("first processing should not be a duplicate")
	}
}

func TestProcessIsDeterministicAndDeduplicates(t *testing.T) {
	dir := t.TempDir()
	pathA := writeTemp(t, dir, "a.txt", sampleInvoiceText)
	pathB := writeTemp(t, dir, "b.txt", sampleInvoiceText)

	p := New("DOC", nil)
	docA, err := p.Process(context.Background(), pathA)
	if err != nil {
		t.Fatalf("process a: %v", err)
	}
	docB, err := p.Process(context.Background(), pathB)
	if err != nil {
		t.Fatalf("process b: %v", err)
	}
	if docA.DocumentID != docB.DocumentID {
		t.Fatalf("expected identical ids for identical content, got %q vs %q", docA.DocumentID, docB.DocumentID)
	}
	if !docB.Duplicate {
		t.Fatalf("expected second processing of identical content to be marked duplicate")
	}
}

func TestVerifyAcceptsAndRejects(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "invoice.txt", sampleInvoiceText)

	p := New("DOC", nil)
	doc, err := p.Process(context.Background(), path)
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	ok, err := p.Verify(context.Background(), path, doc.DocumentID)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatalf("expected verification to succeed against the id just produced")
	}

	ok, err = p.Verify(context.Background(), path, "DOC-FV-0000000000000000")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatalf("expected verification to fail against a tampered id")
	}
}

func TestUnsupportedFormatRejected(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "invoice.weird", sampleInvoiceText)

	p := New("DOC", nil)
	if _, err := p.Process(context.Background(), path); err == nil {
		t.Fatalf("expected an error for an unsupported file extension")
	}
}

func TestBatchContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "good.txt", sampleInvoiceText)
	writeTemp(t, dir, "bad.weird", "not a real document")

	p := New("DOC", nil)
	results, err := p.Batch(context.Background(), dir)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 batch results, got %d", len(results))
	}

	var sawSuccess, sawFailure bool
	for _, r := range results {
		if r.Err != nil {
			sawFailure = true
		} else if r.Document != nil {
			sawSuccess = true
		}
	}
	if !sawSuccess || !sawFailure {
		t.Fatalf("expected one success and one failure, got success=%v failure=%v", sawSuccess, sawFailure)
	}
}
