package extract

import (
	"regexp"

	"github.com/facturaIA/docid-service/internal/models"
)

var invoiceKeywords = []string{
	"faktura", "fv", "rachunek", "invoice", "sprzedawca", "nabywca",
	"nip", "vat", "brutto", "netto", "podatek",
}

var (
	invoiceNumberPattern = regexp.MustCompile(`(?i)(?:faktura|fv|rachunek|nr|numer)\D{0,10}([A-Za-z0-9][A-Za-z0-9/\-]*\d[A-Za-z0-9/\-]*)`)
	invoiceDatePattern   = regexp.MustCompile(`(?i)(?:data wystawienia|wystawiono|data)\D{0,5}(\d{1,4}[./\- ]\d{1,2}[./\- ]\d{1,4})`)
	grossAmountPattern   = regexp.MustCompile(`(?i)brutto\D{0,5}([0-9][0-9 \x{00A0}.,]*[0-9])`)
	netAmountPattern     = regexp.MustCompile(`(?i)netto\D{0,5}([0-9][0-9 \x{00A0}.,]*[0-9])`)
	vatAmountPattern     = regexp.MustCompile(`(?i)(?:vat|podatek)\D{0,5}([0-9][0-9 \x{00A0}.,]*[0-9])`)
)

// invoiceLikeExtractor implements the Invoice/Proforma/Advance field
// shape: issuer NIP, buyer NIP, invoice number, issue date, gross/net/
// vat amounts. Proforma and Advance reuse this shape wholesale but score
// on a different keyword set.
type invoiceLikeExtractor struct {
	kind       models.DocumentKind
	keywords   []string
	headerBump []string // not set by any constructor and not read by CanExtract
}

// NewInvoiceExtractor builds the canonical Invoice extractor.
func NewInvoiceExtractor() Extractor {
	return &invoiceLikeExtractor{kind: models.KindInvoice, keywords: invoiceKeywords}
}

// NewProformaExtractor builds the Proforma extractor: same field shape
// as Invoice, different header keywords.
func NewProformaExtractor() Extractor {
	return &invoiceLikeExtractor{
		kind:     models.KindProforma,
		keywords: []string{"proforma", "faktura pro forma"},
	}
}

// NewAdvanceExtractor builds the Advance (zaliczka) extractor: same
// field shape as Invoice, different header keywords.
func NewAdvanceExtractor() Extractor {
	return &invoiceLikeExtractor{
		kind:     models.KindAdvance,
		keywords: []string{"zaliczka", "przedpłata", "zadatek"},
	}
}

func (e *invoiceLikeExtractor) Kind() models.DocumentKind { return e.kind }

func (e *invoiceLikeExtractor) CanExtract(ev *models.TextEvidence) (bool, float64) {
	kwCount := keywordScore(ev.FullText, e.keywords)
	hasNIP := len(ev.DetectedTaxIDs) > 0
	hasAmount := len(ev.DetectedAmounts) > 0
	hasDocNumber := len(ev.DetectedDocNumbers) > 0

	confidence := 0.15*float64(kwCount) + bonus(hasNIP, 0.2) + bonus(hasAmount, 0.2) + bonus(hasDocNumber, 0.2)
	confidence = clamp01(confidence)
	return confidence > Threshold, confidence
}

func bonus(cond bool, amount float64) float64 {
	if cond {
		return amount
	}
	return 0
}

func (e *invoiceLikeExtractor) Extract(ev *models.TextEvidence) *models.ExtractionResult {
	_, confidence := e.CanExtract(ev)
	result := baseResult(e.kind, confidence)

	result.Fields[models.FieldIssuerNIP] = first(ev.DetectedTaxIDs)
	result.Fields[models.FieldBuyerNIP] = second(ev.DetectedTaxIDs)

	invoiceNumber := firstMatchGroup(invoiceNumberPattern, ev.FullText)
	if invoiceNumber == "" {
		invoiceNumber = first(ev.DetectedDocNumbers)
	}
	result.Fields[models.FieldInvoiceNumber] = invoiceNumber

	date := firstMatchGroup(invoiceDatePattern, ev.FullText)
	if date == "" {
		date = first(ev.DetectedDates)
	}
	result.Fields[models.FieldDocumentDate] = date

	gross := firstMatchGroup(grossAmountPattern, ev.FullText)
	if gross == "" {
		// Falls back to the largest detected amount when no explicit
		// "brutto" marker is present. Can conflate net and gross on
		// documents that list netto last.
		gross = maxAmount(ev.DetectedAmounts)
	}
	result.Fields[models.FieldGrossAmount] = gross
	result.Fields[models.FieldNetAmount] = firstMatchGroup(netAmountPattern, ev.FullText)
	result.Fields[models.FieldVATAmount] = firstMatchGroup(vatAmountPattern, ev.FullText)

	return result
}
