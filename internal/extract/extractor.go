package extract

import "github.com/facturaIA/docid-service/internal/models"

// Extractor is the uniform per-kind extraction unit: score the evidence,
// then (if selected) pull the kind's fields out of it. Implementations
// are stateless and safe for concurrent use.
type Extractor interface {
	Kind() models.DocumentKind
	CanExtract(ev *models.TextEvidence) (bool, float64)
	Extract(ev *models.TextEvidence) *models.ExtractionResult
}

// Default returns every extractor in the fixed classifier tie-break
// order (models.KindOrder): Invoice, Receipt, Contract, then the
// remaining kinds in enum declaration order.
func Default() []Extractor {
	return []Extractor{
		NewInvoiceExtractor(),
		NewReceiptExtractor(),
		NewContractExtractor(),
		NewBankStatementExtractor(),
		NewCorrectionExtractor(),
		NewProformaExtractor(),
		NewAdvanceExtractor(),
		NewBillExtractor(),
		NewCashVoucherExtractor(models.KindCashIn),
		NewCashVoucherExtractor(models.KindCashOut),
		NewDebitNoteExtractor(),
		NewDeliveryNoteExtractor(models.KindDeliveryNote),
		NewDeliveryNoteExtractor(models.KindReceiptNote),
		NewExpenseReportExtractor(),
	}
}
