// Package models holds the shared data types that flow through the
// canonicalization pipeline: document kinds, OCR/text evidence, and the
// raw and canonical field sets extractors and normalizers operate on.
package models

// DocumentKind is a closed tagged enumeration of supported business
// document classes. Each variant carries a fixed short code that is part
// of the public identifier format; renaming a code is a breaking change.
type DocumentKind string

const (
	KindInvoice       DocumentKind = "INVOICE"
	KindReceipt       DocumentKind = "RECEIPT"
	KindContract      DocumentKind = "CONTRACT"
	KindBankStatement DocumentKind = "BANK_STATEMENT"
	KindCorrection    DocumentKind = "CORRECTION"
	KindProforma      DocumentKind = "PROFORMA"
	KindAdvance       DocumentKind = "ADVANCE"
	KindBill          DocumentKind = "BILL"
	KindCashIn        DocumentKind = "CASH_IN"
	KindCashOut       DocumentKind = "CASH_OUT"
	KindDebitNote     DocumentKind = "DEBIT_NOTE"
	KindDeliveryNote  DocumentKind = "DELIVERY_NOTE"
	KindReceiptNote   DocumentKind = "RECEIPT_NOTE"
	KindExpenseReport DocumentKind = "EXPENSE_REPORT"
	KindOther         DocumentKind = "OTHER"
)

var kindCodes = map[DocumentKind]string{
	KindInvoice:       "FV",
	KindReceipt:       "PAR",
	KindContract:      "UMO",
	KindBankStatement: "WB",
	KindCorrection:    "KOR",
	KindProforma:      "PRO",
	KindAdvance:       "ZAL",
	KindBill:          "RAC",
	KindCashIn:        "KP",
	KindCashOut:       "KW",
	KindDebitNote:     "NK",
	KindDeliveryNote:  "WZ",
	KindReceiptNote:   "PZ",
	KindExpenseReport: "DEL",
	KindOther:         "DOC",
}

// KindOrder is the fixed classifier tie-break ordering: enum declaration
// order, with Invoice/Receipt/Contract first.
var KindOrder = []DocumentKind{
	KindInvoice,
	KindReceipt,
	KindContract,
	KindBankStatement,
	KindCorrection,
	KindProforma,
	KindAdvance,
	KindBill,
	KindCashIn,
	KindCashOut,
	KindDebitNote,
	KindDeliveryNote,
	KindReceiptNote,
	KindExpenseReport,
}

// Code returns the short code used in the public DocumentId grammar.
func (k DocumentKind) Code() string {
	if c, ok := kindCodes[k]; ok {
		return c
	}
	return "DOC"
}

// TextEvidence is produced by the text-acquisition layer (OCR collaborator
// plus the evidence scanner): full text and ordered lists of pre-scanned
// structured token candidates. The detected lists preserve first-occurrence
// document order; extractors may accept, reject, or reorder them.
type TextEvidence struct {
	FullText           string
	AverageConfidence  float64
	DetectedTaxIDs     []string
	DetectedAmounts    []string
	DetectedDates      []string
	DetectedDocNumbers []string
}

// Line is a single OCR text line with its confidence and bounding box,
// matching the text-evidence wire contract in the external interfaces.
type Line struct {
	Text       string
	Confidence float64
	Box        BoundingBox
}

// BoundingBox is the pixel-space bounding rectangle of a recognized line.
type BoundingBox struct {
	X, Y, Width, Height int
}

// Field name constants. RawFields/CanonicalFields are both represented as
// Fields (a string-keyed map) since each DocumentKind projects a different
// subset of this universal field set; the identifier builder's recipe
// table (see internal/identifier) selects and orders the relevant subset
// per kind.
const (
	FieldIssuerNIP             = "issuer_nip"
	FieldBuyerNIP              = "buyer_nip"
	FieldInvoiceNumber         = "invoice_number"
	FieldDocumentDate          = "document_date"
	FieldGrossAmount           = "gross_amount"
	FieldNetAmount             = "net_amount"
	FieldVATAmount             = "vat_amount"
	FieldReceiptNumber         = "receipt_number"
	FieldCashRegisterNumber    = "cash_register_number"
	FieldNIP1                  = "nip1"
	FieldNIP2                  = "nip2"
	FieldContractNumber        = "contract_number"
	FieldContractType          = "contract_type"
	FieldSellerNIP             = "seller_nip"
	FieldCorrectionNumber      = "correction_number"
	FieldOriginalInvoiceNumber = "original_invoice_number"
	FieldAccountDigits         = "account_digits"
	FieldStatementNumber       = "statement_number"
	FieldBillNumber            = "bill_number"
	FieldDocumentNumber        = "document_number"
	FieldAmount                = "amount"
	FieldPartyNIP              = "party_nip"
	FieldPartyName             = "party_name"
	FieldNoteNumber            = "note_number"
	FieldRecipientNIP          = "recipient_nip"
	FieldEmployeeID            = "employee_id"
	FieldReportDate            = "report_date"
	FieldTotalAmount           = "total_amount"
	FieldReportNumber          = "report_number"
	FieldCompanyNIP            = "company_nip"
	FieldContentHash           = "content_hash"
)

// Fields is a field-name-keyed projection of a document's identifying
// data. Every field is optional; missing fields are simply absent from
// the map and reduce to "" through Get.
type Fields map[string]string

// Get returns the field value, or "" if it is absent.
func (f Fields) Get(key string) string {
	if f == nil {
		return ""
	}
	return f[key]
}

// ExtractionResult is what an Extractor.Extract call produces: the
// classified kind, the extractor's confidence, the raw (pre-normalization)
// field projection, and any coherence warnings surfaced along the way.
type ExtractionResult struct {
	Kind       DocumentKind
	Confidence float64
	Fields     Fields
	Warnings   []string
}
