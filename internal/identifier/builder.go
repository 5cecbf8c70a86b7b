// Package identifier assembles the kind-specific canonical string from a
// classified, normalized field set and derives the final DocumentId.
// It is the sole place that knows the per-kind segment recipes.
package identifier

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/facturaIA/docid-service/internal/models"
	"github.com/facturaIA/docid-service/internal/normalize"
)

// DefaultPrefix is the identifier prefix used when an instance does not
// override it.
const DefaultPrefix = "DOC"

type normKind int

const (
	normNIP normKind = iota
	normAmount
	normDate
	normDocNumber
	normUpperTrim // trimmed, uppercased, but not NIP-shaped
	normRaw       // already canonical (content hashes, MD5-reduced names)
)

type segmentSpec struct {
	field    string
	norm     normKind
	optional bool
}

// recipes lists, for every kind but CONTRACT and OTHER (handled specially
// below), the ordered canonical segments. Every optional segment here is
// trailing, so a missing value only ever shortens the string from the end.
var recipes = map[models.DocumentKind][]segmentSpec{
	models.KindInvoice: {
		{models.FieldIssuerNIP, normNIP, false},
		{models.FieldInvoiceNumber, normDocNumber, false},
		{models.FieldDocumentDate, normDate, false},
		{models.FieldGrossAmount, normAmount, false},
	},
	models.KindProforma: {
		{models.FieldIssuerNIP, normNIP, false},
		{models.FieldInvoiceNumber, normDocNumber, false},
		{models.FieldDocumentDate, normDate, false},
		{models.FieldGrossAmount, normAmount, false},
	},
	models.KindAdvance: {
		{models.FieldIssuerNIP, normNIP, false},
		{models.FieldInvoiceNumber, normDocNumber, false},
		{models.FieldDocumentDate, normDate, false},
		{models.FieldGrossAmount, normAmount, false},
	},
	models.KindReceipt: {
		{models.FieldIssuerNIP, normNIP, false},
		{models.FieldDocumentDate, normDate, false},
		{models.FieldGrossAmount, normAmount, false},
		{models.FieldReceiptNumber, normDocNumber, true},
		{models.FieldCashRegisterNumber, normRaw, true},
	},
	models.KindCorrection: {
		{models.FieldSellerNIP, normNIP, false},
		{models.FieldCorrectionNumber, normDocNumber, false},
		{models.FieldDocumentDate, normDate, false},
		{models.FieldOriginalInvoiceNumber, normDocNumber, false},
		{models.FieldGrossAmount, normAmount, false},
	},
	models.KindBankStatement: {
		{models.FieldAccountDigits, normRaw, false},
		{models.FieldDocumentDate, normDate, false},
		{models.FieldStatementNumber, normDocNumber, true},
	},
	models.KindBill: {
		{models.FieldIssuerNIP, normNIP, false},
		{models.FieldBillNumber, normDocNumber, false},
		{models.FieldDocumentDate, normDate, false},
		{models.FieldGrossAmount, normAmount, false},
	},
	models.KindCashIn: {
		{models.FieldDocumentNumber, normDocNumber, false},
		{models.FieldDocumentDate, normDate, false},
		{models.FieldAmount, normAmount, false},
		{models.FieldPartyNIP, normNIP, true},
		{models.FieldPartyName, normRaw, true},
	},
	models.KindCashOut: {
		{models.FieldDocumentNumber, normDocNumber, false},
		{models.FieldDocumentDate, normDate, false},
		{models.FieldAmount, normAmount, false},
		{models.FieldPartyNIP, normNIP, true},
		{models.FieldPartyName, normRaw, true},
	},
	models.KindDebitNote: {
		{models.FieldIssuerNIP, normNIP, false},
		{models.FieldNoteNumber, normDocNumber, false},
		{models.FieldDocumentDate, normDate, false},
		{models.FieldAmount, normAmount, false},
		{models.FieldRecipientNIP, normNIP, true},
	},
	models.KindDeliveryNote: {
		{models.FieldIssuerNIP, normNIP, false},
		{models.FieldDocumentNumber, normDocNumber, false},
		{models.FieldDocumentDate, normDate, false},
		{models.FieldRecipientNIP, normNIP, true},
	},
	models.KindReceiptNote: {
		{models.FieldIssuerNIP, normNIP, false},
		{models.FieldDocumentNumber, normDocNumber, false},
		{models.FieldDocumentDate, normDate, false},
		{models.FieldRecipientNIP, normNIP, true},
	},
	models.KindExpenseReport: {
		{models.FieldEmployeeID, normUpperTrim, false},
		{models.FieldReportDate, normDate, false},
		{models.FieldTotalAmount, normAmount, false},
		{models.FieldReportNumber, normDocNumber, true},
		{models.FieldCompanyNIP, normNIP, true},
	},
}

// Builder constructs canonical strings and DocumentIds for a single
// pipeline instance's configured prefix.
type Builder struct {
	Prefix string
}

// NewBuilder returns a Builder using the default "DOC" prefix.
func NewBuilder() *Builder { return &Builder{Prefix: DefaultPrefix} }

// NewBuilderWithPrefix returns a Builder using a custom prefix.
func NewBuilderWithPrefix(prefix string) *Builder { return &Builder{Prefix: prefix} }

// CanonicalString builds the kind-specific canonical string from an
// extraction result. rawText is only consulted for KindOther, whose
// canonical string is seeded from a hash of the full OCR text.
func (b *Builder) CanonicalString(result *models.ExtractionResult, rawText string) (string, error) {
	switch result.Kind {
	case models.KindContract:
		return contractCanonicalString(result.Fields), nil
	case models.KindOther:
		return otherCanonicalString(result.Fields, rawText), nil
	}

	recipe, ok := recipes[result.Kind]
	if !ok {
		return "", fmt.Errorf("identifier: no canonical recipe for kind %q", result.Kind)
	}
	return buildFromRecipe(recipe, result.Fields), nil
}

func buildFromRecipe(recipe []segmentSpec, fields models.Fields) string {
	segments := make([]string, len(recipe))
	for i, spec := range recipe {
		segments[i] = normalizeSegment(spec, fields.Get(spec.field))
	}

	// Trailing optional segments are omitted entirely when empty; leading
	// and middle ones keep their positional empty placeholder.
	last := len(segments)
	for last > 0 && recipe[last-1].optional && segments[last-1] == "" {
		last--
	}
	return strings.Join(segments[:last], "|")
}

func normalizeSegment(spec segmentSpec, raw string) string {
	switch spec.norm {
	case normNIP:
		if raw == "" {
			return ""
		}
		return normalize.NIP(raw)
	case normAmount:
		if raw == "" {
			return "0.00"
		}
		return normalize.Amount(raw)
	case normDate:
		if raw == "" {
			return ""
		}
		return normalize.Date(raw)
	case normDocNumber:
		if raw == "" {
			return ""
		}
		return normalize.DocNumber(raw)
	case normUpperTrim:
		return strings.ToUpper(strings.TrimSpace(raw))
	default: // normRaw
		return raw
	}
}

// contractCanonicalString sorts the two party NIPs lexicographically
// before joining so that party order never affects the identifier.
func contractCanonicalString(fields models.Fields) string {
	nip1 := normalize.NIP(fields.Get(models.FieldNIP1))
	nip2 := normalize.NIP(fields.Get(models.FieldNIP2))
	pair := []string{nip1, nip2}
	sort.Strings(pair)

	date := ""
	if raw := fields.Get(models.FieldDocumentDate); raw != "" {
		date = normalize.Date(raw)
	}

	segments := []string{pair[0], pair[1], date}

	number := ""
	if raw := fields.Get(models.FieldContractNumber); raw != "" {
		number = normalize.DocNumber(raw)
	}
	segments = append(segments, number)
	segments = append(segments, fields.Get(models.FieldContractType))

	last := len(segments)
	for last > 2 && segments[last-1] == "" {
		last--
	}
	return strings.Join(segments[:last], "|")
}

// otherCanonicalString seeds the canonical string with the SHA-256 hex
// digest of the full document text, intentionally less stable than
// typed kinds (OCR noise leaks straight in): a best-effort last resort
// for documents no extractor recognized.
func otherCanonicalString(fields models.Fields, rawText string) string {
	sum := sha256.Sum256([]byte(rawText))
	contentHash := hex.EncodeToString(sum[:])

	segments := []string{contentHash}

	date := ""
	if raw := fields.Get(models.FieldDocumentDate); raw != "" {
		date = normalize.Date(raw)
	}
	segments = append(segments, date)

	nip := ""
	if raw := fields.Get(models.FieldIssuerNIP); raw != "" {
		nip = normalize.NIP(raw)
	}
	segments = append(segments, nip)

	last := len(segments)
	for last > 1 && segments[last-1] == "" {
		last--
	}
	return strings.Join(segments[:last], "|")
}

// Build derives the final DocumentId from a kind and its canonical
// string: prefix-kindcode-HASH16, hash16 being the first 16 uppercase
// hex characters of SHA-256(canonical).
func (b *Builder) Build(kind models.DocumentKind, canonical string) string {
	sum := sha256.Sum256([]byte(canonical))
	hash16 := strings.ToUpper(hex.EncodeToString(sum[:])[:16])
	return fmt.Sprintf("%s-%s-%s", b.Prefix, kind.Code(), hash16)
}

// Verify recomputes the hash from a candidate canonical string and
// compares it against an existing identifier's hash segment in constant
// time. Identifier verification is sometimes exposed over untrusted
// interfaces, so a plain string comparison would leak timing.
func Verify(documentID, canonical string) bool {
	_, _, hash16, err := Parse(documentID)
	if err != nil {
		return false
	}
	sum := sha256.Sum256([]byte(canonical))
	computed := strings.ToUpper(hex.EncodeToString(sum[:])[:16])
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash16)) == 1
}

// Parse splits a DocumentId into its prefix, kind code, and hash16.
func Parse(documentID string) (prefix, kindCode, hash16 string, err error) {
	parts := strings.Split(documentID, "-")
	if len(parts) != 3 {
		return "", "", "", errors.New("identifier: invalid document id format")
	}
	return parts[0], parts[1], parts[2], nil
}
