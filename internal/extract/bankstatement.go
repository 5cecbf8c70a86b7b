package extract

import (
	"regexp"

	"github.com/facturaIA/docid-service/internal/models"
)

var bankStatementKeywords = []string{"wyciąg", "rachunek bankowy", "saldo", "operacja", "konto"}

var (
	accountNumberPattern   = regexp.MustCompile(`\b(?:PL)?\d{2}[\s]?(?:\d{4}[\s]?){6}\b`)
	statementNumberPattern = regexp.MustCompile(`(?i)wyciąg nr\D{0,5}([A-Za-z0-9][A-Za-z0-9/\-]*)`)
	digitsOnly             = regexp.MustCompile(`\d`)
)

type bankStatementExtractor struct{}

// NewBankStatementExtractor builds the bank-statement extractor.
func NewBankStatementExtractor() Extractor { return &bankStatementExtractor{} }

func (e *bankStatementExtractor) Kind() models.DocumentKind { return models.KindBankStatement }

func (e *bankStatementExtractor) CanExtract(ev *models.TextEvidence) (bool, float64) {
	kwCount := keywordScore(ev.FullText, bankStatementKeywords)
	confidence := 0.15 * float64(kwCount)
	if containsAny(ev.FullText, []string{"wyciąg", "saldo"}) {
		confidence += 0.3
	}
	if accountNumberPattern.MatchString(ev.FullText) {
		confidence += 0.2
	}
	confidence = clamp01(confidence)
	return confidence > Threshold, confidence
}

func (e *bankStatementExtractor) Extract(ev *models.TextEvidence) *models.ExtractionResult {
	_, confidence := e.CanExtract(ev)
	result := baseResult(models.KindBankStatement, confidence)

	account := accountNumberPattern.FindString(ev.FullText)
	result.Fields[models.FieldAccountDigits] = digitsOnlyString(account)
	result.Fields[models.FieldDocumentDate] = first(ev.DetectedDates)
	result.Fields[models.FieldStatementNumber] = firstMatchGroup(statementNumberPattern, ev.FullText)

	return result
}

func digitsOnlyString(s string) string {
	matches := digitsOnly.FindAllString(s, -1)
	out := ""
	for _, m := range matches {
		out += m
	}
	return out
}
