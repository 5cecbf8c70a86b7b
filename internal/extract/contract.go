package extract

import (
	"regexp"
	"strings"

	"github.com/facturaIA/docid-service/internal/models"
)

var contractKeywords = []string{
	"umowa", "kontrakt", "porozumienie", "zlecenie", "strona", "wykonawca",
	"zamawiający", "zleceniodawca", "przedmiot", "wynagrodzenie", "termin",
}

var (
	contractDatePattern   = regexp.MustCompile(`(?i)(?:zawarta w dniu|dnia|data)\D{0,5}(\d{1,4}[./\- ]\d{1,2}[./\- ]\d{1,4})`)
	contractNumberPattern = regexp.MustCompile(`(?i)(?:umowa nr|nr umowy)\D{0,5}([A-Za-z0-9][A-Za-z0-9/\-]*)`)
)

var contractTypeKeywords = []struct {
	keyword string
	code    string
}{
	{"zlecenie", "ZLECENIE"},
	{"o dzieło", "DZIELO"},
	{"najmu", "NAJEM"},
	{"sprzedaży", "SPRZEDAZ"},
	{"współpracy", "WSPOLPRACA"},
	{"o pracę", "PRACA"},
}

type contractExtractor struct{}

// NewContractExtractor builds the contract extractor.
func NewContractExtractor() Extractor { return &contractExtractor{} }

func (e *contractExtractor) Kind() models.DocumentKind { return models.KindContract }

func (e *contractExtractor) CanExtract(ev *models.TextEvidence) (bool, float64) {
	kwCount := keywordScore(ev.FullText, contractKeywords)
	confidence := 0.1 * float64(kwCount)
	if containsAny(ev.FullText, []string{"umowa", "kontrakt"}) {
		confidence += 0.3
	}
	if containsAny(ev.FullText, []string{"strona", "wykonawca", "zamawiający", "zleceniodawca"}) {
		confidence += 0.2
	}
	confidence = clamp01(confidence)
	return confidence > Threshold, confidence
}

func (e *contractExtractor) Extract(ev *models.TextEvidence) *models.ExtractionResult {
	_, confidence := e.CanExtract(ev)
	result := baseResult(models.KindContract, confidence)

	result.Fields[models.FieldNIP1] = first(ev.DetectedTaxIDs)
	result.Fields[models.FieldNIP2] = second(ev.DetectedTaxIDs)

	date := firstMatchGroup(contractDatePattern, ev.FullText)
	if date == "" {
		date = first(ev.DetectedDates)
	}
	result.Fields[models.FieldDocumentDate] = date
	result.Fields[models.FieldContractNumber] = firstMatchGroup(contractNumberPattern, ev.FullText)
	result.Fields[models.FieldContractType] = contractType(ev.FullText)

	return result
}

func contractType(text string) string {
	t := strings.ToLower(text)
	for _, kw := range contractTypeKeywords {
		if strings.Contains(t, kw.keyword) {
			return kw.code
		}
	}
	return ""
}
