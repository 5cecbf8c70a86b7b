package normalize

import (
	"regexp"
	"strings"
)

var (
	docNumberSeparatorRuns = regexp.MustCompile(`[ _\-]+`)
	docNumberSlashRuns     = regexp.MustCompile(`/+`)
)

// DocNumber normalizes an invoice/receipt/document number: uppercase,
// collapse runs of space/underscore/hyphen into a single "/", collapse
// repeated slashes, and trim leading/trailing slashes.
func DocNumber(input string) string {
	s := strings.ToUpper(strings.TrimSpace(input))
	s = docNumberSeparatorRuns.ReplaceAllString(s, "/")
	s = docNumberSlashRuns.ReplaceAllString(s, "/")
	return strings.Trim(s, "/")
}
