// Package normalize implements the pure, total, idempotent field
// normalizers described in the canonicalization pipeline: tax ID,
// amount, date, and document-number. None of them fail loudly; a
// malformed input always reduces to a canonical empty/zero form.
package normalize

import (
	"regexp"
	"strings"
)

var (
	nipCountryPrefix = regexp.MustCompile(`^[A-Z]{2}`)
	nipSeparators    = regexp.MustCompile(`[\s\-.]`)
	nipWeights       = [9]int{6, 5, 7, 2, 3, 4, 5, 6, 7}
)

// NIP normalizes a Polish tax identification number: uppercase, strip a
// leading two-letter country code, delete whitespace/hyphens/dots. The
// result is returned whether or not it ends up being exactly 10 digits.
// Normalizers never fabricate digits and never reject input.
func NIP(input string) string {
	s := strings.ToUpper(strings.TrimSpace(input))
	s = nipCountryPrefix.ReplaceAllString(s, "")
	s = nipSeparators.ReplaceAllString(s, "")
	return s
}

// ValidateNIP applies the modulo-11 weighted checksum over the first nine
// digits and requires the result to equal the tenth. Used only by the
// evidence scanner to gate candidates before they ever reach an
// extractor; the normalizer itself never rejects.
func ValidateNIP(nip string) bool {
	if len(nip) != 10 {
		return false
	}
	sum := 0
	for i, w := range nipWeights {
		d := nip[i]
		if d < '0' || d > '9' {
			return false
		}
		sum += w * int(d-'0')
	}
	last := nip[9]
	if last < '0' || last > '9' {
		return false
	}
	check := sum % 11
	if check == 10 {
		return false
	}
	return check == int(last-'0')
}
