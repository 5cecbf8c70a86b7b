package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// zeroAmount is the canonical representation of a missing amount.
const zeroAmount = "0.00"

var amountReplacer = strings.NewReplacer(
	"ZŁ", "",
	"PLN", "",
	" ", "", // non-breaking space
	" ", "",
)

// Amount normalizes a numeric or locale-formatted string amount to a
// fixed "D...D.DD" decimal string. Numeric input is rounded with
// banker's rounding (ties to even); string input is parsed after
// stripping PLN/ZŁ currency tokens and locale separators, then rounded
// half-up. Parse failures never panic; they emit "0.00".
func Amount(input any) string {
	switch v := input.(type) {
	case decimal.Decimal:
		return v.RoundBank(2).StringFixed(2)
	case float64:
		return decimal.NewFromFloat(v).RoundBank(2).StringFixed(2)
	case float32:
		return decimal.NewFromFloat32(v).RoundBank(2).StringFixed(2)
	case int:
		return decimal.NewFromInt(int64(v)).RoundBank(2).StringFixed(2)
	case int64:
		return decimal.NewFromInt(v).RoundBank(2).StringFixed(2)
	case string:
		return amountFromString(v)
	default:
		return zeroAmount
	}
}

func amountFromString(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = amountReplacer.Replace(s)
	s = strings.ReplaceAll(s, ",", ".")

	idx := strings.LastIndex(s, ".")
	var cleaned string
	if idx == -1 {
		cleaned = s
	} else {
		left := strings.ReplaceAll(s[:idx], ".", "")
		left = strings.ReplaceAll(left, " ", "")
		right := s[idx+1:]
		cleaned = left + "." + right
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return zeroAmount
	}
	return d.Round(2).StringFixed(2)
}
