package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02.01.2006",
	"02/01/2006",
	"2006/01/02",
	"02 01 2006",
	"20060102",
}

var digitRun = regexp.MustCompile(`\d+`)

// Date normalizes a string, time.Time, or free-form date into ISO
// YYYY-MM-DD. Temporal values are formatted directly; strings are tried
// against an ordered format list, then a digit-run heuristic; if nothing
// matches, the original string is returned unchanged (never fabricated).
func Date(input any) string {
	switch v := input.(type) {
	case time.Time:
		return v.Format("2006-01-02")
	case string:
		return dateFromString(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func dateFromString(raw string) string {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}

	runs := digitRun.FindAllString(s, -1)
	if len(runs) >= 3 {
		if len(runs[0]) == 4 {
			y, m, d := runs[0], runs[1], runs[2]
			return fmt.Sprintf("%s-%s-%s", y, pad2(m), pad2(d))
		}
		if len(runs[2]) == 4 {
			d, m, y := runs[0], runs[1], runs[2]
			return fmt.Sprintf("%s-%s-%s", y, pad2(m), pad2(d))
		}
	}

	return s
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
