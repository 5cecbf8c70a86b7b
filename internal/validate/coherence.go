// Package validate implements non-blocking coherence checks over
// extracted invoice fields: cross-checking gross/net/VAT amounts against
// each other within a tolerance and surfacing mismatches as warnings
// rather than rejecting the document outright. Partial or inconsistent
// extraction never fails the pipeline; it only loses confidence.
package validate

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Warning is a single non-critical coherence finding.
type Warning struct {
	Field   string
	Code    string
	Message string
}

// Result is the outcome of a coherence check: always non-blocking, a
// set of warnings the caller may choose to surface alongside the
// extraction's confidence.
type Result struct {
	Warnings []Warning
}

// CoherenceChecker cross-validates VAT invoice amounts (gross = net +
// VAT) within a percentage tolerance.
type CoherenceChecker struct {
	tolerance decimal.Decimal // fraction, e.g. 0.01 = 1%
}

// NewCoherenceChecker builds a checker with a 1% default tolerance.
func NewCoherenceChecker() *CoherenceChecker {
	return &CoherenceChecker{tolerance: decimal.NewFromFloat(0.01)}
}

// CheckAmounts compares net+vat against gross; a mismatch beyond
// tolerance is recorded as a warning, never an error. Confidence and
// missing/inconsistent fields are for the consumer to weigh.
func (c *CoherenceChecker) CheckAmounts(net, vat, gross string) *Result {
	result := &Result{}

	netDec, netOK := parseAmount(net)
	vatDec, vatOK := parseAmount(vat)
	grossDec, grossOK := parseAmount(gross)

	if !netOK || !vatOK || !grossOK {
		return result
	}
	if netDec.IsZero() && vatDec.IsZero() && grossDec.IsZero() {
		return result
	}

	expected := netDec.Add(vatDec)
	diff := expected.Sub(grossDec).Abs()
	toleranceAmount := grossDec.Abs().Mul(c.tolerance)

	if diff.GreaterThan(toleranceAmount) {
		result.Warnings = append(result.Warnings, Warning{
			Field:   "gross_amount",
			Code:    "gross_mismatch",
			Message: fmt.Sprintf("net+vat (%s) does not match gross (%s)", expected.StringFixed(2), grossDec.StringFixed(2)),
		})
	}
	return result
}

func parseAmount(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
