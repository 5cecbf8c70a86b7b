package validate

import "testing"

func TestCheckAmountsConsistent(t *testing.T) {
	c := NewCoherenceChecker()
	result := c.CheckAmounts("1000.00", "230.50", "1230.50")
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
}

func TestCheckAmountsMismatch(t *testing.T) {
	c := NewCoherenceChecker()
	result := c.CheckAmounts("1000.00", "230.50", "5000.00")
	if len(result.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", result.Warnings)
	}
}

func TestCheckAmountsSkipsMissingFields(t *testing.T) {
	c := NewCoherenceChecker()
	result := c.CheckAmounts("", "", "1230.50")
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings when fields are missing, got %v", result.Warnings)
	}
}
