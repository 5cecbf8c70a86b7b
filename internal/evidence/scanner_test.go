package evidence

import "testing"

func TestScanTaxIDs(t *testing.T) {
	text := "Sprzedawca NIP: 521-301-72-28, Nabywca NIP: 1234567890"
	ev := Scan(text, 0.9)
	if len(ev.DetectedTaxIDs) != 1 {
		t.Fatalf("expected exactly one valid NIP, got %v", ev.DetectedTaxIDs)
	}
}

func TestScanAmounts(t *testing.T) {
	text := "Brutto: 1 230,50 zł Netto: 1000.00"
	ev := Scan(text, 0.9)
	if len(ev.DetectedAmounts) != 2 {
		t.Fatalf("expected two amounts, got %v", ev.DetectedAmounts)
	}
}

func TestScanDates(t *testing.T) {
	text := "Data wystawienia: 2025-01-15"
	ev := Scan(text, 0.9)
	if len(ev.DetectedDates) != 1 || ev.DetectedDates[0] != "2025-01-15" {
		t.Fatalf("unexpected dates: %v", ev.DetectedDates)
	}
}

func TestDedupPreservesOrder(t *testing.T) {
	in := []string{"a", "b", "a", "c", "b"}
	got := dedupPreserveOrder(in)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}
