package normalize

import "testing"

func TestNIP(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"5213017228", "5213017228"},
		{"521-301-72-28", "5213017228"},
		{"PL5213017228", "5213017228"},
		{"pl 521-301-72-28", "5213017228"},
	}
	for _, c := range cases {
		if got := NIP(c.in); got != c.want {
			t.Errorf("NIP(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNIPIdempotent(t *testing.T) {
	inputs := []string{"5213017228", "521-301-72-28", "PL5213017228"}
	for _, in := range inputs {
		once := NIP(in)
		twice := NIP(once)
		if once != twice {
			t.Errorf("NIP not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestValidateNIP(t *testing.T) {
	if !ValidateNIP("5213017228") {
		t.Error("expected 5213017228 to be valid")
	}
	if ValidateNIP("1234567890") {
		t.Error("expected 1234567890 to be invalid")
	}
	if ValidateNIP("12345") {
		t.Error("expected short input to be invalid")
	}
}

func TestAmount(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"1 230,50 zł", "1230.50"},
		{1230.5, "1230.50"},
		{"1230.5", "1230.50"},
		{"not a number", "0.00"},
		{1230.555, "1230.56"},
	}
	for _, c := range cases {
		if got := Amount(c.in); got != c.want {
			t.Errorf("Amount(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAmountIdempotent(t *testing.T) {
	once := Amount("1 230,50 zł")
	twice := Amount(once)
	if once != twice {
		t.Errorf("Amount not idempotent: %q vs %q", once, twice)
	}
}

func TestDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-01-15", "2025-01-15"},
		{"15-01-2025", "2025-01-15"},
		{"15.01.2025", "2025-01-15"},
		{"15/01/2025", "2025-01-15"},
		{"20250115", "2025-01-15"},
		{"garbled", "garbled"},
	}
	for _, c := range cases {
		if got := Date(c.in); got != c.want {
			t.Errorf("Date(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDocNumber(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"fv/2025/00142", "FV/2025/00142"},
		{"fv_2025-00142", "FV/2025/00142"},
		{"/FV/2025/00142/", "FV/2025/00142"},
		{"FV//2025///00142", "FV/2025/00142"},
	}
	for _, c := range cases {
		if got := DocNumber(c.in); got != c.want {
			t.Errorf("DocNumber(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
