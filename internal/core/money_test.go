package core

import "testing"

func TestParseDecimalToPaise(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"₹500", 50000, true},
		{"80_000", 8000000, true},
		{"-1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
		{"1.٣", 0, false},
		{"٣", 0, false},
		{"1.２", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToPaise(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("1250.50")
	if err != nil || got != 1250.5 {
		t.Fatalf("expected 1250.5, got %v (err=%v)", got, err)
	}
	for _, in := range []string{"-3", "1.٣"} {
		if _, err := ParseAmount(in); err != ErrInvalidAmount {
			t.Fatalf("%q: expected ErrInvalidAmount, got %v", in, err)
		}
	}
}
