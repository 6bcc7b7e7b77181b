package util

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "local number with leading zero", input: "0557881454", want: "+233557881454"},
		{name: "multiple leading zeros", input: "00557881454", want: "+233557881454"},
		{name: "already international", input: "+233557881454", want: "+233557881454"},
		{name: "foreign international number", input: "+4915112345678", want: "+4915112345678"},
		{name: "surrounding whitespace", input: "  0557881454 ", want: "+233557881454"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizePhone(tc.input, "+233")
			if got != tc.want {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  A@B.Com "); got != "a@b.com" {
		t.Fatalf("NormalizeEmail returned %q", got)
	}
}
