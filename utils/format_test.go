package utils

import "testing"

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency(1234.5); got != "$1234.50" {
		t.Errorf("FormatCurrency(1234.5) = %q", got)
	}
	if got := FormatCurrency(0); got != "$0.00" {
		t.Errorf("FormatCurrency(0) = %q", got)
	}
}

func TestJoinFeatures(t *testing.T) {
	if got := JoinFeatures(nil); got != "None" {
		t.Errorf("JoinFeatures(nil) = %q, want None", got)
	}
	if got := JoinFeatures([]string{"WiFi", "TV"}); got != "WiFi, TV" {
		t.Errorf("JoinFeatures = %q", got)
	}
}

func TestMaskEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ravi@example.com", "r**i@e******.com"},
		{"ab@example.com", "a*@e******.com"},
		{"not-an-email", "not-an-email"},
	}
	for _, tc := range cases {
		if got := MaskEmail(tc.in); got != tc.want {
			t.Errorf("MaskEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
