package storage

import (
	"reflect"
	"strings"
	"testing"
)

func TestRecordRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		fields []string
	}{
		{"plain", []string{"101", "Standard", "Available"}},
		{"empty fields", []string{"", "middle", ""}},
		{"pipe in field", []string{"Kumar | Sons", "address"}},
		{"backslash in field", []string{`C:\hotel\data`, "x"}},
		{"newline in field", []string{"line one\nline two", "x"}},
		{"carriage return", []string{"line one\r\nline two", "x"}},
		{"everything at once", []string{`a|b\c` + "\nd", "|", `\`}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			line := joinRecord(tc.fields)
			if strings.ContainsAny(line, "\n\r") {
				t.Fatalf("encoded record contains a line break: %q", line)
			}
			got, err := splitRecord(line)
			if err != nil {
				t.Fatalf("splitRecord(%q): %v", line, err)
			}
			if !reflect.DeepEqual(got, tc.fields) {
				t.Errorf("round trip = %q, want %q", got, tc.fields)
			}
		})
	}
}

func TestSplitRecordRejectsBadEscapes(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"dangling escape", `101|Standard\`},
		{"unknown escape", `101|\x`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := splitRecord(tc.line); err == nil {
				t.Errorf("splitRecord(%q) accepted a malformed record", tc.line)
			}
		})
	}
}

func TestFormatFloatIsExact(t *testing.T) {
	cases := map[float64]string{
		0:      "0",
		100:    "100",
		99.99:  "99.99",
		0.1:    "0.1",
		-12.5:  "-12.5",
		150.75: "150.75",
	}
	for in, want := range cases {
		if got := formatFloat(in); got != want {
			t.Errorf("formatFloat(%v) = %q, want %q", in, got, want)
		}
	}
}
