package utils

import (
	"strings"
	"testing"
)

func TestNewConfirmationCodeFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := NewConfirmationCode()
		if err != nil {
			t.Fatalf("NewConfirmationCode: %v", err)
		}
		if len(code) != 9 || code[4] != '-' {
			t.Fatalf("code %q not in XXXX-XXXX form", code)
		}
		if !IsValidConfirmationCodeFormat(code) {
			t.Errorf("generated code %q fails its own format check", code)
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Error("50 generated codes were all identical")
	}
}

func TestIsValidConfirmationCodeFormat(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"ABCD-1234", true},
		{"abcd-1234", true},
		{" ABCD1234 ", true},
		{"ABC-1234", false},
		{"ABCD-12!4", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidConfirmationCodeFormat(tc.code); got != tc.want {
			t.Errorf("IsValidConfirmationCodeFormat(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestGenerateCodeCharset(t *testing.T) {
	code, err := GenerateCode(32)
	if err != nil {
		t.Fatalf("GenerateCode: %v", err)
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(codeCharset, rune(code[i])) {
			t.Errorf("code contains %q outside the charset", code[i])
		}
	}
	if _, err := GenerateCode(0); err == nil {
		t.Error("GenerateCode(0) did not fail")
	}
}
