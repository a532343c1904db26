package utils

import (
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"ravi@example.com", true},
		{"a@b.c", true},
		{"no-at.example.com", false},
		{"ravi@example", false},
		{"ravi@.com", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidEmail(tc.email); got != tc.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"9876543210", true},
		{"+91 98765 43210", true},
		{"(022) 4000-1000", true},
		{"12345", false},
		{"98765abcde", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidPhone(tc.phone); got != tc.want {
			t.Errorf("IsValidPhone(%q) = %v, want %v", tc.phone, got, tc.want)
		}
	}
}

func TestValidateStructTranslatesErrors(t *testing.T) {
	type sample struct {
		Name  string  `validate:"required"`
		Price float64 `validate:"gt=0"`
		Phone string  `validate:"hotelphone"`
	}

	if err := ValidateStruct(&sample{Name: "x", Price: 1, Phone: "9876543210"}); err != nil {
		t.Fatalf("valid struct rejected: %v", err)
	}
	if err := ValidateStruct(&sample{Price: 1, Phone: "9876543210"}); err == nil {
		t.Error("missing required field accepted")
	}
	if err := ValidateStruct(&sample{Name: "x", Price: 0, Phone: "9876543210"}); err == nil {
		t.Error("non-positive price accepted")
	}
	if err := ValidateStruct(&sample{Name: "x", Price: 1, Phone: "123"}); err == nil {
		t.Error("bad phone accepted")
	}
}
