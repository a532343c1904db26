package models

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"hotel-manager/errs"
)

func testEmployee(t *testing.T, name string) *Employee {
	t.Helper()
	e, err := NewEmployee(201, name, "Receptionist", DeptFrontDesk, ShiftMorning,
		32000, "9876500000", "8 Park Lane", "2024-03-01",
		"grandpalace.example", "default123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewEmployee: %v", err)
	}
	return e
}

func TestDerivedEmail(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Asha Rao", "asha@grandpalace.example"},
		{"Vikram", "vikram@grandpalace.example"},
		{"MEENA Iyer Nair", "meena@grandpalace.example"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := testEmployee(t, tc.name)
			if e.Email != tc.want {
				t.Errorf("email = %q, want %q", e.Email, tc.want)
			}
		})
	}
}

func TestPasswordHashingAndAuth(t *testing.T) {
	e := testEmployee(t, "Asha Rao")
	if e.PasswordHash == "default123" || e.PasswordHash == "" {
		t.Fatal("password stored without hashing")
	}
	if !e.Authenticate("default123") {
		t.Error("correct password rejected")
	}
	if e.Authenticate("wrong") {
		t.Error("wrong password accepted")
	}
}

func TestSetPassword(t *testing.T) {
	e := testEmployee(t, "Asha Rao")
	cases := []struct {
		name              string
		password, confirm string
		wantErr           bool
	}{
		{"empty", "", "", true},
		{"too short", "abc", "abc", true},
		{"mismatch", "newsecret", "newsecrets", true},
		{"valid", "newsecret", "newsecret", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := e.SetPassword(tc.password, tc.confirm, bcrypt.MinCost)
			if tc.wantErr {
				if !errors.Is(err, errs.ErrValidation) {
					t.Errorf("error = %v, want validation error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetPassword: %v", err)
			}
			if !e.Authenticate("newsecret") {
				t.Error("new password rejected after SetPassword")
			}
		})
	}
}

func TestNewEmployeeValidation(t *testing.T) {
	_, err := NewEmployee(201, "Asha Rao", "Receptionist", DeptFrontDesk, ShiftMorning,
		0, "9876500000", "8 Park Lane", "2024-03-01",
		"grandpalace.example", "default123", bcrypt.MinCost)
	if !errors.Is(err, errs.ErrValidation) {
		t.Errorf("zero salary error = %v, want validation error", err)
	}
	_, err = NewEmployee(201, "Asha Rao", "Receptionist", DeptFrontDesk, ShiftMorning,
		32000, "12345", "8 Park Lane", "2024-03-01",
		"grandpalace.example", "default123", bcrypt.MinCost)
	if !errors.Is(err, errs.ErrValidation) {
		t.Errorf("bad phone error = %v, want validation error", err)
	}
}

func TestIsManager(t *testing.T) {
	e := testEmployee(t, "Asha Rao")
	if e.IsManager() {
		t.Error("receptionist flagged as manager")
	}
	e.Position = "Front Desk Manager"
	if !e.IsManager() {
		t.Error("manager position not recognized")
	}
	e.Position = "Receptionist"
	e.Department = DeptManagement
	if !e.IsManager() {
		t.Error("management department not recognized")
	}
}
