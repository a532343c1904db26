package services

import (
	"errors"
	"testing"

	"hotel-manager/errs"
	"hotel-manager/models"
)

func hireTestEmployee(t *testing.T, f *fixture) int {
	t.Helper()
	id, err := f.employees.Add("Asha Rao", "Receptionist", models.DeptFrontDesk,
		models.ShiftMorning, 32000, "9876500000", "8 Park Lane", "2024-03-01")
	if err != nil {
		t.Fatalf("employees.Add: %v", err)
	}
	return id
}

func TestEmployeeDerivedEmailAndLogin(t *testing.T) {
	f := newFixture(t)
	id := hireTestEmployee(t, f)
	if id != 201 {
		t.Errorf("first employee id = %d, want 201", id)
	}

	employee, err := f.employees.Find(id)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if employee.Email != "asha@grandpalace.example" {
		t.Errorf("derived email = %q, want asha@grandpalace.example", employee.Email)
	}

	if _, ok := f.employees.Authenticate("asha@grandpalace.example", "default123"); !ok {
		t.Error("default password rejected")
	}
	if _, ok := f.employees.Authenticate("ASHA@grandpalace.example", "default123"); !ok {
		t.Error("email matching should be case-insensitive")
	}
	if _, ok := f.employees.Authenticate("asha@grandpalace.example", "wrong"); ok {
		t.Error("wrong password accepted")
	}
	if _, ok := f.employees.Authenticate("nobody@grandpalace.example", "default123"); ok {
		t.Error("unknown email accepted")
	}
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)
	id := hireTestEmployee(t, f)

	cases := []struct {
		name                       string
		current, password, confirm string
		wantErr                    bool
	}{
		{"wrong current", "nope", "newsecret", "newsecret", true},
		{"too short", "default123", "abc", "abc", true},
		{"mismatch", "default123", "newsecret", "other", true},
		{"valid", "default123", "newsecret", "newsecret", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := f.employees.ChangePassword(id, tc.current, tc.password, tc.confirm)
			if tc.wantErr {
				if !errors.Is(err, errs.ErrValidation) {
					t.Errorf("error = %v, want validation error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ChangePassword: %v", err)
			}
		})
	}

	if _, ok := f.employees.Authenticate("asha@grandpalace.example", "default123"); ok {
		t.Error("old password still accepted after change")
	}
	if _, ok := f.employees.Authenticate("asha@grandpalace.example", "newsecret"); !ok {
		t.Error("new password rejected after change")
	}
}

func TestByDepartment(t *testing.T) {
	f := newFixture(t)
	hireTestEmployee(t, f)
	if _, err := f.employees.Add("Vikram Singh", "Chef", models.DeptKitchen,
		models.ShiftAfternoon, 38000, "9876500001", "3 Spice Lane", "2023-11-15"); err != nil {
		t.Fatalf("employees.Add: %v", err)
	}

	kitchen := f.employees.ByDepartment(models.DeptKitchen)
	if len(kitchen) != 1 || kitchen[0].Name != "Vikram Singh" {
		t.Errorf("ByDepartment(Kitchen) = %v", kitchen)
	}
	if len(f.employees.ByDepartment(models.DeptManagement)) != 0 {
		t.Error("ByDepartment(Management) should be empty")
	}
}
