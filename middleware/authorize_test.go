package middleware

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"hotel-manager/models"
)

const testModel = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

const testPolicy = `p, Front Desk, rooms, access
p, Front Desk, reservations, access
p, Management, employees, access
g, Management, Front Desk
`

func newTestAuthorizer(t *testing.T) *Authorizer {
	t.Helper()
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "rbac_model.conf")
	policyPath := filepath.Join(dir, "policy.csv")
	if err := os.WriteFile(modelPath, []byte(testModel), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(policyPath, []byte(testPolicy), 0o644); err != nil {
		t.Fatal(err)
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	a, err := NewAuthorizer(modelPath, policyPath, log)
	if err != nil {
		t.Fatalf("NewAuthorizer: %v", err)
	}
	return a
}

func TestCanAccess(t *testing.T) {
	a := newTestAuthorizer(t)
	cases := []struct {
		name   string
		dept   models.Department
		module string
		want   bool
	}{
		{"front desk rooms", models.DeptFrontDesk, ModuleRooms, true},
		{"front desk employees denied", models.DeptFrontDesk, ModuleEmployees, false},
		{"management direct grant", models.DeptManagement, ModuleEmployees, true},
		{"management inherits front desk", models.DeptManagement, ModuleRooms, true},
		{"kitchen denied", models.DeptKitchen, ModuleRooms, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.CanAccess(tc.dept, tc.module); got != tc.want {
				t.Errorf("CanAccess(%s, %s) = %v, want %v", tc.dept, tc.module, got, tc.want)
			}
		})
	}
}

func TestAllowedModules(t *testing.T) {
	a := newTestAuthorizer(t)
	modules := []string{ModuleRooms, ModuleEmployees, ModuleReservations}

	got := a.AllowedModules(models.DeptFrontDesk, modules)
	if len(got) != 2 || got[0] != ModuleRooms || got[1] != ModuleReservations {
		t.Errorf("AllowedModules(Front Desk) = %v", got)
	}
	if got := a.AllowedModules(models.DeptKitchen, modules); len(got) != 0 {
		t.Errorf("AllowedModules(Kitchen) = %v, want none", got)
	}
}
