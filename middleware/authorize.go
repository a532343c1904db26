// Package middleware guards the menu modules: casbin decides which
// departments may enter which module, and the audit log records every
// mutating operation with who ran it and how long it took.
package middleware

import (
	"github.com/casbin/casbin"
	"github.com/sirupsen/logrus"

	"hotel-manager/models"
)

// ActionAccess is the single casbin action: a department either may or
// may not enter a module.
const ActionAccess = "access"

// Menu module names, the casbin objects.
const (
	ModuleRooms        = "rooms"
	ModuleCustomers    = "customers"
	ModuleReservations = "reservations"
	ModuleEmployees    = "employees"
	ModuleBilling      = "billing"
	ModuleReports      = "reports"
	ModuleSettings     = "settings"
)

// Authorizer answers "may this department enter this module" from the
// rbac model and policy files.
type Authorizer struct {
	enforcer *casbin.Enforcer
	log      *logrus.Logger
}

func NewAuthorizer(modelPath, policyPath string, log *logrus.Logger) (*Authorizer, error) {
	enforcer, err := casbin.NewEnforcerSafe(modelPath, policyPath)
	if err != nil {
		return nil, err
	}
	return &Authorizer{enforcer: enforcer, log: log}, nil
}

// CanAccess reports whether the department may enter the module. An
// enforcement error denies access.
func (a *Authorizer) CanAccess(dept models.Department, module string) bool {
	ok, err := a.enforcer.EnforceSafe(string(dept), module, ActionAccess)
	if err != nil {
		a.log.WithError(err).WithFields(logrus.Fields{
			"department": dept,
			"module":     module,
		}).Error("authorization check failed")
		return false
	}
	if !ok {
		a.log.WithFields(logrus.Fields{
			"department": dept,
			"module":     module,
		}).Warn("access denied")
	}
	return ok
}

// AllowedModules filters the given modules down to those the
// department may enter, preserving order.
func (a *Authorizer) AllowedModules(dept models.Department, modules []string) []string {
	var out []string
	for _, m := range modules {
		if a.CanAccess(dept, m) {
			out = append(out, m)
		}
	}
	return out
}
