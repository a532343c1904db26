package models

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"hotel-manager/errs"
	"hotel-manager/utils"
)

type Department string

const (
	DeptFrontDesk    Department = "Front Desk"
	DeptHousekeeping Department = "Housekeeping"
	DeptKitchen      Department = "Kitchen"
	DeptManagement   Department = "Management"
)

var Departments = []Department{DeptFrontDesk, DeptHousekeeping, DeptKitchen, DeptManagement}

func ParseDepartment(s string) (Department, error) {
	for _, d := range Departments {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown department %q", s)
}

type Shift string

const (
	ShiftMorning   Shift = "Morning"
	ShiftAfternoon Shift = "Afternoon"
	ShiftNight     Shift = "Night"
)

var Shifts = []Shift{ShiftMorning, ShiftAfternoon, ShiftNight}

func ParseShift(s string) (Shift, error) {
	for _, sh := range Shifts {
		if string(sh) == s {
			return sh, nil
		}
	}
	return "", fmt.Errorf("unknown shift %q", s)
}

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// Employee is a staff member. The login email is derived from the first
// name token; only the bcrypt hash of the password is ever kept.
type Employee struct {
	ID           int    `validate:"gt=0"`
	Name         string `validate:"required"`
	Position     string `validate:"required"`
	Department   Department
	Shift        Shift
	Salary       float64 `validate:"gt=0"`
	Phone        string  `validate:"hotelphone"`
	Address      string  `validate:"required"`
	JoinDate     string  `validate:"required"`
	Email        string
	PasswordHash string
}

// NewEmployee builds a validated Employee. The login email is the
// lowercased first name token at emailDomain, and the initial password
// is stored as a bcrypt hash at the given cost.
func NewEmployee(id int, name, position string, dept Department, shift Shift,
	salary float64, phone, address, joinDate, emailDomain, initialPassword string,
	bcryptCost int) (*Employee, error) {

	e := &Employee{
		ID:         id,
		Name:       name,
		Position:   position,
		Department: dept,
		Shift:      shift,
		Salary:     salary,
		Phone:      phone,
		Address:    address,
		JoinDate:   joinDate,
	}
	if err := utils.ValidateStruct(e); err != nil {
		return nil, err
	}

	first := name
	if i := strings.IndexByte(name, ' '); i > 0 {
		first = name[:i]
	}
	e.Email = strings.ToLower(first) + "@" + emailDomain

	if err := e.SetPassword(initialPassword, initialPassword, bcryptCost); err != nil {
		return nil, err
	}
	return e, nil
}

// SetPassword validates and hashes a new password.
func (e *Employee) SetPassword(password, confirm string, bcryptCost int) error {
	if password == "" {
		return errs.Validation("Password", "cannot be empty")
	}
	if len(password) < MinPasswordLength {
		return errs.Validation("Password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}
	if password != confirm {
		return errs.Validation("Password", "passwords do not match")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	e.PasswordHash = string(hash)
	return nil
}

// Authenticate compares the candidate password against the stored hash.
func (e *Employee) Authenticate(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)) == nil
}

// MonthlySalary returns the monthly pay.
func (e *Employee) MonthlySalary() float64 { return e.Salary }

// IsManager reports whether the employee has managerial standing.
func (e *Employee) IsManager() bool {
	return strings.Contains(e.Position, "Manager") ||
		strings.Contains(e.Position, "Supervisor") ||
		e.Department == DeptManagement
}

// ShiftHours renders the working hours for display.
func (e *Employee) ShiftHours() string {
	switch e.Shift {
	case ShiftMorning:
		return "Morning (8AM-4PM)"
	case ShiftAfternoon:
		return "Afternoon (4PM-12AM)"
	case ShiftNight:
		return "Night (12AM-8AM)"
	default:
		return string(e.Shift)
	}
}

func (e *Employee) IsValid() bool {
	return e.ID > 0 && e.Name != "" && e.Position != "" && e.Salary > 0 &&
		utils.IsValidPhone(e.Phone) && e.Address != "" && e.JoinDate != ""
}
