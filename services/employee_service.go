package services

import (
	"strings"

	"github.com/sirupsen/logrus"

	"hotel-manager/errs"
	"hotel-manager/models"
	"hotel-manager/storage"
)

// EmployeeService manages staff records and credential checks. The
// email domain, default password and bcrypt cost come from config.
type EmployeeService struct {
	store           *storage.Store
	log             *logrus.Logger
	emailDomain     string
	defaultPassword string
	bcryptCost      int
}

func NewEmployeeService(store *storage.Store, log *logrus.Logger,
	emailDomain, defaultPassword string, bcryptCost int) *EmployeeService {

	return &EmployeeService{
		store:           store,
		log:             log,
		emailDomain:     emailDomain,
		defaultPassword: defaultPassword,
		bcryptCost:      bcryptCost,
	}
}

// Add hires an employee with the default password and returns the
// assigned id.
func (s *EmployeeService) Add(name, position string, dept models.Department, shift models.Shift,
	salary float64, phone, address, joinDate string) (int, error) {

	id, err := s.store.AddEmployee(func(id int) (*models.Employee, error) {
		return models.NewEmployee(id, name, position, dept, shift, salary,
			phone, address, joinDate, s.emailDomain, s.defaultPassword, s.bcryptCost)
	})
	if err != nil {
		return 0, err
	}
	s.log.WithFields(logrus.Fields{
		"employee":   id,
		"department": dept,
	}).Info("employee added")
	return id, nil
}

// Find returns the employee or a not-found error.
func (s *EmployeeService) Find(id int) (models.Employee, error) {
	employee, ok := s.store.FindEmployee(id)
	if !ok {
		return models.Employee{}, errs.NotFound("employee", id)
	}
	return employee, nil
}

// FindByEmail matches the login email case-insensitively.
func (s *EmployeeService) FindByEmail(email string) (models.Employee, bool) {
	for _, e := range s.store.Employees() {
		if strings.EqualFold(e.Email, email) {
			return e, true
		}
	}
	return models.Employee{}, false
}

// All returns every employee.
func (s *EmployeeService) All() []models.Employee {
	return s.store.Employees()
}

// ByDepartment lists the staff of one department.
func (s *EmployeeService) ByDepartment(dept models.Department) []models.Employee {
	var out []models.Employee
	for _, e := range s.store.Employees() {
		if e.Department == dept {
			out = append(out, e)
		}
	}
	return out
}

// Authenticate verifies the email and password against the stored
// bcrypt hash. Failures do not say whether the email or the password
// was wrong.
func (s *EmployeeService) Authenticate(email, password string) (models.Employee, bool) {
	employee, ok := s.FindByEmail(email)
	if !ok || !employee.Authenticate(password) {
		s.log.WithField("email", email).Warn("failed login attempt")
		return models.Employee{}, false
	}
	s.log.WithFields(logrus.Fields{
		"employee": employee.ID,
		"email":    employee.Email,
	}).Info("employee logged in")
	return employee, true
}

// ChangePassword verifies the current password, then sets the new one.
func (s *EmployeeService) ChangePassword(id int, current, password, confirm string) error {
	err := s.store.UpdateEmployee(id, func(e *models.Employee) error {
		if !e.Authenticate(current) {
			return errs.Validation("Password", "current password is incorrect")
		}
		return e.SetPassword(password, confirm, s.bcryptCost)
	})
	if err != nil {
		return err
	}
	s.log.WithField("employee", id).Info("password changed")
	return nil
}

// UpdateInfo changes position, shift and salary.
func (s *EmployeeService) UpdateInfo(id int, position string, shift models.Shift, salary float64) error {
	err := s.store.UpdateEmployee(id, func(e *models.Employee) error {
		if position == "" {
			return errs.Validation("Position", "cannot be empty")
		}
		if salary <= 0 {
			return errs.Validation("Salary", "must be greater than 0")
		}
		e.Position = position
		e.Shift = shift
		e.Salary = salary
		return nil
	})
	if err != nil {
		return err
	}
	s.log.WithField("employee", id).Info("employee info updated")
	return nil
}

func (s *EmployeeService) Count() int { return s.store.EmployeeCount() }
