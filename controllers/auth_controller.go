// Package controllers holds the console screens: one controller per
// menu module, each a loop of numbered choices where 0 always means
// back. Controllers read input, call services and print results; all
// rules live below them.
package controllers

import (
	"bufio"
	"fmt"

	"hotel-manager/models"
	"hotel-manager/services"
	"hotel-manager/utils"
)

// Session is the logged-in employee, passed by value to whoever needs
// to know who is acting.
type Session struct {
	Employee models.Employee
}

// AuthController runs the login prompt.
type AuthController struct {
	reader      *bufio.Reader
	employees   *services.EmployeeService
	maxAttempts int
}

func NewAuthController(reader *bufio.Reader, employees *services.EmployeeService, maxAttempts int) *AuthController {
	return &AuthController{reader: reader, employees: employees, maxAttempts: maxAttempts}
}

// Login prompts for credentials up to maxAttempts times. The second
// return value is false when every attempt failed or input closed.
func (c *AuthController) Login() (Session, bool) {
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		email, err := utils.PromptString(c.reader, "Email: ", false)
		if err != nil {
			return Session{}, false
		}
		password, err := utils.PromptString(c.reader, "Password: ", false)
		if err != nil {
			return Session{}, false
		}

		employee, ok := c.employees.Authenticate(email, password)
		if ok {
			fmt.Printf("\nWelcome, %s (%s - %s)\n\n",
				employee.Name, employee.Position, employee.Department)
			return Session{Employee: employee}, true
		}
		fmt.Printf("Invalid credentials (%d/%d attempts).\n", attempt, c.maxAttempts)
	}
	fmt.Println("Too many failed attempts.")
	return Session{}, false
}
