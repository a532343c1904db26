package controllers

import (
	"bufio"
	"fmt"

	"hotel-manager/middleware"
	"hotel-manager/models"
	"hotel-manager/services"
	"hotel-manager/utils"
)

// EmployeeController is the staff administration screen.
type EmployeeController struct {
	reader    *bufio.Reader
	employees *services.EmployeeService
	audit     *middleware.Audit
}

func NewEmployeeController(reader *bufio.Reader, employees *services.EmployeeService, audit *middleware.Audit) *EmployeeController {
	return &EmployeeController{reader: reader, employees: employees, audit: audit}
}

func (c *EmployeeController) Run(session Session) {
	for {
		fmt.Println("\n--- Employee Management ---")
		fmt.Println("1. Add Employee")
		fmt.Println("2. View All Employees")
		fmt.Println("3. View by Department")
		fmt.Println("4. Update Employee Info")
		fmt.Println("0. Back")

		choice, err := utils.PromptInt(c.reader, "Choice: ", 0, 4)
		if err != nil || choice == 0 {
			return
		}
		switch choice {
		case 1:
			c.add(session)
		case 2:
			c.list(c.employees.All())
		case 3:
			c.byDepartment()
		case 4:
			c.updateInfo(session)
		}
	}
}

func promptDepartment(r *bufio.Reader) (models.Department, error) {
	fmt.Println("Departments:")
	for i, d := range models.Departments {
		fmt.Printf("  %d. %s\n", i+1, d)
	}
	choice, err := utils.PromptInt(r, "Department: ", 1, len(models.Departments))
	if err != nil {
		return "", err
	}
	return models.Departments[choice-1], nil
}

func promptShift(r *bufio.Reader) (models.Shift, error) {
	fmt.Println("Shifts:")
	for i, s := range models.Shifts {
		fmt.Printf("  %d. %s\n", i+1, s)
	}
	choice, err := utils.PromptInt(r, "Shift: ", 1, len(models.Shifts))
	if err != nil {
		return "", err
	}
	return models.Shifts[choice-1], nil
}

func (c *EmployeeController) add(session Session) {
	name, err := utils.PromptString(c.reader, "Name: ", false)
	if err != nil {
		return
	}
	position, err := utils.PromptString(c.reader, "Position: ", false)
	if err != nil {
		return
	}
	dept, err := promptDepartment(c.reader)
	if err != nil {
		return
	}
	shift, err := promptShift(c.reader)
	if err != nil {
		return
	}
	salary, err := utils.PromptFloat(c.reader, "Monthly salary: ", 0.01)
	if err != nil {
		return
	}
	phone, err := utils.PromptString(c.reader, "Phone: ", false)
	if err != nil {
		return
	}
	address, err := utils.PromptString(c.reader, "Address: ", false)
	if err != nil {
		return
	}
	joined, err := utils.PromptDate(c.reader, "Join date")
	if err != nil {
		return
	}
	joinDate := joined.Format(utils.DateLayout)

	var id int
	err = c.audit.Record(session.Employee.ID, "employee.add", 0, func() error {
		var err error
		id, err = c.employees.Add(name, position, dept, shift, salary, phone, address, joinDate)
		return err
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	employee, _ := c.employees.Find(id)
	fmt.Printf("Employee %d added. Login email: %s (default password until changed).\n",
		id, employee.Email)
}

func (c *EmployeeController) list(employees []models.Employee) {
	if len(employees) == 0 {
		fmt.Println("No employees found.")
		return
	}
	fmt.Printf("%-6s %-22s %-24s %-14s %-10s %s\n",
		"ID", "Name", "Position", "Department", "Shift", "Email")
	for _, e := range employees {
		fmt.Printf("%-6d %-22s %-24s %-14s %-10s %s\n",
			e.ID, e.Name, e.Position, e.Department, e.Shift, utils.MaskEmail(e.Email))
	}
}

func (c *EmployeeController) byDepartment() {
	dept, err := promptDepartment(c.reader)
	if err != nil {
		return
	}
	c.list(c.employees.ByDepartment(dept))
}

func (c *EmployeeController) updateInfo(session Session) {
	id, err := utils.PromptInt(c.reader, "Employee id: ", 1, 9999999)
	if err != nil {
		return
	}
	employee, err := c.employees.Find(id)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Updating %s (%s, %s).\n", employee.Name, employee.Position, employee.ShiftHours())

	position, err := utils.PromptString(c.reader, fmt.Sprintf("Position [%s]: ", employee.Position), true)
	if err != nil {
		return
	}
	if position == "" {
		position = employee.Position
	}
	shift, err := promptShift(c.reader)
	if err != nil {
		return
	}
	salary, err := utils.PromptFloat(c.reader, "Monthly salary: ", 0.01)
	if err != nil {
		return
	}

	err = c.audit.Record(session.Employee.ID, "employee.update", id, func() error {
		return c.employees.UpdateInfo(id, position, shift, salary)
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Employee updated.")
}
