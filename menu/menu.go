// Package menu wires the controllers to the main loop: it shows each
// logged-in employee only the modules their department may enter and
// dispatches into the matching controller.
package menu

import (
	"bufio"
	"fmt"

	"hotel-manager/controllers"
	"hotel-manager/middleware"
	"hotel-manager/utils"
)

// module pairs a casbin object name with its screen.
type module struct {
	name  string
	label string
	run   func(controllers.Session)
}

// Menu is the top-level console loop.
type Menu struct {
	reader     *bufio.Reader
	authorizer *middleware.Authorizer
	modules    []module
}

// Controllers collects every screen the menu can dispatch into.
type Controllers struct {
	Rooms        *controllers.RoomController
	Customers    *controllers.CustomerController
	Reservations *controllers.ReservationController
	Employees    *controllers.EmployeeController
	Billing      *controllers.BillingController
	Reports      *controllers.ReportController
	Settings     *controllers.SettingsController
}

func New(reader *bufio.Reader, authorizer *middleware.Authorizer, c Controllers) *Menu {
	return &Menu{
		reader:     reader,
		authorizer: authorizer,
		modules: []module{
			{middleware.ModuleRooms, "Room Management", c.Rooms.Run},
			{middleware.ModuleCustomers, "Customer Management", c.Customers.Run},
			{middleware.ModuleReservations, "Reservations", c.Reservations.Run},
			{middleware.ModuleBilling, "Billing", c.Billing.Run},
			{middleware.ModuleEmployees, "Employee Management", c.Employees.Run},
			{middleware.ModuleReports, "Reports", c.Reports.Run},
			{middleware.ModuleSettings, "Settings", c.Settings.Run},
		},
	}
}

// Run loops the main menu until the user picks 0 to log out.
func (m *Menu) Run(session Session) {
	for {
		allowed := m.allowedModules(session)
		if len(allowed) == 0 {
			fmt.Println("Your department has no menu access. Contact management.")
			return
		}

		fmt.Println("\n=== Main Menu ===")
		for i, mod := range allowed {
			fmt.Printf("%d. %s\n", i+1, mod.label)
		}
		fmt.Println("0. Log Out")

		choice, err := utils.PromptInt(m.reader, "Choice: ", 0, len(allowed))
		if err != nil || choice == 0 {
			return
		}
		allowed[choice-1].run(session)
	}
}

// Session aliases the controllers' session type so main only imports
// the menu.
type Session = controllers.Session

func (m *Menu) allowedModules(session Session) []module {
	var out []module
	for _, mod := range m.modules {
		if m.authorizer.CanAccess(session.Employee.Department, mod.name) {
			out = append(out, mod)
		}
	}
	return out
}
