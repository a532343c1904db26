package controllers

import (
	"bufio"
	"fmt"

	"hotel-manager/middleware"
	"hotel-manager/services"
	"hotel-manager/storage"
	"hotel-manager/utils"
)

// SettingsController covers account and data maintenance: password
// changes, manual saves and backups.
type SettingsController struct {
	reader    *bufio.Reader
	employees *services.EmployeeService
	store     *storage.Store
	audit     *middleware.Audit
	backupDir string
}

func NewSettingsController(reader *bufio.Reader, employees *services.EmployeeService,
	store *storage.Store, audit *middleware.Audit, backupDir string) *SettingsController {

	return &SettingsController{
		reader:    reader,
		employees: employees,
		store:     store,
		audit:     audit,
		backupDir: backupDir,
	}
}

func (c *SettingsController) Run(session Session) {
	for {
		fmt.Println("\n--- Settings ---")
		fmt.Println("1. Change My Password")
		fmt.Println("2. Save All Data")
		fmt.Println("3. Backup Data Files")
		fmt.Println("0. Back")

		choice, err := utils.PromptInt(c.reader, "Choice: ", 0, 3)
		if err != nil || choice == 0 {
			return
		}
		switch choice {
		case 1:
			c.changePassword(session)
		case 2:
			c.saveAll(session)
		case 3:
			c.backup(session)
		}
	}
}

func (c *SettingsController) changePassword(session Session) {
	current, err := utils.PromptString(c.reader, "Current password: ", false)
	if err != nil {
		return
	}
	password, err := utils.PromptString(c.reader, "New password: ", false)
	if err != nil {
		return
	}
	confirm, err := utils.PromptString(c.reader, "Confirm new password: ", false)
	if err != nil {
		return
	}

	err = c.audit.Record(session.Employee.ID, "employee.password", session.Employee.ID, func() error {
		return c.employees.ChangePassword(session.Employee.ID, current, password, confirm)
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Password changed.")
}

func (c *SettingsController) saveAll(session Session) {
	err := c.audit.Record(session.Employee.ID, "store.save", 0, c.store.SaveAll)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("All data saved.")
}

func (c *SettingsController) backup(session Session) {
	var dest string
	err := c.audit.Record(session.Employee.ID, "store.backup", 0, func() error {
		var err error
		dest, err = c.store.Backup(c.backupDir)
		return err
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Backup written to", dest)
}
