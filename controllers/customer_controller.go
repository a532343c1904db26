package controllers

import (
	"bufio"
	"fmt"

	"hotel-manager/middleware"
	"hotel-manager/models"
	"hotel-manager/services"
	"hotel-manager/utils"
)

// CustomerController is the guest registry screen.
type CustomerController struct {
	reader    *bufio.Reader
	customers *services.CustomerService
	audit     *middleware.Audit
}

func NewCustomerController(reader *bufio.Reader, customers *services.CustomerService, audit *middleware.Audit) *CustomerController {
	return &CustomerController{reader: reader, customers: customers, audit: audit}
}

func (c *CustomerController) Run(session Session) {
	for {
		fmt.Println("\n--- Customer Management ---")
		fmt.Println("1. Register Customer")
		fmt.Println("2. View All Customers")
		fmt.Println("3. Search Customers")
		fmt.Println("4. View Customer Details")
		fmt.Println("5. Update Contact Info")
		fmt.Println("0. Back")

		choice, err := utils.PromptInt(c.reader, "Choice: ", 0, 5)
		if err != nil || choice == 0 {
			return
		}
		switch choice {
		case 1:
			c.register(session)
		case 2:
			c.list(c.customers.All())
		case 3:
			keyword, err := utils.PromptString(c.reader, "Search keyword: ", false)
			if err != nil {
				return
			}
			c.list(c.customers.Search(keyword))
		case 4:
			c.details()
		case 5:
			c.updateInfo(session)
		}
	}
}

func (c *CustomerController) register(session Session) {
	name, err := utils.PromptString(c.reader, "Name: ", false)
	if err != nil {
		return
	}
	email, err := utils.PromptString(c.reader, "Email: ", false)
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
	idProof, err := utils.PromptString(c.reader, "ID proof: ", false)
	if err != nil {
		return
	}

	var id int
	err = c.audit.Record(session.Employee.ID, "customer.add", 0, func() error {
		var err error
		id, err = c.customers.Add(name, email, phone, address, idProof)
		return err
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Customer registered with id %d.\n", id)
}

func (c *CustomerController) list(customers []models.Customer) {
	if len(customers) == 0 {
		fmt.Println("No customers found.")
		return
	}
	fmt.Printf("%-8s %-24s %-28s %-16s %s\n", "ID", "Name", "Email", "Phone", "Visits")
	for _, cust := range customers {
		fmt.Printf("%-8d %-24s %-28s %-16s %d\n",
			cust.ID, cust.Name, utils.MaskEmail(cust.Email), cust.Phone, cust.TotalVisits)
	}
}

func (c *CustomerController) details() {
	id, err := utils.PromptInt(c.reader, "Customer id: ", 1, 9999999)
	if err != nil {
		return
	}
	customer, err := c.customers.Find(id)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("\nID:          %d\n", customer.ID)
	fmt.Printf("Name:        %s\n", customer.Name)
	fmt.Printf("Email:       %s\n", customer.Email)
	fmt.Printf("Phone:       %s\n", customer.Phone)
	fmt.Printf("Address:     %s\n", customer.Address)
	fmt.Printf("ID proof:    %s\n", customer.IDProof)
	fmt.Printf("Registered:  %s\n", customer.RegisteredAt.Format(utils.DateLayout))
	fmt.Printf("Visits:      %d\n", customer.TotalVisits)
	fmt.Printf("Total spent: %s\n", utils.FormatCurrency(customer.TotalSpent))
}

func (c *CustomerController) updateInfo(session Session) {
	id, err := utils.PromptInt(c.reader, "Customer id: ", 1, 9999999)
	if err != nil {
		return
	}
	customer, err := c.customers.Find(id)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Updating %s. Press enter to keep the current value.\n", customer.Name)

	phone, err := utils.PromptString(c.reader, fmt.Sprintf("Phone [%s]: ", customer.Phone), true)
	if err != nil {
		return
	}
	if phone == "" {
		phone = customer.Phone
	}
	email, err := utils.PromptString(c.reader, fmt.Sprintf("Email [%s]: ", utils.MaskEmail(customer.Email)), true)
	if err != nil {
		return
	}
	if email == "" {
		email = customer.Email
	}
	address, err := utils.PromptString(c.reader, fmt.Sprintf("Address [%s]: ", customer.Address), true)
	if err != nil {
		return
	}
	if address == "" {
		address = customer.Address
	}

	err = c.audit.Record(session.Employee.ID, "customer.update", id, func() error {
		return c.customers.UpdateInfo(id, phone, email, address)
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Customer updated.")
}
