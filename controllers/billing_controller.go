package controllers

import (
	"bufio"
	"fmt"

	"hotel-manager/middleware"
	"hotel-manager/models"
	"hotel-manager/services"
	"hotel-manager/utils"
)

// BillingController is the billing desk screen.
type BillingController struct {
	reader         *bufio.Reader
	billing        *services.BillingService
	paymentMethods []string
	audit          *middleware.Audit
}

func NewBillingController(reader *bufio.Reader, billing *services.BillingService,
	paymentMethods []string, audit *middleware.Audit) *BillingController {

	return &BillingController{
		reader:         reader,
		billing:        billing,
		paymentMethods: paymentMethods,
		audit:          audit,
	}
}

func (c *BillingController) Run(session Session) {
	for {
		fmt.Println("\n--- Billing ---")
		fmt.Println("1. Create Bill")
		fmt.Println("2. View Bill")
		fmt.Println("3. Add Food Charge")
		fmt.Println("4. Add Service Charge")
		fmt.Println("5. Process Payment")
		fmt.Println("6. View Unpaid Bills")
		fmt.Println("7. Total Revenue")
		fmt.Println("0. Back")

		choice, err := utils.PromptInt(c.reader, "Choice: ", 0, 7)
		if err != nil || choice == 0 {
			return
		}
		switch choice {
		case 1:
			c.createBill(session)
		case 2:
			c.viewBill()
		case 3:
			c.addFood(session)
		case 4:
			c.addService(session)
		case 5:
			c.processPayment(session)
		case 6:
			c.listUnpaid()
		case 7:
			fmt.Printf("Total revenue (paid bills): %s\n",
				utils.FormatCurrency(c.billing.TotalRevenue()))
		}
	}
}

func (c *BillingController) createBill(session Session) {
	reservationID, err := utils.PromptInt(c.reader, "Reservation id: ", 1, 9999999)
	if err != nil {
		return
	}
	taxRate := c.billing.DefaultTaxRate()
	useDefault, err := utils.PromptYesNo(c.reader, fmt.Sprintf("Use default tax rate %.0f%%?", taxRate*100))
	if err != nil {
		return
	}
	if !useDefault {
		taxRate, err = utils.PromptFloat(c.reader, "Tax rate (e.g. 0.10): ", 0)
		if err != nil {
			return
		}
	}
	var discount float64
	applyDiscount, err := utils.PromptYesNo(c.reader, "Apply a discount?")
	if err != nil {
		return
	}
	if applyDiscount {
		discount, err = utils.PromptFloat(c.reader, "Discount rate (0-1): ", 0)
		if err != nil {
			return
		}
	}

	var id int
	err = c.audit.Record(session.Employee.ID, "bill.create", reservationID, func() error {
		var err error
		id, err = c.billing.Create(reservationID, taxRate, discount)
		return err
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Bill %d created with the room charge itemized.\n", id)
}

func (c *BillingController) printBill(bill models.Bill) {
	fmt.Printf("\nBill %d (reservation %d)\n", bill.ID, bill.ReservationID)
	for i, item := range bill.Items {
		fmt.Printf("  %d. %-32s %3d x %-10s = %s\n", i+1, item.Description,
			item.Quantity, utils.FormatCurrency(item.Amount), utils.FormatCurrency(item.Total()))
	}
	fmt.Printf("  Subtotal: %s\n", utils.FormatCurrency(bill.Subtotal()))
	fmt.Printf("  Tax:      %s\n", utils.FormatCurrency(bill.Tax()))
	if bill.Discount > 0 {
		fmt.Printf("  Discount: -%s\n", utils.FormatCurrency(bill.DiscountAmount()))
	}
	fmt.Printf("  Total:    %s\n", utils.FormatCurrency(bill.Total()))
	if bill.Paid {
		fmt.Printf("  PAID via %s on %s, receipt %s\n",
			bill.PaymentMethod, bill.PaidAt.Format(utils.DateLayout), bill.ReceiptNumber)
	} else {
		fmt.Printf("  Balance due: %s\n", utils.FormatCurrency(bill.BalanceDue()))
	}
}

func (c *BillingController) viewBill() {
	id, err := utils.PromptInt(c.reader, "Bill id: ", 1, 9999999)
	if err != nil {
		return
	}
	bill, err := c.billing.Find(id)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	c.printBill(bill)
}

func (c *BillingController) addFood(session Session) {
	id, err := utils.PromptInt(c.reader, "Bill id: ", 1, 9999999)
	if err != nil {
		return
	}
	item, err := utils.PromptString(c.reader, "Item: ", false)
	if err != nil {
		return
	}
	amount, err := utils.PromptFloat(c.reader, "Unit price: ", 0.01)
	if err != nil {
		return
	}
	quantity, err := utils.PromptInt(c.reader, "Quantity: ", 1, 100)
	if err != nil {
		return
	}

	err = c.audit.Record(session.Employee.ID, "bill.food", id, func() error {
		return c.billing.AddFoodCharge(id, item, amount, quantity)
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Charge added.")
}

func (c *BillingController) addService(session Session) {
	id, err := utils.PromptInt(c.reader, "Bill id: ", 1, 9999999)
	if err != nil {
		return
	}
	service, err := utils.PromptString(c.reader, "Service: ", false)
	if err != nil {
		return
	}
	amount, err := utils.PromptFloat(c.reader, "Amount: ", 0.01)
	if err != nil {
		return
	}

	err = c.audit.Record(session.Employee.ID, "bill.service", id, func() error {
		return c.billing.AddServiceCharge(id, service, amount)
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Charge added.")
}

func (c *BillingController) processPayment(session Session) {
	id, err := utils.PromptInt(c.reader, "Bill id: ", 1, 9999999)
	if err != nil {
		return
	}
	bill, err := c.billing.Find(id)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	c.printBill(bill)
	if bill.Paid {
		return
	}

	fmt.Println("Payment methods:")
	for i, m := range c.paymentMethods {
		fmt.Printf("  %d. %s\n", i+1, m)
	}
	choice, err := utils.PromptInt(c.reader, "Method: ", 1, len(c.paymentMethods))
	if err != nil {
		return
	}

	var paid models.Bill
	err = c.audit.Record(session.Employee.ID, "bill.payment", id, func() error {
		var err error
		paid, err = c.billing.ProcessPayment(id, c.paymentMethods[choice-1])
		return err
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Payment of %s accepted. Receipt: %s\n",
		utils.FormatCurrency(paid.Total()), paid.ReceiptNumber)
}

func (c *BillingController) listUnpaid() {
	unpaid := c.billing.UnpaidBills()
	if len(unpaid) == 0 {
		fmt.Println("No unpaid bills.")
		return
	}
	fmt.Printf("%-8s %-12s %s\n", "Bill", "Reservation", "Balance")
	for _, b := range unpaid {
		fmt.Printf("%-8d %-12d %s\n", b.ID, b.ReservationID, utils.FormatCurrency(b.BalanceDue()))
	}
}
