package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"hotel-manager/errs"
)

// BillItem is one line on a bill.
type BillItem struct {
	Description string
	Amount      float64
	Quantity    int
}

// NewBillItem builds a validated line item.
func NewBillItem(description string, amount float64, quantity int) (BillItem, error) {
	switch {
	case description == "":
		return BillItem{}, errs.Validation("Description", "cannot be empty")
	case amount <= 0:
		return BillItem{}, errs.Validation("Amount", "must be greater than 0")
	case quantity <= 0:
		return BillItem{}, errs.Validation("Quantity", "must be greater than 0")
	}
	return BillItem{Description: description, Amount: amount, Quantity: quantity}, nil
}

// Total is the line amount times the quantity.
func (i BillItem) Total() float64 {
	return i.Amount * float64(i.Quantity)
}

// Bill itemizes charges against a reservation. Totals are computed fresh
// on every read; payment is one-shot and records method, timestamp and a
// receipt number.
type Bill struct {
	ID            int
	ReservationID int
	Items         []BillItem
	TaxRate       float64
	Discount      float64
	Paid          bool
	PaymentMethod string
	PaidAt        time.Time
	ReceiptNumber string
}

// NewBill builds a validated, empty, unpaid bill.
func NewBill(id, reservationID int, taxRate, discount float64) (*Bill, error) {
	switch {
	case id <= 0:
		return nil, errs.Validation("ID", "must be greater than 0")
	case reservationID <= 0:
		return nil, errs.Validation("ReservationID", "must be greater than 0")
	case taxRate < 0:
		return nil, errs.Validation("TaxRate", "cannot be negative")
	case discount < 0 || discount > 1:
		return nil, errs.Validation("Discount", "must be between 0 and 1")
	}
	return &Bill{ID: id, ReservationID: reservationID, TaxRate: taxRate, Discount: discount}, nil
}

// AddItem appends a validated line item.
func (b *Bill) AddItem(description string, amount float64, quantity int) error {
	item, err := NewBillItem(description, amount, quantity)
	if err != nil {
		return err
	}
	b.Items = append(b.Items, item)
	return nil
}

// AddRoomCharge adds the nightly room charge as a line item.
func (b *Bill) AddRoomCharge(amount float64, nights int) error {
	return b.AddItem(fmt.Sprintf("Room Charge (%d nights)", nights), amount, nights)
}

// AddFoodCharge adds a food and beverage line item.
func (b *Bill) AddFoodCharge(item string, amount float64, quantity int) error {
	return b.AddItem("Food - "+item, amount, quantity)
}

// AddServiceCharge adds an additional-service line item.
func (b *Bill) AddServiceCharge(service string, amount float64) error {
	return b.AddItem("Service - "+service, amount, 1)
}

// RemoveItem deletes the line at index.
func (b *Bill) RemoveItem(index int) error {
	if index < 0 || index >= len(b.Items) {
		return errs.Validation("Index", "invalid item index")
	}
	b.Items = append(b.Items[:index], b.Items[index+1:]...)
	return nil
}

func (b *Bill) ClearItems() {
	b.Items = nil
}

// Subtotal sums all line totals.
func (b *Bill) Subtotal() float64 {
	var subtotal float64
	for _, item := range b.Items {
		subtotal += item.Total()
	}
	return subtotal
}

// Tax is charged on the subtotal.
func (b *Bill) Tax() float64 {
	return b.Subtotal() * b.TaxRate
}

// DiscountAmount applies the discount rate to subtotal plus tax.
func (b *Bill) DiscountAmount() float64 {
	return (b.Subtotal() + b.Tax()) * b.Discount
}

// Total is subtotal plus tax minus discount.
func (b *Bill) Total() float64 {
	return b.Subtotal() + b.Tax() - b.DiscountAmount()
}

// ProcessPayment settles the bill in full. It fails if the bill is
// already paid or the method is empty; on success it records the method,
// the payment time and a fresh receipt number.
func (b *Bill) ProcessPayment(method string) error {
	if method == "" {
		return errs.Validation("PaymentMethod", "cannot be empty")
	}
	if b.Paid {
		return errs.Validation("Bill", "bill is already paid")
	}
	b.PaymentMethod = method
	b.PaidAt = time.Now()
	b.ReceiptNumber = uuid.NewString()
	b.Paid = true
	return nil
}

// BalanceDue is the outstanding amount, zero once paid.
func (b *Bill) BalanceDue() float64 {
	if b.Paid {
		return 0
	}
	return b.Total()
}

// Clone copies the bill including its item slice.
func (b *Bill) Clone() Bill {
	c := *b
	c.Items = append([]BillItem(nil), b.Items...)
	return c
}

func (b *Bill) IsValid() bool {
	return b.ID > 0 && b.ReservationID > 0 && b.TaxRate >= 0 &&
		b.Discount >= 0 && b.Discount <= 1
}
