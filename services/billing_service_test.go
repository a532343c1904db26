package services

import (
	"errors"
	"testing"
	"time"

	"hotel-manager/errs"
)

func TestBillPipeline(t *testing.T) {
	f := newFixture(t)
	_, _, reservationID := f.book(t, 3) // room charge 100 x 3

	billID, err := f.billing.Create(reservationID, 0.10, 0)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	bill, err := f.billing.Find(billID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if bill.Subtotal() != 300 || bill.Tax() != 30 || bill.Total() != 330 {
		t.Errorf("subtotal/tax/total = %v/%v/%v, want 300/30/330",
			bill.Subtotal(), bill.Tax(), bill.Total())
	}
	if bill.BalanceDue() != 330 {
		t.Errorf("balance due before payment = %v, want 330", bill.BalanceDue())
	}

	paid, err := f.billing.ProcessPayment(billID, "Cash")
	if err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}
	if paid.BalanceDue() != 0 || paid.ReceiptNumber == "" || paid.PaidAt.IsZero() {
		t.Errorf("paid bill = %+v, want zero balance with receipt and timestamp", paid)
	}

	if _, err := f.billing.ProcessPayment(billID, "Card"); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("second payment error = %v, want validation error", err)
	}
	after, _ := f.billing.Find(billID)
	if after.PaymentMethod != "Cash" || !after.PaidAt.Equal(paid.PaidAt) {
		t.Errorf("failed second payment mutated the bill: %+v", after)
	}
}

func TestBillDiscountOnSubtotalPlusTax(t *testing.T) {
	f := newFixture(t)
	_, _, reservationID := f.book(t, 2) // room charge 100 x 2

	billID, err := f.billing.Create(reservationID, 0.10, 0.05)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	bill, _ := f.billing.Find(billID)
	// subtotal 200, tax 20, discount 5% of 220 = 11, total 209
	if bill.DiscountAmount() != 11 || bill.Total() != 209 {
		t.Errorf("discount/total = %v/%v, want 11/209", bill.DiscountAmount(), bill.Total())
	}
}

func TestPaidBillRejectsItemChanges(t *testing.T) {
	f := newFixture(t)
	_, _, reservationID := f.book(t, 1)
	billID, err := f.billing.CreateWithDefaults(reservationID)
	if err != nil {
		t.Fatalf("CreateWithDefaults: %v", err)
	}
	if err := f.billing.AddFoodCharge(billID, "Masala Dosa", 8.5, 2); err != nil {
		t.Fatalf("AddFoodCharge: %v", err)
	}
	if _, err := f.billing.ProcessPayment(billID, "Card"); err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}

	if err := f.billing.AddItem(billID, "Late fee", 10, 1); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("AddItem on paid bill error = %v, want validation error", err)
	}
	if err := f.billing.RemoveItem(billID, 0); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("RemoveItem on paid bill error = %v, want validation error", err)
	}
}

func TestUnpaidBillsAndRevenue(t *testing.T) {
	f := newFixture(t)
	_, _, first := f.book(t, 2)

	roomNumber, err := f.rooms.Add("Suite", 400, 4, nil)
	if err != nil {
		t.Fatalf("rooms.Add: %v", err)
	}
	customerID, err := f.customers.Add("Meena Iyer", "meena@example.com",
		"9876543211", "9 Beach Road", "Passport Y9")
	if err != nil {
		t.Fatalf("customers.Add: %v", err)
	}
	checkIn := time.Now().Truncate(time.Hour)
	second, err := f.reservations.Make(customerID, roomNumber, checkIn,
		checkIn.Add(24*time.Hour), 3, "")
	if err != nil {
		t.Fatalf("reservations.Make: %v", err)
	}

	paidID, err := f.billing.Create(first, 0.10, 0) // total 220
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	unpaidID, err := f.billing.Create(second.ID, 0.10, 0)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := f.billing.ProcessPayment(paidID, "Card"); err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}

	unpaid := f.billing.UnpaidBills()
	if len(unpaid) != 1 || unpaid[0].ID != unpaidID {
		t.Errorf("UnpaidBills = %v, want just bill %d", unpaid, unpaidID)
	}
	if got := f.billing.TotalRevenue(); got != 220 {
		t.Errorf("TotalRevenue = %v, want 220", got)
	}
}

func TestCreateBillUnknownReservation(t *testing.T) {
	f := newFixture(t)
	if _, err := f.billing.Create(9999, 0.10, 0); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("Create error = %v, want not-found", err)
	}
}
