package services

import (
	"github.com/sirupsen/logrus"

	"hotel-manager/errs"
	"hotel-manager/models"
	"hotel-manager/storage"
)

// BillingService creates bills against reservations, manages line items
// and settles payments.
type BillingService struct {
	store          *storage.Store
	log            *logrus.Logger
	defaultTaxRate float64
}

func NewBillingService(store *storage.Store, log *logrus.Logger, defaultTaxRate float64) *BillingService {
	return &BillingService{store: store, log: log, defaultTaxRate: defaultTaxRate}
}

// DefaultTaxRate returns the configured tax rate for new bills.
func (s *BillingService) DefaultTaxRate() float64 { return s.defaultTaxRate }

// Create opens a bill for the reservation with the room charge already
// itemized from the reservation's rate snapshot and night count.
func (s *BillingService) Create(reservationID int, taxRate, discount float64) (int, error) {
	reservation, ok := s.store.FindReservation(reservationID)
	if !ok {
		return 0, errs.NotFound("reservation", reservationID)
	}
	id, err := s.store.CreateBill(reservationID, taxRate, discount)
	if err != nil {
		return 0, err
	}
	if err := s.store.UpdateBill(id, func(b *models.Bill) error {
		return b.AddRoomCharge(reservation.RoomRate, reservation.Nights())
	}); err != nil {
		return 0, err
	}
	s.log.WithFields(logrus.Fields{
		"bill":        id,
		"reservation": reservationID,
	}).Info("bill created")
	return id, nil
}

// CreateWithDefaults opens a bill with the configured tax rate and no
// discount.
func (s *BillingService) CreateWithDefaults(reservationID int) (int, error) {
	return s.Create(reservationID, s.defaultTaxRate, 0)
}

// Find returns the bill or a not-found error.
func (s *BillingService) Find(id int) (models.Bill, error) {
	bill, ok := s.store.FindBill(id)
	if !ok {
		return models.Bill{}, errs.NotFound("bill", id)
	}
	return bill, nil
}

// FindByReservation returns the first bill raised for a reservation.
func (s *BillingService) FindByReservation(reservationID int) (models.Bill, bool) {
	for _, b := range s.store.Bills() {
		if b.ReservationID == reservationID {
			return b, true
		}
	}
	return models.Bill{}, false
}

// All returns every bill.
func (s *BillingService) All() []models.Bill {
	return s.store.Bills()
}

// AddItem appends a line item to an unpaid bill.
func (s *BillingService) AddItem(billID int, description string, amount float64, quantity int) error {
	return s.store.UpdateBill(billID, func(b *models.Bill) error {
		if b.Paid {
			return errs.Validation("Bill", "cannot add items to a paid bill")
		}
		return b.AddItem(description, amount, quantity)
	})
}

// AddFoodCharge itemizes a restaurant order on the bill.
func (s *BillingService) AddFoodCharge(billID int, item string, amount float64, quantity int) error {
	return s.store.UpdateBill(billID, func(b *models.Bill) error {
		if b.Paid {
			return errs.Validation("Bill", "cannot add items to a paid bill")
		}
		return b.AddFoodCharge(item, amount, quantity)
	})
}

// AddServiceCharge itemizes an additional service on the bill.
func (s *BillingService) AddServiceCharge(billID int, service string, amount float64) error {
	return s.store.UpdateBill(billID, func(b *models.Bill) error {
		if b.Paid {
			return errs.Validation("Bill", "cannot add items to a paid bill")
		}
		return b.AddServiceCharge(service, amount)
	})
}

// RemoveItem deletes a line item from an unpaid bill.
func (s *BillingService) RemoveItem(billID, index int) error {
	return s.store.UpdateBill(billID, func(b *models.Bill) error {
		if b.Paid {
			return errs.Validation("Bill", "cannot change a paid bill")
		}
		return b.RemoveItem(index)
	})
}

// ProcessPayment settles the bill in full and returns the paid copy
// with its receipt number.
func (s *BillingService) ProcessPayment(billID int, method string) (models.Bill, error) {
	err := s.store.UpdateBill(billID, func(b *models.Bill) error {
		return b.ProcessPayment(method)
	})
	if err != nil {
		return models.Bill{}, err
	}
	bill, _ := s.store.FindBill(billID)
	s.log.WithFields(logrus.Fields{
		"bill":    billID,
		"method":  method,
		"total":   bill.Total(),
		"receipt": bill.ReceiptNumber,
	}).Info("payment processed")
	return bill, nil
}

// UnpaidBills lists every bill still awaiting payment.
func (s *BillingService) UnpaidBills() []models.Bill {
	var out []models.Bill
	for _, b := range s.store.Bills() {
		if !b.Paid {
			out = append(out, b)
		}
	}
	return out
}

// TotalRevenue sums the totals of all paid bills.
func (s *BillingService) TotalRevenue() float64 {
	var total float64
	for _, b := range s.store.Bills() {
		if b.Paid {
			total += b.Total()
		}
	}
	return total
}

func (s *BillingService) Count() int { return s.store.BillCount() }
