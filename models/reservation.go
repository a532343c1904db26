package models

import (
	"fmt"
	"time"

	"hotel-manager/errs"
)

type ReservationStatus string

const (
	ReservationConfirmed  ReservationStatus = "Confirmed"
	ReservationCheckedIn  ReservationStatus = "Checked In"
	ReservationCheckedOut ReservationStatus = "Checked Out"
	ReservationCancelled  ReservationStatus = "Cancelled"
)

var ReservationStatuses = []ReservationStatus{
	ReservationConfirmed, ReservationCheckedIn, ReservationCheckedOut, ReservationCancelled,
}

func ParseReservationStatus(s string) (ReservationStatus, error) {
	for _, st := range ReservationStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown reservation status %q", s)
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPartial PaymentStatus = "Partial"
	PaymentPaid    PaymentStatus = "Paid"
)

var PaymentStatuses = []PaymentStatus{PaymentPending, PaymentPartial, PaymentPaid}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for _, st := range PaymentStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

// Reservation books a room for a customer. RoomRate is the room's price
// snapshotted at booking time; later price changes never affect it.
// Lifecycle: Confirmed -> CheckedIn -> CheckedOut, or Confirmed ->
// Cancelled. Payment status is derived from PaidAmount and is orthogonal
// to the lifecycle.
type Reservation struct {
	ID               int
	CustomerID       int
	RoomNumber       int
	CheckIn          time.Time
	CheckOut         time.Time
	Guests           int
	RoomRate         float64
	TotalAmount      float64
	PaidAmount       float64
	Status           ReservationStatus
	PaymentStatus    PaymentStatus
	SpecialRequests  string
	ConfirmationCode string
	BookedAt         time.Time
}

// NewReservation builds a validated Reservation in Confirmed state with
// the total computed from the rate snapshot and the night count.
func NewReservation(id, customerID, roomNumber int, checkIn, checkOut time.Time,
	guests int, rate float64) (*Reservation, error) {

	switch {
	case id <= 0:
		return nil, errs.Validation("ID", "must be greater than 0")
	case customerID <= 0:
		return nil, errs.Validation("CustomerID", "must be greater than 0")
	case roomNumber <= 0:
		return nil, errs.Validation("RoomNumber", "must be greater than 0")
	case !checkOut.After(checkIn):
		return nil, errs.Validation("CheckOut", "must be after check-in")
	case guests <= 0:
		return nil, errs.Validation("Guests", "must be greater than 0")
	case rate <= 0:
		return nil, errs.Validation("RoomRate", "must be greater than 0")
	}

	r := &Reservation{
		ID:            id,
		CustomerID:    customerID,
		RoomNumber:    roomNumber,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        guests,
		RoomRate:      rate,
		Status:        ReservationConfirmed,
		PaymentStatus: PaymentPending,
		BookedAt:      time.Now(),
	}
	if r.Nights() < 1 {
		return nil, errs.Validation("CheckOut", "stay must cover at least one night")
	}
	r.TotalAmount = r.Total()
	return r, nil
}

// Nights counts whole 24-hour periods between check-in and check-out.
func (r *Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn) / (24 * time.Hour))
}

// Total is the rate snapshot times the night count.
func (r *Reservation) Total() float64 {
	return r.RoomRate * float64(r.Nights())
}

// DueAmount is what remains unpaid.
func (r *Reservation) DueAmount() float64 {
	return r.TotalAmount - r.PaidAmount
}

// DoCheckIn transitions Confirmed -> CheckedIn. Returns false without
// mutating on any other state.
func (r *Reservation) DoCheckIn() bool {
	if r.Status != ReservationConfirmed {
		return false
	}
	r.Status = ReservationCheckedIn
	return true
}

// DoCheckOut transitions CheckedIn -> CheckedOut.
func (r *Reservation) DoCheckOut() bool {
	if r.Status != ReservationCheckedIn {
		return false
	}
	r.Status = ReservationCheckedOut
	return true
}

// Cancel transitions Confirmed -> Cancelled. No other state can be
// cancelled, including Cancelled itself.
func (r *Reservation) Cancel() bool {
	if r.Status != ReservationConfirmed {
		return false
	}
	r.Status = ReservationCancelled
	return true
}

// MakePayment records a partial or full payment and refreshes the
// derived payment status.
func (r *Reservation) MakePayment(amount float64) error {
	if amount <= 0 {
		return errs.Validation("Amount", "must be greater than 0")
	}
	if amount > r.DueAmount() {
		return errs.Validation("Amount", "exceeds due amount")
	}
	r.PaidAmount += amount
	if r.PaidAmount >= r.TotalAmount {
		r.PaymentStatus = PaymentPaid
	} else if r.PaidAmount > 0 {
		r.PaymentStatus = PaymentPartial
	}
	return nil
}

// IsActive reports whether the stay is current as of now.
func (r *Reservation) IsActive(now time.Time) bool {
	return (r.Status == ReservationConfirmed || r.Status == ReservationCheckedIn) &&
		!now.Before(r.CheckIn) && !now.After(r.CheckOut)
}

// IsPast reports whether the stay window has fully elapsed.
func (r *Reservation) IsPast(now time.Time) bool {
	return now.After(r.CheckOut)
}

// SetDates moves the stay window and recomputes the total.
func (r *Reservation) SetDates(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return errs.Validation("CheckOut", "must be after check-in")
	}
	r.CheckIn = checkIn
	r.CheckOut = checkOut
	r.TotalAmount = r.Total()
	return nil
}

func (r *Reservation) SetGuests(guests int) error {
	if guests <= 0 {
		return errs.Validation("Guests", "must be greater than 0")
	}
	r.Guests = guests
	return nil
}

// SetRoomRate replaces the rate snapshot and recomputes the total.
func (r *Reservation) SetRoomRate(rate float64) error {
	if rate <= 0 {
		return errs.Validation("RoomRate", "must be greater than 0")
	}
	r.RoomRate = rate
	r.TotalAmount = r.Total()
	return nil
}

func (r *Reservation) SetSpecialRequests(requests string) {
	r.SpecialRequests = requests
}

func (r *Reservation) IsValid() bool {
	return r.ID > 0 && r.CustomerID > 0 && r.RoomNumber > 0 &&
		r.CheckIn.Before(r.CheckOut) && r.Guests > 0 &&
		r.RoomRate > 0 && r.TotalAmount > 0
}
