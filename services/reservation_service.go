package services

import (
	"time"

	"github.com/sirupsen/logrus"

	"hotel-manager/errs"
	"hotel-manager/models"
	"hotel-manager/storage"
)

// ReservationService drives the booking lifecycle: make, cancel, check
// in, check out, plus the lookups the front desk works from.
type ReservationService struct {
	store *storage.Store
	log   *logrus.Logger
}

func NewReservationService(store *storage.Store, log *logrus.Logger) *ReservationService {
	return &ReservationService{store: store, log: log}
}

// Make books a room and returns the created reservation, confirmation
// code included.
func (s *ReservationService) Make(customerID, roomNumber int, checkIn, checkOut time.Time,
	guests int, requests string) (models.Reservation, error) {

	id, err := s.store.MakeReservation(customerID, roomNumber, checkIn, checkOut, guests, requests)
	if err != nil {
		return models.Reservation{}, err
	}
	reservation, _ := s.store.FindReservation(id)
	s.log.WithFields(logrus.Fields{
		"reservation": id,
		"customer":    customerID,
		"room":        roomNumber,
		"nights":      reservation.Nights(),
	}).Info("reservation created")
	return reservation, nil
}

// Find returns the reservation or a not-found error.
func (s *ReservationService) Find(id int) (models.Reservation, error) {
	reservation, ok := s.store.FindReservation(id)
	if !ok {
		return models.Reservation{}, errs.NotFound("reservation", id)
	}
	return reservation, nil
}

// FindByCode looks a reservation up by its confirmation code.
func (s *ReservationService) FindByCode(code string) (models.Reservation, bool) {
	for _, r := range s.store.Reservations() {
		if r.ConfirmationCode == code {
			return r, true
		}
	}
	return models.Reservation{}, false
}

// All returns every reservation.
func (s *ReservationService) All() []models.Reservation {
	return s.store.Reservations()
}

// Cancel frees the room when the reservation is still Confirmed.
func (s *ReservationService) Cancel(id int) (bool, error) {
	ok, err := s.store.CancelReservation(id)
	if err != nil {
		return false, err
	}
	if ok {
		s.log.WithField("reservation", id).Info("reservation cancelled")
	}
	return ok, nil
}

// CheckIn moves the guest in and occupies the room.
func (s *ReservationService) CheckIn(id int) (bool, error) {
	ok, err := s.store.CheckIn(id)
	if err != nil {
		return false, err
	}
	if ok {
		s.log.WithField("reservation", id).Info("guest checked in")
	}
	return ok, nil
}

// CheckOut completes the stay, frees the room and records the visit on
// the customer's profile.
func (s *ReservationService) CheckOut(id int) (bool, error) {
	reservation, found := s.store.FindReservation(id)
	ok, err := s.store.CheckOut(id)
	if err != nil || !ok {
		return ok, err
	}
	if found {
		if verr := s.store.UpdateCustomer(reservation.CustomerID, func(c *models.Customer) error {
			return c.AddVisit(reservation.TotalAmount)
		}); verr != nil {
			s.log.WithError(verr).WithField("customer", reservation.CustomerID).
				Warn("could not record visit on customer profile")
		}
	}
	s.log.WithField("reservation", id).Info("guest checked out")
	return true, nil
}

// RecordPayment applies a partial or full payment against the
// reservation total.
func (s *ReservationService) RecordPayment(id int, amount float64) error {
	err := s.store.UpdateReservation(id, func(r *models.Reservation) error {
		return r.MakePayment(amount)
	})
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"reservation": id,
		"amount":      amount,
	}).Info("reservation payment recorded")
	return nil
}

// FindByCustomer lists every reservation the customer has made.
func (s *ReservationService) FindByCustomer(customerID int) []models.Reservation {
	var out []models.Reservation
	for _, r := range s.store.Reservations() {
		if r.CustomerID == customerID {
			out = append(out, r)
		}
	}
	return out
}

// Active lists reservations whose stay window covers now and whose
// status still holds the room.
func (s *ReservationService) Active(now time.Time) []models.Reservation {
	var out []models.Reservation
	for _, r := range s.store.Reservations() {
		if r.IsActive(now) {
			out = append(out, r)
		}
	}
	return out
}

// TodayCheckIns lists Confirmed reservations whose check-in date falls
// on the given day.
func (s *ReservationService) TodayCheckIns(now time.Time) []models.Reservation {
	var out []models.Reservation
	for _, r := range s.store.Reservations() {
		if r.Status == models.ReservationConfirmed && sameDay(r.CheckIn, now) {
			out = append(out, r)
		}
	}
	return out
}

// TodayCheckOuts lists Checked In reservations due to leave on the
// given day.
func (s *ReservationService) TodayCheckOuts(now time.Time) []models.Reservation {
	var out []models.Reservation
	for _, r := range s.store.Reservations() {
		if r.Status == models.ReservationCheckedIn && sameDay(r.CheckOut, now) {
			out = append(out, r)
		}
	}
	return out
}

// SearchByDateRange lists reservations whose stay overlaps the window.
// Both the stay and the window are half-open intervals, [CheckIn,
// CheckOut) and [from, to), so a stay that checks out exactly at from
// or checks in exactly at to does not match. That keeps back-to-back
// stays on either side of a boundary out of each other's windows.
func (s *ReservationService) SearchByDateRange(from, to time.Time) []models.Reservation {
	var out []models.Reservation
	for _, r := range s.store.Reservations() {
		if r.CheckIn.Before(to) && r.CheckOut.After(from) {
			out = append(out, r)
		}
	}
	return out
}

func (s *ReservationService) Count() int { return s.store.ReservationCount() }

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
