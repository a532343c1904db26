package controllers

import (
	"bufio"
	"fmt"
	"time"

	"hotel-manager/middleware"
	"hotel-manager/models"
	"hotel-manager/services"
	"hotel-manager/utils"
)

// ReservationController is the booking and front-desk screen.
type ReservationController struct {
	reader       *bufio.Reader
	reservations *services.ReservationService
	rooms        *services.RoomService
	audit        *middleware.Audit
}

func NewReservationController(reader *bufio.Reader, reservations *services.ReservationService,
	rooms *services.RoomService, audit *middleware.Audit) *ReservationController {

	return &ReservationController{
		reader:       reader,
		reservations: reservations,
		rooms:        rooms,
		audit:        audit,
	}
}

func (c *ReservationController) Run(session Session) {
	for {
		fmt.Println("\n--- Reservations ---")
		fmt.Println("1. Make Reservation")
		fmt.Println("2. View All Reservations")
		fmt.Println("3. View Reservation Details")
		fmt.Println("4. Check In")
		fmt.Println("5. Check Out")
		fmt.Println("6. Cancel Reservation")
		fmt.Println("7. Record Payment")
		fmt.Println("8. Today's Arrivals / Departures")
		fmt.Println("9. Search by Date Range")
		fmt.Println("0. Back")

		choice, err := utils.PromptInt(c.reader, "Choice: ", 0, 9)
		if err != nil || choice == 0 {
			return
		}
		switch choice {
		case 1:
			c.makeReservation(session)
		case 2:
			c.list(c.reservations.All())
		case 3:
			c.details()
		case 4:
			c.transition(session, "reservation.checkin", "Checked in.", c.reservations.CheckIn)
		case 5:
			c.transition(session, "reservation.checkout", "Checked out.", c.reservations.CheckOut)
		case 6:
			c.transition(session, "reservation.cancel", "Reservation cancelled.", c.reservations.Cancel)
		case 7:
			c.recordPayment(session)
		case 8:
			c.today()
		case 9:
			c.searchByDates()
		}
	}
}

func (c *ReservationController) makeReservation(session Session) {
	customerID, err := utils.PromptInt(c.reader, "Customer id: ", 1, 9999999)
	if err != nil {
		return
	}
	guests, err := utils.PromptInt(c.reader, "Guests: ", 1, 20)
	if err != nil {
		return
	}

	available := c.rooms.AvailableRooms("", guests)
	if len(available) == 0 {
		fmt.Println("No available rooms for that party size.")
		return
	}
	fmt.Println("Available rooms:")
	for _, r := range available {
		fmt.Printf("  %d - %s, %s/night, sleeps %d\n",
			r.Number, r.Type, utils.FormatCurrency(r.PricePerNight), r.Capacity)
	}

	roomNumber, err := utils.PromptInt(c.reader, "Room number: ", 1, 99999)
	if err != nil {
		return
	}
	checkIn, err := utils.PromptDate(c.reader, "Check-in")
	if err != nil {
		return
	}
	checkOut, err := utils.PromptDate(c.reader, "Check-out")
	if err != nil {
		return
	}
	requests, err := utils.PromptString(c.reader, "Special requests (optional): ", true)
	if err != nil {
		return
	}

	var reservation models.Reservation
	err = c.audit.Record(session.Employee.ID, "reservation.make", roomNumber, func() error {
		var err error
		reservation, err = c.reservations.Make(customerID, roomNumber, checkIn, checkOut, guests, requests)
		return err
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Reservation %d confirmed. Code %s, %d night(s), total %s.\n",
		reservation.ID, reservation.ConfirmationCode, reservation.Nights(),
		utils.FormatCurrency(reservation.TotalAmount))
}

func (c *ReservationController) list(reservations []models.Reservation) {
	if len(reservations) == 0 {
		fmt.Println("No reservations found.")
		return
	}
	fmt.Printf("%-8s %-10s %-6s %-12s %-12s %-12s %-9s %s\n",
		"ID", "Customer", "Room", "Check-in", "Check-out", "Status", "Payment", "Total")
	for _, r := range reservations {
		fmt.Printf("%-8d %-10d %-6d %-12s %-12s %-12s %-9s %s\n",
			r.ID, r.CustomerID, r.RoomNumber,
			r.CheckIn.Format(utils.DateLayout), r.CheckOut.Format(utils.DateLayout),
			r.Status, r.PaymentStatus, utils.FormatCurrency(r.TotalAmount))
	}
}

func (c *ReservationController) details() {
	id, err := utils.PromptInt(c.reader, "Reservation id: ", 1, 9999999)
	if err != nil {
		return
	}
	r, err := c.reservations.Find(id)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("\nReservation:  %d (%s)\n", r.ID, r.ConfirmationCode)
	fmt.Printf("Customer:     %d\n", r.CustomerID)
	fmt.Printf("Room:         %d at %s/night\n", r.RoomNumber, utils.FormatCurrency(r.RoomRate))
	fmt.Printf("Stay:         %s to %s (%d nights)\n",
		r.CheckIn.Format(utils.DateLayout), r.CheckOut.Format(utils.DateLayout), r.Nights())
	fmt.Printf("Guests:       %d\n", r.Guests)
	fmt.Printf("Status:       %s\n", r.Status)
	fmt.Printf("Payment:      %s (%s of %s paid)\n", r.PaymentStatus,
		utils.FormatCurrency(r.PaidAmount), utils.FormatCurrency(r.TotalAmount))
	if r.SpecialRequests != "" {
		fmt.Printf("Requests:     %s\n", r.SpecialRequests)
	}
	fmt.Printf("Booked:       %s\n", r.BookedAt.Format(utils.DateLayout))
}

func (c *ReservationController) transition(session Session, operation, success string,
	step func(int) (bool, error)) {

	id, err := utils.PromptInt(c.reader, "Reservation id: ", 1, 9999999)
	if err != nil {
		return
	}
	var ok bool
	err = c.audit.Record(session.Employee.ID, operation, id, func() error {
		var err error
		ok, err = step(id)
		return err
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if !ok {
		fmt.Println("Not possible from the reservation's current state.")
		return
	}
	fmt.Println(success)
}

func (c *ReservationController) recordPayment(session Session) {
	id, err := utils.PromptInt(c.reader, "Reservation id: ", 1, 9999999)
	if err != nil {
		return
	}
	r, err := c.reservations.Find(id)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if r.DueAmount() <= 0 {
		fmt.Println("Nothing due on this reservation.")
		return
	}
	fmt.Printf("Due: %s\n", utils.FormatCurrency(r.DueAmount()))
	amount, err := utils.PromptFloat(c.reader, "Amount: ", 0.01)
	if err != nil {
		return
	}

	err = c.audit.Record(session.Employee.ID, "reservation.payment", id, func() error {
		return c.reservations.RecordPayment(id, amount)
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Payment recorded.")
}

func (c *ReservationController) today() {
	now := time.Now()
	fmt.Println("\nArrivals today:")
	c.list(c.reservations.TodayCheckIns(now))
	fmt.Println("\nDepartures today:")
	c.list(c.reservations.TodayCheckOuts(now))
}

func (c *ReservationController) searchByDates() {
	from, err := utils.PromptDate(c.reader, "From")
	if err != nil {
		return
	}
	to, err := utils.PromptDate(c.reader, "To")
	if err != nil {
		return
	}
	if !to.After(from) {
		fmt.Println("The end date must be after the start date.")
		return
	}
	c.list(c.reservations.SearchByDateRange(from, to))
}
