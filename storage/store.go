package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"hotel-manager/errs"
	"hotel-manager/models"
	"hotel-manager/utils"
)

// Default counter seeds used when a collection is empty.
const (
	roomNumberSeed    = 101
	customerIDSeed    = 1001
	reservationIDSeed = 10001
	employeeIDSeed    = 201
	billIDSeed        = 5001
)

// Store is the single source of truth for every entity collection. It
// owns the in-memory slices and their flat files, allocates ids, and
// coordinates operations that touch more than one collection. Lookups
// hand out copies; mutations go through the Update* closure methods so
// nothing outside the store ever aliases store-owned memory.
type Store struct {
	dataDir string
	log     *logrus.Logger

	rooms        []models.Room
	customers    []models.Customer
	reservations []models.Reservation
	employees    []models.Employee
	bills        []models.Bill

	nextRoomNumber    int
	nextCustomerID    int
	nextReservationID int
	nextEmployeeID    int
	nextBillID        int
}

// Open creates the data directory if needed, loads every collection and
// reseeds the id counters past the highest id seen on disk. A missing
// file means no data yet; a malformed file aborts the open.
func Open(dataDir string, log *logrus.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errs.File("mkdir", dataDir, err)
	}
	s := &Store{dataDir: dataDir, log: log}

	if err := s.loadRooms(); err != nil {
		return nil, err
	}
	if err := s.loadCustomers(); err != nil {
		return nil, err
	}
	if err := s.loadReservations(); err != nil {
		return nil, err
	}
	if err := s.loadEmployees(); err != nil {
		return nil, err
	}
	if err := s.loadBills(); err != nil {
		return nil, err
	}
	s.reseedCounters()

	log.WithFields(logrus.Fields{
		"dir":          dataDir,
		"rooms":        len(s.rooms),
		"customers":    len(s.customers),
		"reservations": len(s.reservations),
		"employees":    len(s.employees),
		"bills":        len(s.bills),
	}).Info("store opened")
	return s, nil
}

// reseedCounters sets every counter to max(default seed, highest id
// seen + 1), so ids are never reused across restarts even if records
// were reordered or removed.
func (s *Store) reseedCounters() {
	s.nextRoomNumber = roomNumberSeed
	for _, r := range s.rooms {
		if r.Number >= s.nextRoomNumber {
			s.nextRoomNumber = r.Number + 1
		}
	}
	s.nextCustomerID = customerIDSeed
	for _, c := range s.customers {
		if c.ID >= s.nextCustomerID {
			s.nextCustomerID = c.ID + 1
		}
	}
	s.nextReservationID = reservationIDSeed
	for _, r := range s.reservations {
		if r.ID >= s.nextReservationID {
			s.nextReservationID = r.ID + 1
		}
	}
	s.nextEmployeeID = employeeIDSeed
	for _, e := range s.employees {
		if e.ID >= s.nextEmployeeID {
			s.nextEmployeeID = e.ID + 1
		}
	}
	s.nextBillID = billIDSeed
	for _, b := range s.bills {
		if b.ID >= s.nextBillID {
			s.nextBillID = b.ID + 1
		}
	}
}

// DataDir returns the directory holding the data files.
func (s *Store) DataDir() string { return s.dataDir }

// ---------------------------------------------------------------------
// Rooms
// ---------------------------------------------------------------------

func (s *Store) roomIndex(number int) int {
	for i := range s.rooms {
		if s.rooms[i].Number == number {
			return i
		}
	}
	return -1
}

// AddRoom constructs a room under the next free number, persists the
// collection and returns the assigned number.
func (s *Store) AddRoom(roomType models.RoomType, price float64, capacity int, features []string) (int, error) {
	room, err := models.NewRoom(s.nextRoomNumber, roomType, price, capacity, features)
	if err != nil {
		return 0, err
	}
	s.rooms = append(s.rooms, *room)
	if err := s.saveRooms(); err != nil {
		s.rooms = s.rooms[:len(s.rooms)-1]
		return 0, err
	}
	s.nextRoomNumber++
	return room.Number, nil
}

// FindRoom returns a copy of the room. Absence is a normal result.
func (s *Store) FindRoom(number int) (models.Room, bool) {
	if i := s.roomIndex(number); i >= 0 {
		return s.rooms[i].Clone(), true
	}
	return models.Room{}, false
}

// Rooms returns a copy of every room.
func (s *Store) Rooms() []models.Room {
	out := make([]models.Room, 0, len(s.rooms))
	for i := range s.rooms {
		out = append(out, s.rooms[i].Clone())
	}
	return out
}

// UpdateRoom applies fn to the stored room and persists the collection.
// If fn or the write fails the room is restored untouched.
func (s *Store) UpdateRoom(number int, fn func(*models.Room) error) error {
	i := s.roomIndex(number)
	if i < 0 {
		return errs.NotFound("room", number)
	}
	snapshot := s.rooms[i].Clone()
	if err := fn(&s.rooms[i]); err != nil {
		s.rooms[i] = snapshot
		return err
	}
	if err := s.saveRooms(); err != nil {
		s.rooms[i] = snapshot
		return err
	}
	return nil
}

func (s *Store) RoomCount() int { return len(s.rooms) }

// ---------------------------------------------------------------------
// Customers
// ---------------------------------------------------------------------

func (s *Store) customerIndex(id int) int {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return i
		}
	}
	return -1
}

// AddCustomer registers a customer under the next free id.
func (s *Store) AddCustomer(name, email, phone, address, idProof string) (int, error) {
	customer, err := models.NewCustomer(s.nextCustomerID, name, email, phone, address, idProof)
	if err != nil {
		return 0, err
	}
	s.customers = append(s.customers, *customer)
	if err := s.saveCustomers(); err != nil {
		s.customers = s.customers[:len(s.customers)-1]
		return 0, err
	}
	s.nextCustomerID++
	return customer.ID, nil
}

func (s *Store) FindCustomer(id int) (models.Customer, bool) {
	if i := s.customerIndex(id); i >= 0 {
		return s.customers[i], true
	}
	return models.Customer{}, false
}

func (s *Store) Customers() []models.Customer {
	return append([]models.Customer(nil), s.customers...)
}

func (s *Store) UpdateCustomer(id int, fn func(*models.Customer) error) error {
	i := s.customerIndex(id)
	if i < 0 {
		return errs.NotFound("customer", id)
	}
	snapshot := s.customers[i]
	if err := fn(&s.customers[i]); err != nil {
		s.customers[i] = snapshot
		return err
	}
	if err := s.saveCustomers(); err != nil {
		s.customers[i] = snapshot
		return err
	}
	return nil
}

func (s *Store) CustomerCount() int { return len(s.customers) }

// ---------------------------------------------------------------------
// Employees
// ---------------------------------------------------------------------

func (s *Store) employeeIndex(id int) int {
	for i := range s.employees {
		if s.employees[i].ID == id {
			return i
		}
	}
	return -1
}

// AddEmployee allocates the next id and hands it to build, which
// constructs the employee. Construction failures allocate nothing.
func (s *Store) AddEmployee(build func(id int) (*models.Employee, error)) (int, error) {
	employee, err := build(s.nextEmployeeID)
	if err != nil {
		return 0, err
	}
	if employee.ID != s.nextEmployeeID {
		return 0, errs.Validation("ID", "must keep the assigned id")
	}
	s.employees = append(s.employees, *employee)
	if err := s.saveEmployees(); err != nil {
		s.employees = s.employees[:len(s.employees)-1]
		return 0, err
	}
	s.nextEmployeeID++
	return employee.ID, nil
}

func (s *Store) FindEmployee(id int) (models.Employee, bool) {
	if i := s.employeeIndex(id); i >= 0 {
		return s.employees[i], true
	}
	return models.Employee{}, false
}

func (s *Store) Employees() []models.Employee {
	return append([]models.Employee(nil), s.employees...)
}

func (s *Store) UpdateEmployee(id int, fn func(*models.Employee) error) error {
	i := s.employeeIndex(id)
	if i < 0 {
		return errs.NotFound("employee", id)
	}
	snapshot := s.employees[i]
	if err := fn(&s.employees[i]); err != nil {
		s.employees[i] = snapshot
		return err
	}
	if err := s.saveEmployees(); err != nil {
		s.employees[i] = snapshot
		return err
	}
	return nil
}

func (s *Store) EmployeeCount() int { return len(s.employees) }

// ---------------------------------------------------------------------
// Reservations
// ---------------------------------------------------------------------

func (s *Store) reservationIndex(id int) int {
	for i := range s.reservations {
		if s.reservations[i].ID == id {
			return i
		}
	}
	return -1
}

// MakeReservation books a room for a customer. The customer and room
// must exist, the room must be Available and fit the guest count. On
// success the room price is snapshotted as the rate, the reservation is
// created Confirmed with a fresh confirmation code, the room flips to
// Reserved, and both collections are persisted. A failed write rolls
// back the in-memory change so memory never diverges from disk.
func (s *Store) MakeReservation(customerID, roomNumber int, checkIn, checkOut time.Time,
	guests int, requests string) (int, error) {

	if s.customerIndex(customerID) < 0 {
		return 0, errs.NotFound("customer", customerID)
	}
	ri := s.roomIndex(roomNumber)
	if ri < 0 {
		return 0, errs.NotFound("room", roomNumber)
	}
	room := &s.rooms[ri]
	if !room.IsAvailable() {
		return 0, errs.Conflict("room %d is %s", roomNumber, room.Status)
	}
	if !room.CanAccommodate(guests) {
		return 0, errs.Validation("Guests", fmt.Sprintf("room %d sleeps at most %d", roomNumber, room.Capacity))
	}

	reservation, err := models.NewReservation(s.nextReservationID, customerID, roomNumber,
		checkIn, checkOut, guests, room.PricePerNight)
	if err != nil {
		return 0, err
	}
	code, err := utils.NewConfirmationCode()
	if err != nil {
		return 0, err
	}
	reservation.ConfirmationCode = code
	reservation.SetSpecialRequests(requests)

	prevStatus := room.Status
	room.Status = models.RoomReserved
	s.reservations = append(s.reservations, *reservation)

	rollback := func() {
		s.reservations = s.reservations[:len(s.reservations)-1]
		s.rooms[ri].Status = prevStatus
	}
	if err := s.saveReservations(); err != nil {
		rollback()
		return 0, err
	}
	if err := s.saveRooms(); err != nil {
		rollback()
		if rerr := s.saveReservations(); rerr != nil {
			s.log.WithError(rerr).Error("rollback write failed, reservations file stale")
		}
		return 0, err
	}
	s.nextReservationID++
	return reservation.ID, nil
}

func (s *Store) FindReservation(id int) (models.Reservation, bool) {
	if i := s.reservationIndex(id); i >= 0 {
		return s.reservations[i], true
	}
	return models.Reservation{}, false
}

func (s *Store) Reservations() []models.Reservation {
	return append([]models.Reservation(nil), s.reservations...)
}

func (s *Store) UpdateReservation(id int, fn func(*models.Reservation) error) error {
	i := s.reservationIndex(id)
	if i < 0 {
		return errs.NotFound("reservation", id)
	}
	snapshot := s.reservations[i]
	if err := fn(&s.reservations[i]); err != nil {
		s.reservations[i] = snapshot
		return err
	}
	if err := s.saveReservations(); err != nil {
		s.reservations[i] = snapshot
		return err
	}
	return nil
}

func (s *Store) ReservationCount() int { return len(s.reservations) }

// transitionReservation drives one lifecycle step and mirrors the room
// status. A disallowed transition returns false with no mutation.
func (s *Store) transitionReservation(id int, step func(*models.Reservation) bool,
	roomStatus models.RoomStatus) (bool, error) {

	i := s.reservationIndex(id)
	if i < 0 {
		return false, nil
	}
	snapshot := s.reservations[i]
	if !step(&s.reservations[i]) {
		return false, nil
	}

	ri := s.roomIndex(snapshot.RoomNumber)
	var prevRoomStatus models.RoomStatus
	if ri >= 0 {
		prevRoomStatus = s.rooms[ri].Status
		s.rooms[ri].Status = roomStatus
	}

	rollback := func() {
		s.reservations[i] = snapshot
		if ri >= 0 {
			s.rooms[ri].Status = prevRoomStatus
		}
	}
	if err := s.saveReservations(); err != nil {
		rollback()
		return false, err
	}
	if ri >= 0 {
		if err := s.saveRooms(); err != nil {
			rollback()
			if rerr := s.saveReservations(); rerr != nil {
				s.log.WithError(rerr).Error("rollback write failed, reservations file stale")
			}
			return false, err
		}
	}
	return true, nil
}

// CancelReservation frees the room when the reservation is still
// Confirmed. Checked-in and checked-out stays cannot be cancelled.
func (s *Store) CancelReservation(id int) (bool, error) {
	return s.transitionReservation(id, (*models.Reservation).Cancel, models.RoomAvailable)
}

// CheckIn moves a Confirmed reservation to Checked In and occupies the
// room.
func (s *Store) CheckIn(id int) (bool, error) {
	return s.transitionReservation(id, (*models.Reservation).DoCheckIn, models.RoomOccupied)
}

// CheckOut moves a Checked In reservation to Checked Out and frees the
// room.
func (s *Store) CheckOut(id int) (bool, error) {
	return s.transitionReservation(id, (*models.Reservation).DoCheckOut, models.RoomAvailable)
}

// ---------------------------------------------------------------------
// Bills
// ---------------------------------------------------------------------

func (s *Store) billIndex(id int) int {
	for i := range s.bills {
		if s.bills[i].ID == id {
			return i
		}
	}
	return -1
}

// CreateBill opens an empty bill against an existing reservation.
func (s *Store) CreateBill(reservationID int, taxRate, discount float64) (int, error) {
	if s.reservationIndex(reservationID) < 0 {
		return 0, errs.NotFound("reservation", reservationID)
	}
	bill, err := models.NewBill(s.nextBillID, reservationID, taxRate, discount)
	if err != nil {
		return 0, err
	}
	s.bills = append(s.bills, *bill)
	if err := s.saveBills(); err != nil {
		s.bills = s.bills[:len(s.bills)-1]
		return 0, err
	}
	s.nextBillID++
	return bill.ID, nil
}

func (s *Store) FindBill(id int) (models.Bill, bool) {
	if i := s.billIndex(id); i >= 0 {
		return s.bills[i].Clone(), true
	}
	return models.Bill{}, false
}

func (s *Store) Bills() []models.Bill {
	out := make([]models.Bill, 0, len(s.bills))
	for i := range s.bills {
		out = append(out, s.bills[i].Clone())
	}
	return out
}

func (s *Store) UpdateBill(id int, fn func(*models.Bill) error) error {
	i := s.billIndex(id)
	if i < 0 {
		return errs.NotFound("bill", id)
	}
	snapshot := s.bills[i].Clone()
	if err := fn(&s.bills[i]); err != nil {
		s.bills[i] = snapshot
		return err
	}
	if err := s.saveBills(); err != nil {
		s.bills[i] = snapshot
		return err
	}
	return nil
}

func (s *Store) BillCount() int { return len(s.bills) }

// ---------------------------------------------------------------------
// Whole-store operations
// ---------------------------------------------------------------------

// SaveAll rewrites every data file.
func (s *Store) SaveAll() error {
	if err := s.saveRooms(); err != nil {
		return err
	}
	if err := s.saveCustomers(); err != nil {
		return err
	}
	if err := s.saveReservations(); err != nil {
		return err
	}
	if err := s.saveEmployees(); err != nil {
		return err
	}
	return s.saveBills()
}

// Backup copies the data files into a timestamped directory under dir
// and returns its path. Files that do not exist yet are skipped.
func (s *Store) Backup(dir string) (string, error) {
	dest := filepath.Join(dir, "backup-"+time.Now().Format("20060102-150405"))
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return "", errs.File("mkdir", dest, err)
	}
	for _, name := range dataFiles {
		src := s.filePath(name)
		data, err := os.ReadFile(src)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return "", errs.File("read", src, err)
		}
		target := filepath.Join(dest, name)
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return "", errs.File("write", target, err)
		}
	}
	s.log.WithField("dir", dest).Info("backup written")
	return dest, nil
}
