package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"hotel-manager/errs"
	"hotel-manager/models"
)

// Data file names, one collection per file.
const (
	roomsFile        = "rooms.dat"
	customersFile    = "customers.dat"
	reservationsFile = "reservations.dat"
	employeesFile    = "employees.dat"
	billsFile        = "bills.dat"
)

var dataFiles = []string{roomsFile, customersFile, reservationsFile, employeesFile, billsFile}

// writeLines writes a whole data file through a temp file and a rename,
// so a failed write never leaves a truncated file behind.
func writeLines(path string, lines []string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return errs.File("write", path, err)
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			os.Remove(tmp)
			return errs.File("write", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return errs.File("write", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errs.File("write", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errs.File("write", path, err)
	}
	return nil
}

// readLines loads a data file. A missing file is not an error: it means
// no data yet. A present but malformed file fails loudly.
func readLines(path string) (lines []string, exists bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.File("read", path, err)
	}
	raw := strings.Split(string(data), "\n")
	for len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	return raw, true, nil
}

// parseCount reads the leading record count line.
func parseCount(path string, lines []string) (int, error) {
	if len(lines) == 0 {
		return 0, errs.Corrupted(path, 1, "missing record count")
	}
	count, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || count < 0 {
		return 0, errs.Corrupted(path, 1, fmt.Sprintf("invalid record count %q", lines[0]))
	}
	return count, nil
}

// fieldReader walks the fields of one decoded record and remembers the
// first failure, so decoders stay linear instead of error-checking every
// field.
type fieldReader struct {
	path   string
	line   int
	fields []string
	pos    int
	err    error
}

func newFieldReader(path string, line int, raw string) *fieldReader {
	fields, err := splitRecord(raw)
	fr := &fieldReader{path: path, line: line, fields: fields}
	if err != nil {
		fr.err = errs.Corrupted(path, line, err.Error())
	}
	return fr
}

func (f *fieldReader) fail(reason string) {
	if f.err == nil {
		f.err = errs.Corrupted(f.path, f.line, reason)
	}
}

func (f *fieldReader) next() string {
	if f.err != nil {
		return ""
	}
	if f.pos >= len(f.fields) {
		f.fail("record has too few fields")
		return ""
	}
	v := f.fields[f.pos]
	f.pos++
	return v
}

func (f *fieldReader) Str() string { return f.next() }

func (f *fieldReader) Int() int {
	raw := f.next()
	if f.err != nil {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		f.fail(fmt.Sprintf("invalid integer %q", raw))
	}
	return n
}

func (f *fieldReader) Float() float64 {
	raw := f.next()
	if f.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		f.fail(fmt.Sprintf("invalid number %q", raw))
	}
	return v
}

func (f *fieldReader) Bool() bool {
	raw := f.next()
	if f.err != nil {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		f.fail(fmt.Sprintf("invalid boolean %q", raw))
	}
	return b
}

// Time decodes unix seconds; zero means "unset".
func (f *fieldReader) Time() time.Time {
	raw := f.next()
	if f.err != nil {
		return time.Time{}
	}
	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f.fail(fmt.Sprintf("invalid timestamp %q", raw))
		return time.Time{}
	}
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}

func (f *fieldReader) done() error {
	if f.err == nil && f.pos != len(f.fields) {
		f.fail("record has too many fields")
	}
	return f.err
}

func encodeTime(t time.Time) string {
	if t.IsZero() {
		return "0"
	}
	return formatInt64(t.Unix())
}

// ---------------------------------------------------------------------
// Per-entity records. Field order is the on-disk contract.
// ---------------------------------------------------------------------

// room: number|type|status|price|capacity|featureCount|feature...
func encodeRoom(r models.Room) string {
	fields := []string{
		formatInt(r.Number),
		string(r.Type),
		string(r.Status),
		formatFloat(r.PricePerNight),
		formatInt(r.Capacity),
		formatInt(len(r.Features)),
	}
	fields = append(fields, r.Features...)
	return joinRecord(fields)
}

func decodeRoom(fr *fieldReader) (models.Room, error) {
	var r models.Room
	r.Number = fr.Int()

	if t, err := models.ParseRoomType(fr.Str()); err != nil {
		fr.fail(err.Error())
	} else {
		r.Type = t
	}
	if st, err := models.ParseRoomStatus(fr.Str()); err != nil {
		fr.fail(err.Error())
	} else {
		r.Status = st
	}

	r.PricePerNight = fr.Float()
	r.Capacity = fr.Int()
	featureCount := fr.Int()
	for i := 0; i < featureCount && fr.err == nil; i++ {
		r.Features = append(r.Features, fr.Str())
	}
	return r, fr.done()
}

// customer: id|name|email|phone|address|idProof|registered|visits|spent
func encodeCustomer(c models.Customer) string {
	return joinRecord([]string{
		formatInt(c.ID),
		c.Name,
		c.Email,
		c.Phone,
		c.Address,
		c.IDProof,
		encodeTime(c.RegisteredAt),
		formatInt(c.TotalVisits),
		formatFloat(c.TotalSpent),
	})
}

func decodeCustomer(fr *fieldReader) (models.Customer, error) {
	var c models.Customer
	c.ID = fr.Int()
	c.Name = fr.Str()
	c.Email = fr.Str()
	c.Phone = fr.Str()
	c.Address = fr.Str()
	c.IDProof = fr.Str()
	c.RegisteredAt = fr.Time()
	c.TotalVisits = fr.Int()
	c.TotalSpent = fr.Float()
	return c, fr.done()
}

// reservation: id|customer|room|checkIn|checkOut|guests|rate|total|paid|
//              status|paymentStatus|requests|booked|confirmationCode
func encodeReservation(r models.Reservation) string {
	return joinRecord([]string{
		formatInt(r.ID),
		formatInt(r.CustomerID),
		formatInt(r.RoomNumber),
		encodeTime(r.CheckIn),
		encodeTime(r.CheckOut),
		formatInt(r.Guests),
		formatFloat(r.RoomRate),
		formatFloat(r.TotalAmount),
		formatFloat(r.PaidAmount),
		string(r.Status),
		string(r.PaymentStatus),
		r.SpecialRequests,
		encodeTime(r.BookedAt),
		r.ConfirmationCode,
	})
}

func decodeReservation(fr *fieldReader) (models.Reservation, error) {
	var r models.Reservation
	r.ID = fr.Int()
	r.CustomerID = fr.Int()
	r.RoomNumber = fr.Int()
	r.CheckIn = fr.Time()
	r.CheckOut = fr.Time()
	r.Guests = fr.Int()
	r.RoomRate = fr.Float()
	r.TotalAmount = fr.Float()
	r.PaidAmount = fr.Float()

	if st, err := models.ParseReservationStatus(fr.Str()); err != nil {
		fr.fail(err.Error())
	} else {
		r.Status = st
	}
	if ps, err := models.ParsePaymentStatus(fr.Str()); err != nil {
		fr.fail(err.Error())
	} else {
		r.PaymentStatus = ps
	}

	r.SpecialRequests = fr.Str()
	r.BookedAt = fr.Time()
	r.ConfirmationCode = fr.Str()
	return r, fr.done()
}

// employee: id|name|position|department|shift|salary|phone|address|
//           joinDate|email|passwordHash
func encodeEmployee(e models.Employee) string {
	return joinRecord([]string{
		formatInt(e.ID),
		e.Name,
		e.Position,
		string(e.Department),
		string(e.Shift),
		formatFloat(e.Salary),
		e.Phone,
		e.Address,
		e.JoinDate,
		e.Email,
		e.PasswordHash,
	})
}

func decodeEmployee(fr *fieldReader) (models.Employee, error) {
	var e models.Employee
	e.ID = fr.Int()
	e.Name = fr.Str()
	e.Position = fr.Str()

	if d, err := models.ParseDepartment(fr.Str()); err != nil {
		fr.fail(err.Error())
	} else {
		e.Department = d
	}
	if sh, err := models.ParseShift(fr.Str()); err != nil {
		fr.fail(err.Error())
	} else {
		e.Shift = sh
	}

	e.Salary = fr.Float()
	e.Phone = fr.Str()
	e.Address = fr.Str()
	e.JoinDate = fr.Str()
	e.Email = fr.Str()
	e.PasswordHash = fr.Str()
	return e, fr.done()
}

// bill header: id|reservation|taxRate|discount|paid|method|paidAt|
//              receipt|itemCount, followed by one line per item:
// description|amount|quantity
func encodeBill(b models.Bill) []string {
	lines := []string{joinRecord([]string{
		formatInt(b.ID),
		formatInt(b.ReservationID),
		formatFloat(b.TaxRate),
		formatFloat(b.Discount),
		formatBool(b.Paid),
		b.PaymentMethod,
		encodeTime(b.PaidAt),
		b.ReceiptNumber,
		formatInt(len(b.Items)),
	})}
	for _, item := range b.Items {
		lines = append(lines, joinRecord([]string{
			item.Description,
			formatFloat(item.Amount),
			formatInt(item.Quantity),
		}))
	}
	return lines
}

// ---------------------------------------------------------------------
// Collection save/load
// ---------------------------------------------------------------------

func (s *Store) filePath(name string) string {
	return filepath.Join(s.dataDir, name)
}

func (s *Store) saveRooms() error {
	lines := []string{formatInt(len(s.rooms))}
	for _, r := range s.rooms {
		lines = append(lines, encodeRoom(r))
	}
	return writeLines(s.filePath(roomsFile), lines)
}

func (s *Store) saveCustomers() error {
	lines := []string{formatInt(len(s.customers))}
	for _, c := range s.customers {
		lines = append(lines, encodeCustomer(c))
	}
	return writeLines(s.filePath(customersFile), lines)
}

func (s *Store) saveReservations() error {
	lines := []string{formatInt(len(s.reservations))}
	for _, r := range s.reservations {
		lines = append(lines, encodeReservation(r))
	}
	return writeLines(s.filePath(reservationsFile), lines)
}

func (s *Store) saveEmployees() error {
	lines := []string{formatInt(len(s.employees))}
	for _, e := range s.employees {
		lines = append(lines, encodeEmployee(e))
	}
	return writeLines(s.filePath(employeesFile), lines)
}

func (s *Store) saveBills() error {
	lines := []string{formatInt(len(s.bills))}
	for _, b := range s.bills {
		lines = append(lines, encodeBill(b)...)
	}
	return writeLines(s.filePath(billsFile), lines)
}

func (s *Store) loadRooms() error {
	path := s.filePath(roomsFile)
	lines, exists, err := readLines(path)
	if err != nil || !exists {
		return err
	}
	count, err := parseCount(path, lines)
	if err != nil {
		return err
	}
	if len(lines)-1 != count {
		return errs.Corrupted(path, 1, fmt.Sprintf("expected %d records, found %d", count, len(lines)-1))
	}
	rooms := make([]models.Room, 0, count)
	for i := 1; i <= count; i++ {
		r, err := decodeRoom(newFieldReader(path, i+1, lines[i]))
		if err != nil {
			return err
		}
		rooms = append(rooms, r)
	}
	s.rooms = rooms
	return nil
}

func (s *Store) loadCustomers() error {
	path := s.filePath(customersFile)
	lines, exists, err := readLines(path)
	if err != nil || !exists {
		return err
	}
	count, err := parseCount(path, lines)
	if err != nil {
		return err
	}
	if len(lines)-1 != count {
		return errs.Corrupted(path, 1, fmt.Sprintf("expected %d records, found %d", count, len(lines)-1))
	}
	customers := make([]models.Customer, 0, count)
	for i := 1; i <= count; i++ {
		c, err := decodeCustomer(newFieldReader(path, i+1, lines[i]))
		if err != nil {
			return err
		}
		customers = append(customers, c)
	}
	s.customers = customers
	return nil
}

func (s *Store) loadReservations() error {
	path := s.filePath(reservationsFile)
	lines, exists, err := readLines(path)
	if err != nil || !exists {
		return err
	}
	count, err := parseCount(path, lines)
	if err != nil {
		return err
	}
	if len(lines)-1 != count {
		return errs.Corrupted(path, 1, fmt.Sprintf("expected %d records, found %d", count, len(lines)-1))
	}
	reservations := make([]models.Reservation, 0, count)
	for i := 1; i <= count; i++ {
		r, err := decodeReservation(newFieldReader(path, i+1, lines[i]))
		if err != nil {
			return err
		}
		reservations = append(reservations, r)
	}
	s.reservations = reservations
	return nil
}

func (s *Store) loadEmployees() error {
	path := s.filePath(employeesFile)
	lines, exists, err := readLines(path)
	if err != nil || !exists {
		return err
	}
	count, err := parseCount(path, lines)
	if err != nil {
		return err
	}
	if len(lines)-1 != count {
		return errs.Corrupted(path, 1, fmt.Sprintf("expected %d records, found %d", count, len(lines)-1))
	}
	employees := make([]models.Employee, 0, count)
	for i := 1; i <= count; i++ {
		e, err := decodeEmployee(newFieldReader(path, i+1, lines[i]))
		if err != nil {
			return err
		}
		employees = append(employees, e)
	}
	s.employees = employees
	return nil
}

func (s *Store) loadBills() error {
	path := s.filePath(billsFile)
	lines, exists, err := readLines(path)
	if err != nil || !exists {
		return err
	}
	count, err := parseCount(path, lines)
	if err != nil {
		return err
	}

	bills := make([]models.Bill, 0, count)
	cursor := 1
	for i := 0; i < count; i++ {
		if cursor >= len(lines) {
			return errs.Corrupted(path, cursor+1, "missing bill record")
		}
		fr := newFieldReader(path, cursor+1, lines[cursor])
		var b models.Bill
		b.ID = fr.Int()
		b.ReservationID = fr.Int()
		b.TaxRate = fr.Float()
		b.Discount = fr.Float()
		b.Paid = fr.Bool()
		b.PaymentMethod = fr.Str()
		b.PaidAt = fr.Time()
		b.ReceiptNumber = fr.Str()
		itemCount := fr.Int()
		if err := fr.done(); err != nil {
			return err
		}
		cursor++

		for j := 0; j < itemCount; j++ {
			if cursor >= len(lines) {
				return errs.Corrupted(path, cursor+1, "missing bill item record")
			}
			ifr := newFieldReader(path, cursor+1, lines[cursor])
			item := models.BillItem{
				Description: ifr.Str(),
				Amount:      ifr.Float(),
				Quantity:    ifr.Int(),
			}
			if err := ifr.done(); err != nil {
				return err
			}
			b.Items = append(b.Items, item)
			cursor++
		}
		bills = append(bills, b)
	}
	if cursor != len(lines) {
		return errs.Corrupted(path, cursor+1, "trailing data after last bill")
	}
	s.bills = bills
	return nil
}
