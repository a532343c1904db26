package config

import (
	"github.com/sirupsen/logrus"

	"hotel-manager/models"
	"hotel-manager/storage"
)

type seedRoom struct {
	roomType models.RoomType
	price    float64
	capacity int
	features []string
}

var seedRooms = []seedRoom{
	{models.RoomStandard, 100, 2, []string{"WiFi", "TV"}},
	{models.RoomStandard, 100, 2, []string{"WiFi", "TV"}},
	{models.RoomDeluxe, 180, 3, []string{"WiFi", "TV", "Mini Bar"}},
	{models.RoomDeluxe, 180, 3, []string{"WiFi", "TV", "Mini Bar"}},
	{models.RoomSuite, 350, 4, []string{"WiFi", "TV", "Mini Bar", "Sea View"}},
	{models.RoomPresidential, 800, 6, []string{"WiFi", "TV", "Mini Bar", "Sea View", "Jacuzzi"}},
}

type seedEmployee struct {
	name     string
	position string
	dept     models.Department
	shift    models.Shift
	salary   float64
	phone    string
	address  string
	joinDate string
}

var seedEmployees = []seedEmployee{
	{"Admin User", "General Manager", models.DeptManagement, models.ShiftMorning,
		75000, "9876500001", "1 Palace Road", "2020-01-15"},
	{"Asha Rao", "Receptionist", models.DeptFrontDesk, models.ShiftMorning,
		32000, "9876500002", "8 Park Lane", "2022-06-01"},
	{"Vikram Singh", "Head Chef", models.DeptKitchen, models.ShiftAfternoon,
		45000, "9876500003", "3 Spice Lane", "2021-03-10"},
	{"Lakshmi Nair", "Housekeeping Supervisor", models.DeptHousekeeping, models.ShiftMorning,
		28000, "9876500004", "17 Garden Street", "2023-02-20"},
}

// SeedData fills an empty store with starter rooms and staff so a fresh
// install has rooms to book and an account to log in with. Collections
// that already hold data are left alone.
func SeedData(store *storage.Store, cfg Config, log *logrus.Logger) error {
	if store.RoomCount() == 0 {
		for _, r := range seedRooms {
			if _, err := store.AddRoom(r.roomType, r.price, r.capacity, r.features); err != nil {
				return err
			}
		}
		log.WithField("rooms", len(seedRooms)).Info("rooms seeded")
	}

	if store.EmployeeCount() == 0 {
		for _, e := range seedEmployees {
			e := e
			if _, err := store.AddEmployee(func(id int) (*models.Employee, error) {
				return models.NewEmployee(id, e.name, e.position, e.dept, e.shift,
					e.salary, e.phone, e.address, e.joinDate,
					cfg.EmailDomain, DefaultPassword, cfg.BcryptCost)
			}); err != nil {
				return err
			}
		}
		log.WithField("employees", len(seedEmployees)).Info("employees seeded")
	}
	return nil
}
