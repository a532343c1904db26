package config

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"hotel-manager/storage"
)

func TestSeedDataFillsEmptyStoreOnce(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	store, err := storage.Open(t.TempDir(), log)
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	cfg := Config{EmailDomain: "grandpalace.example", BcryptCost: bcrypt.MinCost}

	if err := SeedData(store, cfg, log); err != nil {
		t.Fatalf("SeedData: %v", err)
	}
	rooms, employees := store.RoomCount(), store.EmployeeCount()
	if rooms == 0 || employees == 0 {
		t.Fatalf("seeding left store empty: rooms=%d employees=%d", rooms, employees)
	}

	// Seeding again must not duplicate anything.
	if err := SeedData(store, cfg, log); err != nil {
		t.Fatalf("second SeedData: %v", err)
	}
	if store.RoomCount() != rooms || store.EmployeeCount() != employees {
		t.Errorf("second seed duplicated data: rooms %d->%d employees %d->%d",
			rooms, store.RoomCount(), employees, store.EmployeeCount())
	}

	// The seeded manager must be able to log in with the default password.
	for _, e := range store.Employees() {
		if e.Email == "admin@grandpalace.example" {
			if !e.Authenticate(DefaultPassword) {
				t.Error("seeded admin cannot log in with the default password")
			}
			return
		}
	}
	t.Error("seeded admin account not found")
}
