package services

import (
	"testing"

	"hotel-manager/models"
)

func TestAvailableRoomsFilters(t *testing.T) {
	f := newFixture(t)
	if _, err := f.rooms.Add(models.RoomStandard, 100, 2, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := f.rooms.Add(models.RoomDeluxe, 180, 3, []string{"Sea View"}); err != nil {
		t.Fatal(err)
	}
	suite, err := f.rooms.Add(models.RoomSuite, 400, 4, []string{"Sea View", "Jacuzzi"})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.rooms.UpdateStatus(suite, models.RoomMaintenance); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name        string
		roomType    models.RoomType
		minCapacity int
		want        int
	}{
		{"all available", "", 0, 2},
		{"capacity filter", "", 3, 1},
		{"type filter", models.RoomDeluxe, 0, 1},
		{"maintenance excluded", models.RoomSuite, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := f.rooms.AvailableRooms(tc.roomType, tc.minCapacity)
			if len(got) != tc.want {
				t.Errorf("AvailableRooms(%q, %d) returned %d rooms, want %d",
					tc.roomType, tc.minCapacity, len(got), tc.want)
			}
		})
	}
}

func TestRoomSearch(t *testing.T) {
	f := newFixture(t)
	if _, err := f.rooms.Add(models.RoomStandard, 100, 2, []string{"City View"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.rooms.Add(models.RoomSuite, 400, 4, []string{"Sea View", "Jacuzzi"}); err != nil {
		t.Fatal(err)
	}

	if got := f.rooms.Search(200, 0, "", ""); len(got) != 1 || got[0].Type != models.RoomStandard {
		t.Errorf("price-capped search = %v", got)
	}
	if got := f.rooms.Search(0, 0, "", "sea view"); len(got) != 1 || got[0].Type != models.RoomSuite {
		t.Errorf("feature keyword search = %v", got)
	}
	if got := f.rooms.Search(0, 3, models.RoomSuite, ""); len(got) != 1 {
		t.Errorf("combined search = %v", got)
	}
}

func TestCustomerSearch(t *testing.T) {
	f := newFixture(t)
	if _, err := f.customers.Add("Ravi Kumar", "ravi@example.com",
		"9876543210", "12 Lake Road", "Passport X123"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.customers.Add("Meena Iyer", "meena@example.com",
		"+91 98222 11000", "9 Beach Road", "Passport Y9"); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name    string
		keyword string
		want    string
	}{
		{"name case-insensitive", "kumar", "Ravi Kumar"},
		{"email match", "MEENA@", "Meena Iyer"},
		{"phone substring", "98222", "Meena Iyer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := f.customers.Search(tc.keyword)
			if len(got) != 1 || got[0].Name != tc.want {
				t.Errorf("Search(%q) = %v, want %s", tc.keyword, got, tc.want)
			}
		})
	}

	if got := f.customers.Search("nobody"); len(got) != 0 {
		t.Errorf("Search(nobody) = %v, want none", got)
	}
}
