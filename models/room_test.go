package models

import (
	"errors"
	"testing"

	"hotel-manager/errs"
)

func TestNewRoomValidation(t *testing.T) {
	cases := []struct {
		name     string
		number   int
		price    float64
		capacity int
		wantErr  bool
	}{
		{"valid", 101, 100, 2, false},
		{"zero price", 101, 0, 2, true},
		{"negative price", 101, -50, 2, true},
		{"zero capacity", 101, 100, 0, true},
		{"zero number", 0, 100, 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			room, err := NewRoom(tc.number, RoomStandard, tc.price, tc.capacity, nil)
			if tc.wantErr {
				if !errors.Is(err, errs.ErrValidation) {
					t.Errorf("error = %v, want validation error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRoom: %v", err)
			}
			if !room.IsValid() {
				t.Error("IsValid() = false for a valid room")
			}
			if room.Status != RoomAvailable {
				t.Errorf("new room status = %s, want %s", room.Status, RoomAvailable)
			}
		})
	}
}

func TestCalculateStayCost(t *testing.T) {
	room, err := NewRoom(101, RoomDeluxe, 150.5, 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	cost, err := room.CalculateStayCost(4)
	if err != nil {
		t.Fatalf("CalculateStayCost: %v", err)
	}
	if cost != 602 {
		t.Errorf("cost = %v, want 602", cost)
	}
	if _, err := room.CalculateStayCost(0); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("zero nights error = %v, want validation error", err)
	}
}

func TestRoomCloneDoesNotAliasFeatures(t *testing.T) {
	room, err := NewRoom(101, RoomSuite, 400, 4, []string{"Sea View"})
	if err != nil {
		t.Fatal(err)
	}
	clone := room.Clone()
	clone.Features[0] = "changed"
	if room.Features[0] != "Sea View" {
		t.Error("mutating the clone changed the original's features")
	}
}

func TestParseRoomEnums(t *testing.T) {
	if _, err := ParseRoomType("Standard"); err != nil {
		t.Errorf("ParseRoomType(Standard): %v", err)
	}
	if _, err := ParseRoomType("Penthouse"); err == nil {
		t.Error("ParseRoomType accepted an unknown type")
	}
	if _, err := ParseRoomStatus("Maintenance"); err != nil {
		t.Errorf("ParseRoomStatus(Maintenance): %v", err)
	}
	if _, err := ParseRoomStatus("Closed"); err == nil {
		t.Error("ParseRoomStatus accepted an unknown status")
	}
}
