package models

import (
	"fmt"

	"hotel-manager/errs"
	"hotel-manager/utils"
)

type RoomType string

const (
	RoomStandard     RoomType = "Standard"
	RoomDeluxe       RoomType = "Deluxe"
	RoomSuite        RoomType = "Suite"
	RoomPresidential RoomType = "Presidential"
)

// RoomTypes lists every type in menu order.
var RoomTypes = []RoomType{RoomStandard, RoomDeluxe, RoomSuite, RoomPresidential}

// ParseRoomType maps a stored or typed value back to a RoomType.
func ParseRoomType(s string) (RoomType, error) {
	for _, t := range RoomTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown room type %q", s)
}

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomOccupied    RoomStatus = "Occupied"
	RoomReserved    RoomStatus = "Reserved"
	RoomMaintenance RoomStatus = "Maintenance"
)

var RoomStatuses = []RoomStatus{RoomAvailable, RoomOccupied, RoomReserved, RoomMaintenance}

func ParseRoomStatus(s string) (RoomStatus, error) {
	for _, st := range RoomStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown room status %q", s)
}

// Room is a bookable room. The room number is the unique key; status is
// driven by the reservation lifecycle.
type Room struct {
	Number        int      `validate:"gt=0"`
	Type          RoomType `validate:"required"`
	Status        RoomStatus
	PricePerNight float64 `validate:"gt=0"`
	Capacity      int     `validate:"gt=0"`
	Features      []string
}

// NewRoom builds a validated Room in Available status.
func NewRoom(number int, roomType RoomType, price float64, capacity int, features []string) (*Room, error) {
	r := &Room{
		Number:        number,
		Type:          roomType,
		Status:        RoomAvailable,
		PricePerNight: price,
		Capacity:      capacity,
		Features:      features,
	}
	if err := utils.ValidateStruct(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Room) IsAvailable() bool { return r.Status == RoomAvailable }

func (r *Room) CanAccommodate(guests int) bool { return guests <= r.Capacity }

// CalculateStayCost returns the cost for a stay of the given length.
func (r *Room) CalculateStayCost(nights int) (float64, error) {
	if nights <= 0 {
		return 0, errs.Validation("Nights", "must be greater than 0")
	}
	return r.PricePerNight * float64(nights), nil
}

// SetPrice updates the nightly rate. Existing reservations keep their
// rate snapshot.
func (r *Room) SetPrice(price float64) error {
	if price <= 0 {
		return errs.Validation("PricePerNight", "must be greater than 0")
	}
	r.PricePerNight = price
	return nil
}

func (r *Room) AddFeature(feature string) {
	if feature != "" {
		r.Features = append(r.Features, feature)
	}
}

func (r *Room) SetFeatures(features []string) {
	r.Features = features
}

// Clone copies the room including its feature slice, so a caller holding
// the copy never aliases store-owned memory.
func (r *Room) Clone() Room {
	c := *r
	c.Features = append([]string(nil), r.Features...)
	return c
}

func (r *Room) IsValid() bool {
	return r.Number > 0 && r.PricePerNight > 0 && r.Capacity > 0
}
