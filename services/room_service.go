package services

import (
	"strings"

	"github.com/sirupsen/logrus"

	"hotel-manager/errs"
	"hotel-manager/models"
	"hotel-manager/storage"
)

// RoomService wraps room operations with logging and search helpers.
type RoomService struct {
	store *storage.Store
	log   *logrus.Logger
}

func NewRoomService(store *storage.Store, log *logrus.Logger) *RoomService {
	return &RoomService{store: store, log: log}
}

// Add creates a room and returns its assigned number.
func (s *RoomService) Add(roomType models.RoomType, price float64, capacity int, features []string) (int, error) {
	number, err := s.store.AddRoom(roomType, price, capacity, features)
	if err != nil {
		return 0, err
	}
	s.log.WithFields(logrus.Fields{
		"room": number,
		"type": roomType,
	}).Info("room added")
	return number, nil
}

// Find returns the room or a not-found error.
func (s *RoomService) Find(number int) (models.Room, error) {
	room, ok := s.store.FindRoom(number)
	if !ok {
		return models.Room{}, errs.NotFound("room", number)
	}
	return room, nil
}

// All returns every room.
func (s *RoomService) All() []models.Room {
	return s.store.Rooms()
}

// AvailableRooms filters rooms that are Available, fit at least
// minCapacity guests and, when roomType is non-empty, match the type.
func (s *RoomService) AvailableRooms(roomType models.RoomType, minCapacity int) []models.Room {
	var out []models.Room
	for _, room := range s.store.Rooms() {
		if !room.IsAvailable() {
			continue
		}
		if room.Capacity < minCapacity {
			continue
		}
		if roomType != "" && room.Type != roomType {
			continue
		}
		out = append(out, room)
	}
	return out
}

// Search filters by price ceiling, minimum capacity and optional type.
// maxPrice <= 0 means no price limit. Feature keywords match
// case-insensitively.
func (s *RoomService) Search(maxPrice float64, minCapacity int, roomType models.RoomType, featureKeyword string) []models.Room {
	keyword := strings.ToLower(featureKeyword)
	var out []models.Room
	for _, room := range s.store.Rooms() {
		if maxPrice > 0 && room.PricePerNight > maxPrice {
			continue
		}
		if room.Capacity < minCapacity {
			continue
		}
		if roomType != "" && room.Type != roomType {
			continue
		}
		if keyword != "" && !roomHasFeature(room, keyword) {
			continue
		}
		out = append(out, room)
	}
	return out
}

func roomHasFeature(room models.Room, lowerKeyword string) bool {
	for _, f := range room.Features {
		if strings.Contains(strings.ToLower(f), lowerKeyword) {
			return true
		}
	}
	return false
}

// UpdateStatus sets the room status directly, for maintenance flips and
// manual corrections.
func (s *RoomService) UpdateStatus(number int, status models.RoomStatus) error {
	err := s.store.UpdateRoom(number, func(r *models.Room) error {
		r.Status = status
		return nil
	})
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"room":   number,
		"status": status,
	}).Info("room status updated")
	return nil
}

// SetPrice updates the nightly rate. Existing reservations keep their
// snapshot.
func (s *RoomService) SetPrice(number int, price float64) error {
	return s.store.UpdateRoom(number, func(r *models.Room) error {
		return r.SetPrice(price)
	})
}

// SetFeatures replaces the feature list.
func (s *RoomService) SetFeatures(number int, features []string) error {
	return s.store.UpdateRoom(number, func(r *models.Room) error {
		r.SetFeatures(features)
		return nil
	})
}

// AddFeature appends one feature label.
func (s *RoomService) AddFeature(number int, feature string) error {
	return s.store.UpdateRoom(number, func(r *models.Room) error {
		r.AddFeature(feature)
		return nil
	})
}

func (s *RoomService) Count() int { return s.store.RoomCount() }

// AvailableCount counts rooms currently in Available status.
func (s *RoomService) AvailableCount() int {
	count := 0
	for _, room := range s.store.Rooms() {
		if room.IsAvailable() {
			count++
		}
	}
	return count
}
