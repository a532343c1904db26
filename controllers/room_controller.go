package controllers

import (
	"bufio"
	"fmt"

	"hotel-manager/middleware"
	"hotel-manager/models"
	"hotel-manager/services"
	"hotel-manager/utils"
)

// RoomController is the room management screen.
type RoomController struct {
	reader *bufio.Reader
	rooms  *services.RoomService
	audit  *middleware.Audit
}

func NewRoomController(reader *bufio.Reader, rooms *services.RoomService, audit *middleware.Audit) *RoomController {
	return &RoomController{reader: reader, rooms: rooms, audit: audit}
}

// Run loops the room menu until the user picks 0 or input closes.
func (c *RoomController) Run(session Session) {
	for {
		fmt.Println("\n--- Room Management ---")
		fmt.Println("1. Add Room")
		fmt.Println("2. View All Rooms")
		fmt.Println("3. View Available Rooms")
		fmt.Println("4. Search Rooms")
		fmt.Println("5. Update Room Status")
		fmt.Println("6. Update Room Price")
		fmt.Println("7. Edit Room Features")
		fmt.Println("0. Back")

		choice, err := utils.PromptInt(c.reader, "Choice: ", 0, 7)
		if err != nil || choice == 0 {
			return
		}
		switch choice {
		case 1:
			c.addRoom(session)
		case 2:
			c.listRooms(c.rooms.All())
		case 3:
			c.viewAvailable()
		case 4:
			c.searchRooms()
		case 5:
			c.updateStatus(session)
		case 6:
			c.updatePrice(session)
		case 7:
			c.editFeatures(session)
		}
	}
}

func promptRoomType(r *bufio.Reader, allowAny bool) (models.RoomType, error) {
	fmt.Println("Room types:")
	for i, t := range models.RoomTypes {
		fmt.Printf("  %d. %s\n", i+1, t)
	}
	min := 1
	if allowAny {
		fmt.Println("  0. Any")
		min = 0
	}
	choice, err := utils.PromptInt(r, "Type: ", min, len(models.RoomTypes))
	if err != nil {
		return "", err
	}
	if choice == 0 {
		return "", nil
	}
	return models.RoomTypes[choice-1], nil
}

func promptFeatures(r *bufio.Reader) ([]string, error) {
	var features []string
	for {
		f, err := utils.PromptString(r, "Feature (blank to finish): ", true)
		if err != nil {
			return nil, err
		}
		if f == "" {
			return features, nil
		}
		features = append(features, f)
	}
}

func (c *RoomController) addRoom(session Session) {
	roomType, err := promptRoomType(c.reader, false)
	if err != nil {
		return
	}
	price, err := utils.PromptFloat(c.reader, "Price per night: ", 0.01)
	if err != nil {
		return
	}
	capacity, err := utils.PromptInt(c.reader, "Capacity: ", 1, 20)
	if err != nil {
		return
	}
	features, err := promptFeatures(c.reader)
	if err != nil {
		return
	}

	var number int
	err = c.audit.Record(session.Employee.ID, "room.add", 0, func() error {
		var err error
		number, err = c.rooms.Add(roomType, price, capacity, features)
		return err
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Room %d added.\n", number)
}

func (c *RoomController) listRooms(rooms []models.Room) {
	if len(rooms) == 0 {
		fmt.Println("No rooms found.")
		return
	}
	fmt.Printf("%-8s %-14s %-12s %-10s %-9s %s\n",
		"Number", "Type", "Status", "Price", "Capacity", "Features")
	for _, r := range rooms {
		fmt.Printf("%-8d %-14s %-12s %-10s %-9d %s\n",
			r.Number, r.Type, r.Status, utils.FormatCurrency(r.PricePerNight),
			r.Capacity, utils.JoinFeatures(r.Features))
	}
}

func (c *RoomController) viewAvailable() {
	roomType, err := promptRoomType(c.reader, true)
	if err != nil {
		return
	}
	minCapacity, err := utils.PromptInt(c.reader, "Minimum capacity (0 for any): ", 0, 20)
	if err != nil {
		return
	}
	c.listRooms(c.rooms.AvailableRooms(roomType, minCapacity))
}

func (c *RoomController) searchRooms() {
	maxPrice, err := utils.PromptFloat(c.reader, "Maximum price (0 for any): ", 0)
	if err != nil {
		return
	}
	minCapacity, err := utils.PromptInt(c.reader, "Minimum capacity (0 for any): ", 0, 20)
	if err != nil {
		return
	}
	roomType, err := promptRoomType(c.reader, true)
	if err != nil {
		return
	}
	keyword, err := utils.PromptString(c.reader, "Feature keyword (blank for any): ", true)
	if err != nil {
		return
	}
	c.listRooms(c.rooms.Search(maxPrice, minCapacity, roomType, keyword))
}

func (c *RoomController) updateStatus(session Session) {
	number, err := utils.PromptInt(c.reader, "Room number: ", 1, 99999)
	if err != nil {
		return
	}
	fmt.Println("Statuses:")
	for i, st := range models.RoomStatuses {
		fmt.Printf("  %d. %s\n", i+1, st)
	}
	choice, err := utils.PromptInt(c.reader, "Status: ", 1, len(models.RoomStatuses))
	if err != nil {
		return
	}

	err = c.audit.Record(session.Employee.ID, "room.status", number, func() error {
		return c.rooms.UpdateStatus(number, models.RoomStatuses[choice-1])
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Room status updated.")
}

func (c *RoomController) updatePrice(session Session) {
	number, err := utils.PromptInt(c.reader, "Room number: ", 1, 99999)
	if err != nil {
		return
	}
	price, err := utils.PromptFloat(c.reader, "New price per night: ", 0.01)
	if err != nil {
		return
	}

	err = c.audit.Record(session.Employee.ID, "room.price", number, func() error {
		return c.rooms.SetPrice(number, price)
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Room price updated. Existing reservations keep their booked rate.")
}

func (c *RoomController) editFeatures(session Session) {
	number, err := utils.PromptInt(c.reader, "Room number: ", 1, 99999)
	if err != nil {
		return
	}
	room, err := c.rooms.Find(number)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Current features:", utils.JoinFeatures(room.Features))
	features, err := promptFeatures(c.reader)
	if err != nil {
		return
	}

	err = c.audit.Record(session.Employee.ID, "room.features", number, func() error {
		return c.rooms.SetFeatures(number, features)
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Room features updated.")
}
