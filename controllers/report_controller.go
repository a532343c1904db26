package controllers

import (
	"bufio"
	"fmt"
	"time"

	"hotel-manager/services"
	"hotel-manager/utils"
)

// ReportController is the reports screen. Everything here is read-only.
type ReportController struct {
	reader  *bufio.Reader
	reports *services.ReportService
}

func NewReportController(reader *bufio.Reader, reports *services.ReportService) *ReportController {
	return &ReportController{reader: reader, reports: reports}
}

func (c *ReportController) Run(session Session) {
	for {
		fmt.Println("\n--- Reports ---")
		fmt.Println("1. Hotel Statistics")
		fmt.Println("2. Today's Revenue")
		fmt.Println("3. Daily Revenue (last 7 days)")
		fmt.Println("4. Occupancy by Room Type")
		fmt.Println("5. Popular Room Types")
		fmt.Println("0. Back")

		now := time.Now()
		choice, err := utils.PromptInt(c.reader, "Choice: ", 0, 5)
		if err != nil || choice == 0 {
			return
		}
		switch choice {
		case 1:
			c.statistics(now)
		case 2:
			fmt.Printf("Revenue today: %s\n", utils.FormatCurrency(c.reports.TodayRevenue(now)))
		case 3:
			c.dailyRevenue(now)
		case 4:
			c.occupancyByType()
		case 5:
			c.popularTypes()
		}
	}
}

func (c *ReportController) statistics(now time.Time) {
	stats := c.reports.Snapshot(now)
	fmt.Printf("\nRooms:            %d (%d available)\n", stats.Rooms, stats.AvailableRooms)
	fmt.Printf("Occupancy:        %.1f%%\n", stats.OccupancyRate*100)
	fmt.Printf("Customers:        %d\n", stats.Customers)
	fmt.Printf("Reservations:     %d\n", stats.Reservations)
	fmt.Printf("Employees:        %d\n", stats.Employees)
	fmt.Printf("Bills:            %d (%d unpaid)\n", stats.Bills, stats.UnpaidBills)
	fmt.Printf("Total revenue:    %s\n", utils.FormatCurrency(stats.TotalRevenue))
	fmt.Printf("Today's revenue:  %s\n", utils.FormatCurrency(stats.TodayRevenue))
}

func (c *ReportController) dailyRevenue(now time.Time) {
	for _, day := range c.reports.DailyRevenue(now, 7) {
		fmt.Printf("%s  %s\n", day.Day.Format(utils.DateLayout), utils.FormatCurrency(day.Amount))
	}
}

func (c *ReportController) occupancyByType() {
	byType := c.reports.OccupancyByType()
	if len(byType) == 0 {
		fmt.Println("No rooms yet.")
		return
	}
	for roomType, rate := range byType {
		fmt.Printf("%-14s %.1f%%\n", roomType, rate*100)
	}
}

func (c *ReportController) popularTypes() {
	popular := c.reports.PopularRoomTypes()
	if len(popular) == 0 {
		fmt.Println("No reservations yet.")
		return
	}
	for i, p := range popular {
		fmt.Printf("%d. %-14s %d reservation(s)\n", i+1, p.Type, p.Count)
	}
}
