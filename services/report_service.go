package services

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"hotel-manager/models"
	"hotel-manager/storage"
)

// ReportService derives revenue, occupancy and popularity figures from
// the current store state. Everything here is a pure read.
type ReportService struct {
	store *storage.Store
	log   *logrus.Logger
}

func NewReportService(store *storage.Store, log *logrus.Logger) *ReportService {
	return &ReportService{store: store, log: log}
}

// RevenueOn sums the totals of bills paid on the given day.
func (s *ReportService) RevenueOn(day time.Time) float64 {
	var total float64
	for _, b := range s.store.Bills() {
		if b.Paid && sameDay(b.PaidAt, day) {
			total += b.Total()
		}
	}
	return total
}

// TodayRevenue sums the totals of bills paid today.
func (s *ReportService) TodayRevenue(now time.Time) float64 {
	return s.RevenueOn(now)
}

// DayRevenue is one day's paid-bill total.
type DayRevenue struct {
	Day    time.Time
	Amount float64
}

// DailyRevenue buckets paid bills by payment date over the last days
// days, oldest first. Days with no payments appear with a zero amount.
func (s *ReportService) DailyRevenue(now time.Time, days int) []DayRevenue {
	if days <= 0 {
		return nil
	}
	out := make([]DayRevenue, days)
	for i := 0; i < days; i++ {
		day := now.AddDate(0, 0, i-days+1)
		out[i] = DayRevenue{Day: day, Amount: s.RevenueOn(day)}
	}
	return out
}

// OccupancyRate is the fraction of rooms not currently Available, in
// [0, 1]. Zero rooms means zero occupancy.
func (s *ReportService) OccupancyRate() float64 {
	rooms := s.store.Rooms()
	if len(rooms) == 0 {
		return 0
	}
	occupied := 0
	for _, r := range rooms {
		if !r.IsAvailable() {
			occupied++
		}
	}
	return float64(occupied) / float64(len(rooms))
}

// OccupancyByType maps each room type present to its occupancy rate.
func (s *ReportService) OccupancyByType() map[models.RoomType]float64 {
	total := map[models.RoomType]int{}
	occupied := map[models.RoomType]int{}
	for _, r := range s.store.Rooms() {
		total[r.Type]++
		if !r.IsAvailable() {
			occupied[r.Type]++
		}
	}
	out := make(map[models.RoomType]float64, len(total))
	for t, n := range total {
		out[t] = float64(occupied[t]) / float64(n)
	}
	return out
}

// TypePopularity counts reservations per room type.
type TypePopularity struct {
	Type  models.RoomType
	Count int
}

// PopularRoomTypes ranks room types by how often they were reserved,
// cancelled bookings excluded, most popular first.
func (s *ReportService) PopularRoomTypes() []TypePopularity {
	byNumber := map[int]models.RoomType{}
	for _, r := range s.store.Rooms() {
		byNumber[r.Number] = r.Type
	}
	counts := map[models.RoomType]int{}
	for _, r := range s.store.Reservations() {
		if r.Status == models.ReservationCancelled {
			continue
		}
		if t, ok := byNumber[r.RoomNumber]; ok {
			counts[t]++
		}
	}
	out := make([]TypePopularity, 0, len(counts))
	for t, n := range counts {
		out = append(out, TypePopularity{Type: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// Statistics is a point-in-time snapshot for the reports screen.
type Statistics struct {
	Rooms          int
	AvailableRooms int
	Customers      int
	Reservations   int
	Employees      int
	Bills          int
	UnpaidBills    int
	TotalRevenue   float64
	TodayRevenue   float64
	OccupancyRate  float64
}

// Snapshot collects the headline numbers in one pass.
func (s *ReportService) Snapshot(now time.Time) Statistics {
	stats := Statistics{
		Rooms:         s.store.RoomCount(),
		Customers:     s.store.CustomerCount(),
		Reservations:  s.store.ReservationCount(),
		Employees:     s.store.EmployeeCount(),
		Bills:         s.store.BillCount(),
		OccupancyRate: s.OccupancyRate(),
		TodayRevenue:  s.TodayRevenue(now),
	}
	for _, r := range s.store.Rooms() {
		if r.IsAvailable() {
			stats.AvailableRooms++
		}
	}
	for _, b := range s.store.Bills() {
		if b.Paid {
			stats.TotalRevenue += b.Total()
		} else {
			stats.UnpaidBills++
		}
	}
	return stats
}
