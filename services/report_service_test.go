package services

import (
	"testing"
	"time"

	"hotel-manager/models"
)

func TestTodayRevenueCountsOnlyTodaysPayments(t *testing.T) {
	f := newFixture(t)
	now := time.Now()
	_, _, reservationID := f.book(t, 2)

	billID, err := f.billing.Create(reservationID, 0.10, 0) // total 220
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if got := f.reports.TodayRevenue(now); got != 0 {
		t.Errorf("TodayRevenue before payment = %v, want 0", got)
	}
	if _, err := f.billing.ProcessPayment(billID, "Card"); err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}
	if got := f.reports.TodayRevenue(now); got != 220 {
		t.Errorf("TodayRevenue after payment = %v, want 220", got)
	}
	if got := f.reports.RevenueOn(now.AddDate(0, 0, -1)); got != 0 {
		t.Errorf("yesterday's revenue = %v, want 0", got)
	}

	daily := f.reports.DailyRevenue(now, 7)
	if len(daily) != 7 {
		t.Fatalf("DailyRevenue returned %d buckets, want 7", len(daily))
	}
	if daily[6].Amount != 220 {
		t.Errorf("today's bucket = %v, want 220", daily[6].Amount)
	}
	var rest float64
	for _, d := range daily[:6] {
		rest += d.Amount
	}
	if rest != 0 {
		t.Errorf("earlier buckets sum = %v, want 0", rest)
	}
}

func TestOccupancyFigures(t *testing.T) {
	f := newFixture(t)

	if got := f.reports.OccupancyRate(); got != 0 {
		t.Errorf("occupancy with no rooms = %v, want 0", got)
	}

	_, _, reservationID := f.book(t, 2) // one Standard room, now Reserved
	if _, err := f.rooms.Add(models.RoomDeluxe, 150, 2, nil); err != nil {
		t.Fatalf("rooms.Add: %v", err)
	}

	if got := f.reports.OccupancyRate(); got != 0.5 {
		t.Errorf("occupancy = %v, want 0.5", got)
	}
	byType := f.reports.OccupancyByType()
	if byType[models.RoomStandard] != 1 || byType[models.RoomDeluxe] != 0 {
		t.Errorf("occupancy by type = %v", byType)
	}

	popular := f.reports.PopularRoomTypes()
	if len(popular) != 1 || popular[0].Type != models.RoomStandard || popular[0].Count != 1 {
		t.Errorf("PopularRoomTypes = %v", popular)
	}

	stats := f.reports.Snapshot(time.Now())
	if stats.Rooms != 2 || stats.AvailableRooms != 1 || stats.Reservations != 1 {
		t.Errorf("snapshot = %+v", stats)
	}

	// Cancelled reservations drop out of the popularity ranking.
	if ok, err := f.reservations.Cancel(reservationID); !ok || err != nil {
		t.Fatalf("Cancel = (%v, %v)", ok, err)
	}
	if popular := f.reports.PopularRoomTypes(); len(popular) != 0 {
		t.Errorf("PopularRoomTypes after cancel = %v, want none", popular)
	}
}
