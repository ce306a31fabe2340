package services

import (
	"testing"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/domain/models"
	"hoteldesk/internal/repositories"
)

func TestCalendarDayDetail(t *testing.T) {
	store := repositories.NewMemoryStore()
	_, err := store.Create(models.Booking{
		NumberOfAdults:   2,
		CheckInDateTime:  time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		CheckOutDateTime: time.Date(2024, 3, 12, 11, 0, 0, 0, time.UTC),
		NumberOfRooms:    2,
		RoomCategory:     models.CategoryDouble,
		RoomNumbers:      []int{304, 105},
		Status:           models.StatusCheckedIn,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := CalendarService{Store: store}

	detail, err := svc.Day(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("day: %v", err)
	}
	if detail.BookedCount != 2 || detail.FreeCount != 66 {
		t.Errorf("booked=%d free=%d, want 2/66", detail.BookedCount, detail.FreeCount)
	}

	bookedByRoom := map[int]bool{}
	for _, rs := range append(detail.ACWing, detail.NonACWing...) {
		bookedByRoom[rs.Room] = rs.Booked
	}
	if !bookedByRoom[304] || !bookedByRoom[105] {
		t.Error("rooms 304 and 105 should be booked on the 11th")
	}
	if bookedByRoom[302] {
		t.Error("room 302 should be free")
	}

	// day after departure
	detail, _ = svc.Day(time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC))
	if detail.BookedCount != 0 {
		t.Errorf("booked=%d on the 13th, want 0", detail.BookedCount)
	}
}

func TestCalendarMonthValidation(t *testing.T) {
	svc := CalendarService{Store: repositories.NewMemoryStore()}

	cells, err := svc.Month(2024, time.March)
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	if len(cells) != 42 {
		t.Errorf("grid cells = %d, want 42", len(cells))
	}

	if _, err := svc.Month(2024, time.Month(13)); !domain.IsValidation(err) {
		t.Errorf("want validation error, got %v", err)
	}
}
