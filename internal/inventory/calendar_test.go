package inventory

import (
	"testing"
	"time"

	"hoteldesk/internal/domain/models"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func stamp(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBookedRoomsOnInclusiveWindow(t *testing.T) {
	bookings := []models.Booking{
		{
			RegistrationNumber: 1,
			Status:             models.StatusCheckedIn,
			CheckInDateTime:    stamp("2024-01-10 14:00:00"),
			CheckOutDateTime:   stamp("2024-01-12 11:00:00"),
			RoomNumbers:        []int{204, 205},
		},
	}

	// whole check-in day counts even before the arrival hour
	if got := BookedRoomsOn(day("2024-01-10"), bookings); len(got) != 2 {
		t.Fatalf("check-in day: booked = %v, want [204 205]", got)
	}
	// whole check-out day counts even after the departure hour
	if got := BookedRoomsOn(day("2024-01-12"), bookings); len(got) != 2 {
		t.Fatalf("check-out day: booked = %v, want [204 205]", got)
	}
	if got := BookedRoomsOn(day("2024-01-09"), bookings); len(got) != 0 {
		t.Fatalf("day before arrival: booked = %v, want empty", got)
	}
	if got := BookedRoomsOn(day("2024-01-13"), bookings); len(got) != 0 {
		t.Fatalf("day after departure: booked = %v, want empty", got)
	}
}

func TestBookedRoomsOnSkipsCheckedOutAndIncomplete(t *testing.T) {
	bookings := []models.Booking{
		{
			RegistrationNumber: 1,
			Status:             models.StatusCheckedOut,
			CheckInDateTime:    stamp("2024-01-10 14:00:00"),
			CheckOutDateTime:   stamp("2024-01-12 11:00:00"),
			RoomNumbers:        []int{204},
		},
		{
			RegistrationNumber: 2,
			Status:             models.StatusCheckedIn,
			RoomNumbers:        []int{205}, // no timestamps
		},
	}
	if got := BookedRoomsOn(day("2024-01-11"), bookings); len(got) != 0 {
		t.Fatalf("booked = %v, want empty", got)
	}
}

func TestMonthGridShape(t *testing.T) {
	// January 2024 starts on a Monday
	cells := MonthGrid(2024, time.January, nil)
	if len(cells) != GridCells {
		t.Fatalf("grid has %d cells, want %d", len(cells), GridCells)
	}
	if cells[0].Date != "2023-12-31" {
		t.Errorf("grid anchor = %s, want 2023-12-31 (Sunday before Jan 1)", cells[0].Date)
	}
	if !cells[1].InMonth || cells[1].Day != 1 {
		t.Errorf("cell 1 = %+v, want Jan 1 in month", cells[1])
	}
	inMonth := 0
	for _, c := range cells {
		if c.InMonth {
			inMonth++
		}
		if c.BookedRooms != 0 || c.FreeRooms != TotalRooms() {
			t.Errorf("cell %s counts = %d booked / %d free, want 0 / %d", c.Date, c.BookedRooms, c.FreeRooms, TotalRooms())
		}
	}
	if inMonth != 31 {
		t.Errorf("in-month cells = %d, want 31", inMonth)
	}
}

func TestMonthGridCountsBookings(t *testing.T) {
	bookings := []models.Booking{
		{
			RegistrationNumber: 1,
			Status:             models.StatusCheckedIn,
			CheckInDateTime:    stamp("2024-01-15 12:00:00"),
			CheckOutDateTime:   stamp("2024-01-16 10:00:00"),
			RoomNumbers:        []int{101, 102, 103},
		},
	}
	cells := MonthGrid(2024, time.January, bookings)
	for _, c := range cells {
		switch c.Date {
		case "2024-01-15", "2024-01-16":
			if c.BookedRooms != 3 {
				t.Errorf("%s booked = %d, want 3", c.Date, c.BookedRooms)
			}
			if c.FreeRooms != TotalRooms()-3 {
				t.Errorf("%s free = %d, want %d", c.Date, c.FreeRooms, TotalRooms()-3)
			}
		default:
			if c.BookedRooms != 0 {
				t.Errorf("%s booked = %d, want 0", c.Date, c.BookedRooms)
			}
		}
	}
}
