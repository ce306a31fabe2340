package inventory

import (
	"sort"
	"time"

	"hoteldesk/internal/domain/models"
)

// GridCells is the fixed 6-week calendar size: the grid always renders 42
// day cells so every month layout has the same height.
const GridCells = 42

// DayCell is one calendar cell with its per-day occupancy counts.
type DayCell struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Day         int    `json:"day"`
	InMonth     bool   `json:"inMonth"`
	BookedRooms int    `json:"bookedRooms"`
	FreeRooms   int    `json:"freeRooms"`
}

// BookedRoomsOn returns the room ids occupied on the given date: rooms of any
// checked-in booking whose stay window, widened to whole days
// [checkIn 00:00:00, checkOut 23:59:59], contains the date.
func BookedRoomsOn(date time.Time, bookings []models.Booking) []int {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	seen := map[int]bool{}
	out := []int{}
	for _, b := range bookings {
		if b.Status != models.StatusCheckedIn {
			continue
		}
		if b.CheckInDateTime.IsZero() || b.CheckOutDateTime.IsZero() {
			continue
		}
		in := b.CheckInDateTime.In(date.Location())
		outT := b.CheckOutDateTime.In(date.Location())
		windowStart := time.Date(in.Year(), in.Month(), in.Day(), 0, 0, 0, 0, date.Location())
		windowEnd := time.Date(outT.Year(), outT.Month(), outT.Day(), 23, 59, 59, 0, date.Location())
		if dayStart.Before(windowStart) || dayStart.After(windowEnd) {
			continue
		}
		for _, r := range b.RoomNumbers {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	sort.Ints(out)
	return out
}

// MonthGrid lays out the 42-cell grid for a month, anchored so the 1st falls
// under its weekday (Sunday-first), with free/booked counts per day.
func MonthGrid(year int, month time.Month, bookings []models.Booking) []DayCell {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	start := firstDay.AddDate(0, 0, -int(firstDay.Weekday()))

	total := TotalRooms()
	cells := make([]DayCell, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		day := start.AddDate(0, 0, i)
		booked := len(BookedRoomsOn(day, bookings))
		cells = append(cells, DayCell{
			Date:        day.Format("2006-01-02"),
			Day:         day.Day(),
			InMonth:     day.Month() == month,
			BookedRooms: booked,
			FreeRooms:   total - booked,
		})
	}
	return cells
}
