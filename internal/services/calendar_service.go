package services

import (
	"time"

	intconfig "hoteldesk/internal/config"
	"hoteldesk/internal/domain"
	"hoteldesk/internal/inventory"
	"hoteldesk/internal/repositories"
)

// CalendarService answers the occupancy calendar: a month grid of booked-room
// counts and a per-day drill-down split by wing.
type CalendarService struct {
	Store     repositories.BookingStore
	RequestID string
}

type RoomDayStatus struct {
	Room   int  `json:"room"`
	Booked bool `json:"booked"`
}

type DayDetail struct {
	Date        string          `json:"date"`
	BookedRooms []int           `json:"bookedRooms"`
	ACWing      []RoomDayStatus `json:"acWing"`
	NonACWing   []RoomDayStatus `json:"nonAcWing"`
	TotalRooms  int             `json:"totalRooms"`
	BookedCount int             `json:"bookedCount"`
	FreeCount   int             `json:"freeCount"`
}

func (s CalendarService) store() repositories.BookingStore {
	if s.Store != nil {
		return s.Store
	}
	return repositories.BookingRepository{DB: intconfig.DB}
}

// Month returns the 42-cell grid for the given month.
func (s CalendarService) Month(year int, month time.Month) ([]inventory.DayCell, error) {
	if year < 1 || month < time.January || month > time.December {
		return nil, domain.ValidationError{Field: "month", Msg: "invalid year or month"}
	}
	all, err := s.store().List()
	if err != nil {
		return nil, err
	}
	return inventory.MonthGrid(year, month, all), nil
}

// Day returns every room's status for one date.
func (s CalendarService) Day(date time.Time) (DayDetail, error) {
	all, err := s.store().List()
	if err != nil {
		return DayDetail{}, err
	}

	booked := inventory.BookedRoomsOn(date, all)
	bookedSet := map[int]bool{}
	for _, r := range booked {
		bookedSet[r] = true
	}

	statuses := func(rooms []int) []RoomDayStatus {
		out := make([]RoomDayStatus, 0, len(rooms))
		for _, r := range rooms {
			out = append(out, RoomDayStatus{Room: r, Booked: bookedSet[r]})
		}
		return out
	}

	total := inventory.TotalRooms()
	return DayDetail{
		Date:        date.Format("2006-01-02"),
		BookedRooms: booked,
		ACWing:      statuses(inventory.ACRooms()),
		NonACWing:   statuses(inventory.NonACRooms()),
		TotalRooms:  total,
		BookedCount: len(booked),
		FreeCount:   total - len(booked),
	}, nil
}
