package services

import (
	"sort"
	"time"

	intconfig "hoteldesk/internal/config"
	"hoteldesk/internal/domain"
	"hoteldesk/internal/domain/models"
	"hoteldesk/internal/inventory"
	"hoteldesk/internal/repositories"
	"hoteldesk/internal/utils"
)

// SummaryFilter selects which checked-out stays feed the report. Period is one
// of day, week, month, year or custom; custom needs both dates (yyyy-mm-dd).
type SummaryFilter struct {
	Period    string
	StartDate string
	EndDate   string
}

type CategoryRevenue struct {
	Category models.RoomCategory `json:"category"`
	Revenue  float64             `json:"revenue"`
	Count    int                 `json:"count"`
}

type TypeCount struct {
	Type  models.BookingType `json:"type"`
	Count int                `json:"count"`
}

type RevenuePoint struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
}

type OccupancySnapshot struct {
	TotalRooms     int     `json:"totalRooms"`
	OccupiedRooms  int     `json:"occupiedRooms"`
	AvailableRooms int     `json:"availableRooms"`
	RatePercent    float64 `json:"ratePercent"`
}

// Summary is the analytics payload. Everything except Occupancy covers only
// checked-out stays inside the filter window; Occupancy is a live snapshot of
// all bookings.
type Summary struct {
	TotalRevenue         float64           `json:"totalRevenue"`
	TotalBookings        int               `json:"totalBookings"`
	AverageStayDays      float64           `json:"averageStayDays"`
	AvgRevenuePerBooking float64           `json:"avgRevenuePerBooking"`
	RevenueByCategory    []CategoryRevenue `json:"revenueByCategory"`
	BookingsByType       []TypeCount       `json:"bookingsByType"`
	MonthlyRevenue       []RevenuePoint    `json:"monthlyRevenue"`
	DailyRevenue         []RevenuePoint    `json:"dailyRevenue"`
	Occupancy            OccupancySnapshot `json:"occupancy"`
}

type ReportsService struct {
	Store     repositories.BookingStore
	RequestID string
	Now       func() time.Time
}

func (s ReportsService) store() repositories.BookingStore {
	if s.Store != nil {
		return s.Store
	}
	return repositories.BookingRepository{DB: intconfig.DB}
}

func (s ReportsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s ReportsService) Summary(f SummaryFilter) (Summary, error) {
	all, err := s.store().List()
	if err != nil {
		return Summary{}, err
	}

	filtered, err := s.filter(all, f)
	if err != nil {
		return Summary{}, err
	}

	var out Summary
	out.TotalBookings = len(filtered)

	var stayDays float64
	byCategory := map[models.RoomCategory]*CategoryRevenue{}
	byType := map[models.BookingType]int{}
	byMonth := map[time.Time]float64{}
	byDay := map[time.Time]float64{}

	for _, b := range filtered {
		out.TotalRevenue += b.TotalAmount
		stayDays += b.CheckOutDateTime.Sub(b.CheckInDateTime).Hours() / 24

		cat := b.EffectiveCategory()
		if byCategory[cat] == nil {
			byCategory[cat] = &CategoryRevenue{Category: cat}
		}
		byCategory[cat].Revenue += b.TotalAmount
		byCategory[cat].Count++

		byType[b.BookingType]++

		month := time.Date(b.CheckOutDateTime.Year(), b.CheckOutDateTime.Month(), 1, 0, 0, 0, 0, time.UTC)
		byMonth[month] += b.TotalAmount
		day := time.Date(b.CheckOutDateTime.Year(), b.CheckOutDateTime.Month(), b.CheckOutDateTime.Day(), 0, 0, 0, 0, time.UTC)
		byDay[day] += b.TotalAmount
	}

	if out.TotalBookings > 0 {
		out.AverageStayDays = stayDays / float64(out.TotalBookings)
		out.AvgRevenuePerBooking = out.TotalRevenue / float64(out.TotalBookings)
	}

	for _, cr := range byCategory {
		out.RevenueByCategory = append(out.RevenueByCategory, *cr)
	}
	sort.Slice(out.RevenueByCategory, func(i, j int) bool {
		return out.RevenueByCategory[i].Category < out.RevenueByCategory[j].Category
	})

	for t, n := range byType {
		out.BookingsByType = append(out.BookingsByType, TypeCount{Type: t, Count: n})
	}
	sort.Slice(out.BookingsByType, func(i, j int) bool {
		return out.BookingsByType[i].Type < out.BookingsByType[j].Type
	})

	out.MonthlyRevenue = sortedPoints(byMonth, "Jan 2006")
	out.DailyRevenue = sortedPoints(byDay, "2006-01-02")
	out.Occupancy = occupancy(all)

	utils.LogEvent(s.RequestID, "reports", "summary", f.Period)
	return out, nil
}

// filter keeps checked-out stays whose departure falls inside the period
// window. Stays missing their checkout stamp are skipped.
func (s ReportsService) filter(all []models.Booking, f SummaryFilter) ([]models.Booking, error) {
	now := s.now()
	var start, end time.Time

	switch f.Period {
	case "day":
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		start = now.AddDate(0, 0, -7)
	case "", "month":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case "year":
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	case "custom":
		if f.StartDate == "" || f.EndDate == "" {
			break // no window, all checked-out stays
		}
		var err error
		start, err = utils.ParseDate(f.StartDate)
		if err != nil {
			return nil, domain.ValidationError{Field: "startDate", Msg: "expected yyyy-mm-dd", Err: err}
		}
		end, err = utils.ParseDate(f.EndDate)
		if err != nil {
			return nil, domain.ValidationError{Field: "endDate", Msg: "expected yyyy-mm-dd", Err: err}
		}
		end = end.Add(24*time.Hour - time.Second)
	default:
		return nil, domain.ValidationError{Field: "period", Msg: "must be day, week, month, year or custom"}
	}

	out := []models.Booking{}
	for _, b := range all {
		if b.Status != models.StatusCheckedOut || b.CheckOutDateTime.IsZero() {
			continue
		}
		if !start.IsZero() && b.CheckOutDateTime.Before(start) {
			continue
		}
		if !end.IsZero() && b.CheckOutDateTime.After(end) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func occupancy(all []models.Booking) OccupancySnapshot {
	held := map[int]bool{}
	for _, b := range all {
		if b.Status != models.StatusCheckedIn {
			continue
		}
		for _, r := range b.RoomNumbers {
			held[r] = true
		}
	}
	total := inventory.TotalRooms()
	occupied := len(held)
	snap := OccupancySnapshot{
		TotalRooms:     total,
		OccupiedRooms:  occupied,
		AvailableRooms: total - occupied,
	}
	if total > 0 {
		snap.RatePercent = float64(occupied) / float64(total) * 100
	}
	return snap
}

func sortedPoints(m map[time.Time]float64, layout string) []RevenuePoint {
	keys := make([]time.Time, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	out := make([]RevenuePoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, RevenuePoint{Label: k.Format(layout), Revenue: m[k]})
	}
	return out
}
