package inventory

import (
	"sort"

	"hoteldesk/internal/domain/models"
)

// The room partition is fixed per deployment; changing it is a code change.
// Numbers follow floors: 1xx ground, 2xx first, 3xx second.
var roomsByCategory = map[models.RoomCategory][]int{
	models.CategoryQuadruple: {301, 306, 307, 201, 206, 207},
	models.CategoryTriple: {
		302, 303, 305, 308, 312, 313, 315, 316, 319, 322,
		202, 205, 208, 212, 213, 215, 216, 219, 222,
		109, 116, 117,
	},
	models.CategoryDouble: {
		304, 309, 310, 311, 314, 317, 318, 320, 321, 323, 324, 325, 326,
		203, 204, 209, 210, 211, 214, 217, 218, 220, 221, 223, 224, 225, 226,
		101, 102, 103, 104, 105, 106, 107, 108, 110, 111, 114, 118, 119,
	},
}

var defaultRents = map[models.RoomCategory]float64{
	models.CategoryDouble:    1500,
	models.CategoryTriple:    1800,
	models.CategoryQuadruple: 2000,
}

// OTAOptions is the fixed list the booking form offers for OTA bookings.
var OTAOptions = []string{
	"MakeMyTrip", "Goibibo", "Booking.com", "Agoda", "Expedia",
	"Yatra", "Cleartrip", "RedDoorz", "OYO",
}

// RoomsInCategory returns the static room ids for a category, in table order.
// Unknown categories return nil.
func RoomsInCategory(cat models.RoomCategory) []int {
	rooms := roomsByCategory[cat]
	out := make([]int, len(rooms))
	copy(out, rooms)
	return out
}

// DefaultRent returns the per-night rent a category defaults to on the form.
func DefaultRent(cat models.RoomCategory) float64 {
	if r, ok := defaultRents[cat]; ok {
		return r
	}
	return defaultRents[models.CategoryDouble]
}

// Categories lists the bookable categories in a stable order.
func Categories() []models.RoomCategory {
	return []models.RoomCategory{models.CategoryDouble, models.CategoryTriple, models.CategoryQuadruple}
}

// ValidCategory reports whether cat names a bookable room partition.
func ValidCategory(cat models.RoomCategory) bool {
	_, ok := roomsByCategory[cat]
	return ok
}

// AvailableRooms filters the category table down to rooms not held by any
// checked-in booking. Rooms belonging to excludeID stay selectable so editing
// a booking does not lock out its own rooms. Availability is deliberately
// date-range unaware: every checked-in booking occupies its rooms regardless
// of stay window (single current-occupancy model).
func AvailableRooms(cat models.RoomCategory, bookings []models.Booking, excludeID int64) []int {
	held := map[int]bool{}
	for _, b := range bookings {
		if b.Status != models.StatusCheckedIn {
			continue
		}
		if excludeID > 0 && b.RegistrationNumber == excludeID {
			continue
		}
		for _, r := range b.RoomNumbers {
			held[r] = true
		}
	}

	out := []int{}
	for _, r := range roomsByCategory[cat] {
		if !held[r] {
			out = append(out, r)
		}
	}
	return out
}

// Wing tables used by the calendar view.
var (
	acRooms    []int
	nonACRooms []int
)

func init() {
	for r := 101; r <= 110; r++ {
		acRooms = append(acRooms, r)
	}
	for r := 114; r <= 119; r++ {
		acRooms = append(acRooms, r)
	}
	for r := 201; r <= 226; r++ {
		acRooms = append(acRooms, r)
	}
	for r := 301; r <= 326; r++ {
		nonACRooms = append(nonACRooms, r)
	}
}

// ACRooms returns the air-conditioned wing in ascending order.
func ACRooms() []int {
	out := make([]int, len(acRooms))
	copy(out, acRooms)
	return out
}

// NonACRooms returns the non-AC wing in ascending order.
func NonACRooms() []int {
	out := make([]int, len(nonACRooms))
	copy(out, nonACRooms)
	return out
}

// TotalRooms is the full inventory size used for free/occupied counts.
func TotalRooms() int {
	return len(acRooms) + len(nonACRooms)
}

// AllRooms returns every room id the hotel has, sorted ascending.
func AllRooms() []int {
	out := append(ACRooms(), nonACRooms...)
	sort.Ints(out)
	return out
}
