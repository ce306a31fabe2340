package models

import "time"

type BookingStatus string

const (
	StatusCheckedIn  BookingStatus = "checked-in"
	StatusCheckedOut BookingStatus = "checked-out"
)

type RoomCategory string

const (
	CategoryDouble    RoomCategory = "DR"
	CategoryTriple    RoomCategory = "TR"
	CategoryQuadruple RoomCategory = "QR"
	// CategorySingle is never stored; it is derived for reporting when a
	// lone adult occupies a DR/TR/QR room.
	CategorySingle RoomCategory = "SR"
)

type BookingType string

const (
	TypeWalkIn    BookingType = "Walk-In"
	TypeReference BookingType = "Reference"
	TypeOTA       BookingType = "OTA"
	TypeWebsite   BookingType = "Website"
)

type GuestType string

const (
	GuestAdult GuestType = "adult"
	GuestChild GuestType = "child"
)

// Guest is one occupant on a booking. The first guest is the registered
// contact and must carry name, phone, address and age; the rest are optional.
type Guest struct {
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	Age         int       `json:"age"`
	Occupation  string    `json:"occupation,omitempty"`
	Type        GuestType `json:"type"`
}

// Booking is the canonical record for one stay. The guests-list shape is the
// single source of truth; PhoneNumber/Address at the top level mirror guest 0
// for listing screens and are normalized on every write.
type Booking struct {
	RegistrationNumber int64         `json:"registrationNumber"`
	NumberOfAdults     int           `json:"numberOfAdults"`
	NumberOfChildren   int           `json:"numberOfChildren"`
	Guests             []Guest       `json:"guests"`
	PhoneNumber        string        `json:"phoneNumber"`
	Address            string        `json:"address"`
	CheckInDateTime    time.Time     `json:"checkInDateTime"`
	CheckOutDateTime   time.Time     `json:"checkOutDateTime"`
	NumberOfRooms      int           `json:"numberOfRooms"`
	BookingType        BookingType   `json:"bookingType"`
	OTAName            string        `json:"otaName,omitempty"`
	OTABookingID       string        `json:"bookingId,omitempty"`
	RoomCategory       RoomCategory  `json:"roomCategory"`
	RoomNumbers        []int         `json:"roomNumbers"`
	RoomRent           float64       `json:"roomRent"`
	AdvancePayment     float64       `json:"advancePayment"`
	TotalAmount        float64       `json:"totalAmount"`
	Status             BookingStatus `json:"status"`

	Email            string `json:"email,omitempty"`
	AlternateContact string `json:"alternateContact,omitempty"`
	CompanyName      string `json:"companyName,omitempty"`
	CompanyAddress   string `json:"companyAddress,omitempty"`
	CompanyGST       string `json:"companyGST,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// PrimaryGuest returns guest 0 when present.
func (b Booking) PrimaryGuest() Guest {
	if len(b.Guests) > 0 {
		return b.Guests[0]
	}
	return Guest{Name: "", PhoneNumber: b.PhoneNumber, Address: b.Address}
}

// EffectiveCategory derives the reporting category: a single adult in a
// multi-occupancy room counts as SR.
func (b Booking) EffectiveCategory() RoomCategory {
	if b.NumberOfAdults == 1 {
		switch b.RoomCategory {
		case CategoryDouble, CategoryTriple, CategoryQuadruple:
			return CategorySingle
		}
	}
	return b.RoomCategory
}

// HoldsRoom reports whether the booking occupies the given room number.
func (b Booking) HoldsRoom(room int) bool {
	for _, r := range b.RoomNumbers {
		if r == room {
			return true
		}
	}
	return false
}
