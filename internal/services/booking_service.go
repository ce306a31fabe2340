package services

import (
	"fmt"
	"strings"
	"time"

	intconfig "hoteldesk/internal/config"
	"hoteldesk/internal/domain"
	"hoteldesk/internal/domain/models"
	"hoteldesk/internal/inventory"
	"hoteldesk/internal/repositories"
	"hoteldesk/internal/utils"
)

// BookingService owns the check-in / edit / check-out lifecycle. TotalAmount
// is recomputed from rent, room count and the stay window on every write; the
// client's value is never trusted.
type BookingService struct {
	Store     repositories.BookingStore
	RequestID string
	Now       func() time.Time
}

func (s BookingService) store() repositories.BookingStore {
	if s.Store != nil {
		return s.Store
	}
	return repositories.BookingRepository{DB: intconfig.DB}
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List returns bookings, optionally filtered by status.
func (s BookingService) List(status models.BookingStatus) ([]models.Booking, error) {
	all, err := s.store().List()
	if err != nil {
		return nil, err
	}
	if status == "" {
		return all, nil
	}
	out := []models.Booking{}
	for _, b := range all {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s BookingService) Get(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "registration_number", Msg: "invalid id"}
	}
	return s.store().GetByID(id)
}

// CheckIn validates and persists a new booking. The store assigns the
// registration number.
func (s BookingService) CheckIn(draft models.Booking) (models.Booking, error) {
	normalizeDraft(&draft)
	if err := s.validate(draft, 0); err != nil {
		return models.Booking{}, err
	}

	quote := domain.ComputeTotal(draft.RoomRent, draft.NumberOfRooms, draft.CheckInDateTime, draft.CheckOutDateTime)
	draft.TotalAmount = quote.Total
	if draft.AdvancePayment > draft.TotalAmount {
		return models.Booking{}, domain.ValidationError{Field: "advancePayment", Msg: "advance cannot exceed the total amount"}
	}
	draft.Status = models.StatusCheckedIn

	created, err := s.store().Create(draft)
	if err != nil {
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "check_in", fmt.Sprintf("registration_number=%d rooms=%s", created.RegistrationNumber, utils.JoinRoomList(created.RoomNumbers)))
	return created, nil
}

// Update replaces an active booking's fields with the submitted form and
// recomputes the total. The second return reports whether the advance payment
// went up, which triggers a fresh advance receipt.
func (s BookingService) Update(id int64, draft models.Booking) (models.Booking, bool, error) {
	existing, err := s.Get(id)
	if err != nil {
		return models.Booking{}, false, err
	}
	if existing.Status == models.StatusCheckedOut {
		return models.Booking{}, false, domain.ConflictError{Resource: "booking", Msg: "already checked out"}
	}

	normalizeDraft(&draft)
	if err := s.validate(draft, id); err != nil {
		return models.Booking{}, false, err
	}

	draft.RegistrationNumber = existing.RegistrationNumber
	draft.Status = existing.Status
	draft.CreatedAt = existing.CreatedAt

	quote := domain.ComputeTotal(draft.RoomRent, draft.NumberOfRooms, draft.CheckInDateTime, draft.CheckOutDateTime)
	draft.TotalAmount = quote.Total
	if draft.AdvancePayment > draft.TotalAmount {
		return models.Booking{}, false, domain.ValidationError{Field: "advancePayment", Msg: "advance cannot exceed the total amount"}
	}

	if err := s.store().Update(draft); err != nil {
		return models.Booking{}, false, err
	}

	advanceIncreased := draft.AdvancePayment > existing.AdvancePayment
	utils.LogEvent(s.RequestID, "booking", "update", fmt.Sprintf("registration_number=%d advance_increased=%t", id, advanceIncreased))
	return draft, advanceIncreased, nil
}

// CheckOut stamps the departure time and moves the booking to checked-out.
// The transition is one-way: a second check-out fails and leaves the stamped
// time untouched.
func (s BookingService) CheckOut(id int64) (models.Booking, error) {
	b, err := s.Get(id)
	if err != nil {
		return models.Booking{}, err
	}
	if b.Status == models.StatusCheckedOut {
		return models.Booking{}, domain.ConflictError{Resource: "booking", Msg: "already checked out"}
	}
	if b.CheckInDateTime.IsZero() {
		return models.Booking{}, domain.DataIntegrityError{Resource: "booking", Msg: "missing check-in time"}
	}

	b.CheckOutDateTime = s.now()
	b.Status = models.StatusCheckedOut

	quote := domain.ComputeTotal(b.RoomRent, b.NumberOfRooms, b.CheckInDateTime, b.CheckOutDateTime)
	b.TotalAmount = quote.Total

	if err := s.store().Update(b); err != nil {
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "check_out", fmt.Sprintf("registration_number=%d total=%s", id, utils.FormatMoney(b.TotalAmount)))
	return b, nil
}

// AvailableRooms lists the selectable rooms for a category, honoring the
// booking being edited.
func (s BookingService) AvailableRooms(cat models.RoomCategory, excludeID int64) ([]int, error) {
	if !inventory.ValidCategory(cat) {
		return nil, domain.ValidationError{Field: "roomCategory", Msg: "unknown category"}
	}
	all, err := s.store().List()
	if err != nil {
		return nil, err
	}
	return inventory.AvailableRooms(cat, all, excludeID), nil
}

// Quote previews pricing for the form without touching any booking.
func (s BookingService) Quote(roomRent float64, numberOfRooms int, checkIn, checkOut time.Time) (domain.Quote, error) {
	if roomRent < 0 {
		return domain.Quote{}, domain.ValidationError{Field: "roomRent", Msg: "must not be negative"}
	}
	if numberOfRooms < 1 {
		return domain.Quote{}, domain.ValidationError{Field: "numberOfRooms", Msg: "must be at least 1"}
	}
	if !checkOut.After(checkIn) {
		return domain.Quote{}, domain.ValidationError{Field: "checkOutDateTime", Msg: "must be after check-in"}
	}
	return domain.ComputeTotal(roomRent, numberOfRooms, checkIn, checkOut), nil
}

// normalizeDraft enforces the canonical guests-list shape: guest types follow
// the adult/child counts and the top-level contact fields mirror guest 0.
func normalizeDraft(b *models.Booking) {
	if b.NumberOfAdults < 1 {
		b.NumberOfAdults = 1
	}
	if b.NumberOfChildren < 0 {
		b.NumberOfChildren = 0
	}
	for i := range b.Guests {
		g := &b.Guests[i]
		g.Name = utils.NormalizeSpace(g.Name)
		g.PhoneNumber = utils.TrimOrEmpty(g.PhoneNumber)
		g.Address = utils.TrimOrEmpty(g.Address)
		g.Occupation = utils.TrimOrEmpty(g.Occupation)
		if i < b.NumberOfAdults {
			g.Type = models.GuestAdult
		} else {
			g.Type = models.GuestChild
		}
	}
	if len(b.Guests) > 0 {
		b.PhoneNumber = b.Guests[0].PhoneNumber
		b.Address = b.Guests[0].Address
	}
	b.OTAName = utils.TrimOrEmpty(b.OTAName)
	b.OTABookingID = utils.TrimOrEmpty(b.OTABookingID)
	b.RoomCategory = models.RoomCategory(strings.ToUpper(string(b.RoomCategory)))
	if b.BookingType == "" {
		b.BookingType = models.TypeWalkIn
	}
}

func (s BookingService) validate(b models.Booking, excludeID int64) error {
	if !inventory.ValidCategory(b.RoomCategory) {
		return domain.ValidationError{Field: "roomCategory", Msg: "unknown category"}
	}
	if b.NumberOfRooms < 1 {
		return domain.ValidationError{Field: "numberOfRooms", Msg: "must be at least 1"}
	}
	if len(b.RoomNumbers) != b.NumberOfRooms {
		return domain.ValidationError{
			Field: "roomNumbers",
			Msg:   fmt.Sprintf("please select %d room(s)", b.NumberOfRooms),
		}
	}

	if len(b.Guests) == 0 {
		return domain.ValidationError{Field: "guests", Msg: "at least one guest is required"}
	}
	first := b.Guests[0]
	if first.Name == "" || first.Age <= 0 || first.PhoneNumber == "" || first.Address == "" {
		return domain.ValidationError{Field: "guests", Msg: "first guest needs name, age, phone and address"}
	}

	if b.BookingType == models.TypeOTA && (b.OTAName == "" || b.OTABookingID == "") {
		return domain.ValidationError{Field: "bookingType", Msg: "OTA bookings need OTA name and booking id"}
	}

	if b.CheckInDateTime.IsZero() || b.CheckOutDateTime.IsZero() {
		return domain.ValidationError{Field: "checkInDateTime", Msg: "check-in and check-out times are required"}
	}
	if !b.CheckOutDateTime.After(b.CheckInDateTime) {
		return domain.ValidationError{Field: "checkOutDateTime", Msg: "must be after check-in"}
	}

	if b.RoomRent < 0 {
		return domain.ValidationError{Field: "roomRent", Msg: "must not be negative"}
	}
	if b.AdvancePayment < 0 {
		return domain.ValidationError{Field: "advancePayment", Msg: "must not be negative"}
	}

	all, err := s.store().List()
	if err != nil {
		return err
	}
	available := map[int]bool{}
	for _, r := range inventory.AvailableRooms(b.RoomCategory, all, excludeID) {
		available[r] = true
	}
	for _, r := range b.RoomNumbers {
		if !available[r] {
			return domain.ValidationError{
				Field: "roomNumbers",
				Msg:   fmt.Sprintf("room %d is not available in category %s", r, b.RoomCategory),
			}
		}
	}
	return nil
}
