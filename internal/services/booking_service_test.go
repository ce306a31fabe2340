package services

import (
	"testing"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/domain/models"
	"hoteldesk/internal/repositories"
)

func baseDraft() models.Booking {
	return models.Booking{
		NumberOfAdults: 2,
		Guests: []models.Guest{
			{Name: "Ravi Kumar", Age: 34, PhoneNumber: "9876543210", Address: "Hyderabad"},
			{Name: "Sita Kumar", Age: 31},
		},
		CheckInDateTime:  time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		CheckOutDateTime: time.Date(2024, 3, 11, 11, 0, 0, 0, time.UTC),
		NumberOfRooms:    1,
		BookingType:      models.TypeWalkIn,
		RoomCategory:     models.CategoryDouble,
		RoomNumbers:      []int{304},
		RoomRent:         1500,
		AdvancePayment:   500,
	}
}

func TestCheckInComputesTotalAndAssignsNumber(t *testing.T) {
	svc := BookingService{Store: repositories.NewMemoryStore()}

	created, err := svc.CheckIn(baseDraft())
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}
	if created.RegistrationNumber != 1 {
		t.Errorf("registration number = %d, want 1", created.RegistrationNumber)
	}
	// 1500 base, 12% slab: 1500 + 90 + 90
	if created.TotalAmount != 1680 {
		t.Errorf("total = %v, want 1680", created.TotalAmount)
	}
	if created.Status != models.StatusCheckedIn {
		t.Errorf("status = %q", created.Status)
	}
	if created.PhoneNumber != "9876543210" {
		t.Errorf("top-level phone not mirrored from first guest: %q", created.PhoneNumber)
	}
	if created.Guests[1].Type != models.GuestAdult {
		t.Errorf("guest 1 type = %q, want adult", created.Guests[1].Type)
	}
}

func TestCheckInRejectsHeldRoom(t *testing.T) {
	svc := BookingService{Store: repositories.NewMemoryStore()}
	if _, err := svc.CheckIn(baseDraft()); err != nil {
		t.Fatalf("first check-in: %v", err)
	}

	second := baseDraft()
	if _, err := svc.CheckIn(second); !domain.IsValidation(err) {
		t.Fatalf("want validation error for held room 304, got %v", err)
	}

	second.RoomNumbers = []int{309}
	if _, err := svc.CheckIn(second); err != nil {
		t.Fatalf("check-in on free room: %v", err)
	}
}

func TestCheckInValidation(t *testing.T) {
	svc := BookingService{Store: repositories.NewMemoryStore()}

	cases := []struct {
		name   string
		mutate func(*models.Booking)
	}{
		{"room count mismatch", func(b *models.Booking) { b.NumberOfRooms = 2 }},
		{"missing first guest phone", func(b *models.Booking) { b.Guests[0].PhoneNumber = " " }},
		{"ota without id", func(b *models.Booking) { b.BookingType = models.TypeOTA; b.OTAName = "Agoda" }},
		{"checkout before checkin", func(b *models.Booking) {
			b.CheckOutDateTime = b.CheckInDateTime.Add(-time.Hour)
		}},
		{"room outside category", func(b *models.Booking) { b.RoomNumbers = []int{622} }},
		{"room from another category", func(b *models.Booking) { b.RoomNumbers = []int{301} }},
		{"unknown category", func(b *models.Booking) { b.RoomCategory = "XL" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := baseDraft()
			tc.mutate(&draft)
			if _, err := svc.CheckIn(draft); !domain.IsValidation(err) {
				t.Errorf("want validation error, got %v", err)
			}
		})
	}
}

func TestCheckInRejectsAdvanceOverTotal(t *testing.T) {
	svc := BookingService{Store: repositories.NewMemoryStore()}
	draft := baseDraft()
	draft.AdvancePayment = 2000 // total is 1680
	if _, err := svc.CheckIn(draft); !domain.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestCheckOutIsOneWay(t *testing.T) {
	now := time.Date(2024, 3, 11, 10, 30, 0, 0, time.UTC)
	svc := BookingService{Store: repositories.NewMemoryStore(), Now: func() time.Time { return now }}

	created, err := svc.CheckIn(baseDraft())
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}

	out, err := svc.CheckOut(created.RegistrationNumber)
	if err != nil {
		t.Fatalf("check-out: %v", err)
	}
	if !out.CheckOutDateTime.Equal(now) {
		t.Errorf("checkout stamped %v, want %v", out.CheckOutDateTime, now)
	}
	if out.Status != models.StatusCheckedOut {
		t.Errorf("status = %q", out.Status)
	}

	if _, err := svc.CheckOut(created.RegistrationNumber); !domain.IsConflict(err) {
		t.Errorf("second check-out: want conflict, got %v", err)
	}
	if _, err := svc.CheckOut(999); !domain.IsNotFound(err) {
		t.Errorf("unknown booking: want not found, got %v", err)
	}
}

func TestCheckOutFreesRoom(t *testing.T) {
	svc := BookingService{Store: repositories.NewMemoryStore()}
	created, _ := svc.CheckIn(baseDraft())
	if _, err := svc.CheckOut(created.RegistrationNumber); err != nil {
		t.Fatalf("check-out: %v", err)
	}

	again := baseDraft()
	if _, err := svc.CheckIn(again); err != nil {
		t.Fatalf("room should be free after check-out: %v", err)
	}
}

func TestUpdateReportsAdvanceIncrease(t *testing.T) {
	svc := BookingService{Store: repositories.NewMemoryStore()}
	created, _ := svc.CheckIn(baseDraft())

	draft := baseDraft()
	draft.AdvancePayment = 900
	updated, increased, err := svc.Update(created.RegistrationNumber, draft)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !increased {
		t.Error("advance went 500 -> 900, want increased=true")
	}
	if updated.RegistrationNumber != created.RegistrationNumber {
		t.Errorf("registration number changed to %d", updated.RegistrationNumber)
	}

	draft.AdvancePayment = 900
	if _, increased, _ = svc.Update(created.RegistrationNumber, draft); increased {
		t.Error("advance unchanged, want increased=false")
	}
}

func TestUpdateRejectsCheckedOut(t *testing.T) {
	svc := BookingService{Store: repositories.NewMemoryStore()}
	created, _ := svc.CheckIn(baseDraft())
	if _, err := svc.CheckOut(created.RegistrationNumber); err != nil {
		t.Fatalf("check-out: %v", err)
	}
	if _, _, err := svc.Update(created.RegistrationNumber, baseDraft()); !domain.IsConflict(err) {
		t.Errorf("want conflict, got %v", err)
	}
}

func TestAvailableRoomsExcludesEdited(t *testing.T) {
	svc := BookingService{Store: repositories.NewMemoryStore()}
	created, _ := svc.CheckIn(baseDraft())

	rooms, err := svc.AvailableRooms(models.CategoryDouble, 0)
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	for _, r := range rooms {
		if r == 304 {
			t.Fatal("room 304 is held, should not be listed")
		}
	}

	rooms, _ = svc.AvailableRooms(models.CategoryDouble, created.RegistrationNumber)
	found := false
	for _, r := range rooms {
		if r == 304 {
			found = true
		}
	}
	if !found {
		t.Error("room 304 should be listed when editing its own booking")
	}
}

func TestQuote(t *testing.T) {
	svc := BookingService{Store: repositories.NewMemoryStore()}
	in := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	q, err := svc.Quote(1800, 2, in, in.Add(72*time.Hour))
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if q.Nights != 3 || q.BaseAmount != 10800 {
		t.Errorf("nights=%d base=%v, want 3 / 10800", q.Nights, q.BaseAmount)
	}
	if q.Tax.RateLabel != "18%" {
		t.Errorf("rate = %q, want 18%%", q.Tax.RateLabel)
	}

	if _, err := svc.Quote(1800, 2, in, in); !domain.IsValidation(err) {
		t.Errorf("degenerate range: want validation error, got %v", err)
	}
}
