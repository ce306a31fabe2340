package repositories

import (
	"testing"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestBookingRepositoryCreateAssignsSequentialNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("bookings").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("bookings"))
	mock.ExpectQuery("information_schema\\.columns").WithArgs("bookings", "company_gst").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("company_gst"))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := BookingRepository{DB: db}
	b, err := repo.Create(models.Booking{
		NumberOfAdults:  2,
		Guests:          []models.Guest{{Name: "Tester", Age: 30, Type: models.GuestAdult}},
		CheckInDateTime: time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local),
		NumberOfRooms:   1,
		RoomCategory:    models.CategoryDouble,
		RoomNumbers:     []int{304},
		RoomRent:        1500,
		Status:          models.StatusCheckedIn,
		BookingType:     models.TypeWalkIn,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if b.RegistrationNumber != 5 {
		t.Fatalf("registration number = %d, want 5 (count+1)", b.RegistrationNumber)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT(.|\n)*FROM bookings WHERE registration_number").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(bookingTestColumns()))

	repo := BookingRepository{DB: db}
	_, err = repo.GetByID(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBookingRepositoryListDecodesRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	checkIn := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	checkOut := time.Date(2024, 1, 2, 12, 0, 0, 0, time.Local)
	rows := sqlmock.NewRows(bookingTestColumns()).AddRow(
		int64(1), 2, 0, `[{"name":"Tester","phoneNumber":"0800","address":"Pune","age":30,"type":"adult"}]`,
		"0800", "Pune",
		checkIn, checkOut,
		1, "Walk-In", "", "",
		"DR", "304, 309",
		1500.0, 200.0, 1680.0, "checked-in",
		"", "", "", "", "",
	)
	mock.ExpectQuery("SELECT(.|\n)*FROM bookings ORDER BY registration_number").
		WillReturnRows(rows)

	repo := BookingRepository{DB: db}
	list, err := repo.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("List returned %d bookings, want 1", len(list))
	}
	b := list[0]
	if len(b.Guests) != 1 || b.Guests[0].Name != "Tester" {
		t.Fatalf("guests not decoded: %+v", b.Guests)
	}
	if len(b.RoomNumbers) != 2 || b.RoomNumbers[0] != 304 || b.RoomNumbers[1] != 309 {
		t.Fatalf("room numbers not decoded: %v", b.RoomNumbers)
	}
	if b.Status != models.StatusCheckedIn || b.RoomCategory != models.CategoryDouble {
		t.Fatalf("enums not decoded: status=%s category=%s", b.Status, b.RoomCategory)
	}
}

func bookingTestColumns() []string {
	return []string{
		"registration_number", "number_of_adults", "number_of_children", "guests_json",
		"phone_number", "address",
		"check_in_datetime", "check_out_datetime",
		"number_of_rooms", "booking_type", "ota_name", "ota_booking_id",
		"room_category", "room_numbers",
		"room_rent", "advance_payment", "total_amount", "status",
		"email", "alternate_contact", "company_name", "company_address", "company_gst",
	}
}
