package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	intdb "hoteldesk/internal/db"
	"hoteldesk/internal/domain"
	"hoteldesk/internal/domain/models"
	"hoteldesk/internal/utils"
)

const bookingColumns = `
	registration_number, number_of_adults, number_of_children, guests_json,
	COALESCE(phone_number,''), COALESCE(address,''),
	check_in_datetime, check_out_datetime,
	number_of_rooms, COALESCE(booking_type,''), COALESCE(ota_name,''), COALESCE(ota_booking_id,''),
	COALESCE(room_category,''), COALESCE(room_numbers,''),
	room_rent, advance_payment, total_amount, COALESCE(status,''),
	COALESCE(email,''), COALESCE(alternate_contact,''),
	COALESCE(company_name,''), COALESCE(company_address,''), COALESCE(company_gst,'')`

// BookingRepository persists the booking collection in MySQL. Guests are kept
// as a JSON column and room numbers as a comma list, so the row stays close
// to the single-blob shape the desk app always worked with.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) List() ([]models.Booking, error) {
	rows, err := r.DB.Query(`SELECT` + bookingColumns + ` FROM bookings ORDER BY registration_number ASC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list bookings", Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "failed to scan booking", Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "row iteration error", Err: err}
	}
	return out, nil
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "registration_number", Msg: "invalid id"}
	}
	row := r.DB.QueryRow(`SELECT`+bookingColumns+` FROM bookings WHERE registration_number = ? LIMIT 1`, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to load booking", Err: err}
	}
	return b, nil
}

func (r BookingRepository) Create(b models.Booking) (models.Booking, error) {
	if err := r.ensureBookingsTable(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	// registration numbers are sequential over the whole collection; no
	// collision re-check, matching the desk's count+1 convention
	var count int64
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings`).Scan(&count); err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to count bookings", Err: err}
	}
	b.RegistrationNumber = count + 1

	guests, err := json.Marshal(b.Guests)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to encode guests", Err: err}
	}

	_, err = r.DB.Exec(`
		INSERT INTO bookings (
			registration_number, number_of_adults, number_of_children, guests_json,
			phone_number, address, check_in_datetime, check_out_datetime,
			number_of_rooms, booking_type, ota_name, ota_booking_id,
			room_category, room_numbers, room_rent, advance_payment, total_amount, status,
			email, alternate_contact, company_name, company_address, company_gst
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.RegistrationNumber, b.NumberOfAdults, b.NumberOfChildren, string(guests),
		b.PhoneNumber, b.Address, b.CheckInDateTime, nullTime(b.CheckOutDateTime),
		b.NumberOfRooms, string(b.BookingType), intdb.NullIfEmpty(b.OTAName), intdb.NullIfEmpty(b.OTABookingID),
		string(b.RoomCategory), utils.JoinRoomList(b.RoomNumbers), b.RoomRent, b.AdvancePayment, b.TotalAmount, string(b.Status),
		intdb.NullIfEmpty(b.Email), intdb.NullIfEmpty(b.AlternateContact),
		intdb.NullIfEmpty(b.CompanyName), intdb.NullIfEmpty(b.CompanyAddress), intdb.NullIfEmpty(b.CompanyGST),
	)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to insert booking", Err: err}
	}
	return b, nil
}

func (r BookingRepository) Update(b models.Booking) error {
	if b.RegistrationNumber <= 0 {
		return domain.ValidationError{Field: "registration_number", Msg: "invalid id"}
	}

	guests, err := json.Marshal(b.Guests)
	if err != nil {
		return domain.InternalError{Msg: "failed to encode guests", Err: err}
	}

	res, err := r.DB.Exec(`
		UPDATE bookings SET
			number_of_adults = ?, number_of_children = ?, guests_json = ?,
			phone_number = ?, address = ?, check_in_datetime = ?, check_out_datetime = ?,
			number_of_rooms = ?, booking_type = ?, ota_name = ?, ota_booking_id = ?,
			room_category = ?, room_numbers = ?, room_rent = ?, advance_payment = ?,
			total_amount = ?, status = ?,
			email = ?, alternate_contact = ?, company_name = ?, company_address = ?, company_gst = ?
		WHERE registration_number = ?`,
		b.NumberOfAdults, b.NumberOfChildren, string(guests),
		b.PhoneNumber, b.Address, b.CheckInDateTime, nullTime(b.CheckOutDateTime),
		b.NumberOfRooms, string(b.BookingType), intdb.NullIfEmpty(b.OTAName), intdb.NullIfEmpty(b.OTABookingID),
		string(b.RoomCategory), utils.JoinRoomList(b.RoomNumbers), b.RoomRent, b.AdvancePayment,
		b.TotalAmount, string(b.Status),
		intdb.NullIfEmpty(b.Email), intdb.NullIfEmpty(b.AlternateContact),
		intdb.NullIfEmpty(b.CompanyName), intdb.NullIfEmpty(b.CompanyAddress), intdb.NullIfEmpty(b.CompanyGST),
		b.RegistrationNumber,
	)
	if err != nil {
		return domain.InternalError{Msg: "failed to update booking", Err: err}
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		// zero rows can also mean a no-op update, so re-check existence
		var one int
		if err := r.DB.QueryRow(`SELECT 1 FROM bookings WHERE registration_number = ? LIMIT 1`, b.RegistrationNumber).Scan(&one); err == sql.ErrNoRows {
			return domain.NotFoundError{Resource: "booking"}
		}
	}
	return nil
}

func (r BookingRepository) ensureBookingsTable() error {
	if r.DB == nil {
		return fmt.Errorf("db not available")
	}
	if intdb.HasTable(r.DB, "bookings") {
		// tables created before the company billing fields shipped lack them
		if !intdb.HasColumn(r.DB, "bookings", "company_gst") {
			_, err := r.DB.Exec(`
				ALTER TABLE bookings
					ADD COLUMN company_name VARCHAR(255),
					ADD COLUMN company_address VARCHAR(255),
					ADD COLUMN company_gst VARCHAR(50)`)
			return err
		}
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS bookings (
	registration_number BIGINT PRIMARY KEY,
	number_of_adults INT NOT NULL DEFAULT 1,
	number_of_children INT NOT NULL DEFAULT 0,
	guests_json TEXT,
	phone_number VARCHAR(100),
	address VARCHAR(255),
	check_in_datetime DATETIME NOT NULL,
	check_out_datetime DATETIME NULL,
	number_of_rooms INT NOT NULL DEFAULT 1,
	booking_type VARCHAR(50),
	ota_name VARCHAR(100),
	ota_booking_id VARCHAR(100),
	room_category VARCHAR(10),
	room_numbers VARCHAR(255),
	room_rent DOUBLE NOT NULL DEFAULT 0,
	advance_payment DOUBLE NOT NULL DEFAULT 0,
	total_amount DOUBLE NOT NULL DEFAULT 0,
	status VARCHAR(20) NOT NULL DEFAULT 'checked-in',
	email VARCHAR(255),
	alternate_contact VARCHAR(100),
	company_name VARCHAR(255),
	company_address VARCHAR(255),
	company_gst VARCHAR(50),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_status (status)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := r.DB.Exec(ddl)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var (
		b          models.Booking
		guestsJSON sql.NullString
		checkOut   sql.NullTime
		rooms      string
		bType      string
		category   string
		status     string
	)
	err := row.Scan(
		&b.RegistrationNumber, &b.NumberOfAdults, &b.NumberOfChildren, &guestsJSON,
		&b.PhoneNumber, &b.Address,
		&b.CheckInDateTime, &checkOut,
		&b.NumberOfRooms, &bType, &b.OTAName, &b.OTABookingID,
		&category, &rooms,
		&b.RoomRent, &b.AdvancePayment, &b.TotalAmount, &status,
		&b.Email, &b.AlternateContact,
		&b.CompanyName, &b.CompanyAddress, &b.CompanyGST,
	)
	if err != nil {
		return b, err
	}
	if guestsJSON.Valid && guestsJSON.String != "" {
		if err := json.Unmarshal([]byte(guestsJSON.String), &b.Guests); err != nil {
			return b, fmt.Errorf("decode guests for booking %d: %w", b.RegistrationNumber, err)
		}
	}
	if checkOut.Valid {
		b.CheckOutDateTime = checkOut.Time
	}
	b.RoomNumbers = utils.SplitRoomList(rooms)
	b.BookingType = models.BookingType(bType)
	b.RoomCategory = models.RoomCategory(category)
	b.Status = models.BookingStatus(status)
	return b, nil
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
