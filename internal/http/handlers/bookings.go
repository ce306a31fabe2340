package handlers

import (
	"net/http"
	"strconv"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/domain/models"
	"hoteldesk/internal/http/middleware"
	"hoteldesk/internal/services"
	"hoteldesk/internal/utils"

	"github.com/gin-gonic/gin"
)

// bookingPayload is the check-in / edit form. Datetimes arrive as the form's
// local strings (2006-01-02T15:04), not RFC3339, so they are parsed here.
type bookingPayload struct {
	NumberOfAdults   int            `json:"numberOfAdults"`
	NumberOfChildren int            `json:"numberOfChildren"`
	Guests           []models.Guest `json:"guests"`
	CheckInDateTime  string         `json:"checkInDateTime"`
	CheckOutDateTime string         `json:"checkOutDateTime"`
	NumberOfRooms    int            `json:"numberOfRooms"`
	BookingType      string         `json:"bookingType"`
	OTAName          string         `json:"otaName"`
	OTABookingID     string         `json:"bookingId"`
	RoomCategory     string         `json:"roomCategory"`
	RoomNumbers      []int          `json:"roomNumbers"`
	RoomRent         float64        `json:"roomRent"`
	AdvancePayment   float64        `json:"advancePayment"`
	Email            string         `json:"email"`
	AlternateContact string         `json:"alternateContact"`
	CompanyName      string         `json:"companyName"`
	CompanyAddress   string         `json:"companyAddress"`
	CompanyGST       string         `json:"companyGST"`
}

func (p bookingPayload) toModel() (models.Booking, error) {
	var b models.Booking
	checkIn, err := utils.ParseDateTime(p.CheckInDateTime)
	if err != nil {
		return b, domain.ValidationError{Field: "checkInDateTime", Msg: "unrecognized datetime", Err: err}
	}
	checkOut, err := utils.ParseDateTime(p.CheckOutDateTime)
	if err != nil {
		return b, domain.ValidationError{Field: "checkOutDateTime", Msg: "unrecognized datetime", Err: err}
	}

	b = models.Booking{
		NumberOfAdults:   p.NumberOfAdults,
		NumberOfChildren: p.NumberOfChildren,
		Guests:           p.Guests,
		CheckInDateTime:  checkIn,
		CheckOutDateTime: checkOut,
		NumberOfRooms:    p.NumberOfRooms,
		BookingType:      models.BookingType(p.BookingType),
		OTAName:          p.OTAName,
		OTABookingID:     p.OTABookingID,
		RoomCategory:     models.RoomCategory(p.RoomCategory),
		RoomNumbers:      p.RoomNumbers,
		RoomRent:         p.RoomRent,
		AdvancePayment:   p.AdvancePayment,
		Email:            p.Email,
		AlternateContact: p.AlternateContact,
		CompanyName:      p.CompanyName,
		CompanyAddress:   p.CompanyAddress,
		CompanyGST:       p.CompanyGST,
	}
	return b, nil
}

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{RequestID: middleware.GetRequestID(c)}
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_registration_number", "invalid registration number", err)
		return 0, false
	}
	return id, true
}

// GET /api/bookings?status=checked-in
func ListBookings(c *gin.Context) {
	bookings, err := bookingService(c).List(models.BookingStatus(c.Query("status")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// GET /api/bookings/:id
func GetBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	b, err := bookingService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var payload bookingPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	draft, err := payload.toModel()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	created, err := bookingService(c).CheckIn(draft)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// PUT /api/bookings/:id
func UpdateBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var payload bookingPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	draft, err := payload.toModel()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	updated, advanceIncreased, err := bookingService(c).Update(id, draft)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	// advanceReceiptDue tells the frontend to fetch a fresh advance slip
	c.JSON(http.StatusOK, gin.H{"booking": updated, "advanceReceiptDue": advanceIncreased})
}

// POST /api/bookings/:id/check-out
func CheckOutBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	b, err := bookingService(c).CheckOut(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":      b,
		"finalReceipt": services.ReceiptFileName("Final", b.RegistrationNumber, utils.NowUTC(), "pdf"),
	})
}

type quoteRequest struct {
	RoomRent         float64 `json:"roomRent"`
	NumberOfRooms    int     `json:"numberOfRooms"`
	CheckInDateTime  string  `json:"checkInDateTime"`
	CheckOutDateTime string  `json:"checkOutDateTime"`
}

// POST /api/bookings/quote
func QuoteBooking(c *gin.Context) {
	var req quoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	checkIn, err := utils.ParseDateTime(req.CheckInDateTime)
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "checkInDateTime", Msg: "unrecognized datetime", Err: err})
		return
	}
	checkOut, err := utils.ParseDateTime(req.CheckOutDateTime)
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "checkOutDateTime", Msg: "unrecognized datetime", Err: err})
		return
	}

	q, err := bookingService(c).Quote(req.RoomRent, req.NumberOfRooms, checkIn, checkOut)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": q})
}
