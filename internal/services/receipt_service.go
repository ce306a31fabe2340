package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	intconfig "hoteldesk/internal/config"
	"hoteldesk/internal/domain"
	"hoteldesk/internal/domain/models"
	"hoteldesk/internal/repositories"
	"hoteldesk/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReceiptService renders the advance and final payment documents for a
// booking. Amounts are derived from the stored rent, room count and stay
// window at render time, never read back from the record.
type ReceiptService struct {
	Store     repositories.BookingStore
	HotelName string
	GSTIN     string
	RequestID string
	Loader    func(int64) (models.Booking, error)
}

const defaultGSTIN = "36AAHFH7018Q3ZS"

// ReceiptFileName names a generated slip: <kind>_Receipt_<registration>_<date>.<ext>.
func ReceiptFileName(kind string, registrationNumber int64, now time.Time, ext string) string {
	return fmt.Sprintf("%s_Receipt_%d_%s.%s", kind, registrationNumber, utils.FormatDate(now), ext)
}

func (s ReceiptService) hotelName() string {
	if strings.TrimSpace(s.HotelName) != "" {
		return s.HotelName
	}
	return "HOTEL MANAGEMENT SYSTEM"
}

func (s ReceiptService) load(id int64) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	if s.Store != nil {
		return s.Store.GetByID(id)
	}
	return repositories.BookingRepository{DB: intconfig.DB}.GetByID(id)
}

// AdvanceReceipt renders the deposit slip handed over at check-in (and again
// whenever the advance goes up on an edit).
func (s ReceiptService) AdvanceReceipt(bookingID int64) ([]byte, string, error) {
	b, err := s.load(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipt", "advance", fmt.Sprintf("registration_number=%d", bookingID))
	return s.buildAdvancePDF(b)
}

// FinalReceiptPDF renders the cash bill for a completed stay.
func (s ReceiptService) FinalReceiptPDF(bookingID int64) ([]byte, string, error) {
	b, err := s.load(bookingID)
	if err != nil {
		return nil, "", err
	}
	if err := requireStayWindow(b); err != nil {
		utils.LogEvent(s.RequestID, "receipt", "skip", fmt.Sprintf("registration_number=%d reason=%v", bookingID, err))
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipt", "final_pdf", fmt.Sprintf("registration_number=%d", bookingID))
	return s.buildFinalPDF(b)
}

// FinalReceiptText renders the plain-text cash bill offered next to the PDF.
func (s ReceiptService) FinalReceiptText(bookingID int64) ([]byte, string, error) {
	b, err := s.load(bookingID)
	if err != nil {
		return nil, "", err
	}
	if err := requireStayWindow(b); err != nil {
		utils.LogEvent(s.RequestID, "receipt", "skip", fmt.Sprintf("registration_number=%d reason=%v", bookingID, err))
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipt", "final_text", fmt.Sprintf("registration_number=%d", bookingID))
	return s.buildFinalText(b)
}

func requireStayWindow(b models.Booking) error {
	if b.CheckInDateTime.IsZero() || b.CheckOutDateTime.IsZero() {
		return domain.DataIntegrityError{Resource: "booking", Msg: "missing check-in or check-out time"}
	}
	return nil
}

func (s ReceiptService) buildAdvancePDF(b models.Booking) ([]byte, string, error) {
	now := utils.NowUTC()
	company := docSafe(b.CompanyName, s.hotelName())
	guest := docSafe(b.PrimaryGuest().Name, "-")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Advance Payment Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, s.hotelName())
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "ADVANCE PAYMENT RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		fmt.Sprintf("No. %04d", b.RegistrationNumber),
		"Date: " + utils.FormatDate(now),
		"Time: " + utils.FormatTime(now),
		"",
		"Received deposit towards Room Rent from",
		"",
		"Shri: " + guest,
		"Occupant of Room No: " + utils.JoinRoomList(b.RoomNumbers),
		fmt.Sprintf("Rent Charges Rs: %s per Day", utils.FormatMoney(b.RoomRent)),
		fmt.Sprintf("the sum of Rupees: %s Only", utils.FormatMoney(b.AdvancePayment)),
		"towards Advance",
		"",
		"For " + company,
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.Cell(120, 7, "Rs. "+utils.FormatMoney(b.AdvancePayment))
	pdf.Cell(0, 7, "CASHIER")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "The Guest's are requested to deposit and withdraw the amount in person only producing this receipt", "", "", false)
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 7, "GUEST SIGN.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := ReceiptFileName("Advance", b.RegistrationNumber, now, "pdf")
	return buf.Bytes(), filename, nil
}

func (s ReceiptService) buildFinalPDF(b models.Booking) ([]byte, string, error) {
	now := utils.NowUTC()
	quote := domain.ComputeTotal(b.RoomRent, b.NumberOfRooms, b.CheckInDateTime, b.CheckOutDateTime)
	balance := quote.Total - b.AdvancePayment

	company := docSafe(b.CompanyName, s.hotelName())
	gstin := docSafe(b.CompanyGST, docSafe(s.GSTIN, defaultGSTIN))
	guest := b.PrimaryGuest()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Final Payment Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, company)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "FINAL PAYMENT RECEIPT - CASH BILL")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Bill No. %04d", b.RegistrationNumber))
	pdf.Ln(6)
	pdf.Cell(0, 6, "GSTIN: "+gstin)
	pdf.Ln(10)

	pdf.Cell(0, 6, "Name: "+docSafe(guest.Name, "-"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "From: "+docSafe(guest.Address, "-"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Date: "+utils.FormatDate(now))
	pdf.Ln(8)

	persons := b.NumberOfAdults + b.NumberOfChildren
	pdf.Cell(0, 6, fmt.Sprintf("No. of Person: %d", persons))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Adults: %d, Children: %d", b.NumberOfAdults, b.NumberOfChildren))
	pdf.Ln(8)

	if len(b.Guests) > 0 {
		pdf.Cell(0, 6, "Guest Details:")
		pdf.Ln(6)
		for i, g := range b.Guests {
			if g.Name == "" {
				continue
			}
			pdf.Cell(0, 6, fmt.Sprintf("  %d. %s (Age: %d)", i+1, g.Name, g.Age))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(60, 6, "ARRIVAL")
	pdf.Cell(60, 6, "DEPARTURE")
	pdf.Cell(30, 6, "ROOM No.")
	pdf.Cell(0, 6, "TYPE OF ROOM")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(60, 6, "Date: "+utils.FormatDate(b.CheckInDateTime))
	pdf.Cell(60, 6, "Date: "+utils.FormatDate(b.CheckOutDateTime))
	pdf.Cell(30, 6, utils.JoinRoomList(b.RoomNumbers))
	pdf.Cell(0, 6, string(b.RoomCategory))
	pdf.Ln(6)
	pdf.Cell(60, 6, "Time: "+utils.FormatTime(b.CheckInDateTime))
	pdf.Cell(60, 6, "Time: "+utils.FormatTime(b.CheckOutDateTime))
	pdf.Cell(0, 6, "Rate per day: Rs. "+utils.FormatMoney(b.RoomRent))
	pdf.Ln(12)

	half := quote.Tax.HalfRateLabel()
	rows := []struct {
		label, amount string
	}{
		{fmt.Sprintf("1. Room Rent for %d days", quote.Nights), "Rs. " + utils.FormatMoney(quote.BaseAmount)},
		{"2. CGST @ " + half, "Rs. " + utils.FormatMoney(quote.Tax.CGST)},
		{"3. SGST @ " + half, "Rs. " + utils.FormatMoney(quote.Tax.SGST)},
		{"4. Miscellaneous / Sundries", "Rs. 0"},
	}
	for _, r := range rows {
		pdf.Cell(120, 6, r.label)
		pdf.Cell(0, 6, r.amount)
		pdf.Ln(7)
	}
	pdf.Ln(2)

	pdf.Cell(0, 6, fmt.Sprintf("Total GST (%s): Rs. %s", quote.Tax.RateLabel, utils.FormatMoney(quote.Tax.TotalTax)))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "TOTAL: Rs. "+utils.FormatMoney(quote.Total))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(40, 6, "Advance")
	pdf.Cell(40, 6, "Date")
	pdf.Cell(40, 6, "Amount")
	pdf.Cell(0, 6, "Less Advance")
	pdf.Ln(6)
	pdf.Cell(40, 6, "Receipt No.")
	pdf.Cell(40, 6, utils.FormatDate(b.CheckInDateTime))
	pdf.Cell(40, 6, "Rs. "+utils.FormatMoney(b.AdvancePayment))
	pdf.Cell(0, 6, "Rs. "+utils.FormatMoney(b.AdvancePayment))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, "Balance Received / Refunded: Rs. "+utils.FormatMoney(balance))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Check Out Time 24 Hours")
	pdf.Ln(10)
	pdf.Cell(60, 6, "Regd. No.")
	pdf.Cell(60, 6, "Guest Signature")
	pdf.Cell(0, 6, "Receptionist")
	pdf.Ln(10)
	pdf.Cell(60, 6, "THANK YOU")
	pdf.Cell(60, 6, "HAPPY JOURNEY")
	pdf.Cell(0, 6, "VISIT AGAIN")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := ReceiptFileName("Final", b.RegistrationNumber, now, "pdf")
	return buf.Bytes(), filename, nil
}

func (s ReceiptService) buildFinalText(b models.Booking) ([]byte, string, error) {
	now := utils.NowUTC()
	quote := domain.ComputeTotal(b.RoomRent, b.NumberOfRooms, b.CheckInDateTime, b.CheckOutDateTime)
	balance := quote.Total - b.AdvancePayment
	guest := b.PrimaryGuest()
	half := quote.Tax.HalfRateLabel()

	var sb strings.Builder
	w := func(format string, args ...interface{}) {
		fmt.Fprintf(&sb, format+"\n", args...)
	}

	w("%s", s.hotelName())
	w("========================")
	w("FINAL PAYMENT RECEIPT - CASH BILL")
	w("========================")
	w("")
	w("Bill No. %04d", b.RegistrationNumber)
	w("GSTIN: %s", docSafe(b.CompanyGST, docSafe(s.GSTIN, defaultGSTIN)))
	w("")
	w("Name: %s", docSafe(guest.Name, "-"))
	w("From: %s", docSafe(guest.Address, "-"))
	w("Date: %s", utils.FormatDate(now))
	w("No. of Person: %d", b.NumberOfAdults+b.NumberOfChildren)
	w("")
	w("ARRIVAL                    DEPARTURE               ROOM No.    TYPE OF ROOM")
	w("Date: %s    Date: %s    %s    %s",
		utils.FormatDate(b.CheckInDateTime), utils.FormatDate(b.CheckOutDateTime),
		utils.JoinRoomList(b.RoomNumbers), b.RoomCategory)
	w("Time: %s    Time: %s", utils.FormatTime(b.CheckInDateTime), utils.FormatTime(b.CheckOutDateTime))
	w("                                              Rate per day: Rs. %s", utils.FormatMoney(b.RoomRent))
	w("")
	w("1. Room Rent for %d days                      Rs. %s", quote.Nights, utils.FormatMoney(quote.BaseAmount))
	w("2. CGST @ %s                                  Rs. %s", half, utils.FormatMoney(quote.Tax.CGST))
	w("3. SGST @ %s                                  Rs. %s", half, utils.FormatMoney(quote.Tax.SGST))
	w("4. Miscellaneous / Sundries                   Rs. 0")
	w("")
	w("Total GST (%s): Rs. %s", quote.Tax.RateLabel, utils.FormatMoney(quote.Tax.TotalTax))
	w("")
	w("Rupees: %s                 TOTAL: Rs. %s", utils.NumberToWords(quote.Total), utils.FormatMoney(quote.Total))
	w("")
	w("Advance         Date              Amount      Less Advance")
	w("Receipt No.     %s    Rs. %s    Rs. %s",
		utils.FormatDate(b.CheckInDateTime), utils.FormatMoney(b.AdvancePayment), utils.FormatMoney(b.AdvancePayment))
	w("")
	w("                    Balance Received / Refunded: Rs. %s", utils.FormatMoney(balance))
	w("")
	w("Check Out Time 24 Hours")
	w("")
	w("Regd. No.           Guest Signature           Receptionist")
	w("")
	w("THANK YOU           HAPPY JOURNEY             VISIT AGAIN")

	filename := ReceiptFileName("Final", b.RegistrationNumber, now, "txt")
	return []byte(sb.String()), filename, nil
}

func docSafe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
