package handlers

import (
	"net/http"

	"hoteldesk/internal/http/middleware"
	"hoteldesk/internal/services"

	"github.com/gin-gonic/gin"
)

var hotelName, hotelGSTIN string

// SetHotelIdentity installs the letterhead values used on receipts.
func SetHotelIdentity(name, gstin string) {
	hotelName = name
	hotelGSTIN = gstin
}

func receiptService(c *gin.Context) services.ReceiptService {
	return services.ReceiptService{
		HotelName: hotelName,
		GSTIN:     hotelGSTIN,
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/bookings/:id/advance-receipt
func GetAdvanceReceipt(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	data, filename, err := receiptService(c).AdvanceReceipt(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// GET /api/bookings/:id/receipt?format=pdf|txt
func GetFinalReceipt(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	switch c.DefaultQuery("format", "pdf") {
	case "pdf":
		data, filename, err := receiptService(c).FinalReceiptPDF(id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "application/pdf", data)
	case "txt":
		data, filename, err := receiptService(c).FinalReceiptText(id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", data)
	default:
		respondError(c, http.StatusBadRequest, "invalid_format", "format must be pdf or txt", nil)
	}
}
