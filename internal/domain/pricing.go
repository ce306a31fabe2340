package domain

import (
	"math"
	"time"
)

// Quote is the derived pricing for a stay. TotalAmount on a booking is never
// authoritative; it is always recomputed from these inputs.
type Quote struct {
	Nights     int          `json:"nights"`
	BaseAmount float64      `json:"baseAmount"`
	Tax        TaxBreakdown `json:"tax"`
	Total      float64      `json:"total"`
}

// Nights bills the stay in whole nights: ceil of the duration in hours over
// 24, never less than one even for a same-instant range (the checkout-after-
// checkin validation rejects those earlier in the normal flow).
func Nights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	nights := int(math.Ceil(hours / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// ComputeTotal derives base charge, tax and grand total for a stay.
func ComputeTotal(roomRent float64, numberOfRooms int, checkIn, checkOut time.Time) Quote {
	nights := Nights(checkIn, checkOut)
	base := roomRent * float64(numberOfRooms) * float64(nights)
	tax := ComputeTax(base)
	return Quote{
		Nights:     nights,
		BaseAmount: base,
		Tax:        tax,
		Total:      base + tax.TotalTax,
	}
}
