package domain

// GST slab boundary: stays billed at or under this base amount per the slab
// rule fall in the 12% bracket, everything above in the 18% bracket.
const TaxSlabThreshold = 7500.0

// TaxBreakdown carries the CGST/SGST split for a base charge. CGST and SGST
// are always equal halves under this slab rule. No rounding happens here;
// amounts are rounded at display time only.
type TaxBreakdown struct {
	CGST      float64 `json:"cgst"`
	SGST      float64 `json:"sgst"`
	TotalTax  float64 `json:"totalTax"`
	RateLabel string  `json:"taxRate"` // "12%" or "18%"
}

// HalfRateLabel returns the per-component rate ("6%" or "9%") for receipt lines.
func (t TaxBreakdown) HalfRateLabel() string {
	if t.RateLabel == "12%" {
		return "6%"
	}
	return "9%"
}

// ComputeTax applies the two-bracket GST slab to a base room charge.
func ComputeTax(baseAmount float64) TaxBreakdown {
	if baseAmount <= TaxSlabThreshold {
		cgst := baseAmount * 0.06
		sgst := baseAmount * 0.06
		return TaxBreakdown{CGST: cgst, SGST: sgst, TotalTax: cgst + sgst, RateLabel: "12%"}
	}
	cgst := baseAmount * 0.09
	sgst := baseAmount * 0.09
	return TaxBreakdown{CGST: cgst, SGST: sgst, TotalTax: cgst + sgst, RateLabel: "18%"}
}
