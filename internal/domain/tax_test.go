package domain

import (
	"math"
	"testing"
)

func TestComputeTaxLowerSlab(t *testing.T) {
	for _, base := range []float64{0, 1, 1500, 4500, 7499.99, 7500} {
		tax := ComputeTax(base)
		if tax.RateLabel != "12%" {
			t.Errorf("ComputeTax(%v).RateLabel = %q, want 12%%", base, tax.RateLabel)
		}
		if tax.HalfRateLabel() != "6%" {
			t.Errorf("ComputeTax(%v).HalfRateLabel() = %q, want 6%%", base, tax.HalfRateLabel())
		}
		want := base * 0.06
		if tax.CGST != want || tax.SGST != want {
			t.Errorf("ComputeTax(%v) cgst=%v sgst=%v, want both %v", base, tax.CGST, tax.SGST, want)
		}
		if math.Abs(tax.TotalTax-2*want) > 1e-9 {
			t.Errorf("ComputeTax(%v).TotalTax = %v, want %v", base, tax.TotalTax, 2*want)
		}
	}
}

func TestComputeTaxUpperSlab(t *testing.T) {
	for _, base := range []float64{7500.01, 7501, 10000, 99999} {
		tax := ComputeTax(base)
		if tax.RateLabel != "18%" {
			t.Errorf("ComputeTax(%v).RateLabel = %q, want 18%%", base, tax.RateLabel)
		}
		if tax.HalfRateLabel() != "9%" {
			t.Errorf("ComputeTax(%v).HalfRateLabel() = %q, want 9%%", base, tax.HalfRateLabel())
		}
		want := base * 0.09
		if tax.CGST != want || tax.SGST != want {
			t.Errorf("ComputeTax(%v) cgst=%v sgst=%v, want both %v", base, tax.CGST, tax.SGST, want)
		}
	}
}
