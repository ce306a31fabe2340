package utils

import "strconv"

var (
	wordOnes  = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	wordTeens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	wordTens  = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// NumberToWords spells out the integer part of an amount for the "Rupees: ___"
// line on receipts. Handles 0 through 99,999; larger values fall back to
// plain digits (documented limitation carried over from the billing format).
func NumberToWords(amount float64) string {
	n := int(amount)
	if n < 0 {
		return strconv.Itoa(n)
	}
	if n == 0 {
		return "Zero"
	}
	if n >= 100000 {
		return strconv.Itoa(n)
	}
	return intToWords(n)
}

func intToWords(n int) string {
	switch {
	case n < 10:
		return wordOnes[n]
	case n < 20:
		return wordTeens[n-10]
	case n < 100:
		s := wordTens[n/10]
		if n%10 != 0 {
			s += " " + wordOnes[n%10]
		}
		return s
	case n < 1000:
		s := wordOnes[n/100] + " Hundred"
		if n%100 != 0 {
			s += " " + intToWords(n%100)
		}
		return s
	default:
		s := intToWords(n/1000) + " Thousand"
		if n%1000 != 0 {
			s += " " + intToWords(n%1000)
		}
		return s
	}
}
