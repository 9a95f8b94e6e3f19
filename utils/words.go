package utils

import (
	"math"
	"strings"
)

var onesWords = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen",
	"Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var tensWords = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty",
	"Sixty", "Seventy", "Eighty", "Ninety"}

// ToIndianWords renders an amount in words using the Indian numbering scale
// (Hundred, Thousand, Lakh, Crore) followed by "Rupees Only".
// The fractional part is truncated, not rounded. Zero renders as
// "Zero Rupees Only". Negative amounts are clamped to zero: quotation totals
// are sums of non-negative components, so a negative input is treated as
// missing data rather than rendered as words.
func ToIndianWords(amount float64) string {
	n := int64(math.Floor(amount))
	if n <= 0 {
		return "Zero Rupees Only"
	}
	return numberToWords(n) + " Rupees Only"
}

// numberToWords converts a positive integer to words recursively.
// Every branch recurses on a strictly smaller value, so it terminates.
func numberToWords(n int64) string {
	switch {
	case n < 20:
		return onesWords[n]
	case n < 100:
		s := tensWords[n/10]
		if n%10 != 0 {
			s += " " + onesWords[n%10]
		}
		return s
	case n < 1000:
		s := onesWords[n/100] + " Hundred"
		if n%100 != 0 {
			s += " and " + numberToWords(n%100)
		}
		return s
	case n < 100000:
		s := numberToWords(n/1000) + " Thousand"
		if n%1000 != 0 {
			s += " " + numberToWords(n%1000)
		}
		return s
	case n < 10000000:
		s := numberToWords(n/100000) + " Lakh"
		if n%100000 != 0 {
			s += " " + numberToWords(n%100000)
		}
		return s
	default:
		s := numberToWords(n/10000000) + " Crore"
		if n%10000000 != 0 {
			s += " " + numberToWords(n%10000000)
		}
		return s
	}
}

// ToIndianWordsUpper is the uppercase form used on the printed quotation.
func ToIndianWordsUpper(amount float64) string {
	return strings.ToUpper(ToIndianWords(amount))
}
