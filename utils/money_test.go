package utils

import "testing"

func TestFormatINR(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{1000, "1,000"},
		{12500, "12,500"},
		{100000, "1,00,000"},
		{150000, "1,50,000"},
		{1234567, "12,34,567"},
		{10000000, "1,00,00,000"},
		{123456789, "12,34,56,789"},
		{1234567.89, "12,34,567"},
		{-12500, "-12,500"},
	}

	for _, tc := range cases {
		if got := FormatINR(tc.amount); got != tc.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatRupees(t *testing.T) {
	if got := FormatRupees(150000); got != "₹ 1,50,000" {
		t.Errorf("FormatRupees(150000) = %q, want %q", got, "₹ 1,50,000")
	}
}
