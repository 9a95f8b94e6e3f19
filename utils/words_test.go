package utils

import "testing"

func TestToIndianWords(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "Zero Rupees Only"},
		{"negative clamps to zero", -500, "Zero Rupees Only"},
		{"single digit", 7, "Seven Rupees Only"},
		{"teen", 14, "Fourteen Rupees Only"},
		{"tens", 40, "Forty Rupees Only"},
		{"tens with ones", 99, "Ninety Nine Rupees Only"},
		{"hundred", 100, "One Hundred Rupees Only"},
		{"hundred with remainder", 245, "Two Hundred and Forty Five Rupees Only"},
		{"thousand", 1000, "One Thousand Rupees Only"},
		{"thousand with remainder", 1001, "One Thousand One Rupees Only"},
		{"one lakh", 100000, "One Lakh Rupees Only"},
		{"one crore", 10000000, "One Crore Rupees Only"},
		{"twelve lakh", 1234567, "Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven Rupees Only"},
		{"one lakh fifty thousand", 150000, "One Lakh Fifty Thousand Rupees Only"},
		{"crore with remainder", 23456789, "Two Crore Thirty Four Lakh Fifty Six Thousand Seven Hundred and Eighty Nine Rupees Only"},
		{"fraction truncated", 99.99, "Ninety Nine Rupees Only"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToIndianWords(tc.amount)
			if got != tc.want {
				t.Errorf("ToIndianWords(%v) = %q, want %q", tc.amount, got, tc.want)
			}
		})
	}
}

func TestToIndianWordsUpper(t *testing.T) {
	got := ToIndianWordsUpper(150000)
	want := "ONE LAKH FIFTY THOUSAND RUPEES ONLY"
	if got != want {
		t.Errorf("ToIndianWordsUpper(150000) = %q, want %q", got, want)
	}
}
