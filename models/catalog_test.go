package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"nil", nil, 0},
		{"float", 123456.0, 123456},
		{"int", 5000, 5000},
		{"plain string", "150000", 150000},
		{"grouped string", "1,50,000", 150000},
		{"rupee prefix", "₹ 12,34,567", 1234567},
		{"whitespace", "  2500 ", 2500},
		{"empty string", "", 0},
		{"non-numeric", "N/A", 0},
		{"bool", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceAmount(tt.in); got != tt.want {
				t.Errorf("CoerceAmount(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCatalogEntryJSONRoundTrip(t *testing.T) {
	raw := `{
		"Model": "Nexon",
		"Variant": "Smart",
		"ColorOptions": "Flame Red, Daytona Grey",
		"Ex Show-room Price": 800000,
		"Insurance With PB+KP+ZD+EP/BP+CM+RTI": 45000,
		"TAX+ Reg Charges RTO": 70000,
		"RTO Cess 2%": 16000,
		"TCS": 8000,
		"FASTAG Chrg": 600,
		"Coating": 5000,
		"Extended Warranty (4th year upto 1,20,000km)": "12,000",
		"Shield of Trust(SOT)": 9000,
		"Essential Accessories": 4400,
		"On Road (Add : Sr. No.1 to 10)": 970000
	}`

	var entry CatalogEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if entry.Model != "Nexon" || entry.Variant != "Smart" {
		t.Errorf("got model/variant %q/%q", entry.Model, entry.Variant)
	}
	if entry.ExtendedWarranty != 12000 {
		t.Errorf("ExtendedWarranty = %v, want 12000 (string cell should coerce)", entry.ExtendedWarranty)
	}
	if entry.OnRoadTotal != 970000 {
		t.Errorf("OnRoadTotal = %v, want 970000", entry.OnRoadTotal)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var back CatalogEntry
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal of marshalled entry failed: %v", err)
	}
	if !reflect.DeepEqual(entry, back) {
		t.Errorf("round trip changed the entry:\n before %+v\n after  %+v", entry, back)
	}
}

func TestComponentsOrder(t *testing.T) {
	entry := CatalogEntry{ExShowroom: 1, Insurance: 2, TaxRegistration: 3, Cess: 4, TCS: 5,
		Fastag: 6, Coating: 7, ExtendedWarranty: 8, ShieldOfTrust: 9, Accessories: 10}

	components := entry.Components()
	if len(components) != 10 {
		t.Fatalf("got %d components, want 10", len(components))
	}
	for i, c := range components {
		if c.Label != ComponentKeys[i] {
			t.Errorf("component %d label = %q, want %q", i, c.Label, ComponentKeys[i])
		}
		if c.Amount != float64(i+1) {
			t.Errorf("component %d amount = %v, want %v", i, c.Amount, i+1)
		}
	}
}

func TestTotalMatchesComponents(t *testing.T) {
	entry := CatalogEntry{
		ExShowroom: 800000, Insurance: 45000, TaxRegistration: 70000, Cess: 16000,
		TCS: 8000, Fastag: 600, Coating: 5000, ExtendedWarranty: 12000,
		ShieldOfTrust: 9000, Accessories: 4400, OnRoadTotal: 970000,
	}
	if !entry.TotalMatchesComponents(0.01) {
		t.Errorf("total %v should match component sum %v", entry.OnRoadTotal, entry.ComponentSum())
	}

	entry.OnRoadTotal = 975000
	if entry.TotalMatchesComponents(0.01) {
		t.Errorf("total %v should not match component sum %v", entry.OnRoadTotal, entry.ComponentSum())
	}
}

func TestColors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "Red, Blue", []string{"Red", "Blue"}},
		{"extra whitespace", " Flame Red ,  Daytona Grey ", []string{"Flame Red", "Daytona Grey"}},
		{"trailing comma", "Red,", []string{"Red"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := CatalogEntry{ColorOptions: tt.in}
			if got := entry.Colors(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Colors(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
