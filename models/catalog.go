package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Spreadsheet column headers for a catalog row. These are the exact keys the
// pricing sheet publishes, so they appear verbatim on the wire and in the
// printed quotation's particulars column.
const (
	KeyModel            = "Model"
	KeyVariant          = "Variant"
	KeyColorOptions     = "ColorOptions"
	KeyExShowroom       = "Ex Show-room Price"
	KeyInsurance        = "Insurance With PB+KP+ZD+EP/BP+CM+RTI"
	KeyTaxRegistration  = "TAX+ Reg Charges RTO"
	KeyCess             = "RTO Cess 2%"
	KeyTCS              = "TCS"
	KeyFastag           = "FASTAG Chrg"
	KeyCoating          = "Coating"
	KeyExtendedWarranty = "Extended Warranty (4th year upto 1,20,000km)"
	KeyShieldOfTrust    = "Shield of Trust(SOT)"
	KeyAccessories      = "Essential Accessories"
	KeyOnRoadTotal      = "On Road (Add : Sr. No.1 to 10)"
)

// ComponentKeys lists the ten price-component headers in the order they
// appear on the quotation (Sr. No. 1 to 10).
var ComponentKeys = []string{
	KeyExShowroom,
	KeyInsurance,
	KeyTaxRegistration,
	KeyCess,
	KeyTCS,
	KeyFastag,
	KeyCoating,
	KeyExtendedWarranty,
	KeyShieldOfTrust,
	KeyAccessories,
}

// CatalogEntry is one priced vehicle variant from the pricing sheet.
// Entries are read-only: fetched once per session and never mutated.
type CatalogEntry struct {
	Model        string
	Variant      string
	ColorOptions string

	ExShowroom       float64
	Insurance        float64
	TaxRegistration  float64
	Cess             float64
	TCS              float64
	Fastag           float64
	Coating          float64
	ExtendedWarranty float64
	ShieldOfTrust    float64
	Accessories      float64

	OnRoadTotal float64
}

// PriceComponent is a labelled amount, ordered as printed on the quotation.
type PriceComponent struct {
	Label  string
	Amount float64
}

// Components returns the ten price components in their fixed Sr. No. order.
func (e *CatalogEntry) Components() []PriceComponent {
	return []PriceComponent{
		{KeyExShowroom, e.ExShowroom},
		{KeyInsurance, e.Insurance},
		{KeyTaxRegistration, e.TaxRegistration},
		{KeyCess, e.Cess},
		{KeyTCS, e.TCS},
		{KeyFastag, e.Fastag},
		{KeyCoating, e.Coating},
		{KeyExtendedWarranty, e.ExtendedWarranty},
		{KeyShieldOfTrust, e.ShieldOfTrust},
		{KeyAccessories, e.Accessories},
	}
}

// ComponentSum adds the ten price components.
func (e *CatalogEntry) ComponentSum() float64 {
	var sum float64
	for _, c := range e.Components() {
		sum += c.Amount
	}
	return sum
}

// TotalMatchesComponents checks the on-road invariant: the published total
// must equal the sum of the ten components within the given tolerance.
func (e *CatalogEntry) TotalMatchesComponents(tolerance float64) bool {
	return math.Abs(e.ComponentSum()-e.OnRoadTotal) <= tolerance
}

// Colors splits the comma-separated ColorOptions field, trimming whitespace
// and dropping empty names.
func (e *CatalogEntry) Colors() []string {
	if e.ColorOptions == "" {
		return nil
	}
	parts := strings.Split(e.ColorOptions, ",")
	colors := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			colors = append(colors, c)
		}
	}
	return colors
}

// CoerceAmount converts a raw spreadsheet cell to a numeric amount.
// Numbers pass through; numeric strings are parsed after stripping the rupee
// sign, grouping commas, and whitespace; anything else (missing, null,
// non-numeric text) coerces to 0. The zero default is the documented policy
// for malformed price cells: the row stays usable and the bad cell simply
// contributes nothing to the total.
func CoerceAmount(v interface{}) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		s := strings.TrimSpace(n)
		s = strings.ReplaceAll(s, "₹", "")
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimSpace(s)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func coerceString(v interface{}) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// FromRecord fills the entry from a raw key→value record, applying the loose
// numeric coercion to every price cell.
func (e *CatalogEntry) FromRecord(record map[string]interface{}) {
	e.Model = coerceString(record[KeyModel])
	e.Variant = coerceString(record[KeyVariant])
	e.ColorOptions = coerceString(record[KeyColorOptions])
	e.ExShowroom = CoerceAmount(record[KeyExShowroom])
	e.Insurance = CoerceAmount(record[KeyInsurance])
	e.TaxRegistration = CoerceAmount(record[KeyTaxRegistration])
	e.Cess = CoerceAmount(record[KeyCess])
	e.TCS = CoerceAmount(record[KeyTCS])
	e.Fastag = CoerceAmount(record[KeyFastag])
	e.Coating = CoerceAmount(record[KeyCoating])
	e.ExtendedWarranty = CoerceAmount(record[KeyExtendedWarranty])
	e.ShieldOfTrust = CoerceAmount(record[KeyShieldOfTrust])
	e.Accessories = CoerceAmount(record[KeyAccessories])
	e.OnRoadTotal = CoerceAmount(record[KeyOnRoadTotal])
}

// toRecord rebuilds the wire-format record. Struct tags cannot carry these
// headers (one of them contains commas), hence the custom marshalling.
func (e *CatalogEntry) toRecord() map[string]interface{} {
	record := map[string]interface{}{
		KeyModel:        e.Model,
		KeyVariant:      e.Variant,
		KeyColorOptions: e.ColorOptions,
		KeyOnRoadTotal:  e.OnRoadTotal,
	}
	for _, c := range e.Components() {
		record[c.Label] = c.Amount
	}
	return record
}

// UnmarshalJSON decodes a catalog row object keyed by the spreadsheet
// headers defined above.
func (e *CatalogEntry) UnmarshalJSON(data []byte) error {
	var record map[string]interface{}
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}
	e.FromRecord(record)
	return nil
}

// MarshalJSON encodes the row back to the spreadsheet wire format so the
// mobile client sees exactly what the legacy script endpoint served.
func (e CatalogEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.toRecord())
}
