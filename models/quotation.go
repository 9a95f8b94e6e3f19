package models

import "time"

// CustomerInfo is the customer block entered on the quotation form.
type CustomerInfo struct {
	Name    string `json:"customerName"`
	Address string `json:"customerAddress"`
	Mobile  string `json:"customerMobile"`
}

// DealerInfo is the dealership block printed on the quotation header and
// footer. It comes from the signed-in user's dealership profile.
type DealerInfo struct {
	Name        string `json:"dealershipName"`
	Address     string `json:"dealershipAddress"`
	RTGSDetails string `json:"rtgsDetails"`
}

// IssuedBy identifies the sales consultant who generated the quotation.
type IssuedBy struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

// QuotationLine is one row of the printed pricing table. Lines 1-10 are the
// price components, line 11 is the on-road total, line 12 is the constant
// national-promotion placeholder.
type QuotationLine struct {
	SrNo        int    `json:"srNo"`
	Particulars string `json:"particulars"`
	Rupees      string `json:"rupees"`
	Bold        bool   `json:"bold,omitempty"`
}

// QuotationDocument is the structured printable quotation. It is a pure
// value: composed once per generate action, never mutated, replaced on the
// next generation.
type QuotationDocument struct {
	ID       string `json:"id"`
	IssuedAt string `json:"issuedAt"` // day-month(abbrev)-year, e.g. 04-Sep-2026

	Customer CustomerInfo `json:"customer"`

	Model   string `json:"model"`
	Variant string `json:"variant"`
	Color   string `json:"color"`

	Lines          []QuotationLine `json:"lines"`
	TotalInWords   string          `json:"totalInWords"`
	TotalInFigures string          `json:"totalInFigures"`
	TotalAmount    float64         `json:"totalAmount"`

	Dealer   DealerInfo `json:"dealer"`
	IssuedBy IssuedBy   `json:"issuedBy"`
}

// QuotationSubmission is a saved customer enquiry, persisted when the
// consultant submits the quotation form.
type QuotationSubmission struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	CustomerName    string    `json:"customerName"`
	CustomerMobile  string    `json:"mobileNumber"`
	CustomerAddress string    `json:"customerAddress"`
	Model           string    `json:"model"`
	Variant         string    `json:"variant"`
	Color           string    `json:"color"`
	TotalAmount     float64   `json:"totalAmount"`
	CreatedAt       time.Time `json:"createdAt"`
}

// GenerateQuotationRequest is the body of POST /quotation/generate.
type GenerateQuotationRequest struct {
	UserID          string `json:"userId"`
	CustomerName    string `json:"customerName"`
	CustomerAddress string `json:"customerAddress"`
	CustomerMobile  string `json:"customerMobile"`
	Model           string `json:"model"`
	Variant         string `json:"variant"`
	Color           string `json:"color"`
}

// StatusResponse is the {success, message} envelope the mobile client
// expects from every mutating endpoint.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
