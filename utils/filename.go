package utils

import (
	"regexp"
	"strings"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// QuotationFileName builds the PDF file name for a customer, e.g.
// "Quotation_John_Doe.pdf". Spaces become underscores and anything outside
// [A-Za-z0-9_-] is dropped so the name is safe on every filesystem.
func QuotationFileName(customerName string) string {
	name := strings.TrimSpace(customerName)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFileChars.ReplaceAllString(name, "")
	if name == "" {
		name = "Customer"
	}
	return "Quotation_" + name + ".pdf"
}
