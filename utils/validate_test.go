package utils

import "testing"

func TestValidCustomerName(t *testing.T) {
	valid := []string{"John Doe", "A", "Rahul Kumar Sharma"}
	for _, name := range valid {
		if !ValidCustomerName(name) {
			t.Errorf("ValidCustomerName(%q) = false, want true", name)
		}
	}

	invalid := []string{"", "   ", "John123", "O'Brien", "rahul@", "name-with-dash", "John\tDoe", "John\nDoe"}
	for _, name := range invalid {
		if ValidCustomerName(name) {
			t.Errorf("ValidCustomerName(%q) = true, want false", name)
		}
	}
}

func TestValidMobile(t *testing.T) {
	if !ValidMobile("9876543210") {
		t.Error("ValidMobile(9876543210) = false, want true")
	}
	for _, m := range []string{"", "12345", "98765432100", "98765abc10", "987 654321"} {
		if ValidMobile(m) {
			t.Errorf("ValidMobile(%q) = true, want false", m)
		}
	}
}

func TestValidEmail(t *testing.T) {
	if !ValidEmail("dsc@dealer.in") {
		t.Error("ValidEmail(dsc@dealer.in) = false, want true")
	}
	for _, e := range []string{"", "nodomain", "a@b", "a b@c.d"} {
		if ValidEmail(e) {
			t.Errorf("ValidEmail(%q) = true, want false", e)
		}
	}
}

func TestQuotationFileName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"John Doe", "Quotation_John_Doe.pdf"},
		{"  Asha  ", "Quotation_Asha.pdf"},
		{"", "Quotation_Customer.pdf"},
	}
	for _, tc := range cases {
		if got := QuotationFileName(tc.in); got != tc.want {
			t.Errorf("QuotationFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
