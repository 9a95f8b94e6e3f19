package utils

import (
	"regexp"
	"strings"
)

var (
	nameRegex   = regexp.MustCompile(`^[A-Za-z ]+$`)
	mobileRegex = regexp.MustCompile(`^\d{10}$`)
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidCustomerName reports whether a customer name contains only letters
// and spaces and is non-empty after trimming.
func ValidCustomerName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	return nameRegex.MatchString(name)
}

// ValidMobile reports whether a mobile number is exactly 10 digits.
func ValidMobile(mobile string) bool {
	return mobileRegex.MatchString(mobile)
}

// ValidEmail performs a basic shape check on an email address.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
