package utils

import (
	"regexp"
	"strconv"
)

var (
	emailRegex   = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	contactRegex = regexp.MustCompile(`^03[0-9]{2}-[0-9]{7}$`)
	licenseRegex = regexp.MustCompile(`^\d{5,7}$`)
)

// IsValidEmail reports whether the email has a plausible mailbox@domain shape.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidContact reports whether the contact number matches the 03xx-xxxxxxx format.
func IsValidContact(contact string) bool {
	return contactRegex.MatchString(contact)
}

// IsValidLicense reports whether the medical license number is 5 to 7 digits.
func IsValidLicense(license string) bool {
	return licenseRegex.MatchString(license)
}

// IsValidAge reports whether age parses to a positive integer.
func IsValidAge(age string) bool {
	n, err := strconv.Atoi(age)
	return err == nil && n > 0
}
