// Package validate holds the pure field checks for donation submissions.
package validate

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	nonDigit     = regexp.MustCompile(`\D`)
)

// RequiredFields are the donation fields that must be present and non-empty,
// in the order they are reported when missing.
var RequiredFields = []string{"name", "email", "phone", "materials", "quantity"}

// MissingFields returns every required field that is absent or blank in the
// candidate payload, not just the first one.
func MissingFields(fields map[string]string) []string {
	var missing []string
	for _, name := range RequiredFields {
		if strings.TrimSpace(fields[name]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// ValidEmail reports whether the address has the basic local@domain.tld shape.
// No deeper RFC validation is attempted.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone reports whether the number contains at least ten digits once all
// formatting characters are stripped.
func ValidPhone(phone string) bool {
	return len(nonDigit.ReplaceAllString(phone, "")) >= 10
}
