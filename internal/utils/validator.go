package utils

import (
	"regexp"
	"strings"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail validates an email address against a local@domain.tld pattern
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePassword validates password length. Credential strength beyond
// length is the provider's concern.
func ValidatePassword(password string) bool {
	return len(password) >= MinPasswordLength
}

// SanitizeEmail normalizes an email address for provider calls
func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
