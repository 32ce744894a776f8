// Package validation holds reusable input validation rules.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
	maxEmailLength    = 254
	maxNameLength     = 100
)

// ValidateEmail checks basic email format and length.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > maxEmailLength {
		return fmt.Errorf("email must be at most %d characters", maxEmailLength)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("email format is invalid")
	}
	if !strings.Contains(strings.SplitN(email, "@", 2)[1], ".") {
		return fmt.Errorf("email domain is invalid")
	}
	return nil
}

// ValidatePassword enforces minimum complexity: length, upper, lower, digit.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("password must be at most %d characters", maxPasswordLength)
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return fmt.Errorf("password must contain upper and lower case letters and a digit")
	}
	return nil
}

// ValidateName checks a display name is present and within bounds.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("name is required")
	}
	if len(trimmed) > maxNameLength {
		return fmt.Errorf("name must be at most %d characters", maxNameLength)
	}
	return nil
}

// ValidateRate checks a portfolio rate is non-negative.
func ValidateRate(rate float64) error {
	if rate < 0 {
		return fmt.Errorf("rate cannot be negative")
	}
	return nil
}
