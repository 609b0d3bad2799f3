package dto

import (
	"errors"
	"time"
	"unicode"
)

const dateOfBirthLayout = "2006-01-02"

// strongPassword mirrors the registration policy: at least one lowercase
// letter, one uppercase letter, one digit and one symbol. Length bounds are
// enforced by a separate rule.
func strongPassword(value interface{}) error {
	s, _ := value.(string)

	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}

	if !lower || !upper || !digit || !symbol {
		return errors.New("must contain at least one lowercase letter, one uppercase letter, one number and one symbol")
	}

	return nil
}

func isoDate(value interface{}) error {
	s, _ := value.(string)
	if _, err := parseDate(s); err != nil {
		return errors.New("must be a valid ISO 8601 date")
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateOfBirthLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
