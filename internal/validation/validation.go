// Package validation holds request validation shared by handlers and
// services.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

var accountNumberPattern = regexp.MustCompile(`^\d{16}$`)

// Struct validates a request struct against its `validate` tags.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// ValidAccountNumber reports whether s is a 16-digit account number.
func ValidAccountNumber(s string) bool {
	return accountNumberPattern.MatchString(strings.TrimSpace(s))
}

// ValidAmount reports whether d is a positive monetary value with at most
// two decimal places.
func ValidAmount(d decimal.Decimal) bool {
	return d.GreaterThan(decimal.Zero) && d.Exponent() >= -2
}

// StrongPassword requires at least 8 characters including a special one.
func StrongPassword(s string) bool {
	return len(s) >= 8 && HasSpecialChar(s)
}

// HasSpecialChar reports whether s contains a non-alphanumeric character.
func HasSpecialChar(s string) bool {
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return true
		}
	}
	return false
}
