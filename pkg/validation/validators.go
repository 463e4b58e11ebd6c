package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// local@domain.tld where no part contains "@".
// Purely syntactic; it does not check deliverability.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether address has the shape local@domain.tld
// and contains no Unicode whitespace.
func IsValidEmail(address string) bool {
	if strings.IndexFunc(address, unicode.IsSpace) >= 0 {
		return false
	}
	return emailRegex.MatchString(address)
}

// New returns a validator with the custom tags registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("relay_email", RelayEmail)
}

// RelayEmail validates a string field with IsValidEmail.
// Empty values pass; combine with required when the field is mandatory.
func RelayEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return IsValidEmail(val)
}
