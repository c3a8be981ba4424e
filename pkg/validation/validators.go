package validation

import (
	"reflect"
	"regexp"
	"strings"

	"techflow-web-backend/pkg/whatsapp"

	"github.com/go-playground/validator/v10"
)

// Digits, plus, dash, spaces and parentheses only. Length is checked by min=10.
var phoneRegex = regexp.MustCompile(`^[0-9+\-\s()]+$`)

// A Colombian mobile number has 10 digits; separators don't count.
const minPhoneDigits = 10

// New returns a validator that reports JSON field names and knows the custom tags.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("accepted", Accepted)
}

// ValidPhone validates the characters of a phone number and requires
// at least minPhoneDigits digits among them.
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return phoneRegex.MatchString(val) && len(whatsapp.Digits(val)) >= minPhoneDigits
}

// Accepted requires a boolean field to be true, e.g. a consent checkbox
func Accepted(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Bool {
		return false
	}
	return field.Bool()
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
