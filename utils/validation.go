package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"hotel-manager/errs"
)

// Shared validator instance with the hotel-specific rules registered.
// Entities call ValidateStruct from their constructors.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration errors only happen for blank tag names.
	_ = v.RegisterValidation("hotelphone", phoneField)
	_ = v.RegisterValidation("hotelemail", emailField)
	return v
}

func phoneField(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

func emailField(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

// IsValidEmail requires an '@' followed by a '.' with at least one
// character in between.
func IsValidEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	if at == -1 {
		return false
	}
	return strings.IndexByte(email[at+1:], '.') >= 1
}

// IsValidPhone accepts at least 10 characters made of digits, '+', '-',
// spaces and parentheses.
func IsValidPhone(phone string) bool {
	if len(phone) < 10 {
		return false
	}
	for _, c := range phone {
		switch {
		case c >= '0' && c <= '9':
		case c == '+' || c == '-' || c == ' ' || c == '(' || c == ')':
		default:
			return false
		}
	}
	return true
}

// ValidateStruct runs the shared validator and translates the first
// failure into an errs.ValidationError so callers never see
// validator-specific types.
func ValidateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return errs.Validation("", err.Error())
	}
	fe := fieldErrs[0]
	return errs.Validation(fe.Field(), ruleMessage(fe))
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "cannot be empty"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "hotelphone":
		return "invalid phone number"
	case "hotelemail":
		return "invalid email format"
	default:
		return fmt.Sprintf("failed rule %q", fe.Tag())
	}
}
