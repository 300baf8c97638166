package controllers

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/swrzee/console/modules/core/infrastructure/api"
	"github.com/swrzee/console/pkg/constants"
)

var fieldLabels = map[string]string{
	"Email":       "Email",
	"Password":    "Password",
	"FirstName":   "First name",
	"LastName":    "Last name",
	"PhoneNumber": "Phone number",
}

func validationMessages(v interface{}) (map[string]string, bool) {
	errs := constants.Validate.Struct(v)
	if errs == nil {
		return map[string]string{}, true
	}
	errorMessages := map[string]string{}
	for _, err := range errs.(validator.ValidationErrors) {
		errorMessages[err.Field()] = messageFor(err)
	}
	return errorMessages, false
}

func messageFor(err validator.FieldError) string {
	label, ok := fieldLabels[err.Field()]
	if !ok {
		label = err.Field()
	}
	switch err.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		if n, convErr := strconv.Atoi(err.Param()); convErr == nil {
			return fmt.Sprintf("%s must be at least %d characters", label, n)
		}
		return label + " is too short"
	default:
		return label + " is invalid"
	}
}

// fieldErrorsFrom rekeys upstream validation paths onto form field
// names, which only differ by the leading capital here.
func fieldErrorsFrom(apiErr *api.Error) map[string]string {
	out := make(map[string]string, len(apiErr.Fields))
	for path, message := range apiErr.Fields {
		if path == "" {
			continue
		}
		runes := []rune(path)
		runes[0] = unicode.ToUpper(runes[0])
		out[string(runes)] = message
	}
	return out
}

type LoginDTO struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func (d *LoginDTO) Ok() (map[string]string, bool) {
	return validationMessages(d)
}

// AccountDTO backs both the super admin registration and the admin
// creation forms.
type AccountDTO struct {
	FirstName   string `validate:"required"`
	LastName    string `validate:"required"`
	Email       string `validate:"required,email"`
	PhoneNumber string `validate:"required"`
	Password    string `validate:"required,min=8"`
}

func (d *AccountDTO) Ok() (map[string]string, bool) {
	return validationMessages(d)
}

func (d *AccountDTO) Values() map[string]string {
	return map[string]string{
		"FirstName":   d.FirstName,
		"LastName":    d.LastName,
		"Email":       d.Email,
		"PhoneNumber": d.PhoneNumber,
	}
}
