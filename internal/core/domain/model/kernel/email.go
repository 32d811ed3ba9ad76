package kernel

import (
	"strings"

	"bookstore/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var emailValidator = validator.New(validator.WithRequiredStructEnabled())

// Email is a syntactically valid, lower-cased address.
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if err := emailValidator.Var(value, "email,max=254"); err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	return Email{value: value}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) Validate() error {
	if e.value == "" {
		return errs.NewValueIsRequiredError("email")
	}
	return nil
}
