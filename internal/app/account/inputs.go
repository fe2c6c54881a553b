package account

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"usersvc/internal/pkg/errs"
)

// RegisterInput is the body of a registration request.
type RegisterInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// Validate checks every field and reports the first failing rule of each.
// Password length is counted in bytes so every accepted password fits bcrypt's 72-byte input.
func (in RegisterInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name,
			validation.Required.Error("Name field is required"),
			validation.RuneLength(1, 30).Error("Name must be at most 30 characters"),
		),
		validation.Field(&in.Email,
			validation.Required.Error("Email field is required"),
			is.Email.Error("Email is invalid"),
		),
		validation.Field(&in.Password,
			validation.Required.Error("Password field is required"),
			validation.Length(6, 30).Error("Password must be at least 6 characters"),
		),
		validation.Field(&in.Password2,
			validation.Required.Error("Confirm Password field is required"),
			validation.By(stringEquals(in.Password, "Passwords must match")),
		),
	)
}

// LoginInput is the body of a login request.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both credentials are present and the email is well formed.
func (in LoginInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email,
			validation.Required.Error("Email field is required"),
			is.Email.Error("Email is invalid"),
		),
		validation.Field(&in.Password,
			validation.Required.Error("Password field is required"),
		),
	)
}

func stringEquals(want, message string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != want {
			return errors.New(message)
		}
		return nil
	}
}

// validationError converts the result of a Validate call into a field error map.
// Errors that are not per-field validation failures are returned unchanged.
func validationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make(errs.FieldErrors, len(fieldErrs))
	for field, fieldErr := range fieldErrs {
		fields[field] = fieldErr.Error()
	}
	return errs.NewValidationError(fields)
}
