package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Backreference pattern, so regexp2 rather than the stdlib engine.
var repeatedCharExp = regexp2.MustCompile(`^(.)\1+$`, regexp2.None)

var errPasswordRepeatedChar = errors.New("the password must not be a single repeated character")

type SignupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (req *SignupRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required, validation.Length(8, 72)),
	)
	if err != nil {
		return err
	}

	return validatePasswordVariety(req.Password)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

type ResetPasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (req *ResetPasswordRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.OldPassword, validation.Required),
		validation.Field(&req.NewPassword, validation.Required, validation.Length(8, 72)),
	)
	if err != nil {
		return err
	}

	return validatePasswordVariety(req.NewPassword)
}

func validatePasswordVariety(password string) error {
	if matched, _ := repeatedCharExp.MatchString(password); matched {
		return errPasswordRepeatedChar
	}

	return nil
}
