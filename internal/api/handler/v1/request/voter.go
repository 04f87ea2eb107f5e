package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateVoterRequest struct {
	VoterID  string `json:"voter_id"`
	Password string `json:"password"`
}

func (req *CreateVoterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.VoterID, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Password, validation.Required),
	)
}

type ResetVoterPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

func (req *ResetVoterPasswordRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.NewPassword, validation.Required, validation.Length(8, 72)),
	)
	if err != nil {
		return err
	}

	return validatePasswordVariety(req.NewPassword)
}
