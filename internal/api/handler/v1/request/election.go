package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateElectionRequest struct {
	Name string `json:"name"`
}

func (req *CreateElectionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(5, 255)),
	)
}
