package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type AddQuestionRequest struct {
	Text        string `json:"text"`
	Description string `json:"description"`
}

func (req *AddQuestionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Text, validation.Required, validation.Length(5, 255)),
		validation.Field(&req.Description, validation.Length(0, 1000)),
	)
}

type UpdateQuestionRequest struct {
	Text        string `json:"text"`
	Description string `json:"description"`
}

func (req *UpdateQuestionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Text, validation.Required, validation.Length(5, 255)),
		validation.Field(&req.Description, validation.Length(0, 1000)),
	)
}

type AddOptionRequest struct {
	Label string `json:"label"`
}

func (req *AddOptionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Label, validation.Required, validation.Length(1, 255)),
	)
}

type UpdateOptionRequest struct {
	Label string `json:"label"`
}

func (req *UpdateOptionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Label, validation.Required, validation.Length(1, 255)),
	)
}
