package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateVoterRequest_Validate(t *testing.T) {
	valid := CreateVoterRequest{VoterID: "voter-001", Password: "ballotsecret"}
	assert.NoError(t, valid.Validate())

	missingID := CreateVoterRequest{Password: "ballotsecret"}
	assert.Error(t, missingID.Validate())

	missingPassword := CreateVoterRequest{VoterID: "voter-001"}
	assert.Error(t, missingPassword.Validate())
}

func TestResetVoterPasswordRequest_Validate(t *testing.T) {
	valid := ResetVoterPasswordRequest{NewPassword: "freshsecret"}
	assert.NoError(t, valid.Validate())

	tooShort := ResetVoterPasswordRequest{NewPassword: "tiny"}
	assert.Error(t, tooShort.Validate())

	repeated := ResetVoterPasswordRequest{NewPassword: "cccccccccc"}
	assert.Error(t, repeated.Validate())
}
