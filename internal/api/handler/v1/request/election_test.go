package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateElectionRequest_Validate(t *testing.T) {
	valid := CreateElectionRequest{Name: "Board Election 2026"}
	assert.NoError(t, valid.Validate())

	fiveChars := CreateElectionRequest{Name: "abcde"}
	assert.NoError(t, fiveChars.Validate())

	tooShort := CreateElectionRequest{Name: "abcd"}
	assert.Error(t, tooShort.Validate())

	empty := CreateElectionRequest{}
	assert.Error(t, empty.Validate())

	tooLong := CreateElectionRequest{Name: strings.Repeat("x", 256)}
	assert.Error(t, tooLong.Validate())
}
