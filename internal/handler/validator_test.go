package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(RedeemReferralRequest{Code: "STEPPE-AB12"}))
	assert.Error(t, v.ValidateStruct(RedeemReferralRequest{Code: "ab"}))
	assert.Error(t, v.ValidateStruct(RedeemReferralRequest{}))
}

func TestFormatValidationError(t *testing.T) {
	err := GetValidator().ValidateStruct(RedeemReferralRequest{Code: "ab"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Must be at least 3 characters", fields["code"])
}

func TestFormatValidationErrorNonValidator(t *testing.T) {
	fields := FormatValidationError(assert.AnError)
	assert.Equal(t, "Invalid request format", fields["error"])
}

func TestFormatValidationErrorNil(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
}
