package errs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsValidation_SurvivesWrapping(t *testing.T) {
	base := NewValidation("amount", MsgAmountRange)
	wrapped := fmt.Errorf("validate application: %w", base)

	ve, ok := AsValidation(wrapped)
	require.True(t, ok)
	assert.Equal(t, "amount", ve.Field)
	assert.Equal(t, MsgAmountRange, ve.Message)

	_, ok = AsConfiguration(wrapped)
	assert.False(t, ok)
}

func TestAsConfiguration_SurvivesWrapping(t *testing.T) {
	base := NewConfiguration(StateNotFound("PEN"))
	wrapped := fmt.Errorf("find state: %w", base)

	ce, ok := AsConfiguration(wrapped)
	require.True(t, ok)
	assert.Contains(t, ce.Message, "PEN")

	_, ok = AsValidation(wrapped)
	assert.False(t, ok)
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "email: "+MsgEmailInvalid, NewValidation("email", MsgEmailInvalid).Error())
	assert.Equal(t, MsgBodyRequired, NewValidation("", MsgBodyRequired).Error())
}
