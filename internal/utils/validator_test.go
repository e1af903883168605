// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,strong_password"`
}

func TestStrongPassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"valid", "Password1", true},
		{"too short", "Pass1", false},
		{"no upper", "password1", false},
		{"no lower", "PASSWORD1", false},
		{"no number", "Passwords", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(credentials{
				Email:    "user@example.com",
				Password: tc.password,
			})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(credentials{Email: "not-an-email", Password: ""})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 2)

	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "Invalid email format", errs[0].Message)
	assert.Equal(t, "password", errs[1].Field)
	assert.Equal(t, "required", errs[1].Tag)
}
