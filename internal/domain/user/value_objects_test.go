//go:build unit

package user_test

import (
	"strings"
	"testing"

	"car-rental-api/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		errIs    error
	}{
		{name: "valid", username: "taro", password: "password123"},
		{name: "username is trimmed", username: "  taro ", password: "x"},
		{name: "empty username", username: "   ", password: "password123", errIs: user.ErrInvalidUsername},
		{name: "too long username", username: strings.Repeat("a", 65), password: "password123", errIs: user.ErrInvalidUsername},
		{name: "empty password", username: "taro", password: "", errIs: user.ErrEmptyPassword},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			creds, err := user.NewCredentials(tc.username, tc.password)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "taro", creds.Username().Value())
			assert.Equal(t, tc.password, creds.Password().Value())
		})
	}
}
