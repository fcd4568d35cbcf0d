package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashService := &HashService{Cost: bcrypt.MinCost}

	tests := []struct {
		name        string
		password    string
		expectError error
	}{
		{
			name:     "Valid password",
			password: "securepassword",
		},
		{
			name:        "Empty password",
			password:    "",
			expectError: ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hashService.HashPassword(tt.password)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Empty(t, hash)
				return
			}
			assert.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)
			assert.True(t, hashService.ComparePassword(hash, tt.password))
			assert.False(t, hashService.ComparePassword(hash, "wrong"))
		})
	}
}
