package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{
			name: "valid user",
			user: User{Email: "test@example.com", Name: "Test User"},
		},
		{
			name:    "missing email",
			user:    User{Name: "Test User"},
			wantErr: true,
		},
		{
			name:    "invalid email format",
			user:    User{Email: "not-an-email", Name: "Test User"},
			wantErr: true,
		},
		{
			name:    "missing name",
			user:    User{Email: "test@example.com"},
			wantErr: true,
		},
	}

	for i := range tests {
		tt := &tests[i]
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUser_LockoutCycle(t *testing.T) {
	user := User{Email: "test@example.com", Name: "Test User"}

	assert.False(t, user.IsLocked())

	for i := 0; i < MaxFailedLoginAttempts-1; i++ {
		user.IncrementFailedAttempts()
		assert.False(t, user.IsLocked())
	}

	user.IncrementFailedAttempts()
	assert.True(t, user.IsLocked())
	assert.Equal(t, MaxFailedLoginAttempts, user.FailedLoginAttempts)

	user.Unlock()
	assert.False(t, user.IsLocked())
	assert.Equal(t, 0, user.FailedLoginAttempts)
}

func TestUser_ResetFailedAttempts(t *testing.T) {
	user := User{Email: "test@example.com", Name: "Test User"}

	user.IncrementFailedAttempts()
	assert.Equal(t, 1, user.FailedLoginAttempts)

	user.ResetFailedAttempts()
	assert.Equal(t, 0, user.FailedLoginAttempts)
}

func TestUser_UpdateLastLogin(t *testing.T) {
	user := User{Email: "test@example.com", Name: "Test User"}
	assert.Nil(t, user.LastLoginAt)

	user.UpdateLastLogin()
	assert.NotNil(t, user.LastLoginAt)
}
