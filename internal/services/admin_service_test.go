package services_test

import (
	"testing"

	"blububb/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestAdminAuthService_Login(t *testing.T) {
	auth := services.NewAdminAuthService("admin", "blububb123", "test_jwt_secret")

	token, err := auth.Login("admin", "blububb123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, "admin", claims["role"])
}

func TestAdminAuthService_Login_BadCredentials(t *testing.T) {
	auth := services.NewAdminAuthService("admin", "blububb123", "test_jwt_secret")

	_, err := auth.Login("admin", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = auth.Login("root", "blububb123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAdminAuthService_ValidateToken_Garbage(t *testing.T) {
	auth := services.NewAdminAuthService("admin", "blububb123", "test_jwt_secret")

	_, err := auth.ValidateToken("not.a.token")
	assert.Error(t, err)

	// A token signed with a different secret is rejected.
	other := services.NewAdminAuthService("admin", "blububb123", "other_secret")
	token, err := other.Login("admin", "blububb123")
	assert.NoError(t, err)
	_, err = auth.ValidateToken(token)
	assert.Error(t, err)
}
