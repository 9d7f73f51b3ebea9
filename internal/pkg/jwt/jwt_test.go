package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
)

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "8h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("u-1", "alice@co.com", user.RoleEmployee, "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	// 8 hour expiry, with some slack for test runtime
	expectedExp := time.Now().Add(8 * time.Hour).Unix()
	assert.InDelta(t, expectedExp, expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	userID, _ := decoded.Get("user_id")
	assert.Equal(t, "u-1", userID)
	email, _ := decoded.Get("email")
	assert.Equal(t, "alice@co.com", email)
	role, _ := decoded.Get("role")
	assert.Equal(t, "employee", role)
	name, _ := decoded.Get("name")
	assert.Equal(t, "Alice", name)
	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "access", tokenType)
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "not-a-duration")

	_, _, err := svc.GenerateAccessToken("u-1", "alice@co.com", user.RoleAdmin, "Alice")
	assert.Error(t, err)
}
