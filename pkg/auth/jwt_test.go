package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_HMAC_RoundTrip(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret",
		Issuer:     "admin-panel",
		Expiration: time.Hour,
	})
	require.NoError(t, err)

	token, err := svc.GenerateToken("user-001", "tenant-001", []string{RoleAccountant})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-001", claims.UserID)
	assert.Equal(t, "tenant-001", claims.TenantID)
	assert.True(t, claims.HasRole(RoleAccountant))
	assert.False(t, claims.HasRole(RoleAdmin))
}

func TestJWTService_RejectsWrongIssuer(t *testing.T) {
	issuer, err := NewJWTService(JWTConfig{Secret: "s", Issuer: "issuer-a", Expiration: time.Hour})
	require.NoError(t, err)
	validator, err := NewJWTService(JWTConfig{Secret: "s", Issuer: "issuer-b"})
	require.NoError(t, err)

	token, err := issuer.GenerateToken("user-001", "tenant-001", nil)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{Secret: "test-secret", Expiration: time.Hour})
	require.NoError(t, err)

	token, err := svc.GenerateToken("user-001", "tenant-001", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestNewJWTService_RequiresKeyMaterial(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	assert.Error(t, err)
}
