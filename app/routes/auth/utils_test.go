package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJWTSecretFallsBackToDefault(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Equal(t, []byte("smart-campus-secret-key"), getJWTSecret())

	t.Setenv("JWT_SECRET", "configured-secret")
	assert.Equal(t, []byte("configured-secret"), getJWTSecret())
}

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "round-trip-secret")

	token, err := GenerateJWT(7, "jane@example.com", "Jane Doe", "TEACHER")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "TEACHER", claims.Role)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := GenerateJWT(7, "jane@example.com", "Jane Doe", "TEACHER")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
