package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() JWTConfig {
	return JWTConfig{
		SecretKey: "test-secret",
		Issuer:    "warmintro-backend",
		Audience:  []string{"warmintro-api"},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	generator, err := NewJWTGenerator(testConfig(), time.Hour)
	require.NoError(t, err)
	validator, err := NewJWTValidator(testConfig())
	require.NoError(t, err)

	token, err := generator.GenerateToken("user123", "user@example.com", []string{"authenticated"})
	require.NoError(t, err)

	claims, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user123", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, []string{"authenticated"}, claims.Roles)
}

func TestValidateToken_RejectsExpired(t *testing.T) {
	generator, err := NewJWTGenerator(testConfig(), -time.Minute)
	require.NoError(t, err)
	validator, err := NewJWTValidator(testConfig())
	require.NoError(t, err)

	token, err := generator.GenerateToken("user123", "", nil)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	generator, err := NewJWTGenerator(testConfig(), time.Hour)
	require.NoError(t, err)

	otherConfig := testConfig()
	otherConfig.SecretKey = "another-secret"
	validator, err := NewJWTValidator(otherConfig)
	require.NoError(t, err)

	token, err := generator.GenerateToken("user123", "", nil)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_RejectsWrongIssuer(t *testing.T) {
	otherConfig := testConfig()
	otherConfig.Issuer = "somebody-else"
	generator, err := NewJWTGenerator(otherConfig, time.Hour)
	require.NoError(t, err)
	validator, err := NewJWTValidator(testConfig())
	require.NoError(t, err)

	token, err := generator.GenerateToken("user123", "", nil)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_RejectsEmpty(t *testing.T) {
	validator, err := NewJWTValidator(testConfig())
	require.NoError(t, err)

	_, err = validator.ValidateToken("  ")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestUserContextRoundTrip(t *testing.T) {
	user := &UserContext{UserID: "user123", Email: "user@example.com"}

	ctx := SetUserInContext(context.Background(), user)
	got, err := GetUserFromContext(ctx)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, err := GetUserFromContext(context.Background())

	assert.Error(t, err)
}
