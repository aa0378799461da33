package auth

import (
	"testing"
	"time"

	apperrors "feedback-hub-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewService("test-secret", 30*time.Minute)
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedID, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestValidateToken_Expired(t *testing.T) {
	service := NewService("test-secret", -time.Minute)

	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuing := NewService("issuing-secret", 30*time.Minute)
	validating := NewService("other-secret", 30*time.Minute)

	token, err := issuing.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = validating.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	service := NewService("test-secret", 30*time.Minute)

	_, err := service.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = service.ValidateToken("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestGenerateInvitationToken(t *testing.T) {
	token, err := GenerateInvitationToken()
	require.NoError(t, err)
	// 32 random bytes in unpadded base64url
	assert.Len(t, token, 43)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")

	other, err := GenerateInvitationToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
