package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "feedback"}
		assert.Equal(t, "feedback not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "user"}
		err2 := &NotFoundError{Entity: "user"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "user"}
		err2 := &NotFoundError{Entity: "invitation"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrUserNotFound, ErrUserNotFound))
		assert.False(t, errors.Is(ErrUserNotFound, ErrFeedbackNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrUserNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrFeedbackNotFound)))
		assert.False(t, IsNotFound(ErrUserExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "in the organization"}
		assert.Equal(t, "user already exists in the organization", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "organization"}
		assert.Equal(t, "organization already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "invitation", Context: "for this email"}
		err2 := &AlreadyExistsError{Entity: "invitation", Context: "for this email"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrOrganizationExists))
		assert.False(t, IsAlreadyExists(ErrOrganizationNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrOrganizationRequired))
		assert.True(t, IsValidation(NewValidationError("role", "unknown role")))
		assert.False(t, IsValidation(ErrInvalidCredentials))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &AuthenticationError{Message: "invalid email or password"}
		assert.Equal(t, "invalid email or password", err.Error())
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrInvitationInvalid))
		assert.True(t, IsAuthentication(ErrAccountDeactivated))
		assert.False(t, IsAuthentication(ErrForbidden))
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &AuthorizationError{Message: "access denied"}
		assert.Equal(t, "access denied", err.Error())
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrForbidden))
		assert.True(t, IsAuthorization(ErrWrongOrganization))
		assert.True(t, IsAuthorization(ErrNotDirectReport))
		assert.True(t, IsAuthorization(ErrRegistrationClosed))
		assert.False(t, IsAuthorization(ErrInvalidToken))
	})
}

func TestConstructors(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("widget")
		assert.True(t, IsNotFound(err))
		assert.Equal(t, "widget not found", err.Error())
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("widget", "in the catalog")
		assert.True(t, IsAlreadyExists(err))
		assert.Equal(t, "widget already exists in the catalog", err.Error())
	})

	t.Run("NewAuthenticationError", func(t *testing.T) {
		err := NewAuthenticationError("token revoked")
		assert.True(t, IsAuthentication(err))
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := NewAuthorizationError("no access")
		assert.True(t, IsAuthorization(err))
	})
}
