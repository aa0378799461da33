package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found.
// A cross-tenant lookup surfaces as NotFound too, so existence is never
// leaked across organizations.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrEmployeeNotFound     = &NotFoundError{Entity: "employee"}
	ErrInvitationNotFound   = &NotFoundError{Entity: "invitation"}
	ErrFeedbackNotFound     = &NotFoundError{Entity: "feedback"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email in the organization"}
	ErrInvitationExists   = &AlreadyExistsError{Entity: "invitation", Context: "for this email in the organization"}
)

// Authentication Errors
var (
	ErrInvalidCredentials   = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken         = &AuthenticationError{Message: "invalid or expired token"}
	ErrAccountDeactivated   = &AuthenticationError{Message: "account is deactivated"}
	ErrInvitationInvalid    = &AuthenticationError{Message: "invalid or expired invitation token"}
	ErrOrganizationRequired = &ValidationError{Field: "organization_id", Message: "email belongs to more than one organization"}
)

// Authorization Errors
var (
	ErrForbidden          = &AuthorizationError{Message: "access denied"}
	ErrWrongOrganization  = &AuthorizationError{Message: "access denied to user from different organization"}
	ErrNotDirectReport    = &AuthorizationError{Message: "employee is not one of your direct reports"}
	ErrRegistrationClosed = &AuthorizationError{Message: "organization already has members; ask for an invitation"}
	ErrRoleNotAllowed     = &AuthorizationError{Message: "your role is not allowed to perform this action"}
	ErrInviteeRoleTooHigh = &AuthorizationError{Message: "managers may only invite employees"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
