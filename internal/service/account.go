package service

import (
	"errors"
	"fmt"

	"feedback-hub-backend/internal/auth"
	"feedback-hub-backend/internal/database/models"
	apperrors "feedback-hub-backend/internal/errors"
	"feedback-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountService handles registration, login and the authenticated profile
type AccountService struct {
	users     repository.UserRepositoryInterface
	orgs      repository.OrganizationRepositoryInterface
	tokens    *auth.Service
	validator *validator.Validate
}

// NewAccountService creates a new account service
func NewAccountService(
	users repository.UserRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	tokens *auth.Service,
	validator *validator.Validate,
) *AccountService {
	return &AccountService{
		users:     users,
		orgs:      orgs,
		tokens:    tokens,
		validator: validator,
	}
}

// RegisterRequest represents the request to bootstrap an organization's owner
type RegisterRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Email          string    `json:"email" validate:"required,email,max=255"`
	Name           string    `json:"name" validate:"required,max=100"`
	Password       string    `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest represents a login attempt. OrganizationID disambiguates when
// the same email exists in more than one organization.
type LoginRequest struct {
	Email          string     `json:"email" validate:"required,email"`
	Password       string     `json:"password" validate:"required"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
}

// AuthResponse is returned by register, login and invitation acceptance
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Register creates the first user of an organization, who becomes its owner.
// Later users join via invitation; an open registration against a populated
// organization is rejected.
func (s *AccountService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.orgs.GetByID(req.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}
	if !org.IsActive {
		return nil, apperrors.ErrOrganizationNotFound
	}

	count, err := s.users.CountByOrganization(org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count organization users: %w", err)
	}
	if count > 0 {
		existing, err := s.users.GetByEmailInOrganization(req.Email, org.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing user: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrUserExists
		}
		return nil, apperrors.ErrRegistrationClosed
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:          req.Email,
		Name:           req.Name,
		PasswordHash:   hash,
		Role:           models.RoleOwner,
		OrganizationID: org.ID,
		IsActive:       true,
	}

	if err := s.users.Create(user); err != nil {
		// Simultaneous bootstrap registrations race on the (email, org)
		// unique index; the database rejects the second one.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueFor(user)
}

// Login verifies credentials and issues an access token
func (s *AccountService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.resolveUser(req)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDeactivated
	}

	return s.issueFor(user)
}

// Me returns the authenticated user's profile
func (s *AccountService) Me(actor *models.User) *UserResponse {
	resp := toUserResponse(actor)
	return &resp
}

func (s *AccountService) resolveUser(req *LoginRequest) (*models.User, error) {
	if req.OrganizationID != nil {
		user, err := s.users.GetByEmailInOrganization(req.Email, *req.OrganizationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		return user, nil
	}

	candidates, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	switch len(candidates) {
	case 0:
		return nil, apperrors.ErrInvalidCredentials
	case 1:
		return &candidates[0], nil
	default:
		return nil, apperrors.ErrOrganizationRequired
	}
}

func (s *AccountService) issueFor(user *models.User) (*AuthResponse, error) {
	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}
