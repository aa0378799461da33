package service

import (
	"errors"
	"fmt"
	"time"

	"feedback-hub-backend/internal/auth"
	"feedback-hub-backend/internal/database/models"
	apperrors "feedback-hub-backend/internal/errors"
	"feedback-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationService handles the invitation lifecycle: create, list, accept.
// An invitation moves from pending to accepted exactly once, or silently
// expires; expiry is a time comparison, not a state transition.
type InvitationService struct {
	invitations repository.InvitationRepositoryInterface
	users       repository.UserRepositoryInterface
	tokens      *auth.Service
	validator   *validator.Validate
	ttl         time.Duration
}

// NewInvitationService creates a new invitation service
func NewInvitationService(
	invitations repository.InvitationRepositoryInterface,
	users repository.UserRepositoryInterface,
	tokens *auth.Service,
	validator *validator.Validate,
	ttl time.Duration,
) *InvitationService {
	return &InvitationService{
		invitations: invitations,
		users:       users,
		tokens:      tokens,
		validator:   validator,
		ttl:         ttl,
	}
}

// CreateInvitationRequest represents the request to invite a user
type CreateInvitationRequest struct {
	Email string      `json:"email" validate:"required,email,max=255"`
	Role  models.Role `json:"role" validate:"required"`
}

// InvitationResponse represents an invitation in API responses. Token is only
// populated on creation so the caller can deliver it.
type InvitationResponse struct {
	ID            uuid.UUID   `json:"id"`
	Email         string      `json:"email"`
	Role          models.Role `json:"role"`
	Token         string      `json:"token,omitempty"`
	ExpiresAt     time.Time   `json:"expires_at"`
	AcceptedAt    *time.Time  `json:"accepted_at,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	InvitedByName string      `json:"invited_by_name,omitempty"`
}

// InvitationListResponse represents a paginated list of invitations
type InvitationListResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// AcceptInvitationRequest represents the request to redeem an invitation token
type AcceptInvitationRequest struct {
	Token    string `json:"token" validate:"required"`
	Name     string `json:"name" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Create issues an invitation into the actor's organization. Owners and
// admins may invite any non-owner role; managers may only invite employees,
// who become their direct reports on acceptance.
func (s *InvitationService) Create(actor *models.User, req *CreateInvitationRequest) (*InvitationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.Valid() || req.Role == models.RoleOwner {
		return nil, apperrors.NewValidationError("role", "invalid invitation role")
	}
	if actor.Role == models.RoleManager && req.Role != models.RoleEmployee {
		return nil, apperrors.ErrInviteeRoleTooHigh
	}

	now := time.Now()

	existing, err := s.users.GetByEmailInOrganization(req.Email, actor.OrganizationID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil && existing.IsActive {
		return nil, apperrors.ErrUserExists
	}

	pending, err := s.invitations.GetActiveByEmail(req.Email, actor.OrganizationID, now)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check pending invitations: %w", err)
	}
	if pending != nil {
		return nil, apperrors.ErrInvitationExists
	}

	token, err := auth.GenerateInvitationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation token: %w", err)
	}

	invitation := &models.Invitation{
		Email:          req.Email,
		OrganizationID: actor.OrganizationID,
		InvitedByID:    actor.ID,
		Role:           req.Role,
		Token:          token,
		ExpiresAt:      now.Add(s.ttl),
	}

	if err := s.invitations.Create(invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	resp := s.toResponse(invitation)
	resp.Token = invitation.Token
	resp.InvitedByName = actor.Name
	return resp, nil
}

// List retrieves the actor's organization invitations with pagination
func (s *InvitationService) List(actor *models.User, page, pageSize int) (*InvitationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	invitations, total, err := s.invitations.ListByOrganization(actor.OrganizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	responses := make([]InvitationResponse, len(invitations))
	for i, invitation := range invitations {
		resp := s.toResponse(&invitation)
		if invitation.InvitedBy != nil {
			resp.InvitedByName = invitation.InvitedBy.Name
		}
		responses[i] = *resp
	}

	return &InvitationListResponse{
		Invitations: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Accept redeems an invitation token: it creates the user with the invited
// role, marks the invitation accepted and logs the new user in. A token that
// is unknown, expired or already accepted fails identically.
func (s *InvitationService) Accept(req *AcceptInvitationRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()

	invitation, err := s.invitations.GetActiveByToken(req.Token, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationInvalid
		}
		return nil, fmt.Errorf("failed to look up invitation: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:          invitation.Email,
		Name:           req.Name,
		PasswordHash:   hash,
		Role:           invitation.Role,
		OrganizationID: invitation.OrganizationID,
		IsActive:       true,
	}

	// An employee invited by a manager reports to that manager.
	if invitation.Role == models.RoleEmployee {
		inviter, err := s.users.GetByID(invitation.InvitedByID)
		if err == nil && inviter.Role == models.RoleManager && inviter.OrganizationID == invitation.OrganizationID {
			user.ManagerID = &inviter.ID
		}
	}

	invitation.AcceptedAt = &now
	if err := s.invitations.Redeem(invitation, user); err != nil {
		// Racing accept/registration for the same email loses on the
		// (email, org) unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to redeem invitation: %w", err)
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *InvitationService) toResponse(invitation *models.Invitation) *InvitationResponse {
	return &InvitationResponse{
		ID:         invitation.ID,
		Email:      invitation.Email,
		Role:       invitation.Role,
		ExpiresAt:  invitation.ExpiresAt,
		AcceptedAt: invitation.AcceptedAt,
		CreatedAt:  invitation.CreatedAt,
	}
}
