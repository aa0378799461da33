package service

import (
	"errors"
	"fmt"
	"time"

	"feedback-hub-backend/internal/database/models"
	apperrors "feedback-hub-backend/internal/errors"
	"feedback-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for users and employee listings
type UserService struct {
	users     repository.UserRepositoryInterface
	feedback  repository.FeedbackRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(
	users repository.UserRepositoryInterface,
	feedback repository.FeedbackRepositoryInterface,
	validator *validator.Validate,
) *UserService {
	return &UserService{
		users:     users,
		feedback:  feedback,
		validator: validator,
	}
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID             uuid.UUID   `json:"id"`
	Email          string      `json:"email"`
	Name           string      `json:"name"`
	Role           models.Role `json:"role"`
	OrganizationID uuid.UUID   `json:"organization_id"`
	ManagerID      *uuid.UUID  `json:"manager_id,omitempty"`
	IsActive       bool        `json:"is_active"`
	LastLogin      *time.Time  `json:"last_login,omitempty"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// UpdateUserRequest represents the request to update a user. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	Name      *string      `json:"name,omitempty" validate:"omitempty,max=100"`
	Role      *models.Role `json:"role,omitempty"`
	ManagerID *uuid.UUID   `json:"manager_id,omitempty"`
	IsActive  *bool        `json:"is_active,omitempty"`
}

// EmployeeResponse represents an employee with feedback aggregates
type EmployeeResponse struct {
	ID               uuid.UUID   `json:"id"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	Role             models.Role `json:"role"`
	IsActive         bool        `json:"is_active"`
	FeedbackCount    int         `json:"feedback_count"`
	LastFeedbackDate *time.Time  `json:"last_feedback_date,omitempty"`
	AvgSentiment     float64     `json:"avg_sentiment"`
}

// List retrieves the actor's organization members with pagination
func (s *UserService) List(actor *models.User, page, pageSize int) (*UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	users, total, err := s.users.ListByOrganization(actor.OrganizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = toUserResponse(&user)
	}

	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update modifies a user in the actor's organization. Only owners and admins
// reach this; a target outside the organization reads as not found.
func (s *UserService) Update(actor *models.User, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	target, err := s.users.GetByIDInOrganization(id, actor.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if req.Name != nil {
		target.Name = *req.Name
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, apperrors.NewValidationError("role", "unknown role")
		}
		target.Role = *req.Role
	}
	if req.ManagerID != nil {
		if *req.ManagerID == target.ID {
			return nil, apperrors.NewValidationError("manager_id", "a user cannot be their own manager")
		}
		// The manager must belong to the same organization.
		if _, err := s.users.GetByIDInOrganization(*req.ManagerID, actor.OrganizationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewValidationError("manager_id", "manager not found in organization")
			}
			return nil, fmt.Errorf("failed to load manager: %w", err)
		}
		target.ManagerID = req.ManagerID
	}
	if req.IsActive != nil {
		target.IsActive = *req.IsActive
	}

	if err := s.users.Update(target); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	resp := toUserResponse(target)
	return &resp, nil
}

// ListEmployees returns feedback-receiving users visible to the actor, with
// aggregates: managers see their direct reports, owners and admins see every
// active employee in the organization.
func (s *UserService) ListEmployees(actor *models.User) ([]EmployeeResponse, error) {
	var (
		employees []models.User
		err       error
	)
	switch actor.Role {
	case models.RoleManager:
		employees, err = s.users.ListDirectReports(actor.ID, actor.OrganizationID)
	case models.RoleOwner, models.RoleAdmin:
		employees, err = s.users.ListEmployees(actor.OrganizationID)
	default:
		return nil, apperrors.ErrRoleNotAllowed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		resp, err := s.toEmployeeResponse(&employee)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	return responses, nil
}

// GetEmployee retrieves a single organization member. Employees may only see
// themselves, managers their direct reports, owners and admins anyone in the
// organization.
func (s *UserService) GetEmployee(actor *models.User, id uuid.UUID) (*UserResponse, error) {
	target, err := s.users.GetByIDInOrganization(id, actor.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}

	switch actor.Role {
	case models.RoleOwner, models.RoleAdmin:
		// full visibility within the organization
	case models.RoleManager:
		if target.ID != actor.ID && !target.IsDirectReportOf(actor.ID) {
			return nil, apperrors.ErrNotDirectReport
		}
	default:
		if target.ID != actor.ID {
			return nil, apperrors.ErrForbidden
		}
	}

	resp := toUserResponse(target)
	return &resp, nil
}

func (s *UserService) toEmployeeResponse(employee *models.User) (*EmployeeResponse, error) {
	feedback, err := s.feedback.ListByEmployee(employee.ID, employee.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load feedback for employee: %w", err)
	}

	resp := &EmployeeResponse{
		ID:            employee.ID,
		Name:          employee.Name,
		Email:         employee.Email,
		Role:          employee.Role,
		IsActive:      employee.IsActive,
		FeedbackCount: len(feedback),
		AvgSentiment:  AverageSentiment(feedback),
	}
	if len(feedback) > 0 {
		// ListByEmployee orders newest first.
		last := feedback[0].CreatedAt
		resp.LastFeedbackDate = &last
	}

	return resp, nil
}

// AverageSentiment maps sentiments to scores (positive 1.0, neutral 0.5,
// negative 0.0) and averages them; with no feedback it defaults to 0.5.
func AverageSentiment(feedback []models.Feedback) float64 {
	if len(feedback) == 0 {
		return 0.5
	}
	var sum float64
	for _, fb := range feedback {
		sum += fb.Sentiment.Score()
	}
	return sum / float64(len(feedback))
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		Role:           user.Role,
		OrganizationID: user.OrganizationID,
		ManagerID:      user.ManagerID,
		IsActive:       user.IsActive,
		LastLogin:      user.LastLogin,
	}
}
