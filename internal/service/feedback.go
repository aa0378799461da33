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

// FeedbackService handles business logic for feedback records. Every read
// and write is scoped to the actor's organization; rows in other tenants
// read as not found.
type FeedbackService struct {
	feedback  repository.FeedbackRepositoryInterface
	users     repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(
	feedback repository.FeedbackRepositoryInterface,
	users repository.UserRepositoryInterface,
	validator *validator.Validate,
) *FeedbackService {
	return &FeedbackService{
		feedback:  feedback,
		users:     users,
		validator: validator,
	}
}

// CreateFeedbackRequest represents the request to create feedback
type CreateFeedbackRequest struct {
	EmployeeID   uuid.UUID        `json:"employee_id" validate:"required"`
	Strengths    string           `json:"strengths" validate:"required"`
	Improvements string           `json:"improvements" validate:"required"`
	Sentiment    models.Sentiment `json:"sentiment" validate:"required"`
	Tags         []string         `json:"tags"`
}

// UpdateFeedbackRequest represents the request to edit feedback content
type UpdateFeedbackRequest struct {
	Strengths    string           `json:"strengths" validate:"required"`
	Improvements string           `json:"improvements" validate:"required"`
	Sentiment    models.Sentiment `json:"sentiment" validate:"required"`
	Tags         []string         `json:"tags"`
}

// CommentRequest represents the request to attach an employee comment
type CommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

// FeedbackResponse represents a feedback record in API responses
type FeedbackResponse struct {
	ID              uuid.UUID        `json:"id"`
	EmployeeID      uuid.UUID        `json:"employee_id"`
	ManagerID       uuid.UUID        `json:"manager_id"`
	OrganizationID  uuid.UUID        `json:"organization_id"`
	Strengths       string           `json:"strengths"`
	Improvements    string           `json:"improvements"`
	Sentiment       models.Sentiment `json:"sentiment"`
	Tags            []string         `json:"tags"`
	Acknowledged    bool             `json:"acknowledged"`
	EmployeeComment *string          `json:"employee_comment,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	EmployeeName    string           `json:"employee_name,omitempty"`
	ManagerName     string           `json:"manager_name,omitempty"`
}

// Create records feedback from the actor to an employee. The target must
// resolve in the actor's organization; a manager may only target direct
// reports.
func (s *FeedbackService) Create(actor *models.User, req *CreateFeedbackRequest) (*FeedbackResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Sentiment.Valid() {
		return nil, apperrors.NewValidationError("sentiment", "unknown sentiment")
	}
	if !actor.Role.CanGiveFeedback() {
		return nil, apperrors.ErrRoleNotAllowed
	}

	target, err := auth.RequireSameOrganization(s.users, actor, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !auth.CanManage(actor, target) {
		return nil, apperrors.ErrNotDirectReport
	}

	feedback := &models.Feedback{
		EmployeeID:     target.ID,
		ManagerID:      actor.ID,
		OrganizationID: actor.OrganizationID,
		Strengths:      req.Strengths,
		Improvements:   req.Improvements,
		Sentiment:      req.Sentiment,
		Tags:           req.Tags,
	}

	if err := s.feedback.Create(feedback); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	feedback.Employee = target
	feedback.Manager = actor
	return s.toResponse(feedback), nil
}

// GetByID retrieves a single feedback record visible to the actor
func (s *FeedbackService) GetByID(actor *models.User, id uuid.UUID) (*FeedbackResponse, error) {
	feedback, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	if !s.canRead(actor, feedback) {
		return nil, apperrors.ErrForbidden
	}
	return s.toResponse(feedback), nil
}

// Update edits feedback content. Only the giving manager may edit, and only
// inside their own organization.
func (s *FeedbackService) Update(actor *models.User, id uuid.UUID, req *UpdateFeedbackRequest) (*FeedbackResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Sentiment.Valid() {
		return nil, apperrors.NewValidationError("sentiment", "unknown sentiment")
	}

	feedback, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	if feedback.ManagerID != actor.ID {
		return nil, apperrors.ErrForbidden
	}

	feedback.Strengths = req.Strengths
	feedback.Improvements = req.Improvements
	feedback.Sentiment = req.Sentiment
	feedback.Tags = req.Tags

	if err := s.feedback.Update(feedback); err != nil {
		return nil, fmt.Errorf("failed to update feedback: %w", err)
	}

	return s.toResponse(feedback), nil
}

// Acknowledge sets the acknowledged flag. Only the receiving employee may
// acknowledge.
func (s *FeedbackService) Acknowledge(actor *models.User, id uuid.UUID) (*FeedbackResponse, error) {
	feedback, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	if feedback.EmployeeID != actor.ID {
		return nil, apperrors.ErrForbidden
	}

	feedback.Acknowledged = true
	if err := s.feedback.Update(feedback); err != nil {
		return nil, fmt.Errorf("failed to acknowledge feedback: %w", err)
	}

	return s.toResponse(feedback), nil
}

// Comment attaches the receiving employee's comment to the feedback
func (s *FeedbackService) Comment(actor *models.User, id uuid.UUID, req *CommentRequest) (*FeedbackResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	feedback, err := s.load(actor, id)
	if err != nil {
		return nil, err
	}
	if feedback.EmployeeID != actor.ID {
		return nil, apperrors.ErrForbidden
	}

	feedback.EmployeeComment = &req.Comment
	if err := s.feedback.Update(feedback); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return s.toResponse(feedback), nil
}

// ListByEmployee retrieves an employee's feedback, newest first, applying
// the same visibility rules as single reads
func (s *FeedbackService) ListByEmployee(actor *models.User, employeeID uuid.UUID) ([]FeedbackResponse, error) {
	if actor.ID != employeeID {
		target, err := auth.RequireSameOrganization(s.users, actor, employeeID)
		if err != nil {
			return nil, err
		}
		if !auth.CanManage(actor, target) {
			return nil, apperrors.ErrNotDirectReport
		}
	}

	return s.listFor(actor, employeeID)
}

// ListReceived retrieves the actor's own received feedback, newest first
func (s *FeedbackService) ListReceived(actor *models.User) ([]FeedbackResponse, error) {
	return s.listFor(actor, actor.ID)
}

func (s *FeedbackService) listFor(actor *models.User, employeeID uuid.UUID) ([]FeedbackResponse, error) {
	feedback, err := s.feedback.ListByEmployee(employeeID, actor.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	responses := make([]FeedbackResponse, len(feedback))
	for i := range feedback {
		responses[i] = *s.toResponse(&feedback[i])
	}
	return responses, nil
}

func (s *FeedbackService) load(actor *models.User, id uuid.UUID) (*models.Feedback, error) {
	feedback, err := s.feedback.GetByIDInOrganization(id, actor.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("failed to load feedback: %w", err)
	}
	return feedback, nil
}

func (s *FeedbackService) canRead(actor *models.User, feedback *models.Feedback) bool {
	switch actor.Role {
	case models.RoleOwner, models.RoleAdmin:
		return true
	case models.RoleManager:
		if feedback.ManagerID == actor.ID {
			return true
		}
		return feedback.Employee != nil && feedback.Employee.IsDirectReportOf(actor.ID)
	default:
		return feedback.EmployeeID == actor.ID
	}
}

func (s *FeedbackService) toResponse(feedback *models.Feedback) *FeedbackResponse {
	resp := &FeedbackResponse{
		ID:              feedback.ID,
		EmployeeID:      feedback.EmployeeID,
		ManagerID:       feedback.ManagerID,
		OrganizationID:  feedback.OrganizationID,
		Strengths:       feedback.Strengths,
		Improvements:    feedback.Improvements,
		Sentiment:       feedback.Sentiment,
		Tags:            feedback.Tags,
		Acknowledged:    feedback.Acknowledged,
		EmployeeComment: feedback.EmployeeComment,
		CreatedAt:       feedback.CreatedAt,
		UpdatedAt:       feedback.UpdatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if feedback.Employee != nil {
		resp.EmployeeName = feedback.Employee.Name
	}
	if feedback.Manager != nil {
		resp.ManagerName = feedback.Manager.Name
	}
	return resp
}
