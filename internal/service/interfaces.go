package service

import (
	"feedback-hub-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetAll(page, pageSize int) (*OrganizationListResponse, error)
}

// AccountServiceInterface defines the interface for account service
type AccountServiceInterface interface {
	Register(req *RegisterRequest) (*AuthResponse, error)
	Login(req *LoginRequest) (*AuthResponse, error)
	Me(actor *models.User) *UserResponse
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	List(actor *models.User, page, pageSize int) (*UserListResponse, error)
	Update(actor *models.User, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	ListEmployees(actor *models.User) ([]EmployeeResponse, error)
	GetEmployee(actor *models.User, id uuid.UUID) (*UserResponse, error)
}

// InvitationServiceInterface defines the interface for invitation service
type InvitationServiceInterface interface {
	Create(actor *models.User, req *CreateInvitationRequest) (*InvitationResponse, error)
	List(actor *models.User, page, pageSize int) (*InvitationListResponse, error)
	Accept(req *AcceptInvitationRequest) (*AuthResponse, error)
}

// FeedbackServiceInterface defines the interface for feedback service
type FeedbackServiceInterface interface {
	Create(actor *models.User, req *CreateFeedbackRequest) (*FeedbackResponse, error)
	GetByID(actor *models.User, id uuid.UUID) (*FeedbackResponse, error)
	Update(actor *models.User, id uuid.UUID, req *UpdateFeedbackRequest) (*FeedbackResponse, error)
	Acknowledge(actor *models.User, id uuid.UUID) (*FeedbackResponse, error)
	Comment(actor *models.User, id uuid.UUID, req *CommentRequest) (*FeedbackResponse, error)
	ListByEmployee(actor *models.User, employeeID uuid.UUID) ([]FeedbackResponse, error)
	ListReceived(actor *models.User) ([]FeedbackResponse, error)
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	Stats(actor *models.User) (*DashboardStatsResponse, error)
}
