package repository

import (
	"time"

	"feedback-hub-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
}

// UserRepositoryInterface defines the interface for user repository operations.
// Every listing method takes an organization id; the only unscoped lookups are
// GetByID (used by the isolation chokepoint, which compares organizations
// itself) and FindByEmail (used by login disambiguation).
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByIDInOrganization(id, orgID uuid.UUID) (*models.User, error)
	GetByEmailInOrganization(email string, orgID uuid.UUID) (*models.User, error)
	FindByEmail(email string) ([]models.User, error)
	ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	ListDirectReports(managerID, orgID uuid.UUID) ([]models.User, error)
	ListEmployees(orgID uuid.UUID) ([]models.User, error)
	CountByOrganization(orgID uuid.UUID) (int64, error)
	CountDirectReports(managerID, orgID uuid.UUID) (int64, error)
	Update(user *models.User) error
	UpdateLastLogin(id uuid.UUID, at time.Time) error
}

// InvitationRepositoryInterface defines the interface for invitation repository operations
type InvitationRepositoryInterface interface {
	Create(invitation *models.Invitation) error
	GetActiveByToken(token string, now time.Time) (*models.Invitation, error)
	GetActiveByEmail(email string, orgID uuid.UUID, now time.Time) (*models.Invitation, error)
	ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Invitation, int64, error)
	CountPendingByOrganization(orgID uuid.UUID, now time.Time) (int64, error)
	Update(invitation *models.Invitation) error
	Redeem(invitation *models.Invitation, user *models.User) error
}

// FeedbackRepositoryInterface defines the interface for feedback repository
// operations. All methods are organization-scoped.
type FeedbackRepositoryInterface interface {
	Create(feedback *models.Feedback) error
	GetByIDInOrganization(id, orgID uuid.UUID) (*models.Feedback, error)
	ListByEmployee(employeeID, orgID uuid.UUID) ([]models.Feedback, error)
	CountByManager(managerID, orgID uuid.UUID) (int64, error)
	CountByOrganization(orgID uuid.UUID) (int64, error)
	SentimentCountsByManager(managerID, orgID uuid.UUID) (map[models.Sentiment]int64, error)
	SentimentCountsByOrganization(orgID uuid.UUID) (map[models.Sentiment]int64, error)
	Update(feedback *models.Feedback) error
}
