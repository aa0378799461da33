package testutils

import (
	"time"

	"feedback-hub-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test Organization",
		Domain:   "test.com",
		IsActive: true,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// Inactive creates a deactivated organization
func (f *OrganizationFactory) Inactive() *models.Organization {
	org := f.Create()
	org.IsActive = false
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:          "user-" + id.String()[:8] + "@test.com",
		Name:           "Test User",
		PasswordHash:   "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:           models.RoleEmployee,
		OrganizationID: uuid.New(),
		IsActive:       true,
	}
}

// WithOrganization sets the organization ID for the user
func (f *UserFactory) WithOrganization(orgID uuid.UUID) *models.User {
	user := f.Create()
	user.OrganizationID = orgID
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.Role) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithManager sets the manager for the user
func (f *UserFactory) WithManager(managerID uuid.UUID) *models.User {
	user := f.Create()
	user.ManagerID = &managerID
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// InvitationFactory provides methods to create test Invitation data
type InvitationFactory struct{}

// NewInvitationFactory creates a new InvitationFactory
func NewInvitationFactory() *InvitationFactory {
	return &InvitationFactory{}
}

// Create creates a test Invitation with default values
func (f *InvitationFactory) Create() *models.Invitation {
	id := uuid.New()

	return &models.Invitation{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:          "invitee-" + id.String()[:8] + "@test.com",
		OrganizationID: uuid.New(),
		InvitedByID:    uuid.New(),
		Role:           models.RoleEmployee,
		Token:          "token-" + id.String(),
		ExpiresAt:      time.Now().Add(7 * 24 * time.Hour),
	}
}

// WithOrganization sets the organization ID for the invitation
func (f *InvitationFactory) WithOrganization(orgID uuid.UUID) *models.Invitation {
	invitation := f.Create()
	invitation.OrganizationID = orgID
	return invitation
}

// Expired creates an invitation whose expiry is in the past
func (f *InvitationFactory) Expired() *models.Invitation {
	invitation := f.Create()
	invitation.ExpiresAt = time.Now().Add(-time.Hour)
	return invitation
}

// Accepted creates an already-accepted invitation
func (f *InvitationFactory) Accepted() *models.Invitation {
	invitation := f.Create()
	at := time.Now().Add(-time.Hour)
	invitation.AcceptedAt = &at
	return invitation
}

// FeedbackFactory provides methods to create test Feedback data
type FeedbackFactory struct{}

// NewFeedbackFactory creates a new FeedbackFactory
func NewFeedbackFactory() *FeedbackFactory {
	return &FeedbackFactory{}
}

// Create creates test Feedback with default values
func (f *FeedbackFactory) Create() *models.Feedback {
	return &models.Feedback{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID:     uuid.New(),
		ManagerID:      uuid.New(),
		OrganizationID: uuid.New(),
		Strengths:      "Clear communication and reliable delivery.",
		Improvements:   "Could delegate more of the routine work.",
		Sentiment:      models.SentimentPositive,
		Tags:           models.StringList{"communication"},
	}
}

// For wires the feedback to an employee, manager and organization
func (f *FeedbackFactory) For(employee, manager *models.User) *models.Feedback {
	feedback := f.Create()
	feedback.EmployeeID = employee.ID
	feedback.ManagerID = manager.ID
	feedback.OrganizationID = employee.OrganizationID
	return feedback
}

// WithSentiment sets a custom sentiment
func (f *FeedbackFactory) WithSentiment(sentiment models.Sentiment) *models.Feedback {
	feedback := f.Create()
	feedback.Sentiment = sentiment
	return feedback
}

// FactorySet provides access to all test data factories
type FactorySet struct {
	Organization *OrganizationFactory
	User         *UserFactory
	Invitation   *InvitationFactory
	Feedback     *FeedbackFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		User:         NewUserFactory(),
		Invitation:   NewInvitationFactory(),
		Feedback:     NewFeedbackFactory(),
	}
}
