package repository

import (
	"time"

	"feedback-hub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID without a tenant filter. Callers that act
// on behalf of another user must compare organizations themselves.
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDInOrganization retrieves a user by ID within an organization
func (r *UserRepository) GetByIDInOrganization(id, orgID uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmailInOrganization retrieves a user by email within an organization
func (r *UserRepository) GetByEmailInOrganization(email string, orgID uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ? AND organization_id = ?", email, orgID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail retrieves all users with the given email across organizations.
// Used by login when no organization is supplied.
func (r *UserRepository) FindByEmail(email string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("email = ?", email).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ListByOrganization retrieves all users for an organization with pagination
func (r *UserRepository) ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.Model(&models.User{}).Where("organization_id = ?", orgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at ASC").Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ListDirectReports retrieves the active direct reports of a manager
func (r *UserRepository) ListDirectReports(managerID, orgID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("manager_id = ? AND organization_id = ? AND is_active = ?", managerID, orgID, true).
		Order("name ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ListEmployees retrieves all active employees of an organization
func (r *UserRepository) ListEmployees(orgID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("organization_id = ? AND role = ? AND is_active = ?", orgID, models.RoleEmployee, true).
		Order("name ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// CountByOrganization counts all users of an organization
func (r *UserRepository) CountByOrganization(orgID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.User{}).Where("organization_id = ?", orgID).Count(&total).Error
	return total, err
}

// CountDirectReports counts the active direct reports of a manager
func (r *UserRepository) CountDirectReports(managerID, orgID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.User{}).
		Where("manager_id = ? AND organization_id = ? AND is_active = ?", managerID, orgID, true).
		Count(&total).Error
	return total, err
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// UpdateLastLogin stamps the user's last login time without touching other columns
func (r *UserRepository) UpdateLastLogin(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("last_login", at).Error
}
