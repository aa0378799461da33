package repository

import (
	"time"

	"feedback-hub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationRepository handles database operations for invitations
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create creates a new invitation
func (r *InvitationRepository) Create(invitation *models.Invitation) error {
	return r.db.Create(invitation).Error
}

// GetActiveByToken retrieves an unaccepted, unexpired invitation by token.
// Accepted or expired invitations are filtered out, so a second accept of the
// same token misses.
func (r *InvitationRepository) GetActiveByToken(token string, now time.Time) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.
		Where("token = ? AND accepted_at IS NULL AND expires_at > ?", token, now).
		First(&invitation).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetActiveByEmail retrieves an active invitation for an email within an organization
func (r *InvitationRepository) GetActiveByEmail(email string, orgID uuid.UUID, now time.Time) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.
		Where("email = ? AND organization_id = ? AND accepted_at IS NULL AND expires_at > ?", email, orgID, now).
		First(&invitation).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// ListByOrganization retrieves all invitations for an organization with pagination
func (r *InvitationRepository) ListByOrganization(orgID uuid.UUID, limit, offset int) ([]models.Invitation, int64, error) {
	var invitations []models.Invitation
	var total int64

	query := r.db.Model(&models.Invitation{}).Where("organization_id = ?", orgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("InvitedBy").
		Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&invitations).Error
	if err != nil {
		return nil, 0, err
	}

	return invitations, total, nil
}

// CountPendingByOrganization counts active invitations for an organization
func (r *InvitationRepository) CountPendingByOrganization(orgID uuid.UUID, now time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&models.Invitation{}).
		Where("organization_id = ? AND accepted_at IS NULL AND expires_at > ?", orgID, now).
		Count(&total).Error
	return total, err
}

// Update updates an invitation
func (r *InvitationRepository) Update(invitation *models.Invitation) error {
	return r.db.Save(invitation).Error
}

// Redeem creates the invited user and marks the invitation accepted in a
// single transaction, so a failure on either side leaves no partial state.
func (r *InvitationRepository) Redeem(invitation *models.Invitation, user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Save(invitation).Error
	})
}
