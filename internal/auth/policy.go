package auth

import (
	"errors"
	"fmt"

	"feedback-hub-backend/internal/database/models"
	apperrors "feedback-hub-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserGetter resolves a user id without any tenant filter; callers compare
// organizations themselves
type UserGetter interface {
	GetByID(id uuid.UUID) (*models.User, error)
}

// RequireSameOrganization loads the target user and fails unless it belongs
// to the actor's organization. This is the single chokepoint for cross-user
// tenant isolation: every handler touching another user's data routes
// through it. A missing target is indistinguishable from a cross-tenant one.
func RequireSameOrganization(users UserGetter, actor *models.User, targetID uuid.UUID) (*models.User, error) {
	target, err := users.GetByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWrongOrganization
		}
		return nil, fmt.Errorf("failed to load target user: %w", err)
	}

	if target.OrganizationID != actor.OrganizationID {
		return nil, apperrors.ErrWrongOrganization
	}

	return target, nil
}

// CanManage reports whether the actor may manage the target user. Owners and
// admins manage anyone in their organization; managers only their direct
// reports; employees manage no one.
func CanManage(actor, target *models.User) bool {
	if actor.OrganizationID != target.OrganizationID {
		return false
	}

	switch actor.Role {
	case models.RoleOwner, models.RoleAdmin:
		return true
	case models.RoleManager:
		return target.IsDirectReportOf(actor.ID)
	}
	return false
}
