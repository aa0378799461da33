package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's role within their organization
type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// CanGiveFeedback reports whether the role is allowed to author feedback
func (r Role) CanGiveFeedback() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleManager
}

// User represents a member of an organization. Email is unique within the
// organization only; the same address may exist in different tenants.
type User struct {
	BaseModel
	Email          string     `json:"email" gorm:"uniqueIndex:idx_users_email_org;not null;size:255" validate:"required,email,max=255"`
	Name           string     `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	PasswordHash   string     `json:"-" gorm:"not null;size:255"`
	Role           Role       `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;uniqueIndex:idx_users_email_org;index;not null"`
	ManagerID      *uuid.UUID `json:"manager_id,omitempty" gorm:"type:uuid;index"`
	IsActive       bool       `json:"is_active" gorm:"not null;default:true"`
	LastLogin      *time.Time `json:"last_login,omitempty"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	Manager      *User         `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsDirectReportOf reports whether the user reports to the given manager id
func (u *User) IsDirectReportOf(managerID uuid.UUID) bool {
	return u.ManagerID != nil && *u.ManagerID == managerID
}
