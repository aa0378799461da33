package models

import (
	"time"

	"github.com/google/uuid"
)

// Invitation is a single-use, time-limited credential that grants account
// creation with a pre-assigned role inside an organization. An invitation is
// "active" while it is neither accepted nor expired; expiry is implicit via
// time comparison, there is no separate state column.
type Invitation struct {
	BaseModel
	Email          string     `json:"email" gorm:"index;not null;size:255" validate:"required,email,max=255"`
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;index;not null"`
	InvitedByID    uuid.UUID  `json:"invited_by_id" gorm:"type:uuid;not null"`
	Role           Role       `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
	Token          string     `json:"-" gorm:"uniqueIndex;not null;size:255"`
	ExpiresAt      time.Time  `json:"expires_at" gorm:"not null"`
	AcceptedAt     *time.Time `json:"accepted_at,omitempty"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	InvitedBy    *User         `json:"invited_by,omitempty" gorm:"foreignKey:InvitedByID"`
}

// TableName returns the table name for Invitation
func (Invitation) TableName() string {
	return "invitations"
}

// IsAccepted reports whether the invitation has been accepted
func (i *Invitation) IsAccepted() bool {
	return i.AcceptedAt != nil
}

// IsExpired reports whether the invitation has expired at the given time
func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// IsActive reports whether the invitation can still be accepted
func (i *Invitation) IsActive(now time.Time) bool {
	return !i.IsAccepted() && !i.IsExpired(now)
}
