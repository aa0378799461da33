package models

// Organization is the root entity for multi-tenancy. Every user, invitation
// and feedback row references an organization, directly or transitively.
type Organization struct {
	BaseModel
	Name     string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Domain   string `json:"domain,omitempty" gorm:"size:100" validate:"max=100"`
	IsActive bool   `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Users       []User       `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Invitations []Invitation `json:"invitations,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
