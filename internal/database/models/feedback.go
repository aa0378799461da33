package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Sentiment represents the categorical polarity of a feedback entry
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Valid reports whether the sentiment is one of the known values
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// Score maps the sentiment to a numeric value used for aggregate averaging
func (s Sentiment) Score() float64 {
	switch s {
	case SentimentPositive:
		return 1.0
	case SentimentNeutral:
		return 0.5
	default:
		return 0.0
	}
}

// StringList stores an ordered list of strings as a JSONB column
type StringList []string

// Value implements driver.Valuer for StringList
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for StringList
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported type for StringList: %T", value)
}

// Feedback is a structured performance-feedback record exchanged between a
// manager and an employee. OrganizationID is denormalized onto the row so
// every query can carry an explicit tenant filter.
type Feedback struct {
	BaseModel
	EmployeeID      uuid.UUID  `json:"employee_id" gorm:"type:uuid;index;not null"`
	ManagerID       uuid.UUID  `json:"manager_id" gorm:"type:uuid;index;not null"`
	OrganizationID  uuid.UUID  `json:"organization_id" gorm:"type:uuid;index;not null"`
	Strengths       string     `json:"strengths" gorm:"type:text;not null"`
	Improvements    string     `json:"improvements" gorm:"type:text;not null"`
	Sentiment       Sentiment  `json:"sentiment" gorm:"type:varchar(20);not null"`
	Tags            StringList `json:"tags" gorm:"type:jsonb"`
	Acknowledged    bool       `json:"acknowledged" gorm:"not null;default:false"`
	EmployeeComment *string    `json:"employee_comment,omitempty" gorm:"type:text"`

	// Relationships
	Employee     *User         `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	Manager      *User         `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for Feedback
func (Feedback) TableName() string {
	return "feedback"
}
