package repository

import (
	"feedback-hub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackRepository handles database operations for feedback records.
// Every query carries an explicit organization filter; a row from another
// tenant can never be returned, whatever id is guessed.
type FeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create creates a new feedback record
func (r *FeedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

// GetByIDInOrganization retrieves a feedback record by ID within an organization
func (r *FeedbackRepository) GetByIDInOrganization(id, orgID uuid.UUID) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.db.
		Preload("Employee").
		Preload("Manager").
		First(&feedback, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

// ListByEmployee retrieves all feedback for an employee within an organization,
// newest first
func (r *FeedbackRepository) ListByEmployee(employeeID, orgID uuid.UUID) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := r.db.
		Preload("Employee").
		Preload("Manager").
		Where("employee_id = ? AND organization_id = ?", employeeID, orgID).
		Order("created_at DESC").
		Find(&feedback).Error
	if err != nil {
		return nil, err
	}
	return feedback, nil
}

// CountByManager counts feedback given by a manager within an organization
func (r *FeedbackRepository) CountByManager(managerID, orgID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.Feedback{}).
		Where("manager_id = ? AND organization_id = ?", managerID, orgID).
		Count(&total).Error
	return total, err
}

// CountByOrganization counts all feedback within an organization
func (r *FeedbackRepository) CountByOrganization(orgID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.Feedback{}).
		Where("organization_id = ?", orgID).
		Count(&total).Error
	return total, err
}

type sentimentCount struct {
	Sentiment models.Sentiment
	Count     int64
}

// SentimentCountsByManager returns the sentiment histogram of feedback given
// by a manager within an organization
func (r *FeedbackRepository) SentimentCountsByManager(managerID, orgID uuid.UUID) (map[models.Sentiment]int64, error) {
	var rows []sentimentCount
	err := r.db.Model(&models.Feedback{}).
		Select("sentiment, count(*) as count").
		Where("manager_id = ? AND organization_id = ?", managerID, orgID).
		Group("sentiment").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toSentimentMap(rows), nil
}

// SentimentCountsByOrganization returns the sentiment histogram of all
// feedback within an organization
func (r *FeedbackRepository) SentimentCountsByOrganization(orgID uuid.UUID) (map[models.Sentiment]int64, error) {
	var rows []sentimentCount
	err := r.db.Model(&models.Feedback{}).
		Select("sentiment, count(*) as count").
		Where("organization_id = ?", orgID).
		Group("sentiment").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toSentimentMap(rows), nil
}

func toSentimentMap(rows []sentimentCount) map[models.Sentiment]int64 {
	counts := map[models.Sentiment]int64{
		models.SentimentPositive: 0,
		models.SentimentNeutral:  0,
		models.SentimentNegative: 0,
	}
	for _, row := range rows {
		counts[row.Sentiment] = row.Count
	}
	return counts
}

// Update updates a feedback record
func (r *FeedbackRepository) Update(feedback *models.Feedback) error {
	return r.db.Save(feedback).Error
}
