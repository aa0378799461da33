package service

import (
	"fmt"
	"time"

	"feedback-hub-backend/internal/database/models"
	apperrors "feedback-hub-backend/internal/errors"
	"feedback-hub-backend/internal/repository"
)

// DashboardService aggregates counts scoped to the actor's visibility
type DashboardService struct {
	users       repository.UserRepositoryInterface
	feedback    repository.FeedbackRepositoryInterface
	invitations repository.InvitationRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	users repository.UserRepositoryInterface,
	feedback repository.FeedbackRepositoryInterface,
	invitations repository.InvitationRepositoryInterface,
) *DashboardService {
	return &DashboardService{
		users:       users,
		feedback:    feedback,
		invitations: invitations,
	}
}

// DashboardStatsResponse represents aggregate counts for the dashboard
type DashboardStatsResponse struct {
	TotalEmployees        int64            `json:"total_employees"`
	TotalFeedback         int64            `json:"total_feedback"`
	PendingInvitations    int64            `json:"pending_invitations"`
	SentimentDistribution map[string]int64 `json:"sentiment_distribution"`
}

// Stats computes dashboard aggregates. Managers see their direct reports and
// the feedback they gave; owners and admins see the whole organization. The
// sentiment histogram always sums to the feedback total in scope.
func (s *DashboardService) Stats(actor *models.User) (*DashboardStatsResponse, error) {
	var (
		totalEmployees int64
		totalFeedback  int64
		sentiments     map[models.Sentiment]int64
		err            error
	)

	switch actor.Role {
	case models.RoleManager:
		totalEmployees, err = s.users.CountDirectReports(actor.ID, actor.OrganizationID)
		if err != nil {
			return nil, fmt.Errorf("failed to count direct reports: %w", err)
		}
		totalFeedback, err = s.feedback.CountByManager(actor.ID, actor.OrganizationID)
		if err != nil {
			return nil, fmt.Errorf("failed to count feedback: %w", err)
		}
		sentiments, err = s.feedback.SentimentCountsByManager(actor.ID, actor.OrganizationID)
		if err != nil {
			return nil, fmt.Errorf("failed to load sentiment distribution: %w", err)
		}
	case models.RoleOwner, models.RoleAdmin:
		totalEmployees, err = s.users.CountByOrganization(actor.OrganizationID)
		if err != nil {
			return nil, fmt.Errorf("failed to count organization users: %w", err)
		}
		totalFeedback, err = s.feedback.CountByOrganization(actor.OrganizationID)
		if err != nil {
			return nil, fmt.Errorf("failed to count feedback: %w", err)
		}
		sentiments, err = s.feedback.SentimentCountsByOrganization(actor.OrganizationID)
		if err != nil {
			return nil, fmt.Errorf("failed to load sentiment distribution: %w", err)
		}
	default:
		return nil, apperrors.ErrRoleNotAllowed
	}

	pending, err := s.invitations.CountPendingByOrganization(actor.OrganizationID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to count pending invitations: %w", err)
	}

	distribution := make(map[string]int64, len(sentiments))
	for sentiment, count := range sentiments {
		distribution[string(sentiment)] = count
	}

	return &DashboardStatsResponse{
		TotalEmployees:        totalEmployees,
		TotalFeedback:         totalFeedback,
		PendingInvitations:    pending,
		SentimentDistribution: distribution,
	}, nil
}
