package service_test

import (
	"testing"

	"feedback-hub-backend/internal/database/models"
	apperrors "feedback-hub-backend/internal/errors"
	"feedback-hub-backend/internal/mocks"
	"feedback-hub-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockUsers        *mocks.MockUserRepositoryInterface
	mockFeedback     *mocks.MockFeedbackRepositoryInterface
	mockInvitations  *mocks.MockInvitationRepositoryInterface
	dashboardService *service.DashboardService

	orgID uuid.UUID
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockFeedback = mocks.NewMockFeedbackRepositoryInterface(suite.ctrl)
	suite.mockInvitations = mocks.NewMockInvitationRepositoryInterface(suite.ctrl)
	suite.dashboardService = service.NewDashboardService(suite.mockUsers, suite.mockFeedback, suite.mockInvitations)
	suite.orgID = uuid.New()
}

func (suite *DashboardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DashboardServiceTestSuite) actor(role models.Role) *models.User {
	return &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Role:           role,
		OrganizationID: suite.orgID,
		IsActive:       true,
	}
}

func (suite *DashboardServiceTestSuite) TestStats_AdminSeesOrganization() {
	admin := suite.actor(models.RoleAdmin)

	suite.mockUsers.EXPECT().CountByOrganization(suite.orgID).Return(int64(12), nil)
	suite.mockFeedback.EXPECT().CountByOrganization(suite.orgID).Return(int64(30), nil)
	suite.mockFeedback.EXPECT().SentimentCountsByOrganization(suite.orgID).Return(map[models.Sentiment]int64{
		models.SentimentPositive: 18,
		models.SentimentNeutral:  7,
		models.SentimentNegative: 5,
	}, nil)
	suite.mockInvitations.EXPECT().CountPendingByOrganization(suite.orgID, gomock.Any()).Return(int64(2), nil)

	stats, err := suite.dashboardService.Stats(admin)

	suite.NoError(err)
	suite.Equal(int64(12), stats.TotalEmployees)
	suite.Equal(int64(30), stats.TotalFeedback)
	suite.Equal(int64(2), stats.PendingInvitations)
	suite.Equal(int64(18), stats.SentimentDistribution["positive"])
	suite.Equal(int64(7), stats.SentimentDistribution["neutral"])
	suite.Equal(int64(5), stats.SentimentDistribution["negative"])

	var sum int64
	for _, count := range stats.SentimentDistribution {
		sum += count
	}
	suite.Equal(stats.TotalFeedback, sum)
}

func (suite *DashboardServiceTestSuite) TestStats_ManagerSeesOwnReports() {
	manager := suite.actor(models.RoleManager)

	suite.mockUsers.EXPECT().CountDirectReports(manager.ID, suite.orgID).Return(int64(3), nil)
	suite.mockFeedback.EXPECT().CountByManager(manager.ID, suite.orgID).Return(int64(9), nil)
	suite.mockFeedback.EXPECT().SentimentCountsByManager(manager.ID, suite.orgID).Return(map[models.Sentiment]int64{
		models.SentimentPositive: 9,
	}, nil)
	suite.mockInvitations.EXPECT().CountPendingByOrganization(suite.orgID, gomock.Any()).Return(int64(0), nil)

	stats, err := suite.dashboardService.Stats(manager)

	suite.NoError(err)
	suite.Equal(int64(3), stats.TotalEmployees)
	suite.Equal(int64(9), stats.TotalFeedback)
	suite.Equal(int64(0), stats.PendingInvitations)
	suite.Equal(int64(9), stats.SentimentDistribution["positive"])
	suite.NotContains(stats.SentimentDistribution, "negative")
}

func (suite *DashboardServiceTestSuite) TestStats_EmployeeRejected() {
	stats, err := suite.dashboardService.Stats(suite.actor(models.RoleEmployee))

	suite.Nil(stats)
	suite.ErrorIs(err, apperrors.ErrRoleNotAllowed)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
