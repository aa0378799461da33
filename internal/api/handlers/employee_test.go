package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"feedback-hub-backend/internal/database/models"
	apperrors "feedback-hub-backend/internal/errors"
	"feedback-hub-backend/internal/mocks"
	"feedback-hub-backend/internal/service"
	"feedback-hub-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EmployeeHandlerTestSuite defines the test suite for EmployeeHandler
type EmployeeHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserService *mocks.MockUserServiceInterface
	handler         *EmployeeHandler
	httpSuite       *testutils.HTTPTestSuite

	actor *models.User
}

// SetupTest sets up the test suite
func (suite *EmployeeHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)

	suite.handler = NewEmployeeHandler(suite.mockUserService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.actor = &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Role:           models.RoleManager,
		OrganizationID: uuid.New(),
		IsActive:       true,
	}

	employees := suite.httpSuite.Router.Group("/api/v1/employees", func(c *gin.Context) {
		if suite.actor != nil {
			c.Set("actor", suite.actor)
		}
	})
	{
		employees.GET("", suite.handler.ListEmployees)
		employees.GET("/:id", suite.handler.GetEmployee)
	}
}

// TearDownTest cleans up after each test
func (suite *EmployeeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListEmployees tests listing employees with feedback aggregates
func (suite *EmployeeHandlerTestSuite) TestListEmployees() {
	lastFeedback := time.Now().Add(-48 * time.Hour)
	expectedResponse := []service.EmployeeResponse{
		{
			ID:               uuid.New(),
			Name:             "Dana Fischer",
			Email:            "dana@acme.com",
			Role:             models.RoleEmployee,
			IsActive:         true,
			FeedbackCount:    4,
			LastFeedbackDate: &lastFeedback,
			AvgSentiment:     0.75,
		},
	}

	suite.mockUserService.EXPECT().
		ListEmployees(suite.actor).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/employees", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.EmployeeResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), 4, response[0].FeedbackCount)
	assert.InDelta(suite.T(), 0.75, response[0].AvgSentiment, 1e-9)
}

// TestListEmployeesRoleNotAllowed tests an employee requesting the employee list
func (suite *EmployeeHandlerTestSuite) TestListEmployeesRoleNotAllowed() {
	suite.actor.Role = models.RoleEmployee

	suite.mockUserService.EXPECT().
		ListEmployees(suite.actor).
		Return(nil, apperrors.ErrRoleNotAllowed).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/employees", nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "not allowed")
}

// TestGetEmployee tests fetching a single employee
func (suite *EmployeeHandlerTestSuite) TestGetEmployee() {
	expectedResponse := &service.UserResponse{
		ID:             uuid.New(),
		Name:           "Dana Fischer",
		Email:          "dana@acme.com",
		Role:           models.RoleEmployee,
		OrganizationID: suite.actor.OrganizationID,
		IsActive:       true,
	}

	suite.mockUserService.EXPECT().
		GetEmployee(suite.actor, expectedResponse.ID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/employees/%s", expectedResponse.ID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.UserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expectedResponse.ID, response.ID)
}

// TestGetEmployeeInvalidID tests fetching an employee with a malformed ID
func (suite *EmployeeHandlerTestSuite) TestGetEmployeeInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/employees/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid employee ID")
}

// TestGetEmployeeNotDirectReport tests a manager fetching someone else's report
func (suite *EmployeeHandlerTestSuite) TestGetEmployeeNotDirectReport() {
	employeeID := uuid.New()

	suite.mockUserService.EXPECT().
		GetEmployee(suite.actor, employeeID).
		Return(nil, apperrors.ErrNotDirectReport).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/employees/%s", employeeID), nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "direct reports")
}

// TestGetEmployeeNotFound tests fetching an employee from another organization
func (suite *EmployeeHandlerTestSuite) TestGetEmployeeNotFound() {
	employeeID := uuid.New()

	suite.mockUserService.EXPECT().
		GetEmployee(suite.actor, employeeID).
		Return(nil, apperrors.ErrEmployeeNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/employees/%s", employeeID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "employee not found")
}

// TestEmployeeHandlerTestSuite runs the test suite
func TestEmployeeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeHandlerTestSuite))
}
