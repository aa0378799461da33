package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"feedback-hub-backend/internal/database/models"
	apperrors "feedback-hub-backend/internal/errors"
	"feedback-hub-backend/internal/mocks"
	"feedback-hub-backend/internal/service"
	"feedback-hub-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl                  *gomock.Controller
	mockAccountService    *mocks.MockAccountServiceInterface
	mockInvitationService *mocks.MockInvitationServiceInterface
	handler               *AuthHandler
	httpSuite             *testutils.HTTPTestSuite

	// actor is injected into the request context when non-nil
	actor *models.User
}

// SetupTest sets up the test suite
func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAccountService = mocks.NewMockAccountServiceInterface(suite.ctrl)
	suite.mockInvitationService = mocks.NewMockInvitationServiceInterface(suite.ctrl)

	suite.handler = NewAuthHandler(suite.mockAccountService, suite.mockInvitationService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.actor = nil

	authGroup := suite.httpSuite.Router.Group("/api/auth")
	{
		authGroup.POST("/register", suite.handler.Register)
		authGroup.POST("/login", suite.handler.Login)
		authGroup.POST("/invitations/accept", suite.handler.AcceptInvitation)
		authGroup.GET("/me", func(c *gin.Context) {
			if suite.actor != nil {
				c.Set("actor", suite.actor)
			}
		}, suite.handler.Me)
	}
}

// TearDownTest cleans up after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRegister tests bootstrapping an organization owner
func (suite *AuthHandlerTestSuite) TestRegister() {
	orgID := uuid.New()
	requestBody := map[string]interface{}{
		"organization_id": orgID,
		"email":           "owner@acme.com",
		"name":            "Olivia Owner",
		"password":        "s3cretpass",
	}

	expectedResponse := &service.AuthResponse{
		Token: "signed.jwt.token",
		User: service.UserResponse{
			ID:             uuid.New(),
			Email:          "owner@acme.com",
			Name:           "Olivia Owner",
			Role:           models.RoleOwner,
			OrganizationID: orgID,
			IsActive:       true,
		},
	}

	suite.mockAccountService.EXPECT().
		Register(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/register", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.AuthResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "signed.jwt.token", response.Token)
	assert.Equal(suite.T(), models.RoleOwner, response.User.Role)
}

// TestRegisterClosed tests registering against an organization that already has members
func (suite *AuthHandlerTestSuite) TestRegisterClosed() {
	requestBody := map[string]interface{}{
		"organization_id": uuid.New(),
		"email":           "late@acme.com",
		"name":            "Late Joiner",
		"password":        "s3cretpass",
	}

	suite.mockAccountService.EXPECT().
		Register(gomock.Any()).
		Return(nil, apperrors.ErrRegistrationClosed).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/register", requestBody)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "already has members")
}

// TestRegisterShortPassword tests that field-validation failures surface as 400
func (suite *AuthHandlerTestSuite) TestRegisterShortPassword() {
	requestBody := map[string]interface{}{
		"organization_id": uuid.New(),
		"email":           "owner@acme.com",
		"name":            "Olivia Owner",
		"password":        "short",
	}

	fieldErr := validator.New().Struct(service.RegisterRequest{
		OrganizationID: uuid.New(),
		Email:          "owner@acme.com",
		Name:           "Olivia Owner",
		Password:       "short",
	})
	suite.Require().Error(fieldErr)

	suite.mockAccountService.EXPECT().
		Register(gomock.Any()).
		Return(nil, fmt.Errorf("validation failed: %w", fieldErr)).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/register", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation failed")
}

// TestRegisterMalformedBody tests registering with a malformed body
func (suite *AuthHandlerTestSuite) TestRegisterMalformedBody() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/register", "not-json")

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestLogin tests logging in with valid credentials
func (suite *AuthHandlerTestSuite) TestLogin() {
	requestBody := map[string]interface{}{
		"email":    "owner@acme.com",
		"password": "s3cretpass",
	}

	expectedResponse := &service.AuthResponse{
		Token: "signed.jwt.token",
		User: service.UserResponse{
			ID:    uuid.New(),
			Email: "owner@acme.com",
			Role:  models.RoleOwner,
		},
	}

	suite.mockAccountService.EXPECT().
		Login(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/login", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.AuthResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "signed.jwt.token", response.Token)
}

// TestLoginInvalidCredentials tests logging in with a wrong password
func (suite *AuthHandlerTestSuite) TestLoginInvalidCredentials() {
	requestBody := map[string]interface{}{
		"email":    "owner@acme.com",
		"password": "wrong",
	}

	suite.mockAccountService.EXPECT().
		Login(gomock.Any()).
		Return(nil, apperrors.ErrInvalidCredentials).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/login", requestBody)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "invalid email or password")
}

// TestLoginAmbiguousOrganization tests logging in with an email present in several organizations
func (suite *AuthHandlerTestSuite) TestLoginAmbiguousOrganization() {
	requestBody := map[string]interface{}{
		"email":    "shared@acme.com",
		"password": "s3cretpass",
	}

	suite.mockAccountService.EXPECT().
		Login(gomock.Any()).
		Return(nil, apperrors.ErrOrganizationRequired).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/login", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "more than one organization")
}

// TestMe tests fetching the authenticated profile
func (suite *AuthHandlerTestSuite) TestMe() {
	suite.actor = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "owner@acme.com",
		Name:      "Olivia Owner",
		Role:      models.RoleOwner,
		IsActive:  true,
	}

	expectedResponse := &service.UserResponse{
		ID:    suite.actor.ID,
		Email: suite.actor.Email,
		Name:  suite.actor.Name,
		Role:  suite.actor.Role,
	}

	suite.mockAccountService.EXPECT().
		Me(suite.actor).
		Return(expectedResponse).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/auth/me", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.UserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), suite.actor.Email, response.Email)
}

// TestMeUnauthenticated tests fetching the profile without an authenticated user
func (suite *AuthHandlerTestSuite) TestMeUnauthenticated() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/auth/me", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authentication required")
}

// TestAcceptInvitation tests redeeming an invitation token
func (suite *AuthHandlerTestSuite) TestAcceptInvitation() {
	requestBody := map[string]interface{}{
		"token":    "opaque-invitation-token",
		"name":     "Eve Employee",
		"password": "s3cretpass",
	}

	expectedResponse := &service.AuthResponse{
		Token: "signed.jwt.token",
		User: service.UserResponse{
			ID:    uuid.New(),
			Email: "eve@acme.com",
			Role:  models.RoleEmployee,
		},
	}

	suite.mockInvitationService.EXPECT().
		Accept(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/invitations/accept", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.AuthResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), models.RoleEmployee, response.User.Role)
}

// TestAcceptInvitationInvalidToken tests redeeming an unknown or expired token
func (suite *AuthHandlerTestSuite) TestAcceptInvitationInvalidToken() {
	requestBody := map[string]interface{}{
		"token":    "expired-token",
		"name":     "Eve Employee",
		"password": "s3cretpass",
	}

	suite.mockInvitationService.EXPECT().
		Accept(gomock.Any()).
		Return(nil, apperrors.ErrInvitationInvalid).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/invitations/accept", requestBody)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "invitation token")
}

// TestAuthHandlerTestSuite runs the test suite
func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
