package service_test

import (
	"testing"
	"time"

	"feedback-hub-backend/internal/auth"
	"feedback-hub-backend/internal/database/models"
	apperrors "feedback-hub-backend/internal/errors"
	"feedback-hub-backend/internal/mocks"
	"feedback-hub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AccountServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockUsers      *mocks.MockUserRepositoryInterface
	mockOrgs       *mocks.MockOrganizationRepositoryInterface
	tokens         *auth.Service
	accountService *service.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.tokens = auth.NewService("test-secret", 30*time.Minute)
	suite.accountService = service.NewAccountService(suite.mockUsers, suite.mockOrgs, suite.tokens, validator.New())
}

func (suite *AccountServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AccountServiceTestSuite) activeOrg() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Acme Corp",
		IsActive:  true,
	}
}

func (suite *AccountServiceTestSuite) TestRegister_BootstrapOwner() {
	org := suite.activeOrg()

	suite.mockOrgs.EXPECT().GetByID(org.ID).Return(org, nil)
	suite.mockUsers.EXPECT().CountByOrganization(org.ID).Return(int64(0), nil)
	suite.mockUsers.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		suite.Equal(models.RoleOwner, user.Role)
		suite.Equal(org.ID, user.OrganizationID)
		suite.True(user.IsActive)
		suite.NotEqual("owner-password", user.PasswordHash)
		user.ID = uuid.New()
		return nil
	})

	resp, err := suite.accountService.Register(&service.RegisterRequest{
		OrganizationID: org.ID,
		Email:          "owner@acme.com",
		Name:           "Olivia Chen",
		Password:       "owner-password",
	})

	suite.NoError(err)
	suite.NotEmpty(resp.Token)
	suite.Equal(models.RoleOwner, resp.User.Role)
	suite.Equal("owner@acme.com", resp.User.Email)
}

func (suite *AccountServiceTestSuite) TestRegister_ClosedAfterBootstrap() {
	org := suite.activeOrg()

	suite.mockOrgs.EXPECT().GetByID(org.ID).Return(org, nil)
	suite.mockUsers.EXPECT().CountByOrganization(org.ID).Return(int64(3), nil)
	suite.mockUsers.EXPECT().GetByEmailInOrganization("new@acme.com", org.ID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.accountService.Register(&service.RegisterRequest{
		OrganizationID: org.ID,
		Email:          "new@acme.com",
		Name:           "New Person",
		Password:       "some-password",
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrRegistrationClosed)
}

func (suite *AccountServiceTestSuite) TestRegister_DuplicateEmail() {
	org := suite.activeOrg()
	existing := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "owner@acme.com"}

	suite.mockOrgs.EXPECT().GetByID(org.ID).Return(org, nil)
	suite.mockUsers.EXPECT().CountByOrganization(org.ID).Return(int64(1), nil)
	suite.mockUsers.EXPECT().GetByEmailInOrganization("owner@acme.com", org.ID).Return(existing, nil)

	resp, err := suite.accountService.Register(&service.RegisterRequest{
		OrganizationID: org.ID,
		Email:          "owner@acme.com",
		Name:           "Olivia Chen",
		Password:       "owner-password",
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUserExists)
}

func (suite *AccountServiceTestSuite) TestRegister_OrganizationMissingOrInactive() {
	missingID := uuid.New()
	suite.mockOrgs.EXPECT().GetByID(missingID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.accountService.Register(&service.RegisterRequest{
		OrganizationID: missingID,
		Email:          "owner@acme.com",
		Name:           "Olivia Chen",
		Password:       "owner-password",
	})
	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)

	inactive := suite.activeOrg()
	inactive.IsActive = false
	suite.mockOrgs.EXPECT().GetByID(inactive.ID).Return(inactive, nil)

	_, err = suite.accountService.Register(&service.RegisterRequest{
		OrganizationID: inactive.ID,
		Email:          "owner@acme.com",
		Name:           "Olivia Chen",
		Password:       "owner-password",
	})
	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

func (suite *AccountServiceTestSuite) loginUser(password string) *models.User {
	hash, err := auth.HashPassword(password)
	suite.Require().NoError(err)
	return &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Email:          "user@acme.com",
		Name:           "User",
		PasswordHash:   hash,
		Role:           models.RoleEmployee,
		OrganizationID: uuid.New(),
		IsActive:       true,
	}
}

func (suite *AccountServiceTestSuite) TestLogin_Success() {
	user := suite.loginUser("right-password")

	suite.mockUsers.EXPECT().FindByEmail("user@acme.com").Return([]models.User{*user}, nil)

	resp, err := suite.accountService.Login(&service.LoginRequest{
		Email:    "user@acme.com",
		Password: "right-password",
	})

	suite.NoError(err)
	suite.NotEmpty(resp.Token)
	suite.Equal(user.ID, resp.User.ID)

	// Token round-trips through the token service
	parsedID, err := suite.tokens.ValidateToken(resp.Token)
	suite.NoError(err)
	suite.Equal(user.ID, parsedID)
}

func (suite *AccountServiceTestSuite) TestLogin_WrongPassword() {
	user := suite.loginUser("right-password")

	suite.mockUsers.EXPECT().FindByEmail("user@acme.com").Return([]models.User{*user}, nil)

	resp, err := suite.accountService.Login(&service.LoginRequest{
		Email:    "user@acme.com",
		Password: "wrong-password",
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AccountServiceTestSuite) TestLogin_UnknownEmail() {
	suite.mockUsers.EXPECT().FindByEmail("nobody@acme.com").Return(nil, nil)

	resp, err := suite.accountService.Login(&service.LoginRequest{
		Email:    "nobody@acme.com",
		Password: "whatever-password",
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AccountServiceTestSuite) TestLogin_AmbiguousEmailNeedsOrganization() {
	user1 := suite.loginUser("pw-one")
	user2 := suite.loginUser("pw-two")

	suite.mockUsers.EXPECT().FindByEmail("user@acme.com").Return([]models.User{*user1, *user2}, nil)

	resp, err := suite.accountService.Login(&service.LoginRequest{
		Email:    "user@acme.com",
		Password: "pw-one",
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrOrganizationRequired)
}

func (suite *AccountServiceTestSuite) TestLogin_WithOrganizationScope() {
	user := suite.loginUser("right-password")

	suite.mockUsers.EXPECT().GetByEmailInOrganization("user@acme.com", user.OrganizationID).Return(user, nil)

	resp, err := suite.accountService.Login(&service.LoginRequest{
		Email:          "user@acme.com",
		Password:       "right-password",
		OrganizationID: &user.OrganizationID,
	})

	suite.NoError(err)
	suite.Equal(user.ID, resp.User.ID)
}

func (suite *AccountServiceTestSuite) TestLogin_DeactivatedAccount() {
	user := suite.loginUser("right-password")
	user.IsActive = false

	suite.mockUsers.EXPECT().FindByEmail("user@acme.com").Return([]models.User{*user}, nil)

	resp, err := suite.accountService.Login(&service.LoginRequest{
		Email:    "user@acme.com",
		Password: "right-password",
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrAccountDeactivated)
}

func (suite *AccountServiceTestSuite) TestMe() {
	user := suite.loginUser("whatever")

	resp := suite.accountService.Me(user)

	suite.Equal(user.ID, resp.ID)
	suite.Equal(user.Email, resp.Email)
	suite.Equal(user.Role, resp.Role)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
