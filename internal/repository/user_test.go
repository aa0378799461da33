//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"feedback-hub-backend/internal/database/models"
	"feedback-hub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet

	org *models.Organization
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organization.Create()
	suite.Require().NoError(suite.orgRepo.Create(suite.org))
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserRepositoryTestSuite) createUser(role models.Role) *models.User {
	user := suite.factories.User.WithOrganization(suite.org.ID)
	user.Role = role
	suite.Require().NoError(suite.repo.Create(user))
	return user
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.WithOrganization(suite.org.ID)

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
}

// TestCreateDuplicateEmailInOrganization tests the per-organization email constraint
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmailInOrganization() {
	user1 := suite.factories.User.WithOrganization(suite.org.ID)
	user1.Email = "same@acme.com"
	suite.NoError(suite.repo.Create(user1))

	user2 := suite.factories.User.WithOrganization(suite.org.ID)
	user2.Email = "same@acme.com"

	suite.Error(suite.repo.Create(user2))
}

// TestSameEmailAcrossOrganizations tests that the email constraint is org-scoped
func (suite *UserRepositoryTestSuite) TestSameEmailAcrossOrganizations() {
	otherOrg := suite.factories.Organization.WithName("other-org")
	suite.Require().NoError(suite.orgRepo.Create(otherOrg))

	user1 := suite.factories.User.WithOrganization(suite.org.ID)
	user1.Email = "shared@acme.com"
	suite.NoError(suite.repo.Create(user1))

	user2 := suite.factories.User.WithOrganization(otherOrg.ID)
	user2.Email = "shared@acme.com"

	suite.NoError(suite.repo.Create(user2))
}

// TestGetByIDInOrganization tests tenant-scoped lookup
func (suite *UserRepositoryTestSuite) TestGetByIDInOrganization() {
	user := suite.createUser(models.RoleEmployee)

	found, err := suite.repo.GetByIDInOrganization(user.ID, suite.org.ID)
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)

	// the same ID under a different organization reads as not found
	found, err = suite.repo.GetByIDInOrganization(user.ID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestFindByEmail tests the cross-organization email lookup used by login
func (suite *UserRepositoryTestSuite) TestFindByEmail() {
	otherOrg := suite.factories.Organization.WithName("other-org")
	suite.Require().NoError(suite.orgRepo.Create(otherOrg))

	user1 := suite.factories.User.WithOrganization(suite.org.ID)
	user1.Email = "shared@acme.com"
	suite.Require().NoError(suite.repo.Create(user1))

	user2 := suite.factories.User.WithOrganization(otherOrg.ID)
	user2.Email = "shared@acme.com"
	suite.Require().NoError(suite.repo.Create(user2))

	users, err := suite.repo.FindByEmail("shared@acme.com")

	suite.NoError(err)
	suite.Len(users, 2)
}

// TestListByOrganization tests tenant-scoped listing with pagination
func (suite *UserRepositoryTestSuite) TestListByOrganization() {
	for i := 0; i < 3; i++ {
		suite.createUser(models.RoleEmployee)
	}
	otherOrg := suite.factories.Organization.WithName("other-org")
	suite.Require().NoError(suite.orgRepo.Create(otherOrg))
	outsider := suite.factories.User.WithOrganization(otherOrg.ID)
	suite.Require().NoError(suite.repo.Create(outsider))

	users, total, err := suite.repo.ListByOrganization(suite.org.ID, 2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(users, 2)
}

// TestListDirectReports tests listing a manager's active reports
func (suite *UserRepositoryTestSuite) TestListDirectReports() {
	manager := suite.createUser(models.RoleManager)

	report := suite.factories.User.WithOrganization(suite.org.ID)
	report.ManagerID = &manager.ID
	suite.Require().NoError(suite.repo.Create(report))

	inactive := suite.factories.User.WithOrganization(suite.org.ID)
	inactive.ManagerID = &manager.ID
	inactive.IsActive = false
	suite.Require().NoError(suite.repo.Create(inactive))

	reports, err := suite.repo.ListDirectReports(manager.ID, suite.org.ID)

	suite.NoError(err)
	suite.Require().Len(reports, 1)
	suite.Equal(report.ID, reports[0].ID)
}

// TestListEmployees tests listing active employees of an organization
func (suite *UserRepositoryTestSuite) TestListEmployees() {
	suite.createUser(models.RoleEmployee)
	suite.createUser(models.RoleEmployee)
	suite.createUser(models.RoleManager) // managers are not employees

	employees, err := suite.repo.ListEmployees(suite.org.ID)

	suite.NoError(err)
	suite.Len(employees, 2)
}

// TestCountDirectReports tests counting a manager's active reports
func (suite *UserRepositoryTestSuite) TestCountDirectReports() {
	manager := suite.createUser(models.RoleManager)

	report := suite.factories.User.WithOrganization(suite.org.ID)
	report.ManagerID = &manager.ID
	suite.Require().NoError(suite.repo.Create(report))

	count, err := suite.repo.CountDirectReports(manager.ID, suite.org.ID)

	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestUpdateLastLogin tests stamping last_login without touching other columns
func (suite *UserRepositoryTestSuite) TestUpdateLastLogin() {
	user := suite.createUser(models.RoleEmployee)
	at := time.Now()

	suite.NoError(suite.repo.UpdateLastLogin(user.ID, at))

	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Require().NotNil(found.LastLogin)
	suite.WithinDuration(at, *found.LastLogin, time.Second)
	suite.Equal(user.Name, found.Name)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
