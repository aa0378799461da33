//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"feedback-hub-backend/internal/database/models"
	"feedback-hub-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// InvitationRepositoryTestSuite tests the InvitationRepository
type InvitationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *InvitationRepository
	orgRepo       *OrganizationRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet

	org     *models.Organization
	inviter *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *InvitationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewInvitationRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *InvitationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *InvitationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organization.Create()
	suite.Require().NoError(suite.orgRepo.Create(suite.org))

	suite.inviter = suite.factories.User.WithOrganization(suite.org.ID)
	suite.inviter.Role = models.RoleAdmin
	suite.Require().NoError(suite.userRepo.Create(suite.inviter))
}

// TearDownTest runs after each test
func (suite *InvitationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *InvitationRepositoryTestSuite) createInvitation() *models.Invitation {
	invitation := suite.factories.Invitation.WithOrganization(suite.org.ID)
	invitation.InvitedByID = suite.inviter.ID
	suite.Require().NoError(suite.repo.Create(invitation))
	return invitation
}

// TestCreate tests creating an invitation
func (suite *InvitationRepositoryTestSuite) TestCreate() {
	invitation := suite.factories.Invitation.WithOrganization(suite.org.ID)
	invitation.InvitedByID = suite.inviter.ID

	suite.NoError(suite.repo.Create(invitation))
}

// TestCreateDuplicateToken tests the unique constraint on tokens
func (suite *InvitationRepositoryTestSuite) TestCreateDuplicateToken() {
	invitation := suite.createInvitation()

	duplicate := suite.factories.Invitation.WithOrganization(suite.org.ID)
	duplicate.InvitedByID = suite.inviter.ID
	duplicate.Token = invitation.Token

	suite.Error(suite.repo.Create(duplicate))
}

// TestGetActiveByToken tests token redemption lookup
func (suite *InvitationRepositoryTestSuite) TestGetActiveByToken() {
	invitation := suite.createInvitation()

	found, err := suite.repo.GetActiveByToken(invitation.Token, time.Now())

	suite.NoError(err)
	suite.Equal(invitation.ID, found.ID)
}

// TestGetActiveByTokenExpired tests that expired invitations miss
func (suite *InvitationRepositoryTestSuite) TestGetActiveByTokenExpired() {
	invitation := suite.factories.Invitation.Expired()
	invitation.OrganizationID = suite.org.ID
	invitation.InvitedByID = suite.inviter.ID
	suite.Require().NoError(suite.repo.Create(invitation))

	found, err := suite.repo.GetActiveByToken(invitation.Token, time.Now())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestGetActiveByTokenAccepted tests that a redeemed token misses on second use
func (suite *InvitationRepositoryTestSuite) TestGetActiveByTokenAccepted() {
	invitation := suite.createInvitation()

	at := time.Now()
	invitation.AcceptedAt = &at
	suite.Require().NoError(suite.repo.Update(invitation))

	found, err := suite.repo.GetActiveByToken(invitation.Token, time.Now())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestGetActiveByEmail tests the pending-invitation lookup used on create
func (suite *InvitationRepositoryTestSuite) TestGetActiveByEmail() {
	invitation := suite.createInvitation()

	found, err := suite.repo.GetActiveByEmail(invitation.Email, suite.org.ID, time.Now())

	suite.NoError(err)
	suite.Equal(invitation.ID, found.ID)
}

// TestListByOrganization tests listing with the inviter preloaded
func (suite *InvitationRepositoryTestSuite) TestListByOrganization() {
	suite.createInvitation()
	suite.createInvitation()

	invitations, total, err := suite.repo.ListByOrganization(suite.org.ID, 20, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(invitations, 2)
	suite.Require().NotNil(invitations[0].InvitedBy)
	suite.Equal(suite.inviter.ID, invitations[0].InvitedBy.ID)
}

// TestCountPendingByOrganization tests counting only active invitations
func (suite *InvitationRepositoryTestSuite) TestCountPendingByOrganization() {
	suite.createInvitation()

	expired := suite.factories.Invitation.Expired()
	expired.OrganizationID = suite.org.ID
	expired.InvitedByID = suite.inviter.ID
	suite.Require().NoError(suite.repo.Create(expired))

	accepted := suite.createInvitation()
	at := time.Now()
	accepted.AcceptedAt = &at
	suite.Require().NoError(suite.repo.Update(accepted))

	count, err := suite.repo.CountPendingByOrganization(suite.org.ID, time.Now())

	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestRedeem tests that redeeming creates the user, marks the invitation
// accepted and retires the token in one step
func (suite *InvitationRepositoryTestSuite) TestRedeem() {
	invitation := suite.createInvitation()

	at := time.Now()
	invitation.AcceptedAt = &at
	user := suite.factories.User.WithOrganization(suite.org.ID)
	user.Email = invitation.Email

	suite.Require().NoError(suite.repo.Redeem(invitation, user))

	created, err := suite.userRepo.GetByIDInOrganization(user.ID, suite.org.ID)
	suite.NoError(err)
	suite.Equal(invitation.Email, created.Email)

	// The token cannot be accepted a second time
	found, err := suite.repo.GetActiveByToken(invitation.Token, time.Now())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestRedeemRollsBackOnUserConflict tests that a failed user insert leaves the
// invitation pending
func (suite *InvitationRepositoryTestSuite) TestRedeemRollsBackOnUserConflict() {
	invitation := suite.createInvitation()

	taken := suite.factories.User.WithOrganization(suite.org.ID)
	taken.Email = invitation.Email
	suite.Require().NoError(suite.userRepo.Create(taken))

	at := time.Now()
	invitation.AcceptedAt = &at
	duplicate := suite.factories.User.WithOrganization(suite.org.ID)
	duplicate.Email = invitation.Email

	suite.Error(suite.repo.Redeem(invitation, duplicate))

	// Neither side of the redeem committed
	found, err := suite.repo.GetActiveByToken(invitation.Token, time.Now())
	suite.NoError(err)
	suite.Nil(found.AcceptedAt)
}

// TestInvitationRepositoryTestSuite runs the test suite
func TestInvitationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationRepositoryTestSuite))
}
