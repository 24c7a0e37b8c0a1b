package repository

import (
	"testing"

	"menu-platform-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	userFactory   *testutils.UserFactory
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.userFactory = testutils.NewUserFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByID tests the user round trip
func (suite *UserRepositoryTestSuite) TestCreateAndGetByID() {
	user := suite.userFactory.WithEmail("owner@tacocorner.cl")

	err := suite.repo.Create(user)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal("owner@tacocorner.cl", retrieved.Email)
	suite.Equal("password", retrieved.Provider)
}

// TestCreateDuplicateEmail tests the unique constraint on email
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	suite.NoError(suite.repo.Create(suite.userFactory.WithEmail("owner@tacocorner.cl")))

	err := suite.repo.Create(suite.userFactory.WithEmail("owner@tacocorner.cl"))

	suite.Error(err)
}

// TestGetByEmail tests retrieving a user by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.userFactory.WithEmail("owner@tacocorner.cl")
	suite.NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByEmail("owner@tacocorner.cl")

	suite.NoError(err)
	suite.Equal(user.ID, retrieved.ID)
}

// TestGetByEmailNotFound tests a missing email
func (suite *UserRepositoryTestSuite) TestGetByEmailNotFound() {
	user, err := suite.repo.GetByEmail("nobody@test.com")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(user)
}

// TestGetByIDNotFound tests a missing ID
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	user, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(user)
}

// TestUpdate tests updating user fields
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.userFactory.Create()
	suite.NoError(suite.repo.Create(user))

	user.Provider = "google"
	user.PasswordHash = ""

	err := suite.repo.Update(user)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal("google", retrieved.Provider)
}

// Run the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
