package repository

import (
	"testing"

	"menu-platform-backend/internal/database/models"
	"menu-platform-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BusinessRepositoryTestSuite tests the BusinessRepository
type BusinessRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BusinessRepository
	adminRepo     *BusinessAdminRepository
	userFactory   *testutils.UserFactory
	bizFactory    *testutils.BusinessFactory
}

// SetupSuite runs before all tests in the suite
func (suite *BusinessRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewBusinessRepository(suite.baseTestSuite.DB)
	suite.adminRepo = NewBusinessAdminRepository(suite.baseTestSuite.DB)
	suite.userFactory = testutils.NewUserFactory()
	suite.bizFactory = testutils.NewBusinessFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *BusinessRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BusinessRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BusinessRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a business
func (suite *BusinessRepositoryTestSuite) TestCreate() {
	business := suite.bizFactory.WithSlug("taco-corner")

	err := suite.repo.Create(business)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(business.ID)
	suite.NoError(err)
	suite.Equal("taco-corner", retrieved.Slug)
	suite.Equal(models.ThemeDark, retrieved.Theme)
}

// TestCreateDuplicateSlug tests the unique constraint on slug
func (suite *BusinessRepositoryTestSuite) TestCreateDuplicateSlug() {
	first := suite.bizFactory.WithSlug("taco-corner")
	suite.NoError(suite.repo.Create(first))

	second := suite.bizFactory.WithSlug("taco-corner")
	err := suite.repo.Create(second)

	suite.Error(err)
}

// TestCreateWithAdmin tests that onboarding creates business and admin atomically
func (suite *BusinessRepositoryTestSuite) TestCreateWithAdmin() {
	user := suite.userFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)

	business := suite.bizFactory.WithSlug("sushi-place")
	admin := &models.BusinessAdmin{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    user.ID,
		Role:      models.AdminRoleOwner,
	}

	err := suite.repo.CreateWithAdmin(business, admin)

	suite.NoError(err)
	suite.Equal(business.ID, admin.BusinessID)

	links, err := suite.adminRepo.GetByUserID(user.ID)
	suite.NoError(err)
	suite.Len(links, 1)
	suite.Equal(business.ID, links[0].BusinessID)
}

// TestCreateWithAdminRollsBack tests that a failing admin insert leaves no business behind
func (suite *BusinessRepositoryTestSuite) TestCreateWithAdminRollsBack() {
	user := suite.userFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)

	existing := suite.bizFactory.Create()
	existingAdmin := &models.BusinessAdmin{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    user.ID,
		Role:      models.AdminRoleOwner,
	}
	suite.NoError(suite.repo.CreateWithAdmin(existing, existingAdmin))

	business := suite.bizFactory.WithSlug("ghost-kitchen")
	// reuse the existing admin's primary key so the second insert fails
	admin := &models.BusinessAdmin{
		BaseModel: models.BaseModel{ID: existingAdmin.ID},
		UserID:    user.ID,
		Role:      models.AdminRoleOwner,
	}

	err := suite.repo.CreateWithAdmin(business, admin)

	suite.Error(err)

	_, err = suite.repo.GetBySlug("ghost-kitchen")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetBySlug tests retrieving a business by slug
func (suite *BusinessRepositoryTestSuite) TestGetBySlug() {
	business := suite.bizFactory.WithSlug("pizza-house")
	suite.NoError(suite.repo.Create(business))

	retrieved, err := suite.repo.GetBySlug("pizza-house")

	suite.NoError(err)
	suite.Equal(business.ID, retrieved.ID)
}

// TestGetBySlugNotFound tests retrieving a non-existent slug
func (suite *BusinessRepositoryTestSuite) TestGetBySlugNotFound() {
	business, err := suite.repo.GetBySlug("no-such-slug")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(business)
}

// TestGetByDomain tests retrieving a business by its custom domain
func (suite *BusinessRepositoryTestSuite) TestGetByDomain() {
	business := suite.bizFactory.Create()
	business.Domain = "menu.tacocorner.cl"
	suite.NoError(suite.repo.Create(business))

	retrieved, err := suite.repo.GetByDomain("menu.tacocorner.cl")

	suite.NoError(err)
	suite.Equal(business.ID, retrieved.ID)
}

// TestGetByDomainNotFound tests retrieving a domain no business claims
func (suite *BusinessRepositoryTestSuite) TestGetByDomainNotFound() {
	business, err := suite.repo.GetByDomain("menu.nowhere.cl")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(business)
}

// TestDomainUniqueOnlyWhenSet tests that empty domains do not collide
// while duplicate custom domains are rejected
func (suite *BusinessRepositoryTestSuite) TestDomainUniqueOnlyWhenSet() {
	first := suite.bizFactory.Create()
	second := suite.bizFactory.Create()
	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.Create(second))

	first.Domain = "menu.tacos.cl"
	suite.NoError(suite.repo.Update(first))

	second.Domain = "menu.tacos.cl"
	suite.Error(suite.repo.Update(second))
}

// TestUpdate tests updating business settings
func (suite *BusinessRepositoryTestSuite) TestUpdate() {
	business := suite.bizFactory.Create()
	suite.NoError(suite.repo.Create(business))

	business.Name = "Renamed Restaurant"
	business.Theme = models.ThemeWarm
	business.Phone = "+56912345678"

	err := suite.repo.Update(business)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(business.ID)
	suite.NoError(err)
	suite.Equal("Renamed Restaurant", retrieved.Name)
	suite.Equal(models.ThemeWarm, retrieved.Theme)
	suite.Equal("+56912345678", retrieved.Phone)
}

// TestDelete tests deleting a business
func (suite *BusinessRepositoryTestSuite) TestDelete() {
	business := suite.bizFactory.Create()
	suite.NoError(suite.repo.Create(business))

	err := suite.repo.Delete(business.ID)

	suite.NoError(err)

	_, err = suite.repo.GetByID(business.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestBusinessRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BusinessRepositoryTestSuite))
}
